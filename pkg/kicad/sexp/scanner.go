package sexp

import (
	"fmt"
	"strings"
)

// Record scanning works on raw library text so an update rewrites one record
// and leaves every other byte untouched. The scan is quote-aware: parens
// inside quoted property values do not unbalance the depth count.

// FindRecord locates the span of the record `(tag "id" ...)` in content.
// The returned span covers the opening paren through the closing paren.
// The marker search skips quoted regions so string values resembling a
// record opener cannot be mistaken for one.
func FindRecord(content, tag, id string) (start, end int, ok bool) {
	marker := fmt.Sprintf("(%s %s", tag, Quote(id))
	start = -1
	startDepth := 0
	depth := 0
	inString := false
	escaped := false
	for pos := 0; pos < len(content); pos++ {
		ch := content[pos]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '(':
			if start == -1 && strings.HasPrefix(content[pos:], marker) {
				start = pos
				startDepth = depth
			}
			depth++
		case ')':
			depth--
			if start != -1 && depth == startDepth {
				return start, pos + 1, true
			}
		}
	}
	return 0, 0, false
}

// HasRecord reports whether content contains a record `(tag "id" ...)`.
func HasRecord(content, tag, id string) bool {
	_, _, ok := FindRecord(content, tag, id)
	return ok
}

// RemoveRecord deletes the record `(tag "id" ...)` from content, together
// with any whitespace immediately preceding it. Content is returned
// unchanged when the record is absent.
func RemoveRecord(content, tag, id string) string {
	start, end, ok := FindRecord(content, tag, id)
	if !ok {
		return content
	}
	for start > 0 && (content[start-1] == ' ' || content[start-1] == '\t' || content[start-1] == '\n') {
		start--
	}
	return content[:start] + content[end:]
}

// InsertRecord splices record text in front of the final closing paren of
// the library envelope.
func InsertRecord(content, record string) (string, error) {
	pos := strings.LastIndex(content, ")")
	if pos == -1 {
		return "", fmt.Errorf("library has no closing paren")
	}
	return content[:pos] + record + content[pos:], nil
}
