// Package sexp provides S-expression parsing and editing for KiCad library
// files. The parser streams from an io.Reader, and the record scanner can
// locate and replace one top-level symbol record inside a library without
// reformatting the rest of the file.
package sexp

import (
	"io"
	"strings"
)

// Sexp is one S-expression node, either a leaf atom or a list.
type Sexp interface {
	// IsLeaf reports whether this is an atom rather than a list.
	IsLeaf() bool

	// LeafCount returns the number of elements in a list (1 for atoms).
	LeafCount() int

	// Head returns the first element of a list (the atom itself for leaves).
	Head() Sexp

	// Tail returns the list after its first element (nil for atoms).
	Tail() Sexp

	// String renders the node back to source form.
	String() string
}

// Symbol is an unquoted atom (identifier, keyword, number).
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) LeafCount() int { return 1 }
func (s Symbol) Head() Sexp     { return s }
func (s Symbol) Tail() Sexp     { return nil }
func (s Symbol) String() string { return string(s) }

// Str is a quoted string atom. Keeping it distinct from Symbol means quoted
// values with spaces survive a parse/render round trip.
type Str string

func (s Str) IsLeaf() bool   { return true }
func (s Str) LeafCount() int { return 1 }
func (s Str) Head() Sexp     { return s }
func (s Str) Tail() Sexp     { return nil }
func (s Str) String() string { return Quote(string(s)) }

// List is a parenthesized sequence of nodes.
type List struct {
	elements []Sexp
}

// NewList builds a list from elements.
func NewList(elements ...Sexp) *List {
	return &List{elements: elements}
}

func (l *List) IsLeaf() bool   { return false }
func (l *List) LeafCount() int { return len(l.elements) }

func (l *List) Head() Sexp {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[0]
}

func (l *List) Tail() Sexp {
	if len(l.elements) <= 1 {
		return nil
	}
	return &List{elements: l.elements[1:]}
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Get returns the element at index, or nil when out of range.
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.elements)
}

// Parse reads all top-level S-expressions from r.
func Parse(r io.Reader) ([]Sexp, error) {
	return newParser(r).parseAll()
}

// ParseString parses all top-level S-expressions from a string.
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}

// Quote renders s as a KiCad quoted string, escaping backslashes and
// embedded quotes.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
