// Package easyeda decodes EasyEDA CAD payloads: the JSON envelope returned by
// the component API and the delimiter-packed shape records nested inside it.
//
// Shape records are single strings whose fields are separated by '~', with
// pin records further segmented by '^^'. Decoding is best effort: a record
// that cannot be decoded is skipped with a reason, never an error for the
// whole batch.
package easyeda

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Document is the CAD data envelope for one component as returned by the
// EasyEDA component API (the "result" object).
type Document struct {
	Title        string         `json:"title"`
	LCSC         FlexString     `json:"lcsc"`
	Datasheet    string         `json:"datasheet"`
	Manufacturer string         `json:"manufacturer"`
	Description  string         `json:"description"`
	SMT          bool           `json:"SMT"`
	DataStr      *DataStr       `json:"dataStr"`
	Package      *PackageDetail `json:"packageDetail"`
}

// PackageDetail wraps the footprint payload of a component.
type PackageDetail struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DataStr     *DataStr `json:"dataStr"`
}

// DataStr is the shape payload carried in "dataStr" fields. The API encodes
// it either as a JSON object or as a JSON string containing that object;
// both forms decode to the same structure.
type DataStr struct {
	Head   Head     `json:"head"`
	Shapes []string `json:"shape"`
}

// UnmarshalJSON accepts both the object form and the string-encoded form.
func (d *DataStr) UnmarshalJSON(b []byte) error {
	b = trimSpaceJSON(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("dataStr string form: %w", err)
		}
		b = []byte(s)
	}
	type alias DataStr
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return fmt.Errorf("dataStr payload: %w", err)
	}
	*d = DataStr(a)
	return nil
}

// Head is the header block of a shape payload. X and Y are the bounding-box
// origin that all shape coordinates in the payload are relative to.
type Head struct {
	X      FlexFloat         `json:"x"`
	Y      FlexFloat         `json:"y"`
	Params map[string]string `json:"c_para"`
}

// Param returns a c_para value, or def when the key is absent.
func (h Head) Param(key, def string) string {
	if v, ok := h.Params[key]; ok && v != "" {
		return v
	}
	return def
}

// FlexFloat decodes JSON numbers that the API sometimes serializes as
// strings ("head.x" in particular).
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = trimSpaceJSON(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("numeric string %q: %w", s, err)
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// FlexString decodes JSON values that may arrive as strings or numbers
// (the "lcsc" id does both depending on API version).
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = trimSpaceJSON(b)
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	if string(b) == "null" {
		*s = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

func trimSpaceJSON(b []byte) []byte {
	return []byte(strings.TrimSpace(string(b)))
}

// ParseDocument decodes a raw API result blob into a Document.
func ParseDocument(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cad data envelope: %w", err)
	}
	return &doc, nil
}
