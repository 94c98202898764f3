package easyeda

import (
	"strconv"
	"strings"
)

// Shape records pack their values positionally. fieldList wraps one split
// record and hands out typed values with the format's defaulting rules:
// absent or unparsable numbers are zero, absent strings are empty, and
// visibility is the literal token "show".
type fieldList []string

const (
	fieldSep   = "~"
	segmentSep = "^^"
)

func splitFields(record string) fieldList {
	return fieldList(strings.Split(record, fieldSep))
}

func (f fieldList) str(i int) string {
	if i < 0 || i >= len(f) {
		return ""
	}
	return f[i]
}

func (f fieldList) strDefault(i int, def string) string {
	if s := f.str(i); s != "" {
		return s
	}
	return def
}

func (f fieldList) float(i int) float64 {
	s := f.str(i)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func (f fieldList) int(i, def int) int {
	s := f.str(i)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return int(v)
}

// visible reports whether the field carries the literal token "show".
// Anything else, including an absent field, means hidden.
func (f fieldList) visible(i int) bool {
	return f.str(i) == "show"
}

// set reports whether the field is non-empty (the format's boolean-ish
// "locked" flags).
func (f fieldList) set(i int) bool {
	return f.str(i) != ""
}

// filled interprets a fill-color field: any value other than empty or the
// literal "none" means the shape has a background fill.
func (f fieldList) filled(i int) bool {
	s := f.str(i)
	return s != "" && !strings.EqualFold(s, "none")
}

// fontSize parses sizes like "7pt"; bare numbers pass through and anything
// unparsable falls back to the 7 pt default.
func (f fieldList) fontSize(i int) float64 {
	s := strings.TrimSuffix(f.str(i), "pt")
	if s == "" {
		return 7
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 7
	}
	return v
}

// pinType maps the numeric electrical-type code; unknown codes collapse to
// unspecified.
func (f fieldList) pinType(i int) PinType {
	switch f.int(i, 0) {
	case 1:
		return PinInput
	case 2:
		return PinOutput
	case 3:
		return PinBidirectional
	case 4:
		return PinPower
	default:
		return PinUnspecified
	}
}

// parsePoints splits a space-separated "x y x y ..." coordinate list into
// points, ignoring a trailing unpaired value.
func parsePoints(s string) []Point {
	raw := strings.Fields(s)
	pts := make([]Point, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		x, errX := strconv.ParseFloat(raw[i], 64)
		y, errY := strconv.ParseFloat(raw[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}
