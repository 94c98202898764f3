// Package footprint models KiCad footprints and writes .kicad_mod files
// into a .pretty library directory. All coordinates are millimeters in the
// KiCad board frame, already re-centered on the footprint origin.
package footprint

// PadType selects the pad technology.
type PadType int

const (
	PadSMD PadType = iota
	PadThroughHole
	PadNPTH
)

func (t PadType) String() string {
	switch t {
	case PadThroughHole:
		return "thru_hole"
	case PadNPTH:
		return "np_thru_hole"
	default:
		return "smd"
	}
}

// PadShape selects the pad outline.
type PadShape int

const (
	ShapeRect PadShape = iota
	ShapeCircle
	ShapeOval
	ShapeCustom
)

func (s PadShape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeOval:
		return "oval"
	case ShapeCustom:
		return "custom"
	default:
		return "rect"
	}
}

// Point is one polygon vertex, pad-relative for custom pads.
type Point struct {
	X float64
	Y float64
}

// Pad is one footprint pad. Polygon holds the outline of custom pads,
// relative to the pad anchor.
type Pad struct {
	Number   string
	Type     PadType
	Shape    PadShape
	X        float64
	Y        float64
	Rotation float64
	Width    float64
	Height   float64
	Drill    float64
	Layers   []string
	Polygon  []Point
}

// Line is a graphic segment (fp_line).
type Line struct {
	StartX float64
	StartY float64
	EndX   float64
	EndY   float64
	Width  float64
	Layer  string
}

// Circle is a graphic circle (fp_circle), radius encoded as an end point.
type Circle struct {
	CenterX float64
	CenterY float64
	Radius  float64
	Width   float64
	Layer   string
}

// Text is user text (fp_text user).
type Text struct {
	Text     string
	X        float64
	Y        float64
	Rotation float64
	Size     float64
	Layer    string
}

// Model references the 3D model with its placement transform.
type Model struct {
	Path    string
	OffsetX float64
	OffsetY float64
	OffsetZ float64
	ScaleX  float64
	ScaleY  float64
	ScaleZ  float64
	RotateX float64
	RotateY float64
	RotateZ float64
}

// Footprint is a complete footprint ready for encoding.
type Footprint struct {
	Name    string
	SMD     bool
	Pads    []Pad
	Lines   []Line
	Circles []Circle
	Texts   []Text
	Model   *Model
}
