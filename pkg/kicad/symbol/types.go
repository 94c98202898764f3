// Package symbol models KiCad schematic symbols and writes them into
// .kicad_sym library files. Coordinates are millimeters in the KiCad
// symbol frame (y up); the encoder does no unit conversion of its own.
package symbol

// PinType is the electrical class of a pin.
type PinType int

const (
	PinUnspecified PinType = iota
	PinInput
	PinOutput
	PinBidirectional
	PinTriState
	PinPassive
	PinFree
	PinPowerIn
	PinPowerOut
	PinOpenCollector
	PinOpenEmitter
	PinNoConnect
)

func (t PinType) String() string {
	switch t {
	case PinInput:
		return "input"
	case PinOutput:
		return "output"
	case PinBidirectional:
		return "bidirectional"
	case PinTriState:
		return "tri_state"
	case PinPassive:
		return "passive"
	case PinFree:
		return "free"
	case PinPowerIn:
		return "power_in"
	case PinPowerOut:
		return "power_out"
	case PinOpenCollector:
		return "open_collector"
	case PinOpenEmitter:
		return "open_emitter"
	case PinNoConnect:
		return "no_connect"
	default:
		return "unspecified"
	}
}

// PinStyle is the graphical rendering of a pin.
type PinStyle int

const (
	StyleLine PinStyle = iota
	StyleInverted
	StyleClock
	StyleInvertedClock
)

func (s PinStyle) String() string {
	switch s {
	case StyleInverted:
		return "inverted"
	case StyleClock:
		return "clock"
	case StyleInvertedClock:
		return "inverted_clock"
	default:
		return "line"
	}
}

// Fill selects the body fill of a closed shape.
type Fill int

const (
	FillNone Fill = iota
	FillOutline
	FillBackground
)

func (f Fill) String() string {
	switch f {
	case FillOutline:
		return "outline"
	case FillBackground:
		return "background"
	default:
		return "none"
	}
}

// Info carries symbol metadata emitted as properties.
type Info struct {
	Name         string
	Prefix       string
	Footprint    string
	Manufacturer string
	Datasheet    string
	LCSCID       string
	JLCID        string
}

// Pin is one symbol pin. Orientation holds the source rotation; the
// encoder flips it into the KiCad pin direction.
type Pin struct {
	Name        string
	Number      string
	Style       PinStyle
	Type        PinType
	Length      float64
	Orientation int
	X           float64
	Y           float64
}

// Rectangle spans two corners.
type Rectangle struct {
	StartX float64
	StartY float64
	EndX   float64
	EndY   float64
}

// Circle is a center plus radius.
type Circle struct {
	CenterX float64
	CenterY float64
	Radius  float64
	Fill    Fill
}

// Arc is the three-point arc form KiCad 6 uses.
type Arc struct {
	StartX float64
	StartY float64
	MidX   float64
	MidY   float64
	EndX   float64
	EndY   float64
}

// Point is one polyline vertex.
type Point struct {
	X float64
	Y float64
}

// Polygon is an open or closed point sequence; closed polygons get a
// background fill.
type Polygon struct {
	Points []Point
	Closed bool
}

// Symbol is a complete schematic symbol ready for encoding.
type Symbol struct {
	Info       Info
	Pins       []Pin
	Rectangles []Rectangle
	Circles    []Circle
	Arcs       []Arc
	Polygons   []Polygon
}
