package easyeda

// PinType is the electrical class encoded in the third field of a pin
// record's settings segment.
type PinType int

const (
	PinUnspecified PinType = iota
	PinInput
	PinOutput
	PinBidirectional
	PinPower
)

func (t PinType) String() string {
	switch t {
	case PinInput:
		return "input"
	case PinOutput:
		return "output"
	case PinBidirectional:
		return "bidirectional"
	case PinPower:
		return "power"
	default:
		return "unspecified"
	}
}

// Point is a coordinate pair in EasyEDA units.
type Point struct {
	X float64
	Y float64
}

// SymbolInfo is the component metadata carried in the symbol payload header.
type SymbolInfo struct {
	Name         string
	Prefix       string
	Package      string
	Manufacturer string
	Datasheet    string
	LCSCID       string
	JLCID        string
}

// Symbol is a fully decoded EasyEDA schematic symbol. All coordinates remain
// in source units, relative to the payload's own coordinate space; Origin is
// the header bounding-box origin they will be re-based on during export.
type Symbol struct {
	Info       SymbolInfo
	Origin     Point
	Pins       []Pin
	Rectangles []Rectangle
	Circles    []Circle
	Ellipses   []Ellipse
	Arcs       []Arc
	Polylines  []Polyline
	Polygons   []Polygon
	Paths      []Path
}

// Pin is the six-segment pin record (settings, start dot, path, display
// name, inversion dot, clock mark). Segment four is reserved and unused.
type Pin struct {
	Settings  PinSettings
	Dot       PinDot
	Path      PinPath
	Name      PinName
	InvertDot PinInvertDot
	Clock     PinClock
}

// PinSettings is the first segment of a pin record.
type PinSettings struct {
	Visible     bool
	Type        PinType
	SpiceNumber string
	X           float64
	Y           float64
	Rotation    int
	ID          string
	Locked      bool
}

// PinDot is the anchor point of the pin line.
type PinDot struct {
	X float64
	Y float64
}

// PinPath is the pin line geometry. Vertical segment commands ("v") are
// folded into horizontal ones ("h") when decoded so the pin length can
// always be read off the final h offset.
type PinPath struct {
	Path  string
	Color string
}

// PinName is the display-name segment of a pin record.
type PinName struct {
	Visible  bool
	X        float64
	Y        float64
	Rotation int
	Text     string
	Anchor   string
	Font     string
	Size     float64
}

// PinInvertDot is the inversion bubble drawn at the pin's body end.
type PinInvertDot struct {
	Visible bool
	X       float64
	Y       float64
}

// PinClock is the clock wedge drawn at the pin's body end.
type PinClock struct {
	Visible bool
	Path    string
}

// Rectangle is a symbol rectangle record (tag R).
type Rectangle struct {
	X           float64
	Y           float64
	RX          float64
	RY          float64
	Width       float64
	Height      float64
	StrokeColor string
	StrokeWidth string
	StrokeStyle string
	Filled      bool
	ID          string
	Locked      bool
}

// Circle is a symbol circle record (tag C).
type Circle struct {
	CenterX     float64
	CenterY     float64
	Radius      float64
	StrokeColor string
	StrokeWidth string
	StrokeStyle string
	Filled      bool
	ID          string
	Locked      bool
}

// Ellipse is a symbol ellipse record (tag E).
type Ellipse struct {
	CenterX     float64
	CenterY     float64
	RadiusX     float64
	RadiusY     float64
	StrokeColor string
	StrokeWidth string
	StrokeStyle string
	Filled      bool
	ID          string
	Locked      bool
}

// Arc is a symbol arc record (tag A). The geometry is an SVG arc path.
type Arc struct {
	Path        string
	HelperDots  string
	StrokeColor string
	StrokeWidth string
	StrokeStyle string
	Filled      bool
	ID          string
	Locked      bool
}

// Polyline is a symbol polyline record (tag PL); Points is the raw
// space-separated coordinate list.
type Polyline struct {
	Points      string
	StrokeColor string
	StrokeWidth string
	StrokeStyle string
	Filled      bool
	ID          string
	Locked      bool
}

// Polygon is a closed polyline (tag PG).
type Polygon struct {
	Points      string
	StrokeColor string
	StrokeWidth string
	StrokeStyle string
	Filled      bool
	ID          string
	Locked      bool
}

// Vertices parses the raw coordinate list into points.
func (p Polygon) Vertices() []Point {
	return parsePoints(p.Points)
}

// Vertices parses the raw coordinate list into points.
func (p Polyline) Vertices() []Point {
	return parsePoints(p.Points)
}

// Path is a free-form SVG path record (tag PATH).
type Path struct {
	Paths       string
	StrokeColor string
	StrokeWidth string
	StrokeStyle string
	Filled      bool
	ID          string
	Locked      bool
}

// FootprintInfo is the footprint payload metadata.
type FootprintInfo struct {
	Name        string
	Description string
	SMD         bool
}

// Footprint is a fully decoded EasyEDA footprint. Coordinates remain in
// source units relative to the header origin; RawShapes keeps the undecoded
// record list so the 3D-model reference can be searched without re-parsing.
type Footprint struct {
	Info      FootprintInfo
	Origin    Point
	Pads      []Pad
	Tracks    []Track
	Circles   []FootprintCircle
	Texts     []Text
	Holes     []Hole
	RawShapes []string
}

// Pad shape tags as they appear in PAD records.
const (
	PadShapeRect    = "RECT"
	PadShapeEllipse = "ELLIPSE"
	PadShapeOval    = "OVAL"
	PadShapePolygon = "POLYGON"
)

// Pad is a footprint PAD record. Points carries the raw polygon outline for
// POLYGON pads; HoleRadius > 0 marks a plated through hole.
type Pad struct {
	Shape      string
	CenterX    float64
	CenterY    float64
	Width      float64
	Height     float64
	LayerID    int
	Net        string
	Number     string
	HoleRadius float64
	Points     string
	Rotation   float64
}

// Vertices parses the raw polygon outline into points.
func (p Pad) Vertices() []Point {
	return parsePoints(p.Points)
}

// Track is a footprint TRACK record (a straight line segment).
type Track struct {
	StartX  float64
	StartY  float64
	EndX    float64
	EndY    float64
	Width   float64
	LayerID int
}

// FootprintCircle is a footprint CIRCLE record.
type FootprintCircle struct {
	CenterX float64
	CenterY float64
	Radius  float64
	Width   float64
	LayerID int
}

// Text is a footprint TEXT record.
type Text struct {
	Text     string
	X        float64
	Y        float64
	Size     float64
	LayerID  int
	Rotation float64
}

// Hole is a footprint HOLE record (non-plated drill).
type Hole struct {
	X        float64
	Y        float64
	Diameter float64
}
