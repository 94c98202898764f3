package easyeda

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Skip records one shape record that could not be decoded. Skips are
// reported alongside the decoded result so callers can count or log them;
// they are never fatal for the batch.
type Skip struct {
	Tag    string
	Reason string
}

func (s Skip) String() string {
	return fmt.Sprintf("%s: %s", s.Tag, s.Reason)
}

// Field positions within each record type, counted across the full
// '~'-split record including the leading tag.
const (
	// R~x~y~rx~ry~width~height~stroke~strokeWidth~strokeStyle~fill~id~locked
	rectX           = 1
	rectY           = 2
	rectRX          = 3
	rectRY          = 4
	rectWidth       = 5
	rectHeight      = 6
	rectStroke      = 7
	rectStrokeWidth = 8
	rectStrokeStyle = 9
	rectFill        = 10
	rectID          = 11
	rectLocked      = 12

	// C~cx~cy~r~stroke~strokeWidth~strokeStyle~fill~id~locked
	circleCX          = 1
	circleCY          = 2
	circleRadius      = 3
	circleStroke      = 4
	circleStrokeWidth = 5
	circleStrokeStyle = 6
	circleFill        = 7
	circleID          = 8
	circleLocked      = 9

	// E~cx~cy~rx~ry~stroke~strokeWidth~strokeStyle~fill~id~locked
	ellipseCX          = 1
	ellipseCY          = 2
	ellipseRX          = 3
	ellipseRY          = 4
	ellipseStroke      = 5
	ellipseStrokeWidth = 6
	ellipseStrokeStyle = 7
	ellipseFill        = 8
	ellipseID          = 9
	ellipseLocked      = 10

	// A~path~helperDots~stroke~strokeWidth~strokeStyle~fill~id~locked
	arcPath        = 1
	arcHelperDots  = 2
	arcStroke      = 3
	arcStrokeWidth = 4
	arcStrokeStyle = 5
	arcFill        = 6
	arcID          = 7
	arcLocked      = 8

	// PL~points~stroke~strokeWidth~strokeStyle~fill~id~locked (PG and PATH
	// share the layout, PATH carrying path data instead of points)
	polyPoints      = 1
	polyStroke      = 2
	polyStrokeWidth = 3
	polyStrokeStyle = 4
	polyFill        = 5
	polyID          = 6
	polyLocked      = 7
)

// Pin records are segmented by '^^' into settings, start dot, path, display
// name, reserved, inversion dot and clock mark. Settings field positions:
const (
	pinMinSegments = 7

	pinSetVisible  = 1
	pinSetType     = 2
	pinSetSpiceNum = 3
	pinSetX        = 4
	pinSetY        = 5
	pinSetRotation = 6
	pinSetID       = 7
	pinSetLocked   = 8
)

// Footprint record field positions.
const (
	// PAD~shape~x~y~width~height~layer~net~number~holeRadius~points~rotation
	padMinFields = 10

	padShape      = 1
	padX          = 2
	padY          = 3
	padWidth      = 4
	padHeight     = 5
	padLayer      = 6
	padNet        = 7
	padNumber     = 8
	padHoleRadius = 9
	padPoints     = 10
	padRotation   = 11

	// TRACK~sx~sy~ex~ey~width~layer
	trackMinFields = 6

	trackStartX = 1
	trackStartY = 2
	trackEndX   = 3
	trackEndY   = 4
	trackWidth  = 5
	trackLayer  = 6

	// CIRCLE~cx~cy~r~width~layer
	fpCircleMinFields = 5

	fpCircleCX     = 1
	fpCircleCY     = 2
	fpCircleRadius = 3
	fpCircleWidth  = 4
	fpCircleLayer  = 5

	// TEXT~text~x~y~size~layer~rotation
	textMinFields = 5

	textValue    = 1
	textX        = 2
	textY        = 3
	textSize     = 4
	textLayer    = 5
	textRotation = 6

	// HOLE~x~y~diameter
	holeMinFields = 4

	holeX        = 1
	holeY        = 2
	holeDiameter = 3
)

// SVGNodeTag marks the footprint record carrying the 3D model reference.
const SVGNodeTag = "SVGNODE"

type symbolDecodeFunc func(record string, sym *Symbol) error

type footprintDecodeFunc func(record string, fp *Footprint) error

// symbolRegistry dispatches symbol shape records by their leading tag.
// Adding a shape kind means adding one entry, not growing a conditional.
var symbolRegistry = map[string]symbolDecodeFunc{
	"P":    decodePin,
	"R":    decodeRectangle,
	"C":    decodeCircle,
	"E":    decodeEllipse,
	"A":    decodeArc,
	"PL":   decodePolyline,
	"PG":   decodePolygon,
	"PATH": decodePath,
}

// footprintRegistry dispatches footprint shape records. SVGNODE is left out
// on purpose: it is resolved later from the retained raw shape list.
var footprintRegistry = map[string]footprintDecodeFunc{
	"PAD":    decodePad,
	"TRACK":  decodeTrack,
	"CIRCLE": decodeFootprintCircle,
	"TEXT":   decodeText,
	"HOLE":   decodeHole,
}

// Decoder turns shape payloads into typed symbol and footprint values.
type Decoder struct {
	logger *log.Logger
}

// NewDecoder returns a decoder that logs skipped records to logger. A nil
// logger silences the warnings.
func NewDecoder(logger *log.Logger) *Decoder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Decoder{logger: logger}
}

// Symbol decodes the symbol payload of doc into a typed Symbol. Records
// that fail to decode are dropped and reported in the skip list; unknown
// tags are ignored silently.
func (d *Decoder) Symbol(doc *Document) (*Symbol, []Skip, error) {
	if doc.DataStr == nil {
		return nil, nil, fmt.Errorf("document has no symbol payload")
	}
	data := doc.DataStr
	head := data.Head

	sym := &Symbol{
		Info: SymbolInfo{
			Name:         head.Param("name", doc.Title),
			Prefix:       head.Param("pre", "U"),
			Package:      head.Param("package", ""),
			Manufacturer: head.Param("BOM_Manufacturer", doc.Manufacturer),
			Datasheet:    doc.Datasheet,
			LCSCID:       string(doc.LCSC),
			JLCID:        head.Param("BOM_JLCPCB Part Class", ""),
		},
		Origin: Point{X: float64(head.X), Y: float64(head.Y)},
	}

	var skips []Skip
	for _, record := range data.Shapes {
		tag, _, _ := strings.Cut(record, fieldSep)
		decode, ok := symbolRegistry[tag]
		if !ok {
			continue
		}
		if err := decode(record, sym); err != nil {
			skips = append(skips, Skip{Tag: tag, Reason: err.Error()})
			d.logger.Printf("skipping symbol record %s: %v", tag, err)
		}
	}
	return sym, skips, nil
}

// Footprint decodes the footprint payload of doc. The raw shape list is
// retained on the result for the later 3D-model reference search.
func (d *Decoder) Footprint(doc *Document) (*Footprint, []Skip, error) {
	if doc.Package == nil {
		return nil, nil, fmt.Errorf("document has no packageDetail")
	}
	if doc.Package.DataStr == nil {
		return nil, nil, fmt.Errorf("packageDetail has no dataStr")
	}
	data := doc.Package.DataStr
	head := data.Head

	name := doc.Package.Title
	if name == "" {
		name = head.Param("package", "Unknown_Footprint")
	}

	fp := &Footprint{
		Info: FootprintInfo{
			Name:        name,
			Description: doc.Package.Description,
			SMD:         doc.SMT,
		},
		Origin:    Point{X: float64(head.X), Y: float64(head.Y)},
		RawShapes: data.Shapes,
	}

	var skips []Skip
	for _, record := range data.Shapes {
		tag, _, _ := strings.Cut(record, fieldSep)
		decode, ok := footprintRegistry[tag]
		if !ok {
			continue
		}
		if err := decode(record, fp); err != nil {
			skips = append(skips, Skip{Tag: tag, Reason: err.Error()})
			d.logger.Printf("skipping footprint record %s: %v", tag, err)
		}
	}
	return fp, skips, nil
}

func decodePin(record string, sym *Symbol) error {
	segments := strings.Split(record, segmentSep)
	if len(segments) < pinMinSegments {
		return fmt.Errorf("pin record has %d segments, need %d", len(segments), pinMinSegments)
	}

	settings := splitFields(segments[0])
	dot := splitFields(segments[1])
	path := splitFields(segments[2])
	name := splitFields(segments[3])
	invert := splitFields(segments[5])
	clock := splitFields(segments[6])

	pin := Pin{
		Settings: PinSettings{
			Visible:     settings.visible(pinSetVisible),
			Type:        settings.pinType(pinSetType),
			SpiceNumber: settings.str(pinSetSpiceNum),
			X:           settings.float(pinSetX),
			Y:           settings.float(pinSetY),
			Rotation:    settings.int(pinSetRotation, 0),
			ID:          settings.str(pinSetID),
			Locked:      settings.set(pinSetLocked),
		},
		Dot: PinDot{
			X: dot.float(0),
			Y: dot.float(1),
		},
		Path: PinPath{
			// Fold vertical segments into horizontal ones so the pin length
			// can always be read off the trailing h offset.
			Path:  strings.ReplaceAll(path.str(0), "v", "h"),
			Color: path.strDefault(1, "#000000"),
		},
		Name: PinName{
			Visible:  name.visible(0),
			X:        name.float(1),
			Y:        name.float(2),
			Rotation: name.int(3, 0),
			Text:     name.str(4),
			Anchor:   name.str(5),
			Font:     name.str(6),
			Size:     name.fontSize(7),
		},
		InvertDot: PinInvertDot{
			Visible: invert.visible(0),
			X:       invert.float(1),
			Y:       invert.float(2),
		},
		Clock: PinClock{
			Visible: clock.visible(0),
			Path:    clock.str(1),
		},
	}

	sym.Pins = append(sym.Pins, pin)
	return nil
}

func decodeRectangle(record string, sym *Symbol) error {
	f := splitFields(record)
	sym.Rectangles = append(sym.Rectangles, Rectangle{
		X:           f.float(rectX),
		Y:           f.float(rectY),
		RX:          f.float(rectRX),
		RY:          f.float(rectRY),
		Width:       f.float(rectWidth),
		Height:      f.float(rectHeight),
		StrokeColor: f.str(rectStroke),
		StrokeWidth: f.str(rectStrokeWidth),
		StrokeStyle: f.str(rectStrokeStyle),
		Filled:      f.filled(rectFill),
		ID:          f.str(rectID),
		Locked:      f.set(rectLocked),
	})
	return nil
}

func decodeCircle(record string, sym *Symbol) error {
	f := splitFields(record)
	sym.Circles = append(sym.Circles, Circle{
		CenterX:     f.float(circleCX),
		CenterY:     f.float(circleCY),
		Radius:      f.float(circleRadius),
		StrokeColor: f.str(circleStroke),
		StrokeWidth: f.str(circleStrokeWidth),
		StrokeStyle: f.str(circleStrokeStyle),
		Filled:      f.filled(circleFill),
		ID:          f.str(circleID),
		Locked:      f.set(circleLocked),
	})
	return nil
}

func decodeEllipse(record string, sym *Symbol) error {
	f := splitFields(record)
	sym.Ellipses = append(sym.Ellipses, Ellipse{
		CenterX:     f.float(ellipseCX),
		CenterY:     f.float(ellipseCY),
		RadiusX:     f.float(ellipseRX),
		RadiusY:     f.float(ellipseRY),
		StrokeColor: f.str(ellipseStroke),
		StrokeWidth: f.str(ellipseStrokeWidth),
		StrokeStyle: f.str(ellipseStrokeStyle),
		Filled:      f.filled(ellipseFill),
		ID:          f.str(ellipseID),
		Locked:      f.set(ellipseLocked),
	})
	return nil
}

func decodeArc(record string, sym *Symbol) error {
	f := splitFields(record)
	if f.str(arcPath) == "" {
		return fmt.Errorf("arc record has no path")
	}
	sym.Arcs = append(sym.Arcs, Arc{
		Path:        f.str(arcPath),
		HelperDots:  f.str(arcHelperDots),
		StrokeColor: f.str(arcStroke),
		StrokeWidth: f.str(arcStrokeWidth),
		StrokeStyle: f.str(arcStrokeStyle),
		Filled:      f.filled(arcFill),
		ID:          f.str(arcID),
		Locked:      f.set(arcLocked),
	})
	return nil
}

func decodePolyline(record string, sym *Symbol) error {
	f := splitFields(record)
	sym.Polylines = append(sym.Polylines, Polyline{
		Points:      f.str(polyPoints),
		StrokeColor: f.str(polyStroke),
		StrokeWidth: f.str(polyStrokeWidth),
		StrokeStyle: f.str(polyStrokeStyle),
		Filled:      f.filled(polyFill),
		ID:          f.str(polyID),
		Locked:      f.set(polyLocked),
	})
	return nil
}

func decodePolygon(record string, sym *Symbol) error {
	f := splitFields(record)
	sym.Polygons = append(sym.Polygons, Polygon{
		Points:      f.str(polyPoints),
		StrokeColor: f.str(polyStroke),
		StrokeWidth: f.str(polyStrokeWidth),
		StrokeStyle: f.str(polyStrokeStyle),
		Filled:      f.filled(polyFill),
		ID:          f.str(polyID),
		Locked:      f.set(polyLocked),
	})
	return nil
}

func decodePath(record string, sym *Symbol) error {
	f := splitFields(record)
	if f.str(polyPoints) == "" {
		return fmt.Errorf("path record has no path data")
	}
	sym.Paths = append(sym.Paths, Path{
		Paths:       f.str(polyPoints),
		StrokeColor: f.str(polyStroke),
		StrokeWidth: f.str(polyStrokeWidth),
		StrokeStyle: f.str(polyStrokeStyle),
		Filled:      f.filled(polyFill),
		ID:          f.str(polyID),
		Locked:      f.set(polyLocked),
	})
	return nil
}

func decodePad(record string, fp *Footprint) error {
	f := splitFields(record)
	if len(f) < padMinFields {
		return fmt.Errorf("pad record has %d fields, need %d", len(f), padMinFields)
	}
	fp.Pads = append(fp.Pads, Pad{
		Shape:      f.strDefault(padShape, PadShapeRect),
		CenterX:    f.float(padX),
		CenterY:    f.float(padY),
		Width:      f.float(padWidth),
		Height:     f.float(padHeight),
		LayerID:    f.int(padLayer, 1),
		Net:        f.str(padNet),
		Number:     f.strDefault(padNumber, "1"),
		HoleRadius: f.float(padHoleRadius),
		Points:     f.str(padPoints),
		Rotation:   f.float(padRotation),
	})
	return nil
}

func decodeTrack(record string, fp *Footprint) error {
	f := splitFields(record)
	if len(f) < trackMinFields {
		return fmt.Errorf("track record has %d fields, need %d", len(f), trackMinFields)
	}
	fp.Tracks = append(fp.Tracks, Track{
		StartX:  f.float(trackStartX),
		StartY:  f.float(trackStartY),
		EndX:    f.float(trackEndX),
		EndY:    f.float(trackEndY),
		Width:   f.float(trackWidth),
		LayerID: f.int(trackLayer, 3),
	})
	return nil
}

func decodeFootprintCircle(record string, fp *Footprint) error {
	f := splitFields(record)
	if len(f) < fpCircleMinFields {
		return fmt.Errorf("circle record has %d fields, need %d", len(f), fpCircleMinFields)
	}
	fp.Circles = append(fp.Circles, FootprintCircle{
		CenterX: f.float(fpCircleCX),
		CenterY: f.float(fpCircleCY),
		Radius:  f.float(fpCircleRadius),
		Width:   f.float(fpCircleWidth),
		LayerID: f.int(fpCircleLayer, 3),
	})
	return nil
}

func decodeText(record string, fp *Footprint) error {
	f := splitFields(record)
	if len(f) < textMinFields {
		return fmt.Errorf("text record has %d fields, need %d", len(f), textMinFields)
	}
	fp.Texts = append(fp.Texts, Text{
		Text:     f.str(textValue),
		X:        f.float(textX),
		Y:        f.float(textY),
		Size:     f.float(textSize),
		LayerID:  f.int(textLayer, 3),
		Rotation: f.float(textRotation),
	})
	return nil
}

func decodeHole(record string, fp *Footprint) error {
	f := splitFields(record)
	if len(f) < holeMinFields {
		return fmt.Errorf("hole record has %d fields, need %d", len(f), holeMinFields)
	}
	fp.Holes = append(fp.Holes, Hole{
		X:        f.float(holeX),
		Y:        f.float(holeY),
		Diameter: f.float(holeDiameter),
	})
	return nil
}
