// Package convert turns decoded EasyEDA models into KiCad library
// structures: re-centering on the source origin, converting units and
// mapping shape semantics.
package convert

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/symbol"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/units"
)

// Warning describes one shape that could not be carried into the output.
// Warnings never fail the conversion.
type Warning struct {
	Shape  string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Shape, w.Reason)
}

var pinTypeMap = map[easyeda.PinType]symbol.PinType{
	easyeda.PinUnspecified:   symbol.PinUnspecified,
	easyeda.PinInput:         symbol.PinInput,
	easyeda.PinOutput:        symbol.PinOutput,
	easyeda.PinBidirectional: symbol.PinBidirectional,
	easyeda.PinPower:         symbol.PinPowerIn,
}

// Symbol builds a KiCad symbol from a decoded source symbol.
func Symbol(src *easyeda.Symbol) (*symbol.Symbol, []Warning) {
	ox, oy := src.Origin.X, src.Origin.Y

	out := &symbol.Symbol{
		Info: symbol.Info{
			Name:         src.Info.Name,
			Prefix:       strings.ReplaceAll(src.Info.Prefix, "?", ""),
			Footprint:    src.Info.Package,
			Manufacturer: src.Info.Manufacturer,
			Datasheet:    src.Info.Datasheet,
			LCSCID:       src.Info.LCSCID,
			JLCID:        src.Info.JLCID,
		},
	}

	var warnings []Warning
	for _, pin := range src.Pins {
		p, err := convertPin(pin, ox, oy)
		if err != nil {
			warnings = append(warnings, Warning{Shape: "pin", Reason: err.Error()})
			continue
		}
		out.Pins = append(out.Pins, p)
	}

	for _, r := range src.Rectangles {
		x0 := units.SymbolX(r.X, ox)
		y0 := units.SymbolY(r.Y, oy)
		out.Rectangles = append(out.Rectangles, symbol.Rectangle{
			StartX: x0,
			StartY: y0,
			EndX:   x0 + units.ToMM(r.Width),
			EndY:   y0 - units.ToMM(r.Height),
		})
	}

	for _, c := range src.Circles {
		out.Circles = append(out.Circles, symbol.Circle{
			CenterX: units.SymbolX(c.CenterX, ox),
			CenterY: units.SymbolY(c.CenterY, oy),
			Radius:  units.ToMM(c.Radius),
			Fill:    fillFor(c.Filled),
		})
	}

	// Ellipses carry over only when they are circles in disguise.
	for _, e := range src.Ellipses {
		if e.RadiusX != e.RadiusY {
			warnings = append(warnings, Warning{
				Shape:  "ellipse",
				Reason: fmt.Sprintf("unequal radii %g and %g have no symbol equivalent", e.RadiusX, e.RadiusY),
			})
			continue
		}
		out.Circles = append(out.Circles, symbol.Circle{
			CenterX: units.SymbolX(e.CenterX, ox),
			CenterY: units.SymbolY(e.CenterY, oy),
			Radius:  units.ToMM(e.RadiusX),
			Fill:    fillFor(e.Filled),
		})
	}

	for _, a := range src.Arcs {
		arc, err := convertArc(a, ox, oy)
		if err != nil {
			warnings = append(warnings, Warning{Shape: "arc", Reason: err.Error()})
			continue
		}
		out.Arcs = append(out.Arcs, arc)
	}

	for _, pl := range src.Polylines {
		if poly, ok := convertPoints(pl.Vertices(), pl.Filled, ox, oy); ok {
			out.Polygons = append(out.Polygons, poly)
		}
	}
	for _, pg := range src.Polygons {
		if poly, ok := convertPoints(pg.Vertices(), true, ox, oy); ok {
			out.Polygons = append(out.Polygons, poly)
		}
	}

	for _, path := range src.Paths {
		poly, err := convertPath(path, ox, oy)
		if err != nil {
			warnings = append(warnings, Warning{Shape: "path", Reason: err.Error()})
			continue
		}
		out.Polygons = append(out.Polygons, poly)
	}

	return out, warnings
}

func convertPin(pin easyeda.Pin, ox, oy float64) (symbol.Pin, error) {
	length, err := easyeda.PinLength(pin.Path.Path)
	if err != nil {
		return symbol.Pin{}, err
	}

	kind, ok := pinTypeMap[pin.Settings.Type]
	if !ok {
		kind = symbol.PinPassive
	}

	style := symbol.StyleLine
	switch {
	case pin.InvertDot.Visible && pin.Clock.Visible:
		style = symbol.StyleInvertedClock
	case pin.InvertDot.Visible:
		style = symbol.StyleInverted
	case pin.Clock.Visible:
		style = symbol.StyleClock
	}

	return symbol.Pin{
		Name:        strings.ReplaceAll(pin.Name.Text, " ", ""),
		Number:      strings.ReplaceAll(pin.Settings.SpiceNumber, " ", ""),
		Style:       style,
		Type:        kind,
		Length:      units.ToMM(length),
		Orientation: pin.Settings.Rotation,
		X:           units.SymbolX(pin.Settings.X, ox),
		Y:           units.SymbolY(pin.Settings.Y, oy),
	}, nil
}

// convertArc maps a circular SVG arc onto KiCad's three-point form. The
// midpoint is computed in source coordinates and transformed with the
// endpoints so the y inversion applies uniformly.
func convertArc(a easyeda.Arc, ox, oy float64) (symbol.Arc, error) {
	parsed, err := easyeda.ParsePath(a.Path)
	if err != nil {
		return symbol.Arc{}, err
	}
	seg, err := parsed.Arc()
	if err != nil {
		return symbol.Arc{}, err
	}
	mid, err := seg.Midpoint()
	if err != nil {
		return symbol.Arc{}, err
	}
	return symbol.Arc{
		StartX: units.SymbolX(seg.Start.X, ox),
		StartY: units.SymbolY(seg.Start.Y, oy),
		MidX:   units.SymbolX(mid.X, ox),
		MidY:   units.SymbolY(mid.Y, oy),
		EndX:   units.SymbolX(seg.End.X, ox),
		EndY:   units.SymbolY(seg.End.Y, oy),
	}, nil
}

func convertPath(path easyeda.Path, ox, oy float64) (symbol.Polygon, error) {
	parsed, err := easyeda.ParsePath(path.Paths)
	if err != nil {
		return symbol.Polygon{}, err
	}
	pts, err := parsed.Points()
	if err != nil {
		return symbol.Polygon{}, err
	}
	poly, _ := convertPoints(pts, path.Filled, ox, oy)
	return poly, nil
}

func convertPoints(pts []easyeda.Point, closed bool, ox, oy float64) (symbol.Polygon, bool) {
	if len(pts) < 2 {
		return symbol.Polygon{}, false
	}
	out := symbol.Polygon{Closed: closed}
	for _, p := range pts {
		out.Points = append(out.Points, symbol.Point{
			X: units.SymbolX(p.X, ox),
			Y: units.SymbolY(p.Y, oy),
		})
	}
	return out, true
}

func fillFor(filled bool) symbol.Fill {
	if filled {
		return symbol.FillBackground
	}
	return symbol.FillNone
}
