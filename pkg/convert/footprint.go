package convert

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/footprint"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/units"
)

var padShapeMap = map[string]footprint.PadShape{
	easyeda.PadShapeRect:    footprint.ShapeRect,
	easyeda.PadShapeEllipse: footprint.ShapeCircle,
	easyeda.PadShapeOval:    footprint.ShapeOval,
	easyeda.PadShapePolygon: footprint.ShapeCustom,
}

// Footprint builds a KiCad footprint from a decoded source footprint. Every
// coordinate is re-centered on the source header origin and converted to
// millimeters, so the result sits at its own origin.
func Footprint(src *easyeda.Footprint) (*footprint.Footprint, []Warning) {
	ox, oy := src.Origin.X, src.Origin.Y

	out := &footprint.Footprint{
		Name: src.Info.Name,
		SMD:  src.Info.SMD,
	}

	var warnings []Warning
	for _, pad := range src.Pads {
		p, warn := convertPad(pad, ox, oy)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
		out.Pads = append(out.Pads, p)
	}

	// Non-plated holes become mechanical pads so drills survive the trip.
	for _, hole := range src.Holes {
		d := units.ToMM(hole.Diameter)
		out.Pads = append(out.Pads, footprint.Pad{
			Number: "",
			Type:   footprint.PadNPTH,
			Shape:  footprint.ShapeCircle,
			X:      units.ToMM(hole.X - ox),
			Y:      units.ToMM(hole.Y - oy),
			Width:  d,
			Height: d,
			Drill:  d,
			Layers: footprint.PadLayers(0, footprint.PadNPTH),
		})
	}

	for _, track := range src.Tracks {
		out.Lines = append(out.Lines, footprint.Line{
			StartX: units.ToMM(track.StartX - ox),
			StartY: units.ToMM(track.StartY - oy),
			EndX:   units.ToMM(track.EndX - ox),
			EndY:   units.ToMM(track.EndY - oy),
			Width:  units.ToMM(track.Width),
			Layer:  footprint.Layer(track.LayerID),
		})
	}

	for _, circle := range src.Circles {
		out.Circles = append(out.Circles, footprint.Circle{
			CenterX: units.ToMM(circle.CenterX - ox),
			CenterY: units.ToMM(circle.CenterY - oy),
			Radius:  units.ToMM(circle.Radius),
			Width:   units.ToMM(circle.Width),
			Layer:   footprint.Layer(circle.LayerID),
		})
	}

	for _, text := range src.Texts {
		out.Texts = append(out.Texts, footprint.Text{
			Text:     text.Text,
			X:        units.ToMM(text.X - ox),
			Y:        units.ToMM(text.Y - oy),
			Rotation: text.Rotation,
			Size:     units.ToMM(text.Size),
			Layer:    footprint.Layer(text.LayerID),
		})
	}

	return out, warnings
}

func convertPad(pad easyeda.Pad, ox, oy float64) (footprint.Pad, *Warning) {
	shape, ok := padShapeMap[pad.Shape]
	if !ok {
		shape = footprint.ShapeRect
	}

	padType := footprint.PadSMD
	drill := 0.0
	if pad.HoleRadius > 0 {
		padType = footprint.PadThroughHole
		drill = 2 * units.ToMM(pad.HoleRadius)
	}

	x := units.ToMM(pad.CenterX - ox)
	y := units.ToMM(pad.CenterY - oy)

	out := footprint.Pad{
		Number:   pad.Number,
		Type:     padType,
		Shape:    shape,
		X:        x,
		Y:        y,
		Rotation: pad.Rotation,
		Width:    units.ToMM(pad.Width),
		Height:   units.ToMM(pad.Height),
		Drill:    drill,
		Layers:   footprint.PadLayers(pad.LayerID, padType),
	}

	var warn *Warning
	if shape == footprint.ShapeCustom {
		vertices := pad.Vertices()
		if len(vertices) < 2 {
			// Too few vertices for an outline; a plain rectangle is the
			// closest usable stand-in.
			out.Shape = footprint.ShapeRect
			warn = &Warning{
				Shape:  "pad",
				Reason: fmt.Sprintf("polygon pad %q has %d outline vertices", pad.Number, len(vertices)),
			}
		} else {
			// Custom pads anchor on a minimal base rectangle; outline
			// points are pad-relative with the source rotation discarded.
			out.Width = 0.005
			out.Height = 0.005
			out.Rotation = 0
			for _, v := range vertices {
				out.Polygon = append(out.Polygon, footprint.Point{
					X: units.ToMM(v.X-ox) - x,
					Y: units.ToMM(v.Y-oy) - y,
				})
			}
		}
	}

	return out, warn
}
