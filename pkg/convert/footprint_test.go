package convert

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/footprint"
)

func TestFootprintPadRecentered(t *testing.T) {
	src := &easyeda.Footprint{
		Info:   easyeda.FootprintInfo{Name: "SOIC-8", SMD: true},
		Origin: easyeda.Point{X: 4000, Y: 3000},
		Pads: []easyeda.Pad{
			{Shape: easyeda.PadShapeRect, CenterX: 4000, CenterY: 3000, Width: 10, Height: 20, LayerID: 1, Number: "1"},
		},
	}
	fp, warnings := Footprint(src)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(fp.Pads) != 1 {
		t.Fatalf("got %d pads, want 1", len(fp.Pads))
	}
	p := fp.Pads[0]
	if !approx(p.X, 0) || !approx(p.Y, 0) {
		t.Errorf("pad at (%g, %g), want origin", p.X, p.Y)
	}
	if !approx(p.Width, 2.54) || !approx(p.Height, 5.08) {
		t.Errorf("pad size %gx%g, want 2.54x5.08", p.Width, p.Height)
	}
	if p.Type != footprint.PadSMD {
		t.Errorf("pad type = %v, want smd", p.Type)
	}
}

func TestFootprintThroughHolePad(t *testing.T) {
	src := &easyeda.Footprint{
		Pads: []easyeda.Pad{
			{Shape: easyeda.PadShapeEllipse, Number: "1", Width: 10, Height: 10, HoleRadius: 2},
		},
	}
	fp, _ := Footprint(src)
	p := fp.Pads[0]
	if p.Type != footprint.PadThroughHole {
		t.Fatalf("pad type = %v, want thru_hole", p.Type)
	}
	if !approx(p.Drill, 2*2*0.254) {
		t.Errorf("drill = %g, want %g", p.Drill, 2*2*0.254)
	}
	if len(p.Layers) != 2 || p.Layers[0] != "*.Cu" {
		t.Errorf("layers = %v, want *.Cu *.Mask", p.Layers)
	}
}

func TestFootprintPolygonPad(t *testing.T) {
	src := &easyeda.Footprint{
		Origin: easyeda.Point{X: 100, Y: 100},
		Pads: []easyeda.Pad{
			{Shape: easyeda.PadShapePolygon, Number: "1", CenterX: 110, CenterY: 100,
				Width: 10, Height: 10, LayerID: 1, Points: "100 90 120 90 120 110 100 110"},
		},
	}
	fp, warnings := Footprint(src)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	p := fp.Pads[0]
	if p.Shape != footprint.ShapeCustom {
		t.Fatalf("shape = %v, want custom", p.Shape)
	}
	if !approx(p.Width, 0.005) || p.Rotation != 0 {
		t.Errorf("anchor %gx%g rot %g, want 0.005 anchor with zero rotation", p.Width, p.Height, p.Rotation)
	}
	if len(p.Polygon) != 4 {
		t.Fatalf("got %d outline points, want 4", len(p.Polygon))
	}
	// First vertex (100,90) relative to the pad center at (110,100).
	if !approx(p.Polygon[0].X, -2.54) || !approx(p.Polygon[0].Y, -2.54) {
		t.Errorf("outline[0] = (%g, %g), want (-2.54, -2.54)", p.Polygon[0].X, p.Polygon[0].Y)
	}
}

func TestFootprintPolygonPadDegenerate(t *testing.T) {
	src := &easyeda.Footprint{
		Pads: []easyeda.Pad{
			{Shape: easyeda.PadShapePolygon, Number: "1", Width: 10, Height: 10, Points: "5 5"},
		},
	}
	fp, warnings := Footprint(src)
	if fp.Pads[0].Shape != footprint.ShapeRect {
		t.Errorf("shape = %v, want rect fallback", fp.Pads[0].Shape)
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
}

func TestFootprintHoleBecomesNPTH(t *testing.T) {
	src := &easyeda.Footprint{
		Origin: easyeda.Point{X: 0, Y: 0},
		Holes:  []easyeda.Hole{{X: 10, Y: 0, Diameter: 4}},
	}
	fp, _ := Footprint(src)
	if len(fp.Pads) != 1 {
		t.Fatalf("got %d pads, want 1", len(fp.Pads))
	}
	p := fp.Pads[0]
	if p.Type != footprint.PadNPTH {
		t.Errorf("pad type = %v, want np_thru_hole", p.Type)
	}
	if !approx(p.Drill, 4*0.254) {
		t.Errorf("drill = %g, want %g", p.Drill, 4*0.254)
	}
}

func TestFootprintTrackAndCircle(t *testing.T) {
	src := &easyeda.Footprint{
		Origin:  easyeda.Point{X: 10, Y: 10},
		Tracks:  []easyeda.Track{{StartX: 10, StartY: 10, EndX: 20, EndY: 10, Width: 1, LayerID: 3}},
		Circles: []easyeda.FootprintCircle{{CenterX: 10, CenterY: 10, Radius: 5, Width: 1, LayerID: 99}},
	}
	fp, _ := Footprint(src)
	if len(fp.Lines) != 1 || len(fp.Circles) != 1 {
		t.Fatalf("got %d lines and %d circles, want 1 each", len(fp.Lines), len(fp.Circles))
	}
	if fp.Lines[0].Layer != "F.SilkS" {
		t.Errorf("track layer = %q, want F.SilkS", fp.Lines[0].Layer)
	}
	// Unknown layer ids fall back to silkscreen.
	if fp.Circles[0].Layer != "F.SilkS" {
		t.Errorf("circle layer = %q, want F.SilkS", fp.Circles[0].Layer)
	}
	if !approx(fp.Lines[0].EndX, 2.54) {
		t.Errorf("line end x = %g, want 2.54", fp.Lines[0].EndX)
	}
}
