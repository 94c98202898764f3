package preview

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/footprint"
)

func TestBoundsExtend(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Fatalf("zero bounds not empty")
	}
	b.Extend(-1, 2)
	b.Extend(3, -4)
	if b.MinX != -1 || b.MaxX != 3 || b.MinY != -4 || b.MaxY != 2 {
		t.Errorf("bounds = %+v", b)
	}
	cx, cy := b.center()
	if cx != 1 || cy != -1 {
		t.Errorf("center = (%g, %g), want (1, -1)", cx, cy)
	}
}

func TestFootprintBounds(t *testing.T) {
	fp := &footprint.Footprint{
		Pads: []footprint.Pad{
			{X: -5, Y: 0, Width: 2, Height: 2},
			{X: 5, Y: 0, Width: 2, Height: 2},
		},
		Lines: []footprint.Line{{StartX: 0, StartY: -3, EndX: 0, EndY: 3}},
	}
	b := footprintBounds(fp)
	if b.MinX != -6 || b.MaxX != 6 {
		t.Errorf("x extent %g..%g, want -6..6", b.MinX, b.MaxX)
	}
	if b.MinY != -3 || b.MaxY != 3 {
		t.Errorf("y extent %g..%g, want -3..3", b.MinY, b.MaxY)
	}
}

func TestCameraFitCenters(t *testing.T) {
	cam := NewCamera(800, 600)
	var b Bounds
	b.Extend(-10, -10)
	b.Extend(30, 10)
	cam.Fit(b)

	if cam.CenterX != 10 || cam.CenterY != 0 {
		t.Errorf("center = (%g, %g), want (10, 0)", cam.CenterX, cam.CenterY)
	}
	sx, sy := cam.ToScreen(10, 0)
	if sx != 400 || sy != 300 {
		t.Errorf("center maps to (%g, %g), want screen center", sx, sy)
	}
	// All corners must land inside the screen.
	for _, pt := range [][2]float64{{-10, -10}, {30, 10}} {
		x, y := cam.ToScreen(pt[0], pt[1])
		if x < 0 || x > 800 || y < 0 || y > 600 {
			t.Errorf("corner %v off screen at (%g, %g)", pt, x, y)
		}
	}
}

func TestCameraZoomAtKeepsCursorPoint(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Zoom = 10

	before := [2]float64{200, 150}
	wx := (before[0] - 400) / cam.Zoom
	wy := (before[1] - 300) / cam.Zoom

	cam.ZoomAt(before[0], before[1], 2)

	sx, sy := cam.ToScreen(wx, wy)
	if math.Abs(sx-before[0]) > 1e-9 || math.Abs(sy-before[1]) > 1e-9 {
		t.Errorf("cursor point drifted to (%g, %g), want (%g, %g)", sx, sy, before[0], before[1])
	}
}

func TestCameraFlipMirrorsX(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Zoom = 10
	x1, y1 := cam.ToScreen(5, 5)
	cam.Flip()
	x2, y2 := cam.ToScreen(-5, 5)
	if x1 != x2 || y1 != y2 {
		t.Errorf("flip: (%g,%g) != (%g,%g)", x1, y1, x2, y2)
	}
}
