package preview

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/footprint"
)

var (
	colorBackground = color.NRGBA{R: 0, G: 16, B: 35, A: 255}
	colorPadSMD     = color.NRGBA{R: 200, G: 52, B: 52, A: 255}
	colorPadTH      = color.NRGBA{R: 227, G: 183, B: 46, A: 255}
	colorDrill      = color.NRGBA{R: 26, G: 26, B: 26, A: 255}
	colorSilk       = color.NRGBA{R: 242, G: 237, B: 161, A: 255}
	colorFab        = color.NRGBA{R: 175, G: 175, B: 175, A: 255}
)

func graphicColor(layer string) color.NRGBA {
	if layer == "F.Fab" || layer == "B.Fab" {
		return colorFab
	}
	return colorSilk
}

// footprintBounds computes the drawable extent of a footprint.
func footprintBounds(fp *footprint.Footprint) Bounds {
	var b Bounds
	for _, p := range fp.Pads {
		r := max(p.Width, p.Height) / 2
		b.Extend(p.X-r, p.Y-r)
		b.Extend(p.X+r, p.Y+r)
	}
	for _, l := range fp.Lines {
		b.Extend(l.StartX, l.StartY)
		b.Extend(l.EndX, l.EndY)
	}
	for _, c := range fp.Circles {
		b.Extend(c.CenterX-c.Radius, c.CenterY-c.Radius)
		b.Extend(c.CenterX+c.Radius, c.CenterY+c.Radius)
	}
	return b
}

// render draws the footprint: graphics first, pads on top, drills last.
func render(gtx layout.Context, cam *Camera, fp *footprint.Footprint) {
	paint.Fill(gtx.Ops, colorBackground)

	for _, l := range fp.Lines {
		x1, y1 := cam.ToScreen(l.StartX, l.StartY)
		x2, y2 := cam.ToScreen(l.EndX, l.EndY)
		drawLine(gtx, x1, y1, x2, y2, max(l.Width*cam.Zoom, 1), graphicColor(l.Layer))
	}

	for _, c := range fp.Circles {
		x, y := cam.ToScreen(c.CenterX, c.CenterY)
		drawRing(gtx, x, y, c.Radius*cam.Zoom, max(c.Width*cam.Zoom, 1), graphicColor(c.Layer))
	}

	for _, p := range fp.Pads {
		drawPad(gtx, cam, p)
	}
}

func drawPad(gtx layout.Context, cam *Camera, p footprint.Pad) {
	x, y := cam.ToScreen(p.X, p.Y)
	w := max(p.Width*cam.Zoom, 2)
	h := max(p.Height*cam.Zoom, 2)

	fill := colorPadTH
	if p.Type == footprint.PadSMD {
		fill = colorPadSMD
	}

	switch p.Shape {
	case footprint.ShapeCircle:
		drawDisc(gtx, x, y, (w+h)/4, fill)
	case footprint.ShapeCustom:
		if len(p.Polygon) >= 2 {
			drawPolygon(gtx, cam, p, fill)
		} else {
			drawRotatedRect(gtx, x, y, w, h, p.Rotation, fill)
		}
	default:
		drawRotatedRect(gtx, x, y, w, h, p.Rotation, fill)
	}

	if p.Drill > 0 {
		drawDisc(gtx, x, y, p.Drill/2*cam.Zoom, colorDrill)
	}
}

func drawDisc(gtx layout.Context, x, y, radius float64, fill color.NRGBA) {
	radius = max(radius, 1)
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	rect := image.Rect(int(-radius), int(-radius), int(radius), int(radius))
	paint.FillShape(gtx.Ops, fill, clip.Ellipse(rect).Op(gtx.Ops))
}

func drawRing(gtx layout.Context, x, y, radius, width float64, stroke color.NRGBA) {
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	rect := image.Rect(int(-radius), int(-radius), int(radius), int(radius))
	paint.FillShape(gtx.Ops, stroke, clip.Stroke{
		Path:  clip.Ellipse(rect).Path(gtx.Ops),
		Width: float32(width),
	}.Op())
}

func drawRotatedRect(gtx layout.Context, x, y, w, h, degrees float64, fill color.NRGBA) {
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	radians := degrees * math.Pi / 180
	cos := float32(math.Cos(radians))
	sin := float32(math.Sin(radians))
	hw := float32(w / 2)
	hh := float32(h / 2)

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(-hw*cos+hh*sin, -hw*sin-hh*cos))
	path.LineTo(f32.Pt(hw*cos+hh*sin, hw*sin-hh*cos))
	path.LineTo(f32.Pt(hw*cos-hh*sin, hw*sin+hh*cos))
	path.LineTo(f32.Pt(-hw*cos-hh*sin, -hw*sin+hh*cos))
	path.Close()

	paint.FillShape(gtx.Ops, fill, clip.Outline{Path: path.End()}.Op())
}

func drawPolygon(gtx layout.Context, cam *Camera, p footprint.Pad, fill color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	for i, pt := range p.Polygon {
		sx, sy := cam.ToScreen(p.X+pt.X, p.Y+pt.Y)
		if i == 0 {
			path.MoveTo(f32.Pt(float32(sx), float32(sy)))
		} else {
			path.LineTo(f32.Pt(float32(sx), float32(sy)))
		}
	}
	path.Close()
	paint.FillShape(gtx.Ops, fill, clip.Outline{Path: path.End()}.Op())
}

func drawLine(gtx layout.Context, x1, y1, x2, y2, width float64, stroke color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y2)))

	paint.FillShape(gtx.Ops, stroke, clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op())
}
