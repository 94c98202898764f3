package preview

// Bounds is an axis-aligned extent in footprint millimeters.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
	set        bool
}

// Extend grows the bounds to include a point.
func (b *Bounds) Extend(x, y float64) {
	if !b.set {
		b.MinX, b.MaxX = x, x
		b.MinY, b.MaxY = y, y
		b.set = true
		return
	}
	b.MinX = min(b.MinX, x)
	b.MaxX = max(b.MaxX, x)
	b.MinY = min(b.MinY, y)
	b.MaxY = max(b.MaxY, y)
}

// Empty reports whether no point was ever added.
func (b Bounds) Empty() bool { return !b.set }

func (b Bounds) width() float64  { return b.MaxX - b.MinX }
func (b Bounds) height() float64 { return b.MaxY - b.MinY }

func (b Bounds) center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Camera maps footprint millimeters onto screen pixels. Footprint files and
// the screen share the y-down convention, so no axis flip is involved;
// Flipped mirrors the x axis to mimic looking at the board from the back.
type Camera struct {
	CenterX float64
	CenterY float64
	// Zoom is in pixels per millimeter.
	Zoom    float64
	Width   int
	Height  int
	Flipped bool
}

// NewCamera returns a camera for the given screen size.
func NewCamera(width, height int) *Camera {
	return &Camera{Zoom: 20, Width: width, Height: height}
}

// Resize updates the screen dimensions.
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

// Fit centers the view on the bounds and picks a zoom that shows all of it
// with a small margin.
func (c *Camera) Fit(b Bounds) {
	if b.Empty() {
		return
	}
	c.CenterX, c.CenterY = b.center()

	const margin = 0.9
	zx, zy := c.Zoom, c.Zoom
	if b.width() > 0 {
		zx = float64(c.Width) / b.width() * margin
	}
	if b.height() > 0 {
		zy = float64(c.Height) / b.height() * margin
	}
	c.Zoom = min(zx, zy)
}

// ToScreen converts a footprint coordinate to screen pixels.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	if c.Flipped {
		x = 2*c.CenterX - x
	}
	sx := (x-c.CenterX)*c.Zoom + float64(c.Width)/2
	sy := (y-c.CenterY)*c.Zoom + float64(c.Height)/2
	return sx, sy
}

// ZoomAt scales the view by factor keeping the screen point fixed.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	if factor <= 0 {
		return
	}
	// The footprint point under the cursor before zooming.
	wx := (sx-float64(c.Width)/2)/c.Zoom + c.CenterX
	wy := (sy-float64(c.Height)/2)/c.Zoom + c.CenterY

	c.Zoom *= factor

	c.CenterX = wx - (sx-float64(c.Width)/2)/c.Zoom
	c.CenterY = wy - (sy-float64(c.Height)/2)/c.Zoom
}

// Flip mirrors the view.
func (c *Camera) Flip() {
	c.Flipped = !c.Flipped
}
