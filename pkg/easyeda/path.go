package easyeda

import (
	"fmt"
	"math"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Pin lines, arcs and PATH records carry their geometry as a small SVG-style
// path language ("M0,0h-20", "M 395 280 A 15 15 0 1 1 425 280"). The grammar
// below covers the command set EasyEDA emits; curve commands are recognized
// by the lexer but rejected when interpreted, so the surrounding record is
// skipped with a reason instead of silently mangled.

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)`},
	{Name: "Command", Pattern: `[MmLlHhVvAaZzCcSsQqTt]`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var pathParser = participle.MustBuild[PathData](
	participle.Lexer(pathLexer),
	participle.Elide("Whitespace"),
)

// PathData is a parsed command sequence.
type PathData struct {
	Commands []*PathCommand `@@*`
}

// PathCommand is one command letter with its numeric arguments.
type PathCommand struct {
	Name string    `@Command`
	Args []float64 `( @Number Comma? )*`
}

// ParsePath parses SVG-style path data.
func ParsePath(data string) (*PathData, error) {
	p, err := pathParser.ParseString("", data)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", data, err)
	}
	return p, nil
}

// PinLength extracts the pin line length from a pin path whose vertical
// segments were folded into horizontal ones at decode time. The length is
// the magnitude of the final h offset.
func PinLength(data string) (float64, error) {
	p, err := ParsePath(data)
	if err != nil {
		return 0, err
	}
	length := 0.0
	found := false
	for _, cmd := range p.Commands {
		if (cmd.Name == "h" || cmd.Name == "H") && len(cmd.Args) > 0 {
			length = math.Abs(cmd.Args[len(cmd.Args)-1])
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("path %q has no h segment", data)
	}
	return length, nil
}

// Points flattens a path of move/line commands into its vertices. Arc and
// curve commands are not representable as a vertex list and yield an error.
func (p *PathData) Points() ([]Point, error) {
	var pts []Point
	var cur Point
	for _, cmd := range p.Commands {
		switch cmd.Name {
		case "M", "L":
			for i := 0; i+1 < len(cmd.Args); i += 2 {
				cur = Point{X: cmd.Args[i], Y: cmd.Args[i+1]}
				pts = append(pts, cur)
			}
		case "m", "l":
			for i := 0; i+1 < len(cmd.Args); i += 2 {
				cur = Point{X: cur.X + cmd.Args[i], Y: cur.Y + cmd.Args[i+1]}
				pts = append(pts, cur)
			}
		case "H":
			for _, a := range cmd.Args {
				cur = Point{X: a, Y: cur.Y}
				pts = append(pts, cur)
			}
		case "h":
			for _, a := range cmd.Args {
				cur = Point{X: cur.X + a, Y: cur.Y}
				pts = append(pts, cur)
			}
		case "V":
			for _, a := range cmd.Args {
				cur = Point{X: cur.X, Y: a}
				pts = append(pts, cur)
			}
		case "v":
			for _, a := range cmd.Args {
				cur = Point{X: cur.X, Y: cur.Y + a}
				pts = append(pts, cur)
			}
		case "Z", "z":
			if len(pts) > 0 {
				cur = pts[0]
			}
		default:
			return nil, fmt.Errorf("unsupported path command %q", cmd.Name)
		}
	}
	if len(pts) < 2 {
		return nil, fmt.Errorf("path has fewer than two vertices")
	}
	return pts, nil
}

// ArcSegment is an elliptical arc in SVG endpoint parameterization.
type ArcSegment struct {
	Start     Point
	RX        float64
	RY        float64
	XRotation float64
	LargeArc  bool
	Sweep     bool
	End       Point
}

// Arc interprets a path of the form "M x y A rx ry rot laf sf x y" as a
// single arc segment.
func (p *PathData) Arc() (ArcSegment, error) {
	var seg ArcSegment
	haveStart := false
	haveArc := false
	for _, cmd := range p.Commands {
		switch cmd.Name {
		case "M":
			if len(cmd.Args) < 2 {
				return seg, fmt.Errorf("arc path M command needs two arguments")
			}
			seg.Start = Point{X: cmd.Args[0], Y: cmd.Args[1]}
			haveStart = true
		case "A", "a":
			if len(cmd.Args) < 7 {
				return seg, fmt.Errorf("arc path A command needs seven arguments")
			}
			seg.RX = math.Abs(cmd.Args[0])
			seg.RY = math.Abs(cmd.Args[1])
			seg.XRotation = cmd.Args[2]
			seg.LargeArc = cmd.Args[3] != 0
			seg.Sweep = cmd.Args[4] != 0
			seg.End = Point{X: cmd.Args[5], Y: cmd.Args[6]}
			if cmd.Name == "a" {
				seg.End.X += seg.Start.X
				seg.End.Y += seg.Start.Y
			}
			haveArc = true
		default:
			return seg, fmt.Errorf("unexpected command %q in arc path", cmd.Name)
		}
	}
	if !haveStart || !haveArc {
		return seg, fmt.Errorf("arc path needs an M and an A command")
	}
	return seg, nil
}

// Midpoint returns the point halfway along a circular arc segment. Only
// equal-radius segments have a well-defined circular midpoint; others
// report an error so callers can drop the shape.
func (a ArcSegment) Midpoint() (Point, error) {
	if a.RX != a.RY {
		return Point{}, fmt.Errorf("arc radii differ (%g vs %g)", a.RX, a.RY)
	}
	r := a.RX
	dx := (a.End.X - a.Start.X) / 2
	dy := (a.End.Y - a.Start.Y) / 2
	d := math.Hypot(dx, dy)
	if d == 0 {
		return Point{}, fmt.Errorf("arc endpoints coincide")
	}
	if r < d {
		// Per SVG, radii too small for the chord scale up to fit.
		r = d
	}
	h := math.Sqrt(math.Max(0, r*r-d*d))

	mx := (a.Start.X + a.End.X) / 2
	my := (a.Start.Y + a.End.Y) / 2

	// Unit perpendicular to the chord; which of the two candidate centers
	// applies follows from the large-arc and sweep flags.
	px, py := -dy/d, dx/d
	sign := 1.0
	if a.LargeArc == a.Sweep {
		sign = -1.0
	}
	cx := mx + sign*h*px
	cy := my + sign*h*py

	a1 := math.Atan2(a.Start.Y-cy, a.Start.X-cx)
	a2 := math.Atan2(a.End.Y-cy, a.End.X-cx)
	delta := a2 - a1
	if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	mid := a1 + delta/2
	return Point{X: cx + r*math.Cos(mid), Y: cy + r*math.Sin(mid)}, nil
}
