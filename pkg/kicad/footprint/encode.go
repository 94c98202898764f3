package footprint

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/sexp"
)

// Name sanitization matches the symbol side so the symbol's Footprint
// property resolves to the emitted file.
func fileName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// Encode renders the footprint as a complete .kicad_mod document.
func (f *Footprint) Encode() string {
	name := fileName(f.Name)
	attr := "through_hole"
	if f.SMD {
		attr = "smd"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "(footprint %s\n", sexp.Quote(name))
	b.WriteString("  (version 20211014)\n")
	b.WriteString("  (generator otparts)\n")
	b.WriteString("  (layer \"F.Cu\")\n")
	fmt.Fprintf(&b, "  (attr %s)\n", attr)

	b.WriteString("  (fp_text reference \"REF**\" (at 0 -3) (layer \"F.SilkS\")\n")
	b.WriteString("    (effects (font (size 1 1) (thickness 0.15)))\n")
	b.WriteString("  )\n")
	fmt.Fprintf(&b, "  (fp_text value %s (at 0 3) (layer \"F.Fab\")\n", sexp.Quote(name))
	b.WriteString("    (effects (font (size 1 1) (thickness 0.15)))\n")
	b.WriteString("  )\n")

	for _, pad := range f.Pads {
		encodePad(&b, pad)
	}
	for _, line := range f.Lines {
		encodeLine(&b, line)
	}
	for _, circle := range f.Circles {
		encodeCircle(&b, circle)
	}
	for _, text := range f.Texts {
		encodeText(&b, text)
	}
	if f.Model != nil {
		encodeModel(&b, f.Model)
	}

	b.WriteString(")\n")
	return b.String()
}

func encodePad(b *strings.Builder, p Pad) {
	fmt.Fprintf(b, "  (pad %s %s %s\n", sexp.Quote(p.Number), p.Type, p.Shape)
	fmt.Fprintf(b, "    (at %.3f %.3f %.1f)\n", p.X, p.Y, p.Rotation)
	fmt.Fprintf(b, "    (size %.3f %.3f)\n", p.Width, p.Height)

	layers := make([]string, len(p.Layers))
	for i, l := range p.Layers {
		layers[i] = sexp.Quote(l)
	}
	fmt.Fprintf(b, "    (layers %s)\n", strings.Join(layers, " "))

	if p.Drill > 0 {
		fmt.Fprintf(b, "    (drill %.3f)\n", p.Drill)
	}
	if p.Shape == ShapeCustom && len(p.Polygon) >= 2 {
		b.WriteString("    (zone_connect 2)\n")
		b.WriteString("    (options (clearance outline) (anchor rect))\n")
		b.WriteString("    (primitives\n")
		b.WriteString("      (gr_poly\n")
		b.WriteString("        (pts\n")
		for _, pt := range p.Polygon {
			fmt.Fprintf(b, "          (xy %.3f %.3f)\n", pt.X, pt.Y)
		}
		b.WriteString("        )\n")
		b.WriteString("        (width 0.1)\n")
		b.WriteString("      )\n")
		b.WriteString("    )\n")
	}
	b.WriteString("  )\n")
}

func encodeLine(b *strings.Builder, l Line) {
	b.WriteString("  (fp_line\n")
	fmt.Fprintf(b, "    (start %.3f %.3f)\n", l.StartX, l.StartY)
	fmt.Fprintf(b, "    (end %.3f %.3f)\n", l.EndX, l.EndY)
	fmt.Fprintf(b, "    (stroke (width %.3f) (type solid))\n", l.Width)
	fmt.Fprintf(b, "    (layer %s)\n", sexp.Quote(l.Layer))
	b.WriteString("  )\n")
}

func encodeCircle(b *strings.Builder, c Circle) {
	b.WriteString("  (fp_circle\n")
	fmt.Fprintf(b, "    (center %.3f %.3f)\n", c.CenterX, c.CenterY)
	fmt.Fprintf(b, "    (end %.3f %.3f)\n", c.CenterX+c.Radius, c.CenterY)
	fmt.Fprintf(b, "    (stroke (width %.3f) (type solid))\n", c.Width)
	b.WriteString("    (fill none)\n")
	fmt.Fprintf(b, "    (layer %s)\n", sexp.Quote(c.Layer))
	b.WriteString("  )\n")
}

func encodeText(b *strings.Builder, t Text) {
	fmt.Fprintf(b, "  (fp_text user %s\n", sexp.Quote(t.Text))
	fmt.Fprintf(b, "    (at %.3f %.3f %.1f)\n", t.X, t.Y, t.Rotation)
	fmt.Fprintf(b, "    (layer %s)\n", sexp.Quote(t.Layer))
	fmt.Fprintf(b, "    (effects (font (size %.3f %.3f) (thickness %.3f)))\n", t.Size, t.Size, t.Size*0.15)
	b.WriteString("  )\n")
}

func encodeModel(b *strings.Builder, m *Model) {
	fmt.Fprintf(b, "  (model %s\n", sexp.Quote(m.Path))
	fmt.Fprintf(b, "    (offset (xyz %.4f %.4f %.4f))\n", m.OffsetX, m.OffsetY, m.OffsetZ)
	fmt.Fprintf(b, "    (scale (xyz %.4f %.4f %.4f))\n", m.ScaleX, m.ScaleY, m.ScaleZ)
	fmt.Fprintf(b, "    (rotate (xyz %.4f %.4f %.4f))\n", m.RotateX, m.RotateY, m.RotateZ)
	b.WriteString("  )\n")
}
