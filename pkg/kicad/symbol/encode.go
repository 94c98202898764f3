package symbol

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/sexp"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/units"
)

// Layout constants for KiCad 6 symbol output, all in millimeters.
const (
	pinNameSize          = 1.27
	pinNumSize           = 1.27
	propertyFontSize     = 1.27
	boxLineWidth         = 0.254
	fieldOffsetStart     = 5.08
	fieldOffsetIncrement = 2.54
)

// ID returns the library identifier for a symbol name: spaces and slashes
// collapse to underscores so the id survives as a single token.
func ID(name string) string {
	return strings.NewReplacer(" ", "_", "/", "_").Replace(name)
}

// styleName renders one pin-name fragment, turning a trailing '#' into the
// KiCad overline markup.
func styleName(text string) string {
	if strings.HasSuffix(text, "#") {
		return "~{" + strings.TrimSuffix(text, "#") + "}"
	}
	return text
}

// stylePinName applies overline styling per '/'-separated fragment.
func stylePinName(name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = styleName(p)
	}
	return strings.Join(parts, "/")
}

// Encode renders the symbol as one library record, indented for splicing
// into a .kicad_sym file. The record ends with a newline.
func (s *Symbol) Encode() string {
	id := ID(s.Info.Name)

	yLow, yHigh := 0.0, 0.0
	for i, pin := range s.Pins {
		if i == 0 || pin.Y < yLow {
			yLow = pin.Y
		}
		if i == 0 || pin.Y > yHigh {
			yHigh = pin.Y
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  (symbol %s\n", sexp.Quote(id))
	b.WriteString("    (in_bom yes)\n")
	b.WriteString("    (on_board yes)\n")
	s.encodeProperties(&b, yLow, yHigh)
	fmt.Fprintf(&b, "    (symbol %s\n", sexp.Quote(id+"_0_1"))
	for _, r := range s.Rectangles {
		encodeRectangle(&b, r)
	}
	for _, c := range s.Circles {
		encodeCircle(&b, c)
	}
	for _, a := range s.Arcs {
		encodeArc(&b, a)
	}
	for _, p := range s.Polygons {
		encodePolygon(&b, p)
	}
	for _, pin := range s.Pins {
		encodePin(&b, pin)
	}
	b.WriteString("    )\n")
	b.WriteString("  )\n")
	return b.String()
}

func (s *Symbol) encodeProperties(b *strings.Builder, yLow, yHigh float64) {
	writeProperty(b, "Reference", s.Info.Prefix, 0, yHigh+fieldOffsetStart, false)
	writeProperty(b, "Value", s.Info.Name, 1, yLow-fieldOffsetStart, false)

	offset := fieldOffsetStart
	hidden := []struct {
		key   string
		value string
		id    int
	}{
		{"Footprint", s.Info.Footprint, 2},
		{"Datasheet", s.Info.Datasheet, 3},
		{"LCSC", s.Info.LCSCID, 4},
		{"Manufacturer", s.Info.Manufacturer, 5},
		{"JLC Part", s.Info.JLCID, 6},
	}
	for _, p := range hidden {
		if p.value == "" {
			continue
		}
		offset += fieldOffsetIncrement
		writeProperty(b, p.key, p.value, p.id, yLow-offset, true)
	}
}

func writeProperty(b *strings.Builder, key, value string, id int, y float64, hide bool) {
	fmt.Fprintf(b, "    (property %s %s\n", sexp.Quote(key), sexp.Quote(value))
	fmt.Fprintf(b, "      (id %d)\n", id)
	fmt.Fprintf(b, "      (at 0 %.2f 0)\n", y)
	if hide {
		fmt.Fprintf(b, "      (effects (font (size %g %g)) hide)\n", propertyFontSize, propertyFontSize)
	} else {
		fmt.Fprintf(b, "      (effects (font (size %g %g)))\n", propertyFontSize, propertyFontSize)
	}
	b.WriteString("    )\n")
}

func encodePin(b *strings.Builder, p Pin) {
	fmt.Fprintf(b, "      (pin %s %s\n", p.Type, p.Style)
	fmt.Fprintf(b, "        (at %.2f %.2f %d)\n", p.X, p.Y, units.PinOrientation(p.Orientation))
	fmt.Fprintf(b, "        (length %.2f)\n", p.Length)
	fmt.Fprintf(b, "        (name %s (effects (font (size %g %g))))\n",
		sexp.Quote(stylePinName(p.Name)), pinNameSize, pinNameSize)
	fmt.Fprintf(b, "        (number %s (effects (font (size %g %g))))\n",
		sexp.Quote(p.Number), pinNumSize, pinNumSize)
	b.WriteString("      )\n")
}

func encodeRectangle(b *strings.Builder, r Rectangle) {
	b.WriteString("      (rectangle\n")
	fmt.Fprintf(b, "        (start %.2f %.2f)\n", r.StartX, r.StartY)
	fmt.Fprintf(b, "        (end %.2f %.2f)\n", r.EndX, r.EndY)
	writeStrokeFill(b, FillBackground)
	b.WriteString("      )\n")
}

func encodeCircle(b *strings.Builder, c Circle) {
	b.WriteString("      (circle\n")
	fmt.Fprintf(b, "        (center %.2f %.2f)\n", c.CenterX, c.CenterY)
	fmt.Fprintf(b, "        (radius %.2f)\n", c.Radius)
	writeStrokeFill(b, c.Fill)
	b.WriteString("      )\n")
}

func encodeArc(b *strings.Builder, a Arc) {
	b.WriteString("      (arc\n")
	fmt.Fprintf(b, "        (start %.2f %.2f)\n", a.StartX, a.StartY)
	fmt.Fprintf(b, "        (mid %.2f %.2f)\n", a.MidX, a.MidY)
	fmt.Fprintf(b, "        (end %.2f %.2f)\n", a.EndX, a.EndY)
	writeStrokeFill(b, FillNone)
	b.WriteString("      )\n")
}

func encodePolygon(b *strings.Builder, p Polygon) {
	if len(p.Points) < 2 {
		return
	}
	fill := FillNone
	if p.Closed {
		fill = FillBackground
	}
	b.WriteString("      (polyline\n")
	b.WriteString("        (pts\n")
	for _, pt := range p.Points {
		fmt.Fprintf(b, "          (xy %.2f %.2f)\n", pt.X, pt.Y)
	}
	b.WriteString("        )\n")
	writeStrokeFill(b, fill)
	b.WriteString("      )\n")
}

func writeStrokeFill(b *strings.Builder, fill Fill) {
	fmt.Fprintf(b, "        (stroke (width %g) (type default) (color 0 0 0 0))\n", boxLineWidth)
	fmt.Fprintf(b, "        (fill (type %s))\n", fill)
}
