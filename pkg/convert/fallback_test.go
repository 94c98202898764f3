package convert

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda"
)

func TestPinCountFromPackage(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"LQFN-56_L7.0-W7.0", 56},
		{"SOIC-8", 8},
		{"SOT-23-3", 3},
		{"Connector_10pin", 10},
		{"HDR-4-Pin", 4},
		{"RadialDisc", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := PinCountFromPackage(c.name); got != c.want {
			t.Errorf("PinCountFromPackage(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestFallbackSmallPart(t *testing.T) {
	sym, warnings := Fallback(easyeda.SymbolInfo{Name: "Cap", Prefix: "C?", Package: "RadialDisc"}, []string{"1", "2"})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if sym.Info.Prefix != "C" {
		t.Errorf("prefix = %q, want C", sym.Info.Prefix)
	}
	if len(sym.Pins) != 2 {
		t.Fatalf("got %d pins, want 2", len(sym.Pins))
	}
	if sym.Pins[0].Orientation != 180 || sym.Pins[1].Orientation != 0 {
		t.Errorf("orientations = %d, %d; want 180, 0", sym.Pins[0].Orientation, sym.Pins[1].Orientation)
	}
	if sym.Pins[0].Name != "Pin_1" || sym.Pins[0].Number != "1" {
		t.Errorf("pin[0] = %q/%q, want Pin_1/1", sym.Pins[0].Name, sym.Pins[0].Number)
	}
	if len(sym.Rectangles) != 1 {
		t.Fatalf("fallback body missing")
	}
	r := sym.Rectangles[0]
	if r.EndX-r.StartX != 12.7 {
		t.Errorf("body width = %g, want 12.7", r.EndX-r.StartX)
	}
}

func TestFallbackPadNumbersVerbatim(t *testing.T) {
	sym, _ := Fallback(easyeda.SymbolInfo{}, []string{"A1", "B2", "C3"})
	var numbers []string
	for _, p := range sym.Pins {
		numbers = append(numbers, p.Number)
	}
	want := []string{"A1", "B2", "C3"}
	for i := range want {
		if numbers[i] != want[i] {
			t.Errorf("pin %d number = %q, want %q", i, numbers[i], want[i])
		}
	}
}

func TestFallbackPackageCount(t *testing.T) {
	sym, warnings := Fallback(easyeda.SymbolInfo{Package: "LQFP-48_L7.0"}, nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(sym.Pins) != 48 {
		t.Fatalf("got %d pins, want 48", len(sym.Pins))
	}

	bySide := map[int]int{}
	for _, p := range sym.Pins {
		bySide[p.Orientation]++
	}
	// 48 pins: four per horizontal side, the remaining 40 split left/right.
	if bySide[180] != 20 || bySide[0] != 20 {
		t.Errorf("left/right = %d/%d, want 20/20", bySide[180], bySide[0])
	}
	if bySide[270] != 4 || bySide[90] != 4 {
		t.Errorf("bottom/top = %d/%d, want 4/4", bySide[270], bySide[90])
	}
}

func TestFallbackDefaultCount(t *testing.T) {
	sym, warnings := Fallback(easyeda.SymbolInfo{Name: "Mystery"}, nil)
	if len(sym.Pins) != defaultPinCount {
		t.Fatalf("got %d pins, want %d", len(sym.Pins), defaultPinCount)
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
	if sym.Info.Prefix != "U" {
		t.Errorf("prefix = %q, want U", sym.Info.Prefix)
	}
}

func TestFallbackLargePartMinimumDimension(t *testing.T) {
	numbers := make([]string, 100)
	for i := range numbers {
		numbers[i] = "p"
	}
	sym, _ := Fallback(easyeda.SymbolInfo{}, numbers)
	r := sym.Rectangles[0]
	width := r.EndX - r.StartX
	height := r.StartY - r.EndY
	small, large := min(width, height), max(width, height)
	if small < large*0.5 {
		t.Errorf("body %gx%g thinner than half its long side", width, height)
	}
}
