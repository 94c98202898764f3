package units

import (
	"math"
	"testing"
)

func TestToMM(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{10, 2.54},   // 100 mil
		{100, 25.4},  // one inch
		{-20, -5.08}, // pin length stored as negative h offset
	}

	for _, tc := range cases {
		got := ToMM(tc.in)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ToMM(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 2.54, 1000} {
		got := ToMM(FromMM(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("ToMM(FromMM(%v)) = %v, want %v", v, got, v)
		}
	}
}

func TestSymbolYInverts(t *testing.T) {
	// EasyEDA Y grows downward; a point below the origin must end up with a
	// negative KiCad Y.
	if got := SymbolY(110, 100); math.Abs(got-(-2.54)) > 1e-9 {
		t.Errorf("SymbolY(110, 100) = %v, want -2.54", got)
	}
	if got := SymbolX(110, 100); math.Abs(got-2.54) > 1e-9 {
		t.Errorf("SymbolX(110, 100) = %v, want 2.54", got)
	}
}

func TestPinOrientation(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 180},
		{90, 270},
		{180, 0},
		{270, 90},
	}
	for _, tc := range cases {
		if got := PinOrientation(tc.in); got != tc.want {
			t.Errorf("PinOrientation(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestModelTranslation(t *testing.T) {
	tx, ty, tz := ModelTranslation(110, 110, 10, 100, 100)
	if math.Abs(tx-2.54) > 1e-9 {
		t.Errorf("tx = %v, want 2.54", tx)
	}
	if math.Abs(ty-(-2.54)) > 1e-9 {
		t.Errorf("ty = %v, want -2.54", ty)
	}
	if math.Abs(tz-(-2.54)) > 1e-9 {
		t.Errorf("tz = %v, want -2.54", tz)
	}
}

func TestModelRotation(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{90, 270},
		{180, 180},
		{270, 90},
	}
	for _, tc := range cases {
		if got := ModelRotation(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ModelRotation(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
