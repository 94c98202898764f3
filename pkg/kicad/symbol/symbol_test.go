package symbol

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	chewxy "github.com/chewxy/sexp"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/sexp"
)

func testSymbol() *Symbol {
	return &Symbol{
		Info: Info{
			Name:      "NE555 Timer",
			Prefix:    "U",
			Footprint: "OTParts:SOIC-8",
			Datasheet: "https://example.com/ne555.pdf",
			LCSCID:    "C7593",
		},
		Pins: []Pin{
			{Name: "VCC", Number: "8", Type: PinPowerIn, Length: 2.54, X: -7.62, Y: 5.08},
			{Name: "GND", Number: "1", Type: PinPowerIn, Length: 2.54, X: -7.62, Y: -5.08},
		},
		Rectangles: []Rectangle{
			{StartX: -5.08, StartY: 7.62, EndX: 5.08, EndY: -7.62},
		},
	}
}

func TestID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"NE555 Timer", "NE555_Timer"},
		{"74HC/HCT04", "74HC_HCT04"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := ID(tt.in); got != tt.want {
			t.Errorf("ID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStylePinName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"RESET#", "~{RESET}"},
		{"CS#/GPIO1", "~{CS}/GPIO1"},
		{"D0", "D0"},
	}
	for _, tt := range tests {
		if got := stylePinName(tt.in); got != tt.want {
			t.Errorf("stylePinName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeStructure(t *testing.T) {
	record := testSymbol().Encode()

	exprs, err := sexp.ParseString(record)
	if err != nil {
		t.Fatalf("encoded record unparsable: %v", err)
	}
	root := exprs[0]

	id, err := sexp.GetString(root, 1)
	if err != nil || id != "NE555_Timer" {
		t.Errorf("record id = %q (%v)", id, err)
	}

	props := sexp.FindAllNodes(root, "property")
	keys := map[string]string{}
	for _, p := range props {
		k, _ := sexp.GetString(p, 1)
		v, _ := sexp.GetString(p, 2)
		keys[k] = v
	}
	if keys["Reference"] != "U" {
		t.Errorf("Reference = %q", keys["Reference"])
	}
	if keys["Value"] != "NE555 Timer" {
		t.Errorf("Value = %q", keys["Value"])
	}
	if keys["Footprint"] != "OTParts:SOIC-8" {
		t.Errorf("Footprint = %q", keys["Footprint"])
	}
	if keys["LCSC"] != "C7593" {
		t.Errorf("LCSC = %q", keys["LCSC"])
	}
	if _, ok := keys["Manufacturer"]; ok {
		t.Error("empty Manufacturer should not be emitted")
	}

	unit, ok := sexp.FindNode(root, "symbol")
	if !ok {
		t.Fatal("no drawing unit")
	}
	unitID, _ := sexp.GetString(unit, 1)
	if unitID != "NE555_Timer_0_1" {
		t.Errorf("unit id = %q", unitID)
	}
	pins := sexp.FindAllNodes(unit, "pin")
	if len(pins) != 2 {
		t.Fatalf("got %d pins, want 2", len(pins))
	}
	if len(sexp.FindAllNodes(unit, "rectangle")) != 1 {
		t.Error("rectangle missing from drawing unit")
	}
}

func TestEncodePinOrientation(t *testing.T) {
	sym := &Symbol{
		Info: Info{Name: "X", Prefix: "U"},
		Pins: []Pin{{Name: "A", Number: "1", Orientation: 90, Length: 2.54}},
	}
	record := sym.Encode()
	if !strings.Contains(record, "(at 0.00 0.00 270)") {
		t.Errorf("pin rotation 90 should emit direction 270:\n%s", record)
	}
}

func TestEncodeReferenceAbovePins(t *testing.T) {
	record := testSymbol().Encode()
	// Reference sits above the highest pin, Value below the lowest.
	if !strings.Contains(record, "(at 0 10.16 0)") {
		t.Errorf("Reference offset wrong:\n%s", record)
	}
	if !strings.Contains(record, "(at 0 -10.16 0)") {
		t.Errorf("Value offset wrong:\n%s", record)
	}
}

func TestUpdateCreatesLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otparts.kicad_sym")
	if err := Update(path, testSymbol(), true); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read library: %v", err)
	}
	exprs, err := sexp.ParseString(string(raw))
	if err != nil {
		t.Fatalf("library unparsable: %v", err)
	}
	name, _ := sexp.NodeName(exprs[0])
	if name != "kicad_symbol_lib" {
		t.Errorf("envelope = %q", name)
	}
	if len(sexp.FindAllNodes(exprs[0], "symbol")) != 1 {
		t.Error("expected one symbol record")
	}
}

func TestUpdateOverwriteReplacesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otparts.kicad_sym")
	sym := testSymbol()
	if err := Update(path, sym, true); err != nil {
		t.Fatalf("first Update() error: %v", err)
	}

	sym.Info.Datasheet = "https://example.com/rev2.pdf"
	if err := Update(path, sym, true); err != nil {
		t.Fatalf("second Update() error: %v", err)
	}

	raw, _ := os.ReadFile(path)
	if n := strings.Count(string(raw), `(symbol "NE555_Timer"`); n != 1 {
		t.Errorf("library holds %d records for the same id, want 1", n)
	}
	if !strings.Contains(string(raw), "rev2.pdf") {
		t.Error("record was not replaced")
	}
}

func TestUpdateNoOverwriteKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otparts.kicad_sym")
	sym := testSymbol()
	if err := Update(path, sym, true); err != nil {
		t.Fatalf("first Update() error: %v", err)
	}
	before, _ := os.ReadFile(path)

	sym.Info.Datasheet = "https://example.com/rev2.pdf"
	if err := Update(path, sym, false); err != nil {
		t.Fatalf("no-overwrite Update() should succeed: %v", err)
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("no-overwrite update changed the file")
	}
}

func TestUpdateMultipleSymbols(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otparts.kicad_sym")
	a := testSymbol()
	b := testSymbol()
	b.Info.Name = "LM358"
	if err := Update(path, a, true); err != nil {
		t.Fatal(err)
	}
	if err := Update(path, b, true); err != nil {
		t.Fatal(err)
	}
	raw, _ := os.ReadFile(path)
	exprs, err := sexp.ParseString(string(raw))
	if err != nil {
		t.Fatalf("library unparsable: %v", err)
	}
	if len(sexp.FindAllNodes(exprs[0], "symbol")) != 2 {
		t.Error("expected two symbol records")
	}
}

func TestLibraryWellFormed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otparts.kicad_sym")
	if err := Update(path, testSymbol(), true); err != nil {
		t.Fatal(err)
	}
	raw, _ := os.ReadFile(path)

	// Cross-check with an independent parser.
	if _, err := chewxy.ParseString(string(raw)); err != nil {
		t.Fatalf("emitted library rejected: %v", err)
	}
}
