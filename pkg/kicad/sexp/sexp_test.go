package sexp

import (
	"strings"
	"testing"
)

func TestParseSimple(t *testing.T) {
	exprs, err := ParseString(`(at 100 50 90)`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("got %d expressions, want 1", len(exprs))
	}
	name, err := NodeName(exprs[0])
	if err != nil || name != "at" {
		t.Errorf("node name = %q (%v), want at", name, err)
	}
	x, err := GetFloat(exprs[0], 1)
	if err != nil || x != 100 {
		t.Errorf("x = %v (%v), want 100", x, err)
	}
}

func TestParseQuotedStringWithSpaces(t *testing.T) {
	exprs, err := ParseString(`(property "Value" "NE555 Timer IC")`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	val, err := GetString(exprs[0], 2)
	if err != nil {
		t.Fatalf("GetString() error: %v", err)
	}
	if val != "NE555 Timer IC" {
		t.Errorf("value = %q, want NE555 Timer IC", val)
	}
}

func TestParseEscapes(t *testing.T) {
	exprs, err := ParseString(`(name "a \"b\" c")`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	val, err := GetString(exprs[0], 1)
	if err != nil {
		t.Fatalf("GetString() error: %v", err)
	}
	if val != `a "b" c` {
		t.Errorf("value = %q", val)
	}
}

func TestStringRoundTrip(t *testing.T) {
	src := `(symbol "R_10k 5%" (in_bom yes))`
	exprs, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	got := exprs[0].String()
	if got != src {
		t.Errorf("round trip = %q, want %q", got, src)
	}
}

func TestParseNested(t *testing.T) {
	exprs, err := ParseString(`(kicad_symbol_lib (version 20211014) (generator test))`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	ver, ok := FindNode(exprs[0], "version")
	if !ok {
		t.Fatal("version node not found")
	}
	v, err := GetInt(ver, 1)
	if err != nil || v != 20211014 {
		t.Errorf("version = %d (%v)", v, err)
	}
	if _, ok := FindNode(exprs[0], "missing"); ok {
		t.Error("FindNode found a node that does not exist")
	}
}

func TestFindAllNodes(t *testing.T) {
	exprs, err := ParseString(`(fp (pad "1") (pad "2") (line))`)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	pads := FindAllNodes(exprs[0], "pad")
	if len(pads) != 2 {
		t.Fatalf("got %d pads, want 2", len(pads))
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{`(unclosed`, `)`, `(bad "unterminated`} {
		if _, err := ParseString(src); err == nil {
			t.Errorf("ParseString(%q) should fail", src)
		}
	}
}

func TestQuote(t *testing.T) {
	if got := Quote(`a "b" \c`); got != `"a \"b\" \\c"` {
		t.Errorf("Quote = %s", got)
	}
}

const testLib = `(kicad_symbol_lib
  (version 20211014)
  (generator otparts)
  (symbol "R_1k"
    (in_bom yes)
    (property "Value" "R (1k)")
  )
  (symbol "C_100n"
    (in_bom yes)
  )
)
`

func TestFindRecord(t *testing.T) {
	start, end, ok := FindRecord(testLib, "symbol", "R_1k")
	if !ok {
		t.Fatal("record not found")
	}
	span := testLib[start:end]
	if !strings.HasPrefix(span, `(symbol "R_1k"`) {
		t.Errorf("span starts with %q", span[:20])
	}
	if !strings.HasSuffix(span, ")") {
		t.Errorf("span ends with %q", span[len(span)-5:])
	}
	// The quoted "R (1k)" value must not unbalance the scan.
	if strings.Contains(testLib[end:], "R (1k)") {
		t.Error("span ended before the record's own content")
	}
	if strings.Contains(span, "C_100n") {
		t.Error("span swallowed the following record")
	}
}

func TestFindRecordSkipsQuotedOpener(t *testing.T) {
	// The first property's raw bytes contain `(symbol "B"` spanning a
	// string boundary; the scan must not anchor on it.
	lib := "(kicad_symbol_lib\n" +
		"  (symbol \"A\"\n" +
		"    (property \"Note\" \"see (symbol \"B\" elsewhere\")\n" +
		"  )\n" +
		"  (symbol \"B\"\n" +
		"    (pin passive line)\n" +
		"  )\n" +
		")\n"
	start, end, ok := FindRecord(lib, "symbol", "B")
	if !ok {
		t.Fatal("record not found")
	}
	span := lib[start:end]
	if !strings.HasPrefix(span, "(symbol \"B\"\n") {
		t.Errorf("span anchored inside a string: %q", span)
	}
	if !strings.Contains(span, "(pin passive line)") {
		t.Errorf("span misses the record body: %q", span)
	}
}

func TestFindRecordMissing(t *testing.T) {
	if _, _, ok := FindRecord(testLib, "symbol", "nope"); ok {
		t.Fatal("found a record that does not exist")
	}
}

func TestRemoveRecord(t *testing.T) {
	out := RemoveRecord(testLib, "symbol", "R_1k")
	if strings.Contains(out, "R_1k") {
		t.Error("record still present after removal")
	}
	if !strings.Contains(out, "C_100n") {
		t.Error("removal damaged the other record")
	}
	exprs, err := ParseString(out)
	if err != nil {
		t.Fatalf("library unparsable after removal: %v", err)
	}
	if len(FindAllNodes(exprs[0], "symbol")) != 1 {
		t.Error("expected exactly one remaining symbol record")
	}
}

func TestInsertRecord(t *testing.T) {
	record := "  (symbol \"D_1N4148\"\n    (in_bom yes)\n  )\n"
	out, err := InsertRecord(testLib, record)
	if err != nil {
		t.Fatalf("InsertRecord() error: %v", err)
	}
	exprs, err := ParseString(out)
	if err != nil {
		t.Fatalf("library unparsable after insert: %v", err)
	}
	if len(FindAllNodes(exprs[0], "symbol")) != 3 {
		t.Error("expected three symbol records after insert")
	}
	if !HasRecord(out, "symbol", "D_1N4148") {
		t.Error("inserted record not found")
	}
}
