package tokfile

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gmofishsauce/c23tok/internal/symtab"
	"github.com/gmofishsauce/c23tok/internal/token"
)

func TestWriteReadRoundtrip(t *testing.T) {
	toks := token.NewList()
	toks.Append(token.Token('a'))
	toks.Append(token.Token(' '))
	syms := symtab.New()
	slot, err := syms.Intern("counter")
	if err != nil {
		t.Fatal(err)
	}
	toks.Append(slot)

	var buf bytes.Buffer
	if err := Write(&buf, toks, syms); err != nil {
		t.Fatal(err)
	}

	res, err := Read(&buf, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Warning != "" {
		t.Fatalf("unexpected warning on a well-formed file: %q", res.Warning)
	}
	if diff := cmp.Diff(toks.All(), res.Tokens.All()); diff != "" {
		t.Errorf("token stream changed across a write/read roundtrip (-want +got):\n%s", diff)
	}
	name, ok := res.Symbols.Lookup(slot)
	if !ok || name != "counter" {
		t.Fatalf("Symbols.Lookup(%d) = (%q, %v), want (\"counter\", true)", slot, name, ok)
	}
}

func TestReadBadSignatureFatalByDefault(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("XXXXXXXX")
	buf.Write([]byte{0, 0, 0, 0})
	if _, err := Read(&buf, false); err == nil {
		t.Fatal("expected an error for a bad signature without yolo")
	}
}

func TestReadBadSignatureYoloWarns(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("XXXXXXXX")
	buf.Write([]byte{0, 0, 0, 0})
	res, err := Read(&buf, true)
	if err != nil {
		t.Fatalf("yolo mode should downgrade a bad signature to a warning, got error: %v", err)
	}
	if res.Warning == "" {
		t.Fatal("expected a non-empty warning for a bad signature under yolo")
	}
}

func TestReadMalformedSymbolIndexAlwaysFatal(t *testing.T) {
	toks := token.NewList()
	toks.Append(token.Token('a'))
	syms := symtab.New()

	var buf bytes.Buffer
	if err := Write(&buf, toks, syms); err != nil {
		t.Fatal(err)
	}
	// Append a malformed symbol entry: a slot outside [ReservedMin,IdentifierMax].
	raw := buf.Bytes()
	var bad bytes.Buffer
	bad.Write(raw)
	bad.Write([]byte{1, 0, 0, 0}) // slot 1, well below ReservedMin
	bad.WriteString("x\x00")

	if _, err := Read(&bad, true); err == nil {
		t.Fatal("a malformed symbol index must be fatal even under yolo")
	}
}

func TestChartOrderPreservedOnDisk(t *testing.T) {
	toks := token.NewList()
	syms := symtab.New()
	s1, _ := syms.Intern("zeta")
	s2, _ := syms.Intern("alpha")
	toks.Append(s1)
	toks.Append(s2)

	var buf bytes.Buffer
	if err := Write(&buf, toks, syms); err != nil {
		t.Fatal(err)
	}
	res, err := Read(&buf, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Token{s1, s2}
	if diff := cmp.Diff(want, res.Symbols.Chart()); diff != "" {
		t.Errorf("Chart() order changed across a write/read roundtrip (-want +got):\n%s", diff)
	}
}
