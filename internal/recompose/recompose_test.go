package recompose

import (
	"testing"

	"github.com/gmofishsauce/c23tok/internal/keyword"
	"github.com/gmofishsauce/c23tok/internal/symtab"
	"github.com/gmofishsauce/c23tok/internal/token"
)

func TestEmitCharVisiblePassesThrough(t *testing.T) {
	if got := EmitChar('x'); got != "x" {
		t.Errorf("EmitChar('x') = %q, want %q", got, "x")
	}
}

func TestEmitCharAlwaysEscaped(t *testing.T) {
	cases := map[rune]string{'\'': `\'`, '"': `\"`, '?': `\?`, '\\': `\\`}
	for cp, want := range cases {
		if got := EmitChar(cp); got != want {
			t.Errorf("EmitChar(%q) = %q, want %q", cp, got, want)
		}
	}
}

func TestEmitCharShortEscapes(t *testing.T) {
	cases := map[rune]string{'\n': `\n`, '\t': `\t`, '\r': `\r`, '\a': `\a`, '\b': `\b`, '\f': `\f`, '\v': `\v`}
	for cp, want := range cases {
		if got := EmitChar(cp); got != want {
			t.Errorf("EmitChar(%q) = %q, want %q", cp, got, want)
		}
	}
}

func TestEmitCharNonstandardEscapeHasNoShortForm(t *testing.T) {
	// \e (0x1B) is accepted on decode but has no standard mnemonic, so it
	// must re-emit as an octal escape rather than round-tripping as \e.
	got := EmitChar(0x1B)
	if got != `\33` {
		t.Errorf("EmitChar(0x1B) = %q, want %q", got, `\33`)
	}
}

func TestEmitCharWideCodePoints(t *testing.T) {
	if got := EmitChar(0x00E9); got != "\\u00E9" {
		t.Errorf("EmitChar(U+00E9) = %q, want %q", got, "\\u00E9")
	}
	if got := EmitChar(0x1F600); got != `\U0001F600` {
		t.Errorf("EmitChar(U+1F600) = %q, want %q", got, `\U0001F600`)
	}
}

func TestReconstructASCIIAndKeywords(t *testing.T) {
	toks := []token.Token{}
	ifTok, _ := keyword.Lookup("if")
	toks = append(toks, token.Token('('), token.Token('x'), token.Token(')'), token.Token(' '), ifTok)
	got, err := Reconstruct(toks, symtab.New())
	if err != nil {
		t.Fatal(err)
	}
	want := "(x) if"
	if got != want {
		t.Errorf("Reconstruct(...) = %q, want %q", got, want)
	}
}

func TestReconstructIdentifier(t *testing.T) {
	syms := symtab.New()
	slot, err := syms.Intern("counter")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Reconstruct([]token.Token{slot}, syms)
	if err != nil {
		t.Fatal(err)
	}
	if got != "counter" {
		t.Errorf("Reconstruct(...) = %q, want %q", got, "counter")
	}
}

func TestReconstructStringLiteral(t *testing.T) {
	text := "hi\n"
	toks := []token.Token{keyword.CharacterStringLit, token.Token(len([]rune(text)))}
	for _, r := range text {
		toks = append(toks, token.Token(r))
	}
	got, err := Reconstruct(toks, symtab.New())
	if err != nil {
		t.Fatal(err)
	}
	want := `"hi\n"`
	if got != want {
		t.Errorf("Reconstruct(string literal) = %q, want %q", got, want)
	}
}

func TestReconstructIntConstant(t *testing.T) {
	toks := []token.Token{keyword.IntConstant, 42}
	got, err := Reconstruct(toks, symtab.New())
	if err != nil {
		t.Fatal(err)
	}
	if got != "42" {
		t.Errorf("Reconstruct(int constant 42) = %q, want %q", got, "42")
	}
}

func TestReconstructUnsignedLongLongConstant(t *testing.T) {
	var v uint64 = 0x100000000
	toks := []token.Token{keyword.UnsignedLongLongInt, token.Token(v & 0xFFFFFFFF), token.Token(v >> 32)}
	got, err := Reconstruct(toks, symtab.New())
	if err != nil {
		t.Fatal(err)
	}
	want := "4294967296ull"
	if got != want {
		t.Errorf("Reconstruct(unsigned long long) = %q, want %q", got, want)
	}
}

func TestReconstructTruncatedStreamErrors(t *testing.T) {
	toks := []token.Token{keyword.CharacterStringLit, 5} // claims 5 chars, has none
	if _, err := Reconstruct(toks, symtab.New()); err == nil {
		t.Fatal("Reconstruct should report an error for a truncated string payload")
	}
}

func TestReconstructUnresolvedIdentifierErrors(t *testing.T) {
	syms := symtab.New()
	slot := token.Token(token.IdentifierMin) // never interned in this table
	if _, err := Reconstruct([]token.Token{slot}, syms); err == nil {
		t.Fatal("Reconstruct should report an error for an identifier slot with no stored symbol")
	}
}
