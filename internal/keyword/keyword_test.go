package keyword

import (
	"testing"

	"github.com/gmofishsauce/c23tok/internal/token"
)

func TestLookupKeywords(t *testing.T) {
	for _, k := range Keywords {
		if _, ok := Lookup(k); !ok {
			t.Errorf("Lookup(%q) = not found, want a registered keyword token", k)
		}
	}
}

func TestLookupPunctuators(t *testing.T) {
	for _, p := range Punctuators {
		if _, ok := Lookup(p); !ok {
			t.Errorf("Lookup(%q) = not found, want a registered punctuator token", p)
		}
	}
}

func TestCanonicalizeAlternateSpellings(t *testing.T) {
	for alt, canon := range AlternateSpellings {
		if Canonicalize(alt) != canon {
			t.Errorf("Canonicalize(%q) = %q, want %q", alt, Canonicalize(alt), canon)
		}
		altTok, ok := Lookup(Canonicalize(alt))
		if !ok {
			t.Fatalf("canonical spelling %q for %q is not registered", canon, alt)
		}
		canonTok, _ := Lookup(canon)
		if altTok != canonTok {
			t.Errorf("%q and %q hash to different tokens: %d vs %d", alt, canon, altTok, canonTok)
		}
	}
}

func TestDirectiveSpellingAvoidsKeywordCollision(t *testing.T) {
	// "if" is both a keyword and a directive name; their tokens must differ
	// since the directive hashes under "#if", not "if".
	ifKeyword, ok := Lookup("if")
	if !ok {
		t.Fatal(`"if" keyword not registered`)
	}
	ifDirective, ok := LookupDirective("if")
	if !ok {
		t.Fatal(`"if" directive not registered`)
	}
	if ifKeyword == ifDirective {
		t.Fatalf("keyword \"if\" (%d) and directive \"#if\" (%d) collided", ifKeyword, ifDirective)
	}
}

func TestIsDirective(t *testing.T) {
	if !IsDirective("include") {
		t.Fatal(`IsDirective("include") = false, want true`)
	}
	if IsDirective("nonexistent") {
		t.Fatal(`IsDirective("nonexistent") = true, want false`)
	}
}

func TestSentinelsAreDistinctFromReservedSpellings(t *testing.T) {
	if IsSentinel(mustLookup(t, "if")) {
		t.Fatal(`keyword "if" incorrectly reported as a sentinel`)
	}
	if !IsSentinel(CharacterConstant) {
		t.Fatal("CharacterConstant sentinel not recognized by IsSentinel")
	}
	if _, ok := Spelling(CharacterConstant); ok {
		t.Fatal("Spelling() should not resolve a sentinel token to source text")
	}
}

func TestSentinelsAreAllDistinct(t *testing.T) {
	seen := map[uint32]string{}
	for _, n := range sentinelNames {
		h := uint32(*n.dst)
		if other, ok := seen[h]; ok {
			t.Errorf("sentinels %q and %q collided at slot %d", n.key, other, h)
		}
		seen[h] = n.key
	}
}

func mustLookup(t *testing.T, spelling string) token.Token {
	t.Helper()
	tk, ok := Lookup(spelling)
	if !ok {
		t.Fatalf("Lookup(%q) not found", spelling)
	}
	return tk
}
