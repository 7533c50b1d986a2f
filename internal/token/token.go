// Defines the 32-bit token value space shared by the tokenizer, the
// symbol table, the binary codec, and the reconstructor.
package token

import "fmt"

// Token is the 32-bit unit of the intermediate stream. Depending on its
// value it is either a literal ASCII byte, a keyword/punctuator hash, a
// sentinel introducing a typed payload, an identifier's symbol-table slot,
// or a raw payload word following a sentinel.
type Token uint32

// Disjoint ranges of the 32-bit token space.
const (
	ASCIIMin = 0
	ASCIIMax = 127

	ReservedMin = 128 // keyword/punctuator hashes and sentinels
	ReservedMax = 746

	IdentifierMin = 747 // symbol table slots
	IdentifierMax = 4819

	SymbolTableCapacity = IdentifierMax + 1 // slot indices 0..IdentifierMax
)

// IsASCII reports whether t is a literal ASCII byte token.
func (t Token) IsASCII() bool { return t <= ASCIIMax }

// IsReserved reports whether t falls in the keyword/punctuator/sentinel range.
func (t Token) IsReserved() bool { return t >= ReservedMin && t <= ReservedMax }

// IsIdentifier reports whether t falls in the identifier symbol-table range.
func (t Token) IsIdentifier() bool { return t >= IdentifierMin && t <= IdentifierMax }

func (t Token) String() string {
	switch {
	case t.IsASCII():
		return fmt.Sprintf("ascii(%d)", t)
	case t.IsReserved():
		return fmt.Sprintf("reserved(%d)", t)
	case t.IsIdentifier():
		return fmt.Sprintf("ident(%d)", t)
	default:
		return fmt.Sprintf("invalid(%d)", t)
	}
}

// List is an append-only, forward-only sequence of tokens. Handle lets a
// caller back-patch a single earlier word once a payload's true length is
// known, mirroring the reference's "fill in the length later" length-prefix
// convention for strings and header names.
type List struct {
	toks []Token

	// cursor state for ReadSequential; each List has its own, rewound only
	// by ResetCursor. The reference (TokenList.c's ReadTokens) keeps this as a
	// pair of process-global statics; carrying it as a field instead avoids
	// the global mutable cursor while keeping the same read-then-advance
	// contract.
	readPos int
}

// Handle is a back-patchable reference to a single slot in a List.
type Handle int

// NewList returns an empty token list.
func NewList() *List {
	return &List{}
}

// Append pushes a single token and returns a handle to it.
func (l *List) Append(t Token) Handle {
	l.toks = append(l.toks, t)
	return Handle(len(l.toks) - 1)
}

// Set back-patches the word at h. Used to fill in string/header lengths
// once the terminating delimiter has been seen.
func (l *List) Set(h Handle, t Token) {
	l.toks[int(h)] = t
}

// Len returns the number of tokens currently in the list.
func (l *List) Len() int { return len(l.toks) }

// At returns the token at position i.
func (l *List) At(i int) Token { return l.toks[i] }

// All returns the full token slice. Callers must not mutate it.
func (l *List) All() []Token { return l.toks }

// AppendBytes packs buf into little-endian 32-bit words, zero-padding the
// final partial word in its high-order bytes, mirroring TokenList.c's
// PushData byte-packing discipline.
func (l *List) AppendBytes(buf []byte) {
	i := 0
	for ; i+4 <= len(buf); i += 4 {
		w := Token(buf[i]) | Token(buf[i+1])<<8 | Token(buf[i+2])<<16 | Token(buf[i+3])<<24
		l.Append(w)
	}
	if rem := len(buf) - i; rem > 0 {
		var w Token
		for j := 0; j < rem; j++ {
			w |= Token(buf[i+j]) << (8 * j)
		}
		l.Append(w)
	}
}

// ReadSequential returns the next n words starting from the cursor's
// current position, advancing it. It returns fewer than n words if the
// list is exhausted.
func (l *List) ReadSequential(n int) []Token {
	end := l.readPos + n
	if end > len(l.toks) {
		end = len(l.toks)
	}
	out := l.toks[l.readPos:end]
	l.readPos = end
	return out
}

// ResetCursor rewinds ReadSequential to the start of the list.
func (l *List) ResetCursor() { l.readPos = 0 }
