// Reconstructs C23 source text from a decoded token stream and symbol
// table: translation phases 1-3 in reverse. Ported from the reference's
// Recompose.c and Recompose/Characters.c; the reverse table the reference
// precomputes as a 4819-entry literal array is built here from the same
// hash functions the tokenizer uses, so a reserved spelling's slot is
// always derived, never hand-copied by index.
package recompose

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gmofishsauce/c23tok/internal/keyword"
	"github.com/gmofishsauce/c23tok/internal/symtab"
	"github.com/gmofishsauce/c23tok/internal/token"
)

// Reconstruct renders toks back to source text using syms to resolve
// identifier slots. It is a single forward pass: sentinel tokens consume
// additional stream words according to their kind.
func Reconstruct(toks []token.Token, syms *symtab.Table) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(toks) {
		t := toks[i]
		i++

		switch {
		case t.IsASCII():
			b.WriteByte(byte(t))

		case keyword.IsSentinel(t):
			n, err := emitSentinel(&b, t, toks[i:])
			if err != nil {
				return "", fmt.Errorf("token %d: %w", i-1, err)
			}
			i += n

		case t.IsReserved():
			spelling, ok := keyword.Spelling(t)
			if !ok {
				return "", fmt.Errorf("token %d: unknown reserved token %d", i-1, t)
			}
			b.WriteString(spelling)

		case t.IsIdentifier():
			name, ok := syms.Lookup(t)
			if !ok {
				return "", fmt.Errorf("token %d: identifier slot %d has no symbol", i-1, t)
			}
			b.WriteString(name)

		default:
			return "", fmt.Errorf("token %d: value %d out of range", i-1, t)
		}
	}
	return b.String(), nil
}

// emitSentinel writes the text for sentinel token t, consuming from rest
// (the stream immediately following t) as needed, and returns how many
// words it consumed.
func emitSentinel(b *strings.Builder, t token.Token, rest []token.Token) (int, error) {
	switch t {
	case keyword.CharacterStringLit:
		return emitStringLiteral(b, rest, "")
	case keyword.UTF8StringLit:
		return emitStringLiteral(b, rest, "u8")
	case keyword.WCharStringLit:
		return emitStringLiteral(b, rest, "L")
	case keyword.UTF16StringLit:
		return emitStringLiteral(b, rest, "u")
	case keyword.UTF32StringLit:
		return emitStringLiteral(b, rest, "U")

	case keyword.HeaderNameLessGreater:
		return emitHeaderName(b, rest, '<', '>')
	case keyword.HeaderNameQuotes:
		return emitHeaderName(b, rest, '"', '"')

	case keyword.CharacterConstant:
		return emitCharConstant(b, rest, "")
	case keyword.UTF8CharacterConst:
		return emitCharConstant(b, rest, "u8")
	case keyword.UTF16CharacterConst:
		return emitCharConstant(b, rest, "u")
	case keyword.UTF32CharacterConst:
		return emitCharConstant(b, rest, "U")
	case keyword.WCharCharacterConst:
		return emitCharConstant(b, rest, "L")

	case keyword.IntConstant:
		return emitIntWord(b, rest, false, "")
	case keyword.UnsignedIntConstant:
		return emitIntWord(b, rest, false, "u")
	case keyword.LongIntConstant:
		return emitIntWord(b, rest, false, "l")
	case keyword.UnsignedLongInt:
		return emitIntWord(b, rest, false, "ul")
	case keyword.LongLongInt:
		return emitIntWord(b, rest, true, "ll")
	case keyword.UnsignedLongLongInt:
		return emitIntWord(b, rest, true, "ull")

	case keyword.FloatConstant:
		return emitFloat32(b, rest, "f")
	case keyword.DoubleConstant:
		return emitFloat64(b, rest, "")
	case keyword.LongDoubleConstant:
		return emitLongDouble(b, rest, "l")
	case keyword.Decimal32Constant:
		return emitFloat32(b, rest, "df")
	case keyword.Decimal64Constant:
		return emitFloat64(b, rest, "dd")
	case keyword.Decimal128Constant:
		return emitLongDouble(b, rest, "dl")
	}
	return 0, fmt.Errorf("no sentinel handler registered for token %d", t)
}

func need(rest []token.Token, n int) error {
	if len(rest) < n {
		return fmt.Errorf("truncated stream: need %d more words, have %d", n, len(rest))
	}
	return nil
}

func emitStringLiteral(b *strings.Builder, rest []token.Token, prefix string) (int, error) {
	if err := need(rest, 1); err != nil {
		return 0, err
	}
	n := int(rest[0])
	if err := need(rest, 1+n); err != nil {
		return 0, err
	}
	b.WriteString(prefix)
	b.WriteByte('"')
	for _, cp := range rest[1 : 1+n] {
		b.WriteString(EmitChar(rune(cp)))
	}
	b.WriteByte('"')
	return 1 + n, nil
}

func emitHeaderName(b *strings.Builder, rest []token.Token, open, close byte) (int, error) {
	if err := need(rest, 1); err != nil {
		return 0, err
	}
	n := int(rest[0])
	if err := need(rest, 1+n); err != nil {
		return 0, err
	}
	b.WriteByte(open)
	for _, cp := range rest[1 : 1+n] {
		b.WriteRune(rune(cp))
	}
	b.WriteByte(close)
	return 1 + n, nil
}

func emitCharConstant(b *strings.Builder, rest []token.Token, prefix string) (int, error) {
	if err := need(rest, 1); err != nil {
		return 0, err
	}
	b.WriteString(prefix)
	b.WriteByte('\'')
	b.WriteString(EmitChar(rune(rest[0])))
	b.WriteByte('\'')
	return 1, nil
}

func emitIntWord(b *strings.Builder, rest []token.Token, wide bool, suffix string) (int, error) {
	if wide {
		if err := need(rest, 2); err != nil {
			return 0, err
		}
		v := uint64(rest[0]) | uint64(rest[1])<<32
		b.WriteString(strconv.FormatUint(v, 10))
		b.WriteString(suffix)
		return 2, nil
	}
	if err := need(rest, 1); err != nil {
		return 0, err
	}
	b.WriteString(strconv.FormatUint(uint64(uint32(rest[0])), 10))
	b.WriteString(suffix)
	return 1, nil
}

func emitFloat32(b *strings.Builder, rest []token.Token, suffix string) (int, error) {
	if err := need(rest, 1); err != nil {
		return 0, err
	}
	v := math.Float32frombits(uint32(rest[0]))
	b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	b.WriteString(suffix)
	return 1, nil
}

func emitFloat64(b *strings.Builder, rest []token.Token, suffix string) (int, error) {
	if err := need(rest, 2); err != nil {
		return 0, err
	}
	bits := uint64(rest[0]) | uint64(rest[1])<<32
	v := math.Float64frombits(bits)
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	b.WriteString(suffix)
	return 2, nil
}

func emitLongDouble(b *strings.Builder, rest []token.Token, suffix string) (int, error) {
	if err := need(rest, 4); err != nil {
		return 0, err
	}
	var buf [16]byte
	for j := 0; j < 4; j++ {
		binary.LittleEndian.PutUint32(buf[j*4:j*4+4], uint32(rest[j]))
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(buf[0:8]))
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	b.WriteString(suffix)
	return 4, nil
}
