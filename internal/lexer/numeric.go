package lexer

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/gmofishsauce/c23tok/internal/keyword"
	"github.com/gmofishsauce/c23tok/internal/token"
)

// numericConstant scans a numeric constant (dispatched on a leading digit,
// or a '.' followed by a digit via dotFamily) and emits the appropriate
// sentinel plus its little-endian payload words. Ported from
// _HandleConstant in the reference, generalized to recognize full
// hexadecimal digit sets (the reference's hex scan loop only consumes
// '0'-'9', which fails to parse a hex constant like "0xFFu" correctly)
// and to treat a decimal point or exponent after a leading zero as a
// decimal float rather than truncating an octal scan, matching standard
// C grammar.
func numericConstant(l *Lexer) error {
	base := 10
	isFloat := false

	switch {
	case l.cur() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X'):
		base = 16
		l.pos += 2
	case l.cur() == '0' && (l.peekAt(1) == 'b' || l.peekAt(1) == 'B'):
		base = 2
		l.pos += 2
	case l.cur() == '0':
		base = 8 // tentative; promoted to 10 below if a float marker appears
	}

	var raw strings.Builder
	for !l.eof() {
		c := l.cur()
		if c == '\'' {
			l.pos++ // digit separator, stripped
			continue
		}
		if isDigitForBase(c, base) {
			raw.WriteByte(c)
			l.pos++
			continue
		}
		isExp := (base == 16 && (c == 'p' || c == 'P')) || (base != 16 && (c == 'e' || c == 'E'))
		if c == '.' || isExp {
			if base == 8 {
				base = 10 // a leading zero followed by '.'/exponent is decimal, not octal
			}
			isFloat = true
			raw.WriteByte(c)
			l.pos++
			if isExp && !l.eof() && (l.cur() == '+' || l.cur() == '-') {
				raw.WriteByte(l.cur())
				l.pos++
			}
			continue
		}
		break
	}
	end := l.pos
	decimal := base == 10

	body := raw.String()
	var text string
	switch base {
	case 16:
		text = "0x" + body
	case 2:
		text = "0b" + body
	default:
		text = body
	}

	if isFloat {
		return l.emitFloatConstant(text, end)
	}
	return l.emitIntConstant(text, base, decimal, end)
}

func isDigitForBase(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return c >= '0' && c <= '9'
	}
}

func (l *Lexer) emitIntConstant(text string, base int, decimal bool, end int) error {
	var u uint64
	var err error
	switch base {
	case 16:
		u, err = strconv.ParseUint(text[2:], 16, 64)
	case 2:
		u, err = strconv.ParseUint(text[2:], 2, 64)
	case 8:
		u, err = strconv.ParseUint(text, 8, 64)
	default:
		u, err = strconv.ParseUint(text, 10, 64)
	}
	if err != nil {
		return errAt(end, "invalid integer constant %q: %s", text, err)
	}

	hasU := l.peekAt(0) == 'u' || l.peekAt(0) == 'U'
	if hasU {
		if isLChar(l.peekAt(1)) {
			if isLChar(l.peekAt(2)) {
				l.emit(keyword.UnsignedLongLongInt)
				l.push8(u)
				l.pos = end + 3
				return nil
			}
			l.emit(keyword.UnsignedLongInt)
			l.push4(uint32(u))
			l.pos = end + 2
			return nil
		}
		if u <= math.MaxUint32 {
			l.emit(keyword.UnsignedIntConstant)
			l.push4(uint32(u))
		} else {
			l.emit(keyword.UnsignedLongLongInt)
			l.push8(u)
		}
		l.pos = end + 1
		return nil
	}

	if isLChar(l.peekAt(0)) {
		if isLChar(l.peekAt(1)) {
			if u <= math.MaxInt64 || decimal {
				l.emit(keyword.LongLongInt)
			} else {
				l.emit(keyword.UnsignedLongLongInt)
			}
			l.push8(u)
			l.pos = end + 2
			return nil
		}
		if u <= math.MaxInt32 || decimal {
			l.emit(keyword.LongIntConstant)
		} else {
			l.emit(keyword.UnsignedLongInt)
		}
		l.push4(uint32(u))
		l.pos = end + 1
		return nil
	}

	switch {
	case u <= math.MaxInt32:
		l.emit(keyword.IntConstant)
		l.push4(uint32(u))
	case u <= math.MaxUint32 && !decimal:
		l.emit(keyword.UnsignedIntConstant)
		l.push4(uint32(u))
	case u <= math.MaxInt64:
		l.emit(keyword.LongLongInt)
		l.push8(u)
	default:
		l.emit(keyword.UnsignedLongLongInt)
		l.push8(u)
	}
	l.pos = end
	return nil
}

func isLChar(b byte) bool { return b == 'l' || b == 'L' }

func (l *Lexer) emitFloatConstant(text string, end int) error {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return errAt(end, "invalid floating constant %q: %s", text, err)
	}

	switch l.peekAt(0) {
	case 'f', 'F':
		l.emit(keyword.FloatConstant)
		l.push4(math.Float32bits(float32(v)))
		l.pos = end + 1
	case 'l', 'L':
		l.emit(keyword.LongDoubleConstant)
		l.push16AsLongDouble(v)
		l.pos = end + 1
	case 'd', 'D':
		switch l.peekAt(1) {
		case 'f', 'F':
			l.emit(keyword.Decimal32Constant)
			l.push4(math.Float32bits(float32(v)))
			l.pos = end + 2
		case 'd', 'D':
			l.emit(keyword.Decimal64Constant)
			l.push8(math.Float64bits(v))
			l.pos = end + 2
		case 'l', 'L':
			l.emit(keyword.Decimal128Constant)
			l.push16AsLongDouble(v)
			l.pos = end + 2
		default:
			return errAt(end+1, "invalid decimal floating-point suffix")
		}
	default:
		l.emit(keyword.DoubleConstant)
		l.push8(math.Float64bits(v))
		l.pos = end
	}
	return nil
}

// push4/push8 append a little-endian payload word (or pair of words) to
// the token stream following a numeric sentinel.
func (l *Lexer) push4(v uint32) {
	l.emit(token.Token(v))
}

func (l *Lexer) push8(v uint64) {
	l.emit(token.Token(uint32(v)))
	l.emit(token.Token(uint32(v >> 32)))
}

// push16AsLongDouble stores a float64 value in a 16-byte (4-word) slot,
// matching the reference's 16-byte `long double` layout without modeling
// x86 extended precision: the low 8 bytes hold the IEEE-754 binary64 bit
// pattern and the high 8 bytes are zero padding. _Decimal128 is likewise
// stored as its nearest binary64 approximation; no decimal floating-point
// arithmetic is available to represent it exactly.
func (l *Lexer) push16AsLongDouble(v float64) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(v))
	l.Toks.AppendBytes(buf[:])
}
