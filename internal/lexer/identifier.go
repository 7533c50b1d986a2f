package lexer

import (
	"strings"

	"github.com/gmofishsauce/c23tok/internal/charset"
	"github.com/gmofishsauce/c23tok/internal/keyword"
)

// identifierOrKeyword is the dispatch routine for every letter, '_', and
// '$'. It first checks for the character/string literal encoding prefixes
// (u8, u, U, L) that a plain letter can also start, then falls back to
// scanning a full identifier/keyword word. This table-lookup approach is
// equivalent to the reference's length-gated multi-byte keyword
// comparisons, just expressed as data instead of a comparison chain.
func identifierOrKeyword(l *Lexer) error {
	if l.cur() == 'u' && l.peekAt(1) == '8' {
		switch l.peekAt(2) {
		case '\'':
			return l.scanCharLiteral(keyword.UTF8CharacterConst, 2)
		case '"':
			return l.scanStringLiteral(keyword.UTF8StringLit, 2)
		}
	}
	if l.cur() == 'u' {
		switch l.peekAt(1) {
		case '\'':
			return l.scanCharLiteral(keyword.UTF16CharacterConst, 1)
		case '"':
			return l.scanStringLiteral(keyword.UTF16StringLit, 1)
		}
	}
	if l.cur() == 'U' {
		switch l.peekAt(1) {
		case '\'':
			return l.scanCharLiteral(keyword.UTF32CharacterConst, 1)
		case '"':
			return l.scanStringLiteral(keyword.UTF32StringLit, 1)
		}
	}
	if l.cur() == 'L' {
		switch l.peekAt(1) {
		case '\'':
			return l.scanCharLiteral(keyword.WCharCharacterConst, 1)
		case '"':
			return l.scanStringLiteral(keyword.WCharStringLit, 1)
		}
	}

	start := l.pos
	spelling, err := l.scanIdentifierSpelling()
	if err != nil {
		return err
	}

	if keyword.IsReservedWord(spelling) {
		h, _ := keyword.Lookup(keyword.Canonicalize(spelling))
		l.emit(h)
		return nil
	}

	tok, err := l.Syms.Intern(spelling)
	if err != nil {
		return errAt(start, "%s", err.Error())
	}
	l.emit(tok)
	return nil
}

// scanIdentifierSpelling consumes one identifier's bytes from the cursor:
// ASCII letters/digits/underscore/$, raw UTF-8 continuation sequences, and
// \u/\U universal character names (validated and folded into their
// decoded code point so two different escapes for the same character
// intern identically). It returns the decoded spelling and leaves the
// cursor just past the identifier.
func (l *Lexer) scanIdentifierSpelling() (string, error) {
	var b strings.Builder
	for !l.eof() {
		c := l.cur()
		switch {
		case c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			b.WriteByte(c)
			l.pos++
		case c >= 0x80:
			cp, n := charset.DecodeUTF8(l.buf[l.pos:])
			b.WriteRune(cp)
			l.pos += n
		case c == '\\' && (l.peekAt(1) == 'u' || l.peekAt(1) == 'U'):
			start := l.pos
			cp, n, err := charset.DecodeCharOrEscape(l.buf[l.pos:])
			if err != nil {
				return "", errAt(start, "%s", err.Error())
			}
			if err := charset.ValidateUCN(cp); err != nil {
				return "", errAt(start, "%s", err.Error())
			}
			b.WriteRune(cp)
			l.pos += n
		default:
			return b.String(), nil
		}
	}
	return b.String(), nil
}
