package lexer

import (
	"github.com/gmofishsauce/c23tok/internal/charset"
	"github.com/gmofishsauce/c23tok/internal/keyword"
	"github.com/gmofishsauce/c23tok/internal/token"
)

func directiveIntroducer(l *Lexer) error {
	l.pos++ // consume '#'
	return beginDirective(l)
}

// beginDirective is entered with the cursor just past a '#' or '%:'
// introducer. Ported from _HandleHash: a lone '#' emits no token of its
// own except in the "##" token-paste case or when the line ends
// immediately ("#\n"); otherwise the directive keyword that follows is
// the only token emitted for the whole "#word" construct — its spelling
// includes the leading '#', so it never collides with the bare keyword
// of the same word (e.g. "#include" vs. a hypothetical identifier
// "include").
func beginDirective(l *Lexer) error {
	if l.cur() == '#' {
		l.emitPunct("##")
		l.pos++
		return nil
	}
	if l.cur() == '\n' {
		l.emitPunct("#")
		return nil
	}

	for !l.eof() && l.cur() == ' ' {
		l.pos++
	}

	start := l.pos
	for !l.eof() && isIdentByte(l.cur()) {
		l.pos++
	}
	word := string(l.buf[start:l.pos])
	if !keyword.IsDirective(word) {
		return errAt(start, "unrecognized preprocessing directive %q", word)
	}
	h, _ := keyword.LookupDirective(word)
	l.emit(h)

	switch word {
	case "include", "embed":
		return l.scanHeaderName()
	}
	return nil
}

// scanHeaderName handles the remainder of a #include/#embed line: any
// bytes before the opening delimiter are pushed literally (typically just
// the separating space), then the matching sentinel, a back-patched
// length, and one token per decoded code point.
func (l *Lexer) scanHeaderName() error {
	for !l.eof() && l.cur() != '<' && l.cur() != '"' {
		l.emit(token.Token(l.cur()))
		l.pos++
	}
	if l.eof() {
		return errAt(l.pos, "missing header name after #include/#embed")
	}

	var sentinel token.Token
	var closing byte
	if l.cur() == '"' {
		sentinel = keyword.HeaderNameQuotes
		closing = '"'
	} else {
		sentinel = keyword.HeaderNameLessGreater
		closing = '>'
	}
	l.pos++

	l.emit(sentinel)
	lenHandle := l.Toks.Append(0)

	count := 0
	for {
		if l.eof() {
			return errAt(l.pos, "unterminated header name")
		}
		if l.cur() == closing {
			l.pos++
			break
		}
		cp, n := charset.DecodeUTF8(l.buf[l.pos:])
		l.emit(token.Token(cp))
		l.pos += n
		count++
	}
	l.Toks.Set(lenHandle, token.Token(count))
	return nil
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
