package recompose

import "fmt"

// shortEscapes holds the standard C escape sequences used when
// re-emitting a control character. \e (0x1B) is accepted on decode as a
// nonstandard extension but is not one of these, so it is re-emitted as
// an octal escape like any other control character without a standard
// short form.
var shortEscapes = map[rune]string{
	'\a': `\a`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
}

// alwaysEscaped are the delimiter-ish characters that are always written
// with a backslash regardless of printability.
var alwaysEscaped = map[rune]bool{
	'\'': true,
	'"':  true,
	'?':  true,
	'\\': true,
}

// EmitChar renders a single decoded code point the way it would appear
// written back into source text.
func EmitChar(cp rune) string {
	if alwaysEscaped[cp] {
		return `\` + string(cp)
	}
	switch {
	case cp < 0x20:
		if esc, ok := shortEscapes[cp]; ok {
			return esc
		}
		return fmt.Sprintf(`\%o`, cp)
	case cp <= 0x7E:
		return string(cp)
	case cp <= 0xFFFF:
		return fmt.Sprintf(`\u%04X`, cp)
	default:
		return fmt.Sprintf(`\U%08X`, cp)
	}
}
