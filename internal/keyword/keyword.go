// Holds the reserved-spelling table (keywords, punctuators, and
// preprocessing-directive words) and the sentinel token identifiers that
// share the same [128,746] hash range. It is the Go analogue of the
// reference's per-letter keyword-compare routines in HandleCharacters.c,
// built instead as lookup tables: each identifier-shaped word is looked up
// in a reserved-word set and interned only if it is not reserved,
// equivalent to the reference's length-gated multi-byte comparison but
// simpler to express as data.
package keyword

import (
	"fmt"

	"github.com/gmofishsauce/c23tok/internal/lexhash"
	"github.com/gmofishsauce/c23tok/internal/token"
)

// Reserved keyword spellings, canonical form. Alternate underscored forms
// (_Bool, _Alignas, _Alignof, _Thread_local, _Static_assert) are folded to
// these before hashing, so both spellings produce the same token.
var Keywords = []string{
	"alignas", "alignof", "auto", "bool", "break", "case", "char", "const",
	"constexpr", "continue", "default", "do", "double", "else", "enum",
	"extern", "false", "float", "for", "goto", "if", "inline", "int", "long",
	"nullptr", "register", "restrict", "return", "short", "signed", "sizeof",
	"static", "static_assert", "struct", "switch", "thread_local", "true",
	"typedef", "typeof", "typeof_unqual", "union", "unsigned", "void",
	"volatile", "while",
	"_Atomic", "_BitInt", "_Generic", "_Imaginary", "_Noreturn",
	"_Decimal32", "_Decimal64", "_Decimal128", "_Complex",
}

// AlternateSpellings maps a legacy underscored keyword to the canonical
// spelling it hashes as.
var AlternateSpellings = map[string]string{
	"_Bool":          "bool",
	"_Alignas":       "alignas",
	"_Alignof":       "alignof",
	"_Thread_local":  "thread_local",
	"_Static_assert": "static_assert",
}

// Canonicalize returns the spelling to hash for a raw identifier-shaped
// word: its alternate-form mapping if one exists, else itself.
func Canonicalize(word string) string {
	if c, ok := AlternateSpellings[word]; ok {
		return c
	}
	return word
}

// Directives lists the bare words recognized after '#' (plus optional
// whitespace). Unlike keywords, a directive's token hashes under its
// spelling WITH the leading '#' (DirectiveSpelling) — the reference never
// emits a separate token for the '#' itself when it introduces a
// recognized directive, only for the directive word, so "#include" and
// the keyword "include"-shaped identifier must not collide.
var Directives = []string{
	"if", "ifdef", "ifndef", "elif", "elifdef", "elifndef", "else", "endif",
	"include", "embed", "define", "undef", "line", "error", "warning", "pragma",
}

// DirectiveSpelling returns the text a directive word hashes and
// reconstructs as: the word prefixed with '#'.
func DirectiveSpelling(word string) string { return "#" + word }

// Punctuators lists every fixed-spelling operator/separator token,
// including the single-character ones the dispatch table emits directly
// and the multi-character compounds recognized by the compound-family
// routines. Digraphs (<: :> <% %> %: %:%:) are not listed here: they
// canonicalize to the spelling of the token they stand for (see Digraphs).
var Punctuators = []string{
	"(", ")", ",", ";", "?", "[", "]", "{", "}", "~",
	"!", "!=",
	"*", "*=",
	"+", "++", "+=",
	"-", "--", "-=", "->",
	"/", "/=",
	":",
	"<", "<=", "<<", "<<=",
	"=", "==",
	">", ">=", ">>", ">>=",
	"&", "&&", "&=",
	"|", "||", "|=",
	"^", "^=",
	".", "...",
	"%", "%=",
	"#", "##",
}

// Digraphs maps each digraph spelling to the canonical spelling it stands
// for; the lexer emits the canonical token so reconstruction never needs
// to remember which spelling was written.
var Digraphs = map[string]string{
	"<:": "[",
	":>": "]",
	"<%": "{",
	"%>": "}",
	"%:": "#",
}

// sentinel names. These never appear as source text and are not hashed:
// init assigns each sentinel, in list order, the lowest slot in the shared
// [128,746] space that no reserved spelling and no earlier sentinel holds.
const (
	sCharacterConstant     = "$CHARACTER_CONSTANT$"
	sWCharCharacterConst   = "$WCHAR_CHARACTER_CONSTANT$"
	sUTF8CharacterConst    = "$UTF_8_CHARACTER_CONSTANT$"
	sUTF16CharacterConst   = "$UTF_16_CHARACTER_CONSTANT$"
	sUTF32CharacterConst   = "$UTF_32_CHARACTER_CONSTANT$"
	sCharacterStringLit    = "$CHARACTER_STRING_LITERAL$"
	sUTF8StringLit         = "$UTF_8_STRING_LITERAL$"
	sWCharStringLit        = "$WCHAR_STRING_LITERAL$"
	sUTF16StringLit        = "$UTF_16_STRING_LITERAL$"
	sUTF32StringLit        = "$UTF_32_STRING_LITERAL$"
	sHeaderNameLessGreater = "$HEADER_NAME_LESS_GREATER$"
	sHeaderNameQuotes      = "$HEADER_NAME_QUOTES$"
	sIntConstant           = "$INT_CONSTANT$"
	sUnsignedIntConstant   = "$UNSIGNED_INT_CONSTANT$"
	sLongIntConstant       = "$LONG_INT_CONSTANT$"
	sUnsignedLongInt       = "$UNSIGNED_LONG_INT_CONSTANT$"
	sLongLongInt           = "$LONG_LONG_INT_CONSTANT$"
	sUnsignedLongLongInt   = "$UNSIGNED_LONG_LONG_INT_CONSTANT$"
	sFloatConstant         = "$FLOAT_CONSTANT$"
	sDoubleConstant        = "$DOUBLE_CONSTANT$"
	sLongDoubleConstant    = "$LONG_DOUBLE_CONSTANT$"
	sDecimal32Constant     = "$DECIMAL32_CONSTANT$"
	sDecimal64Constant     = "$DECIMAL64_CONSTANT$"
	sDecimal128Constant    = "$DECIMAL128_CONSTANT$"
)

// Sentinel token values, computed from the names above at init time.
var (
	CharacterConstant     token.Token
	WCharCharacterConst   token.Token
	UTF8CharacterConst    token.Token
	UTF16CharacterConst   token.Token
	UTF32CharacterConst   token.Token
	CharacterStringLit    token.Token
	UTF8StringLit         token.Token
	WCharStringLit        token.Token
	UTF16StringLit        token.Token
	UTF32StringLit        token.Token
	HeaderNameLessGreater token.Token
	HeaderNameQuotes      token.Token
	IntConstant           token.Token
	UnsignedIntConstant   token.Token
	LongIntConstant       token.Token
	UnsignedLongInt       token.Token
	LongLongInt           token.Token
	UnsignedLongLongInt   token.Token
	FloatConstant         token.Token
	DoubleConstant        token.Token
	LongDoubleConstant    token.Token
	Decimal32Constant     token.Token
	Decimal64Constant     token.Token
	Decimal128Constant    token.Token
)

// sentinelNames associates each sentinel's name with the
// variable that stores its computed value, so init can fill them in and
// Sentinels() can report the set uniformly.
var sentinelNames = []struct {
	key string
	dst *token.Token
}{
	{sCharacterConstant, &CharacterConstant},
	{sWCharCharacterConst, &WCharCharacterConst},
	{sUTF8CharacterConst, &UTF8CharacterConst},
	{sUTF16CharacterConst, &UTF16CharacterConst},
	{sUTF32CharacterConst, &UTF32CharacterConst},
	{sCharacterStringLit, &CharacterStringLit},
	{sUTF8StringLit, &UTF8StringLit},
	{sWCharStringLit, &WCharStringLit},
	{sUTF16StringLit, &UTF16StringLit},
	{sUTF32StringLit, &UTF32StringLit},
	{sHeaderNameLessGreater, &HeaderNameLessGreater},
	{sHeaderNameQuotes, &HeaderNameQuotes},
	{sIntConstant, &IntConstant},
	{sUnsignedIntConstant, &UnsignedIntConstant},
	{sLongIntConstant, &LongIntConstant},
	{sUnsignedLongInt, &UnsignedLongInt},
	{sLongLongInt, &LongLongInt},
	{sUnsignedLongLongInt, &UnsignedLongLongInt},
	{sFloatConstant, &FloatConstant},
	{sDoubleConstant, &DoubleConstant},
	{sLongDoubleConstant, &LongDoubleConstant},
	{sDecimal32Constant, &Decimal32Constant},
	{sDecimal64Constant, &Decimal64Constant},
	{sDecimal128Constant, &Decimal128Constant},
}

// spellingOf maps a reserved, non-sentinel token value back to its text.
// SentinelSet maps a token value to the name it was hashed from, so the
// reconstructor can recognize "this slot is a sentinel" without a separate
// side table.
var (
	spellingOf  = map[token.Token]string{}
	SentinelSet = map[token.Token]string{}
)

func register(spelling string) {
	h := lexhash.Keyword(spelling)
	if existing, ok := spellingOf[h]; ok && existing != spelling {
		panic(fmt.Sprintf("keyword hash collision: %q and %q both hash to %d", existing, spelling, h))
	}
	spellingOf[h] = spelling
}

func init() {
	for _, k := range Keywords {
		register(k)
	}
	for _, d := range Directives {
		register(DirectiveSpelling(d))
	}
	for _, p := range Punctuators {
		register(p)
	}
	next := token.Token(token.ReservedMin)
	for _, n := range sentinelNames {
		for _, taken := spellingOf[next]; taken; _, taken = spellingOf[next] {
			next++
		}
		if next > token.ReservedMax {
			panic(fmt.Sprintf("no free reserved slot left for sentinel %q", n.key))
		}
		*n.dst = next
		SentinelSet[next] = n.key
		next++
	}
}

// Lookup returns the token for a reserved spelling (keyword, directive
// word, or punctuator), if one is registered.
func Lookup(spelling string) (token.Token, bool) {
	h := lexhash.Keyword(spelling)
	s, ok := spellingOf[h]
	return h, ok && s == spelling
}

// Spelling returns the text a reserved (non-sentinel, non-identifier)
// token stands for.
func Spelling(t token.Token) (string, bool) {
	s, ok := spellingOf[t]
	return s, ok
}

// IsSentinel reports whether t is one of the sentinel tokens above.
func IsSentinel(t token.Token) bool {
	_, ok := SentinelSet[t]
	return ok
}

// IsReservedWord reports whether word (or its canonical form) is a
// reserved C keyword.
func IsReservedWord(word string) bool {
	_, ok := Lookup(Canonicalize(word))
	return ok
}

// LookupDirective returns the token for word used as a directive name
// (i.e. the word's '#'-prefixed spelling), if word is a recognized
// directive.
func LookupDirective(word string) (token.Token, bool) {
	return Lookup(DirectiveSpelling(word))
}

// IsDirective reports whether word is a recognized directive name.
func IsDirective(word string) bool {
	for _, d := range Directives {
		if d == word {
			return true
		}
	}
	return false
}
