// The two constant-time string hashes that place keywords/punctuators and
// identifiers into disjoint regions of the 32-bit token space. Ported from
// the reference's Hash.c; the bit arithmetic is kept identical so the
// resulting slot assignments match spelling for spelling.
package lexhash

import "github.com/gmofishsauce/c23tok/internal/token"

const (
	keywordModulus = 619
	keywordBase    = token.ReservedMin // 128

	identModulus = 4073
	identBase    = token.IdentifierMin // 747
)

// Keyword returns the reserved-spelling hash of s, in [128,746]. The
// pre-hash packs the first and last two bytes of s as little-endian
// 16-bit pairs into a 32-bit word; length-1 spellings use the single
// byte's own pre-hash instead, since there is no "last two bytes" to take.
func Keyword(s string) token.Token {
	b := []byte(s)
	var pre uint32
	if len(b) >= 2 {
		first := uint32(b[0]) | uint32(b[1])<<8
		last := uint32(b[len(b)-2]) | uint32(b[len(b)-1])<<8
		pre = first<<16 | last
	} else {
		c := uint32(b[0])
		pre = (c + 12) | c<<8 | c<<16 | c<<24
	}
	return token.Token(pre%keywordModulus + keywordBase)
}

// Identifier returns the byte-sum hash of s, in [747,4819]. Collisions in
// this range are expected and resolved by the symbol table's open
// addressing; this function only picks the probe start.
func Identifier(s string) token.Token {
	var sum uint32
	for i := 0; i < len(s); i++ {
		sum += uint32(s[i])
	}
	return token.Token(sum%identModulus + identBase)
}
