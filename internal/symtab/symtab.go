// The fixed-capacity, open-addressed identifier table: a slot-indexed map
// from an identifier's hash to its spelling, with an insertion-ordered
// chart for deterministic serialization. Ported from the reference's
// SymbolTable.c; the circular linear-probe-with-one-wraparound discipline
// and the chart side-list are kept as-is, expressed as Go slices instead
// of a calloc'd array and a linked list.
package symtab

import (
	"fmt"

	"github.com/gmofishsauce/c23tok/internal/lexhash"
	"github.com/gmofishsauce/c23tok/internal/token"
)

// Table is a fixed-size open-addressed map covering the identifier range
// [747,4819] of the token space.
type Table struct {
	slots [token.SymbolTableCapacity]string
	used  [token.SymbolTableCapacity]bool
	chart []token.Token // occupied slot indices, insertion order
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Intern inserts name if not already present and returns its slot. Two
// byte-identical spellings always return the same slot (push_symbol is
// idempotent per the testable interning property).
func (t *Table) Intern(name string) (token.Token, error) {
	start := lexhash.Identifier(name)
	i := int(start)
	wrapped := false
	for {
		if !t.used[i] {
			t.used[i] = true
			t.slots[i] = name
			t.chart = append(t.chart, token.Token(i))
			return token.Token(i), nil
		}
		if t.slots[i] == name {
			return token.Token(i), nil
		}
		i++
		if i > int(token.IdentifierMax) {
			if wrapped {
				return 0, fmt.Errorf("symbol table full: %q", name)
			}
			wrapped = true
			i = int(token.IdentifierMin)
		}
		if wrapped && i == int(start) {
			return 0, fmt.Errorf("symbol table full: %q", name)
		}
	}
}

// InsertAt places name directly at slot, with no probing. Used by the
// binary-file reader, which already knows the slot because it was stored
// on disk (the reference's PushSymbolToHash).
func (t *Table) InsertAt(slot token.Token, name string) error {
	if slot < token.IdentifierMin || slot > token.IdentifierMax {
		return fmt.Errorf("symbol slot %d out of range [%d,%d]", slot, token.IdentifierMin, token.IdentifierMax)
	}
	i := int(slot)
	if !t.used[i] {
		t.chart = append(t.chart, slot)
	}
	t.used[i] = true
	t.slots[i] = name
	return nil
}

// Lookup returns the spelling stored at slot, if any.
func (t *Table) Lookup(slot token.Token) (string, bool) {
	if slot < token.IdentifierMin || slot > token.IdentifierMax {
		return "", false
	}
	i := int(slot)
	return t.slots[i], t.used[i]
}

// Chart returns the occupied slot indices in insertion order. Callers must
// not mutate the returned slice.
func (t *Table) Chart() []token.Token { return t.chart }

// Len returns the number of distinct interned identifiers.
func (t *Table) Len() int { return len(t.chart) }
