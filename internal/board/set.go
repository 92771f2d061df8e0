package board

import "math/bits"

// Bitmask values
const (
	// Universe covers bits 0-9: the open marker plus the nine candidate bits.
	Universe Set = 0x3FF

	openBit Set = 1
)

// Set is the candidate set of a single cell, a bit-vector over 10 positions.
// Bit 0 is the open marker: set means the cell's value is not yet committed.
// Bits 1-9 are candidate bits; bit d set means digit d is still possible.
//
// A committed cell has the open marker clear and exactly one candidate bit
// set. Because commitment lives inside the same bit-vector, intersecting two
// Sets composes correctly whether either side is committed or not — fix and
// eliminate are both expressed as intersect-with-mask.
type Set uint16

// Initial returns the set of a fresh cell: open, all nine digits possible.
func Initial() Set {
	return Universe
}

// Single returns the set containing only digit d with the open marker clear,
// i.e. the set of a cell committed to d.
func Single(d int) Set {
	return 1 << d
}

// Without returns the universe minus digit d, open marker included.
// Intersecting with it removes d as a candidate and nothing else.
func Without(d int) Set {
	return Universe &^ (1 << d)
}

// Has reports whether digit d is in the set.
func (s Set) Has(d int) bool {
	return s&(1<<d) != 0
}

// Union returns the union of both sets.
func (s Set) Union(o Set) Set {
	return s | o
}

// Intersect returns the intersection of both sets.
func (s Set) Intersect(o Set) Set {
	return s & o
}

// Not returns the complement of the set within the 10-bit universe.
func (s Set) Not() Set {
	return ^s & Universe
}

// Size returns the number of set bits, open marker included.
func (s Set) Size() int {
	return bits.OnesCount16(uint16(s))
}

// Front returns the lowest set bit, or 16 for the empty set.
func (s Set) Front() int {
	return bits.TrailingZeros16(uint16(s))
}

// Back returns the highest set bit, or -1 for the empty set.
func (s Set) Back() int {
	return bits.Len16(uint16(s)) - 1
}

// Fixed reports whether the cell's value has been committed.
func (s Set) Fixed() bool {
	return s&openBit == 0
}

// Possibilities returns the number of remaining candidate digits.
// A committed cell has zero possibilities.
func (s Set) Possibilities() int {
	if s.Fixed() {
		return 0
	}
	return (s &^ openBit).Size()
}

// IsSingleton reports whether the cell is still open with exactly one
// remaining candidate.
func (s Set) IsSingleton() bool {
	return s.Possibilities() == 1
}

// Valid reports whether at least one candidate bit remains. A cell with no
// candidates, open marker aside, is a contradiction.
func (s Set) Valid() bool {
	return s&^openBit != 0
}
