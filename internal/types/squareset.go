package types

import "math/bits"

// SquareSet is a 64-bit set over board squares: bit i set iff square i is a
// member. All operations run in O(1), following math/bits the way
// dragontoothmg's movegen does (bits.TrailingZeros64, bits.OnesCount64)
// rather than a hand-rolled De Bruijn table.
type SquareSet uint64

// Empty is the set with no members.
const Empty SquareSet = 0

// SquareBB returns the singleton set containing sq.
func SquareBB(sq Square) SquareSet {
	return SquareSet(1) << uint(sq)
}

// Insert returns the set with sq added.
func (s SquareSet) Insert(sq Square) SquareSet {
	return s | SquareBB(sq)
}

// Remove returns the set with sq removed.
func (s SquareSet) Remove(sq Square) SquareSet {
	return s &^ SquareBB(sq)
}

// Test reports whether sq is a member of s.
func (s SquareSet) Test(sq Square) bool {
	return s&SquareBB(sq) != 0
}

// Union returns the union of s and o.
func (s SquareSet) Union(o SquareSet) SquareSet {
	return s | o
}

// Intersect returns the intersection of s and o.
func (s SquareSet) Intersect(o SquareSet) SquareSet {
	return s & o
}

// Complement returns every square not in s.
func (s SquareSet) Complement() SquareSet {
	return ^s
}

// Without returns s with every member of o removed.
func (s SquareSet) Without(o SquareSet) SquareSet {
	return s &^ o
}

// IsEmpty reports whether the set has no members.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// Count returns the number of member squares.
func (s SquareSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// LSB returns the square at the least-significant set bit. Undefined
// (returns NoSquare) on an empty set.
func (s SquareSet) LSB() Square {
	if s == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(s)))
}

// PopLSB returns the least-significant square and the set with it cleared.
func (s SquareSet) PopLSB() (Square, SquareSet) {
	sq := s.LSB()
	if sq == NoSquare {
		return NoSquare, s
	}
	return sq, s&(s-1)
}

// Squares returns the set's members as a slice, ascending order. Convenience
// for tests and callers that don't need to avoid the slice allocation.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Count())
	for bb := s; !bb.IsEmpty(); {
		var sq Square
		sq, bb = bb.PopLSB()
		out = append(out, sq)
	}
	return out
}

var fileMasks = func() [8]SquareSet {
	var m [8]SquareSet
	const fileA SquareSet = 0x0101010101010101
	for f := 0; f < 8; f++ {
		m[f] = fileA << uint(f)
	}
	return m
}()

var rankMasks = func() [8]SquareSet {
	var m [8]SquareSet
	const rank1 SquareSet = 0xff
	for r := 0; r < 8; r++ {
		m[r] = rank1 << uint(8*r)
	}
	return m
}()

// FileMask returns the 8-square column for file f (0=a .. 7=h).
func FileMask(f int) SquareSet {
	return fileMasks[f]
}

// RankMask returns the 8-square row for rank r (0=rank1 .. 7=rank8).
func RankMask(r int) SquareSet {
	return rankMasks[r]
}
