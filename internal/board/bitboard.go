package board

import (
	"math/bits"
	"strings"
)

// SquareSet is a 64-bit set where each bit corresponds to a square.
// Bit n is Square(n), so bit 0 = a8 and bit 63 = h1.
type SquareSet uint64

// EmptySet is the set with no squares.
const EmptySet SquareSet = 0

// SquareBB returns a set with only the given square.
func SquareBB(sq Square) SquareSet {
	if !sq.IsValid() {
		return EmptySet
	}
	return 1 << sq
}

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	return s | SquareBB(sq)
}

// Remove returns the set with sq excluded.
func (s SquareSet) Remove(sq Square) SquareSet {
	return s &^ SquareBB(sq)
}

// Has returns true if sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.IsValid() && s&(1<<sq) != 0
}

// Len returns the number of squares in the set (population count).
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty returns true if no squares are set.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// LSB returns the lowest square in the set.
func (s SquareSet) LSB() Square {
	if s == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(s)))
}

// PopLSB removes and returns the lowest square.
func (s *SquareSet) PopLSB() Square {
	sq := s.LSB()
	*s &= *s - 1
	return sq
}

// Squares returns the members in ascending index order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for bb := s; bb != 0; {
		out = append(out, bb.PopLSB())
	}
	return out
}

// String lists the members in algebraic notation, space separated.
func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		names = append(names, sq.String())
	}
	return strings.Join(names, " ")
}
