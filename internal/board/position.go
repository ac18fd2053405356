package board

import "strings"

// Board is the 8x8 grid of optional pieces. At most one piece stands on a
// square; piece counts are unconstrained (extra queens, zero kings).
type Board struct {
	squares [64]Piece
}

// NewEmptyBoard returns a board with no pieces.
func NewEmptyBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// NewBoard creates the standard starting position.
func NewBoard() *Board {
	b, _ := ParsePlacement(StartPlacement)
	return b
}

// Clear removes every piece.
func (b *Board) Clear() {
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// PieceAt returns the piece at the given square, or NoPiece if empty or off the board.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq]
}

// IsEmpty returns true if the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.IsValid() && b.squares[sq] == NoPiece
}

// SetPiece puts p on sq, replacing any occupant. NoPiece clears the square.
func (b *Board) SetPiece(sq Square, p Piece) {
	if !sq.IsValid() {
		return
	}
	b.squares[sq] = p
}

// RemovePiece clears sq and returns what stood there.
func (b *Board) RemovePiece(sq Square) Piece {
	p := b.PieceAt(sq)
	b.SetPiece(sq, NoPiece)
	return p
}

// Occupied returns the squares holding a piece of color c.
func (b *Board) Occupied(c Color) SquareSet {
	var s SquareSet
	for i, p := range b.squares {
		if p != NoPiece && p.Color() == c {
			s = s.Add(Square(i))
		}
	}
	return s
}

// Count returns how many pieces of the given kind and color stand on the board.
func (b *Board) Count(p Piece) int {
	n := 0
	for _, q := range b.squares {
		if q == p {
			n++
		}
	}
	return n
}

// String returns an ASCII representation of the board, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  +---+---+---+---+---+---+---+---+\n")
	for rank := 0; rank < 8; rank++ {
		sb.WriteByte(byte('8' - rank))
		sb.WriteString(" |")
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			sb.WriteByte(' ')
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteString(p.String())
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n  +---+---+---+---+---+---+---+---+\n")
	}
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	return sb.String()
}
