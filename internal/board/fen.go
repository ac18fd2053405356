package board

import (
	"fmt"
	"strings"
)

// StartPlacement is the piece-placement field of the standard starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement parses a FEN piece-placement field into a Board.
// Ranks are listed top row first, which matches the rank index order.
func ParsePlacement(placement string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(placement), "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(rows))
	}

	b := NewEmptyBoard()
	for rank, row := range rows {
		file := 0
		for _, c := range row {
			if file > 7 {
				return nil, fmt.Errorf("too many squares in rank %d", 8-rank)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return nil, fmt.Errorf("invalid piece character: %c", c)
			}
			b.SetPiece(NewSquare(file, rank), piece)
			file++
		}

		if file != 8 {
			return nil, fmt.Errorf("invalid number of squares in rank %d: got %d", 8-rank, file)
		}
	}

	return b, nil
}

// Placement returns the FEN piece-placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder

	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
