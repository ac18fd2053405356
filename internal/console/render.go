package console

import (
	"strings"

	"github.com/hailam/occupychess/internal/board"
	"github.com/hailam/occupychess/internal/game"
)

// Render draws the pieces on the left and square ownership on the right.
// Uppercase pieces are White. In the ownership grid W and B mark owned
// squares, lowercase w and b mark squares being held but not yet owned.
func Render(g *game.Game) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h     a b c d e f g h\n")

	for rank := 0; rank < 8; rank++ {
		label := byte('8' - rank)

		sb.WriteByte(label)
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			sb.WriteByte(' ')
			if p := g.PieceAt(sq); p != board.NoPiece {
				sb.WriteString(p.String())
			} else {
				sb.WriteByte('.')
			}
		}

		sb.WriteString("   ")
		sb.WriteByte(label)
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(ownerChar(g.Cell(board.NewSquare(file, rank))))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(g.Turn().String())
	sb.WriteString(" to act")
	if g.Shop().Active() {
		sb.WriteString(", ")
		sb.WriteString(g.Shop().String())
	}
	sb.WriteByte('\n')
	return sb.String()
}

func ownerChar(c board.Cell) byte {
	switch {
	case c.Owner == board.White:
		return 'W'
	case c.Owner == board.Black:
		return 'B'
	case c.Hold[board.White] > 0:
		return 'w'
	case c.Hold[board.Black] > 0:
		return 'b'
	default:
		return '.'
	}
}
