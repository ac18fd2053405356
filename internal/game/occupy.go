package game

import "github.com/hailam/occupychess/internal/board"

// Sweep applies the end-of-turn occupation rules to every square and returns
// the coins each side earns, one per owned square.
//
// An empty square drops both hold counters but keeps its owner. An occupied
// square resets the other side's counter and advances the occupant's, capped
// at the threshold; reaching the threshold hands the square to the occupant.
func Sweep(b *board.Board, grid *board.Grid) (earned [2]int) {
	for i := range grid {
		sq := board.Square(i)
		cell := &grid[i]

		p := b.PieceAt(sq)
		if p == board.NoPiece {
			cell.Hold = [2]uint8{}
			continue
		}

		us := p.Color()
		cell.Hold[us.Other()] = 0
		if cell.Hold[us] < board.HoldThreshold {
			cell.Hold[us]++
		}
		if cell.Hold[us] >= board.HoldThreshold {
			cell.Owner = us
		}
	}

	for i := range grid {
		if owner := grid[i].Owner; owner.Valid() {
			earned[owner]++
		}
	}
	return earned
}

func (g *Game) endOfTurn() {
	earned := Sweep(g.board, &g.grid)
	g.coins[board.White] += earned[board.White]
	g.coins[board.Black] += earned[board.Black]
}
