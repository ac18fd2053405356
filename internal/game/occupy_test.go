package game

import (
	"testing"

	"github.com/hailam/occupychess/internal/board"
)

func TestSweep(t *testing.T) {
	tests := []struct {
		name       string
		piece      board.Piece
		before     board.Cell
		want       board.Cell
		wantEarned [2]int
	}{
		{
			name:   "first turn of occupation",
			piece:  board.WhiteKnight,
			before: board.Cell{Owner: board.NoColor},
			want:   board.Cell{Owner: board.NoColor, Hold: [2]uint8{1, 0}},
		},
		{
			name:       "second turn takes ownership",
			piece:      board.WhiteKnight,
			before:     board.Cell{Owner: board.NoColor, Hold: [2]uint8{1, 0}},
			want:       board.Cell{Owner: board.White, Hold: [2]uint8{2, 0}},
			wantEarned: [2]int{1, 0},
		},
		{
			name:       "counter capped at threshold",
			piece:      board.BlackRook,
			before:     board.Cell{Owner: board.Black, Hold: [2]uint8{0, 2}},
			want:       board.Cell{Owner: board.Black, Hold: [2]uint8{0, 2}},
			wantEarned: [2]int{0, 1},
		},
		{
			name:       "occupant resets opponent counter",
			piece:      board.BlackPawn,
			before:     board.Cell{Owner: board.White, Hold: [2]uint8{2, 0}},
			want:       board.Cell{Owner: board.White, Hold: [2]uint8{0, 1}},
			wantEarned: [2]int{1, 0},
		},
		{
			name:       "takeover of an owned square",
			piece:      board.BlackPawn,
			before:     board.Cell{Owner: board.White, Hold: [2]uint8{0, 1}},
			want:       board.Cell{Owner: board.Black, Hold: [2]uint8{0, 2}},
			wantEarned: [2]int{0, 1},
		},
		{
			name:       "empty square keeps owner",
			piece:      board.NoPiece,
			before:     board.Cell{Owner: board.White, Hold: [2]uint8{2, 0}},
			want:       board.Cell{Owner: board.White},
			wantEarned: [2]int{1, 0},
		},
		{
			name:   "empty unowned square stays empty",
			piece:  board.NoPiece,
			before: board.Cell{Owner: board.NoColor, Hold: [2]uint8{0, 1}},
			want:   board.Cell{Owner: board.NoColor},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := board.NewEmptyBoard()
			grid := board.NewGrid()
			if tc.piece != board.NoPiece {
				b.SetPiece(board.D4, tc.piece)
			}
			grid[board.D4] = tc.before

			earned := Sweep(b, &grid)

			if got := grid[board.D4]; got != tc.want {
				t.Errorf("cell = %+v, want %+v", got, tc.want)
			}
			if earned != tc.wantEarned {
				t.Errorf("earned = %v, want %v", earned, tc.wantEarned)
			}
			if !grid[board.D4].Valid() {
				t.Errorf("cell invariants broken: %+v", grid[board.D4])
			}
		})
	}
}

// TestOwnershipAndIncome plays three moves from the start and checks that
// unmoved pieces claim their squares after the second sweep and that every
// owned square pays one coin per sweep.
func TestOwnershipAndIncome(t *testing.T) {
	g := New()

	mustMove(t, g, board.E2, board.E4)
	grid := g.Grid()
	if n := grid.OwnedBy(board.White).Len(); n != 0 {
		t.Fatalf("white owns %d squares after one sweep, want 0", n)
	}

	mustMove(t, g, board.E7, board.E5)
	grid = g.Grid()
	if n := grid.OwnedBy(board.White).Len(); n != 16 {
		t.Errorf("white owns %d squares, want 16", n)
	}
	if n := grid.OwnedBy(board.Black).Len(); n != 15 {
		t.Errorf("black owns %d squares, want 15", n)
	}
	if g.Cell(board.E5).Owned() {
		t.Error("e5 owned after a single sweep")
	}
	if g.Coins(board.White) != 16 || g.Coins(board.Black) != 15 {
		t.Errorf("coins = %d/%d, want 16/15", g.Coins(board.White), g.Coins(board.Black))
	}

	mustMove(t, g, board.G1, board.F3)
	if g.Cell(board.G1).Owner != board.White {
		t.Error("vacated g1 lost its owner")
	}
	if h := g.Cell(board.G1).Hold; h != [2]uint8{} {
		t.Errorf("vacated g1 holds = %v, want zero", h)
	}
	if g.Cell(board.E5).Owner != board.Black {
		t.Error("e5 not owned after its second sweep")
	}
	if g.Coins(board.White) != 32 || g.Coins(board.Black) != 31 {
		t.Errorf("coins = %d/%d, want 32/31", g.Coins(board.White), g.Coins(board.Black))
	}
}

func TestGridInvariantsHoldDuringPlay(t *testing.T) {
	g := New()
	moves := [][2]board.Square{
		{board.E2, board.E4}, {board.D7, board.D5},
		{board.E4, board.D5}, {board.D8, board.D5},
		{board.B1, board.C3}, {board.D5, board.A2},
		{board.A1, board.A2}, {board.G8, board.F6},
	}

	for i, m := range moves {
		mustMove(t, g, m[0], m[1])
		grid := g.Grid()
		for sq := board.Square(0); sq < board.NoSquare; sq++ {
			if !grid[sq].Valid() {
				t.Fatalf("after move %d, cell %v = %+v", i+1, sq, grid[sq])
			}
		}
	}
}
