package board

import "testing"

func mustParse(t *testing.T, placement string) *Board {
	t.Helper()
	b, err := ParsePlacement(placement)
	if err != nil {
		t.Fatalf("Failed to parse placement %q: %v", placement, err)
	}
	return b
}

func setOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// TestStartingPositionMoveCounts mirrors perft(1) = 20 for each side.
func TestStartingPositionMoveCounts(t *testing.T) {
	b := NewBoard()

	for _, c := range []Color{White, Black} {
		total := 0
		for _, sq := range b.Occupied(c).Squares() {
			total += LegalMoves(b, sq).Len()
		}
		if total != 20 {
			t.Errorf("%v: got %d moves from the start position, want 20", c, total)
		}
	}
}

func TestPawnDoubleStepOnlyFromHomeRank(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for file := 0; file < 8; file++ {
			for rank := 1; rank < 7; rank++ {
				b := NewEmptyBoard()
				from := NewSquare(file, rank)
				b.SetPiece(from, NewPiece(Pawn, c))

				moves := LegalMoves(b, from)
				double := from.Offset(0, 2*PawnForward(c))
				home := rank == PawnStartRank(c)

				if got := moves.Has(double); got != home {
					t.Errorf("%v pawn on %v: double step offered=%v, want %v", c, from, got, home)
				}
				want := 1
				if home {
					want = 2
				}
				if moves.Len() != want {
					t.Errorf("%v pawn on %v: got %d moves (%v), want %d", c, from, moves.Len(), moves, want)
				}
			}
		}
	}
}

func TestPawnDoubleStepNeedsBothSquaresEmpty(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		want      SquareSet
	}{
		{"open", "8/8/8/8/8/8/4P3/8", setOf(E3, E4)},
		{"destination blocked", "8/8/8/8/4p3/8/4P3/8", setOf(E3)},
		{"destination own piece", "8/8/8/8/4N3/8/4P3/8", setOf(E3)},
		{"intermediate blocked", "8/8/8/8/8/4p3/4P3/8", EmptySet},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustParse(t, tc.placement)
			if got := LegalMoves(b, E2); got != tc.want {
				t.Errorf("LegalMoves(e2) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPawnCapturesOnlyForwardEnemies(t *testing.T) {
	// White pawn e4 with enemies on d5 and f3, own knight on f5.
	b := mustParse(t, "8/8/8/3p1N2/4P3/5p2/8/8")
	want := setOf(E5, D5)
	if got := LegalMoves(b, E4); got != want {
		t.Errorf("LegalMoves(e4) = %v, want %v", got, want)
	}

	// Black pawn d5 moves down the board and captures e4.
	want = setOf(D4, E4)
	if got := LegalMoves(b, D5); got != want {
		t.Errorf("LegalMoves(d5) = %v, want %v", got, want)
	}
}

func TestSlidingRaysStopAtFirstOccupant(t *testing.T) {
	// Rook d4, own pawn d6, enemy pawn f4.
	b := mustParse(t, "8/8/3P4/8/3R1p2/8/8/8")
	want := setOf(D5, D3, D2, D1, E4, F4, C4, B4, A4)
	if got := LegalMoves(b, D4); got != want {
		t.Errorf("rook LegalMoves(d4) = %v, want %v", got, want)
	}
	if LegalMoves(b, D4).Has(G4) {
		t.Errorf("rook ray continued past the enemy on f4")
	}

	for _, tc := range []struct {
		name  string
		piece Piece
	}{
		{"bishop", WhiteBishop},
		{"rook", WhiteRook},
		{"queen", WhiteQueen},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := NewEmptyBoard()
			b.SetPiece(D4, tc.piece)
			b.SetPiece(F6, BlackKnight)
			b.SetPiece(B2, WhitePawn)
			b.SetPiece(D7, BlackPawn)
			b.SetPiece(G4, WhitePawn)

			moves := LegalMoves(b, D4)
			for _, sq := range moves.Squares() {
				if sq == F6 || sq == D7 {
					continue
				}
				if !b.IsEmpty(sq) {
					t.Errorf("%v listed occupied square %v", tc.name, sq)
				}
			}
			for _, beyond := range []Square{G7, H8, A1, D8, H4} {
				if moves.Has(beyond) {
					t.Errorf("%v listed %v beyond the first occupant", tc.name, beyond)
				}
			}
			if moves.Has(B2) || moves.Has(G4) {
				t.Errorf("%v listed a friendly-occupied square", tc.name)
			}
		})
	}
}

func TestKnightAndKingSteps(t *testing.T) {
	b := NewBoard()
	if got, want := LegalMoves(b, B1), setOf(A3, C3); got != want {
		t.Errorf("knight LegalMoves(b1) = %v, want %v", got, want)
	}
	if got := LegalMoves(b, E1); !got.IsEmpty() {
		t.Errorf("boxed-in king should have no moves, got %v", got)
	}

	b = NewEmptyBoard()
	b.SetPiece(E4, BlackKing)
	if got := LegalMoves(b, E4).Len(); got != 8 {
		t.Errorf("central king: got %d moves, want 8", got)
	}
	b.SetPiece(A1, WhiteKing)
	if got := LegalMoves(b, A1).Len(); got != 3 {
		t.Errorf("corner king: got %d moves, want 3", got)
	}
	b.SetPiece(H8, WhiteKnight)
	b.SetPiece(G6, BlackPawn)
	b.SetPiece(F7, WhitePawn)
	if got, want := LegalMoves(b, H8), setOf(G6); got != want {
		t.Errorf("knight LegalMoves(h8) = %v, want %v", got, want)
	}
}

func TestLegalMovesFromEmptyOrInvalidSquare(t *testing.T) {
	b := NewBoard()
	if got := LegalMoves(b, E4); !got.IsEmpty() {
		t.Errorf("empty square produced moves: %v", got)
	}
	if got := LegalMoves(b, NoSquare); !got.IsEmpty() {
		t.Errorf("NoSquare produced moves: %v", got)
	}
}
