package board

// Direction deltas as (file, rank) steps. Negative rank moves toward the top row.
type delta struct {
	df, dr int
}

var (
	rookDirections   = [...]delta{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}
	bishopDirections = [...]delta{{1, -1}, {-1, -1}, {1, 1}, {-1, 1}}
	queenDirections  = [...]delta{{0, -1}, {0, 1}, {1, 0}, {-1, 0}, {1, -1}, {-1, -1}, {1, 1}, {-1, 1}}
	knightOffsets    = [...]delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets      = [...]delta{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// PawnForward returns the rank step a pawn of color c advances by.
// White starts on the bottom rows and moves toward rank index 0.
func PawnForward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// PawnStartRank returns the rank index from which a pawn may double-step.
func PawnStartRank(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRank returns the farthest rank index for a pawn of color c.
func PromotionRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// LegalMoves returns every destination the piece on from may move to.
// There is no king-safety filter: check does not exist in this rule set.
// An empty or off-board source yields the empty set.
func LegalMoves(b *Board, from Square) SquareSet {
	p := b.PieceAt(from)
	if p == NoPiece {
		return EmptySet
	}

	us := p.Color()
	switch p.Type() {
	case Pawn:
		return pawnMoves(b, from, us)
	case Knight:
		return stepMoves(b, from, us, knightOffsets[:])
	case Bishop:
		return slidingMoves(b, from, us, bishopDirections[:])
	case Rook:
		return slidingMoves(b, from, us, rookDirections[:])
	case Queen:
		return slidingMoves(b, from, us, queenDirections[:])
	case King:
		return stepMoves(b, from, us, kingOffsets[:])
	}
	return EmptySet
}

// isEnemy returns true if sq holds a piece of the side opposing us.
func isEnemy(b *Board, sq Square, us Color) bool {
	p := b.PieceAt(sq)
	return p != NoPiece && p.Color() != us
}

func pawnMoves(b *Board, from Square, us Color) SquareSet {
	var moves SquareSet
	fwd := PawnForward(us)

	single := from.Offset(0, fwd)
	if b.IsEmpty(single) {
		moves = moves.Add(single)

		// Double step: intermediate and destination both empty.
		if from.Rank() == PawnStartRank(us) {
			double := from.Offset(0, 2*fwd)
			if b.IsEmpty(double) {
				moves = moves.Add(double)
			}
		}
	}

	for _, df := range [...]int{-1, 1} {
		target := from.Offset(df, fwd)
		if isEnemy(b, target, us) {
			moves = moves.Add(target)
		}
	}

	return moves
}

// stepMoves covers knights and kings: fixed offsets, empty or enemy targets.
func stepMoves(b *Board, from Square, us Color, offsets []delta) SquareSet {
	var moves SquareSet
	for _, d := range offsets {
		target := from.Offset(d.df, d.dr)
		if !target.IsValid() {
			continue
		}
		if b.IsEmpty(target) || isEnemy(b, target, us) {
			moves = moves.Add(target)
		}
	}
	return moves
}

// slidingMoves casts a ray per direction. The first occupied square ends the
// ray and is included only when it holds an enemy piece.
func slidingMoves(b *Board, from Square, us Color, directions []delta) SquareSet {
	var moves SquareSet
	for _, d := range directions {
		for target := from.Offset(d.df, d.dr); target.IsValid(); target = target.Offset(d.df, d.dr) {
			if b.IsEmpty(target) {
				moves = moves.Add(target)
				continue
			}
			if isEnemy(b, target, us) {
				moves = moves.Add(target)
			}
			break
		}
	}
	return moves
}
