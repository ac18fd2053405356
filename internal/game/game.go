// Package game implements the territory-chess rules engine: turn sequencing,
// the occupy/ownership economy and the shop protocol.
package game

import (
	"fmt"

	"github.com/hailam/occupychess/internal/board"
)

// Game is the single owned game-state aggregate. It is not safe for
// concurrent use; callers sharing one Game must serialize every action.
type Game struct {
	board *board.Board
	grid  board.Grid
	coins [2]int
	turn  board.Color
	shop  ShopMode

	// Selection cache for adapters. Not part of the authoritative state.
	selected board.Square
	legal    board.SquareSet

	last    Event
	hasLast bool
}

// New creates a game in the starting configuration.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset restores the standard start position, unowned squares, zero coins,
// White to act, no pending purchase and no selection.
func (g *Game) Reset() {
	g.board = board.NewBoard()
	g.grid = board.NewGrid()
	g.coins = [2]int{}
	g.turn = board.White
	g.shop = ShopMode{}
	g.clearSelection()
	g.last = Event{}
	g.hasLast = false
}

// Turn returns the active side.
func (g *Game) Turn() board.Color {
	return g.turn
}

// Board returns a copy of the board.
func (g *Game) Board() *board.Board {
	return g.board.Copy()
}

// PieceAt returns the piece on sq, or NoPiece.
func (g *Game) PieceAt(sq board.Square) board.Piece {
	return g.board.PieceAt(sq)
}

// Cell returns the ownership record for sq.
func (g *Game) Cell(sq board.Square) board.Cell {
	return g.grid.Cell(sq)
}

// Grid returns a copy of the ownership grid.
func (g *Game) Grid() board.Grid {
	return g.grid
}

// Coins returns the balance of side c.
func (g *Game) Coins(c board.Color) int {
	if !c.Valid() {
		return 0
	}
	return g.coins[c]
}

// Shop returns the current shop mode.
func (g *Game) Shop() ShopMode {
	return g.shop
}

// Selected returns the selected square and its legal destinations.
// The square is NoSquare when nothing is selected.
func (g *Game) Selected() (board.Square, board.SquareSet) {
	return g.selected, g.legal
}

// LastEvent returns the most recently completed action, if any.
func (g *Game) LastEvent() (Event, bool) {
	return g.last, g.hasLast
}

// Select makes sq the current selection when it holds a piece of the active
// side and returns its legal destinations. Anything else, including any
// selection while a purchase is pending, clears the selection and returns
// the empty set.
func (g *Game) Select(sq board.Square) board.SquareSet {
	p := g.board.PieceAt(sq)
	if g.shop.Active() || p == board.NoPiece || p.Color() != g.turn {
		g.clearSelection()
		return board.EmptySet
	}
	g.selected = sq
	g.legal = board.LegalMoves(g.board, sq)
	return g.legal
}

// Deselect clears the selection.
func (g *Game) Deselect() {
	g.clearSelection()
}

func (g *Game) clearSelection() {
	g.selected = board.NoSquare
	g.legal = board.EmptySet
}

// AttemptMove moves the active side's piece from one square to another,
// capturing any occupant of the destination. A pawn reaching the far rank
// becomes a queen. On success the turn passes and the end-of-turn sweep runs.
func (g *Game) AttemptMove(from, to board.Square) error {
	if !from.IsValid() || !to.IsValid() {
		return ErrOutOfBounds
	}
	if g.shop.Active() {
		return ErrShopActive
	}

	p := g.board.PieceAt(from)
	if p == board.NoPiece {
		return fmt.Errorf("move %v-%v: %w", from, to, ErrNoPiece)
	}
	if p.Color() != g.turn {
		return fmt.Errorf("move %v-%v: %w", from, to, ErrNotYourPiece)
	}
	if !board.LegalMoves(g.board, from).Has(to) {
		return fmt.Errorf("move %v-%v: %w", from, to, ErrIllegalMove)
	}

	captured := g.board.PieceAt(to)
	g.board.RemovePiece(from)

	placed := p
	promoted := false
	if p.Type() == board.Pawn && to.Rank() == board.PromotionRank(p.Color()) {
		placed = board.NewPiece(board.Queen, p.Color())
		promoted = true
	}
	g.board.SetPiece(to, placed)

	g.completeTurn(Event{
		Kind:     EventMove,
		Side:     p.Color(),
		From:     from,
		To:       to,
		Piece:    p,
		Captured: captured,
		Promoted: promoted,
	})
	return nil
}

// completeTurn records the action, passes the turn and runs the end-of-turn
// sweep. Every successful move or shop action ends here.
func (g *Game) completeTurn(ev Event) {
	g.turn = g.turn.Other()
	g.endOfTurn()
	g.clearSelection()
	g.last = ev
	g.hasLast = true
}
