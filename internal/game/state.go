package game

import (
	"encoding/json"
	"fmt"

	"github.com/hailam/occupychess/internal/board"
)

// State is a serializable snapshot of the authoritative game state.
// Selection and the last event are transient and not included.
type State struct {
	Placement string      `json:"placement"`
	Cells     board.Grid  `json:"cells"`
	Coins     [2]int      `json:"coins"`
	Turn      board.Color `json:"turn"`
	Shop      ShopMode    `json:"shop"`
}

// State returns a snapshot of the game.
func (g *Game) State() State {
	return State{
		Placement: g.board.Placement(),
		Cells:     g.grid,
		Coins:     g.coins,
		Turn:      g.turn,
		Shop:      g.shop,
	}
}

// UnmarshalJSON decodes a snapshot and rejects one without its cells.
func (s *State) UnmarshalJSON(data []byte) error {
	type plain State
	var raw struct {
		plain
		Cells *board.Grid `json:"cells"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if raw.Cells == nil {
		return fmt.Errorf("%w: missing cells", ErrInvalidState)
	}
	*s = State(raw.plain)
	s.Cells = *raw.Cells
	return nil
}

// Validate checks a snapshot without applying it and returns the decoded board.
func (s State) Validate() (*board.Board, error) {
	b, err := board.ParsePlacement(s.Placement)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	for i, cell := range s.Cells {
		if !cell.Valid() {
			return nil, fmt.Errorf("%w: cell %v", ErrInvalidState, board.Square(i))
		}
	}
	if s.Coins[board.White] < 0 || s.Coins[board.Black] < 0 {
		return nil, fmt.Errorf("%w: negative coins", ErrInvalidState)
	}
	if !s.Turn.Valid() {
		return nil, fmt.Errorf("%w: turn %d", ErrInvalidState, s.Turn)
	}
	switch s.Shop.Kind {
	case ShopInactive, ShopMissile:
	case ShopPlacement:
		if _, err := PiecePrice(s.Shop.Piece); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
	default:
		return nil, fmt.Errorf("%w: shop kind %d", ErrInvalidState, s.Shop.Kind)
	}
	return b, nil
}

// Restore replaces the game with the snapshot, or rejects it and changes
// nothing.
func (g *Game) Restore(s State) error {
	b, err := s.Validate()
	if err != nil {
		return err
	}
	g.board = b
	g.grid = s.Cells
	g.coins = s.Coins
	g.turn = s.Turn
	g.shop = s.Shop
	g.clearSelection()
	g.last = Event{}
	g.hasLast = false
	return nil
}
