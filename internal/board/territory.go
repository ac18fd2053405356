package board

import (
	"encoding/json"
	"errors"
	"fmt"
)

// HoldThreshold is the number of consecutive end-of-turn sweeps a side must
// occupy a square before it takes ownership.
const HoldThreshold = 2

// Cell is the per-square ownership record.
type Cell struct {
	Owner Color    `json:"owner"`
	Hold  [2]uint8 `json:"hold"` // indexed by Color
}

// EmptyCell returns an unowned cell with both hold counters at zero.
func EmptyCell() Cell {
	return Cell{Owner: NoColor}
}

// Owned returns true if either side owns the cell.
func (c Cell) Owned() bool {
	return c.Owner.Valid()
}

// Valid checks the cell invariants: owner in range, counters capped at the
// threshold, at most one side holding, and a side at the threshold owning
// the cell.
func (c Cell) Valid() bool {
	if c.Owner > NoColor {
		return false
	}
	if c.Hold[White] != 0 && c.Hold[Black] != 0 {
		return false
	}
	for _, side := range [2]Color{White, Black} {
		switch {
		case c.Hold[side] > HoldThreshold:
			return false
		case c.Hold[side] == HoldThreshold && c.Owner != side:
			return false
		}
	}
	return true
}

// UnmarshalJSON requires both fields. A missing owner would otherwise decode
// as White.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw struct {
		Owner *Color    `json:"owner"`
		Hold  *[2]uint8 `json:"hold"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Owner == nil || raw.Hold == nil {
		return errors.New("cell needs owner and hold")
	}
	c.Owner, c.Hold = *raw.Owner, *raw.Hold
	return nil
}

// Grid is the ownership record for all 64 squares.
type Grid [64]Cell

// NewGrid returns a grid with every cell unowned.
func NewGrid() Grid {
	var g Grid
	g.Reset()
	return g
}

// Reset clears ownership and hold counters on every square.
func (g *Grid) Reset() {
	for i := range g {
		g[i] = EmptyCell()
	}
}

// UnmarshalJSON requires exactly one entry per square.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var cells []Cell
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}
	if len(cells) != len(g) {
		return fmt.Errorf("grid has %d cells, want %d", len(cells), len(g))
	}
	copy(g[:], cells)
	return nil
}

// Cell returns the record for sq, or an empty cell when sq is off the board.
func (g Grid) Cell(sq Square) Cell {
	if !sq.IsValid() {
		return EmptyCell()
	}
	return g[sq]
}

// OwnedBy returns the squares owned by c.
func (g Grid) OwnedBy(c Color) SquareSet {
	var s SquareSet
	for i := range g {
		if g[i].Owner == c {
			s = s.Add(Square(i))
		}
	}
	return s
}
