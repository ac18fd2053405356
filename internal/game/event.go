package game

import (
	"fmt"

	"github.com/hailam/occupychess/internal/board"
)

// EventKind identifies a completed action.
type EventKind uint8

const (
	EventMove EventKind = iota
	EventPlace
	EventMissile
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventPlace:
		return "place"
	case EventMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// Event describes the last completed action.
//
// For moves, Piece is the piece that moved (a pawn when Promoted is set) and
// Captured is the former occupant of To. For placements, Piece is the bought
// piece. For missiles, Captured is the destroyed occupant, if any. From is
// NoSquare for shop actions.
type Event struct {
	Kind     EventKind    `json:"kind"`
	Side     board.Color  `json:"side"`
	From     board.Square `json:"from"`
	To       board.Square `json:"to"`
	Piece    board.Piece  `json:"piece"`
	Captured board.Piece  `json:"captured"`
	Promoted bool         `json:"promoted"`
	Cost     int          `json:"cost"`
}

// IsCapture returns true if the action removed a piece from the board.
func (e Event) IsCapture() bool {
	return e.Captured != board.NoPiece
}

// String returns a short human-readable description.
func (e Event) String() string {
	switch e.Kind {
	case EventMove:
		s := fmt.Sprintf("%v %v %v-%v", e.Side, e.Piece.Type(), e.From, e.To)
		if e.IsCapture() {
			s += fmt.Sprintf(" captures %v", e.Captured.Type())
		}
		if e.Promoted {
			s += " promotes to Queen"
		}
		return s
	case EventPlace:
		return fmt.Sprintf("%v places %v on %v for %d", e.Side, e.Piece.Type(), e.To, e.Cost)
	case EventMissile:
		s := fmt.Sprintf("%v fires a missile at %v for %d", e.Side, e.To, e.Cost)
		if e.IsCapture() {
			s += fmt.Sprintf(", destroying %v %v", e.Captured.Color(), e.Captured.Type())
		}
		return s
	default:
		return "unknown action"
	}
}
