// Package ui implements the desktop front end using Ebitengine.
package ui

import "github.com/hailam/occupychess/internal/board"

// Window and board geometry in logical pixels. Ebitengine scales the
// logical screen to the window.
const (
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = 320
	ScreenWidth  = BoardSize + PanelWidth
	ScreenHeight = BoardSize
)

// SquareToScreen returns the top-left pixel of sq. Rank index 0 is the top
// row, so White's back rank sits at the bottom of the board.
func SquareToScreen(sq board.Square) (int, int) {
	return sq.File() * SquareSize, sq.Rank() * SquareSize
}

// ScreenToSquare returns the square under (x, y), or NoSquare when the point
// is off the board.
func ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return board.NoSquare
	}
	return board.NewSquare(x/SquareSize, y/SquareSize)
}

// rect is an axis-aligned hit box.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
