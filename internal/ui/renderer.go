package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/occupychess/internal/board"
	"github.com/hailam/occupychess/internal/game"
)

// Theme defines the board color scheme.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	WhiteTerritory color.RGBA
	BlackTerritory color.RGBA
	WhiteHold      color.RGBA
	BlackHold      color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	PlaceColor     color.RGBA
	TargetColor    color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
	Coordinates    color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{236, 225, 204, 255},
		DarkSquare:     color.RGBA{166, 141, 112, 255},
		WhiteTerritory: color.RGBA{90, 160, 235, 85},
		BlackTerritory: color.RGBA{220, 80, 70, 85},
		WhiteHold:      color.RGBA{40, 110, 210, 255},
		BlackHold:      color.RGBA{190, 45, 40, 255},
		SelectedSquare: color.RGBA{247, 247, 105, 170},
		LegalMoveColor: color.RGBA{60, 90, 50, 150},
		PlaceColor:     color.RGBA{76, 175, 120, 210},
		TargetColor:    color.RGBA{235, 70, 50, 220},
		LastMoveColor:  color.RGBA{200, 200, 90, 90},
		Background:     color.RGBA{40, 44, 52, 255},
		Coordinates:    color.RGBA{60, 50, 40, 200},
	}
}

// Renderer draws the board, territory and pieces.
type Renderer struct {
	sprites *SpriteManager
	theme   *Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{
		sprites: NewSpriteManager(SquareSize),
		theme:   DefaultTheme(),
	}
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// DrawBoard draws the squares and coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		c := r.theme.LightSquare
		if (sq.File()+sq.Rank())%2 == 1 {
			c = r.theme.DarkSquare
		}
		r.fillSquare(screen, sq, c)
	}
	r.drawCoordinates(screen)
}

func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetSmallFace()
	if face == nil {
		return
	}
	for i := 0; i < 8; i++ {
		file := string(rune('a' + i))
		r.drawLabel(screen, file, float64((i+1)*SquareSize-10), float64(BoardSize-15), face)

		rank := string(rune('8' - i))
		r.drawLabel(screen, rank, 3, float64(i*SquareSize+2), face)
	}
}

func (r *Renderer) drawLabel(screen *ebiten.Image, s string, x, y float64, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(r.theme.Coordinates)
	text.Draw(screen, s, face, op)
}

// DrawTerritory tints owned squares and, when showHolds is set, draws one
// pip per consecutive sweep a side has occupied a square it does not own.
func (r *Renderer) DrawTerritory(screen *ebiten.Image, grid board.Grid, showHolds bool) {
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		cell := grid[sq]
		switch cell.Owner {
		case board.White:
			r.fillSquare(screen, sq, r.theme.WhiteTerritory)
		case board.Black:
			r.fillSquare(screen, sq, r.theme.BlackTerritory)
		}

		if !showHolds {
			continue
		}
		for _, side := range []board.Color{board.White, board.Black} {
			if cell.Owner == side || cell.Hold[side] == 0 {
				continue
			}
			r.drawHoldPips(screen, sq, side, int(cell.Hold[side]))
		}
	}
}

func (r *Renderer) drawHoldPips(screen *ebiten.Image, sq board.Square, side board.Color, n int) {
	c := r.theme.WhiteHold
	if side == board.Black {
		c = r.theme.BlackHold
	}
	x, y := SquareToScreen(sq)
	for i := 0; i < n; i++ {
		cx := float32(x + SquareSize - 9 - i*11)
		cy := float32(y + 9)
		vector.DrawFilledCircle(screen, cx, cy, 4, c, true)
		vector.StrokeCircle(screen, cx, cy, 4, 1, color.RGBA{255, 255, 255, 200}, true)
	}
}

// DrawLastEvent highlights the squares touched by the last completed action.
func (r *Renderer) DrawLastEvent(screen *ebiten.Image, ev game.Event, ok bool) {
	if !ok {
		return
	}
	if ev.From != board.NoSquare {
		r.fillSquare(screen, ev.From, r.theme.LastMoveColor)
	}
	r.fillSquare(screen, ev.To, r.theme.LastMoveColor)
}

// DrawHighlights marks the selection and the squares the next click can use:
// legal destinations as dots (rings on captures), placeable squares in green
// and missile targets in red.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, g *game.Game, marks board.SquareSet) {
	if sel, _ := g.Selected(); sel != board.NoSquare {
		r.fillSquare(screen, sel, r.theme.SelectedSquare)
	}

	switch g.Shop().Kind {
	case game.ShopPlacement:
		for _, sq := range marks.Squares() {
			r.strokeSquare(screen, sq, r.theme.PlaceColor)
		}
	case game.ShopMissile:
		for _, sq := range marks.Squares() {
			r.drawCrosshair(screen, sq)
		}
	default:
		for _, sq := range marks.Squares() {
			x, y := SquareToScreen(sq)
			cx := float32(x) + SquareSize/2
			cy := float32(y) + SquareSize/2
			if g.PieceAt(sq) != board.NoPiece {
				vector.StrokeCircle(screen, cx, cy, SquareSize*0.45, 5, r.theme.LegalMoveColor, true)
			} else {
				vector.DrawFilledCircle(screen, cx, cy, SquareSize*0.15, r.theme.LegalMoveColor, true)
			}
		}
	}
}

func (r *Renderer) drawCrosshair(screen *ebiten.Image, sq board.Square) {
	x, y := SquareToScreen(sq)
	cx := float32(x) + SquareSize/2
	cy := float32(y) + SquareSize/2
	c := r.theme.TargetColor
	vector.StrokeCircle(screen, cx, cy, SquareSize*0.3, 3, c, true)
	vector.StrokeLine(screen, cx-SquareSize*0.4, cy, cx+SquareSize*0.4, cy, 2, c, true)
	vector.StrokeLine(screen, cx, cy-SquareSize*0.4, cx, cy+SquareSize*0.4, 2, c, true)
}

// DrawPieces draws every piece, applying shake offsets from anims.
func (r *Renderer) DrawPieces(screen *ebiten.Image, g *game.Game, anims *AnimationManager) {
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		p := g.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		x, y := SquareToScreen(sq)
		dx, dy := 0.0, 0.0
		if anims != nil {
			dx, dy = anims.GetShakeOffset(sq)
		}
		r.sprites.DrawPieceAt(screen, p, float64(x)+dx, float64(y)+dy)
	}
}

func (r *Renderer) fillSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	x, y := SquareToScreen(sq)
	vector.DrawFilledRect(screen, float32(x), float32(y), SquareSize, SquareSize, c, false)
}

func (r *Renderer) strokeSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	x, y := SquareToScreen(sq)
	vector.StrokeRect(screen, float32(x)+3, float32(y)+3, SquareSize-6, SquareSize-6, 4, c, false)
}
