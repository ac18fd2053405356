package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/occupychess/internal/board"
)

// Piece outlines on a 45x45 canvas. Each shape is drawn with the side's fill
// and stroke colors.
var pieceShapes = map[board.PieceType]string{
	board.Pawn: `
<circle cx="22.5" cy="13" r="5"/>
<path d="M18 19 L27 19 L30 34 L15 34 Z"/>
<rect x="11" y="34" width="23" height="5" rx="1"/>`,

	board.Knight: `
<path d="M14 38 L33 38 L33 34 L30 34 C30 27 33 22 32 15 C31 9 26 7 22 7 L20 4 L18 8 C15 10 12 14 10 20 L11 23 L14 23 L18 19 L20 21 C17 25 14 29 15 34 L14 34 Z"/>
<circle cx="19" cy="13" r="1.5"/>`,

	board.Bishop: `
<circle cx="22.5" cy="8" r="3"/>
<path d="M22.5 11 C16 15 14 22 17 28 L28 28 C31 22 29 15 22.5 11 Z"/>
<path d="M16 28 L29 28 L30 33 L15 33 Z"/>
<rect x="10" y="33" width="25" height="5" rx="2"/>`,

	board.Rook: `
<path d="M11 9 L15 9 L15 12 L20 12 L20 9 L25 9 L25 12 L30 12 L30 9 L34 9 L34 15 L11 15 Z"/>
<path d="M14 15 L31 15 L30 32 L15 32 Z"/>
<rect x="10" y="32" width="25" height="6" rx="1"/>`,

	board.Queen: `
<circle cx="6" cy="12" r="2.5"/>
<circle cx="14" cy="9" r="2.5"/>
<circle cx="22.5" cy="8" r="2.5"/>
<circle cx="31" cy="9" r="2.5"/>
<circle cx="39" cy="12" r="2.5"/>
<path d="M9 26 L6 14 L14 24 L14 11 L19.5 24 L22.5 10 L25.5 24 L31 11 L31 24 L39 14 L36 26 Z"/>
<path d="M9 26 L36 26 L34 32 L11 32 Z"/>
<rect x="10" y="32" width="25" height="6" rx="2"/>`,

	board.King: `
<path d="M21 3 L24 3 L24 6 L27 6 L27 9 L24 9 L24 13 L21 13 L21 9 L18 9 L18 6 L21 6 Z"/>
<path d="M22.5 13 C14 13 8 18 10 25 L13 30 L32 30 L35 25 C37 18 31 13 22.5 13 Z"/>
<path d="M12 30 L33 30 L32 34 L13 34 Z"/>
<rect x="10" y="34" width="25" height="5" rx="2"/>`,
}

// pieceColors returns the fill and stroke colors for side c.
func pieceColors(c board.Color) (fill, stroke string) {
	if c == board.White {
		return "#f6f3ea", "#1e1e1e"
	}
	return "#2b2b2e", "#d8d8d8"
}

// pieceSVG renders the SVG document for p.
func pieceSVG(p board.Piece) string {
	fill, stroke := pieceColors(p.Color())
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">`)
	fmt.Fprintf(&sb, `<g fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round">`, fill, stroke)
	sb.WriteString(pieceShapes[p.Type()])
	sb.WriteString(`</g></svg>`)
	return sb.String()
}

// SpriteManager holds rasterized piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int
	renderScale float64
}

// NewSpriteManager rasterizes every piece at the given display size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			p := board.NewPiece(pt, c)
			img, err := rasterizeSVG(pieceSVG(p), renderSize)
			if err != nil {
				log.Printf("Failed to render sprite for %v: %v", p, err)
				continue
			}
			sm.pieces[p] = ebiten.NewImageFromImage(img)
		}
	}
}

// rasterizeSVG draws an SVG document into a size x size RGBA image.
func rasterizeSVG(doc string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// DrawPieceAt draws p with its top-left corner at (x, y).
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y float64) {
	sm.DrawPieceScaled(screen, p, x, y, 1.0)
}

// DrawPieceScaled draws p at a fraction of the square size, used for the
// shop icons.
func (sm *SpriteManager) DrawPieceScaled(screen *ebiten.Image, p board.Piece, x, y, scale float64) {
	sprite := sm.pieces[p]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	s := scale / sm.renderScale
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
