package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/occupychess/internal/board"
	"github.com/hailam/occupychess/internal/game"
)

// Panel dimensions
const (
	PanelPadding  = 20
	ButtonHeight  = 36
	ShopButtonH   = 70
	SectionLabelH = 20
)

var (
	whiteSwatch = color.RGBA{90, 160, 235, 255}
	blackSwatch = color.RGBA{220, 80, 70, 255}
)

// Panel is the side panel: turn and balances, the shop, the last action and
// game controls.
type Panel struct {
	game *Game

	shopBtns    []*Button // one per game.ShopPieces entry
	missileBtn  *Button
	cancelBtn   *Button
	newGameBtn  *Button
	gamesBtn    *Button
	settingsBtn *Button

	shopY    int
	lastY    int
	controlY int
}

// NewPanel creates the panel for g.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

func (p *Panel) createButtons() {
	x := BoardSize + PanelPadding
	w := PanelWidth - PanelPadding*2

	p.shopY = 150
	btnY := p.shopY + SectionLabelH
	shopW := w / len(game.ShopPieces)
	p.shopBtns = make([]*Button, len(game.ShopPieces))
	for i, pt := range game.ShopPieces {
		p.shopBtns[i] = NewButton(x+i*shopW, btnY, shopW-4, ShopButtonH, "", false,
			func() { p.game.BuyAction(pt) })
	}

	btnY += ShopButtonH + 8
	p.missileBtn = NewButton(x, btnY, w/2-4, ButtonHeight,
		fmt.Sprintf("Missile  %d", game.MissilePrice), false, p.game.MissileAction)
	p.cancelBtn = NewButton(x+w/2+4, btnY, w/2-4, ButtonHeight, "Cancel", false, p.game.CancelAction)

	p.lastY = btnY + ButtonHeight + 46

	p.controlY = ScreenHeight - 150
	p.newGameBtn = NewButton(x, p.controlY, w, ButtonHeight+4, "New Game", true, p.game.NewGameAction)
	p.gamesBtn = NewButton(x, p.controlY+ButtonHeight+12, w/2-4, ButtonHeight-4, "Saved Games", false, p.game.ShowGames)
	p.settingsBtn = NewButton(x+w/2+4, p.controlY+ButtonHeight+12, w/2-4, ButtonHeight-4, "Settings", false, p.game.ShowSettings)
}

func (p *Panel) buttons() []*Button {
	all := append([]*Button{}, p.shopBtns...)
	return append(all, p.missileBtn, p.cancelBtn, p.newGameBtn, p.gamesBtn, p.settingsBtn)
}

// refresh syncs enabled and active flags with the game state.
func (p *Panel) refresh() {
	g := p.game.session.Game()
	shop := g.Shop()

	for i, pt := range game.ShopPieces {
		btn := p.shopBtns[i]
		btn.Active = shop.Kind == game.ShopPlacement && shop.Piece == pt
		btn.Disabled = !btn.Active && (shop.Active() || !g.CanAfford(game.Prices[pt]))
	}
	p.missileBtn.Active = shop.Kind == game.ShopMissile
	p.missileBtn.Disabled = !p.missileBtn.Active && (shop.Active() || !g.CanAfford(game.MissilePrice))
	p.cancelBtn.Disabled = !shop.Active()
	p.gamesBtn.Disabled = !p.game.session.HasStore()
}

// HandleInput processes clicks on the panel and returns true if one landed
// on a button.
func (p *Panel) HandleInput(input *InputHandler) bool {
	p.refresh()
	for _, btn := range p.buttons() {
		if btn.Update(input) {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image, r *Renderer) {
	p.refresh()
	g := p.game.session.Game()
	x := BoardSize + PanelPadding
	w := PanelWidth - PanelPadding*2

	vector.DrawFilledRect(screen, BoardSize, 0, PanelWidth, ScreenHeight, panelBg, false)
	drawText(screen, "Occupy Chess", GetBoldFace(), x, PanelPadding, textPrimary)

	p.drawBalances(screen, g, x, 60, w)

	DrawSectionHeader(screen, "Shop", x, p.shopY)
	for i, btn := range p.shopBtns {
		p.drawShopButton(screen, r, btn, game.ShopPieces[i], g.Turn())
	}
	p.missileBtn.Draw(screen)
	p.cancelBtn.Draw(screen)
	drawText(screen, p.hint(g), GetSmallFace(), x, p.cancelBtn.Y+ButtonHeight+10, textSecondary)

	DrawDivider(screen, x, p.lastY-10, w)
	DrawSectionHeader(screen, "Last action", x, p.lastY)
	last := "None yet"
	if ev, ok := g.LastEvent(); ok {
		last = ev.String()
	}
	drawText(screen, last, GetSmallFace(), x, p.lastY+SectionLabelH+2, textPrimary)

	DrawDivider(screen, x, p.controlY-12, w)
	p.newGameBtn.Draw(screen)
	p.gamesBtn.Draw(screen)
	p.settingsBtn.Draw(screen)

	prefs := p.game.session.Preferences()
	status := fmt.Sprintf("Sound %s   Holds %s", onOff(p.game.feedback.Audio().IsEnabled()), onOff(prefs.ShowHolds))
	drawText(screen, status, GetSmallFace(), x, ScreenHeight-28, textMuted)
}

func (p *Panel) drawBalances(screen *ebiten.Image, g *game.Game, x, y, w int) {
	for i, side := range []board.Color{board.White, board.Black} {
		rowY := y + i*36
		active := side == g.Turn()
		if active {
			vector.DrawFilledRect(screen, float32(x-6), float32(rowY-4), float32(w+12), 32, sectionBg, false)
		}

		swatch := whiteSwatch
		if side == board.Black {
			swatch = blackSwatch
		}
		vector.DrawFilledRect(screen, float32(x), float32(rowY+4), 14, 14, swatch, false)

		label := side.String()
		if active {
			label += " to act"
		}
		fg := textSecondary
		if active {
			fg = textPrimary
		}
		drawText(screen, label, GetRegularFace(), x+24, rowY+2, fg)

		grid := g.Grid()
		owned := grid.OwnedBy(side).Len()
		coins := fmt.Sprintf("%d coins  %d sq", g.Coins(side), owned)
		cw, _ := MeasureText(coins, GetRegularFace())
		drawText(screen, coins, GetRegularFace(), x+w-int(cw), rowY+2, fg)
	}
}

func (p *Panel) drawShopButton(screen *ebiten.Image, r *Renderer, btn *Button, pt board.PieceType, side board.Color) {
	btn.Draw(screen)

	const scale = 0.5
	iconSize := float64(SquareSize) * scale
	ix := float64(btn.X) + (float64(btn.W)-iconSize)/2
	r.Sprites().DrawPieceScaled(screen, board.NewPiece(pt, side), ix, float64(btn.Y+4), scale)

	fg := textPrimary
	if btn.Disabled {
		fg = textMuted
	}
	drawTextCentered(screen, fmt.Sprintf("%d", game.Prices[pt]), GetRegularFace(), btn.X+btn.W/2, btn.Y+btn.H-12, fg)
}

func (p *Panel) hint(g *game.Game) string {
	switch shop := g.Shop(); shop.Kind {
	case game.ShopPlacement:
		return fmt.Sprintf("Place the %v on a green square", shop.Piece)
	case game.ShopMissile:
		return "Pick an owned square to strike"
	}
	if sel, _ := g.Selected(); sel != board.NoSquare {
		return fmt.Sprintf("%v selected", g.PieceAt(sel).Type())
	}
	return "Move a piece or buy from the shop"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
