package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/occupychess/internal/board"
	"github.com/hailam/occupychess/internal/session"
	"github.com/hailam/occupychess/internal/storage"
)

// Game implements ebiten.Game on top of a session.
type Game struct {
	session *session.Session

	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	settingsModal *SettingsModal
	gamesModal    *GamesModal
}

// NewGame creates the front end for s. Sound follows the stored preference
// unless muted is set.
func NewGame(s *session.Session, muted bool) *Game {
	g := &Game{
		session:  s,
		renderer: NewRenderer(),
		input:    NewInputHandler(),
		feedback: NewFeedbackManager(),
	}
	g.panel = NewPanel(g)
	g.settingsModal = NewSettingsModal()
	g.gamesModal = NewGamesModal(g)

	g.feedback.Audio().SetEnabled(s.Preferences().SoundEnabled && !muted)
	return g
}

// Update advances one frame.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	switch {
	case g.gamesModal.IsVisible():
		g.gamesModal.Update(g.input)
	case g.settingsModal.IsVisible():
		g.settingsModal.Update(g.input)
	default:
		g.handleCommand(g.input.Command())
		if !g.panel.HandleInput(g.input) {
			g.handleBoardInput()
		}
	}

	g.updateCursor()
	return nil
}

func (g *Game) updateCursor() {
	shape := ebiten.CursorShapeDefault
	mx, my := g.input.MousePosition()
	if !g.gamesModal.IsVisible() && !g.settingsModal.IsVisible() {
		if sq := ScreenToSquare(mx, my); sq != board.NoSquare && g.session.Highlights().Has(sq) {
			shape = ebiten.CursorShapePointer
		}
	}
	ebiten.SetCursorShape(shape)
}

func (g *Game) handleCommand(cmd Command) {
	if pt, ok := cmd.BuyPiece(); ok {
		g.BuyAction(pt)
		return
	}
	switch cmd {
	case CmdCancel:
		g.CancelAction()
	case CmdMissile:
		g.MissileAction()
	case CmdNewGame:
		g.NewGameAction()
	case CmdToggleHolds:
		prefs := g.session.Preferences()
		prefs.ShowHolds = !prefs.ShowHolds
		g.savePreferences(prefs)
	case CmdToggleSound:
		prefs := g.session.Preferences()
		prefs.SoundEnabled = !g.feedback.Audio().IsEnabled()
		g.savePreferences(prefs)
	case CmdSaveGames:
		g.ShowGames()
	}
}

// handleBoardInput routes a board click through the session and reports the
// outcome.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	mx, my := g.input.MousePosition()
	sq := ScreenToSquare(mx, my)
	if sq == board.NoSquare {
		return
	}

	gm := g.session.Game()
	side := gm.Turn()
	before := gm.Coins(side)

	out := g.session.Click(sq)
	switch {
	case out.Result.Completed():
		g.feedback.OnEvent(out.Event)
		// The actor's balance moved by its sweep income less the action's cost.
		g.feedback.OnIncome(gm.Coins(side) - before + out.Event.Cost)
	case out.Err != nil:
		g.feedback.OnRejected(out.Err, sq)
	}
}

// BuyAction enters placement mode for pt.
func (g *Game) BuyAction(pt board.PieceType) {
	if err := g.session.Buy(pt); err != nil {
		g.feedback.OnRejected(err, board.NoSquare)
	}
}

// MissileAction enters missile targeting mode.
func (g *Game) MissileAction() {
	if err := g.session.Missile(); err != nil {
		g.feedback.OnRejected(err, board.NoSquare)
	}
}

// CancelAction abandons a pending purchase.
func (g *Game) CancelAction() {
	if g.session.Game().Shop().Active() {
		g.feedback.Info("Purchase cancelled")
	}
	g.session.Cancel()
}

// NewGameAction starts over from the standard position.
func (g *Game) NewGameAction() {
	g.session.NewGame()
	g.feedback.Info("New game")
}

// ShowGames opens the saved games modal.
func (g *Game) ShowGames() {
	if !g.session.HasStore() {
		g.feedback.Error("Storage is disabled")
		return
	}
	g.gamesModal.Show()
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.settingsModal.Show(g.session.Preferences(), g.savePreferences)
}

func (g *Game) savePreferences(prefs storage.Preferences) {
	g.feedback.Audio().SetEnabled(prefs.SoundEnabled)
	if err := g.session.SetPreferences(prefs); err != nil {
		log.Printf("[STORAGE] Warning: failed to save preferences: %v", err)
	}
}

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	gm := g.session.Game()
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)
	g.renderer.DrawTerritory(screen, gm.Grid(), g.session.Preferences().ShowHolds)
	ev, ok := gm.LastEvent()
	g.renderer.DrawLastEvent(screen, ev, ok)
	g.renderer.DrawHighlights(screen, gm, g.session.Highlights())
	g.renderer.DrawPieces(screen, gm, g.feedback.Animations())

	g.feedback.Draw(screen)
	g.panel.Draw(screen, g.renderer)

	g.settingsModal.Draw(screen)
	g.gamesModal.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
