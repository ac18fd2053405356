package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/occupychess/internal/storage"
)

// Saved games modal dimensions
const (
	GamesWidth    = 480
	GamesHeight   = 520
	GamesRowH     = 40
	GamesMaxRows  = 6
	gamesNameMax  = 32
	gamesTimeForm = "Jan 2 15:04"
)

type gameRow struct {
	info      storage.GameInfo
	loadBtn   *Button
	deleteBtn *Button
}

// GamesModal saves the current game and lists, loads and deletes saved
// games. It also offers the autosave slot and the lifetime statistics.
type GamesModal struct {
	game    *Game
	visible bool
	x, y    int

	nameInput *TextInput
	saveBtn   *Button
	resumeBtn *Button
	closeBtn  *Button
	rows      []gameRow
	listY     int
	stats     string
	message   string
}

// NewGamesModal creates a hidden saved games modal for g.
func NewGamesModal(g *Game) *GamesModal {
	gm := &GamesModal{
		game: g,
		x:    (ScreenWidth - GamesWidth) / 2,
		y:    (ScreenHeight - GamesHeight) / 2,
	}

	cx := gm.x + ModalPadX
	cw := GamesWidth - ModalPadX*2
	rowY := gm.y + ModalHeaderH + 20
	gm.nameInput = NewTextInput(cx, rowY, cw-112, ButtonHeight, "Name this game", gamesNameMax)
	gm.saveBtn = NewButton(cx+cw-100, rowY, 100, ButtonHeight, "Save", true, gm.save)

	gm.listY = rowY + ButtonHeight + 40

	btnY := gm.y + GamesHeight - ModalPadX - ButtonHeight
	gm.resumeBtn = NewButton(cx, btnY, 160, ButtonHeight, "Resume Autosave", false, gm.resume)
	gm.closeBtn = NewButton(cx+cw-100, btnY, 100, ButtonHeight, "Close", false, gm.Hide)
	return gm
}

// Show opens the modal and reloads the listing.
func (gm *GamesModal) Show() {
	gm.nameInput.Value = ""
	gm.nameInput.SetFocused(true)
	gm.message = ""
	gm.reload()
	gm.visible = true
}

// Hide closes the modal.
func (gm *GamesModal) Hide() {
	gm.visible = false
	gm.nameInput.SetFocused(false)
}

// IsVisible returns true while the modal is open.
func (gm *GamesModal) IsVisible() bool {
	return gm.visible
}

func (gm *GamesModal) reload() {
	s := gm.game.session
	gm.rows = gm.rows[:0]

	games, err := s.SavedGames()
	if err != nil {
		gm.message = err.Error()
		return
	}

	cx := gm.x + ModalPadX
	cw := GamesWidth - ModalPadX*2
	for i, info := range games {
		if i == GamesMaxRows {
			break
		}
		id := info.ID
		y := gm.listY + i*GamesRowH
		gm.rows = append(gm.rows, gameRow{
			info:      info,
			loadBtn:   NewButton(cx+cw-148, y+4, 70, GamesRowH-8, "Load", false, func() { gm.load(id) }),
			deleteBtn: NewButton(cx+cw-70, y+4, 70, GamesRowH-8, "Delete", false, func() { gm.delete(id) }),
		})
	}

	if st, err := s.Stats(); err == nil {
		gm.stats = fmt.Sprintf("Games %d   Moves %d   Bought %d   Missiles %d   Peak %d",
			st.GamesStarted, st.Moves, st.TotalBought(), st.MissilesFired, st.PeakBalance)
	}
}

func (gm *GamesModal) save() {
	id, err := gm.game.session.Save(gm.nameInput.Value)
	if err != nil {
		gm.game.feedback.Error("Save failed: " + err.Error())
		return
	}
	gm.game.feedback.Success("Game saved")
	gm.message = "Saved " + id[:8]
	gm.nameInput.Value = ""
	gm.reload()
}

func (gm *GamesModal) load(id string) {
	if err := gm.game.session.Load(id); err != nil {
		gm.game.feedback.Error("Load failed: " + err.Error())
		return
	}
	gm.game.feedback.Info("Game loaded")
	gm.Hide()
}

func (gm *GamesModal) delete(id string) {
	if err := gm.game.session.Delete(id); err != nil {
		gm.game.feedback.Error("Delete failed: " + err.Error())
		return
	}
	gm.reload()
}

func (gm *GamesModal) resume() {
	if err := gm.game.session.Resume(); err != nil {
		gm.game.feedback.Error("No autosave to resume")
		return
	}
	gm.game.feedback.Info("Autosave restored")
	gm.Hide()
}

// Update handles modal input. Row buttons may reload the listing, so at most
// one click is dispatched per frame.
func (gm *GamesModal) Update(input *InputHandler) {
	if gm.nameInput.Update(input) {
		if IsEnterJustPressed() {
			gm.save()
		}
	} else if input.Command() == CmdCancel {
		gm.Hide()
		return
	}

	if gm.saveBtn.Update(input) || gm.resumeBtn.Update(input) || gm.closeBtn.Update(input) {
		return
	}
	for _, row := range gm.rows {
		if row.loadBtn.Update(input) || row.deleteBtn.Update(input) {
			return
		}
	}
}

// Draw renders the modal when visible.
func (gm *GamesModal) Draw(screen *ebiten.Image) {
	if !gm.visible {
		return
	}
	drawModalFrame(screen, gm.x, gm.y, GamesWidth, GamesHeight, "Saved Games")

	cx := gm.x + ModalPadX
	cw := GamesWidth - ModalPadX*2
	gm.nameInput.Draw(screen)
	gm.saveBtn.Draw(screen)

	DrawSectionHeader(screen, "Saved", cx, gm.listY-24)
	if len(gm.rows) == 0 {
		drawText(screen, "No saved games", GetRegularFace(), cx, gm.listY+10, textMuted)
	}
	for i, row := range gm.rows {
		y := gm.listY + i*GamesRowH
		if i%2 == 1 {
			fillRect(screen, rect{X: cx - 6, Y: y, W: cw + 12, H: GamesRowH}, sectionBg)
		}
		name := row.info.Name
		if len(name) > 22 {
			name = name[:22] + "..."
		}
		drawText(screen, name, GetRegularFace(), cx, y+4, textPrimary)
		detail := fmt.Sprintf("%s  %s to act  %d/%d", row.info.SavedAt.Format(gamesTimeForm),
			row.info.Turn, row.info.Coins[0], row.info.Coins[1])
		drawText(screen, detail, GetSmallFace(), cx, y+22, textSecondary)
		row.loadBtn.Draw(screen)
		row.deleteBtn.Draw(screen)
	}

	footY := gm.resumeBtn.Y - 44
	DrawDivider(screen, cx, footY, cw)
	drawText(screen, gm.stats, GetSmallFace(), cx, footY+8, textMuted)
	if gm.message != "" {
		drawText(screen, gm.message, GetSmallFace(), cx, footY+24, accentColor)
	}
	gm.resumeBtn.Draw(screen)
	gm.closeBtn.Draw(screen)
}
