package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/occupychess/internal/storage"
)

// Settings modal dimensions
const (
	SettingsWidth  = 360
	SettingsHeight = 260
	ModalPadX      = 24
	ModalHeaderH   = 48
)

var (
	modalOverlay = color.RGBA{0, 0, 0, 170}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// drawModalFrame dims the screen and draws a titled dialog box.
func drawModalFrame(screen *ebiten.Image, x, y, w, h int, title string) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, modalOverlay, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), modalBg, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), ModalHeaderH, modalHeader, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, modalBorder, false)
	drawText(screen, title, GetBoldFace(), x+ModalPadX, y+14, textPrimary)
}

// SettingsModal edits the stored preferences.
type SettingsModal struct {
	visible bool
	x, y    int

	soundCheckbox    *Checkbox
	holdsCheckbox    *Checkbox
	autosaveCheckbox *Checkbox
	saveBtn          *Button
	cancelBtn        *Button

	onSave func(prefs storage.Preferences)
}

// NewSettingsModal creates a hidden settings modal.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{
		x: (ScreenWidth - SettingsWidth) / 2,
		y: (ScreenHeight - SettingsHeight) / 2,
	}

	cx := sm.x + ModalPadX
	cy := sm.y + ModalHeaderH + 24
	sm.soundCheckbox = NewCheckbox(cx, cy, "Sound effects", true)
	sm.holdsCheckbox = NewCheckbox(cx, cy+36, "Show hold pips", true)
	sm.autosaveCheckbox = NewCheckbox(cx, cy+72, "Autosave after every action", true)

	btnW := (SettingsWidth - ModalPadX*2 - 12) / 2
	btnY := sm.y + SettingsHeight - ModalPadX - ButtonHeight
	sm.cancelBtn = NewButton(cx, btnY, btnW, ButtonHeight, "Cancel", false, sm.Hide)
	sm.saveBtn = NewButton(cx+btnW+12, btnY, btnW, ButtonHeight, "Save", true, sm.save)
	return sm
}

// Show opens the modal with the current preferences.
func (sm *SettingsModal) Show(prefs storage.Preferences, onSave func(storage.Preferences)) {
	sm.soundCheckbox.Checked = prefs.SoundEnabled
	sm.holdsCheckbox.Checked = prefs.ShowHolds
	sm.autosaveCheckbox.Checked = prefs.Autosave
	sm.onSave = onSave
	sm.visible = true
}

// Hide closes the modal without saving.
func (sm *SettingsModal) Hide() {
	sm.visible = false
}

// IsVisible returns true while the modal is open.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

func (sm *SettingsModal) save() {
	if sm.onSave != nil {
		sm.onSave(storage.Preferences{
			SoundEnabled: sm.soundCheckbox.Checked,
			ShowHolds:    sm.holdsCheckbox.Checked,
			Autosave:     sm.autosaveCheckbox.Checked,
		})
	}
	sm.visible = false
}

// Update handles modal input.
func (sm *SettingsModal) Update(input *InputHandler) {
	if input.Command() == CmdCancel {
		sm.Hide()
		return
	}
	sm.soundCheckbox.Update(input)
	sm.holdsCheckbox.Update(input)
	sm.autosaveCheckbox.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)
}

// Draw renders the modal when visible.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}
	drawModalFrame(screen, sm.x, sm.y, SettingsWidth, SettingsHeight, "Settings")
	sm.soundCheckbox.Draw(screen)
	sm.holdsCheckbox.Draw(screen)
	sm.autosaveCheckbox.Draw(screen)
	sm.cancelBtn.Draw(screen)
	sm.saveBtn.Draw(screen)
}
