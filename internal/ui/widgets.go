package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelBg          = color.RGBA{38, 40, 45, 255}
	sectionBg        = color.RGBA{48, 52, 58, 255}
	buttonBg         = color.RGBA{50, 54, 60, 255}
	buttonHoverBg    = color.RGBA{65, 70, 78, 255}
	buttonPressedBg  = color.RGBA{40, 44, 50, 255}
	buttonBorder     = color.RGBA{70, 75, 82, 255}
	buttonActiveBg   = color.RGBA{76, 132, 96, 255}
	accentColor      = color.RGBA{76, 175, 120, 255}
	accentHover      = color.RGBA{96, 195, 140, 255}
	accentPressed    = color.RGBA{56, 155, 100, 255}
	textPrimary      = color.RGBA{240, 240, 245, 255}
	textSecondary    = color.RGBA{160, 165, 175, 255}
	textMuted        = color.RGBA{120, 125, 135, 255}
	dividerColor     = color.RGBA{60, 65, 72, 255}
	inputPlaceholder = color.RGBA{120, 125, 135, 255}
)

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawTextCentered draws s centered on (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy int, c color.Color) {
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx)-w/2, float64(cy)-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func fillRect(screen *ebiten.Image, r rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, dividerColor, false)
}

// DrawSectionHeader draws a muted section label.
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	drawText(screen, label, GetRegularFace(), x, y, textMuted)
}

// Button is a clickable label. Primary buttons use the accent color; Active
// marks a toggled or pending state.
type Button struct {
	rect
	Label    string
	Primary  bool
	Active   bool
	Disabled bool
	OnClick  func()

	hovered bool
	pressed bool
}

// NewButton creates a button.
func NewButton(x, y, w, h int, label string, primary bool, onClick func()) *Button {
	return &Button{
		rect:    rect{X: x, Y: y, W: w, H: h},
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// Update tracks hover state and fires OnClick. It returns true if the click
// landed on the button, even when the button is disabled.
func (b *Button) Update(input *InputHandler) bool {
	b.hovered = input.Hovering(b.rect)
	b.pressed = b.hovered && input.IsLeftPressed()
	if !input.ClickedIn(b.rect) {
		return false
	}
	if !b.Disabled && b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw renders the button background, border and label.
func (b *Button) Draw(screen *ebiten.Image) {
	bg, border, fg := b.colors()
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)
	if b.Label != "" {
		drawTextCentered(screen, b.Label, GetRegularFace(), b.X+b.W/2, b.Y+b.H/2, fg)
	}
}

func (b *Button) colors() (bg, border, fg color.RGBA) {
	switch {
	case b.Disabled:
		return buttonPressedBg, buttonBorder, textMuted
	case b.Primary:
		bg = accentColor
		if b.pressed {
			bg = accentPressed
		} else if b.hovered {
			bg = accentHover
		}
		return bg, accentPressed, textPrimary
	case b.Active:
		return buttonActiveBg, accentColor, textPrimary
	}

	bg, border = buttonBg, buttonBorder
	if b.pressed {
		bg = buttonPressedBg
	} else if b.hovered {
		bg, border = buttonHoverBg, accentColor
	}
	return bg, border, textSecondary
}

// Checkbox is a labelled toggle.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

const checkboxSize = 18

// NewCheckbox creates a checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, Label: label, Checked: checked}
}

func (cb *Checkbox) bounds() rect {
	w, _ := MeasureText(cb.Label, GetRegularFace())
	return rect{X: cb.X, Y: cb.Y, W: checkboxSize + 10 + int(w), H: checkboxSize}
}

// Update toggles the box on click and returns true if it changed.
func (cb *Checkbox) Update(input *InputHandler) bool {
	r := cb.bounds()
	cb.hovered = input.Hovering(r)
	if input.ClickedIn(r) {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	x, y := float32(cb.X), float32(cb.Y)
	border := buttonBorder
	if cb.hovered {
		border = accentColor
	}
	vector.DrawFilledRect(screen, x, y, checkboxSize, checkboxSize, sectionBg, false)
	vector.StrokeRect(screen, x, y, checkboxSize, checkboxSize, 2, border, false)
	if cb.Checked {
		vector.DrawFilledRect(screen, x+4, y+4, checkboxSize-8, checkboxSize-8, accentColor, false)
	}
	face := GetRegularFace()
	_, h := MeasureText(cb.Label, face)
	drawText(screen, cb.Label, face, cb.X+checkboxSize+10, cb.Y+checkboxSize/2-int(h)/2, textPrimary)
}

// TextInput is a single-line editable field.
type TextInput struct {
	rect
	Value       string
	Placeholder string
	MaxLength   int

	focused     bool
	hovered     bool
	cursorBlink int
}

// NewTextInput creates a text input.
func NewTextInput(x, y, w, h int, placeholder string, maxLen int) *TextInput {
	return &TextInput{
		rect:        rect{X: x, Y: y, W: w, H: h},
		Placeholder: placeholder,
		MaxLength:   maxLen,
	}
}

// Update handles focus and typing. It returns true while the field is
// focused so keyboard shortcuts can be suppressed.
func (ti *TextInput) Update(input *InputHandler) bool {
	ti.hovered = input.Hovering(ti.rect)
	if input.IsLeftJustPressed() {
		ti.focused = ti.hovered
	}
	if !ti.focused {
		return false
	}

	ti.cursorBlink = (ti.cursorBlink + 1) % 60

	for _, c := range ebiten.AppendInputChars(nil) {
		if ti.MaxLength == 0 || utf8.RuneCountInString(ti.Value) < ti.MaxLength {
			ti.Value += string(c)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && ti.Value != "" {
		_, size := utf8.DecodeLastRuneInString(ti.Value)
		ti.Value = ti.Value[:len(ti.Value)-size]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.focused = false
	}
	return true
}

// Draw renders the field.
func (ti *TextInput) Draw(screen *ebiten.Image) {
	x, y, w, h := float32(ti.X), float32(ti.Y), float32(ti.W), float32(ti.H)
	vector.DrawFilledRect(screen, x, y, w, h, sectionBg, false)

	border := buttonBorder
	if ti.focused || ti.hovered {
		border = accentColor
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	face := GetRegularFace()
	s, c := ti.Value, color.Color(textPrimary)
	if s == "" {
		s, c = ti.Placeholder, inputPlaceholder
	}
	_, th := MeasureText(s, face)
	drawText(screen, s, face, ti.X+10, ti.Y+ti.H/2-int(th)/2, c)

	if ti.focused && ti.cursorBlink < 30 {
		cw, _ := MeasureText(ti.Value, face)
		vector.DrawFilledRect(screen, x+10+float32(cw)+2, y+8, 2, h-16, textPrimary, false)
	}
}

// IsFocused returns true if the field has keyboard focus.
func (ti *TextInput) IsFocused() bool {
	return ti.focused
}

// SetFocused sets the focus state.
func (ti *TextInput) SetFocused(focused bool) {
	ti.focused = focused
}
