package ui

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/occupychess/internal/board"
	"github.com/hailam/occupychess/internal/game"
)

// ToastType is the severity of a toast.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// Toast is a transient notification.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager stacks a few toasts over the board.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show queues a toast, dropping the oldest when the stack is full.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update drops expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

func toastColors(tt ToastType, alpha float64) (bg, fg color.RGBA) {
	a := uint8(220 * alpha)
	fg = color.RGBA{255, 255, 255, uint8(255 * alpha)}
	switch tt {
	case ToastWarning:
		return color.RGBA{180, 140, 20, a}, color.RGBA{40, 30, 0, uint8(255 * alpha)}
	case ToastError:
		return color.RGBA{180, 50, 50, a}, fg
	case ToastSuccess:
		return color.RGBA{50, 150, 50, a}, fg
	default:
		return color.RGBA{50, 100, 150, a}, fg
	}
}

// Draw renders active toasts centered over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := 40.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		alpha := 1.0
		const fade = 0.2
		if elapsed < fade {
			alpha = elapsed / fade
		} else if elapsed > duration-fade {
			alpha = math.Max(0, (duration-elapsed)/fade)
		}
		bg, fg := toastColors(t.Type, alpha)

		w, h := MeasureText(t.Message, face)
		const padding = 12.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// ShakeAnimation wiggles the piece on a square.
type ShakeAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Intensity float64
}

// FlashAnimation fades a colored overlay on a square.
type FlashAnimation struct {
	Square    board.Square
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager runs square-level animations.
type AnimationManager struct {
	shakes  []*ShakeAnimation
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake shakes the piece on sq.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, &ShakeAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  300 * time.Millisecond,
		Intensity: 8.0,
	})
}

// StartFlash flashes sq with c.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA, d time.Duration) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Square:    sq,
		StartTime: time.Now(),
		Duration:  d,
		Color:     c,
	})
}

// Update drops finished animations.
func (am *AnimationManager) Update() {
	now := time.Now()

	shakes := am.shakes[:0]
	for _, s := range am.shakes {
		if now.Sub(s.StartTime) < s.Duration {
			shakes = append(shakes, s)
		}
	}
	am.shakes = shakes

	flashes := am.flashes[:0]
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			flashes = append(flashes, f)
		}
	}
	am.flashes = flashes
}

// GetShakeOffset returns the current pixel offset for the piece on sq.
func (am *AnimationManager) GetShakeOffset(sq board.Square) (float64, float64) {
	for _, s := range am.shakes {
		if s.Square != sq {
			continue
		}
		progress := time.Since(s.StartTime).Seconds() / s.Duration.Seconds()
		if progress >= 1.0 {
			return 0, 0
		}
		amplitude := s.Intensity * math.Exp(-5.0*progress)
		return amplitude * math.Sin(40.0*progress), 0
	}
	return 0, 0
}

// DrawFlashes renders the active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image) {
	for _, f := range am.flashes {
		progress := time.Since(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}
		alpha := 1.0 - progress
		c := color.RGBA{f.Color.R, f.Color.G, f.Color.B, uint8(float64(f.Color.A) * alpha)}
		x, y := SquareToScreen(f.Square)
		vector.DrawFilledRect(screen, float32(x), float32(y), SquareSize, SquareSize, c, false)
	}
}

var (
	flashInvalid = color.RGBA{255, 80, 80, 150}
	flashPlace   = color.RGBA{76, 175, 120, 170}
	flashMissile = color.RGBA{255, 150, 40, 220}
)

// FeedbackManager turns game outcomes into toasts, animations and sounds.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update advances toasts and animations.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders board overlays and toasts.
func (fm *FeedbackManager) Draw(screen *ebiten.Image) {
	fm.animations.DrawFlashes(screen)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Audio returns the audio manager.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

// Info shows an informational toast.
func (fm *FeedbackManager) Info(msg string) {
	fm.toasts.Show(msg, ToastInfo, 2*time.Second)
}

// Success shows a success toast.
func (fm *FeedbackManager) Success(msg string) {
	fm.toasts.Show(msg, ToastSuccess, 2*time.Second)
}

// Error shows an error toast.
func (fm *FeedbackManager) Error(msg string) {
	fm.toasts.Show(msg, ToastError, 3*time.Second)
}

// OnEvent reacts to a completed action.
func (fm *FeedbackManager) OnEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventMove:
		switch {
		case ev.Promoted:
			fm.audio.Play(SoundPromote)
			fm.toasts.Show(fmt.Sprintf("%v pawn promotes to Queen", ev.Side), ToastSuccess, 2*time.Second)
		case ev.IsCapture():
			fm.audio.Play(SoundCapture)
		default:
			fm.audio.Play(SoundMove)
		}
		if ev.Captured.Type() == board.King {
			fm.toasts.Show(fmt.Sprintf("%v king captured", ev.Captured.Color()), ToastWarning, 3*time.Second)
		}
	case game.EventPlace:
		fm.audio.Play(SoundPlace)
		fm.animations.StartFlash(ev.To, flashPlace, 500*time.Millisecond)
	case game.EventMissile:
		fm.audio.Play(SoundMissile)
		fm.animations.StartFlash(ev.To, flashMissile, 700*time.Millisecond)
		if ev.IsCapture() {
			fm.toasts.Show(fmt.Sprintf("Missile destroys %v %v", ev.Captured.Color(), ev.Captured.Type()), ToastWarning, 2*time.Second)
		}
	}
}

// OnIncome chimes when the side that just acted earned coins.
func (fm *FeedbackManager) OnIncome(earned int) {
	if earned > 0 {
		fm.audio.Play(SoundCoin)
	}
}

// OnRejected explains a refused action. at is the square the player clicked,
// or NoSquare for shop buttons.
func (fm *FeedbackManager) OnRejected(err error, at board.Square) {
	fm.toasts.Show(rejectionMessage(err), ToastWarning, 2*time.Second)
	fm.audio.Play(SoundInvalid)
	if at != board.NoSquare {
		fm.animations.StartShake(at)
		fm.animations.StartFlash(at, flashInvalid, 400*time.Millisecond)
	}
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrInsufficientFunds):
		return "Not enough coins"
	case errors.Is(err, game.ErrShopPending):
		return "Finish or cancel the pending purchase first"
	case errors.Is(err, game.ErrShopActive):
		return "Place or cancel the pending purchase"
	case errors.Is(err, game.ErrNotForSale):
		return "That piece is not for sale"
	case errors.Is(err, game.ErrNotPlaceable):
		return "Place on an empty square you own"
	case errors.Is(err, game.ErrNotTargetable):
		return "Missiles can only hit owned squares"
	case errors.Is(err, game.ErrIllegalMove):
		return "Illegal move"
	default:
		return "Not allowed"
	}
}
