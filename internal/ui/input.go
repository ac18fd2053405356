package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hailam/occupychess/internal/board"
)

// Command is a keyboard shortcut.
type Command int

const (
	CmdNone Command = iota
	CmdCancel
	CmdBuyPawn
	CmdBuyKnight
	CmdBuyBishop
	CmdBuyRook
	CmdBuyQueen
	CmdMissile
	CmdNewGame
	CmdToggleHolds
	CmdToggleSound
	CmdSaveGames
)

// shortcuts maps keys to commands, checked in order.
var shortcuts = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyEscape, CmdCancel},
	{ebiten.Key1, CmdBuyPawn},
	{ebiten.Key2, CmdBuyKnight},
	{ebiten.Key3, CmdBuyBishop},
	{ebiten.Key4, CmdBuyRook},
	{ebiten.Key5, CmdBuyQueen},
	{ebiten.KeyM, CmdMissile},
	{ebiten.KeyN, CmdNewGame},
	{ebiten.KeyH, CmdToggleHolds},
	{ebiten.KeyS, CmdToggleSound},
	{ebiten.KeyG, CmdSaveGames},
}

// BuyPiece returns the shop piece bought by c, if c is a purchase command.
func (c Command) BuyPiece() (board.PieceType, bool) {
	switch c {
	case CmdBuyPawn:
		return board.Pawn, true
	case CmdBuyKnight:
		return board.Knight, true
	case CmdBuyBishop:
		return board.Bishop, true
	case CmdBuyRook:
		return board.Rook, true
	case CmdBuyQueen:
		return board.Queen, true
	}
	return board.NoPieceType, false
}

// InputHandler tracks mouse and keyboard state for one frame.
type InputHandler struct {
	mouseX, mouseY  int
	leftPressed     bool
	leftJustPressed bool
	command         Command
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update samples input. Call once per frame.
func (ih *InputHandler) Update() {
	ih.mouseX, ih.mouseY = ebiten.CursorPosition()
	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	ih.command = CmdNone
	for _, s := range shortcuts {
		if inpututil.IsKeyJustPressed(s.key) {
			ih.command = s.cmd
			break
		}
	}
}

// MousePosition returns the cursor in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left button went down this frame.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftPressed returns true while the left button is held.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// Command returns the shortcut pressed this frame, or CmdNone.
func (ih *InputHandler) Command() Command {
	return ih.command
}

// ClickedIn returns true if the left button went down inside r.
func (ih *InputHandler) ClickedIn(r rect) bool {
	return ih.leftJustPressed && r.contains(ih.mouseX, ih.mouseY)
}

// Hovering returns true if the cursor is inside r.
func (ih *InputHandler) Hovering(r rect) bool {
	return r.contains(ih.mouseX, ih.mouseY)
}

// ClearCommand consumes the frame's shortcut so later handlers ignore it.
func (ih *InputHandler) ClearCommand() {
	ih.command = CmdNone
}

// IsEnterJustPressed returns true if either Enter key went down this frame.
func IsEnterJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}
