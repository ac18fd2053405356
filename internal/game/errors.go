package game

import "errors"

// Rejections. Every failed operation returns one of these (possibly wrapped)
// and leaves the game untouched.
var (
	ErrOutOfBounds       = errors.New("square out of bounds")
	ErrNoPiece           = errors.New("no piece at source square")
	ErrNotYourPiece      = errors.New("piece belongs to the inactive side")
	ErrIllegalMove       = errors.New("illegal destination")
	ErrShopActive        = errors.New("moves are disabled while a purchase is pending")
	ErrShopPending       = errors.New("a purchase is already pending")
	ErrNoShopAction      = errors.New("no purchase pending")
	ErrNotForSale        = errors.New("piece is not for sale")
	ErrInsufficientFunds = errors.New("insufficient coins")
	ErrNotPlaceable      = errors.New("square must be empty and owned by the active side")
	ErrNotTargetable     = errors.New("square is not owned by either side")
	ErrInvalidState      = errors.New("invalid game state")
)
