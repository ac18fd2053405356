package game

import (
	"fmt"

	"github.com/hailam/occupychess/internal/board"
)

// ShopKind is the shop sub-state.
type ShopKind uint8

const (
	ShopInactive ShopKind = iota
	ShopPlacement
	ShopMissile
)

// String returns the shop kind name.
func (k ShopKind) String() string {
	switch k {
	case ShopInactive:
		return "inactive"
	case ShopPlacement:
		return "placement"
	case ShopMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// ShopMode is the modal purchase state. Piece is meaningful only for
// ShopPlacement.
type ShopMode struct {
	Kind  ShopKind        `json:"kind"`
	Piece board.PieceType `json:"piece"`
}

// Active returns true while a purchase or missile strike is pending.
func (m ShopMode) Active() bool {
	return m.Kind != ShopInactive
}

// Price returns the amount a commit in this mode will deduct.
func (m ShopMode) Price() int {
	switch m.Kind {
	case ShopPlacement:
		return Prices[m.Piece]
	case ShopMissile:
		return MissilePrice
	default:
		return 0
	}
}

// String describes the mode.
func (m ShopMode) String() string {
	switch m.Kind {
	case ShopPlacement:
		return fmt.Sprintf("placing %v", m.Piece)
	case ShopMissile:
		return "targeting missile"
	default:
		return "inactive"
	}
}

// CanAfford returns true if the active side holds at least price coins.
func (g *Game) CanAfford(price int) bool {
	return g.coins[g.turn] >= price
}

// RequestPurchase enters placement mode for pt. Coins are only deducted when
// the piece is placed.
func (g *Game) RequestPurchase(pt board.PieceType) error {
	if g.shop.Active() {
		return ErrShopPending
	}
	price, err := PiecePrice(pt)
	if err != nil {
		return err
	}
	if !g.CanAfford(price) {
		return fmt.Errorf("%v costs %d, %v has %d: %w", pt, price, g.turn, g.coins[g.turn], ErrInsufficientFunds)
	}
	g.shop = ShopMode{Kind: ShopPlacement, Piece: pt}
	g.clearSelection()
	return nil
}

// RequestMissile enters missile targeting mode.
func (g *Game) RequestMissile() error {
	if g.shop.Active() {
		return ErrShopPending
	}
	if !g.CanAfford(MissilePrice) {
		return fmt.Errorf("missile costs %d, %v has %d: %w", MissilePrice, g.turn, g.coins[g.turn], ErrInsufficientFunds)
	}
	g.shop = ShopMode{Kind: ShopMissile}
	g.clearSelection()
	return nil
}

// CancelShop abandons any pending purchase. The turn does not pass.
func (g *Game) CancelShop() {
	g.shop = ShopMode{}
}

// IsPlaceable returns true if sq is empty and owned by the active side.
func (g *Game) IsPlaceable(sq board.Square) bool {
	return g.board.IsEmpty(sq) && g.grid.Cell(sq).Owner == g.turn
}

// IsTargetable returns true if sq is owned by either side.
func (g *Game) IsTargetable(sq board.Square) bool {
	return sq.IsValid() && g.grid.Cell(sq).Owned()
}

// PlaceableSquares returns every square a bought piece could go on.
func (g *Game) PlaceableSquares() board.SquareSet {
	var s board.SquareSet
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		if g.IsPlaceable(sq) {
			s = s.Add(sq)
		}
	}
	return s
}

// TargetableSquares returns every square a missile could hit.
func (g *Game) TargetableSquares() board.SquareSet {
	return g.grid.OwnedBy(board.White) | g.grid.OwnedBy(board.Black)
}

// CommitShopAction completes the pending purchase on sq: placing the bought
// piece, or firing the missile. An ineligible square is rejected and the
// mode stays pending.
func (g *Game) CommitShopAction(sq board.Square) error {
	if !sq.IsValid() {
		return ErrOutOfBounds
	}
	switch g.shop.Kind {
	case ShopPlacement:
		return g.commitPlacement(sq)
	case ShopMissile:
		return g.commitMissile(sq)
	default:
		return ErrNoShopAction
	}
}

func (g *Game) commitPlacement(sq board.Square) error {
	if !g.IsPlaceable(sq) {
		return fmt.Errorf("place on %v: %w", sq, ErrNotPlaceable)
	}
	pt := g.shop.Piece
	price, err := PiecePrice(pt)
	if err != nil {
		return err
	}
	if !g.CanAfford(price) {
		return fmt.Errorf("place on %v: %w", sq, ErrInsufficientFunds)
	}

	side := g.turn
	g.coins[side] -= price
	p := board.NewPiece(pt, side)
	g.board.SetPiece(sq, p)
	g.shop = ShopMode{}

	g.completeTurn(Event{
		Kind:     EventPlace,
		Side:     side,
		From:     board.NoSquare,
		To:       sq,
		Piece:    p,
		Captured: board.NoPiece,
		Cost:     price,
	})
	return nil
}

func (g *Game) commitMissile(sq board.Square) error {
	if !g.IsTargetable(sq) {
		return fmt.Errorf("missile at %v: %w", sq, ErrNotTargetable)
	}
	if !g.CanAfford(MissilePrice) {
		return fmt.Errorf("missile at %v: %w", sq, ErrInsufficientFunds)
	}

	side := g.turn
	g.coins[side] -= MissilePrice
	g.grid[sq] = board.EmptyCell()
	destroyed := g.board.RemovePiece(sq)
	g.shop = ShopMode{}

	g.completeTurn(Event{
		Kind:     EventMissile,
		Side:     side,
		From:     board.NoSquare,
		To:       sq,
		Piece:    board.NoPiece,
		Captured: destroyed,
		Cost:     MissilePrice,
	})
	return nil
}
