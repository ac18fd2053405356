package game

import (
	"fmt"

	"github.com/hailam/occupychess/internal/board"
)

// MissilePrice is the cost of one missile strike.
const MissilePrice = 4

// Prices lists the purchasable piece kinds. Kings are not for sale.
var Prices = map[board.PieceType]int{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
}

// ShopPieces is the purchasable kinds in shop display order.
var ShopPieces = []board.PieceType{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen}

// PiecePrice returns the price of pt.
func PiecePrice(pt board.PieceType) (int, error) {
	price, ok := Prices[pt]
	if !ok {
		return 0, fmt.Errorf("%v: %w", pt, ErrNotForSale)
	}
	return price, nil
}
