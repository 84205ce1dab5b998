package position

import "github.com/ambroisie/chesscore/board"

// Move packs a chess move into a 16-bit word:
//   - 0-5:   destination square index.
//   - 6-11:  origin square index.
//   - 12-13: promotion piece, meaningful only when Kind() == Promotion.
//   - 14-15: move kind.
type Move uint16

// Kind distinguishes the move shapes that need special handling beyond the
// plain start/destination inference of PlayMove: a normal move never
// touches anything but the two named squares, while castling also relocates
// a rook and en-passant also removes a pawn that isn't on the destination
// square.
type Kind int

const (
	Normal Kind = iota
	Promotion
	Castle
	EnPassant
)

// PromotionPiece identifies the piece a pawn promotes to. Zero value
// (Knight) is never implicitly meaningful; callers must check Kind() ==
// Promotion before reading it.
type PromotionPiece int

const (
	PromoteKnight PromotionPiece = iota
	PromoteBishop
	PromoteRook
	PromoteQueen
)

// Piece returns the board.Piece this promotion selects.
func (p PromotionPiece) Piece() board.Piece {
	switch p {
	case PromoteKnight:
		return board.Knight
	case PromoteBishop:
		return board.Bishop
	case PromoteRook:
		return board.Rook
	case PromoteQueen:
		return board.Queen
	default:
		panic("position: invalid PromotionPiece")
	}
}

// NewMove builds a plain move of the given kind (Normal, Castle, or
// EnPassant — never Promotion, see NewPromotion).
func NewMove(from, to board.Square, kind Kind) Move {
	if kind == Promotion {
		panic("position: use NewPromotion for promoting moves")
	}
	return Move(to.Index()) | Move(from.Index())<<6 | Move(kind)<<14
}

// NewPromotion builds a promoting move.
func NewPromotion(from, to board.Square, promo PromotionPiece) Move {
	return Move(to.Index()) | Move(from.Index())<<6 | Move(promo)<<12 | Move(Promotion)<<14
}

// To returns the move's destination square.
func (m Move) To() board.Square {
	return board.Square(m & 0x3F)
}

// From returns the move's origin square.
func (m Move) From() board.Square {
	return board.Square((m >> 6) & 0x3F)
}

// Promo returns the promotion piece. Only meaningful when Kind() ==
// Promotion.
func (m Move) Promo() PromotionPiece {
	return PromotionPiece((m >> 12) & 0x3)
}

// Kind returns the move's shape.
func (m Move) Kind() Kind {
	return Kind((m >> 14) & 0x3)
}
