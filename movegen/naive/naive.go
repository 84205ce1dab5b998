// Package naive implements reference move generators built directly out of
// the board package's direction shifts, with no lookup tables. They exist to
// be obviously correct and are used both directly by the oracle (knights,
// kings, pawns never need a magic table) and as the oracle that the wizardry
// package's magic search checks its own output against.
package naive

import "github.com/ambroisie/chesscore/board"

// Knight returns the knight's attack set from sq.
func Knight(sq board.Square) board.Bitboard {
	var attacks board.Bitboard
	for _, d := range board.KnightDirections {
		attacks |= board.MoveBoard(sq.Bitboard(), d)
	}
	return attacks
}

// King returns the king's quiet-move attack set from sq, ignoring castling.
func King(sq board.Square) board.Bitboard {
	var attacks board.Bitboard
	for _, d := range board.RookDirections {
		attacks |= board.MoveBoard(sq.Bitboard(), d)
	}
	for _, d := range board.BishopDirections {
		attacks |= board.MoveBoard(sq.Bitboard(), d)
	}
	return attacks
}

// KingSideCastleBlockers returns the F and G file squares on color's back
// rank, which must be empty (and, for legality, unattacked) for king-side
// castling.
func KingSideCastleBlockers(color board.Color) board.Bitboard {
	rank := color.FirstRank().Bitboard()
	return rank & (board.Files[board.FileF.Index()] | board.Files[board.FileG.Index()])
}

// QueenSideCastleBlockers returns the B, C and D file squares on color's back
// rank, which must be empty for queen-side castling (only C and D need be
// unattacked; that check is made by the castling move generation in the
// position package, not here).
func QueenSideCastleBlockers(color board.Color) board.Bitboard {
	rank := color.FirstRank().Bitboard()
	return rank & (board.Files[board.FileB.Index()] | board.Files[board.FileC.Index()] | board.Files[board.FileD.Index()])
}

// Bishop returns the bishop's attack set from sq given the full board
// occupancy, sliding through empty squares and stopping on (but including)
// the first blocker in each of the four diagonal directions.
func Bishop(sq board.Square, blockers board.Bitboard) board.Bitboard {
	var attacks board.Bitboard
	for _, d := range board.BishopDirections {
		attacks |= board.SlideBoardWithBlockers(sq.Bitboard(), d, blockers)
	}
	return attacks
}

// Rook returns the rook's attack set from sq given the full board occupancy.
func Rook(sq board.Square, blockers board.Bitboard) board.Bitboard {
	var attacks board.Bitboard
	for _, d := range board.RookDirections {
		attacks |= board.SlideBoardWithBlockers(sq.Bitboard(), d, blockers)
	}
	return attacks
}

// Queen returns the union of Bishop and Rook attacks from sq.
func Queen(sq board.Square, blockers board.Bitboard) board.Bitboard {
	return Bishop(sq, blockers) | Rook(sq, blockers)
}

// PawnQuietMoves returns the forward non-capturing squares available to a
// pawn of the given color on sq, given the full board occupancy. Pawns on
// either back rank (which cannot legally occur as a side to move) yield the
// empty set.
func PawnQuietMoves(color board.Color, sq board.Square, blockers board.Bitboard) board.Bitboard {
	if sq.Rank() == board.RankFirst || sq.Rank() == board.RankEighth {
		return board.Empty
	}

	oneStep := board.MoveBoard(sq.Bitboard(), color.ForwardDirection())
	if oneStep == board.Empty || oneStep&blockers != board.Empty {
		return board.Empty
	}

	moves := oneStep
	if sq.Rank() == color.SecondRank() {
		twoStep := board.MoveBoard(oneStep, color.ForwardDirection())
		if twoStep != board.Empty && twoStep&blockers == board.Empty {
			moves |= twoStep
		}
	}
	return moves
}

// PawnAttacks returns the two diagonal forward capture squares available to
// a pawn of the given color on sq, independent of board occupancy.
func PawnAttacks(color board.Color, sq board.Square) board.Bitboard {
	var left, right board.Direction
	if color == board.White {
		left, right = board.NorthWest, board.NorthEast
	} else {
		left, right = board.SouthWest, board.SouthEast
	}
	return board.MoveBoard(sq.Bitboard(), left) | board.MoveBoard(sq.Bitboard(), right)
}

// PawnMoves returns the union of PawnQuietMoves and PawnAttacks.
func PawnMoves(color board.Color, sq board.Square, blockers board.Bitboard) board.Bitboard {
	return PawnQuietMoves(color, sq, blockers) | PawnAttacks(color, sq)
}

// EnPassantOrigin returns target's west and east neighbors on its own rank.
// Given the square of a pawn that has just double-stepped, these are the
// squares from which an enemy pawn can capture it en passant.
func EnPassantOrigin(target board.Square) board.Bitboard {
	return board.MoveBoard(target.Bitboard(), board.West) | board.MoveBoard(target.Bitboard(), board.East)
}
