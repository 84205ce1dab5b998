// Package movegen is the public move oracle: pure functions from a square
// (and, for sliders and pawns, an occupancy) to an attack or move bitboard.
// Knight, king and pawn tables are small enough to precompute outright; the
// slider tables are the wizardry package's magic-bitboard search, both built
// lazily and exactly once on first use.
package movegen

import (
	"sync"

	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/movegen/naive"
	"github.com/ambroisie/chesscore/movegen/wizardry"
)

var (
	once sync.Once

	knightTable [board.NumSquares]board.Bitboard
	kingTable   [board.NumSquares]board.Bitboard
	pawnAttacks [board.NumColors][board.NumSquares]board.Bitboard

	bishopTable *wizardry.Table
	rookTable   *wizardry.Table
)

func ensureTables() {
	once.Do(func() {
		for i := 0; i < board.NumSquares; i++ {
			sq := board.Square(i)
			knightTable[i] = naive.Knight(sq)
			kingTable[i] = naive.King(sq)
			pawnAttacks[board.White.Index()][i] = naive.PawnAttacks(board.White, sq)
			pawnAttacks[board.Black.Index()][i] = naive.PawnAttacks(board.Black, sq)
		}
		bishopTable = wizardry.BuildBishopTable()
		rookTable = wizardry.BuildRookTable()
	})
}

// KnightMoves returns the knight's attack set from sq.
func KnightMoves(sq board.Square) board.Bitboard {
	ensureTables()
	return knightTable[sq.Index()]
}

// KingMoves returns the king's quiet-move attack set from sq.
func KingMoves(sq board.Square) board.Bitboard {
	ensureTables()
	return kingTable[sq.Index()]
}

// KingSideCastleBlockers returns the squares that must be empty on color's
// back rank for king-side castling (the F and G files).
func KingSideCastleBlockers(color board.Color) board.Bitboard {
	return naive.KingSideCastleBlockers(color)
}

// QueenSideCastleBlockers returns the squares that must be empty on color's
// back rank for queen-side castling (the B, C and D files).
func QueenSideCastleBlockers(color board.Color) board.Bitboard {
	return naive.QueenSideCastleBlockers(color)
}

// BishopMoves returns the bishop's attack set from sq given the full board
// occupancy, via the magic-bitboard lookup table.
func BishopMoves(sq board.Square, blockers board.Bitboard) board.Bitboard {
	ensureTables()
	return bishopTable.Attacks(sq, blockers)
}

// RookMoves returns the rook's attack set from sq given the full board
// occupancy, via the magic-bitboard lookup table.
func RookMoves(sq board.Square, blockers board.Bitboard) board.Bitboard {
	ensureTables()
	return rookTable.Attacks(sq, blockers)
}

// QueenMoves returns the union of BishopMoves and RookMoves.
func QueenMoves(sq board.Square, blockers board.Bitboard) board.Bitboard {
	return BishopMoves(sq, blockers) | RookMoves(sq, blockers)
}

// PawnQuietMoves returns the forward non-capturing squares available to a
// pawn of the given color on sq, given the full board occupancy.
func PawnQuietMoves(color board.Color, sq board.Square, blockers board.Bitboard) board.Bitboard {
	return naive.PawnQuietMoves(color, sq, blockers)
}

// PawnAttacks returns the two diagonal forward capture squares available to
// a pawn of the given color on sq, independent of board occupancy.
func PawnAttacks(color board.Color, sq board.Square) board.Bitboard {
	ensureTables()
	return pawnAttacks[color.Index()][sq.Index()]
}

// PawnMoves returns the union of PawnQuietMoves and PawnAttacks.
func PawnMoves(color board.Color, sq board.Square, blockers board.Bitboard) board.Bitboard {
	return PawnQuietMoves(color, sq, blockers) | PawnAttacks(color, sq)
}
