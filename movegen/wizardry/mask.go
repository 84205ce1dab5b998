package wizardry

import (
	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/movegen/naive"
)

// edges is the set of all four board-edge squares: the A and H files, and
// the first and eighth ranks.
var edges = board.Files[board.FileA.Index()] | board.Files[board.FileH.Index()] |
	board.Ranks[board.RankFirst.Index()] | board.Ranks[board.RankEighth.Index()]

// bishopRelevanceMask returns the set of squares whose occupancy can change
// the bishop's attack set from sq: every bishop-ray square, excluding all
// four board edges (a blocker standing on the edge cannot hide anything
// behind it, since the ray ends there regardless).
func bishopRelevanceMask(sq board.Square) board.Bitboard {
	return naive.Bishop(sq, board.Empty) &^ edges
}

// rookRelevanceMask returns the set of squares whose occupancy can change
// the rook's attack set from sq: every rook-ray square, excluding board edges
// that sq does not itself lie on (the edge sq lies on still matters, since a
// blocker there is itself a reachable capture square).
func rookRelevanceMask(sq board.Square) board.Bitboard {
	mask := naive.Rook(sq, board.Empty)

	if sq.File() != board.FileA {
		mask &^= board.Files[board.FileA.Index()]
	}
	if sq.File() != board.FileH {
		mask &^= board.Files[board.FileH.Index()]
	}
	if sq.Rank() != board.RankFirst {
		mask &^= board.Ranks[board.RankFirst.Index()]
	}
	if sq.Rank() != board.RankEighth {
		mask &^= board.Ranks[board.RankEighth.Index()]
	}

	return mask
}
