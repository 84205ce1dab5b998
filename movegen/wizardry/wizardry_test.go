package wizardry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/movegen/naive"
	"github.com/ambroisie/chesscore/movegen/wizardry"
)

func TestBishopTableAgreesWithNaive(t *testing.T) {
	table := wizardry.BuildBishopTable()
	require.NotNil(t, table)

	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		for _, occ := range sampleOccupancies(sq) {
			assert.Equal(t, naive.Bishop(sq, occ), table.Attacks(sq, occ), "square %v occupancy %#x", sq, occ)
		}
	}
}

func TestRookTableAgreesWithNaive(t *testing.T) {
	table := wizardry.BuildRookTable()
	require.NotNil(t, table)

	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		for _, occ := range sampleOccupancies(sq) {
			assert.Equal(t, naive.Rook(sq, occ), table.Attacks(sq, occ), "square %v occupancy %#x", sq, occ)
		}
	}
}

func TestDeterministicAcrossBuilds(t *testing.T) {
	a := wizardry.BuildBishopTable()
	b := wizardry.BuildBishopTable()

	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		for _, occ := range sampleOccupancies(sq) {
			assert.Equal(t, a.Attacks(sq, occ), b.Attacks(sq, occ))
		}
	}
}

// sampleOccupancies returns a handful of representative occupancy patterns
// to query a square's table entry against: empty, full board, and a few
// arbitrary blockers.
func sampleOccupancies(sq board.Square) []board.Bitboard {
	return []board.Bitboard{
		board.Empty,
		board.All,
		board.Ranks[board.RankFourth.Index()],
		board.Files[board.FileD.Index()],
		sq.Bitboard() ^ board.All,
	}
}
