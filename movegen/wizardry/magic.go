package wizardry

import (
	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/internal/detrand"
	"github.com/ambroisie/chesscore/movegen/naive"
)

// Magic is a single square's magic-bitboard entry: the multiplier, the
// offset into the table's shared moves slice, the relevance mask, and the
// shift that turns a masked occupancy into a table index.
type Magic struct {
	Number uint64
	Offset uint32
	Mask   board.Bitboard
	Shift  uint
}

// index returns this entry's position in the shared moves slice for the
// given (already-masked) occupancy.
func (m Magic) index(occupancy board.Bitboard) uint64 {
	return uint64(occupancy) * m.Number >> m.Shift
}

// Table is a complete magic-bitboard lookup table for one slider kind: one
// Magic entry per square, sharing a single backing slice of attack sets.
type Table struct {
	entries [board.NumSquares]Magic
	moves   []board.Bitboard
}

// Attacks returns the slider's attack set from sq given the full board
// occupancy.
func (t *Table) Attacks(sq board.Square, occupancy board.Bitboard) board.Bitboard {
	m := t.entries[sq.Index()]
	return t.moves[int(m.Offset)+int(m.index(occupancy&m.Mask))]
}

// slideFunc computes the reference attack set for sq given one specific
// occupancy subset, via the naive slide-with-blockers.
type slideFunc func(sq board.Square, blockers board.Bitboard) board.Bitboard

// maskFunc computes a square's relevance mask.
type maskFunc func(sq board.Square) board.Bitboard

// maxMagicAttempts bounds the search per square. The deterministic RNG in
// practice succeeds within a few hundred tries for every chess square; this
// is a backstop against an infinite loop, not a tuned budget.
const maxMagicAttempts = 1_000_000

// buildTable runs the magic search for every square of one slider kind and
// assembles the resulting Table. seed must be non-zero; the same seed always
// produces the same table, which is the whole point.
func buildTable(mask maskFunc, slide slideFunc, seed uint64) *Table {
	t := &Table{}
	r := detrand.New(seed)

	for i := 0; i < board.NumSquares; i++ {
		sq := board.Square(i)
		relevance := mask(sq)
		k := relevance.Count()
		size := 1 << k

		occupancies := make([]board.Bitboard, 0, size)
		references := make([]board.Bitboard, 0, size)
		it := relevance.Subsets()
		for {
			occ, ok := it.Next()
			if !ok {
				break
			}
			occupancies = append(occupancies, occ)
			references = append(references, slide(sq, occ))
		}

		local := make([]board.Bitboard, size)
		filled := make([]bool, size)
		shift := uint(64 - k)

		var number uint64
		found := false
		for attempt := 0; attempt < maxMagicAttempts && !found; attempt++ {
			number = r.Sparse()

			for i := range filled {
				filled[i] = false
			}

			ok := true
			for j, occ := range occupancies {
				idx := uint64(occ) * number >> shift
				ref := references[j]
				if filled[idx] {
					if local[idx] != ref {
						ok = false
						break
					}
				} else {
					filled[idx] = true
					local[idx] = ref
				}
			}

			if ok {
				found = true
			}
		}
		if !found {
			panic("wizardry: magic search exhausted attempts")
		}

		offset := len(t.moves)
		t.moves = append(t.moves, local...)
		t.entries[i] = Magic{Number: number, Offset: uint32(offset), Mask: relevance, Shift: shift}
	}

	return t
}

// Bishop-specific and rook-specific seeds. Any non-zero constants work; these
// are fixed so the search (and therefore every downstream table) is
// reproducible across runs and across builds.
const (
	bishopSeed uint64 = 0x1234567890ABCDEF
	rookSeed   uint64 = 0xFEDCBA0987654321
)

// BuildBishopTable runs the deterministic magic search for the bishop.
func BuildBishopTable() *Table {
	return buildTable(bishopRelevanceMask, naive.Bishop, bishopSeed)
}

// BuildRookTable runs the deterministic magic search for the rook.
func BuildRookTable() *Table {
	return buildTable(rookRelevanceMask, naive.Rook, rookSeed)
}
