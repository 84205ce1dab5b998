package board

import "math/bits"

// Bitboard is a 64-bit set of squares under the layout index(file,rank) =
// file*8 + rank. Bit i is set iff square i is occupied.
type Bitboard uint64

const (
	Empty Bitboard = 0
	All   Bitboard = ^Bitboard(0)
)

// Ranks holds the eight single-rank bitboards, indexed by Rank.Index().
var Ranks = [NumRanks]Bitboard{
	0x0101010101010101 << 0,
	0x0101010101010101 << 1,
	0x0101010101010101 << 2,
	0x0101010101010101 << 3,
	0x0101010101010101 << 4,
	0x0101010101010101 << 5,
	0x0101010101010101 << 6,
	0x0101010101010101 << 7,
}

// Files holds the eight single-file bitboards, indexed by File.Index().
var Files = [NumFiles]Bitboard{
	0x00000000000000FF << (8 * 0),
	0x00000000000000FF << (8 * 1),
	0x00000000000000FF << (8 * 2),
	0x00000000000000FF << (8 * 3),
	0x00000000000000FF << (8 * 4),
	0x00000000000000FF << (8 * 5),
	0x00000000000000FF << (8 * 6),
	0x00000000000000FF << (8 * 7),
}

const (
	// Diagonal is the A1-H8 diagonal.
	Diagonal Bitboard = 0x8040201008040201
	// AntiDiagonal is the A8-H1 diagonal.
	AntiDiagonal Bitboard = 0x0102040810204080
	// LightSquares is the set of light squares, with A1 dark.
	LightSquares Bitboard = 0x55AA55AA55AA55AA
	// DarkSquares is the complement of LightSquares.
	DarkSquares Bitboard = 0xAA55AA55AA55AA55
)

// Count returns the number of set squares.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// IsEmpty reports whether the set has no squares.
func (b Bitboard) IsEmpty() bool {
	return b == Empty
}

// HasMoreThanOne reports whether the set contains two or more squares.
func (b Bitboard) HasMoreThanOne() bool {
	return b&(b-1) != 0
}

// Sub returns b with every square of other removed (set difference).
func (b Bitboard) Sub(other Bitboard) Bitboard {
	return b &^ other
}

// Square converts a singleton set to its Square, failing if b is empty or
// holds more than one square.
func (b Bitboard) Square() (Square, error) {
	switch b.Count() {
	case 0:
		return 0, IntoSquareError{EmptyBoard}
	case 1:
		return Square(bits.TrailingZeros64(uint64(b))), nil
	default:
		return 0, IntoSquareError{TooManySquares}
	}
}

// IntoSquareErrorKind distinguishes the ways a Bitboard can fail to convert
// into a singleton Square.
type IntoSquareErrorKind int

const (
	EmptyBoard IntoSquareErrorKind = iota
	TooManySquares
)

// IntoSquareError reports why Bitboard.Square failed.
type IntoSquareError struct {
	Kind IntoSquareErrorKind
}

func (e IntoSquareError) Error() string {
	switch e.Kind {
	case EmptyBoard:
		return "board: empty bitboard has no square"
	case TooManySquares:
		return "board: bitboard has more than one square"
	default:
		return "board: invalid IntoSquareError"
	}
}

// Squares returns an iterator over the set's squares in ascending index
// order, each yielded by peeling the lowest set bit.
func (b Bitboard) Squares() *SquareIter {
	return &SquareIter{remaining: b}
}

// SquareIter walks a Bitboard's squares in ascending order. It is exact-sized
// (Len reports the remaining count) and fused (once exhausted it stays
// exhausted).
type SquareIter struct {
	remaining Bitboard
}

// Next returns the next square in ascending order, or ok=false once the set
// is exhausted.
func (it *SquareIter) Next() (sq Square, ok bool) {
	if it.remaining == 0 {
		return 0, false
	}
	sq = Square(bits.TrailingZeros64(uint64(it.remaining)))
	it.remaining &= it.remaining - 1
	return sq, true
}

// Len reports the number of squares left to yield.
func (it *SquareIter) Len() int {
	return it.remaining.Count()
}

// Subsets returns an iterator over every subset of the mask b, in
// Carry-Rippler order. It yields exactly 2^count(b) distinct subsets,
// starting with the empty subset; for b == Empty it yields {Empty} once.
func (b Bitboard) Subsets() *SubsetIter {
	return &SubsetIter{mask: b, started: false, done: false}
}

// SubsetIter walks the power set of a mask using the recurrence
// next = (prev - mask) & mask, terminating when the empty subset recurs.
type SubsetIter struct {
	mask    Bitboard
	current Bitboard
	started bool
	done    bool
}

// Next returns the next subset, or ok=false once every subset has been
// produced.
func (it *SubsetIter) Next() (subset Bitboard, ok bool) {
	if it.done {
		return 0, false
	}
	if !it.started {
		it.started = true
		return it.current, true
	}
	it.current = (it.current - it.mask) & it.mask
	if it.current == 0 {
		it.done = true
		return 0, false
	}
	return it.current, true
}
