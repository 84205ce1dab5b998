package board

// Square indexes one of the 64 board squares, A1=0, A2=1, ..., H8=63
// (index = file*8 + rank).
type Square int

const NumSquares = 64

// Named squares, used throughout the package and its tests.
const (
	A1 Square = iota
	A2
	A3
	A4
	A5
	A6
	A7
	A8
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	C8
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	E1
	E2
	E3
	E4
	E5
	E6
	E7
	E8
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	G1
	G2
	G3
	G4
	G5
	G6
	G7
	G8
	H1
	H2
	H3
	H4
	H5
	H6
	H7
	H8
)

// NewSquare builds the square at the given file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(f.Index()*NumRanks + r.Index())
}

// SquareFromIndex converts a 0..63 index to a Square, panicking outside that
// range.
func SquareFromIndex(i int) Square {
	if i < 0 || i >= NumSquares {
		panic("board: square index out of range")
	}
	return Square(i)
}

// Index returns the square's 0..63 index.
func (s Square) Index() int {
	if s < A1 || s > H8 {
		panic("board: invalid Square")
	}
	return int(s)
}

// File returns the square's file.
func (s Square) File() File {
	return FileFromIndex(s.Index() / NumRanks)
}

// Rank returns the square's rank.
func (s Square) Rank() Rank {
	return RankFromIndex(s.Index() % NumRanks)
}

// Bitboard returns the singleton set containing only this square.
func (s Square) Bitboard() Bitboard {
	return Bitboard(1) << uint(s.Index())
}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	return string(rune('a'+s.File().Index())) + string(rune('1'+s.Rank().Index()))
}
