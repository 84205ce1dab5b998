package position

import (
	"sync"

	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/internal/detrand"
)

// zobristSeed fixes the key-generation stream so the whole key table (and
// therefore every hash computed from it) is reproducible across builds.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

// keys holds every Zobrist key used to hash a Position incrementally.
type keys struct {
	blackToMove uint64
	piece       [board.NumColors][board.NumPieces][board.NumSquares]uint64
	// castling is keyed by the full (white rights, black rights) pair, not
	// by each side independently, so a rights change is a single
	// table[old] ^ table[new] toggle regardless of which side changed.
	castling  [board.NumCastleRights][board.NumCastleRights]uint64
	enPassant [board.NumFiles]uint64
}

var (
	zobristOnce sync.Once
	zobristKeys keys
)

func ensureZobristKeys() {
	zobristOnce.Do(func() {
		r := detrand.New(zobristSeed)

		zobristKeys.blackToMove = r.Uint64()

		for c := 0; c < board.NumColors; c++ {
			for p := 0; p < board.NumPieces; p++ {
				for sq := 0; sq < board.NumSquares; sq++ {
					zobristKeys.piece[c][p][sq] = r.Uint64()
				}
			}
		}

		for w := 0; w < board.NumCastleRights; w++ {
			for b := 0; b < board.NumCastleRights; b++ {
				zobristKeys.castling[w][b] = r.Uint64()
			}
		}

		for f := 0; f < board.NumFiles; f++ {
			zobristKeys.enPassant[f] = r.Uint64()
		}
	})
}

// Hash is a 64-bit Zobrist hash of a Position.
type Hash uint64

// hashFromScratch recomputes p's hash from its current field values,
// independent of any incremental bookkeeping. Used both to seed a freshly
// built position and to cross-check incremental updates in tests.
func hashFromScratch(p *Position) Hash {
	ensureZobristKeys()

	var h uint64
	for c := 0; c < board.NumColors; c++ {
		for pc := 0; pc < board.NumPieces; pc++ {
			bb := p.piece[pc] & p.color[c]
			it := bb.Squares()
			for {
				sq, ok := it.Next()
				if !ok {
					break
				}
				h ^= zobristKeys.piece[c][pc][sq.Index()]
			}
		}
	}

	h ^= zobristKeys.castling[p.castle[board.White].Index()][p.castle[board.Black].Index()]

	if p.hasEnPassant {
		h ^= zobristKeys.enPassant[p.enPassant.File().Index()]
	}

	if p.side == board.Black {
		h ^= zobristKeys.blackToMove
	}

	return Hash(h)
}

func (p *Position) togglePiece(color board.Color, piece board.Piece, sq board.Square) {
	p.hash ^= Hash(zobristKeys.piece[color.Index()][piece.Index()][sq.Index()])
}

func (p *Position) toggleCastling(oldWhite, oldBlack, newWhite, newBlack board.CastleRights) {
	p.hash ^= Hash(zobristKeys.castling[oldWhite.Index()][oldBlack.Index()])
	p.hash ^= Hash(zobristKeys.castling[newWhite.Index()][newBlack.Index()])
}

func (p *Position) toggleEnPassant(sq board.Square) {
	p.hash ^= Hash(zobristKeys.enPassant[sq.File().Index()])
}

func (p *Position) toggleSideToMove() {
	p.hash ^= Hash(zobristKeys.blackToMove)
}
