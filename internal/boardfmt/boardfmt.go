// Package boardfmt renders a position as an 8x8 ASCII diagram. It exists
// only to make test failures legible; nothing in the core depends on it.
package boardfmt

import (
	"strings"

	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/position"
)

var symbols = map[board.Piece][2]byte{
	board.King:   {'K', 'k'},
	board.Queen:  {'Q', 'q'},
	board.Rook:   {'R', 'r'},
	board.Bishop: {'B', 'b'},
	board.Knight: {'N', 'n'},
	board.Pawn:   {'P', 'p'},
}

// Render returns an 8x8 diagram of p, rank 8 first, file A first.
func Render(p *position.Position) string {
	var b strings.Builder
	b.Grow(72)

	for r := board.RankEighth; ; r-- {
		for f := board.FileA; f <= board.FileH; f++ {
			sq := board.NewSquare(f, r)
			piece, color, ok := p.PieceColorAt(sq)
			if !ok {
				b.WriteByte('.')
				continue
			}
			glyph := symbols[piece]
			if color == board.White {
				b.WriteByte(glyph[0])
			} else {
				b.WriteByte(glyph[1])
			}
		}
		b.WriteByte('\n')
		if r == board.RankFirst {
			break
		}
	}

	return b.String()
}
