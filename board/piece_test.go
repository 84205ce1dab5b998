package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ambroisie/chesscore/board"
)

func TestPieceFromIndexRoundTrip(t *testing.T) {
	for i := 0; i < board.NumPieces; i++ {
		p := board.PieceFromIndex(i)
		assert.Equal(t, i, p.Index())
	}
}

func TestPieceFromIndexPanics(t *testing.T) {
	assert.Panics(t, func() { board.PieceFromIndex(-1) })
	assert.Panics(t, func() { board.PieceFromIndex(board.NumPieces) })
}
