package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/position"
)

func TestGeneratePseudoMovesStartingPositionCount(t *testing.T) {
	p := position.New()
	moves := position.GeneratePseudoMoves(p)
	assert.Len(t, moves, 20)
}

func TestGeneratePseudoMovesIncludesCastle(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.E1, board.King, board.White)
	b.SetPiece(board.H1, board.Rook, board.White)
	b.SetPiece(board.A1, board.Rook, board.White)
	b.SetPiece(board.E8, board.King, board.Black)
	b.SetCastle(board.White, board.BothCastle)
	b.SetSide(board.White)
	p, err := b.Build()
	require.NoError(t, err)

	moves := position.GeneratePseudoMoves(p)

	found := map[board.Square]bool{}
	for _, m := range moves {
		if m.Kind() == position.Castle && m.From() == board.E1 {
			found[m.To()] = true
		}
	}
	assert.True(t, found[board.G1])
	assert.True(t, found[board.C1])
}

func TestGeneratePseudoMovesIncludesEnPassant(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.A1, board.King, board.White)
	b.SetPiece(board.H8, board.King, board.Black)
	b.SetPiece(board.E5, board.Pawn, board.White)
	b.SetPiece(board.D5, board.Pawn, board.Black)
	b.SetEnPassant(board.D6)
	b.SetSide(board.White)
	p, err := b.Build()
	require.NoError(t, err)

	moves := position.GeneratePseudoMoves(p)

	foundEP := false
	for _, m := range moves {
		if m.Kind() == position.EnPassant {
			assert.Equal(t, board.E5, m.From())
			assert.Equal(t, board.D6, m.To())
			foundEP = true
		}
	}
	assert.True(t, foundEP)
}

func TestGeneratePseudoMovesIncludesPromotions(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.A1, board.King, board.White)
	b.SetPiece(board.H8, board.King, board.Black)
	b.SetPiece(board.A7, board.Pawn, board.White)
	b.SetSide(board.White)
	p, err := b.Build()
	require.NoError(t, err)

	moves := position.GeneratePseudoMoves(p)

	promoCount := 0
	for _, m := range moves {
		if m.From() == board.A7 && m.Kind() == position.Promotion {
			promoCount++
		}
	}
	assert.Equal(t, 4, promoCount)
}
