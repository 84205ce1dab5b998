package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/position"
)

func TestStartingPositionIsValid(t *testing.T) {
	p := position.New()
	assert.True(t, p.IsValid())
	assert.Equal(t, board.White, p.Side())
	assert.Equal(t, uint32(0), p.TotalPlies())
}

// S1: Starting position + E2->E4, C7->C5, G1->F3.
func TestScenarioS1(t *testing.T) {
	p := position.New()

	p.PlayMove(position.NewMove(board.E2, board.E4, position.Normal))
	assert.Equal(t, board.Pawn, mustPiece(t, p, board.E4))
	assertEmpty(t, p, board.E2)
	ep, has := p.EnPassant()
	require.True(t, has)
	assert.Equal(t, board.E3, ep)
	assert.Equal(t, board.Black, p.Side())
	assert.Equal(t, uint32(0), p.HalfMoveClock())
	assert.Equal(t, uint32(1), p.TotalPlies())

	p.PlayMove(position.NewMove(board.C7, board.C5, position.Normal))
	ep, has = p.EnPassant()
	require.True(t, has)
	assert.Equal(t, board.C6, ep)
	assert.Equal(t, board.White, p.Side())
	assert.Equal(t, uint32(2), p.TotalPlies())

	p.PlayMove(position.NewMove(board.G1, board.F3, position.Normal))
	_, has = p.EnPassant()
	assert.False(t, has)
	assert.Equal(t, uint32(1), p.HalfMoveClock())
	assert.Equal(t, uint32(3), p.TotalPlies())
}

// S2: rooks on A1/H1/A8/H8, kings on E1/E8, both castling rights; H1xH8
// strips king-side rights from both sides, leaving only queen-side.
func TestScenarioS2(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.A1, board.Rook, board.White)
	b.SetPiece(board.H1, board.Rook, board.White)
	b.SetPiece(board.E1, board.King, board.White)
	b.SetPiece(board.A8, board.Rook, board.Black)
	b.SetPiece(board.H8, board.Rook, board.Black)
	b.SetPiece(board.E8, board.King, board.Black)
	b.SetCastle(board.White, board.BothCastle)
	b.SetCastle(board.Black, board.BothCastle)
	p, err := b.Build()
	require.NoError(t, err)

	p.PlayMove(position.NewMove(board.H1, board.H8, position.Normal))

	assert.Equal(t, board.QueenSideCastle, p.Castle(board.White))
	assert.Equal(t, board.QueenSideCastle, p.Castle(board.Black))
	assertEmpty(t, p, board.H1)
	assert.Equal(t, board.Rook, mustPiece(t, p, board.H8))
}

// S3: D1xD8 captures the queen; unplay restores identity.
func TestScenarioS3(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.D8, board.Queen, board.Black)
	b.SetPiece(board.H8, board.King, board.Black)
	b.SetPiece(board.A1, board.King, board.White)
	b.SetPiece(board.D1, board.Queen, board.White)
	b.SetSide(board.White)
	p, err := b.Build()
	require.NoError(t, err)

	before := snapshot(p)

	m := position.NewMove(board.D1, board.D8, position.Normal)
	delta := p.PlayMove(m)
	assert.Equal(t, board.Queen, mustPiece(t, p, board.D8))

	p.UnplayMove(m, delta)
	assert.Equal(t, before, snapshot(p))
}

// S4: A7-A8=N places a white knight on A8 and leaves no pawn; unplay
// restores the pawn.
func TestScenarioS4(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.H8, board.King, board.Black)
	b.SetPiece(board.A7, board.Pawn, board.White)
	b.SetPiece(board.A1, board.King, board.White)
	b.SetSide(board.White)
	p, err := b.Build()
	require.NoError(t, err)

	before := snapshot(p)

	m := position.NewPromotion(board.A7, board.A8, position.PromoteKnight)
	delta := p.PlayMove(m)
	assert.Equal(t, board.Knight, mustPiece(t, p, board.A8))
	assertEmpty(t, p, board.A7)

	p.UnplayMove(m, delta)
	assert.Equal(t, before, snapshot(p))
	assert.Equal(t, board.Pawn, mustPiece(t, p, board.A7))
}

// S5: white king E2, white queen E7, black king E8, White to move: the
// black king is in check, which is illegal for the side NOT to move.
func TestScenarioS5(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.E2, board.King, board.White)
	b.SetPiece(board.E7, board.Queen, board.White)
	b.SetPiece(board.E8, board.King, board.Black)
	b.SetSide(board.White)
	_, err := b.Build()

	require.Error(t, err)
	var ve position.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, position.OpponentInCheck, ve.Kind)
}

func TestEnPassantCapture(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.H8, board.King, board.Black)
	b.SetPiece(board.A1, board.King, board.White)
	b.SetPiece(board.E5, board.Pawn, board.White)
	b.SetPiece(board.D5, board.Pawn, board.Black)
	b.SetEnPassant(board.D6)
	b.SetSide(board.White)
	p, err := b.Build()
	require.NoError(t, err)

	before := snapshot(p)

	m := position.NewMove(board.E5, board.D6, position.EnPassant)
	delta := p.PlayMove(m)
	assert.Equal(t, board.Pawn, mustPiece(t, p, board.D6))
	assertEmpty(t, p, board.E5)
	assertEmpty(t, p, board.D5)

	p.UnplayMove(m, delta)
	assert.Equal(t, before, snapshot(p))
}

func TestCastleMovesRook(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.E1, board.King, board.White)
	b.SetPiece(board.H1, board.Rook, board.White)
	b.SetPiece(board.E8, board.King, board.Black)
	b.SetCastle(board.White, board.KingSideCastle)
	b.SetSide(board.White)
	p, err := b.Build()
	require.NoError(t, err)

	before := snapshot(p)

	m := position.NewMove(board.E1, board.G1, position.Castle)
	delta := p.PlayMove(m)
	assert.Equal(t, board.King, mustPiece(t, p, board.G1))
	assert.Equal(t, board.Rook, mustPiece(t, p, board.F1))
	assertEmpty(t, p, board.E1)
	assertEmpty(t, p, board.H1)

	p.UnplayMove(m, delta)
	assert.Equal(t, before, snapshot(p))
}

func TestComputeCheckersFindsKnightCheck(t *testing.T) {
	b := position.NewBuilder()
	b.SetPiece(board.E1, board.King, board.White)
	b.SetPiece(board.D3, board.Knight, board.Black)
	b.SetPiece(board.E8, board.King, board.Black)
	b.SetSide(board.White)
	p, err := b.Build()
	require.NoError(t, err)

	checkers := p.ComputeCheckers(board.White)
	assert.Equal(t, board.D3.Bitboard(), checkers)
}

func mustPiece(t *testing.T, p *position.Position, sq board.Square) board.Piece {
	t.Helper()
	piece, _, ok := p.PieceColorAt(sq)
	require.True(t, ok, "expected a piece on %v", sq)
	return piece
}

func assertEmpty(t *testing.T, p *position.Position, sq board.Square) {
	t.Helper()
	_, _, ok := p.PieceColorAt(sq)
	assert.False(t, ok, "expected %v to be empty", sq)
}

type boardSnapshot struct {
	combined board.Bitboard
	side     board.Color
	hash     position.Hash
}

func snapshot(p *position.Position) boardSnapshot {
	return boardSnapshot{combined: p.Combined(), side: p.Side(), hash: p.Hash()}
}
