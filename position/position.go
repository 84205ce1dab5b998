// Package position implements the chessboard state: bitboard-backed piece
// placement, reversible move play/unplay, a full position validator, checker
// computation, and (via zobrist.go) an incrementally maintained hash.
package position

import (
	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/movegen"
)

// Position is a complete chessboard state.
type Position struct {
	piece [board.NumPieces]board.Bitboard
	color [board.NumColors]board.Bitboard
	// combined is redundant with piece/color (it must always equal the
	// union of either), but is kept as a field because every slider query
	// needs it and recomputing a 6-way or 2-way OR on every move would be
	// wasteful.
	combined board.Bitboard

	castle [board.NumColors]board.CastleRights

	hasEnPassant bool
	enPassant    board.Square

	halfMoveClock uint32
	totalPlies    uint32
	side          board.Color

	hash Hash
}

// NonReversibleState captures everything PlayMove destroys that UnplayMove
// needs back: the state that cannot be recovered just by looking at the
// move and the resulting position.
type NonReversibleState struct {
	Castle [board.NumColors]board.CastleRights

	HasEnPassant bool
	EnPassant    board.Square

	HalfMoveClock uint32

	HasCaptured   bool
	CapturedPiece board.Piece
}

// New returns the standard starting position.
func New() *Position {
	p := &Position{
		castle:     [board.NumColors]board.CastleRights{board.BothCastle, board.BothCastle},
		totalPlies: 0,
		side:       board.White,
	}

	place := func(color board.Color, piece board.Piece, squares ...board.Square) {
		for _, sq := range squares {
			p.piece[piece.Index()] |= sq.Bitboard()
			p.color[color.Index()] |= sq.Bitboard()
		}
	}

	place(board.White, board.Rook, board.A1, board.H1)
	place(board.White, board.Knight, board.B1, board.G1)
	place(board.White, board.Bishop, board.C1, board.F1)
	place(board.White, board.Queen, board.D1)
	place(board.White, board.King, board.E1)
	place(board.White, board.Pawn, board.A2, board.B2, board.C2, board.D2, board.E2, board.F2, board.G2, board.H2)

	place(board.Black, board.Rook, board.A8, board.H8)
	place(board.Black, board.Knight, board.B8, board.G8)
	place(board.Black, board.Bishop, board.C8, board.F8)
	place(board.Black, board.Queen, board.D8)
	place(board.Black, board.King, board.E8)
	place(board.Black, board.Pawn, board.A7, board.B7, board.C7, board.D7, board.E7, board.F7, board.G7, board.H7)

	for i := range p.piece {
		p.combined |= p.piece[i]
	}

	p.hash = hashFromScratch(p)
	return p
}

// Side returns the side to move.
func (p *Position) Side() board.Color { return p.side }

// Combined returns the union of every occupied square.
func (p *Position) Combined() board.Bitboard { return p.combined }

// Pieces returns the occupancy of the given piece kind, colorless.
func (p *Position) Pieces(piece board.Piece) board.Bitboard { return p.piece[piece.Index()] }

// Colors returns the occupancy of the given color, kindless.
func (p *Position) Colors(color board.Color) board.Bitboard { return p.color[color.Index()] }

// PieceColorAt returns the piece and color occupying sq, if any.
func (p *Position) PieceColorAt(sq board.Square) (piece board.Piece, color board.Color, ok bool) {
	bb := sq.Bitboard()
	if p.combined&bb == 0 {
		return 0, 0, false
	}
	for i := 0; i < board.NumPieces; i++ {
		if p.piece[i]&bb != 0 {
			piece = board.PieceFromIndex(i)
			break
		}
	}
	if p.color[board.White.Index()]&bb != 0 {
		color = board.White
	} else {
		color = board.Black
	}
	return piece, color, true
}

// Castle returns color's castling rights.
func (p *Position) Castle(color board.Color) board.CastleRights { return p.castle[color.Index()] }

// EnPassant returns the en-passant target square, if any.
func (p *Position) EnPassant() (board.Square, bool) { return p.enPassant, p.hasEnPassant }

// HalfMoveClock returns the number of plies since the last capture or pawn
// move.
func (p *Position) HalfMoveClock() uint32 { return p.halfMoveClock }

// TotalPlies returns the number of plies played since the game start.
func (p *Position) TotalPlies() uint32 { return p.totalPlies }

// Hash returns the position's current Zobrist hash.
func (p *Position) Hash() Hash { return p.hash }

func (p *Position) addPiece(color board.Color, piece board.Piece, sq board.Square) {
	bb := sq.Bitboard()
	p.piece[piece.Index()] |= bb
	p.color[color.Index()] |= bb
	p.combined |= bb
	p.togglePiece(color, piece, sq)
}

func (p *Position) removePiece(color board.Color, piece board.Piece, sq board.Square) {
	bb := sq.Bitboard()
	p.piece[piece.Index()] &^= bb
	p.color[color.Index()] &^= bb
	p.combined &^= bb
	p.togglePiece(color, piece, sq)
}

func (p *Position) setCastle(color board.Color, rights board.CastleRights) {
	oldWhite, oldBlack := p.castle[board.White.Index()], p.castle[board.Black.Index()]
	p.castle[color.Index()] = rights
	p.toggleCastling(oldWhite, oldBlack, p.castle[board.White.Index()], p.castle[board.Black.Index()])
}

func (p *Position) clearEnPassant() {
	if p.hasEnPassant {
		p.toggleEnPassant(p.enPassant)
		p.hasEnPassant = false
	}
}

func (p *Position) setEnPassant(sq board.Square) {
	p.clearEnPassant()
	p.hasEnPassant = true
	p.enPassant = sq
	p.toggleEnPassant(sq)
}

// backOneSquare returns the square one step backward (towards color's own
// back rank) from sq.
func backOneSquare(color board.Color, sq board.Square) board.Square {
	bb := board.MoveBoard(sq.Bitboard(), color.BackwardDirection())
	dst, err := bb.Square()
	if err != nil {
		panic("position: backOneSquare stepped off the board")
	}
	return dst
}

// PlayMove applies m in place and returns the state needed to undo it. m is
// assumed to be at least pseudo-legal; behavior on an illegal move is
// unspecified (it is a contract violation, not a reported error — see the
// package's error-handling design).
func (p *Position) PlayMove(m Move) NonReversibleState {
	side := p.side
	from, to := m.From(), m.To()

	moved, _, ok := p.PieceColorAt(from)
	if !ok {
		panic("position: no piece on move's origin square")
	}

	delta := NonReversibleState{
		Castle:        p.castle,
		HasEnPassant:  p.hasEnPassant,
		EnPassant:     p.enPassant,
		HalfMoveClock: p.halfMoveClock,
	}

	isDoubleStep := moved == board.Pawn &&
		from.Rank() == side.SecondRank() && to.Rank() == side.FourthRank()

	// Determine the captured piece and its square: the destination for
	// everything except en-passant, whose victim sits one rank behind.
	capturedSquare := to
	isEnPassant := m.Kind() == EnPassant
	if isEnPassant {
		capturedSquare = backOneSquare(side, to)
	}

	var capturedPiece board.Piece
	hasCaptured := false
	if isEnPassant {
		capturedPiece, hasCaptured = board.Pawn, true
	} else if cp, _, ok := p.PieceColorAt(capturedSquare); ok {
		capturedPiece, hasCaptured = cp, true
	}
	delta.HasCaptured = hasCaptured
	delta.CapturedPiece = capturedPiece

	// Half-move clock.
	if hasCaptured || moved == board.Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	// En-passant target.
	if isDoubleStep {
		p.setEnPassant(board.NewSquare(to.File(), side.ThirdRank()))
	} else {
		p.clearEnPassant()
	}

	// Castling rights lost by the mover.
	rights := p.castle[side.Index()]
	if moved == board.King {
		rights = board.NoCastle
	} else if moved == board.Rook {
		if from.File() == board.FileA {
			rights = rights.WithoutQueenSide()
		} else if from.File() == board.FileH {
			rights = rights.WithoutKingSide()
		}
	}
	if rights != p.castle[side.Index()] {
		p.setCastle(side, rights)
	}

	// Captured piece removal, and any castling rights it takes with it.
	if hasCaptured {
		p.removePiece(side.Other(), capturedPiece, capturedSquare)
		if capturedPiece == board.Rook {
			opRights := p.castle[side.Other().Index()]
			if capturedSquare.File() == board.FileA {
				opRights = opRights.WithoutQueenSide()
			} else if capturedSquare.File() == board.FileH {
				opRights = opRights.WithoutKingSide()
			}
			if opRights != p.castle[side.Other().Index()] {
				p.setCastle(side.Other(), opRights)
			}
		}
	}

	// Move the piece itself, applying promotion if any.
	p.removePiece(side, moved, from)
	placed := moved
	if m.Kind() == Promotion {
		placed = m.Promo().Piece()
	}
	p.addPiece(side, placed, to)

	// Castling's rook leg: an extension over the base inference rule (see
	// Kind in move.go), keyed on the move being explicitly tagged Castle
	// rather than guessed from a two-square king move.
	if m.Kind() == Castle {
		rank := side.FirstRank()
		if to.File() == board.FileG {
			rookFrom := board.NewSquare(board.FileH, rank)
			rookTo := board.NewSquare(board.FileF, rank)
			p.removePiece(side, board.Rook, rookFrom)
			p.addPiece(side, board.Rook, rookTo)
		} else if to.File() == board.FileC {
			rookFrom := board.NewSquare(board.FileA, rank)
			rookTo := board.NewSquare(board.FileD, rank)
			p.removePiece(side, board.Rook, rookFrom)
			p.addPiece(side, board.Rook, rookTo)
		}
	}

	p.totalPlies++
	p.toggleSideToMove()
	p.side = side.Other()

	return delta
}

// UnplayMove reverts m, given the NonReversibleState PlayMove returned for
// it. It is the caller's responsibility to call it only with the delta that
// matches the most recent PlayMove.
func (p *Position) UnplayMove(m Move, delta NonReversibleState) {
	p.toggleSideToMove()
	p.side = p.side.Other()
	p.totalPlies--

	if delta.HasEnPassant {
		p.setEnPassant(delta.EnPassant)
	} else {
		p.clearEnPassant()
	}
	p.halfMoveClock = delta.HalfMoveClock

	side := p.side
	from, to := m.From(), m.To()

	moved, _, ok := p.PieceColorAt(to)
	if !ok {
		panic("position: no piece on move's destination square during unplay")
	}

	// Undo castling rook leg first, while the king is still on `to`.
	if m.Kind() == Castle {
		rank := side.FirstRank()
		if to.File() == board.FileG {
			rookFrom := board.NewSquare(board.FileH, rank)
			rookTo := board.NewSquare(board.FileF, rank)
			p.removePiece(side, board.Rook, rookTo)
			p.addPiece(side, board.Rook, rookFrom)
		} else if to.File() == board.FileC {
			rookFrom := board.NewSquare(board.FileA, rank)
			rookTo := board.NewSquare(board.FileD, rank)
			p.removePiece(side, board.Rook, rookTo)
			p.addPiece(side, board.Rook, rookFrom)
		}
	}

	p.removePiece(side, moved, to)
	original := moved
	if m.Kind() == Promotion {
		original = board.Pawn
	}
	p.addPiece(side, original, from)

	if delta.HasCaptured {
		capturedSquare := to
		if m.Kind() == EnPassant {
			capturedSquare = backOneSquare(side, to)
		}
		p.addPiece(side.Other(), delta.CapturedPiece, capturedSquare)
	}

	for c := 0; c < board.NumColors; c++ {
		color := board.Color(c)
		if p.castle[color.Index()] != delta.Castle[color.Index()] {
			p.setCastle(color, delta.Castle[color.Index()])
		}
	}
}

// ComputeCheckers returns the set of opposing pieces giving check to color's
// king.
func (p *Position) ComputeCheckers(color board.Color) board.Bitboard {
	kingBB := p.piece[board.King.Index()] & p.color[color.Index()]
	king, err := kingBB.Square()
	if err != nil {
		panic("position: ComputeCheckers called without a king on the board")
	}

	opponent := color.Other()
	opQueens := p.piece[board.Queen.Index()] & p.color[opponent.Index()]
	opBishops := p.piece[board.Bishop.Index()] & p.color[opponent.Index()]
	opRooks := p.piece[board.Rook.Index()] & p.color[opponent.Index()]
	opKnights := p.piece[board.Knight.Index()] & p.color[opponent.Index()]
	opPawns := p.piece[board.Pawn.Index()] & p.color[opponent.Index()]

	var checkers board.Bitboard
	checkers |= (opQueens | opBishops) & movegen.BishopMoves(king, p.combined)
	checkers |= (opQueens | opRooks) & movegen.RookMoves(king, p.combined)
	checkers |= opKnights & movegen.KnightMoves(king)
	checkers |= opPawns & movegen.PawnAttacks(color, king)

	return checkers
}

// Checkers returns the set of pieces giving check to the side to move.
func (p *Position) Checkers() board.Bitboard {
	return p.ComputeCheckers(p.side)
}

// Validate checks the position's invariants and returns the first violation
// found, in this order: overlapping pieces, overlapping colors, combined
// occupancy, per-color king and piece counts, pawns on a back rank,
// castling rights, en-passant target, neighbouring kings, side not to move
// in check, ply-count parity, and half-move clock against the ply count.
func (p *Position) Validate() error {
	for i := 0; i < board.NumPieces; i++ {
		for j := i + 1; j < board.NumPieces; j++ {
			if p.piece[i]&p.piece[j] != 0 {
				return ValidationError{OverlappingPieces}
			}
		}
	}
	if p.color[board.White.Index()]&p.color[board.Black.Index()] != 0 {
		return ValidationError{OverlappingColors}
	}

	var union board.Bitboard
	for i := 0; i < board.NumPieces; i++ {
		union |= p.piece[i]
	}
	colorUnion := p.color[board.White.Index()] | p.color[board.Black.Index()]
	if union != p.combined || colorUnion != p.combined {
		return ValidationError{ErroneousCombinedOccupancy}
	}

	for c := 0; c < board.NumColors; c++ {
		color := board.Color(c)
		kings := p.piece[board.King.Index()] & p.color[color.Index()]
		if kings.Count() != 1 {
			return ValidationError{MissingKing}
		}
		pawns := (p.piece[board.Pawn.Index()] & p.color[color.Index()]).Count()
		queens := (p.piece[board.Queen.Index()] & p.color[color.Index()]).Count()
		rooks := (p.piece[board.Rook.Index()] & p.color[color.Index()]).Count()
		bishops := (p.piece[board.Bishop.Index()] & p.color[color.Index()]).Count()
		knights := (p.piece[board.Knight.Index()] & p.color[color.Index()]).Count()
		if pawns > 8 || queens > 9 || rooks > 10 || bishops > 10 || knights > 10 {
			return ValidationError{TooManyPieces}
		}
		if pawns+queens+rooks+bishops+knights+1 > 16 {
			return ValidationError{TooManyPieces}
		}
	}

	if (p.piece[board.Pawn.Index()] & (board.Ranks[board.RankFirst.Index()] | board.Ranks[board.RankEighth.Index()])) != 0 {
		return ValidationError{InvalidPawnPosition}
	}

	for c := 0; c < board.NumColors; c++ {
		color := board.Color(c)
		rights := p.castle[color.Index()]
		if rights == board.NoCastle {
			continue
		}
		backRank := color.FirstRank()
		kingSq := board.NewSquare(board.FileE, backRank)
		if p.piece[board.King.Index()]&p.color[color.Index()]&kingSq.Bitboard() == 0 {
			return ValidationError{InvalidCastlingRights}
		}
		expectedRooks := rights.UnmovedRooks(color)
		actualRooks := p.piece[board.Rook.Index()] & p.color[color.Index()]
		if expectedRooks&actualRooks != expectedRooks {
			return ValidationError{InvalidCastlingRights}
		}
	}

	if p.hasEnPassant {
		s := p.enPassant
		if p.combined&s.Bitboard() != 0 {
			return ValidationError{InvalidEnPassant}
		}
		if s.Rank() != p.side.Other().ThirdRank() {
			return ValidationError{InvalidEnPassant}
		}
		behind := backOneSquare(p.side, s)
		if p.piece[board.Pawn.Index()]&p.color[p.side.Other().Index()]&behind.Bitboard() == 0 {
			return ValidationError{InvalidEnPassant}
		}
	}

	whiteKing, errW := (p.piece[board.King.Index()] & p.color[board.White.Index()]).Square()
	blackKing, errB := (p.piece[board.King.Index()] & p.color[board.Black.Index()]).Square()
	if errW == nil && errB == nil {
		if movegen.KingMoves(whiteKing)&blackKing.Bitboard() != 0 {
			return ValidationError{NeighbouringKings}
		}
	}

	if p.ComputeCheckers(p.side.Other()) != board.Empty {
		return ValidationError{OpponentInCheck}
	}

	if p.totalPlies%2 != uint32(p.side.Index()) {
		return ValidationError{IncoherentPlieCount}
	}

	if p.halfMoveClock > p.totalPlies {
		return ValidationError{HalfMoveClockTooHigh}
	}

	return nil
}

// IsValid is the boolean projection of Validate.
func (p *Position) IsValid() bool {
	return p.Validate() == nil
}
