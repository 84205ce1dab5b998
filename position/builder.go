package position

import "github.com/ambroisie/chesscore/board"

// square holds one staged square's occupant, if any.
type square struct {
	piece  board.Piece
	color  board.Color
	filled bool
}

// Builder is a mutable staging area that produces a validated Position. It
// exists so external collaborators (a FEN parser, a test fixture, a UI board
// editor) can assemble arbitrary piece placements without going through
// PlayMove, while still only ever handing back a position that has passed
// Validate.
type Builder struct {
	squares [board.NumSquares]square

	castle [board.NumColors]board.CastleRights

	hasEnPassant bool
	enPassant    board.Square

	halfMoveClock uint32
	// fullMoveNumber is the 1-based move counter as used in standard
	// position notation: it increments after Black moves.
	fullMoveNumber uint32

	side board.Color
}

// NewBuilder returns an empty builder: no pieces, no castling rights, no
// en-passant target, half-move clock 0, move number 1, White to move.
func NewBuilder() *Builder {
	return &Builder{
		fullMoveNumber: 1,
		side:           board.White,
	}
}

// SetPiece stages piece/color on sq, overwriting whatever was staged there.
func (b *Builder) SetPiece(sq board.Square, piece board.Piece, color board.Color) *Builder {
	b.squares[sq.Index()] = square{piece: piece, color: color, filled: true}
	return b
}

// ClearPiece removes any staged occupant from sq.
func (b *Builder) ClearPiece(sq board.Square) *Builder {
	b.squares[sq.Index()] = square{}
	return b
}

// SetCastle stages color's castling rights.
func (b *Builder) SetCastle(color board.Color, rights board.CastleRights) *Builder {
	b.castle[color.Index()] = rights
	return b
}

// SetEnPassant stages an en-passant target square.
func (b *Builder) SetEnPassant(sq board.Square) *Builder {
	b.hasEnPassant = true
	b.enPassant = sq
	return b
}

// ClearEnPassant removes any staged en-passant target.
func (b *Builder) ClearEnPassant() *Builder {
	b.hasEnPassant = false
	return b
}

// SetHalfMoveClock stages the half-move clock.
func (b *Builder) SetHalfMoveClock(n uint32) *Builder {
	b.halfMoveClock = n
	return b
}

// SetFullMoveNumber stages the 1-based full-move counter.
func (b *Builder) SetFullMoveNumber(n uint32) *Builder {
	b.fullMoveNumber = n
	return b
}

// SetSide stages the side to move.
func (b *Builder) SetSide(color board.Color) *Builder {
	b.side = color
	return b
}

// Build materializes the staged squares into bitboards, computes the ply
// counter, and validates the result.
func (b *Builder) Build() (*Position, error) {
	p := &Position{
		castle:        b.castle,
		hasEnPassant:  b.hasEnPassant,
		enPassant:     b.enPassant,
		halfMoveClock: b.halfMoveClock,
		side:          b.side,
	}

	sideOffset := uint32(0)
	if b.side == board.Black {
		sideOffset = 1
	}
	p.totalPlies = (b.fullMoveNumber-1)*2 + sideOffset

	for i := 0; i < board.NumSquares; i++ {
		sq := b.squares[i]
		if !sq.filled {
			continue
		}
		bb := board.Square(i).Bitboard()
		p.piece[sq.piece.Index()] |= bb
		p.color[sq.color.Index()] |= bb
		p.combined |= bb
	}

	p.hash = hashFromScratch(p)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
