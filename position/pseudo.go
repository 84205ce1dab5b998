package position

import (
	"github.com/ambroisie/chesscore/board"
	"github.com/ambroisie/chesscore/movegen"
)

// GeneratePseudoMoves returns every pseudo-legal move for the side to move:
// it respects piece movement rules and blockers, but does not check whether
// the resulting position leaves its own king in check. It is the one caller
// that tags castling and en-passant moves explicitly, resolving the two
// extension points the base play/unplay algorithm leaves open.
func GeneratePseudoMoves(p *Position) []Move {
	side := p.side
	own := p.color[side.Index()]
	enemy := p.color[side.Other().Index()]
	var moves []Move

	addAll := func(from board.Square, targets board.Bitboard, kind Kind) {
		it := targets.Squares()
		for {
			to, ok := it.Next()
			if !ok {
				break
			}
			moves = append(moves, NewMove(from, to, kind))
		}
	}

	pawns := p.piece[board.Pawn.Index()] & own
	it := pawns.Squares()
	for {
		from, ok := it.Next()
		if !ok {
			break
		}
		quiet := movegen.PawnQuietMoves(side, from, p.combined)
		attacks := movegen.PawnAttacks(side, from) & enemy

		var epTarget board.Bitboard
		if ep, has := p.EnPassant(); has {
			epTarget = movegen.PawnAttacks(side, from) & ep.Bitboard()
		}

		promoRank := side.Other().FirstRank()
		addPawnTargets := func(targets board.Bitboard) {
			tit := targets.Squares()
			for {
				to, ok := tit.Next()
				if !ok {
					break
				}
				if to.Rank() == promoRank {
					moves = append(moves, NewPromotion(from, to, PromoteQueen))
					moves = append(moves, NewPromotion(from, to, PromoteRook))
					moves = append(moves, NewPromotion(from, to, PromoteBishop))
					moves = append(moves, NewPromotion(from, to, PromoteKnight))
				} else {
					moves = append(moves, NewMove(from, to, Normal))
				}
			}
		}
		addPawnTargets(quiet | attacks)
		addAll(from, epTarget, EnPassant)
	}

	knights := p.piece[board.Knight.Index()] & own
	it = knights.Squares()
	for {
		from, ok := it.Next()
		if !ok {
			break
		}
		addAll(from, movegen.KnightMoves(from)&^own, Normal)
	}

	bishops := p.piece[board.Bishop.Index()] & own
	it = bishops.Squares()
	for {
		from, ok := it.Next()
		if !ok {
			break
		}
		addAll(from, movegen.BishopMoves(from, p.combined)&^own, Normal)
	}

	rooks := p.piece[board.Rook.Index()] & own
	it = rooks.Squares()
	for {
		from, ok := it.Next()
		if !ok {
			break
		}
		addAll(from, movegen.RookMoves(from, p.combined)&^own, Normal)
	}

	queens := p.piece[board.Queen.Index()] & own
	it = queens.Squares()
	for {
		from, ok := it.Next()
		if !ok {
			break
		}
		addAll(from, movegen.QueenMoves(from, p.combined)&^own, Normal)
	}

	kingBB := p.piece[board.King.Index()] & own
	if from, err := kingBB.Square(); err == nil {
		addAll(from, movegen.KingMoves(from)&^own, Normal)
		moves = append(moves, generateCastleMoves(p, side, from)...)
	}

	return moves
}

// generateCastleMoves returns the castling moves available to side's king
// on from, if its path and destination are empty and neither the king's
// start, transit, nor destination square is attacked.
func generateCastleMoves(p *Position, side board.Color, from board.Square) []Move {
	var moves []Move
	if p.ComputeCheckers(side) != board.Empty {
		return moves
	}

	rank := side.FirstRank()
	rights := p.castle[side.Index()]

	attacked := func(sq board.Square) bool {
		occupancyWithoutKing := p.combined &^ from.Bitboard()
		return (p.piece[board.Pawn.Index()]&p.color[side.Other().Index()]&movegen.PawnAttacks(side, sq) != 0) ||
			(p.piece[board.Knight.Index()]&p.color[side.Other().Index()]&movegen.KnightMoves(sq) != 0) ||
			((p.piece[board.Bishop.Index()]|p.piece[board.Queen.Index()])&p.color[side.Other().Index()]&movegen.BishopMoves(sq, occupancyWithoutKing) != 0) ||
			((p.piece[board.Rook.Index()]|p.piece[board.Queen.Index()])&p.color[side.Other().Index()]&movegen.RookMoves(sq, occupancyWithoutKing) != 0) ||
			(p.piece[board.King.Index()]&p.color[side.Other().Index()]&movegen.KingMoves(sq) != 0)
	}

	if rights.HasKingSide() {
		blockers := movegen.KingSideCastleBlockers(side)
		f := board.NewSquare(board.FileF, rank)
		g := board.NewSquare(board.FileG, rank)
		if p.combined&blockers == 0 && !attacked(f) && !attacked(g) {
			moves = append(moves, NewMove(from, g, Castle))
		}
	}
	if rights.HasQueenSide() {
		blockers := movegen.QueenSideCastleBlockers(side)
		c := board.NewSquare(board.FileC, rank)
		d := board.NewSquare(board.FileD, rank)
		if p.combined&blockers == 0 && !attacked(c) && !attacked(d) {
			moves = append(moves, NewMove(from, c, Castle))
		}
	}
	return moves
}
