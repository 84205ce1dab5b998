// Package perft implements the classic node-counting test: play every
// pseudo-legal move to a fixed depth, skip any that leave the mover's own
// king in check, and recurse. It exists purely as a cross-check of
// GeneratePseudoMoves and PlayMove/UnplayMove against known node counts.
package perft

import "github.com/ambroisie/chesscore/position"

// Count returns the number of legal move sequences of exactly depth plies
// from p's current state.
func Count(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range position.GeneratePseudoMoves(p) {
		mover := p.Side()
		delta := p.PlayMove(m)
		if p.ComputeCheckers(mover) == 0 {
			nodes += Count(p, depth-1)
		}
		p.UnplayMove(m, delta)
	}
	return nodes
}
