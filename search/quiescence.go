package search

import "mateline/position"

// quiescence resolves tactical sequences at the horizon: it evaluates the
// stand-pat score, and if that doesn't already fail high, searches captures
// only until the position is "quiet" — every recursive call strictly
// reduces material on the board, which is what guarantees termination.
func (e *Engine) quiescence(b *position.Board, alpha, beta, ply int) int {
	e.nodes++
	if e.timeUp() {
		return alpha
	}

	standPat := evaluatePosition(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := b.GenerateLegalCaptures()
	orderMoves(captures, position.Move{}, e.killers, ply, &e.history, b.SideToMove())

	for _, m := range captures {
		if m.IsCapture() && !m.IsEnPassant() && StaticExchangeEval(b, m) < 0 {
			continue
		}
		ok, undo := b.MakeMove(m)
		if !ok {
			continue
		}
		score := -e.quiescence(b, -beta, -alpha, ply+1)
		b.UnmakeMove(undo)

		if e.stopped {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
