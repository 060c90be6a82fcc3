package search

import (
	"golang.org/x/exp/slices"

	"mateline/position"
)

// mvvLva[victim][attacker] scores a capture by most-valuable-victim,
// least-valuable-attacker, indexed by PieceType (NoPieceType..King), scaled
// to sit within the capture-ordering band below.
var mvvLva = [7][7]int{
	position.Pawn:   {0, 15, 14, 13, 12, 11, 0},
	position.Knight: {0, 25, 24, 23, 22, 21, 0},
	position.Bishop: {0, 35, 34, 33, 32, 31, 0},
	position.Rook:   {0, 45, 44, 43, 42, 41, 0},
	position.Queen:  {0, 55, 54, 53, 52, 51, 0},
}

const (
	ttMoveScore     = 1_000_000
	captureBase     = 100_000
	promotionBase   = 90_000
	killerPrimary   = 2_000
	killerSecondary = 1_900
)

type scoredMove struct {
	move  position.Move
	score int
}

// orderMoves sorts moves in place by the search's ordering rule: the
// transposition-table move first, then captures by MVV/LVA plus a
// promotion bonus, then non-capture promotions, then the primary and
// secondary killer for this ply, and finally the history heuristic. A
// stable sort is required so that moves of equal score keep their
// generation order, per the move-ordering determinism requirement.
func orderMoves(moves []position.Move, ttMove position.Move, killers KillerTable, ply int, history *HistoryTable, side position.Color) {
	primary, secondary := killers.Get(ply)
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(m, ttMove, primary, secondary, history, side)}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) bool { return a.score > b.score })
	for i, sm := range scored {
		moves[i] = sm.move
	}
}

func scoreMove(m, ttMove position.Move, primary, secondary position.Move, history *HistoryTable, side position.Color) int {
	if m == ttMove {
		return ttMoveScore
	}
	if m.IsCapture() {
		score := captureBase + mvvLva[m.Captured.Type()][m.Moving.Type()]
		if m.IsPromotion() {
			score += promotionValue(m.Promotion.Type())
		}
		return score
	}
	if m.IsPromotion() {
		return promotionBase + promotionValue(m.Promotion.Type())
	}
	if m == primary {
		return killerPrimary
	}
	if m == secondary {
		return killerSecondary
	}
	if h := history.Score(side, m); h < killerSecondary {
		return h
	}
	return killerSecondary - 1
}

func promotionValue(pt position.PieceType) int {
	switch pt {
	case position.Queen:
		return 900
	case position.Rook:
		return 500
	case position.Bishop:
		return 330
	case position.Knight:
		return 320
	default:
		return 0
	}
}
