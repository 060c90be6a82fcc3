package eval

import "mateline/position"

// Evaluate returns the static evaluation of b in centipawns, from the
// side-to-move's point of view (negative means the side to move is worse
// off), so it composes directly with a negamax search. It accumulates a
// midgame and endgame score per side over material, pawn structure,
// activity and king safety, then blends them by game phase.
func Evaluate(b *position.Board) int {
	whiteMG, whiteEG, phase := sideScore(b, position.White)
	blackMG, blackEG, blackPhase := sideScore(b, position.Black)

	mg := whiteMG - blackMG
	eg := whiteEG - blackEG
	totalPhase := phase + blackPhase
	if totalPhase > MaxPhase {
		totalPhase = MaxPhase
	}

	blended := (mg*totalPhase + eg*(MaxPhase-totalPhase)) / MaxPhase

	if b.SideToMove() == position.White {
		return blended
	}
	return -blended
}

// sideScore sums every accumulator for one color, returning midgame score,
// endgame score, and this side's contribution to the phase counter.
func sideScore(b *position.Board, c position.Color) (mg, eg, phase int) {
	matMG, matEG, matPhase := materialAndPST(b, c)
	mg += matMG
	eg += matEG
	phase += matPhase

	pawnMG, pawnEG := pawnStructure(b, c)
	mg += pawnMG
	eg += pawnEG

	actMG, actEG := activity(b, c)
	mg += actMG
	eg += actEG

	mg += kingSafety(b, c)

	return mg, eg, phase
}
