package search

import (
	"math/bits"

	"mateline/position"
)

// seePieceValue gives a lightweight material scale for static exchange
// evaluation; it deliberately does not import eval's tuned PST-aware
// values, since SEE only needs the relative ordering of piece worth.
var seePieceValue = [7]int{
	position.NoPieceType: 0,
	position.Pawn:        100,
	position.Knight:      320,
	position.Bishop:      330,
	position.Rook:        500,
	position.Queen:       900,
	position.King:        20000,
}

// StaticExchangeEval estimates the net material gain of playing capture m
// on the current position by resolving the full capture sequence on the
// target square, least-valuable-attacker first, without touching the real
// board (make/undo per candidate move is too costly for a per-quiescence-
// node filter).
func StaticExchangeEval(b *position.Board, m position.Move) int {
	if !m.IsCapture() {
		return 0
	}

	target := m.To
	side := m.Moving.Color()
	gain := make([]int, 0, 32)
	gain = append(gain, seePieceValue[m.Captured.Type()])

	occ := b.Occupancy()
	occ &^= sqBit(m.From)
	attackerValue := seePieceValue[m.Moving.Type()]

	side = side.Opposite()
	for {
		attackerSq, attackerPT, found := leastValuableAttacker(b, target, side, occ)
		if !found {
			break
		}
		gain = append(gain, attackerValue-gain[len(gain)-1])
		occ &^= sqBit(attackerSq)
		attackerValue = seePieceValue[attackerPT]
		side = side.Opposite()
	}

	// Standard SEE backward minimax: at each step the side to move may
	// decline to continue the capture sequence if doing so loses material.
	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	return gain[0]
}

func sqBit(sq position.Square) uint64 { return uint64(1) << uint(sq) }

// leastValuableAttacker scans every piece type from pawn to king and
// returns the first (cheapest) attacker of `side` that attacks `target`
// given the (possibly already-thinned) occupancy `occ`.
func leastValuableAttacker(b *position.Board, target position.Square, side position.Color, occ uint64) (sq position.Square, pt position.PieceType, found bool) {
	bb := b.Bitboards(side)
	candidates := []struct {
		pt  position.PieceType
		occ uint64
	}{
		{position.Pawn, bb.Pawns},
		{position.Knight, bb.Knights},
		{position.Bishop, bb.Bishops},
		{position.Rook, bb.Rooks},
		{position.Queen, bb.Queens},
		{position.King, bb.Kings},
	}
	for _, c := range candidates {
		rem := c.occ & occ
		for rem != 0 {
			s := popLSB(&rem)
			targets := position.AttacksFrom(position.Square(s), c.pt, side, occ)
			if targets&sqBit(target) != 0 {
				return position.Square(s), c.pt, true
			}
		}
	}
	return position.NoSquare, position.NoPieceType, false
}

func popLSB(bb *uint64) int {
	sq := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return sq
}
