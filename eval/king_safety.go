package eval

import "mateline/position"

const maxMissingShielder = 3

// King safety weights. Vars rather than consts so the UCI "setoption"
// extension can retune them at runtime (see tuning.go).
var (
	missingShielderMG = 12

	openFileNearKingMG     = 20
	halfOpenFileNearKingMG = 12

	castledKingBonusMG = 16
	exposedHomeKingMG  = 18

	tropismKnightMG = 6
	tropismBishopMG = 5
	tropismRookMG   = 7
	tropismQueenMG  = 9
)

// kingSafety scores c's king safety: pawn shield, open/half-open files near
// the king, a castled-king bonus, a penalty for lingering on the home rank
// past move 10, and enemy-piece tropism penalties. Midgame only, per the
// evaluation requirements.
func kingSafety(b *position.Board, c position.Color) int {
	kingSq := b.KingSquare(c)
	file := kingSq.File()
	rank := kingSq.Rank()
	homeRank := 0
	if c == position.Black {
		homeRank = 7
	}

	ownPawns := b.Bitboards(c).Pawns
	enemyPawns := b.Bitboards(c.Opposite()).Pawns

	var mg int

	missing := 0
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			missing++
			continue
		}
		if !shieldPresent(ownPawns, f, rank, c) {
			missing++
		}
	}
	if missing > maxMissingShielder {
		missing = maxMissingShielder
	}
	mg -= missing * missingShielderMG

	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		fm := fileMask(f)
		switch {
		case ownPawns&fm == 0 && enemyPawns&fm == 0:
			mg -= openFileNearKingMG
		case ownPawns&fm == 0:
			mg -= halfOpenFileNearKingMG
		}
	}

	if rank == homeRank && (file == 6 || file == 2) {
		mg += castledKingBonusMG
	}
	if b.FullmoveNumber() > 10 && rank == homeRank {
		mg -= exposedHomeKingMG
	}

	enemy := b.Bitboards(c.Opposite())
	mg -= tropismPenalty(enemy.Knights, kingSq, tropismKnightMG)
	mg -= tropismPenalty(enemy.Bishops, kingSq, tropismBishopMG)
	mg -= tropismPenalty(enemy.Rooks, kingSq, tropismRookMG)
	mg -= tropismPenalty(enemy.Queens, kingSq, tropismQueenMG)

	return mg
}

// shieldPresent reports a friendly pawn on file f, one or two ranks ahead
// of the king (in c's forward direction).
func shieldPresent(pawns uint64, f, kingRank int, c position.Color) bool {
	var r1, r2 int
	if c == position.White {
		r1, r2 = kingRank+1, kingRank+2
	} else {
		r1, r2 = kingRank-1, kingRank-2
	}
	for _, r := range [2]int{r1, r2} {
		if r < 0 || r > 7 {
			continue
		}
		if pawns&(uint64(1)<<uint(r*8+f)) != 0 {
			return true
		}
	}
	return false
}

func tropismPenalty(pieces uint64, kingSq position.Square, weight int) int {
	total := 0
	rem := pieces
	for rem != 0 {
		sq := popLSB(&rem)
		if chebyshev(sq, int(kingSq)) <= 2 {
			total += weight
		}
	}
	return total
}

func chebyshev(a, b int) int {
	af, ar := a%8, a/8
	bf, br := b%8, b/8
	df := af - bf
	if df < 0 {
		df = -df
	}
	dr := ar - br
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
