package eval

import "mateline/position"

// activity scores knight/bishop/rook/queen placement bonuses. Rook and pawn
// bitboards for both colors are needed for the open/half-open file checks,
// so this takes the whole board rather than a single side's bitboards.
func activity(b *position.Board, c position.Color) (mg, eg int) {
	own := b.Bitboards(c)
	enemyPawns := b.Bitboards(c.Opposite()).Pawns
	ownPawns := own.Pawns

	knightMG, knightEG := knightActivity(own.Knights, c)
	mg += knightMG
	eg += knightEG
	mg += bishopActivity(own.Bishops, c)

	rookMG, rookEG := rookActivity(own.Rooks, ownPawns, enemyPawns, c)
	mg += rookMG
	eg += rookEG

	mg += queenActivity(own.Queens, c)
	return mg, eg
}

func knightActivity(knights uint64, c position.Color) (mg, eg int) {
	rem := knights
	for rem != 0 {
		sq := popLSB(&rem)
		file := sq % 8
		relRank := relativeRank(sq/8, c)

		if relRank != 0 {
			mg += 6
		}
		if file >= 2 && file <= 5 && relRank >= 2 && relRank <= 5 {
			mg += 8
			eg += 4
		}
		if file == 0 || file == 7 {
			mg -= 8
		}
	}
	return mg, eg
}

func bishopActivity(bishops uint64, c position.Color) int {
	var mg int
	rem := bishops
	for rem != 0 {
		sq := popLSB(&rem)
		if relativeRank(sq/8, c) != 0 {
			mg += 5
		}
	}
	return mg
}

func rookActivity(rooks, ownPawns, enemyPawns uint64, c position.Color) (mg, eg int) {
	rem := rooks
	for rem != 0 {
		sq := popLSB(&rem)
		file := sq % 8
		relRank := relativeRank(sq/8, c)

		fm := fileMask(file)
		switch {
		case ownPawns&fm == 0 && enemyPawns&fm == 0:
			mg += 20
			eg += 12
		case ownPawns&fm == 0:
			mg += 12
			eg += 6
		}
		if relRank == 6 {
			mg += 8
			eg += 6
		}
	}
	return mg, eg
}

func queenActivity(queens uint64, c position.Color) int {
	var mg int
	rem := queens
	for rem != 0 {
		sq := popLSB(&rem)
		if relativeRank(sq/8, c) >= 5 {
			mg += 4
		}
	}
	return mg
}
