package eval

import "mateline/position"

// Pawn structure weights, taken from the evaluation requirements:
// doubled/isolated/backward penalties and the passed-pawn bonus curve
// indexed by relative rank (0 at home, 7 at the promotion square). Kept as
// vars rather than consts so the UCI "setoption" extension can retune them
// at runtime (see tuning.go).
var (
	doubledPawnMG = 20
	doubledPawnEG = 12

	isolatedPawnMG = 15
	isolatedPawnEG = 10

	backwardPawnMG = 12
	backwardPawnEG = 8
)

var passedPawnMG = [8]int{0, 5, 10, 20, 35, 60, 100, 0}
var passedPawnEG = [8]int{0, 10, 20, 40, 70, 110, 170, 0}

// pawnStructure scores doubled, passed, isolated and backward pawns for
// color c, following the definitions given for each term: passed pawns have
// no enemy pawn able to block or capture them on their file or the two
// adjacent files strictly ahead; backward pawns cannot be defended by a
// friendly pawn and sit on a square an enemy pawn already covers or
// contests on the same file.
func pawnStructure(b *position.Board, c position.Color) (mg, eg int) {
	own := b.Bitboards(c).Pawns
	enemy := b.Bitboards(c.Opposite()).Pawns

	var ownFileCount [8]int
	rem := own
	for rem != 0 {
		sq := popLSB(&rem)
		ownFileCount[position.Square(sq).File()]++
	}
	for file := 0; file < 8; file++ {
		if n := ownFileCount[file]; n > 1 {
			mg -= doubledPawnMG * (n - 1)
			eg -= doubledPawnEG * (n - 1)
		}
	}

	rem = own
	for rem != 0 {
		sq := popLSB(&rem)
		file := position.Square(sq).File()
		rank := position.Square(sq).Rank()

		adjacentFiles := adjacentFileMask(file)
		if own&adjacentFiles == 0 {
			mg -= isolatedPawnMG
			eg -= isolatedPawnEG
		}

		if isPassed(sq, file, rank, enemy, c) {
			relRank := relativeRank(rank, c)
			mg += passedPawnMG[relRank]
			eg += passedPawnEG[relRank]
		}

		if isBackward(b, sq, file, rank, own, enemy, c) {
			mg -= backwardPawnMG
			eg -= backwardPawnEG
		}
	}
	return mg, eg
}

func adjacentFileMask(file int) uint64 {
	var mask uint64
	if file > 0 {
		mask |= fileMask(file - 1)
	}
	if file < 7 {
		mask |= fileMask(file + 1)
	}
	return mask
}

func relativeRank(rank int, c position.Color) int {
	if c == position.White {
		return rank
	}
	return 7 - rank
}

// aheadMask returns every square strictly ahead of `rank` (in c's direction
// of travel) on the given file.
func aheadMask(file, rank int, c position.Color) uint64 {
	var mask uint64
	if c == position.White {
		for r := rank + 1; r < 8; r++ {
			mask |= uint64(1) << uint(r*8+file)
		}
	} else {
		for r := rank - 1; r >= 0; r-- {
			mask |= uint64(1) << uint(r*8+file)
		}
	}
	return mask
}

func isPassed(sq int, file, rank int, enemyPawns uint64, c position.Color) bool {
	span := aheadMask(file, rank, c)
	if file > 0 {
		span |= aheadMask(file-1, rank, c)
	}
	if file < 7 {
		span |= aheadMask(file+1, rank, c)
	}
	return enemyPawns&span == 0
}

// isBackward implements the definition: the square directly in front is
// empty, no friendly pawn stands on an adjacent file at or behind this
// pawn's rank, and either an enemy pawn attacks the square ahead or the
// enemy holds a pawn on the same file.
func isBackward(b *position.Board, sq int, file, rank int, own, enemy uint64, c position.Color) bool {
	var frontSq int
	if c == position.White {
		frontSq = sq + 8
	} else {
		frontSq = sq - 8
	}
	if frontSq < 0 || frontSq >= 64 {
		return false
	}
	if b.PieceAt(position.Square(frontSq)) != position.NoPiece {
		return false
	}

	behindOrLevel := behindOrLevelMask(rank, c)
	if own&adjacentFileMask(file)&behindOrLevel != 0 {
		return false
	}

	enemyAttacksFront := enemyPawnAttacks(enemy, c.Opposite())&(uint64(1)<<uint(frontSq)) != 0
	enemyOnFile := enemy&fileMask(file) != 0
	return enemyAttacksFront || enemyOnFile
}

// behindOrLevelMask returns every square on or behind `rank` (in c's
// direction of travel), across all files — callers intersect it with a
// file mask to test a particular file or set of files.
func behindOrLevelMask(rank int, c position.Color) uint64 {
	var mask uint64
	if c == position.White {
		for r := 0; r <= rank; r++ {
			mask |= rankMask(r)
		}
	} else {
		for r := rank; r < 8; r++ {
			mask |= rankMask(r)
		}
	}
	return mask
}

func rankMask(rank int) uint64 {
	return uint64(0xFF) << uint(rank*8)
}

// enemyPawnAttacks returns every square attacked by any pawn in `pawns`,
// which belongs to color `by`.
func enemyPawnAttacks(pawns uint64, by position.Color) uint64 {
	var attacks uint64
	rem := pawns
	for rem != 0 {
		sq := popLSB(&rem)
		file := sq % 8
		var rankStep int
		if by == position.White {
			rankStep = 8
		} else {
			rankStep = -8
		}
		if file > 0 {
			if t := sq + rankStep - 1; t >= 0 && t < 64 {
				attacks |= uint64(1) << uint(t)
			}
		}
		if file < 7 {
			if t := sq + rankStep + 1; t >= 0 && t < 64 {
				attacks |= uint64(1) << uint(t)
			}
		}
	}
	return attacks
}
