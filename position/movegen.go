package position

import "math/bits"

// GeneratePseudoMoves produces every move that obeys piece-movement rules
// but may leave the mover's own king in check — the first stage of the
// two-stage generation pipeline GenerateLegalMoves completes.
func (b *Board) GeneratePseudoMoves() []Move {
	moves := make([]Move, 0, 48)
	us := b.sideToMove
	them := us.Opposite()
	own := b.occupancy[us]
	enemy := b.occupancy[them]
	occ := own | enemy

	moves = b.genPawnMoves(moves, us, enemy, occ)
	moves = b.genKnightMoves(moves, us, own, enemy)
	moves = b.genSliderMoves(moves, us, own, enemy, occ, Bishop, bishopAttacks)
	moves = b.genSliderMoves(moves, us, own, enemy, occ, Rook, rookAttacks)
	moves = b.genSliderMoves(moves, us, own, enemy, occ, Queen, queenAttacks)
	moves = b.genKingMoves(moves, us, them, own, enemy, occ)
	return moves
}

// GenerateLegalMoves filters GeneratePseudoMoves down to moves that do not
// leave the mover's own king in check, applying each candidate with
// MakeMove/UnmakeMove.
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := b.GeneratePseudoMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		ok, undo := b.MakeMove(m)
		if !ok {
			continue
		}
		b.UnmakeMove(undo)
		legal = append(legal, m)
	}
	return legal
}

// GenerateLegalCaptures returns the legal subset of moves that are
// captures, for quiescence search.
func (b *Board) GenerateLegalCaptures() []Move {
	all := b.GenerateLegalMoves()
	caps := make([]Move, 0, len(all))
	for _, m := range all {
		if m.IsCapture() {
			caps = append(caps, m)
		}
	}
	return caps
}

func popLSB(bb *uint64) int {
	sq := bits.TrailingZeros64(*bb)
	*bb &= *bb - 1
	return sq
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func (b *Board) genPawnMoves(moves []Move, us Color, enemy, occ uint64) []Move {
	pawns := b.pawns[us]
	pawn := MakePiece(us, Pawn)

	var forward, doubleRank, promoRank int
	if us == White {
		forward, doubleRank, promoRank = 8, 1, 7
	} else {
		forward, doubleRank, promoRank = -8, 6, 0
	}

	bb := pawns
	for bb != 0 {
		from := popLSB(&bb)
		to := from + forward
		if to < 0 || to >= 64 {
			continue
		}
		toSq := Square(to)
		if occ&(uint64(1)<<uint(to)) == 0 {
			if int(toSq.Rank()) == promoRank {
				moves = appendPromotions(moves, Square(from), toSq, pawn, NoPiece, false)
			} else {
				moves = append(moves, Move{From: Square(from), To: toSq, Moving: pawn})
				if int(Square(from).Rank()) == doubleRank {
					to2 := to + forward
					if occ&(uint64(1)<<uint(to2)) == 0 {
						moves = append(moves, Move{From: Square(from), To: Square(to2), Moving: pawn, Flags: FlagDoublePawnPush})
					}
				}
			}
		}

		for _, capTo := range pawnCaptureSquares(from, us) {
			bit := uint64(1) << uint(capTo)
			if enemy&bit != 0 {
				captured := b.pieces[capTo]
				if int(Square(capTo).Rank()) == promoRank {
					moves = appendPromotions(moves, Square(from), Square(capTo), pawn, captured, true)
				} else {
					moves = append(moves, Move{From: Square(from), To: Square(capTo), Moving: pawn, Captured: captured, Flags: FlagCapture})
				}
			} else if Square(capTo) == b.enPassantSquare && b.enPassantSquare != NoSquare {
				victim := MakePiece(us.Opposite(), Pawn)
				moves = append(moves, Move{From: Square(from), To: Square(capTo), Moving: pawn, Captured: victim, Flags: FlagCapture | FlagEnPassant})
			}
		}
	}
	return moves
}

// pawnCaptureSquares returns the (up to two) squares a pawn on `from`
// belonging to `us` attacks diagonally, respecting board edges.
func pawnCaptureSquares(from int, us Color) []int {
	file := from % 8
	var rankStep int
	if us == White {
		rankStep = 8
	} else {
		rankStep = -8
	}
	var out []int
	if file > 0 {
		if sq := from + rankStep - 1; sq >= 0 && sq < 64 {
			out = append(out, sq)
		}
	}
	if file < 7 {
		if sq := from + rankStep + 1; sq >= 0 && sq < 64 {
			out = append(out, sq)
		}
	}
	return out
}

func appendPromotions(moves []Move, from, to Square, moving, captured Piece, isCapture bool) []Move {
	flags := FlagPromotion
	if isCapture {
		flags |= FlagCapture
	}
	us := moving.Color()
	for _, pt := range promotionPieces {
		moves = append(moves, Move{
			From: from, To: to, Moving: moving, Captured: captured,
			Promotion: MakePiece(us, pt), Flags: flags,
		})
	}
	return moves
}

func (b *Board) genKnightMoves(moves []Move, us Color, own, enemy uint64) []Move {
	piece := MakePiece(us, Knight)
	bb := b.knights[us]
	for bb != 0 {
		from := popLSB(&bb)
		targets := knightAttacks[from] &^ own
		moves = appendTargets(moves, Square(from), piece, targets, enemy, b)
	}
	return moves
}

func (b *Board) genKingMoves(moves []Move, us, them Color, own, enemy, occ uint64) []Move {
	piece := MakePiece(us, King)
	from := b.KingSquare(us)
	targets := kingAttacks[from] &^ own
	moves = appendTargets(moves, from, piece, targets, enemy, b)
	moves = b.genCastles(moves, us, them, occ)
	return moves
}

func (b *Board) genCastles(moves []Move, us, them Color, occ uint64) []Move {
	king := MakePiece(us, King)
	var rank int
	if us == White {
		rank = 0
	} else {
		rank = 7
	}
	kingSq := MakeSquare(4, rank)
	if b.KingSquare(us) != kingSq {
		return moves
	}
	if b.InCheck(us) {
		return moves
	}

	var ksRight, qsRight CastlingRights
	if us == White {
		ksRight, qsRight = WhiteKingside, WhiteQueenside
	} else {
		ksRight, qsRight = BlackKingside, BlackQueenside
	}

	if b.castlingRights&ksRight != 0 {
		fSq, gSq := MakeSquare(5, rank), MakeSquare(6, rank)
		empty := occ&(sqBit(fSq)|sqBit(gSq)) == 0
		if empty && !b.IsSquareAttacked(fSq, them) && !b.IsSquareAttacked(gSq, them) {
			moves = append(moves, Move{From: kingSq, To: gSq, Moving: king, Flags: FlagCastleKS})
		}
	}
	if b.castlingRights&qsRight != 0 {
		dSq, cSq, bSq := MakeSquare(3, rank), MakeSquare(2, rank), MakeSquare(1, rank)
		empty := occ&(sqBit(dSq)|sqBit(cSq)|sqBit(bSq)) == 0
		if empty && !b.IsSquareAttacked(dSq, them) && !b.IsSquareAttacked(cSq, them) {
			moves = append(moves, Move{From: kingSq, To: cSq, Moving: king, Flags: FlagCastleQS})
		}
	}
	return moves
}

func sqBit(sq Square) uint64 { return uint64(1) << uint(sq) }

type sliderAttackFn func(sq int, occ uint64) uint64

func (b *Board) genSliderMoves(moves []Move, us Color, own, enemy, occ uint64, pt PieceType, attacksFn sliderAttackFn) []Move {
	piece := MakePiece(us, pt)
	bb := *b.pieceBitboard(us, pt)
	for bb != 0 {
		from := popLSB(&bb)
		targets := attacksFn(from, occ) &^ own
		moves = appendTargets(moves, Square(from), piece, targets, enemy, b)
	}
	return moves
}

func appendTargets(moves []Move, from Square, piece Piece, targets, enemy uint64, b *Board) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		bit := uint64(1) << uint(to)
		if enemy&bit != 0 {
			moves = append(moves, Move{From: from, To: Square(to), Moving: piece, Captured: b.pieces[to], Flags: FlagCapture})
		} else {
			moves = append(moves, Move{From: from, To: Square(to), Moving: piece})
		}
	}
	return moves
}

// Perft counts the leaf nodes reachable in exactly depth plies from the
// current position, the standard cross-check against known-good node
// counts for a move generator.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		ok, undo := b.MakeMove(m)
		if !ok {
			continue
		}
		nodes += b.Perft(depth - 1)
		b.UnmakeMove(undo)
	}
	return nodes
}

// PerftDivide reports, per legal root move, the perft count of the subtree
// beneath it — used to isolate the first diverging move when comparing
// against a reference node count.
func (b *Board) PerftDivide(depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}
	moves := b.GenerateLegalMoves()
	for _, m := range moves {
		ok, undo := b.MakeMove(m)
		if !ok {
			continue
		}
		result[m.String()] = b.Perft(depth - 1)
		b.UnmakeMove(undo)
	}
	return result
}
