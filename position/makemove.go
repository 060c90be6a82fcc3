package position

// MakeMove applies m to the board, then rejects it if the mover's own king
// ends up attacked, folding legality checking into the same call. On
// rejection the board is restored to its pre-call state and ok is false;
// the returned Undo is only meaningful when ok is true and must be passed
// to UnmakeMove to reverse the move.
func (b *Board) MakeMove(m Move) (ok bool, undo Undo) {
	mover := b.sideToMove

	undo = Undo{
		Move:           m,
		PrevCastling:   b.castlingRights,
		PrevEnPassant:  b.enPassantSquare,
		PrevHalfmove:   b.halfmoveClock,
		PrevFullmove:   b.fullmoveNumber,
		PrevZobrist:    b.zobristKey,
		CastleRookFrom: NoSquare,
		CastleRookTo:   NoSquare,
	}

	// 1. Fullmove number increments after Black's move.
	if mover == Black {
		b.fullmoveNumber++
	}

	// 2. Halfmove clock: reset on pawn move or capture, else increment.
	if m.Moving.Type() == Pawn || m.IsCapture() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	// 3. Clear the en-passant square (Zobrist first, board after).
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPass[b.enPassantSquare.File()]
	}
	b.enPassantSquare = NoSquare

	// 4. En-passant capture removes the victim pawn behind the target square.
	if m.IsEnPassant() {
		capSq := MakeSquare(m.To.File(), m.From.Rank())
		undo.Captured = b.removePiece(capSq)
	} else if m.IsCapture() {
		undo.Captured = b.removePiece(m.To)
	}

	// 5. Castling relocates the rook from its corner to its f/d-file square.
	if m.Flags&FlagCastleKS != 0 {
		rank := m.From.Rank()
		undo.CastleRookFrom = MakeSquare(7, rank)
		undo.CastleRookTo = MakeSquare(5, rank)
		b.relocatePiece(undo.CastleRookFrom, undo.CastleRookTo)
	} else if m.Flags&FlagCastleQS != 0 {
		rank := m.From.Rank()
		undo.CastleRookFrom = MakeSquare(0, rank)
		undo.CastleRookTo = MakeSquare(3, rank)
		b.relocatePiece(undo.CastleRookFrom, undo.CastleRookTo)
	}

	// 6. Move the mover off `from`; place the promoted piece or the moving
	// piece on `to`.
	b.removePiece(m.From)
	if m.IsPromotion() {
		b.addPiece(m.To, m.Promotion)
	} else {
		b.addPiece(m.To, m.Moving)
	}

	// 7. Update castling rights: king move clears both of that side's bits;
	// a rook leaving (or being captured on) its home corner clears that bit.
	newRights := b.castlingRights
	switch m.Moving {
	case WhiteKing:
		newRights &^= WhiteKingside | WhiteQueenside
	case BlackKing:
		newRights &^= BlackKingside | BlackQueenside
	}
	clearRookRight(&newRights, m.From)
	if m.IsCapture() {
		clearRookRight(&newRights, m.To)
	}
	if newRights != b.castlingRights {
		b.zobristKey ^= zobristCastle[b.castlingRights]
		b.zobristKey ^= zobristCastle[newRights]
		b.castlingRights = newRights
	}

	// 8. A double pawn push opens an en-passant target behind the pawn.
	if m.Flags&FlagDoublePawnPush != 0 {
		var ep Square
		if mover == White {
			ep = m.From + 8
		} else {
			ep = m.From - 8
		}
		b.enPassantSquare = ep
		b.zobristKey ^= zobristEnPass[ep.File()]
	}

	// 9. Toggle side to move.
	b.sideToMove = mover.Opposite()
	b.zobristKey ^= zobristSideKey

	// 10. Recompute the Zobrist key from scratch — simpler than incremental
	// maintenance and immune to drift. The incremental XORs above are
	// overwritten here, so the stored key is always this from-scratch
	// recomputation; UnmakeMove restores the key saved in the Undo record.
	b.zobristKey = b.ComputeZobrist()

	if b.IsSquareAttacked(b.KingSquare(mover), mover.Opposite()) {
		b.UnmakeMove(undo)
		return false, undo
	}

	b.history = append(b.history, undo)
	return true, undo
}

func clearRookRight(rights *CastlingRights, sq Square) {
	switch sq {
	case SquareA1:
		*rights &^= WhiteQueenside
	case SquareH1:
		*rights &^= WhiteKingside
	case SquareA8:
		*rights &^= BlackQueenside
	case SquareH8:
		*rights &^= BlackKingside
	}
}

// UnmakeMove reverses the most recent MakeMove, restoring the position to
// its exact prior state (piece array, flags, Zobrist, clocks). undo must be
// the value returned by the MakeMove call being reversed.
func (b *Board) UnmakeMove(undo Undo) {
	if n := len(b.history); n > 0 && b.history[n-1] == undo {
		b.history = b.history[:n-1]
	}

	m := undo.Move
	b.sideToMove = b.sideToMove.Opposite()

	// Reverse step 6: take whatever landed on `to` off, put the original
	// moving piece back on `from`.
	b.removePiece(m.To)
	b.addPiece(m.From, m.Moving)

	// Reverse step 5: move the rook back to its corner.
	if undo.CastleRookFrom != NoSquare {
		b.relocatePiece(undo.CastleRookTo, undo.CastleRookFrom)
	}

	// Reverse step 4: restore the captured piece.
	if m.IsEnPassant() {
		capSq := MakeSquare(m.To.File(), m.From.Rank())
		b.addPiece(capSq, undo.Captured)
	} else if m.IsCapture() {
		b.addPiece(m.To, undo.Captured)
	}

	b.castlingRights = undo.PrevCastling
	b.enPassantSquare = undo.PrevEnPassant
	b.halfmoveClock = undo.PrevHalfmove
	b.fullmoveNumber = undo.PrevFullmove
	b.zobristKey = undo.PrevZobrist
}

// NullUndo is the snapshot MakeNullMove pushes so UnmakeNullMove can
// reverse it.
type NullUndo struct {
	PrevEnPassant Square
	PrevZobrist   uint64
}

// MakeNullMove passes the turn without moving a piece: used only inside
// search (null-move pruning), never a legal move in its own right.
func (b *Board) MakeNullMove() NullUndo {
	undo := NullUndo{PrevEnPassant: b.enPassantSquare, PrevZobrist: b.zobristKey}
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPass[b.enPassantSquare.File()]
	}
	b.enPassantSquare = NoSquare
	b.sideToMove = b.sideToMove.Opposite()
	b.zobristKey ^= zobristSideKey
	return undo
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove(undo NullUndo) {
	b.sideToMove = b.sideToMove.Opposite()
	b.enPassantSquare = undo.PrevEnPassant
	b.zobristKey = undo.PrevZobrist
}
