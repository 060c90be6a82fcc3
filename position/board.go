package position

import "math/bits"

// Bitboards exposes the per-piece bitboards for one color.
type Bitboards struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings, All uint64
}

// Board is the position representation: a 64-square piece array kept in
// sync with per-color, per-piece-type bitboards, plus side to move,
// castling rights, en-passant target, move clocks and a running Zobrist
// hash.
type Board struct {
	pawns, knights, bishops, rooks, queens, kings [2]uint64
	occupancy                                     [2]uint64
	pieces                                        [64]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	fullmoveNumber  int
	zobristKey      uint64

	history []Undo
}

// Undo is the snapshot MakeMove pushes so UnmakeMove can reverse it exactly.
type Undo struct {
	Move            Move
	Captured        Piece
	PrevCastling    CastlingRights
	PrevEnPassant   Square
	PrevHalfmove    int
	PrevFullmove    int
	PrevZobrist     uint64
	CastleRookFrom  Square
	CastleRookTo    Square
}

// NewBoard returns an empty board (no pieces, White to move, no rights).
// Callers normally want StartPosition or ParseFEN instead.
func NewBoard() *Board {
	b := &Board{enPassantSquare: NoSquare}
	return b
}

// StartPosition returns a Board set up at the standard chess starting
// position.
func StartPosition() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("position: StartFEN failed to parse: " + err.Error())
	}
	return b
}

// SideToMove reports which color is to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights reports the current castling-rights mask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare reports the current en-passant target square, or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock reports the halfmove clock (plies since capture or pawn move).
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber reports the fullmove counter (increments after Black moves).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Hash returns the current Zobrist key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// PieceAt returns the piece occupying sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[sq] }

// Bitboards returns a copy of one side's per-piece-type bitboards.
func (b *Board) Bitboards(c Color) Bitboards {
	i := int(c)
	return Bitboards{
		Pawns: b.pawns[i], Knights: b.knights[i], Bishops: b.bishops[i],
		Rooks: b.rooks[i], Queens: b.queens[i], Kings: b.kings[i], All: b.occupancy[i],
	}
}

// Occupancy returns the union of both sides' occupied squares.
func (b *Board) Occupancy() uint64 { return b.occupancy[White] | b.occupancy[Black] }

// ColorOccupancy returns the occupied-square bitboard for one side.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[c] }

// KingSquare returns the square of c's king. Panics if the position has no
// such king — every reachable position keeps exactly one king per side.
func (b *Board) KingSquare(c Color) Square {
	kb := b.kings[c]
	if kb == 0 {
		panic("position: no king for " + c.String())
	}
	return Square(bits.TrailingZeros64(kb))
}

// HistoryLen reports the number of Undo records currently pushed, useful for
// verifying make/undo balance in tests.
func (b *Board) HistoryLen() int { return len(b.history) }

// pieceBitboard returns a pointer to the per-color bitboard array matching pt.
func (b *Board) pieceBitboard(c Color, pt PieceType) *uint64 {
	i := int(c)
	switch pt {
	case Pawn:
		return &b.pawns[i]
	case Knight:
		return &b.knights[i]
	case Bishop:
		return &b.bishops[i]
	case Rook:
		return &b.rooks[i]
	case Queen:
		return &b.queens[i]
	case King:
		return &b.kings[i]
	default:
		panic("position: pieceBitboard called with NoPieceType")
	}
}

// addPiece places p on an empty square, updating bitboards, occupancy and
// the Zobrist key. Callers must ensure sq is currently empty.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.pieces[sq] = p
	bit := uint64(1) << uint(sq)
	c := p.Color()
	b.occupancy[c] |= bit
	*b.pieceBitboard(c, p.Type()) |= bit
	b.zobristKey ^= zobristPiece[p][sq]
}

// removePiece clears sq, returning the piece that was there (or NoPiece).
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[sq]
	if p == NoPiece {
		return NoPiece
	}
	bit := uint64(1) << uint(sq)
	c := p.Color()
	b.pieces[sq] = NoPiece
	b.occupancy[c] &^= bit
	*b.pieceBitboard(c, p.Type()) &^= bit
	b.zobristKey ^= zobristPiece[p][sq]
	return p
}

// relocatePiece moves whatever sits on 'from' to 'to' (which must be empty),
// keeping bitboards, occupancy and Zobrist in sync. Used for the rook leg of
// castling.
func (b *Board) relocatePiece(from, to Square) {
	p := b.removePiece(from)
	b.addPiece(to, p)
}
