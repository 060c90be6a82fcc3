package position

// MoveFlags is the bit set attached to a Move: capture, double-pawn-push,
// en-passant, castle-KS, castle-QS, promotion.
type MoveFlags uint8

const (
	FlagCapture MoveFlags = 1 << iota
	FlagDoublePawnPush
	FlagEnPassant
	FlagCastleKS
	FlagCastleQS
	FlagPromotion
)

// Move carries from-square, to-square, moving piece, captured piece,
// promotion piece, and a flag set.
type Move struct {
	From      Square
	To        Square
	Moving    Piece
	Captured  Piece
	Promotion Piece
	Flags     MoveFlags
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return m.Flags&FlagCapture != 0 }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flags&FlagPromotion != 0 }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flags&FlagEnPassant != 0 }

// IsCastle reports whether the move is a castling move of either side.
func (m Move) IsCastle() bool { return m.Flags&(FlagCastleKS|FlagCastleQS) != 0 }

// IsQuiet reports whether the move is neither a capture nor a promotion —
// the class of move eligible for killer/history ordering and LMR.
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// String renders the move as coordinate notation, e.g. "e2e4" or "e7e8q",
// equivalent to ToUCI but kept for %v/debug convenience.
func (m Move) String() string {
	if m == (Move{}) {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(promotionLetter(m.Promotion.Type()))
	}
	return s
}

func promotionLetter(pt PieceType) byte {
	switch pt {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	default:
		return '?'
	}
}
