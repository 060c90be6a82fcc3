package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromLetter(ch byte) (Piece, bool) {
	var color Color = White
	l := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
		l = ch - ('a' - 'A')
	}
	var pt PieceType
	switch l {
	case 'P':
		pt = Pawn
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return NoPiece, false
	}
	return MakePiece(color, pt), true
}

// ParseFEN parses the six standard FEN fields into a Board. It rejects
// malformed input without mutating any existing board (a fresh Board is
// only returned on success).
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("position: FEN needs at least 4 fields")
	}

	b := &Board{enPassantSquare: NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: FEN placement must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rankIndex := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				p, ok := pieceFromLetter(ch)
				if !ok {
					return nil, fmt.Errorf("position: FEN unrecognized piece character %q", ch)
				}
				if file >= 8 {
					return nil, errors.New("position: FEN rank overflows 8 files")
				}
				b.addPiece(MakeSquare(file, rankIndex), p)
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("position: FEN rank %d has %d files, want 8", 8-i, file)
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("position: FEN side to move must be 'w' or 'b', got %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				b.castlingRights |= WhiteKingside
			case 'Q':
				b.castlingRights |= WhiteQueenside
			case 'k':
				b.castlingRights |= BlackKingside
			case 'q':
				b.castlingRights |= BlackQueenside
			default:
				return nil, fmt.Errorf("position: FEN invalid castling character %q", ch)
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return nil, fmt.Errorf("position: FEN invalid en passant square %q", fields[3])
		}
		b.enPassantSquare = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("position: FEN invalid halfmove clock %q", fields[4])
		}
		b.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("position: FEN invalid fullmove number %q", fields[5])
		}
		b.fullmoveNumber = n
	} else {
		b.fullmoveNumber = 1
	}

	b.zobristKey = b.ComputeZobrist()
	return b, nil
}

// ToFEN emits the board in the same six-field grammar ParseFEN accepts.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[MakeSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
