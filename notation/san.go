package notation

import (
	"fmt"
	"strings"

	"mateline/position"
)

var sanPieceLetter = map[position.PieceType]byte{
	position.Knight: 'N',
	position.Bishop: 'B',
	position.Rook:   'R',
	position.Queen:  'Q',
	position.King:   'K',
}

// ToSAN renders m, played from position b (before the move), in Standard
// Algebraic Notation. It applies m to b to determine the check/checkmate
// suffix and restores b before returning, so b is left unmodified. Returns
// an error if making m leaves the mover's own king attacked; m is not
// otherwise checked against b's legal moves.
func ToSAN(b *position.Board, m position.Move) (string, error) {
	if m.IsCastle() {
		base := "O-O"
		if m.Flags&position.FlagCastleQS != 0 {
			base = "O-O-O"
		}
		suffix, err := checkSuffix(b, m)
		if err != nil {
			return "", err
		}
		return base + suffix, nil
	}

	var sb strings.Builder

	pieceType := m.Moving.Type()
	if pieceType != position.Pawn {
		sb.WriteByte(sanPieceLetter[pieceType])
		sb.WriteString(disambiguation(b, m))
	} else if m.IsCapture() {
		sb.WriteByte('a' + byte(m.From.File()))
	}

	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(sanPieceLetter[m.Promotion.Type()])
	}

	suffix, err := checkSuffix(b, m)
	if err != nil {
		return "", err
	}
	sb.WriteString(suffix)
	return sb.String(), nil
}

// disambiguation returns the file, rank, or both needed to distinguish m
// from other legal moves of the same piece type landing on the same
// destination square: file is preferred, then rank, then both if neither
// alone disambiguates.
func disambiguation(b *position.Board, m position.Move) string {
	var sameFile, sameRank bool
	var others int

	for _, other := range b.GenerateLegalMoves() {
		if other.From == m.From || other.Moving.Type() != m.Moving.Type() || other.To != m.To {
			continue
		}
		others++
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if others == 0 {
		return ""
	}
	switch {
	case !sameFile:
		return string([]byte{'a' + byte(m.From.File())})
	case !sameRank:
		return string([]byte{'1' + byte(m.From.Rank())})
	default:
		return m.From.String()
	}
}

// checkSuffix applies m to b, inspects whether the opponent is left in
// check or checkmate, then undoes m so b is unchanged.
func checkSuffix(b *position.Board, m position.Move) (string, error) {
	ok, undo := b.MakeMove(m)
	if !ok {
		return "", fmt.Errorf("notation: %v is not legal in this position", m)
	}
	defer b.UnmakeMove(undo)

	mover := b.SideToMove()
	if !b.InCheck(mover) {
		return "", nil
	}
	if len(b.GenerateLegalMoves()) == 0 {
		return "#", nil
	}
	return "+", nil
}
