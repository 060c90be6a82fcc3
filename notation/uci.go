// Package notation converts between Move values and the two textual move
// formats the engine needs: UCI coordinate notation for the protocol, and
// Standard Algebraic Notation for human-readable output.
package notation

import (
	"fmt"

	"mateline/position"
)

// ToUCI renders m as UCI coordinate notation: from-square, to-square, and a
// lowercase promotion letter when the move promotes.
func ToUCI(m position.Move) string {
	return m.String()
}

// ParseUCI parses UCI coordinate notation ("e2e4", "a7a8q") into the
// matching legal move of b. Returns an error if the text is malformed or
// does not name one of b's legal moves — the caller is expected to have
// already applied any preceding moves via MakeMove.
func ParseUCI(b *position.Board, text string) (position.Move, error) {
	if len(text) < 4 || len(text) > 5 {
		return position.Move{}, fmt.Errorf("notation: malformed UCI move %q", text)
	}
	from, ok := position.ParseSquare(text[0:2])
	if !ok {
		return position.Move{}, fmt.Errorf("notation: malformed UCI move %q", text)
	}
	to, ok := position.ParseSquare(text[2:4])
	if !ok {
		return position.Move{}, fmt.Errorf("notation: malformed UCI move %q", text)
	}
	var promo position.PieceType
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			promo = position.Queen
		case 'r':
			promo = position.Rook
		case 'b':
			promo = position.Bishop
		case 'n':
			promo = position.Knight
		default:
			return position.Move{}, fmt.Errorf("notation: unknown promotion letter %q", text[4])
		}
	}

	for _, m := range b.GenerateLegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() != (promo != position.NoPieceType) {
			continue
		}
		if m.IsPromotion() && m.Promotion.Type() != promo {
			continue
		}
		return m, nil
	}
	return position.Move{}, fmt.Errorf("notation: %q is not a legal move in this position", text)
}
