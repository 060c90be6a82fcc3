package notation

import (
	"testing"

	"mateline/position"
)

func TestUCIRoundTrip(t *testing.T) {
	b := position.StartPosition()
	for _, m := range b.GenerateLegalMoves() {
		text := ToUCI(m)
		got, err := ParseUCI(b, text)
		if err != nil {
			t.Fatalf("ParseUCI(%q): %v", text, err)
		}
		if got.From != m.From || got.To != m.To || got.Promotion != m.Promotion {
			t.Errorf("round-trip mismatch for %v: got %v", m, got)
		}
	}
}

func TestToSANCastling(t *testing.T) {
	b, err := position.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var ks, qs position.Move
	for _, m := range b.GenerateLegalMoves() {
		if m.Flags&position.FlagCastleKS != 0 {
			ks = m
		}
		if m.Flags&position.FlagCastleQS != 0 {
			qs = m
		}
	}
	if san, err := ToSAN(b, ks); err != nil || san != "O-O" {
		t.Errorf("ToSAN(kingside castle) = %q, %v, want \"O-O\"", san, err)
	}
	if san, err := ToSAN(b, qs); err != nil || san != "O-O-O" {
		t.Errorf("ToSAN(queenside castle) = %q, %v, want \"O-O-O\"", san, err)
	}
}

func TestToSANMateSuffix(t *testing.T) {
	b, err := position.ParseFEN("4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var mate position.Move
	found := false
	for _, m := range b.GenerateLegalMoves() {
		if m.To == position.SquareH8 {
			mate = m
			found = true
		}
	}
	if !found {
		t.Fatal("expected Rh8# to be a legal move")
	}
	san, err := ToSAN(b, mate)
	if err != nil {
		t.Fatalf("ToSAN: %v", err)
	}
	if san != "Rh8#" {
		t.Errorf("ToSAN(mating move) = %q, want \"Rh8#\"", san)
	}
}

func TestToSANPromotion(t *testing.T) {
	b, err := position.ParseFEN("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range b.GenerateLegalMoves() {
		if !m.IsPromotion() {
			continue
		}
		san, err := ToSAN(b, m)
		if err != nil {
			t.Fatalf("ToSAN: %v", err)
		}
		if san[len(san)-2] != '=' {
			t.Errorf("ToSAN(%v) = %q, want a trailing =<Piece>", m, san)
		}
	}
}
