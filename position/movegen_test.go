package position

import "testing"

func TestPerftInitialPosition(t *testing.T) {
	b := StartPosition()
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := b.Perft(c.depth); got != c.want {
			t.Errorf("Perft(%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := b.Perft(1); got != 48 {
		t.Errorf("Perft(1) = %d, want 48", got)
	}
	if got := b.Perft(2); got != 2039 {
		t.Errorf("Perft(2) = %d, want 2039", got)
	}
}

func TestPerftDividesSumToTotal(t *testing.T) {
	b := StartPosition()
	div := b.PerftDivide(2)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := b.Perft(2); sum != want {
		t.Errorf("sum of PerftDivide(2) = %d, want %d", sum, want)
	}
	if len(div) != 20 {
		t.Errorf("PerftDivide(2) has %d root moves, want 20", len(div))
	}
}

func TestGenerateLegalMovesInitialCount(t *testing.T) {
	b := StartPosition()
	if got := len(b.GenerateLegalMoves()); got != 20 {
		t.Errorf("initial position: %d legal moves, want 20", got)
	}
}

func TestGenerateLegalCapturesOnlyReturnsCaptures(t *testing.T) {
	b, err := ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	caps := b.GenerateLegalCaptures()
	if len(caps) != 1 {
		t.Fatalf("expected exactly 1 legal capture (the en passant), got %d", len(caps))
	}
	if !caps[0].IsEnPassant() {
		t.Errorf("expected the sole capture to be en passant, got %v", caps[0])
	}
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	b, err := ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !b.InCheck(White) {
		t.Fatal("expected White to be in check (fool's mate)")
	}
	if len(b.GenerateLegalMoves()) != 0 {
		t.Error("expected no legal moves in checkmate")
	}
}

func TestStalemateHasNoLegalMovesAndNoCheck(t *testing.T) {
	b, err := ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.InCheck(Black) {
		t.Fatal("expected Black not to be in check")
	}
	if len(b.GenerateLegalMoves()) != 0 {
		t.Error("expected no legal moves in stalemate")
	}
}

func TestCastlingRequiresEmptyAndSafeSquares(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var sawKS, sawQS bool
	for _, m := range b.GenerateLegalMoves() {
		if m.Flags&FlagCastleKS != 0 {
			sawKS = true
		}
		if m.Flags&FlagCastleQS != 0 {
			sawQS = true
		}
	}
	if !sawKS || !sawQS {
		t.Errorf("expected both castling moves available, got KS=%v QS=%v", sawKS, sawQS)
	}

	// f1 is attacked by the rook on f2 and b1 is occupied by a knight, so
	// neither castling move may be generated.
	b, err = ParseFEN("r3k2r/8/8/8/8/8/5r2/RN2K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.IsCastle() {
			t.Errorf("castling %v generated with an attacked transit square or an occupied path", m)
		}
	}
}
