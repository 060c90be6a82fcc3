package search

import (
	"testing"
	"time"

	"mateline/notation"
	"mateline/position"
)

func TestFindBestMoveMateInOne(t *testing.T) {
	b, err := position.ParseFEN("4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	e := NewEngine(1)
	move := e.FindBestMove(b, Limits{Depth: 3})

	san, err := notation.ToSAN(b, move)
	if err != nil {
		t.Fatalf("ToSAN: %v", err)
	}
	if san == "" || san[len(san)-1] != '#' {
		t.Fatalf("FindBestMove picked %v (SAN %q), want a mating move ending in #", move, san)
	}
}

func TestFindBestMoveStalemateHasNoMoves(t *testing.T) {
	b, err := position.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.InCheck(b.SideToMove()) {
		t.Fatal("stalemate position must not be in check")
	}
	if moves := b.GenerateLegalMoves(); len(moves) != 0 {
		t.Fatalf("GenerateLegalMoves() = %d moves, want 0 (stalemate)", len(moves))
	}
	if move := NewEngine(1).FindBestMove(b, Limits{Depth: 2}); move != (position.Move{}) {
		t.Fatalf("FindBestMove in stalemate = %v, want the zero move", move)
	}
}

func TestFindBestMoveIsRepeatable(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"

	b1, err := position.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	b2, err := position.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	e1 := NewEngine(1)
	e2 := NewEngine(1)

	m1 := e1.FindBestMove(b1, Limits{Depth: 4})
	m2 := e2.FindBestMove(b2, Limits{Depth: 4})

	if m1 != m2 {
		t.Fatalf("FindBestMove not repeatable: got %v and %v for the same position/depth", m1, m2)
	}
}

func TestFindBestMoveRespectsMoveTime(t *testing.T) {
	b := position.StartPosition()
	e := NewEngine(1)

	start := time.Now()
	move := e.FindBestMove(b, Limits{MoveTime: 100 * time.Millisecond})
	elapsed := time.Since(start)

	if move == (position.Move{}) {
		t.Fatal("FindBestMove returned the zero move from the start position")
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("FindBestMove took %v with a 100ms budget, want well under 500ms", elapsed)
	}
}
