package protocol

import (
	"bytes"
	"strings"
	"testing"

	"mateline/eval"
)

func TestHandleUCIPrintsIdentityAndOptions(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(&out)
	if err := h.Run(strings.NewReader("uci\nquit\n")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "id name "+engineName) {
		t.Errorf("missing id name line, got %q", text)
	}
	if !strings.Contains(text, "uciok") {
		t.Errorf("missing uciok line, got %q", text)
	}
	if !strings.Contains(text, "option name Hash") {
		t.Errorf("missing Hash option, got %q", text)
	}
	if !strings.Contains(text, "option name IsolatedPawnMG") {
		t.Errorf("missing tunable weight option, got %q", text)
	}
}

func TestIsReadyRespondsReadyok(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(&out)
	if err := h.Run(strings.NewReader("isready\nquit\n")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(out.String()) != "readyok" {
		t.Errorf("got %q, want \"readyok\"", out.String())
	}
}

func TestGoDepthReturnsBestmove(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(&out)
	cmds := "position fen 4k3/8/4K3/8/8/8/8/7R w - - 0 1\ngo depth 3\nquit\n"
	if err := h.Run(strings.NewReader(cmds)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "bestmove ") {
		t.Errorf("expected a bestmove line, got %q", out.String())
	}
}

func TestPositionWithMovesAppliesThem(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(&out)
	cmds := "position startpos moves e2e4 e7e5\nquit\n"
	if err := h.Run(strings.NewReader(cmds)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "info string") {
		t.Errorf("expected the moves to apply cleanly, got %q", out.String())
	}
	if h.Board.FullmoveNumber() != 2 {
		t.Errorf("FullmoveNumber() = %d, want 2 after e4 e5", h.Board.FullmoveNumber())
	}
}

func TestSetOptionUpdatesTunableWeight(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(&out)
	cmds := "setoption name IsolatedPawnMG value 42\nquit\n"
	if err := h.Run(strings.NewReader(cmds)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no diagnostic output, got %q", out.String())
	}
	if got := eval.TunableWeight("IsolatedPawnMG"); got != 42 {
		t.Errorf("TunableWeight(IsolatedPawnMG) = %d after setoption, want 42", got)
	}
}

func TestSetOptionUnknownNameReportsInfoString(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(&out)
	cmds := "setoption name NotARealWeight value 1\nquit\n"
	if err := h.Run(strings.NewReader(cmds)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "info string") {
		t.Errorf("expected an info string diagnostic, got %q", out.String())
	}
}
