// Package protocol implements the UCI-style stdin/stdout adapter: it reads
// line-oriented commands, drives a search.Engine and a position.Board, and
// writes "info"/"bestmove" responses.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"mateline/eval"
	"mateline/notation"
	"mateline/position"
	"mateline/search"
)

const engineName = "mateline"
const engineAuthor = "the mateline project"

// Handler owns the engine and board state for one UCI session.
type Handler struct {
	Engine *search.Engine
	Board  *position.Board
	Out    io.Writer
}

// NewHandler builds a Handler with a fresh engine and the starting
// position, writing protocol output to out.
func NewHandler(out io.Writer) *Handler {
	h := &Handler{
		Engine: search.NewEngine(64),
		Board:  position.StartPosition(),
		Out:    out,
	}
	h.Engine.OnInfo = h.emitInfo
	return h
}

// Run reads commands from in until "quit" or EOF, dispatching each line.
// The search itself runs synchronously in this goroutine, matching the
// engine's single-threaded execution model: a "stop" line is only read
// after the running search has returned, and the next FindBestMove clears
// the flag search.Engine.Stop sets, so "stop" has no effect on any search.
func (h *Handler) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "uci":
			h.handleUCI()
		case "isready":
			fmt.Fprintln(h.Out, "readyok")
		case "ucinewgame":
			h.Engine.NewGame()
			h.Board = position.StartPosition()
		case "position":
			h.handlePosition(fields[1:])
		case "go":
			h.handleGo(fields[1:])
		case "stop":
			h.Engine.Stop()
		case "setoption":
			h.handleSetOption(fields[1:])
		case "quit":
			return nil
		default:
			fmt.Fprintf(h.Out, "info string unknown command %q\n", fields[0])
		}
	}
	return scanner.Err()
}

func (h *Handler) handleUCI() {
	fmt.Fprintf(h.Out, "id name %s\n", engineName)
	fmt.Fprintf(h.Out, "id author %s\n", engineAuthor)
	fmt.Fprintln(h.Out, "option name Hash type spin default 64 min 1 max 1024")
	for _, name := range eval.TunableWeightNames() {
		fmt.Fprintf(h.Out, "option name %s type spin default %d min -1000 max 1000\n", name, eval.TunableWeight(name))
	}
	fmt.Fprintln(h.Out, "uciok")
}

// handlePosition applies "position [startpos|fen <fen>] [moves ...]".
func (h *Handler) handlePosition(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(h.Out, "info string malformed position command")
		return
	}

	i := 0
	switch args[0] {
	case "startpos":
		h.Board = position.StartPosition()
		i = 1
	case "fen":
		var fenParts []string
		i = 1
		for i < len(args) && args[i] != "moves" {
			fenParts = append(fenParts, args[i])
			i++
		}
		if len(fenParts) == 0 {
			fmt.Fprintln(h.Out, "info string invalid fen position")
			return
		}
		b, err := position.ParseFEN(strings.Join(fenParts, " "))
		if err != nil {
			fmt.Fprintf(h.Out, "info string %v\n", err)
			return
		}
		h.Board = b
	default:
		fmt.Fprintln(h.Out, "info string invalid position subcommand")
		return
	}

	if i >= len(args) || args[i] != "moves" {
		return
	}
	for _, moveText := range args[i+1:] {
		m, err := notation.ParseUCI(h.Board, moveText)
		if err != nil {
			fmt.Fprintf(h.Out, "info string %v\n", err)
			return
		}
		if ok, _ := h.Board.MakeMove(m); !ok {
			fmt.Fprintf(h.Out, "info string move %s rejected as illegal\n", moveText)
			return
		}
	}
}

// handleGo parses "go [depth N] [movetime MS] [wtime MS] [btime MS]
// [winc MS] [binc MS] [infinite]" and runs the search.
func (h *Handler) handleGo(args []string) {
	var limits search.Limits
	var wtime, btime, winc, binc time.Duration

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			limits.Infinite = true
		case "depth":
			i++
			if i >= len(args) {
				fmt.Fprintln(h.Out, "info string malformed go option depth")
				return
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				fmt.Fprintln(h.Out, "info string malformed go option depth")
				return
			}
			limits.Depth = n
		case "movetime":
			i++
			ms, err := readMillis(args, i)
			if err != nil {
				fmt.Fprintln(h.Out, "info string malformed go option movetime")
				return
			}
			limits.MoveTime = ms
		case "wtime":
			i++
			ms, err := readMillis(args, i)
			if err == nil {
				wtime = ms
			}
		case "btime":
			i++
			ms, err := readMillis(args, i)
			if err == nil {
				btime = ms
			}
		case "winc":
			i++
			ms, err := readMillis(args, i)
			if err == nil {
				winc = ms
			}
		case "binc":
			i++
			ms, err := readMillis(args, i)
			if err == nil {
				binc = ms
			}
		}
	}

	if limits.MoveTime == 0 && limits.Depth == 0 && !limits.Infinite {
		if h.Board.SideToMove() == position.White {
			limits.Remaining, limits.Increment = wtime, winc
		} else {
			limits.Remaining, limits.Increment = btime, binc
		}
	}

	// No explicit depth: a clock governs the search on its own, a bare
	// movetime is capped well short of the engine's absolute ply limit, and
	// a "go" with none of those falls back to a fixed default depth.
	switch {
	case limits.Depth > 0 || limits.Infinite:
	case limits.MoveTime > 0 && limits.Remaining == 0:
		limits.Depth = 64
	case limits.Remaining == 0:
		limits.Depth = 6
	}

	best := h.Engine.FindBestMove(h.Board, limits)
	fmt.Fprintf(h.Out, "bestmove %s\n", notation.ToUCI(best))
}

func readMillis(args []string, i int) (time.Duration, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing value")
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Millisecond, nil
}

// handleSetOption implements a supplemented "setoption name <weight> value
// <n>" command for adjusting evaluation weights at runtime, in addition to
// the standard Hash option.
func (h *Handler) handleSetOption(args []string) {
	name, value, ok := parseSetOption(args)
	if !ok {
		fmt.Fprintln(h.Out, "info string malformed setoption command")
		return
	}
	if strings.EqualFold(name, "Hash") {
		if mb, err := strconv.Atoi(value); err == nil {
			h.Engine.TT = search.NewTable(mb)
		}
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintf(h.Out, "info string setoption value %q is not an integer\n", value)
		return
	}
	if !eval.SetTunableWeight(name, n) {
		fmt.Fprintf(h.Out, "info string unknown option %q\n", name)
	}
}

func parseSetOption(args []string) (name, value string, ok bool) {
	var nameParts, valueParts []string
	mode := ""
	for _, tok := range args {
		switch tok {
		case "name":
			mode = "name"
		case "value":
			mode = "value"
		default:
			switch mode {
			case "name":
				nameParts = append(nameParts, tok)
			case "value":
				valueParts = append(valueParts, tok)
			}
		}
	}
	if len(nameParts) == 0 || len(valueParts) == 0 {
		return "", "", false
	}
	return strings.Join(nameParts, " "), strings.Join(valueParts, " "), true
}

func (h *Handler) emitInfo(info search.Info) {
	nps := uint64(0)
	if info.Time > 0 {
		nps = uint64(float64(info.Nodes) / info.Time.Seconds())
	}
	pv := make([]string, len(info.PV))
	for i, m := range info.PV {
		pv[i] = notation.ToUCI(m)
	}
	fmt.Fprintf(h.Out, "info depth %d score cp %d nodes %d nps %d pv %s\n",
		info.Depth, info.Score, info.Nodes, nps, strings.Join(pv, " "))
}
