package search

import (
	"time"

	"mateline/eval"
	"mateline/position"
)

// evaluatePosition is the one seam between search and eval, kept as a
// package-level indirection so search_test.go can substitute a stub
// evaluation without depending on eval's tuning.
var evaluatePosition = eval.Evaluate

// Info is one iteration's progress report, handed to whatever OnInfo
// callback the caller installed — the protocol adapter turns these into
// UCI "info" lines.
type Info struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []position.Move
}

// Engine owns the per-search state: the transposition table, killer moves
// and history heuristic, all cleared at the start of every FindBestMove
// call, so more than one search session can run independently rather than
// sharing static storage.
type Engine struct {
	TT      *Table
	killers KillerTable
	history HistoryTable

	OnInfo func(Info)

	nodes    uint64
	deadline time.Time
	stopped  bool
	start    time.Time
}

// NewEngine allocates an Engine with a transposition table of the given
// size in megabytes.
func NewEngine(ttSizeMB int) *Engine {
	return &Engine{TT: NewTable(ttSizeMB)}
}

// NewGame clears all per-game state: transposition table, killers and
// history, per the requirement that these are cleared at the entry of each
// top-level search.
func (e *Engine) NewGame() {
	e.TT.Clear()
	e.killers.Clear()
	e.history.Clear()
}

func (e *Engine) timeUp() bool {
	if e.stopped {
		return true
	}
	if !e.deadline.IsZero() && time.Now().After(e.deadline) {
		e.stopped = true
	}
	return e.stopped
}

// Stop requests cooperative termination of an in-progress search; the
// running search notices at its next node entry and unwinds.
func (e *Engine) Stop() { e.stopped = true }

// FindBestMove runs iterative deepening from the current position of b up
// to limits.Depth (or until the time budget in limits expires), and returns
// the best move found. If no iteration completes even the first move
// found, the first legal move is returned; b is left unmodified.
func (e *Engine) FindBestMove(b *position.Board, limits Limits) position.Move {
	e.nodes = 0
	e.stopped = false
	e.start = time.Now()
	e.TT.Clear()
	e.killers.Clear()
	e.history.Clear()

	if budget := budgetFor(limits); budget > 0 {
		e.deadline = e.start.Add(budget)
	} else {
		e.deadline = time.Time{}
	}

	legal := b.GenerateLegalMoves()
	if len(legal) == 0 {
		return position.Move{}
	}
	best := legal[0]

	maxDepth := limits.Depth
	if maxDepth <= 0 {
		maxDepth = MaxPly
	}

	for depth := 1; depth <= maxDepth; depth++ {
		orderMoves(legal, best, e.killers, 0, &e.history, b.SideToMove())

		score, iterBest, completed := e.searchRoot(b, legal, depth)
		if !completed {
			break
		}
		best = iterBest

		if e.OnInfo != nil {
			e.OnInfo(Info{
				Depth: depth,
				Score: score,
				Nodes: e.nodes,
				Time:  time.Since(e.start),
				PV:    []position.Move{best},
			})
		}
		if e.timeUp() {
			break
		}
	}
	return best
}

// searchRoot performs one full-window root search over legal, already
// ordered so the previous iteration's best move is tried first.
func (e *Engine) searchRoot(b *position.Board, legal []position.Move, depth int) (score int, best position.Move, completed bool) {
	alpha, beta := -MateValue-1, MateValue+1
	best = legal[0]
	bestScore := -MateValue - 1

	for _, m := range legal {
		ok, undo := b.MakeMove(m)
		if !ok {
			continue
		}
		s := -e.negamax(b, depth-1, -beta, -alpha, 1, m)
		b.UnmakeMove(undo)

		if e.stopped {
			return bestScore, best, false
		}
		if s > bestScore {
			bestScore = s
			best = m
		}
		if s > alpha {
			alpha = s
		}
	}
	return bestScore, best, true
}

// negamax is the recursive search core: alpha-beta with TT probing, null
// move pruning, move ordering, extensions and late-move reduction, exactly
// following the search algorithm.
func (e *Engine) negamax(b *position.Board, depth, alpha, beta, ply int, prevMove position.Move) int {
	e.nodes++
	if e.timeUp() {
		return evaluatePosition(b)
	}
	if depth <= 0 {
		return e.quiescence(b, alpha, beta, ply)
	}

	origAlpha := alpha
	hash := b.Hash()
	var ttMove position.Move
	if entry, ok := e.TT.Probe(hash); ok {
		ttMove = entry.Move
		if entry.Depth >= depth {
			score := ScoreFromTT(entry.Score, ply)
			switch entry.Bound {
			case Exact:
				return score
			case LowerBound:
				if score > alpha {
					alpha = score
				}
			case UpperBound:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	inCheck := b.InCheck(b.SideToMove())

	if !inCheck && depth >= 3 && hasNonPawnMaterial(b, b.SideToMove()) {
		nullUndo := b.MakeNullMove()
		nullScore := -e.negamax(b, depth-3, -beta, -beta+1, ply+1, position.Move{})
		b.UnmakeNullMove(nullUndo)
		if e.stopped {
			return alpha
		}
		if nullScore >= beta {
			return beta
		}
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -(MateValue - ply)
		}
		return 0
	}
	orderMoves(moves, ttMove, e.killers, ply, &e.history, b.SideToMove())

	var bestMove position.Move
	bestScore := -MateValue - 1

	for i, m := range moves {
		gives := b.GivesCheck(m)
		isRecap := isRecapture(m, prevMove)
		isPawnPush := isPassedPawnPush(b, m)

		ok, undo := b.MakeMove(m)
		if !ok {
			continue
		}

		extension := 0
		if gives || isPawnPush || isRecap {
			extension = 1
		}
		nextDepth := depth - 1 + extension

		if m.IsQuiet() && depth >= 3 && i >= 4 && extension == 0 && m != ttMove {
			nextDepth--
		}

		score := -e.negamax(b, nextDepth, -beta, -alpha, ply+1, m)
		b.UnmakeMove(undo)

		if e.stopped {
			return alpha
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				if m.IsQuiet() {
					e.killers.Insert(m, ply)
					e.history.Add(b.SideToMove(), m, depth)
				}
				break
			}
		}
	}

	bound := Exact
	switch {
	case bestScore <= origAlpha:
		bound = UpperBound
	case bestScore >= beta:
		bound = LowerBound
	}
	e.TT.Store(TTEntry{
		Hash:  hash,
		Depth: depth,
		Move:  bestMove,
		Score: ScoreToTT(bestScore, ply),
		Bound: bound,
	})

	return bestScore
}

// hasNonPawnMaterial reports whether c has any piece besides pawns and the
// king — null-move pruning is unsafe (zugzwang-prone) without it.
func hasNonPawnMaterial(b *position.Board, c position.Color) bool {
	bb := b.Bitboards(c)
	return bb.Knights|bb.Bishops|bb.Rooks|bb.Queens != 0
}

// isRecapture reports whether m recaptures on the same square the previous
// move landed on, per the recapture-extension rule.
func isRecapture(m, prevMove position.Move) bool {
	return m.IsCapture() && prevMove.To == m.To && prevMove.From != prevMove.To
}

// isPassedPawnPush reports whether m is a non-capturing pawn move to a
// square with no enemy pawn on its file or the adjacent files strictly
// ahead in the direction of motion, per the passed-pawn-push extension
// rule.
func isPassedPawnPush(b *position.Board, m position.Move) bool {
	if m.Moving.Type() != position.Pawn || m.IsCapture() {
		return false
	}
	c := m.Moving.Color()
	enemyPawns := b.Bitboards(c.Opposite()).Pawns
	file := m.To.File()
	rank := m.To.Rank()

	span := aheadFileMask(file, rank, c)
	if file > 0 {
		span |= aheadFileMask(file-1, rank, c)
	}
	if file < 7 {
		span |= aheadFileMask(file+1, rank, c)
	}
	return enemyPawns&span == 0
}

func aheadFileMask(file, rank int, c position.Color) uint64 {
	var mask uint64
	if c == position.White {
		for r := rank + 1; r < 8; r++ {
			mask |= uint64(1) << uint(r*8+file)
		}
	} else {
		for r := rank - 1; r >= 0; r-- {
			mask |= uint64(1) << uint(r*8+file)
		}
	}
	return mask
}
