package search

import "time"

// Limits describes how a search should decide when to stop. Depth caps
// iterative deepening outright; MoveTime is an absolute per-move budget
// used verbatim; the clock fields describe a game clock, from which a
// per-move budget is derived by a fixed safety-margin/moves-to-go rule.
type Limits struct {
	Depth     int
	MoveTime  time.Duration
	Remaining time.Duration
	Increment time.Duration
	Infinite  bool
}

const (
	safetyMarginDenominator = 20
	assumedMovesToGo        = 30
	minMoveTime             = 50 * time.Millisecond
)

// budgetFor computes the time budget for one move: the absolute form is
// used as given; the clock form subtracts a safety margin of one twentieth
// of the remaining time, divides what's left by an assumed 30 moves to go,
// and floors the result at 50ms.
func budgetFor(l Limits) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if l.Remaining <= 0 {
		return 0
	}
	safety := l.Remaining / safetyMarginDenominator
	usable := l.Remaining - safety
	perMove := usable / assumedMovesToGo
	if perMove < minMoveTime {
		perMove = minMoveTime
	}
	return perMove
}
