// Package search implements iterative-deepening negamax with alpha-beta
// pruning, quiescence search, a transposition table, killer moves, history
// heuristic, null-move pruning and late-move reduction over the position
// package's move generator and the eval package's static evaluation.
package search

import "mateline/position"

// Node classification for a stored transposition-table score, per the
// negamax bookkeeping rules: an Exact score is the true minimax value, a
// LowerBound score failed high (a beta cutoff), an UpperBound score failed
// low (no move raised alpha).
type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// MateValue is the score magnitude assigned to a forced mate; scores near
// it are shifted by ply when stored so mate distance stays correct across
// searches that reach the same node from different root depths.
const MateValue = 30000

// mateScoreThreshold marks scores considered "near mate" for TT ply-shift
// adjustment.
const mateScoreThreshold = MateValue - 1024

// TTEntry is one transposition-table slot: hash, depth, best move, score
// and bound classification, with the score kept as a plain int and the
// mate-distance shift handled explicitly by ScoreToTT/ScoreFromTT rather
// than folded into narrower arithmetic.
type TTEntry struct {
	Hash  uint64
	Depth int
	Move  position.Move
	Score int
	Bound Bound
}

// Table is a fixed-capacity hash table of TTEntry, sized to a power of two
// so probing is a mask instead of a modulo, and laid out as one flat slice
// rather than a clustered bucket scheme.
type Table struct {
	entries []TTEntry
	mask    uint64
}

// NewTable allocates a table sized to approximately sizeMB megabytes.
func NewTable(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	const entrySize = 40 // approximate TTEntry footprint in bytes
	want := uint64(sizeMB) * 1024 * 1024 / entrySize
	capacity := uint64(1)
	for capacity < want {
		capacity <<= 1
	}
	if capacity == 0 {
		capacity = 1
	}
	return &Table{entries: make([]TTEntry, capacity), mask: capacity - 1}
}

// Clear resets every slot, called at the start of each top-level search per
// the requirement that TT/killers/history are cleared per search rather
// than kept as permanent global state across unrelated positions.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = TTEntry{}
	}
}

// Probe returns the entry for hash and whether it is present (a real
// key-matching entry, not a zero-value collision).
func (t *Table) Probe(hash uint64) (TTEntry, bool) {
	e := t.entries[hash&t.mask]
	if e.Hash != hash {
		return TTEntry{}, false
	}
	return e, true
}

// Store writes an entry, replacing the current occupant of its slot when
// the slot is empty, holds the same key, or holds a search no deeper than
// the new one — the replacement policy named for the transposition table.
func (t *Table) Store(entry TTEntry) {
	slot := &t.entries[entry.Hash&t.mask]
	if slot.Hash == 0 || slot.Hash == entry.Hash || slot.Depth <= entry.Depth {
		*slot = entry
	}
}

// ScoreToTT shifts a near-mate score away from the root by ply before
// storing, so two searches reaching the same node at different depths
// agree on the node's score.
func ScoreToTT(score, ply int) int {
	if score >= mateScoreThreshold {
		return score + ply
	}
	if score <= -mateScoreThreshold {
		return score - ply
	}
	return score
}

// ScoreFromTT reverses ScoreToTT when loading a stored score back into the
// current search.
func ScoreFromTT(score, ply int) int {
	if score >= mateScoreThreshold {
		return score - ply
	}
	if score <= -mateScoreThreshold {
		return score + ply
	}
	return score
}
