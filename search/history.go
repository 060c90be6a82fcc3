package search

import "mateline/position"

// HistoryTable scores quiet moves by how often they have produced a beta
// cutoff, indexed by side, from-square and to-square.
type HistoryTable struct {
	scores [2][64][64]int
}

// Add increments the history score for a quiet move that caused a beta
// cutoff, by depth-squared, per the search's history-update rule.
func (h *HistoryTable) Add(side position.Color, m position.Move, depth int) {
	h.scores[side][m.From][m.To] += depth * depth
}

// Score returns the current history score for a move.
func (h *HistoryTable) Score(side position.Color, m position.Move) int {
	return h.scores[side][m.From][m.To]
}

// Clear resets every entry.
func (h *HistoryTable) Clear() {
	h.scores = [2][64][64]int{}
}
