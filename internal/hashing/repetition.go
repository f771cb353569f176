package hashing

import (
	"github.com/lgbarn/tinychess-go/internal/chess"
)

// RepetitionTable counts how often each position has occurred.
type RepetitionTable struct {
	// counts maps a position key to its number of occurrences
	counts map[uint64]int
	// maxCount tracks the highest count seen
	maxCount int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[uint64]int),
	}
}

// Add records one occurrence of pos and returns how many times it has now
// been seen.
func (r *RepetitionTable) Add(pos *chess.Position) int {
	key := PositionKey(pos)
	r.counts[key]++
	n := r.counts[key]
	if n > r.maxCount {
		r.maxCount = n
	}
	return n
}

// Count returns how many times pos has been recorded.
func (r *RepetitionTable) Count(pos *chess.Position) int {
	return r.counts[PositionKey(pos)]
}

// MaxCount returns the highest occurrence count of any position.
func (r *RepetitionTable) MaxCount() int {
	return r.maxCount
}
