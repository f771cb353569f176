package search

import "github.com/lgbarn/tinychess-go/internal/chess"

// Bound describes how a stored score relates to the true value.
type Bound uint8

const (
	Exact Bound = iota // score is exact
	Lower              // true value >= score
	Upper              // true value <= score
)

// String returns the bound name.
func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	}
	return "unknown"
}

// Transposition table size; must be a power of two.
const (
	tableBits = 10
	TableSize = 1 << tableBits
	tableMask = TableSize - 1
)

type ttEntry struct {
	key     uint64
	depth   int
	score   int
	bound   Bound
	move    chess.Move
	hasMove bool
	used    bool
}

// table is a direct-mapped transposition table owned by a single search.
type table struct {
	entries [TableSize]ttEntry
}

// probe returns the entry stored for key, if any.
func (t *table) probe(key uint64) (ttEntry, bool) {
	e := t.entries[key&tableMask]
	if !e.used || e.key != key {
		return ttEntry{}, false
	}
	return e, true
}

// store writes an entry, replacing the slot if it holds another position or
// a result searched no deeper than this one.
func (t *table) store(key uint64, depth, score int, bound Bound, move chess.Move, hasMove bool) {
	slot := &t.entries[key&tableMask]
	if slot.used && slot.key == key && depth < slot.depth {
		return
	}
	*slot = ttEntry{
		key:     key,
		depth:   depth,
		score:   score,
		bound:   bound,
		move:    move,
		hasMove: hasMove,
		used:    true,
	}
}

// scoreToTT converts a root-relative mate score into a node-relative one.
func scoreToTT(score, ply int) int {
	switch {
	case score >= MateThreshold:
		return score + ply
	case score <= -MateThreshold:
		return score - ply
	}
	return score
}

// scoreFromTT converts a node-relative mate score back to root-relative.
func scoreFromTT(score, ply int) int {
	switch {
	case score >= MateThreshold:
		return score - ply
	case score <= -MateThreshold:
		return score + ply
	}
	return score
}
