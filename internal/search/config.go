// Package search chooses moves with iterative-deepening alpha-beta search,
// a small transposition table and a capture-only quiescence extension.
package search

// Search depth limits and defaults.
const (
	MinDepth = 1
	MaxDepth = 8

	DefaultMaxDepth        = 6
	DefaultNodeLimit       = 20000
	DefaultQuiescenceDepth = 8
)

// Config controls one search call.
type Config struct {
	// MaxDepth is the deepest iteration in plies, clamped to MinDepth..MaxDepth.
	MaxDepth int

	// NodeLimit caps the number of explored nodes. Zero means unlimited.
	NodeLimit int

	// QuiescenceDepth caps the capture extension in plies. Zero leaves it
	// bounded only by the node budget.
	QuiescenceDepth int

	// UseBook consults the opening book before searching.
	UseBook bool
}

// DefaultConfig returns the standard search settings.
func DefaultConfig() Config {
	return Config{
		MaxDepth:        DefaultMaxDepth,
		NodeLimit:       DefaultNodeLimit,
		QuiescenceDepth: DefaultQuiescenceDepth,
		UseBook:         true,
	}
}

// depthLimit returns MaxDepth clamped to the supported range.
func (c Config) depthLimit() int {
	switch {
	case c.MaxDepth < MinDepth:
		return MinDepth
	case c.MaxDepth > MaxDepth:
		return MaxDepth
	}
	return c.MaxDepth
}
