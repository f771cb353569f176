package config

import "github.com/lgbarn/tinychess-go/internal/search"

// SearchSettings holds settings for the computer player's search.
type SearchSettings struct {
	// MaxDepth is the deepest iteration in plies
	MaxDepth int `validate:"min=1,max=8"`

	// NodeLimit caps explored nodes per move (0 = unlimited)
	NodeLimit int `validate:"min=0,max=100000000"`

	// QuiescenceDepth caps the capture extension (0 = budget only)
	QuiescenceDepth int `validate:"min=0,max=64"`

	// UseBook consults the opening book before searching
	UseBook bool
}

// NewSearchSettings creates SearchSettings with default values.
func NewSearchSettings() *SearchSettings {
	d := search.DefaultConfig()
	return &SearchSettings{
		MaxDepth:        d.MaxDepth,
		NodeLimit:       d.NodeLimit,
		QuiescenceDepth: d.QuiescenceDepth,
		UseBook:         d.UseBook,
	}
}

// SearchConfig converts the settings for the search package.
func (c *Config) SearchConfig() search.Config {
	return search.Config{
		MaxDepth:        c.Search.MaxDepth,
		NodeLimit:       c.Search.NodeLimit,
		QuiescenceDepth: c.Search.QuiescenceDepth,
		UseBook:         c.Search.UseBook,
	}
}
