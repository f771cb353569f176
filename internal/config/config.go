// Package config provides configuration for tinychess.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Search settings used for computer moves
	Search SearchSettings

	// Who plays each colour
	Players PlayersConfig

	// Board display and game record output
	Output OutputConfig

	// 0=nothing, 1=game summary, 2=running commentary
	Verbosity int `validate:"min=0,max=2"`

	// Readline history file; empty disables history
	HistoryFile string `validate:"omitempty,max=4096"`

	// Output streams
	OutputFile io.Writer `validate:"-"`
	LogFile    io.Writer `validate:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     *NewSearchSettings(),
		Players:    *NewPlayersConfig(),
		Output:     *NewOutputConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer used for boards and game records.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer used for log messages.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}
