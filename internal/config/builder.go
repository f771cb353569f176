package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the maximum search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.MaxDepth = depth
	return b
}

// WithNodeLimit sets the node budget per computer move.
func (b *ConfigBuilder) WithNodeLimit(nodes int) *ConfigBuilder {
	b.cfg.Search.NodeLimit = nodes
	return b
}

// WithQuiescenceDepth sets the capture extension cap.
func (b *ConfigBuilder) WithQuiescenceDepth(depth int) *ConfigBuilder {
	b.cfg.Search.QuiescenceDepth = depth
	return b
}

// WithBook enables or disables the opening book.
func (b *ConfigBuilder) WithBook(enabled bool) *ConfigBuilder {
	b.cfg.Search.UseBook = enabled
	return b
}

// WithPlayers sets who plays each colour.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.Players.White = white
	b.cfg.Players.Black = black
	return b
}

// WithTheme sets the board colour theme.
func (b *ConfigBuilder) WithTheme(theme string) *ConfigBuilder {
	b.cfg.Output.Theme = theme
	return b
}

// WithUnicode selects glyph pieces.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON game records.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithHistoryFile sets the readline history file.
func (b *ConfigBuilder) WithHistoryFile(path string) *ConfigBuilder {
	b.cfg.HistoryFile = path
	return b
}
