package config

// Theme names for the board display.
const (
	ThemeOff   = "off"
	ThemeBrown = "brown"
	ThemeGreen = "green"
	ThemeGray  = "gray"
)

// OutputConfig holds settings related to board display and game records.
type OutputConfig struct {
	// Theme selects ANSI square colours (off, brown, green, gray)
	Theme string `validate:"oneof=off brown green gray"`

	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool

	// ShowSAN prints moves in standard algebraic notation
	ShowSAN bool

	// MaxLineLength is the maximum line length for PGN output
	MaxLineLength uint `validate:"min=20,max=255"`

	// JSONFormat writes game records as JSON instead of PGN
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Theme:         ThemeBrown,
		ShowSAN:       true,
		MaxLineLength: 80,
	}
}
