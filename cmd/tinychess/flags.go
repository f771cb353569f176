// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/tinychess-go/internal/config"
	"github.com/lgbarn/tinychess-go/internal/search"
)

var (
	// Players
	whitePlayer = flag.String("white", string(config.Human), "White player: human or computer")
	blackPlayer = flag.String("black", string(config.Computer), "Black player: human or computer")
	startFEN    = flag.String("fen", "", "Start from this FEN position instead of the initial position")

	// Search
	searchDepth     = flag.Int("depth", search.DefaultMaxDepth, "Maximum search depth in plies (1-8)")
	nodeLimit       = flag.Int("nodes", search.DefaultNodeLimit, "Node budget per computer move (0 = unlimited)")
	quiescenceDepth = flag.Int("qdepth", search.DefaultQuiescenceDepth, "Capture extension cap in plies (0 = budget only)")
	noBook          = flag.Bool("nobook", false, "Don't use the opening book")

	// Display
	theme       = flag.String("theme", config.ThemeBrown, "Board theme: off, brown, green, gray")
	unicode     = flag.Bool("unicode", false, "Draw pieces with chess glyphs")
	historyFile = flag.String("history", "", "Readline history file")

	// Game records
	outputFile = flag.String("o", "", "Write the finished game record to this file")
	jsonOutput = flag.Bool("J", false, "Write game records in JSON format")
	lineLength = flag.Int("w", 80, "Maximum PGN line length")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 summary, 2 commentary")
	logFile   = flag.String("log", "", "Write log messages to this file (default: stderr)")

	// Tools
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to depth N and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 0, "Perft worker goroutines (0 = one per CPU)")
	bestMove   = flag.Bool("bestmove", false, "Print the computer's move for the start or -fen position and exit")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg and validates the result.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	applySearchFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	cfg.HistoryFile = *historyFile
	return cfg.Validate()
}

func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return err
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return err
	}
	cfg.Players.White = white
	cfg.Players.Black = black
	return nil
}

func applySearchFlags(cfg *config.Config) {
	cfg.Search.MaxDepth = *searchDepth
	cfg.Search.NodeLimit = *nodeLimit
	cfg.Search.QuiescenceDepth = *quiescenceDepth
	cfg.Search.UseBook = !*noBook
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Theme = *theme
	cfg.Output.Unicode = *unicode
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}
