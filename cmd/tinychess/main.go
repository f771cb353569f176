// tinychess is a terminal chess game against a small alpha-beta engine, with
// perft and one-shot search tools.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/config"
	"github.com/lgbarn/tinychess-go/internal/engine"
	"github.com/lgbarn/tinychess-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("tinychess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	start, err := startPosition(*startFEN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	context.AfterFunc(ctx, stop)

	switch {
	case *perftDepth > 0:
		err = runPerft(ctx, cfg.OutputFile, cfg, start, *perftDepth, *divide, *workers)
	case *bestMove:
		err = runBestMove(cfg.OutputFile, cfg, start)
	default:
		err = runGame(ctx, cfg, start)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startPosition parses fen, or returns the initial position when it is empty.
func startPosition(fen string) (chess.Position, error) {
	if fen == "" {
		return chess.StartPosition(), nil
	}
	return engine.NewPositionFromFEN(fen)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// runGame plays an interactive game and saves the record if -o was given.
// An interrupt ends the game early; the record is still saved.
func runGame(ctx context.Context, cfg *config.Config, start chess.Position) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	session := game.NewSession(cfg, start)
	a := newApp(cfg, session, cfg.OutputFile, interactive)

	var in lineReader
	if interactive {
		rl, err := newReadline(cfg, a.prompt())
		if err != nil {
			return err
		}
		in = rl
		fmt.Fprintf(cfg.OutputFile, "%s (%s). Type 'help' for commands.\n",
			paint(true, cyan, "tinychess "+programVersion), cfg.Players.Mode())
	} else {
		in = newScanReader(os.Stdin)
	}

	if err := runLoop(ctx, a, in); err != nil && ctx.Err() == nil {
		return err
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "game %s: %d plies, result %s\n", session.ID, len(session.Plies()), session.Result())
	}

	if *outputFile == "" {
		return nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	defer file.Close()
	return saveRecord(file, cfg, session)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: tinychess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal against a small alpha-beta engine.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nIn game, type 'help' for commands. Moves may be given as e2e4 or Nf3.\n")
}
