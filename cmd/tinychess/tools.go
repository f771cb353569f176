// tools.go - Perft and one-shot search modes
package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/config"
	"github.com/lgbarn/tinychess-go/internal/errors"
	"github.com/lgbarn/tinychess-go/internal/notation"
	"github.com/lgbarn/tinychess-go/internal/search"
	"github.com/lgbarn/tinychess-go/internal/worker"
)

// runPerft counts the move tree below pos and reports the total, and with
// divide the count below each root move.
func runPerft(ctx context.Context, w io.Writer, cfg *config.Config, pos chess.Position, depth int, divide bool, workers int) error {
	began := time.Now()
	result, err := worker.ParallelDivide(ctx, pos, depth, workers)
	if err != nil {
		return errors.Wrapf(err, "perft %d", depth)
	}
	elapsed := time.Since(began)

	if divide {
		for _, s := range result.Splits {
			fmt.Fprintf(w, "%s: %d\n", s.Move, s.Nodes)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Nodes searched: %d\n", result.Total)

	if cfg.Verbosity > 0 {
		nps := 0.0
		if secs := elapsed.Seconds(); secs > 0 {
			nps = float64(result.Total) / secs
		}
		fmt.Fprintf(cfg.LogFile, "perft %d: %d moves on %d workers, %s, %.0f nodes/s\n",
			depth, len(result.Splits), result.Workers, elapsed.Round(time.Millisecond), nps)
	}
	return nil
}

// runBestMove searches pos for the side to move and prints the choice in
// UCI style.
func runBestMove(w io.Writer, cfg *config.Config, pos chess.Position) error {
	depths := 0
	r := search.Search(pos, pos.ToMove, cfg.SearchConfig(), func() { depths++ })
	if !r.Found {
		return errors.Wrap(errors.ErrNoMove, "bestmove")
	}

	san, err := notation.SAN(&pos, r.Move)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "info %s\n", describeScore(r))
	fmt.Fprintf(w, "bestmove %s (%s)\n", r.Move, san)

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "progress callbacks: %d\n", depths)
	}
	return nil
}

// describeScore formats a search result as UCI info fields.
func describeScore(r search.Result) string {
	if r.FromBook {
		return "book"
	}
	score := fmt.Sprintf("score cp %d", r.Score)
	if r.IsMate() {
		plies := search.MateScore - r.Score
		if r.Score < 0 {
			plies = search.MateScore + r.Score
		}
		moves := (plies + 1) / 2
		if r.Score < 0 {
			moves = -moves
		}
		score = fmt.Sprintf("score mate %d", moves)
	}
	return fmt.Sprintf("depth %d %s nodes %d", r.Depth, score, r.Nodes)
}
