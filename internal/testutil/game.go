// Package testutil provides shared test utilities for the tinychess-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
)

// ParseTestPosition parses a FEN string and reports whether it succeeded.
// Use this for tests where parse failure is an acceptable outcome.
func ParseTestPosition(fen string) (chess.Position, bool) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return chess.Position{}, false
	}
	return pos, true
}

// MustPosition parses a FEN string and returns the position.
// It calls t.Fatal if parsing fails.
func MustPosition(t *testing.T, fen string) chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test FEN %q: %v", fen, err)
	}
	return pos
}

// MustReplay plays UCI moves from the given start position and returns the
// final position. It calls t.Fatal on the first illegal move.
func MustReplay(t *testing.T, start chess.Position, moves ...string) chess.Position {
	t.Helper()
	pos := start
	for i, text := range moves {
		move, err := engine.MoveFromUCI(&pos, text)
		if err != nil {
			t.Fatalf("replay ply %d %q: %v", i+1, text, err)
		}
		pos = engine.Apply(pos, move)
	}
	return pos
}
