// Package book holds a small opening book of fixed move sequences, matched
// against a position by replaying each sequence from the initial position.
package book

import (
	"fmt"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
)

// Line is one named opening sequence in UCI move text, starting from the
// standard initial position.
type Line struct {
	Name  string
	Moves []string
}

// Book is an ordered set of lines. Earlier lines take priority.
type Book struct {
	lines []Line
}

// New creates a book from lines in priority order.
func New(lines ...Line) *Book {
	return &Book{lines: lines}
}

// DefaultBook returns the built-in opening lines.
func DefaultBook() *Book {
	return New(defaultLines...)
}

var defaultLines = []Line{
	{
		Name:  "Italian Game",
		Moves: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "c2c3", "g8f6", "d2d4", "e5d4", "c3d4", "c5b4"},
	},
	{
		Name:  "Ruy Lopez",
		Moves: []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5a4", "g8f6", "e1g1", "f8e7", "f1e1", "b7b5", "a4b3", "d7d6", "c2c3", "e8g8"},
	},
	{
		Name:  "Queen's Gambit Declined",
		Moves: []string{"d2d4", "d7d5", "c2c4", "e7e6", "b1c3", "g8f6", "c1g5", "f8e7", "e2e3", "e8g8", "g1f3", "b8d7"},
	},
	{
		Name:  "Sicilian Najdorf",
		Moves: []string{"e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4", "f3d4", "g8f6", "b1c3", "a7a6"},
	},
	{
		Name:  "Caro-Kann",
		Moves: []string{"e2e4", "c7c6", "d2d4", "d7d5", "b1c3", "d5e4", "c3e4", "c8f5", "e4g3", "f5g6"},
	},
}

// Lines returns the book's lines in priority order.
func (b *Book) Lines() []Line {
	return b.lines
}

// Move returns the book reply for pos. Each line is replayed from the
// initial position; when the replay before a recorded move equals pos, that
// move is the answer. The first matching line wins.
func (b *Book) Move(pos chess.Position) (chess.Move, bool) {
	for _, line := range b.lines {
		if m, ok := matchLine(line, pos); ok {
			return m, true
		}
	}
	return chess.Move{}, false
}

// Name returns the name of the first line passing through pos, including its
// final position.
func (b *Book) Name(pos chess.Position) (string, bool) {
	for _, line := range b.lines {
		replay := chess.StartPosition()
		if replay == pos {
			return line.Name, true
		}
		for _, text := range line.Moves {
			m, err := engine.MoveFromUCI(&replay, text)
			if err != nil {
				break
			}
			replay = engine.Apply(replay, m)
			if replay == pos {
				return line.Name, true
			}
		}
	}
	return "", false
}

// matchLine replays line looking for pos. A line that stops replaying is
// abandoned at that point.
func matchLine(line Line, pos chess.Position) (chess.Move, bool) {
	replay := chess.StartPosition()
	for _, text := range line.Moves {
		m, err := engine.MoveFromUCI(&replay, text)
		if err != nil {
			return chess.Move{}, false
		}
		if replay == pos {
			return m, true
		}
		replay = engine.Apply(replay, m)
	}
	return chess.Move{}, false
}

// Validate replays every line and reports the first move that does not apply.
func (b *Book) Validate() error {
	for _, line := range b.lines {
		replay := chess.StartPosition()
		for i, text := range line.Moves {
			m, err := engine.MoveFromUCI(&replay, text)
			if err != nil {
				return fmt.Errorf("book line %q ply %d: %w", line.Name, i+1, err)
			}
			replay = engine.Apply(replay, m)
		}
	}
	return nil
}
