// Package errors provides sentinel errors and error types for tinychess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveText indicates move text that could not be parsed at all.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move was requested after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn indicates a human move was submitted on a computer turn,
	// or the reverse.
	ErrNotYourTurn = errors.New("not this player's turn")

	// ErrNoMove indicates the search produced no move.
	ErrNoMove = errors.New("no move available")
)

// MoveError wraps errors with game context, including the ply number,
// the move text and the position it was played from. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // Ply number where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	FEN      string // Position the move was attempted in (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error for FEN or move text, with the field
// and the offending input.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Which part of the input was being parsed
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with field and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target. It forwards to
// the standard library so callers importing this package need not import both.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
