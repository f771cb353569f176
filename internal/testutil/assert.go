// Package testutil provides shared test utilities for the tinychess-go project.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected error but got nil")
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q should not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, msgAndArgs, "expected false but got true")
	}
}

// AssertPosition fails if got and want differ in any field. The report
// shows both positions as FEN followed by the field diff.
func AssertPosition(t *testing.T, got, want chess.Position, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	fail(t, msgAndArgs, "position mismatch\n got: %s\nwant: %s\n(-want +got):\n%s",
		engine.PositionToFEN(&got), engine.PositionToFEN(&want), cmp.Diff(want, got))
}

// AssertMoves fails unless got holds exactly the UCI moves in want, in order.
func AssertMoves(t *testing.T, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	uci := make([]string, 0, len(got))
	for _, m := range got {
		uci = append(uci, m.String())
	}
	if want == nil {
		want = []string{}
	}
	if diff := cmp.Diff(want, uci); diff != "" {
		fail(t, msgAndArgs, "moves mismatch (-want +got):\n%s", diff)
	}
}

// fail reports a failure, prefixed with the caller's message when given.
func fail(t *testing.T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Error(text)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
