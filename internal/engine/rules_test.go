package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/tinychess-go/internal/chess"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustFEN(t, tt.fen)
			if got := HasInsufficientMaterial(&pos); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeDrawRules_Repetition(t *testing.T) {
	pos := chess.StartPosition()
	history := []chess.Position{pos}

	// Shuffle knights out and back four times: the start position recurs
	// five times in total.
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 4; i++ {
		for _, text := range shuffle {
			pos = play(t, pos, text)
			history = append(history, pos)
		}
		got := AnalyzeDrawRules(history)
		want := i == 3
		if got.Has5FoldRepetition != want {
			t.Errorf("after %d cycles Has5FoldRepetition = %v, want %v", i+1, got.Has5FoldRepetition, want)
		}
	}
}

func TestAnalyzeDrawRules_SeventyFiveMoves(t *testing.T) {
	quiet := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 149 100")
	if r := AnalyzeDrawRules([]chess.Position{quiet}); r.Has75MoveRule {
		t.Error("Has75MoveRule = true at 149 half-moves")
	}

	next := play(t, quiet, "a1a2")
	r := AnalyzeDrawRules([]chess.Position{quiet, next})
	if !r.Has75MoveRule {
		t.Error("Has75MoveRule = false at 150 half-moves")
	}
	if !r.Any() {
		t.Error("Any() = false with a draw rule set")
	}
}

func TestDrawRuleResult_Reasons(t *testing.T) {
	tests := []struct {
		name string
		r    DrawRuleResult
		want []string
	}{
		{name: "none", r: DrawRuleResult{}, want: nil},
		{name: "material", r: DrawRuleResult{HasInsufficientMaterial: true}, want: []string{"insufficient material"}},
		{name: "all", r: DrawRuleResult{Has75MoveRule: true, Has5FoldRepetition: true, HasInsufficientMaterial: true},
			want: []string{"fivefold repetition", "75-move rule", "insufficient material"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.r.Reasons()); diff != "" {
				t.Errorf("Reasons() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnalyzeDrawRules_Empty(t *testing.T) {
	if r := AnalyzeDrawRules(nil); r.Any() {
		t.Errorf("AnalyzeDrawRules(nil) = %+v, want zero", r)
	}
}
