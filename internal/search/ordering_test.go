package search

import (
	"testing"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
	"github.com/lgbarn/tinychess-go/internal/testutil"
)

func mustMove(t *testing.T, pos *chess.Position, text string) chess.Move {
	t.Helper()
	m, err := engine.MoveFromUCI(pos, text)
	testutil.AssertNoError(t, err, text)
	return m
}

func TestMoveHeuristic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fen  string
		move string
		want int
	}{
		{name: "quiet move", fen: engine.InitialFEN, move: "g1f3", want: 0},
		{name: "pawn takes queen", fen: "4k3/8/8/3q4/4P3/8/8/3RK3 w - - 0 1", move: "e4d5", want: 900*10 - 100},
		{name: "rook takes queen", fen: "4k3/8/8/3q4/4P3/8/8/3RK3 w - - 0 1", move: "d1d5", want: 900*10 - 500},
		{name: "en passant", fen: "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", move: "e5d6", want: enPassantBonus},
		{name: "castling", fen: "4k3/8/8/8/8/8/8/4K2R w K - 0 1", move: "e1g1", want: castlingBonus},
		{name: "quiet promotion", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", move: "a7a8q", want: 900 + promotionBonus},
		{name: "capturing under-promotion", fen: "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", move: "a7b8n", want: 500*10 - 100 + 320 + promotionBonus},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustPosition(t, tt.fen)
			m := mustMove(t, &pos, tt.move)
			testutil.AssertEqual(t, moveHeuristic(&pos, m, chess.Move{}, false), tt.want)
		})
	}
}

func TestMoveHeuristic_HintOverrides(t *testing.T) {
	pos := testutil.MustPosition(t, "4k3/8/8/3q4/4P3/8/8/3RK3 w - - 0 1")
	capture := mustMove(t, &pos, "e4d5")
	quiet := mustMove(t, &pos, "e1f2")

	testutil.AssertEqual(t, moveHeuristic(&pos, quiet, quiet, true), hintScore)
	testutil.AssertEqual(t, moveHeuristic(&pos, capture, quiet, true), 900*10-100)
}

func TestSortMoves(t *testing.T) {
	pos := testutil.MustPosition(t, "4k3/8/8/3q4/4P3/8/8/3RK3 w - - 0 1")

	t.Run("descending", func(t *testing.T) {
		list := engine.GenerateLegalMoves(&pos)
		sortMoves(&pos, &list, chess.Move{}, false, true)
		testutil.AssertMoves(t, list.Moves()[:2], []string{"e4d5", "d1d5"})
	})

	t.Run("ascending", func(t *testing.T) {
		list := engine.GenerateLegalMoves(&pos)
		sortMoves(&pos, &list, chess.Move{}, false, false)
		n := list.Len()
		testutil.AssertMoves(t, list.Moves()[n-2:], []string{"d1d5", "e4d5"})
	})

	t.Run("hint first", func(t *testing.T) {
		list := engine.GenerateLegalMoves(&pos)
		hint := mustMove(t, &pos, "e1f1")
		sortMoves(&pos, &list, hint, true, true)
		testutil.AssertEqual(t, list.At(0), hint)
	})

	t.Run("stable for equal scores", func(t *testing.T) {
		start := chess.StartPosition()
		list := engine.GenerateLegalMoves(&start)
		var want []string
		for _, m := range list.Moves() {
			want = append(want, m.String())
		}
		sortMoves(&start, &list, chess.Move{}, false, true)
		testutil.AssertMoves(t, list.Moves(), want)
	})
}
