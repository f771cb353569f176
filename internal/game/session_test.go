package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/config"
	"github.com/lgbarn/tinychess-go/internal/errors"
	"github.com/lgbarn/tinychess-go/internal/output"
	"github.com/lgbarn/tinychess-go/internal/testutil"
)

func newTestSession(t *testing.T, white, black config.PlayerKind, fen string) (*Session, *bytes.Buffer) {
	t.Helper()
	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithPlayers(white, black).
		WithDepth(2).
		WithNodeLimit(5000).
		WithLog(log).
		WithVerbosity(2).
		Build()

	start := chess.StartPosition()
	if fen != "" {
		start = testutil.MustPosition(t, fen)
	}
	return NewSession(cfg, start), log
}

func playAll(t *testing.T, s *Session, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if _, err := s.PlayText(text); err != nil {
			t.Fatalf("PlayText(%q) error: %v", text, err)
		}
	}
}

func TestNewSession(t *testing.T) {
	s, log := newTestSession(t, config.Human, config.Computer, "")

	_, err := uuid.Parse(s.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Status(), Ongoing)
	testutil.AssertEqual(t, len(s.History()), 1)
	testutil.AssertFalse(t, s.IsComputerTurn())
	testutil.AssertEqual(t, s.Player(chess.Black).Kind, config.Computer)
	testutil.AssertTrue(t, s.Player(chess.White).ID != s.Player(chess.Black).ID)
	testutil.AssertContains(t, log.String(), "human-vs-computer")

	_, ok := s.LastMove()
	testutil.AssertFalse(t, ok)
}

func TestPlayText_UCIAndSAN(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Human, "")
	playAll(t, s, "e2e4", "e5", "Nf3", "b8c6", "Bb5")

	var sans []string
	for _, p := range s.Plies() {
		sans = append(sans, p.SAN)
	}
	testutil.AssertEqual(t, sans, []string{"e4", "e5", "Nf3", "Nc6", "Bb5"})

	last, ok := s.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last.String(), "f1b5")
	testutil.AssertEqual(t, s.Position().ToMove, chess.Black)
	testutil.AssertMoves(t, s.Moves(), []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"})
}

func TestPlayText_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{name: "garbage", text: "zz", want: errors.ErrInvalidMoveText},
		{name: "illegal uci", text: "e2e5", want: errors.ErrIllegalMove},
		{name: "illegal san", text: "Qh5", want: errors.ErrInvalidMoveText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, config.Human, config.Human, "")
			_, err := s.PlayText(tt.text)
			testutil.AssertTrue(t, errors.Is(err, tt.want), "got %v", err)

			var moveErr *errors.MoveError
			testutil.AssertTrue(t, errors.As(err, &moveErr))
			testutil.AssertEqual(t, moveErr.Ply, 1)
			testutil.AssertEqual(t, moveErr.MoveText, tt.text)
			testutil.AssertEqual(t, len(s.Plies()), 0)
		})
	}
}

func TestPlayMove_Illegal(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Human, "")
	err := s.PlayMove(chess.NewMove(chess.E1, chess.E8))
	testutil.AssertTrue(t, errors.Is(err, errors.ErrIllegalMove), "got %v", err)
}

func TestTurnOrder(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Computer, "")

	_, err := s.RunComputer(nil)
	testutil.AssertTrue(t, errors.Is(err, errors.ErrNotYourTurn), "computer moved on a human turn: %v", err)

	playAll(t, s, "e2e4")
	testutil.AssertTrue(t, s.IsComputerTurn())

	_, err = s.PlayText("e7e5")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrNotYourTurn), "human moved on a computer turn: %v", err)
}

func TestRunComputer(t *testing.T) {
	s, log := newTestSession(t, config.Human, config.Computer, "")
	playAll(t, s, "e2e4")

	r, err := s.RunComputer(nil)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, r.FromBook)
	testutil.AssertEqual(t, r.Move.String(), "e7e5")

	plies := s.Plies()
	testutil.AssertTrue(t, plies[1].Computer)
	testutil.AssertTrue(t, plies[1].FromBook)
	testutil.AssertEqual(t, plies[1].Colour, chess.Black)
	testutil.AssertContains(t, log.String(), "Black plays e7e5")
}

func TestRunComputer_Searches(t *testing.T) {
	s, _ := newTestSession(t, config.Computer, config.Human, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")

	calls := 0
	r, err := s.RunComputer(func() { calls++ })
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, r.FromBook)
	testutil.AssertEqual(t, r.Move.String(), "a1a8")
	testutil.AssertTrue(t, calls > 0)
	testutil.AssertEqual(t, s.Status(), Checkmate)
	testutil.AssertEqual(t, s.Result(), output.WhiteWins)
	testutil.AssertEqual(t, s.Plies()[0].SAN, "Ra8#")
}

func TestCheckmateEndsGame(t *testing.T) {
	s, log := newTestSession(t, config.Human, config.Human, "")
	playAll(t, s, "f2f3", "e7e5", "g2g4", "Qh4")

	testutil.AssertEqual(t, s.Status(), Checkmate)
	testutil.AssertEqual(t, s.Result(), output.BlackWins)
	testutil.AssertTrue(t, s.IsCheckmated(chess.White))
	testutil.AssertFalse(t, s.IsCheckmated(chess.Black))
	testutil.AssertContains(t, log.String(), "checkmate after 4 plies (0-1)")

	_, err := s.PlayText("e2e4")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrGameOver), "got %v", err)
}

func TestStalemate(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Human, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	testutil.AssertEqual(t, s.Status(), Stalemate)
	testutil.AssertEqual(t, s.Result(), output.Draw)
	testutil.AssertFalse(t, s.IsCheckmated(chess.Black))
}

func TestUndo(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Human, "")
	playAll(t, s, "e2e4", "e7e5", "g1f3")

	testutil.AssertNoError(t, s.Undo(2))
	testutil.AssertEqual(t, len(s.Plies()), 1)
	testutil.AssertPosition(t, s.Position(), testutil.MustReplay(t, chess.StartPosition(), "e2e4"))

	err := s.Undo(5)
	testutil.AssertTrue(t, errors.Is(err, errors.ErrNoMove), "got %v", err)
	err = s.Undo(0)
	testutil.AssertTrue(t, errors.Is(err, errors.ErrNoMove), "got %v", err)
	testutil.AssertEqual(t, len(s.Plies()), 1)
}

func TestUndoTurn(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Computer, "")
	playAll(t, s, "e2e4")
	_, err := s.RunComputer(nil)
	testutil.AssertNoError(t, err)

	n, err := s.UndoTurn()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 2)
	testutil.AssertPosition(t, s.Position(), chess.StartPosition())
	testutil.AssertFalse(t, s.IsComputerTurn())

	_, err = s.UndoTurn()
	testutil.AssertError(t, err)
}

func TestCandidateMoves(t *testing.T) {
	t.Run("promotion", func(t *testing.T) {
		s, _ := newTestSession(t, config.Human, config.Human, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
		c := s.CandidateMoves(chess.MakeSquare(0, 6), chess.A8)

		testutil.AssertTrue(t, c.Found())
		testutil.AssertFalse(t, c.HasNormal)
		testutil.AssertTrue(t, c.NeedsPromotionChoice())

		var kinds []chess.PieceKind
		for _, m := range c.Promotions {
			kinds = append(kinds, m.Promotion)
		}
		testutil.AssertEqual(t, kinds, []chess.PieceKind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen})

		m, ok := c.Promotion(chess.Knight)
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, m.String(), "a7a8n")
	})

	t.Run("ordinary", func(t *testing.T) {
		s, _ := newTestSession(t, config.Human, config.Human, "")
		c := s.CandidateMoves(chess.MakeSquare(4, 1), chess.MakeSquare(4, 3))

		testutil.AssertTrue(t, c.HasNormal)
		testutil.AssertFalse(t, c.NeedsPromotionChoice())
		testutil.AssertEqual(t, c.Normal.String(), "e2e4")
		_, ok := c.Promotion(chess.Queen)
		testutil.AssertFalse(t, ok)
	})

	t.Run("none", func(t *testing.T) {
		s, _ := newTestSession(t, config.Human, config.Human, "")
		c := s.CandidateMoves(chess.MakeSquare(4, 1), chess.MakeSquare(4, 4))
		testutil.AssertFalse(t, c.Found())
	})
}

func TestMaterial(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Human, "")
	white, black := s.MaterialScores()
	testutil.AssertEqual(t, white, 37)
	testutil.AssertEqual(t, black, 37)

	s, _ = newTestSession(t, config.Human, config.Human, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	testutil.AssertEqual(t, s.MaterialDiff(chess.White), -4)
	testutil.AssertEqual(t, s.MaterialDiff(chess.Black), 4)

	playAll(t, s, "d1d5")
	testutil.AssertEqual(t, s.MaterialDiff(chess.White), 5)
}

func TestHumanFocus(t *testing.T) {
	tests := []struct {
		white, black config.PlayerKind
		want         chess.Colour
		ok           bool
	}{
		{white: config.Human, black: config.Computer, want: chess.White, ok: true},
		{white: config.Computer, black: config.Human, want: chess.Black, ok: true},
		{white: config.Human, black: config.Human, want: chess.White, ok: true},
		{white: config.Computer, black: config.Computer, want: chess.White, ok: false},
	}

	for _, tt := range tests {
		s, _ := newTestSession(t, tt.white, tt.black, "")
		got, ok := s.HumanFocus()
		testutil.AssertEqual(t, got, tt.want)
		testutil.AssertEqual(t, ok, tt.ok)
	}
}

func TestDrawRules(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Human, "")
	testutil.AssertFalse(t, s.DrawRules().Any())

	for i := 0; i < 4; i++ {
		playAll(t, s, "g1f3", "g8f6", "f3g1", "f6g8")
	}
	rules := s.DrawRules()
	testutil.AssertTrue(t, rules.Has5FoldRepetition)
	testutil.AssertEqual(t, s.Repetitions(), 5)
	testutil.AssertEqual(t, s.Status(), Ongoing)
}

func TestAdjudicate(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		moves  []string
		want   string
		drawn  bool
		status Status
	}{
		{name: "bare kings", fen: "8/8/8/4k3/8/8/3K4/8 w - - 0 1", want: "insufficient material", drawn: true, status: Drawn},
		{name: "fivefold", moves: []string{
			"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8",
			"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8",
		}, want: "fivefold repetition", drawn: true, status: Drawn},
		{name: "no rule", moves: []string{"e2e4"}, status: Ongoing},
		{name: "already mated", moves: []string{"f2f3", "e7e5", "g2g4", "Qh4"}, status: Checkmate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, log := newTestSession(t, config.Human, config.Human, tt.fen)
			playAll(t, s, tt.moves...)

			reason, drawn := s.Adjudicate()
			testutil.AssertEqual(t, drawn, tt.drawn)
			testutil.AssertEqual(t, reason, tt.want)
			testutil.AssertEqual(t, s.Status(), tt.status)
			if tt.drawn {
				testutil.AssertEqual(t, s.Result(), output.Draw)
				testutil.AssertEqual(t, s.DrawnBy(), tt.want)
				testutil.AssertContains(t, log.String(), "drawn by "+tt.want)
			}
		})
	}
}

func TestAdjudicate_EndsAndUndoReopens(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Human, "8/8/8/8/3k4/8/2R5/K7 b - - 0 1")
	playAll(t, s, "d4d3", "a1a2")
	_, drawn := s.Adjudicate()
	testutil.AssertFalse(t, drawn)

	playAll(t, s, "d3c2")
	reason, drawn := s.Adjudicate()
	testutil.AssertTrue(t, drawn)
	testutil.AssertEqual(t, reason, "insufficient material")

	_, err := s.PlayText("a2a3")
	testutil.AssertTrue(t, errors.Is(err, errors.ErrGameOver), "got %v", err)

	testutil.AssertNoError(t, s.Undo(1))
	testutil.AssertEqual(t, s.Status(), Ongoing)
	testutil.AssertEqual(t, s.DrawnBy(), "")
}

func TestCastlingSAN(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Human, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	playAll(t, s, "e1g1", "O-O-O")

	plies := s.Plies()
	testutil.AssertEqual(t, plies[0].SAN, "O-O")
	testutil.AssertEqual(t, plies[1].SAN, "O-O-O")
	testutil.AssertMoves(t, s.Moves(), []string{"e1g1", "e8c8"})
}

func TestRecord(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Computer, "")
	playAll(t, s, "e2e4")
	_, err := s.RunComputer(nil)
	testutil.AssertNoError(t, err)

	rec := s.Record()
	testutil.AssertEqual(t, rec.Tags["White"], "Human")
	testutil.AssertEqual(t, rec.Tags["Black"], "tinychess")
	testutil.AssertEqual(t, rec.Tags["GameId"], s.ID)
	testutil.AssertEqual(t, rec.Tags["PlyCount"], "2")
	testutil.AssertEqual(t, rec.Result, output.Unfinished)

	var buf bytes.Buffer
	testutil.AssertNoError(t, output.WritePGN(&buf, rec, config.NewOutputConfig()))
	testutil.AssertTrue(t, strings.Contains(buf.String(), "1. e4 e5 *"), buf.String())
}

func TestStatusString(t *testing.T) {
	testutil.AssertEqual(t, Ongoing.String(), "ongoing")
	testutil.AssertEqual(t, Checkmate.String(), "checkmate")
	testutil.AssertEqual(t, Stalemate.String(), "stalemate")
	testutil.AssertEqual(t, Drawn.String(), "drawn")
	testutil.AssertTrue(t, Drawn.IsOver())
	testutil.AssertEqual(t, Status(7).String(), "unknown")
	testutil.AssertTrue(t, Checkmate.IsOver())
	testutil.AssertFalse(t, Ongoing.IsOver())
}

func TestBookLine(t *testing.T) {
	s, _ := newTestSession(t, config.Human, config.Human, "")
	_, ok := s.BookLine()
	testutil.AssertFalse(t, ok)

	playAll(t, s, "e4", "e5", "Nf3", "Nc6", "Bb5")
	name, ok := s.BookLine()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, name, "Ruy Lopez")

	playAll(t, s, "h6")
	name, ok = s.BookLine()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, name, "Ruy Lopez")
}
