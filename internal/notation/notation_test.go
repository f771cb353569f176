package notation

import (
	"testing"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
	"github.com/lgbarn/tinychess-go/internal/errors"
	"github.com/lgbarn/tinychess-go/internal/testutil"
)

func TestSAN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{name: "pawn push", fen: engine.InitialFEN, uci: "e2e4", want: "e4"},
		{name: "knight move", fen: engine.InitialFEN, uci: "g1f3", want: "Nf3"},
		{name: "king side castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", uci: "e1g1", want: "O-O"},
		{name: "queen side castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", uci: "e1c1", want: "O-O-O"},
		{name: "pawn capture", fen: "4k3/8/8/3q4/4P3/8/8/3RK3 w - - 0 1", uci: "e4d5", want: "exd5"},
		{name: "rook capture", fen: "4k3/8/8/3q4/4P3/8/8/3RK3 w - - 0 1", uci: "d1d5", want: "Rxd5"},
		{name: "en passant", fen: "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", uci: "e5d6", want: "exd6"},
		{name: "promotion with check", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", uci: "a7a8q", want: "a8=Q+"},
		{name: "mate", fen: "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", uci: "a1a8", want: "Ra8#"},
		{name: "file disambiguation", fen: "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", uci: "b1d2", want: "Nbd2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustPosition(t, tt.fen)
			m, err := engine.MoveFromUCI(&pos, tt.uci)
			testutil.AssertNoError(t, err)

			got, err := SAN(&pos, m)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestSAN_IllegalMove(t *testing.T) {
	pos := chess.StartPosition()
	_, err := SAN(&pos, chess.NewMove(chess.E1, chess.E8))
	testutil.AssertTrue(t, errors.Is(err, errors.ErrIllegalMove), "got %v", err)
}

func TestParseSAN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fen       string
		text      string
		want      string
		castling  bool
		enPassant bool
	}{
		{name: "pawn push", fen: engine.InitialFEN, text: "e4", want: "e2e4"},
		{name: "knight", fen: engine.InitialFEN, text: "Nf3", want: "g1f3"},
		{name: "castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", text: "O-O", want: "e1g1", castling: true},
		{name: "long castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", text: "O-O-O", want: "e8c8", castling: true},
		{name: "en passant", fen: "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", text: "exd6", want: "e5d6", enPassant: true},
		{name: "promotion", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", text: "a8=N", want: "a7a8n"},
		{name: "disambiguated", fen: "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", text: "Nfd2", want: "f1d2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustPosition(t, tt.fen)

			got, err := ParseSAN(&pos, tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.String(), tt.want)
			testutil.AssertEqual(t, got.Castling, tt.castling)
			testutil.AssertEqual(t, got.EnPassant, tt.enPassant)
		})
	}
}

func TestParseSAN_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "unreachable square", text: "Ke5"},
		{name: "garbage", text: "zz9"},
		{name: "empty", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := chess.StartPosition()
			_, err := ParseSAN(&pos, tt.text)
			testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidMoveText), "got %v", err)
		})
	}
}

func TestLine(t *testing.T) {
	start := chess.StartPosition()
	var moves []chess.Move
	pos := start
	for _, text := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"} {
		m, err := engine.MoveFromUCI(&pos, text)
		testutil.AssertNoError(t, err)
		moves = append(moves, m)
		pos = engine.Apply(pos, m)
	}

	got, err := Line(start, moves)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []string{"e4", "e5", "Nf3", "Nc6", "Bb5"})

	moves = append(moves, chess.NewMove(chess.A1, chess.H8))
	got, err = Line(start, moves)
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, len(got), 5)
}
