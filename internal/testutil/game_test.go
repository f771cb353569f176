package testutil

import (
	"testing"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
)

func TestParseTestPosition(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		wantOK bool
	}{
		{name: "initial position", fen: engine.InitialFEN, wantOK: true},
		{name: "empty string", fen: "", wantOK: false},
		{name: "garbage", fen: "not a fen at all", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseTestPosition(tt.fen)
			if ok != tt.wantOK {
				t.Errorf("ParseTestPosition(%q) ok = %v, want %v", tt.fen, ok, tt.wantOK)
			}
		})
	}
}

func TestMustPosition(t *testing.T) {
	pos := MustPosition(t, engine.InitialFEN)
	if pos != chess.StartPosition() {
		t.Errorf("MustPosition(InitialFEN) differs from StartPosition():\n%s", pos)
	}
}

func TestMustReplay(t *testing.T) {
	pos := MustReplay(t, chess.StartPosition(), "e2e4", "e7e5", "g1f3")

	AssertEqual(t, pos.Board[chess.MakeSquare(4, 3)], chess.W(chess.Pawn), "e4")
	AssertEqual(t, pos.Board[chess.MakeSquare(4, 4)], chess.B(chess.Pawn), "e5")
	AssertEqual(t, pos.Board[chess.MakeSquare(5, 2)], chess.W(chess.Knight), "f3")
	AssertEqual(t, pos.ToMove, chess.Black)
	AssertEqual(t, pos.MoveNumber, uint16(2))
}
