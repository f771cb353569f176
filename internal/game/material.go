package game

import (
	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
)

// materialValues are the display weights per kind, indexed by PieceKind.
var materialValues = [...]int{
	chess.NoPiece: 0,
	chess.Pawn:    1,
	chess.Knight:  2,
	chess.Bishop:  3,
	chess.Rook:    5,
	chess.Queen:   9,
	chess.King:    0,
}

// MaterialScores sums the material display weights of each side.
func (s *Session) MaterialScores() (white, black int) {
	pos := s.Position()
	for _, p := range pos.Board {
		if p.IsEmpty() {
			continue
		}
		if p.Colour == chess.White {
			white += materialValues[p.Kind]
		} else {
			black += materialValues[p.Kind]
		}
	}
	return white, black
}

// MaterialDiff returns colour's material lead, negative when behind.
func (s *Session) MaterialDiff(colour chess.Colour) int {
	white, black := s.MaterialScores()
	if colour == chess.White {
		return white - black
	}
	return black - white
}

// IsCheckmated reports whether colour is to move and mated.
func (s *Session) IsCheckmated(colour chess.Colour) bool {
	pos := s.Position()
	return pos.ToMove == colour && engine.IsCheckmate(&pos)
}

// HumanFocus returns the colour the display should favour: White if a human
// plays White, else Black if a human plays Black.
func (s *Session) HumanFocus() (chess.Colour, bool) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if !s.players[colour].IsComputer() {
			return colour, true
		}
	}
	return chess.White, false
}
