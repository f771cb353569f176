package game

import (
	"strconv"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/output"
)

const engineName = "tinychess"

// Result returns the PGN result of the game so far.
func (s *Session) Result() string {
	switch s.Status() {
	case Checkmate:
		if s.Position().ToMove == chess.White {
			return output.BlackWins
		}
		return output.WhiteWins
	case Stalemate, Drawn:
		return output.Draw
	}
	return output.Unfinished
}

// Record returns the game as an output record.
func (s *Session) Record() *output.Record {
	return &output.Record{
		Tags: map[string]string{
			"Event":    "Casual game",
			"Site":     engineName,
			"Date":     s.Started.Format("2006.01.02"),
			"Round":    "-",
			"White":    s.playerName(chess.White),
			"Black":    s.playerName(chess.Black),
			"GameId":   s.ID,
			"Mode":     s.cfg.Players.Mode(),
			"PlyCount": strconv.Itoa(len(s.plies)),
		},
		Start:  s.Start(),
		Moves:  s.Moves(),
		Result: s.Result(),
	}
}

func (s *Session) playerName(colour chess.Colour) string {
	if s.players[colour].IsComputer() {
		return engineName
	}
	return "Human"
}
