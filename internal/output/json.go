package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
	"github.com/lgbarn/tinychess-go/internal/notation"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a record to JSON form, replaying its moves to fill in
// notation and positions.
func GameToJSON(rec *Record) (*JSONGame, error) {
	jg := &JSONGame{
		Tags:       make(map[string]string, len(rec.Tags)+len(SevenTagRoster)),
		Result:     rec.result(),
		PlyCount:   len(rec.Moves),
		InitialFEN: rec.startFEN(),
	}
	for _, pair := range rec.tagPairs() {
		jg.Tags[pair[0]] = pair[1]
	}

	pos := rec.Start
	for _, m := range rec.Moves {
		san, err := notation.SAN(&pos, m)
		if err != nil {
			return nil, err
		}

		mover := pos.Board[m.From]
		jm := JSONMove{
			MoveNumber: int(pos.MoveNumber),
			Color:      colourName(pos.ToMove),
			SAN:        san,
			UCI:        m.String(),
			From:       m.From.String(),
			To:         m.To.String(),
			Piece:      mover.Kind.String(),
		}
		if victim := capturedKind(&pos, m); victim != chess.NoPiece {
			jm.Captured = victim.String()
		}
		if m.IsPromotion() {
			jm.Promotion = m.Promotion.String()
		}

		pos = engine.Apply(pos, m)
		jm.FEN = engine.PositionToFEN(&pos)
		jg.Moves = append(jg.Moves, jm)
	}
	jg.FinalFEN = engine.PositionToFEN(&pos)
	return jg, nil
}

// WriteJSON writes rec as one indented JSON object.
func WriteJSON(w io.Writer, rec *Record) error {
	jg, err := GameToJSON(rec)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}

// capturedKind returns the kind of piece m removes from pos.
func capturedKind(pos *chess.Position, m chess.Move) chess.PieceKind {
	if m.EnPassant {
		return chess.Pawn
	}
	return pos.Board[m.To].Kind
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
