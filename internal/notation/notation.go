// Package notation converts moves to and from standard algebraic notation.
package notation

import (
	"fmt"

	corechess "github.com/corentings/chess/v2"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
	"github.com/lgbarn/tinychess-go/internal/errors"
)

// reference builds the equivalent position in the notation library.
func reference(pos *chess.Position) (*corechess.Position, error) {
	opt, err := corechess.FEN(engine.PositionToFEN(pos))
	if err != nil {
		return nil, errors.Wrap(err, "notation")
	}
	return corechess.NewGame(opt).Position(), nil
}

// SAN renders a legal move of pos in standard algebraic notation, with check
// and mate suffixes.
func SAN(pos *chess.Position, move chess.Move) (string, error) {
	if !engine.IsMoveLegal(pos, move) {
		return "", fmt.Errorf("%s: %w", move, errors.ErrIllegalMove)
	}

	ref, err := reference(pos)
	if err != nil {
		return "", err
	}
	m, ok := tagged(ref, move)
	if !ok {
		return "", &errors.ParseError{Err: errors.ErrInvalidMoveText, Field: "san", Expected: "encodable move", Got: move.String()}
	}
	return corechess.AlgebraicNotation{}.Encode(ref, m), nil
}

// tagged finds move among the reference position's legal moves. Those carry
// the castling, capture and check tags the encoder needs.
func tagged(ref *corechess.Position, move chess.Move) (*corechess.Move, bool) {
	text := move.String()
	for _, m := range ref.ValidMoves() {
		if (corechess.UCINotation{}).Encode(ref, &m) == text {
			return &m, true
		}
	}
	return nil, false
}

// ParseSAN resolves algebraic move text such as "Nf3", "exd5", "O-O" or
// "e8=Q" against the legal moves of pos.
func ParseSAN(pos *chess.Position, text string) (chess.Move, error) {
	ref, err := reference(pos)
	if err != nil {
		return chess.Move{}, err
	}
	m, err := corechess.AlgebraicNotation{}.Decode(ref, text)
	if err != nil {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidMoveText, Field: "san", Expected: "legal algebraic move", Got: text}
	}
	return engine.MoveFromUCI(pos, corechess.UCINotation{}.Encode(ref, m))
}

// Line renders moves played in order from start as SAN. It stops at the
// first illegal move.
func Line(start chess.Position, moves []chess.Move) ([]string, error) {
	out := make([]string, 0, len(moves))
	pos := start
	for i, m := range moves {
		text, err := SAN(&pos, m)
		if err != nil {
			return out, errors.Wrapf(err, "ply %d", i+1)
		}
		out = append(out, text)
		pos = engine.Apply(pos, m)
	}
	return out, nil
}
