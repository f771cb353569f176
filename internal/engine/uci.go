package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/errors"
)

// MoveFromUCI resolves long algebraic move text such as "e2e4" or "e7e8q"
// against the legal moves of pos. The returned move carries the castling and
// en-passant flags of the matching generated move.
func MoveFromUCI(pos *chess.Position, text string) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidMoveText, Field: "uci", Expected: "4 or 5 characters", Got: text}
	}

	from, okFrom := chess.ParseSquare(text[0:2])
	to, okTo := chess.ParseSquare(text[2:4])
	if !okFrom || !okTo {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidMoveText, Field: "uci", Expected: "square coordinates", Got: text}
	}

	promotion := chess.NoPiece
	if len(text) == 5 {
		promotion = promotionFromLetter(text[4])
		if promotion == chess.NoPiece {
			return chess.Move{}, &errors.ParseError{Err: errors.ErrInvalidMoveText, Field: "uci", Expected: "promotion piece q, r, b or n", Got: text}
		}
	}

	legal := GenerateLegalMoves(pos)
	for _, m := range legal.Moves() {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
}

// promotionFromLetter maps a promotion letter (either case) to a piece kind.
func promotionFromLetter(c byte) chess.PieceKind {
	switch c {
	case 'q', 'Q':
		return chess.Queen
	case 'r', 'R':
		return chess.Rook
	case 'b', 'B':
		return chess.Bishop
	case 'n', 'N':
		return chess.Knight
	}
	return chess.NoPiece
}
