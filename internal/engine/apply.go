package engine

import (
	"github.com/lgbarn/tinychess-go/internal/chess"
)

// Apply plays a move on a copy of the position and returns the result.
// The move is not validated; use MakeMove for untrusted input.
func Apply(pos chess.Position, move chess.Move) chess.Position {
	next := pos
	colour := pos.ToMove
	moving := pos.Board[move.From]

	next.EnPassant = chess.NoSquare
	next.HalfmoveClock++

	// Captures
	if move.EnPassant {
		victim := move.To - 8
		if colour == chess.Black {
			victim = move.To + 8
		}
		next.Clear(victim)
	} else if !next.Board[move.To].IsEmpty() {
		next.HalfmoveClock = 0
	}

	next.Clear(move.From)
	next.Set(move.To, moving)

	if move.IsPromotion() {
		next.Set(move.To, chess.MakePiece(colour, move.Promotion))
		next.HalfmoveClock = 0
	}

	if move.Castling {
		applyCastleRook(&next, colour, move.To)
	}

	if moving.Kind == chess.Pawn {
		next.HalfmoveClock = 0
		diff := int(move.To) - int(move.From)
		if diff == 16 || diff == -16 {
			next.EnPassant = chess.Square(int(move.From) + diff/2)
		}
	}

	updateCastlingRights(&next, moving, move)

	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next
}
