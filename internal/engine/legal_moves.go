package engine

import "github.com/lgbarn/tinychess-go/internal/chess"

// GenerateLegalMoves returns the moves of the side to move that do not leave
// its own king in check.
func GenerateLegalMoves(pos *chess.Position) chess.MoveList {
	list := GeneratePseudoLegal(pos)
	colour := pos.ToMove
	list.Retain(func(m chess.Move) bool {
		return leavesKingSafe(pos, m, colour)
	})
	return list
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	list := GeneratePseudoLegal(pos)
	colour := pos.ToMove
	for _, m := range list.Moves() {
		if leavesKingSafe(pos, m, colour) {
			return true
		}
	}
	return false
}

// IsMoveLegal reports whether move is one of the legal moves in pos.
func IsMoveLegal(pos *chess.Position, move chess.Move) bool {
	legal := GenerateLegalMoves(pos)
	return legal.Contains(move)
}

// MakeMove applies move if it is legal in pos. The input position is never
// modified; ok is false and the original position is returned otherwise.
func MakeMove(pos chess.Position, move chess.Move) (chess.Position, bool) {
	if !IsMoveLegal(&pos, move) {
		return pos, false
	}
	return Apply(pos, move), true
}

// leavesKingSafe plays the move on a scratch copy and checks the mover's king.
func leavesKingSafe(pos *chess.Position, move chess.Move, colour chess.Colour) bool {
	scratch := Apply(*pos, move)
	return !IsInCheck(&scratch, colour)
}
