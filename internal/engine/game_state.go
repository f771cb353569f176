package engine

import "github.com/lgbarn/tinychess-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}
