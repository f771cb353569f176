package engine

import "github.com/lgbarn/tinychess-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A position without a king of that colour is reported as not in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq, ok := pos.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(pos, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) bool {
	// Pawn attacks: an attacking pawn sits one rank behind the target from
	// its own point of view.
	dir := by.PawnDirection()
	for _, off := range [2]int{-7 * dir, -9 * dir} {
		from, ok := offset(sq, off)
		if !ok || fileDistance(sq, from) != 1 {
			continue
		}
		if pos.Board[from].Is(by, chess.Pawn) {
			return true
		}
	}

	// Knight attacks
	for _, off := range knightOffsets {
		from, ok := offset(sq, off)
		if !ok || knightWraps(sq, from) {
			continue
		}
		if pos.Board[from].Is(by, chess.Knight) {
			return true
		}
	}

	// Sliding pieces along straight lines
	for _, dir := range rookDirections {
		if rayAttacker(pos, sq, dir, by, chess.Rook) {
			return true
		}
	}

	// Sliding pieces along diagonals
	for _, dir := range bishopDirs {
		if rayAttacker(pos, sq, dir, by, chess.Bishop) {
			return true
		}
	}

	// King attacks
	for _, off := range kingOffsets {
		from, ok := offset(sq, off)
		if !ok || kingWraps(sq, from) {
			continue
		}
		if pos.Board[from].Is(by, chess.King) {
			return true
		}
	}

	return false
}

// rayAttacker walks from sq along dir and reports whether the first piece
// met is a slider of colour by that moves along this ray (kind or a queen).
func rayAttacker(pos *chess.Position, sq chess.Square, dir int, by chess.Colour, kind chess.PieceKind) bool {
	prev := sq
	for {
		cur, ok := offset(prev, dir)
		if !ok || rayWraps(prev, cur, dir) {
			return false
		}
		piece := pos.Board[cur]
		if !piece.IsEmpty() {
			return piece.Colour == by && (piece.Kind == kind || piece.Kind == chess.Queen)
		}
		prev = cur
	}
}
