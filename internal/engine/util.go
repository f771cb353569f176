package engine

import "github.com/lgbarn/tinychess-go/internal/chess"

// Offsets in the flat 0-63 board layout.
var (
	knightOffsets   = [8]int{17, 15, 10, 6, -17, -15, -10, -6}
	kingOffsets     = [8]int{1, -1, 8, -8, 9, 7, -7, -9}
	rookDirections  = [4]int{8, -8, 1, -1}
	bishopDirs      = [4]int{9, 7, -9, -7}
	queenDirections = [8]int{8, -8, 1, -1, 9, 7, -9, -7}
)

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// fileDistance returns the number of files between two squares.
func fileDistance(a, b chess.Square) int {
	return abs(a.File() - b.File())
}

// offset returns sq+delta and whether the result is still on the board.
func offset(sq chess.Square, delta int) (chess.Square, bool) {
	target := int(sq) + delta
	if target < 0 || target >= chess.NumSquares {
		return chess.NoSquare, false
	}
	return chess.Square(target), true
}

// rayWraps reports whether one step along dir from "from" to "to" crossed
// the left or right board edge. Flat offsets of +/-1, +/-7 and +/-9 wrap
// onto the neighbouring rank when they leave the board sideways.
func rayWraps(from, to chess.Square, dir int) bool {
	switch dir {
	case 1, -7, 9:
		return to.File() <= from.File()
	case -1, 7, -9:
		return to.File() >= from.File()
	}
	return false
}

// knightWraps reports whether a knight offset wrapped around the board edge.
func knightWraps(from, to chess.Square) bool {
	df := fileDistance(from, to)
	return df == 0 || df > 2
}

// kingWraps reports whether a king offset wrapped around the board edge.
func kingWraps(from, to chess.Square) bool {
	return fileDistance(from, to) > 1
}
