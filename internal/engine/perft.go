package engine

import "github.com/lgbarn/tinychess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := GenerateLegalMoves(&pos)
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for _, m := range moves.Moves() {
		nodes += Perft(Apply(pos, m), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by UCI text.
func Divide(pos chess.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	moves := GenerateLegalMoves(&pos)
	for _, m := range moves.Moves() {
		result[m.String()] = Perft(Apply(pos, m), depth-1)
	}
	return result
}
