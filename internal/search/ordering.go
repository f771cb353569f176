package search

import "github.com/lgbarn/tinychess-go/internal/chess"

// Ordering bonuses.
const (
	hintScore       = 10000
	castlingBonus   = 50
	enPassantBonus  = 800
	promotionBonus  = 400
	unknownAttacker = 100
)

// moveHeuristic scores a move for ordering: the table hint first, then
// captures by most valuable victim and least valuable attacker, promotions
// and castling.
func moveHeuristic(pos *chess.Position, m, hint chess.Move, hasHint bool) int {
	if hasHint && m == hint {
		return hintScore
	}

	score := 0
	if m.Castling {
		score += castlingBonus
	}

	if m.EnPassant {
		score += enPassantBonus
	} else if victim := pos.Board[m.To]; !victim.IsEmpty() {
		attacker := unknownAttacker
		if mover := pos.Board[m.From]; !mover.IsEmpty() {
			attacker = PieceValue(mover.Kind)
		}
		score += PieceValue(victim.Kind)*10 - attacker
	}

	if m.IsPromotion() {
		score += PieceValue(m.Promotion) + promotionBonus
	}
	return score
}

// sortMoves orders list by heuristic with a stable insertion sort,
// descending or ascending.
func sortMoves(pos *chess.Position, list *chess.MoveList, hint chess.Move, hasHint, descending bool) {
	n := list.Len()
	var scores [chess.MaxMoves]int
	for i := 0; i < n; i++ {
		scores[i] = moveHeuristic(pos, list.At(i), hint, hasHint)
	}

	for i := 1; i < n; i++ {
		key, keyScore := list.At(i), scores[i]
		j := i
		for j > 0 {
			prev := scores[j-1]
			if (descending && keyScore <= prev) || (!descending && keyScore >= prev) {
				break
			}
			list.Set(j, list.At(j-1))
			scores[j] = prev
			j--
		}
		list.Set(j, key)
		scores[j] = keyScore
	}
}

// isCapture reports whether m takes a piece.
func isCapture(pos *chess.Position, m chess.Move) bool {
	return m.EnPassant || !pos.Board[m.To].IsEmpty()
}
