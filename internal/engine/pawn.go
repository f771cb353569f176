package engine

import "github.com/lgbarn/tinychess-go/internal/chess"

// genPawnMoves generates pushes, double pushes, captures, en-passant captures
// and promotions for the pawn on sq.
func genPawnMoves(pos *chess.Position, sq chess.Square, colour chess.Colour, list *chess.MoveList) {
	dir := colour.PawnDirection()

	if fwd, ok := offset(sq, 8*dir); ok && pos.Board[fwd].IsEmpty() {
		pushPawnMove(sq, fwd, colour, list)

		if sq.Rank() == colour.HomeRank() {
			if dbl, ok := offset(sq, 16*dir); ok && pos.Board[dbl].IsEmpty() {
				list.Push(chess.NewMove(sq, dbl))
			}
		}
	}

	for _, off := range [2]int{7 * dir, 9 * dir} {
		to, ok := offset(sq, off)
		if !ok || fileDistance(sq, to) != 1 {
			continue
		}
		target := pos.Board[to]
		switch {
		case !target.IsEmpty():
			if target.Colour != colour {
				pushPawnMove(sq, to, colour, list)
			}
		case pos.EnPassant == to:
			list.Push(chess.Move{From: sq, To: to, EnPassant: true})
		}
	}
}

// pushPawnMove adds a pawn move, expanding it into the four promotion
// choices when the destination is the promotion rank.
func pushPawnMove(from, to chess.Square, colour chess.Colour, list *chess.MoveList) {
	if to.Rank() != colour.PromotionRank() {
		list.Push(chess.NewMove(from, to))
		return
	}
	for _, kind := range chess.PromotionKinds {
		list.Push(chess.NewPromotion(from, to, kind))
	}
}
