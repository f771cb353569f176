package engine

import "github.com/lgbarn/tinychess-go/internal/chess"

// GeneratePseudoLegal generates every move for the side to move without
// checking whether the mover's own king is left in check.
func GeneratePseudoLegal(pos *chess.Position) chess.MoveList {
	var list chess.MoveList
	colour := pos.ToMove

	for sq := chess.Square(0); sq < chess.NoSquare; sq++ {
		piece := pos.Board[sq]
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}

		switch piece.Kind {
		case chess.Pawn:
			genPawnMoves(pos, sq, colour, &list)
		case chess.Knight:
			genLeaperMoves(pos, sq, colour, knightOffsets[:], knightWraps, &list)
		case chess.Bishop:
			genSliderMoves(pos, sq, colour, bishopDirs[:], &list)
		case chess.Rook:
			genSliderMoves(pos, sq, colour, rookDirections[:], &list)
		case chess.Queen:
			genSliderMoves(pos, sq, colour, queenDirections[:], &list)
		case chess.King:
			genLeaperMoves(pos, sq, colour, kingOffsets[:], kingWraps, &list)
			genCastlingMoves(pos, sq, colour, &list)
		}
	}
	return list
}

// genLeaperMoves generates knight or king steps from sq. wraps filters
// offsets that crossed the board edge.
func genLeaperMoves(pos *chess.Position, sq chess.Square, colour chess.Colour, offsets []int, wraps func(from, to chess.Square) bool, list *chess.MoveList) {
	for _, off := range offsets {
		to, ok := offset(sq, off)
		if !ok || wraps(sq, to) {
			continue
		}
		target := pos.Board[to]
		if target.IsEmpty() || target.Colour != colour {
			list.Push(chess.NewMove(sq, to))
		}
	}
}

// genSliderMoves walks each ray from sq until it leaves the board or meets a
// piece; an enemy piece ends the ray with a capture.
func genSliderMoves(pos *chess.Position, sq chess.Square, colour chess.Colour, dirs []int, list *chess.MoveList) {
	for _, dir := range dirs {
		prev := sq
		for {
			to, ok := offset(prev, dir)
			if !ok || rayWraps(prev, to, dir) {
				break
			}
			target := pos.Board[to]
			if target.IsEmpty() {
				list.Push(chess.NewMove(sq, to))
				prev = to
				continue
			}
			if target.Colour != colour {
				list.Push(chess.NewMove(sq, to))
			}
			break // Blocked
		}
	}
}
