package search

import (
	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
)

// CheckBonus is credited to the side not in check when the side to move is.
const CheckBonus = 30

// pieceValues holds the material value of each kind, indexed by PieceKind.
var pieceValues = [...]int{
	chess.NoPiece: 0,
	chess.Pawn:    100,
	chess.Knight:  320,
	chess.Bishop:  330,
	chess.Rook:    500,
	chess.Queen:   900,
	chess.King:    0,
}

// PieceValue returns the material value of a piece kind.
func PieceValue(kind chess.PieceKind) int {
	if int(kind) >= len(pieceValues) {
		return 0
	}
	return pieceValues[kind]
}

// Piece-square tables from White's point of view, indexed by Square.
var (
	pawnTable = [chess.NumSquares]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 5, 5, -5, -5, 5, 5, 5,
		2, 2, 2, 2, 2, 2, 2, 2,
		1, 1, 2, 3, 3, 2, 1, 1,
		1, 1, 1, 2, 2, 1, 1, 1,
		0, 0, 0, 1, 1, 0, 0, 0,
		0, -1, -1, 0, 0, -1, -1, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightTable = [chess.NumSquares]int{
		-5, -4, -3, -3, -3, -3, -4, -5,
		-4, -2, 0, 0, 0, 0, -2, -4,
		-3, 0, 1, 1, 1, 1, 0, -3,
		-3, 0, 2, 3, 3, 2, 0, -3,
		-3, 0, 2, 3, 3, 2, 0, -3,
		-3, 0, 1, 2, 2, 1, 0, -3,
		-4, -2, 0, 0, 0, 0, -2, -4,
		-5, -4, -3, -3, -3, -3, -4, -5,
	}
	bishopTable = [chess.NumSquares]int{
		-2, -1, -1, -1, -1, -1, -1, -2,
		-1, 0, 0, 0, 0, 0, 0, -1,
		-1, 0, 1, 1, 1, 1, 0, -1,
		-1, 1, 1, 1, 1, 1, 1, -1,
		-1, 0, 1, 1, 1, 1, 0, -1,
		-1, 0, 0, 1, 1, 0, 0, -1,
		-2, -1, -1, -1, -1, -1, -1, -2,
		-2, -1, -1, -1, -1, -1, -1, -2,
	}
	rookTable = [chess.NumSquares]int{
		0, 0, 1, 2, 2, 1, 0, 0,
		-2, -2, -2, -2, -2, -2, -2, -2,
		-1, -1, 0, 0, 0, 0, -1, -1,
		-1, -1, 0, 0, 0, 0, -1, -1,
		-1, -1, 0, 0, 0, 0, -1, -1,
		-1, -1, 0, 1, 1, 0, -1, -1,
		-1, -1, 2, 2, 2, 2, -1, -1,
		0, 0, 0, 0, 2, 2, 0, 0,
	}
	queenTable = [chess.NumSquares]int{
		-4, -2, -2, -1, -1, -2, -2, -4,
		-2, 0, 0, 0, 0, 0, 0, -2,
		-2, 0, 1, 1, 1, 1, 0, -2,
		-1, 0, 1, 1, 1, 1, 0, -1,
		0, 0, 1, 1, 1, 1, 0, -1,
		-1, 0, 1, 1, 1, 1, 0, -1,
		-2, -2, 0, 0, 0, 0, -2, -2,
		-4, -2, -2, -1, -1, -2, -2, -4,
	}
	kingTable = [chess.NumSquares]int{
		-3, -4, -4, -5, -5, -4, -4, -3,
		-3, -4, -4, -5, -5, -4, -4, -3,
		-3, -4, -4, -5, -5, -4, -4, -3,
		-3, -4, -4, -5, -5, -4, -4, -3,
		-2, -3, -3, -4, -4, -3, -3, -2,
		-1, -2, -2, -2, -2, -2, -2, -1,
		2, 2, 0, 0, 0, 0, 2, 2,
		2, 3, 1, 0, 0, 1, 3, 2,
	}
)

// SquareBonus returns the positional bonus for a piece on a square. Black
// reads White's tables through a vertical mirror.
func SquareBonus(p chess.Piece, sq chess.Square) int {
	if p.Colour == chess.Black {
		sq = sq.Mirror()
	}
	switch p.Kind {
	case chess.Pawn:
		return pawnTable[sq]
	case chess.Knight:
		return knightTable[sq]
	case chess.Bishop:
		return bishopTable[sq]
	case chess.Rook:
		return rookTable[sq]
	case chess.Queen:
		return queenTable[sq]
	case chess.King:
		return kingTable[sq]
	}
	return 0
}

// Evaluate returns the static score of pos from ai's point of view:
// material plus square bonuses, with a small adjustment when the side to
// move is in check.
func Evaluate(pos *chess.Position, ai chess.Colour) int {
	score := 0
	for sq := chess.Square(0); sq < chess.NoSquare; sq++ {
		p := pos.Board[sq]
		if p.IsEmpty() {
			continue
		}
		total := PieceValue(p.Kind) + SquareBonus(p, sq)
		if p.Colour == ai {
			score += total
		} else {
			score -= total
		}
	}

	if engine.IsInCheck(pos, pos.ToMove) {
		if pos.ToMove == ai {
			score -= CheckBonus
		} else {
			score += CheckBonus
		}
	}
	return score
}
