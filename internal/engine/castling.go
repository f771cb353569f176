package engine

import "github.com/lgbarn/tinychess-go/internal/chess"

// castleSide describes the fixed squares involved in one castling option.
type castleSide struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
	empty            []chess.Square // must be unoccupied
	safe             []chess.Square // must not be attacked (besides the king's start)
}

var castleSides = map[chess.CastlingRights]castleSide{
	chess.WhiteKingSide: {
		kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1,
		empty: []chess.Square{chess.F1, chess.G1},
		safe:  []chess.Square{chess.F1, chess.G1},
	},
	chess.WhiteQueenSide: {
		kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1,
		empty: []chess.Square{chess.B1, chess.C1, chess.D1},
		safe:  []chess.Square{chess.C1, chess.D1},
	},
	chess.BlackKingSide: {
		kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8,
		empty: []chess.Square{chess.F8, chess.G8},
		safe:  []chess.Square{chess.F8, chess.G8},
	},
	chess.BlackQueenSide: {
		kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8,
		empty: []chess.Square{chess.B8, chess.C8, chess.D8},
		safe:  []chess.Square{chess.C8, chess.D8},
	},
}

// genCastlingMoves adds the castling king moves available to colour.
func genCastlingMoves(pos *chess.Position, sq chess.Square, colour chess.Colour, list *chess.MoveList) {
	if IsInCheck(pos, colour) {
		return
	}
	for _, kingSide := range [2]bool{true, false} {
		if !pos.Castling.CanCastle(colour, kingSide) {
			continue
		}
		side := castleSides[chess.CastlingFlag(colour, kingSide)]
		if sq != side.kingFrom || !canCastleThrough(pos, side, colour.Opposite()) {
			continue
		}
		list.Push(chess.Move{From: sq, To: side.kingTo, Castling: true})
	}
}

// canCastleThrough checks the emptiness and safety conditions for one side.
func canCastleThrough(pos *chess.Position, side castleSide, enemy chess.Colour) bool {
	for _, sq := range side.empty {
		if !pos.Board[sq].IsEmpty() {
			return false
		}
	}
	for _, sq := range side.safe {
		if IsSquareAttacked(pos, sq, enemy) {
			return false
		}
	}
	return true
}

// applyCastleRook moves the rook paired with a castling king move.
func applyCastleRook(pos *chess.Position, colour chess.Colour, kingTo chess.Square) {
	for _, kingSide := range [2]bool{true, false} {
		side := castleSides[chess.CastlingFlag(colour, kingSide)]
		if side.kingTo != kingTo {
			continue
		}
		rook := pos.Board[side.rookFrom]
		pos.Clear(side.rookFrom)
		pos.Set(side.rookTo, rook)
		return
	}
}

// rookHomeRights maps each rook home square to the right it guards.
var rookHomeRights = map[chess.Square]chess.CastlingRights{
	chess.A1: chess.WhiteQueenSide,
	chess.H1: chess.WhiteKingSide,
	chess.A8: chess.BlackQueenSide,
	chess.H8: chess.BlackKingSide,
}

// updateCastlingRights removes castling rights when a king moves, when a rook
// leaves its home square, or when anything lands on a rook home square.
func updateCastlingRights(pos *chess.Position, moving chess.Piece, move chess.Move) {
	switch moving.Kind {
	case chess.King:
		pos.Castling = pos.Castling.Without(
			chess.CastlingFlag(moving.Colour, true) | chess.CastlingFlag(moving.Colour, false))
	case chess.Rook:
		if right, ok := rookHomeRights[move.From]; ok {
			pos.Castling = pos.Castling.Without(right)
		}
	}
	if right, ok := rookHomeRights[move.To]; ok {
		pos.Castling = pos.Castling.Without(right)
	}
}
