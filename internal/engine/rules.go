package engine

import (
	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/hashing"
)

// DrawRuleResult contains the results of draw rule detection. The rules are
// reported here, never enforced; sessions decide whether to adjudicate.
type DrawRuleResult struct {
	// Has75MoveRule is true if a position was reached where 75 moves
	// (150 half-moves) have been made without a pawn move or capture.
	Has75MoveRule bool

	// Has5FoldRepetition is true if any position occurred 5 or more times.
	Has5FoldRepetition bool

	// HasInsufficientMaterial is true if the final position has insufficient
	// mating material for either side.
	HasInsufficientMaterial bool
}

// Any reports whether any draw rule applies.
func (r DrawRuleResult) Any() bool {
	return r.Has75MoveRule || r.Has5FoldRepetition || r.HasInsufficientMaterial
}

// Reasons names the rules that apply.
func (r DrawRuleResult) Reasons() []string {
	var reasons []string
	if r.Has5FoldRepetition {
		reasons = append(reasons, "fivefold repetition")
	}
	if r.Has75MoveRule {
		reasons = append(reasons, "75-move rule")
	}
	if r.HasInsufficientMaterial {
		reasons = append(reasons, "insufficient material")
	}
	return reasons
}

// AnalyzeDrawRules analyzes a sequence of positions, oldest first, for
// draw conditions.
func AnalyzeDrawRules(history []chess.Position) DrawRuleResult {
	result := DrawRuleResult{}
	if len(history) == 0 {
		return result
	}

	// Track position counts for 5-fold repetition
	repetitions := hashing.NewRepetitionTable()

	for i := range history {
		pos := &history[i]

		// Check 75-move rule (150 half-moves without pawn move or capture)
		if pos.HalfmoveClock >= 150 {
			result.Has75MoveRule = true
		}

		repetitions.Add(pos)
	}
	result.Has5FoldRepetition = repetitions.MaxCount() >= 5

	// Check insufficient material at final position
	result.HasInsufficientMaterial = HasInsufficientMaterial(&history[len(history)-1])

	return result
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	// Count pieces for each side
	for sq := chess.Square(0); sq < chess.NoSquare; sq++ {
		piece := pos.Board[sq]
		if piece.IsEmpty() || piece.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
