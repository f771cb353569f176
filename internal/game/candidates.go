package game

import (
	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
)

// Candidates are the legal moves between two squares: at most one ordinary
// move plus any promotion choices.
type Candidates struct {
	Normal     chess.Move
	HasNormal  bool
	Promotions []chess.Move // rook, knight, bishop, queen order
}

// Found reports whether any legal move joins the squares.
func (c Candidates) Found() bool {
	return c.HasNormal || len(c.Promotions) > 0
}

// NeedsPromotionChoice reports whether the player must pick a piece.
func (c Candidates) NeedsPromotionChoice() bool {
	return len(c.Promotions) > 0
}

// Promotion returns the promotion to kind, if offered.
func (c Candidates) Promotion(kind chess.PieceKind) (chess.Move, bool) {
	for _, m := range c.Promotions {
		if m.Promotion == kind {
			return m, true
		}
	}
	return chess.Move{}, false
}

var promotionOrder = [...]chess.PieceKind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen}

// CandidateMoves lists the legal moves from one square to another in the
// current position.
func (s *Session) CandidateMoves(from, to chess.Square) Candidates {
	pos := s.Position()
	legal := engine.GenerateLegalMoves(&pos)

	var c Candidates
	var promos [len(promotionOrder)]chess.Move
	var have [len(promotionOrder)]bool
	for _, m := range legal.Moves() {
		if m.From != from || m.To != to {
			continue
		}
		if !m.IsPromotion() {
			c.Normal, c.HasNormal = m, true
			continue
		}
		for i, kind := range promotionOrder {
			if m.Promotion == kind {
				promos[i], have[i] = m, true
			}
		}
	}
	for i := range promos {
		if have[i] {
			c.Promotions = append(c.Promotions, promos[i])
		}
	}
	return c
}
