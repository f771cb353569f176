package search

import (
	"github.com/lgbarn/tinychess-go/internal/book"
	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
	"github.com/lgbarn/tinychess-go/internal/hashing"
)

// Mate scoring. A mate found n plies from the root scores MateScore-n, so
// any score beyond MateThreshold is a forced mate.
const (
	MateScore     = 30000
	MaxPly        = 128
	MateThreshold = MateScore - MaxPly

	infinity = MateScore + 1
)

var openingBook = book.DefaultBook()

// Result describes the outcome of one search.
type Result struct {
	Move     chess.Move
	Found    bool
	Score    int  // from the searching side's point of view
	Depth    int  // deepest iteration that explored a root move
	Nodes    int  // nodes counted against the budget
	FromBook bool // answered by the opening book without searching
}

// IsMate reports whether the score announces a forced mate for either side.
func (r Result) IsMate() bool {
	return r.Score >= MateThreshold || r.Score <= -MateThreshold
}

// ChooseBestMove picks a move for side in pos. It reports false when it is
// not side's turn or side has no legal moves.
func ChooseBestMove(pos chess.Position, side chess.Colour, cfg Config, progress func()) (chess.Move, bool) {
	r := Search(pos, side, cfg, progress)
	return r.Move, r.Found
}

// Search runs the opening book and then iterative deepening for side.
// progress, when non-nil, is called once per depth and once per explored
// root move; it must not block.
func Search(pos chess.Position, side chess.Colour, cfg Config, progress func()) Result {
	if pos.ToMove != side {
		return Result{}
	}

	if cfg.UseBook {
		if m, ok := openingBook.Move(pos); ok {
			return Result{Move: m, Found: true, FromBook: true}
		}
	}

	moves := engine.GenerateLegalMoves(&pos)
	if moves.Len() == 0 {
		return Result{}
	}

	s := newSearcher(side, cfg, progress)
	return s.run(pos, moves)
}

// searcher holds the state of one search call. Nothing is shared between
// calls.
type searcher struct {
	ai       chess.Colour
	cfg      Config
	tt       *table
	nodes    int
	progress func()
}

func newSearcher(ai chess.Colour, cfg Config, progress func()) *searcher {
	return &searcher{
		ai:       ai,
		cfg:      cfg,
		tt:       new(table),
		progress: progress,
	}
}

func (s *searcher) tick() {
	if s.progress != nil {
		s.progress()
	}
}

// exhausted reports whether the node budget leaves no room for another node.
func (s *searcher) exhausted() bool {
	return s.cfg.NodeLimit > 0 && s.nodes >= s.cfg.NodeLimit
}

// over reports whether the budget has been overrun.
func (s *searcher) over() bool {
	return s.cfg.NodeLimit > 0 && s.nodes > s.cfg.NodeLimit
}

// run is the iterative-deepening loop at the root.
func (s *searcher) run(pos chess.Position, moves chess.MoveList) Result {
	res := Result{Move: moves.At(0), Found: true, Score: Evaluate(&pos, s.ai)}
	key := hashing.PositionKey(&pos)

	for depth := 1; depth <= s.cfg.depthLimit(); depth++ {
		s.tick()

		hint, hasHint := res.Move, res.Depth > 0
		if e, ok := s.tt.probe(key); ok && e.hasMove {
			hint, hasHint = e.move, true
		}

		list := moves
		sortMoves(&pos, &list, hint, hasHint, true)

		best, bestScore, explored := chess.Move{}, -infinity, false
		for i := 0; i < list.Len(); i++ {
			if s.exhausted() {
				break
			}
			s.tick()
			s.nodes++

			m := list.At(i)
			score := s.alphabeta(engine.Apply(pos, m), depth-1, -infinity, infinity, 1)
			if !explored || score > bestScore {
				best, bestScore, explored = m, score, true
			}
		}

		if explored {
			res.Move, res.Score, res.Depth = best, bestScore, depth
			s.tt.store(key, depth, scoreToTT(bestScore, 0), Exact, best, true)
		}
		if s.exhausted() {
			break
		}
	}

	res.Nodes = s.nodes
	return res
}

// alphabeta returns the minimax score of pos for the AI colour, maximizing
// when the AI is to move.
func (s *searcher) alphabeta(pos chess.Position, depth, alpha, beta, ply int) int {
	s.nodes++
	if s.over() {
		return Evaluate(&pos, s.ai)
	}

	key := hashing.PositionKey(&pos)
	origAlpha, origBeta := alpha, beta

	var hint chess.Move
	hasHint := false
	if e, ok := s.tt.probe(key); ok {
		hint, hasHint = e.move, e.hasMove
		if e.depth >= depth {
			score := scoreFromTT(e.score, ply)
			switch e.bound {
			case Exact:
				return score
			case Lower:
				alpha = max(alpha, score)
			case Upper:
				beta = min(beta, score)
			}
			if alpha >= beta {
				return score
			}
		}
	}

	if depth == 0 {
		return s.quiesce(pos, alpha, beta, ply, 0)
	}

	moves := engine.GenerateLegalMoves(&pos)
	if moves.Len() == 0 {
		return s.terminal(&pos, ply)
	}

	maximizing := pos.ToMove == s.ai
	sortMoves(&pos, &moves, hint, hasHint, maximizing)

	best := infinity
	if maximizing {
		best = -infinity
	}
	var bestMove chess.Move
	explored := false

	for i := 0; i < moves.Len(); i++ {
		if s.exhausted() {
			break
		}
		m := moves.At(i)
		score := s.alphabeta(engine.Apply(pos, m), depth-1, alpha, beta, ply+1)
		explored = true

		if maximizing {
			if score > best {
				best, bestMove = score, m
			}
			alpha = max(alpha, best)
		} else {
			if score < best {
				best, bestMove = score, m
			}
			beta = min(beta, best)
		}
		if beta <= alpha {
			break
		}
	}

	if !explored {
		return Evaluate(&pos, s.ai)
	}

	if !s.exhausted() {
		bound := Exact
		switch {
		case best <= origAlpha:
			bound = Upper
		case best >= origBeta:
			bound = Lower
		}
		s.tt.store(key, depth, scoreToTT(best, ply), bound, bestMove, true)
	}
	return best
}

// quiesce extends the search along captures and promotions until the
// position is quiet, the depth cap is reached or the budget runs out.
func (s *searcher) quiesce(pos chess.Position, alpha, beta, ply, qply int) int {
	standPat := Evaluate(&pos, s.ai)
	maximizing := pos.ToMove == s.ai

	if maximizing {
		if standPat >= beta {
			return beta
		}
		alpha = max(alpha, standPat)
	} else {
		if standPat <= alpha {
			return alpha
		}
		beta = min(beta, standPat)
	}

	moves := engine.GenerateLegalMoves(&pos)
	if moves.Len() == 0 {
		return s.terminal(&pos, ply)
	}
	if s.cfg.QuiescenceDepth > 0 && qply >= s.cfg.QuiescenceDepth {
		return standPat
	}

	sortMoves(&pos, &moves, chess.Move{}, false, true)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !isCapture(&pos, m) && !m.IsPromotion() {
			continue
		}
		if s.exhausted() {
			break
		}
		s.nodes++

		score := s.quiesce(engine.Apply(pos, m), alpha, beta, ply+1, qply+1)
		if maximizing {
			if score >= beta {
				return beta
			}
			alpha = max(alpha, score)
		} else {
			if score <= alpha {
				return alpha
			}
			beta = min(beta, score)
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}

// terminal scores a position without legal moves: a mate against the side
// to move, or zero for stalemate.
func (s *searcher) terminal(pos *chess.Position, ply int) int {
	if !engine.IsInCheck(pos, pos.ToMove) {
		return 0
	}
	if pos.ToMove == s.ai {
		return -(MateScore - ply)
	}
	return MateScore - ply
}
