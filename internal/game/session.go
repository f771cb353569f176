// Package game sequences turns between human and computer players on top of
// the rules engine and the search.
package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/config"
	"github.com/lgbarn/tinychess-go/internal/engine"
	"github.com/lgbarn/tinychess-go/internal/errors"
	"github.com/lgbarn/tinychess-go/internal/hashing"
	"github.com/lgbarn/tinychess-go/internal/notation"
	"github.com/lgbarn/tinychess-go/internal/search"
)

// Player is one side of a session.
type Player struct {
	ID     string
	Colour chess.Colour
	Kind   config.PlayerKind
}

// IsComputer reports whether the search plays this side.
func (p Player) IsComputer() bool {
	return p.Kind == config.Computer
}

// Ply records one played move.
type Ply struct {
	Move     chess.Move
	SAN      string
	Colour   chess.Colour
	Computer bool

	// Search details for computer moves
	FromBook bool
	Score    int
	Depth    int
	Nodes    int
}

// Session is one game in progress. positions[0] is the starting position and
// positions[i+1] follows plies[i].
type Session struct {
	ID      string
	Started time.Time

	cfg       *config.Config
	players   [2]Player
	positions []chess.Position
	plies     []Ply
	drawnBy   string
}

// NewSession starts a game from start with the players named in cfg.
func NewSession(cfg *config.Config, start chess.Position) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Started:   time.Now(),
		cfg:       cfg,
		positions: []chess.Position{start},
	}
	s.players[chess.White] = Player{ID: uuid.New().String(), Colour: chess.White, Kind: cfg.Players.White}
	s.players[chess.Black] = Player{ID: uuid.New().String(), Colour: chess.Black, Kind: cfg.Players.Black}

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "session %s: %s from %s\n", s.ID, cfg.Players.Mode(), engine.PositionToFEN(&start))
	}
	return s
}

// Position returns the current position.
func (s *Session) Position() chess.Position {
	return s.positions[len(s.positions)-1]
}

// Start returns the starting position.
func (s *Session) Start() chess.Position {
	return s.positions[0]
}

// History returns every position of the game, starting position first.
func (s *Session) History() []chess.Position {
	return append([]chess.Position(nil), s.positions...)
}

// Plies returns the moves played so far.
func (s *Session) Plies() []Ply {
	return append([]Ply(nil), s.plies...)
}

// Moves returns the moves played so far.
func (s *Session) Moves() []chess.Move {
	moves := make([]chess.Move, len(s.plies))
	for i, p := range s.plies {
		moves[i] = p.Move
	}
	return moves
}

// LastMove returns the most recent move, if any.
func (s *Session) LastMove() (chess.Move, bool) {
	if len(s.plies) == 0 {
		return chess.Move{}, false
	}
	return s.plies[len(s.plies)-1].Move, true
}

// Player returns the player for colour.
func (s *Session) Player(colour chess.Colour) Player {
	return s.players[colour]
}

// ToMove returns the player whose turn it is.
func (s *Session) ToMove() Player {
	return s.players[s.Position().ToMove]
}

// IsComputerTurn reports whether the search should play next.
func (s *Session) IsComputerTurn() bool {
	return s.ToMove().IsComputer()
}

// Status reports whether the side to move is mated, stalemated or can play,
// or whether the game was adjudicated drawn.
func (s *Session) Status() Status {
	pos := s.Position()
	switch {
	case s.drawnBy != "":
		return Drawn
	case engine.IsCheckmate(&pos):
		return Checkmate
	case engine.IsStalemate(&pos):
		return Stalemate
	}
	return Ongoing
}

// DrawRules reports the automatic draw conditions reached by the game so
// far. They do not stop play unless the game is adjudicated.
func (s *Session) DrawRules() engine.DrawRuleResult {
	return engine.AnalyzeDrawRules(s.positions)
}

// Repetitions returns how often the current position has occurred in the
// game, counting itself.
func (s *Session) Repetitions() int {
	table := hashing.NewRepetitionTable()
	for i := range s.positions {
		table.Add(&s.positions[i])
	}
	pos := s.Position()
	return table.Count(&pos)
}

// Adjudicate ends an unfinished game as a draw when a draw rule applies and
// returns the rules that decided it. Undo reopens the game.
func (s *Session) Adjudicate() (string, bool) {
	if s.Status().IsOver() {
		return s.drawnBy, s.drawnBy != ""
	}
	rules := s.DrawRules()
	if !rules.Any() {
		return "", false
	}
	s.drawnBy = strings.Join(rules.Reasons(), ", ")
	if s.cfg.Verbosity > 0 {
		fmt.Fprintf(s.cfg.LogFile, "game %s: drawn by %s after %d plies\n", s.ID, s.drawnBy, len(s.plies))
	}
	return s.drawnBy, true
}

// DrawnBy returns the rules an adjudicated draw was decided by.
func (s *Session) DrawnBy() string {
	return s.drawnBy
}

// PlayMove plays a human move.
func (s *Session) PlayMove(m chess.Move) error {
	if err := s.checkTurn(false, m.String()); err != nil {
		return err
	}
	return s.apply(m, Ply{})
}

// PlayText parses a human move in UCI ("g1f3") or SAN ("Nf3") form and
// plays it.
func (s *Session) PlayText(text string) (chess.Move, error) {
	if err := s.checkTurn(false, text); err != nil {
		return chess.Move{}, err
	}

	pos := s.Position()
	m, err := engine.MoveFromUCI(&pos, text)
	if errors.Is(err, errors.ErrInvalidMoveText) {
		m, err = notation.ParseSAN(&pos, text)
	}
	if err != nil {
		return chess.Move{}, s.moveError(err, text)
	}
	return m, s.apply(m, Ply{})
}

// RunComputer searches for and plays the computer's move. progress is
// passed to the search.
func (s *Session) RunComputer(progress func()) (search.Result, error) {
	if err := s.checkTurn(true, ""); err != nil {
		return search.Result{}, err
	}

	pos := s.Position()
	began := time.Now()
	r := search.Search(pos, pos.ToMove, s.cfg.SearchConfig(), progress)
	if !r.Found {
		return r, s.moveError(errors.ErrNoMove, "")
	}

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "%s plays %s (score %d, depth %d, nodes %d, book %t) in %s\n",
			pos.ToMove, r.Move, r.Score, r.Depth, r.Nodes, r.FromBook, time.Since(began).Round(time.Millisecond))
	}

	return r, s.apply(r.Move, Ply{
		Computer: true,
		FromBook: r.FromBook,
		Score:    r.Score,
		Depth:    r.Depth,
		Nodes:    r.Nodes,
	})
}

// checkTurn rejects moves after the game has ended or from the wrong kind of
// player.
func (s *Session) checkTurn(computer bool, text string) error {
	if s.Status().IsOver() {
		return s.moveError(errors.ErrGameOver, text)
	}
	if s.IsComputerTurn() != computer {
		return s.moveError(errors.ErrNotYourTurn, text)
	}
	return nil
}

// apply plays a legal move and records it.
func (s *Session) apply(m chess.Move, ply Ply) error {
	pos := s.Position()
	san, err := notation.SAN(&pos, m)
	if err != nil {
		return s.moveError(err, m.String())
	}
	next, ok := engine.MakeMove(pos, m)
	if !ok {
		return s.moveError(errors.ErrIllegalMove, m.String())
	}

	ply.Move = m
	ply.SAN = san
	ply.Colour = pos.ToMove
	s.positions = append(s.positions, next)
	s.plies = append(s.plies, ply)

	if status := s.Status(); status.IsOver() && s.cfg.Verbosity > 0 {
		fmt.Fprintf(s.cfg.LogFile, "game %s: %s after %d plies (%s)\n", s.ID, status, len(s.plies), s.Result())
	}
	return nil
}

// moveError attaches the current ply and position to err.
func (s *Session) moveError(err error, text string) error {
	pos := s.Position()
	return &errors.MoveError{
		Err:      err,
		Ply:      len(s.plies) + 1,
		MoveText: text,
		FEN:      engine.PositionToFEN(&pos),
	}
}

// Undo takes back count plies.
func (s *Session) Undo(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count %d: %w", count, errors.ErrNoMove)
	}
	if available := len(s.plies); available < count {
		return fmt.Errorf("cannot undo %d moves, only %d played: %w", count, available, errors.ErrNoMove)
	}

	s.plies = s.plies[:len(s.plies)-count]
	s.positions = s.positions[:len(s.positions)-count]
	s.drawnBy = ""
	return nil
}

// UndoTurn takes back the computer replies since the last human move and
// that move itself. It returns the number of plies removed.
func (s *Session) UndoTurn() (int, error) {
	n := 0
	for len(s.plies) > 0 {
		computer := s.plies[len(s.plies)-1].Computer
		if err := s.Undo(1); err != nil {
			return n, err
		}
		n++
		if !computer {
			return n, nil
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("nothing to undo: %w", errors.ErrNoMove)
	}
	return n, nil
}
