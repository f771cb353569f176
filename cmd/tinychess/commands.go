package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/config"
	"github.com/lgbarn/tinychess-go/internal/engine"
	"github.com/lgbarn/tinychess-go/internal/errors"
	"github.com/lgbarn/tinychess-go/internal/game"
	"github.com/lgbarn/tinychess-go/internal/notation"
	"github.com/lgbarn/tinychess-go/internal/output"
)

// command is one interactive command.
type command struct {
	name        string
	short       string
	usage       string
	description string
	run         func(ctx context.Context, a *app, args []string) error
}

// app is the state of an interactive game.
type app struct {
	cfg      *config.Config
	session  *game.Session
	out      io.Writer
	colour   bool // ANSI escapes allowed on out
	quit     bool
	pending  game.Candidates // promotion awaiting a piece choice
	commands map[string]*command
	ordered  []*command
}

func newApp(cfg *config.Config, session *game.Session, out io.Writer, colour bool) *app {
	a := &app{
		cfg:      cfg,
		session:  session,
		out:      out,
		colour:   colour,
		commands: make(map[string]*command),
	}
	for _, c := range []*command{
		{name: "move", short: "m", usage: "move <e2e4|Nf3> [q|r|b|n]", description: "Play a move in UCI or SAN form", run: moveCommand},
		{name: "moves", short: "l", usage: "moves", description: "List the legal moves", run: movesCommand},
		{name: "undo", short: "u", usage: "undo [n]", description: "Take back your last move, or n plies", run: undoCommand},
		{name: "board", short: "b", usage: "board", description: "Show the board", run: boardCommand},
		{name: "fen", short: "f", usage: "fen", description: "Show the position as FEN", run: fenCommand},
		{name: "status", short: "s", usage: "status", description: "Show game status and material", run: statusCommand},
		{name: "pgn", short: "p", usage: "pgn", description: "Show the game record", run: pgnCommand},
		{name: "help", short: "?", usage: "help [command]", description: "Show available commands", run: helpCommand},
		{name: "quit", short: "q", usage: "quit", description: "Leave the game", run: quitCommand},
	} {
		a.register(c)
	}
	return a
}

func (a *app) register(c *command) {
	a.commands[c.name] = c
	if c.short != "" {
		a.commands[c.short] = c
	}
	a.ordered = append(a.ordered, c)
}

// execute runs one input line. A line that is not a command is played as a
// move. While a promotion is pending a single piece letter completes it.
func (a *app) execute(ctx context.Context, line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	if choices := a.pending; choices.NeedsPromotionChoice() {
		a.pending = game.Candidates{}
		if len(parts) == 1 {
			if kind, ok := promotionKinds[strings.ToLower(parts[0])]; ok {
				m, offered := choices.Promotion(kind)
				if !offered {
					return fmt.Errorf("promotion to %s: %w", kind, errors.ErrIllegalMove)
				}
				return a.play(ctx, m.String())
			}
		}
	}
	if c, ok := a.commands[strings.ToLower(parts[0])]; ok {
		return c.run(ctx, a, parts[1:])
	}
	if len(parts) == 1 {
		return moveCommand(ctx, a, parts)
	}
	return fmt.Errorf("unknown command %q (type 'help' for commands)", parts[0])
}

// prompt returns the readline prompt for the side to move.
func (a *app) prompt() string {
	if a.pending.NeedsPromotionChoice() {
		return paint(a.colour, yellow, "promote to [q/r/b/n] > ")
	}
	pos := a.session.Position()
	return paint(a.colour, yellow, fmt.Sprintf("%d%s %s > ", pos.MoveNumber, dots(pos.ToMove), pos.ToMove))
}

func dots(c chess.Colour) string {
	if c == chess.White {
		return "."
	}
	return "..."
}

// showBoard draws the current position from the human's side.
func (a *app) showBoard() {
	pos := a.session.Position()
	focus, _ := a.session.HumanFocus()
	last, hasLast := a.session.LastMove()
	renderBoard(a.out, &pos, boardView{
		Theme:    a.cfg.Output.Theme,
		Colour:   a.colour,
		Unicode:  a.cfg.Output.Unicode,
		Flip:     focus == chess.Black,
		LastMove: last,
		HasLast:  hasLast,
	})
}

// playComputer lets the computer move until a human is to move or the game
// ends. With no human playing, a draw rule ends the game.
func (a *app) playComputer(ctx context.Context) error {
	for !a.session.Status().IsOver() && a.session.IsComputerTurn() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if a.cfg.Players.Unattended() {
			if _, drawn := a.session.Adjudicate(); drawn {
				break
			}
		}
		r, err := a.session.RunComputer(nil)
		if err != nil {
			return err
		}
		plies := a.session.Plies()
		last := plies[len(plies)-1]
		note := ""
		if r.FromBook {
			note = " (book)"
		}
		fmt.Fprintf(a.out, "%s plays %s%s\n", last.Colour, paint(a.colour, cyan, last.SAN), note)
		a.showBoard()
	}
	a.announce()
	return nil
}

// announce reports a finished game.
func (a *app) announce() {
	switch a.session.Status() {
	case game.Checkmate:
		fmt.Fprintln(a.out, paint(a.colour, green, fmt.Sprintf("Checkmate, %s", a.session.Result())))
	case game.Stalemate:
		fmt.Fprintln(a.out, paint(a.colour, green, fmt.Sprintf("Stalemate, %s", a.session.Result())))
	case game.Drawn:
		fmt.Fprintln(a.out, paint(a.colour, green, fmt.Sprintf("Draw by %s, %s", a.session.DrawnBy(), a.session.Result())))
	default:
		if pos := a.session.Position(); engine.IsInCheck(&pos, pos.ToMove) {
			fmt.Fprintln(a.out, paint(a.colour, red, "Check"))
		}
	}
}

// promotionKinds maps the piece letters accepted after a promotion move.
var promotionKinds = map[string]chess.PieceKind{
	"q": chess.Queen,
	"r": chess.Rook,
	"b": chess.Bishop,
	"n": chess.Knight,
}

func moveCommand(ctx context.Context, a *app, args []string) error {
	switch len(args) {
	case 1:
		return a.play(ctx, args[0])
	case 2:
		if _, ok := promotionKinds[strings.ToLower(args[1])]; ok {
			return a.play(ctx, args[0]+strings.ToLower(args[1]))
		}
	}
	return fmt.Errorf("usage: move <e2e4|Nf3> [q|r|b|n]")
}

// play plays a human move and lets the computer reply. A pawn move to the
// last rank given without a piece asks for one.
func (a *app) play(ctx context.Context, text string) error {
	m, err := a.session.PlayText(text)
	if errors.Is(err, errors.ErrIllegalMove) {
		if c, ok := a.promotionChoices(text); ok {
			a.pending = c
			fmt.Fprintln(a.out, "Promote to queen, rook, bishop or knight? [q/r/b/n]")
			return nil
		}
	}
	if err != nil {
		return err
	}
	if a.cfg.Verbosity > 1 {
		fmt.Fprintf(a.cfg.LogFile, "played %s\n", m)
	}
	a.showBoard()
	return a.playComputer(ctx)
}

// promotionChoices returns the promotions joining the squares of a four
// character UCI move.
func (a *app) promotionChoices(text string) (game.Candidates, bool) {
	if len(text) != 4 {
		return game.Candidates{}, false
	}
	from, okFrom := chess.ParseSquare(text[0:2])
	to, okTo := chess.ParseSquare(text[2:4])
	if !okFrom || !okTo {
		return game.Candidates{}, false
	}
	c := a.session.CandidateMoves(from, to)
	return c, c.NeedsPromotionChoice()
}

func movesCommand(_ context.Context, a *app, _ []string) error {
	pos := a.session.Position()
	legal := engine.GenerateLegalMoves(&pos)
	if legal.Len() == 0 {
		fmt.Fprintln(a.out, "No legal moves")
		return nil
	}

	sans := make([]string, 0, legal.Len())
	for _, m := range legal.Moves() {
		san, err := notation.SAN(&pos, m)
		if err != nil {
			return err
		}
		sans = append(sans, san)
	}
	sort.Strings(sans)
	fmt.Fprintf(a.out, "%d legal moves: %s\n", len(sans), strings.Join(sans, " "))
	return nil
}

func undoCommand(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		n, err := a.session.UndoTurn()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Took back %d plies\n", n)
		a.showBoard()
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("undo count %q: %w", args[0], err)
	}
	if err := a.session.Undo(n); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Took back %d plies\n", n)
	a.showBoard()
	return a.playComputer(ctx)
}

func boardCommand(_ context.Context, a *app, _ []string) error {
	a.showBoard()
	return nil
}

func fenCommand(_ context.Context, a *app, _ []string) error {
	pos := a.session.Position()
	fmt.Fprintln(a.out, engine.PositionToFEN(&pos))
	return nil
}

func statusCommand(_ context.Context, a *app, _ []string) error {
	s := a.session
	white, black := s.MaterialScores()
	fmt.Fprintf(a.out, "Game %s (%s)\n", s.ID, a.cfg.Players.Mode())
	fmt.Fprintf(a.out, "Status: %s, %s to move, %d plies played\n", s.Status(), s.Position().ToMove, len(s.Plies()))
	fmt.Fprintf(a.out, "Material: White %d, Black %d\n", white, black)
	if n := s.Repetitions(); n > 1 {
		fmt.Fprintf(a.out, "Position seen %d times\n", n)
	}
	if name, ok := s.BookLine(); ok {
		fmt.Fprintf(a.out, "Book line: %s\n", name)
	}

	if rules := s.DrawRules(); rules.Any() {
		fmt.Fprintf(a.out, "Draw rules reached: %s\n", strings.Join(rules.Reasons(), ", "))
	}

	if plies := s.Plies(); len(plies) > 0 {
		last := plies[len(plies)-1]
		if last.Computer {
			fmt.Fprintf(a.out, "Last computer move: %s (score %d, depth %d, nodes %d, book %t)\n",
				last.SAN, last.Score, last.Depth, last.Nodes, last.FromBook)
		}
	}
	return nil
}

func pgnCommand(_ context.Context, a *app, _ []string) error {
	gw := output.NewGameWriter(a.out, &a.cfg.Output)
	if err := gw.WriteGame(a.session.Record()); err != nil {
		return err
	}
	return gw.Close()
}

func helpCommand(_ context.Context, a *app, args []string) error {
	if len(args) > 0 {
		c, ok := a.commands[args[0]]
		if !ok {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		fmt.Fprintf(a.out, "%s - %s\nShort form: %s\nUsage: %s\n", c.name, c.description, c.short, c.usage)
		return nil
	}

	fmt.Fprintln(a.out, "Commands:")
	for _, c := range a.ordered {
		fmt.Fprintf(a.out, "  [%s] %-8s %s\n", c.short, c.name, c.description)
	}
	fmt.Fprintln(a.out, "A bare move such as e2e4 or Nf3 is played directly.")
	return nil
}

func quitCommand(_ context.Context, a *app, _ []string) error {
	a.quit = true
	return nil
}
