// play.go - Interactive game loop
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lgbarn/tinychess-go/internal/config"
	"github.com/lgbarn/tinychess-go/internal/game"
	"github.com/lgbarn/tinychess-go/internal/output"
)

// lineReader yields input lines. *readline.Instance implements it.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// scanReader reads plain lines when stdin is not a terminal.
type scanReader struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

func newScanReader(r io.Reader) *scanReader {
	sr := &scanReader{scanner: bufio.NewScanner(r)}
	if c, ok := r.(io.Closer); ok {
		sr.closer = c
	}
	return sr
}

func (s *scanReader) Readline() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scanReader) SetPrompt(string) {}

func (s *scanReader) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// newReadline opens a readline session on the terminal.
func newReadline(cfg *config.Config, prompt string) (lineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          cfg.OutputFile,
	})
}

// runLoop plays the game with commands from in until quit, end of input or
// the end of a game with no human left to type.
func runLoop(ctx context.Context, a *app, in lineReader) error {
	defer in.Close()

	a.showBoard()
	if err := a.playComputer(ctx); err != nil {
		return err
	}

	for !a.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if a.session.Status().IsOver() && a.cfg.Players.Unattended() {
			break
		}

		in.SetPrompt(a.prompt())
		line, err := in.Readline()
		if err == io.EOF {
			break
		}
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return err
		}

		if err := a.execute(ctx, strings.TrimSpace(line)); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintln(a.out, paint(a.colour, red, "Error: "+err.Error()))
		}
	}
	return nil
}

// saveRecord writes the finished game to w in the configured format.
func saveRecord(w io.Writer, cfg *config.Config, session *game.Session) error {
	gw := output.NewGameWriter(w, &cfg.Output)
	if err := gw.WriteGame(session.Record()); err != nil {
		return err
	}
	if err := gw.Flush(); err != nil {
		return err
	}
	return gw.Close()
}
