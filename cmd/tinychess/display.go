package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/config"
)

// Terminal color codes
const (
	reset     = "\033[0m"
	bold      = "\033[1m"
	red       = "\033[31m"
	green     = "\033[32m"
	yellow    = "\033[33m"
	cyan      = "\033[36m"
	whiteInk  = "\033[97m"
	blackInk  = "\033[30m"
	highlight = "\033[48;5;179m"
)

// boardTheme is a pair of 256-colour square backgrounds.
type boardTheme struct {
	light string
	dark  string
}

var boardThemes = map[string]boardTheme{
	config.ThemeBrown: {light: "\033[48;5;223m", dark: "\033[48;5;137m"},
	config.ThemeGreen: {light: "\033[48;5;230m", dark: "\033[48;5;65m"},
	config.ThemeGray:  {light: "\033[48;5;251m", dark: "\033[48;5;243m"},
}

// Filled glyphs are used for both colours on a themed board, where the ink
// tells the sides apart.
var (
	filledGlyphs = map[chess.PieceKind]string{
		chess.King:   "♚",
		chess.Queen:  "♛",
		chess.Rook:   "♜",
		chess.Bishop: "♝",
		chess.Knight: "♞",
		chess.Pawn:   "♟",
	}
	hollowGlyphs = map[chess.PieceKind]string{
		chess.King:   "♔",
		chess.Queen:  "♕",
		chess.Rook:   "♖",
		chess.Bishop: "♗",
		chess.Knight: "♘",
		chess.Pawn:   "♙",
	}
)

// boardView controls how renderBoard draws a position.
type boardView struct {
	Theme    string // ignored unless Colour is set
	Colour   bool   // emit ANSI escapes
	Unicode  bool
	Flip     bool // Black at the bottom
	LastMove chess.Move
	HasLast  bool
}

// pieceText returns the cell text for p, or "" for an empty square.
func (v boardView) pieceText(p chess.Piece, themed bool) string {
	if p.IsEmpty() {
		return ""
	}
	if v.Unicode {
		if themed || p.Colour == chess.Black {
			return filledGlyphs[p.Kind]
		}
		return hollowGlyphs[p.Kind]
	}
	return string(p.FENLetter())
}

// renderBoard writes pos as eight ranks plus a file legend.
func renderBoard(w io.Writer, pos *chess.Position, v boardView) {
	th, themed := boardThemes[v.Theme]
	themed = themed && v.Colour

	ranks := []int{7, 6, 5, 4, 3, 2, 1, 0}
	files := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if v.Flip {
		ranks = []int{0, 1, 2, 3, 4, 5, 6, 7}
		files = []int{7, 6, 5, 4, 3, 2, 1, 0}
	}

	var sb strings.Builder
	for _, rank := range ranks {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for i, file := range files {
			sq := chess.MakeSquare(file, rank)
			p := pos.Board[sq]
			text := v.pieceText(p, themed)

			if !themed {
				if text == "" {
					text = "."
					if v.Unicode {
						text = "·"
					}
				}
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
				continue
			}

			bg := th.dark
			if (file+rank)%2 == 1 {
				bg = th.light
			}
			if v.HasLast && (sq == v.LastMove.From || sq == v.LastMove.To) {
				bg = highlight
			}
			ink := whiteInk
			if !p.IsEmpty() && p.Colour == chess.Black {
				ink = blackInk
			}
			if text == "" {
				text = " "
			}
			sb.WriteString(bg + ink + bold + " " + text + " " + reset)
		}
		sb.WriteByte('\n')
	}

	if themed {
		sb.WriteString("  ")
		for _, file := range files {
			fmt.Fprintf(&sb, " %c ", 'a'+file)
		}
	} else {
		sb.WriteString(" ")
		for _, file := range files {
			fmt.Fprintf(&sb, " %c", 'a'+file)
		}
	}
	sb.WriteByte('\n')
	fmt.Fprint(w, sb.String())
}

// paint wraps text in an ANSI colour when enabled.
func paint(enabled bool, colour, text string) string {
	if !enabled {
		return text
	}
	return colour + text + reset
}
