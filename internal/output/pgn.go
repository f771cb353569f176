package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/config"
	"github.com/lgbarn/tinychess-go/internal/notation"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or a line break first if
// needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WritePGN writes rec as one PGN game: tags, a blank line, the movetext in
// SAN and a trailing blank line.
func WritePGN(w io.Writer, rec *Record, cfg *config.OutputConfig) error {
	for _, pair := range rec.tagPairs() {
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", pair[0], escapeTagValue(pair[1])); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)

	sans, err := notation.Line(rec.Start, rec.Moves)
	if err != nil {
		return err
	}

	ow := NewOutputWriter(w, int(cfg.MaxLineLength))
	moveNum := rec.Start.MoveNumber
	isWhite := rec.Start.ToMove == chess.White
	for i, san := range sans {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(san)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	ow.Write(rec.result())
	ow.NewLine()

	_, err = fmt.Fprintln(w)
	return err
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
