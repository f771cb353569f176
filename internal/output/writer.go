package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/tinychess-go/internal/config"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PGN, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	if cfg.JSONFormat {
		return NewJSONWriterSingle(w)
	}
	return NewPGNWriter(w, cfg)
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.OutputConfig) *PGNWriter {
	return &PGNWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(rec *Record) error {
	return WritePGN(pw.w, rec, pw.cfg)
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *Record) error {
	if jw.single {
		return WriteJSON(jw.w, rec)
	}

	jg, err := GameToJSON(rec)
	if err != nil {
		return err
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
