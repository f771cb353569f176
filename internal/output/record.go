// Package output writes finished or in-progress games as PGN or JSON.
package output

import (
	"sort"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
)

// Result strings.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// SevenTagRoster lists the tags every PGN game carries, in output order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// IsSevenTagRosterTag returns true if the tag is part of the Seven Tag Roster.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Record is a game ready to be written: its tags, starting position and the
// moves played from it.
type Record struct {
	Tags   map[string]string
	Start  chess.Position
	Moves  []chess.Move
	Result string
}

// result returns the record's result, defaulting to unfinished.
func (r *Record) result() string {
	if r.Result != "" {
		return r.Result
	}
	if v := r.Tags["Result"]; v != "" {
		return v
	}
	return Unfinished
}

// startFEN returns the FEN of a non-standard starting position, or "".
func (r *Record) startFEN() string {
	if r.Start == chess.StartPosition() {
		return ""
	}
	return engine.PositionToFEN(&r.Start)
}

// tagPairs returns the tags in output order: the seven tag roster first
// (with "?" for missing values), the setup tags, then the rest sorted.
func (r *Record) tagPairs() [][2]string {
	pairs := make([][2]string, 0, len(r.Tags)+len(SevenTagRoster)+2)
	for _, tag := range SevenTagRoster {
		value := r.Tags[tag]
		if tag == "Result" {
			value = r.result()
		}
		if value == "" {
			value = "?"
		}
		pairs = append(pairs, [2]string{tag, value})
	}

	if fen := r.startFEN(); fen != "" {
		pairs = append(pairs, [2]string{"SetUp", "1"}, [2]string{"FEN", fen})
	}

	var extra []string
	for tag := range r.Tags {
		if !IsSevenTagRosterTag(tag) && tag != "SetUp" && tag != "FEN" {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		pairs = append(pairs, [2]string{tag, r.Tags[tag]})
	}
	return pairs
}
