package game

// Status is the state of play in the current position.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	Drawn // adjudicated by a draw rule
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Drawn:
		return "drawn"
	}
	return "unknown"
}

// IsOver reports whether no more moves can be played.
func (s Status) IsOver() bool {
	return s != Ongoing
}
