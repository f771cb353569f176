package chess

// Move represents a single chess move. A move only has meaning relative to the
// position it was generated from; it is not validated until applied.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece promoted to (NoPiece if not a promotion).
	Promotion PieceKind

	// Whether this is an en-passant capture.
	EnPassant bool

	// Whether this is a castling king move.
	Castling bool
}

// NewMove creates a quiet move with no special flags.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, kind PieceKind) Move {
	return Move{From: from, To: to, Promotion: kind}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// IsZero reports whether m is the zero move.
func (m Move) IsZero() bool {
	return m == Move{}
}

// String returns the move in UCI long algebraic form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	text := m.From.String() + m.To.String()
	if m.IsPromotion() {
		text += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return text
}
