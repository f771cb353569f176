package chess

import "strings"

// Position represents one board position with all state needed for the rules.
// It is a comparable value: two positions are equal iff every field is equal,
// and applying a move always produces a new value.
type Position struct {
	// The board squares, indexed by Square.
	Board [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastlingRights

	// The square a pawn may capture onto en passant, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move, capture or promotion.
	HalfmoveClock uint16

	// The current move number, incremented after Black moves.
	MoveNumber uint16
}

// NewPosition creates an empty position with White to move.
func NewPosition() Position {
	return Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// StartPosition returns the standard chess starting position.
func StartPosition() Position {
	p := NewPosition()

	backRank := [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Board[MakeSquare(file, 0)] = W(backRank[file])
		p.Board[MakeSquare(file, 1)] = W(Pawn)
		p.Board[MakeSquare(file, 6)] = B(Pawn)
		p.Board[MakeSquare(file, 7)] = B(backRank[file])
	}
	p.Castling = AllCastling
	return p
}

// Get returns the piece at the given square.
func (p *Position) Get(sq Square) Piece {
	return p.Board[sq]
}

// Set places a piece at the given square.
func (p *Position) Set(sq Square, piece Piece) {
	p.Board[sq] = piece
}

// Clear empties the given square.
func (p *Position) Clear(sq Square) {
	p.Board[sq] = Piece{}
}

// HasEnPassant reports whether an en-passant capture target is set.
func (p *Position) HasEnPassant() bool {
	return p.EnPassant != NoSquare
}

// FindKing returns the square of the given colour's king via a linear scan.
func (p *Position) FindKing(colour Colour) (Square, bool) {
	for sq := Square(0); sq < NoSquare; sq++ {
		if p.Board[sq].Is(colour, King) {
			return sq, true
		}
	}
	return NoSquare, false
}

// String draws the board from White's side, rank 8 first.
func (p Position) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(p.Board[MakeSquare(file, rank)].FENLetter())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("Side: ")
	sb.WriteString(p.ToMove.String())
	sb.WriteByte('\n')
	return sb.String()
}
