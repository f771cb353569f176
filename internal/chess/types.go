// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank (0-7) pawns of this colour start on.
func (c Colour) HomeRank() int {
	if c == White {
		return 1
	}
	return 6
}

// PromotionRank returns the rank (0-7) on which pawns of this colour promote.
func (c Colour) PromotionRank() int {
	if c == White {
		return 7
	}
	return 0
}

// BackRank returns the rank (0-7) the king and rooks of this colour start on.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PieceKind represents a chess piece type.
type PieceKind uint8

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PromotionKinds lists the promotion choices in generation order.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   PieceKind
}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind PieceKind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Is reports whether p is the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.Kind == kind && p.Colour == colour
}

// FENLetter returns the FEN character for the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) FENLetter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Square indexes the board: 0 = a1, 7 = h1, 56 = a8, 63 = h8.
type Square uint8

// NoSquare marks an absent square (e.g. no en-passant target).
const NoSquare Square = 64

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// MakeSquare builds a square from a file (0-7) and rank (0-7).
func MakeSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// Rank returns the rank index (0-7) of the square.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the file index (0-7) of the square.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s < NoSquare
}

// Mirror returns the square reflected across the horizontal centre line.
func (s Square) Mirror() Square {
	return MakeSquare(s.File(), 7-s.Rank())
}

// String returns algebraic coordinates such as "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare converts algebraic coordinates ("e4") to a square.
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return NoSquare, false
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return MakeSquare(int(file-'a'), int(rank-'1')), true
}

// Named squares used by castling.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// CastlingRights holds the four castling flags. Rights are only ever cleared
// after the initial position is set up.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// CastlingFlag returns the flag for the given colour and wing.
func CastlingFlag(colour Colour, kingSide bool) CastlingRights {
	switch {
	case colour == White && kingSide:
		return WhiteKingSide
	case colour == White:
		return WhiteQueenSide
	case kingSide:
		return BlackKingSide
	default:
		return BlackQueenSide
	}
}

// CanCastle reports whether the given colour may still castle on the given wing.
func (c CastlingRights) CanCastle(colour Colour, kingSide bool) bool {
	return c&CastlingFlag(colour, kingSide) != 0
}

// Without returns the rights with the given flags cleared.
func (c CastlingRights) Without(flags CastlingRights) CastlingRights {
	return c &^ flags
}

// String returns the FEN castling field ("KQkq", "-").
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var out []byte
	for _, f := range []struct {
		flag   CastlingRights
		letter byte
	}{{WhiteKingSide, 'K'}, {WhiteQueenSide, 'Q'}, {BlackKingSide, 'k'}, {BlackQueenSide, 'q'}} {
		if c&f.flag != 0 {
			out = append(out, f.letter)
		}
	}
	return string(out)
}
