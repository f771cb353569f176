// Package engine provides chess move generation, legality checking and
// position manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a coloured piece.
// The zero piece is returned for characters that name no piece.
func ConvertFENCharToPiece(c byte) chess.Piece {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'K':
		return chess.MakePiece(colour, chess.King)
	case 'Q':
		return chess.MakePiece(colour, chess.Queen)
	case 'R':
		return chess.MakePiece(colour, chess.Rook)
	case 'N':
		return chess.MakePiece(colour, chess.Knight)
	case 'B':
		return chess.MakePiece(colour, chess.Bishop)
	case 'P':
		return chess.MakePiece(colour, chess.Pawn)
	default:
		return chess.Piece{}
	}
}

// NewPositionFromFEN creates a position from a FEN string. The half-move
// clock and move number fields are optional and default to 0 and 1.
func NewPositionFromFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "fields",
			Expected: "at least 4 space-separated fields",
			Got:      fen,
		}
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(&pos, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts[3]); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts[4:]); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "8 ranks", Got: placement}
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := ConvertFENCharToPiece(c)
			if piece.IsEmpty() {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "piece letter or digit", Got: string(c)}
			}
			if file >= chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "8 squares per rank", Got: row}
			}
			pos.Set(chess.MakeSquare(file, rank), piece)
			file++
		}
		if file != chess.BoardSize {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Expected: "8 squares per rank", Got: row}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side to move", Expected: "w or b", Got: field}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, field string) error {
	pos.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for _, c := range field {
		switch c {
		case 'K':
			pos.Castling |= chess.WhiteKingSide
		case 'Q':
			pos.Castling |= chess.WhiteQueenSide
		case 'k':
			pos.Castling |= chess.BlackKingSide
		case 'q':
			pos.Castling |= chess.BlackQueenSide
		default:
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Expected: "KQkq or -", Got: field}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok || (sq.Rank() != 2 && sq.Rank() != 5) {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Expected: "square on rank 3 or 6", Got: field}
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 16)
		if err != nil {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Expected: "non-negative integer", Got: fields[0]}
		}
		pos.HalfmoveClock = uint16(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 16)
		if err != nil || n == 0 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "move number", Expected: "positive integer", Got: fields[1]}
		}
		pos.MoveNumber = uint16(n)
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Board[chess.MakeSquare(file, rank)]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
// It is meant for fixed, known-good FEN strings.
func MustPositionFromFEN(fen string) chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}
