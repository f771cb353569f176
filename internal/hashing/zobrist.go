// Package hashing provides Zobrist position hashing and repetition tracking.
package hashing

import (
	"github.com/lgbarn/tinychess-go/internal/chess"
)

// SideKey is mixed into the hash when White is to move.
const SideKey uint64 = 0x9E3779B97F4A7C15

// NumPieceIndexes is the number of distinct coloured pieces.
const NumPieceIndexes = 12

// PieceKey returns the key for a piece index on a square. Keys are computed
// on demand with a SplitMix64 finaliser and never stored, so hashes are
// stable across runs and builds.
func PieceKey(pieceIndex int, sq chess.Square) uint64 {
	x := uint64(pieceIndex)<<8 ^ uint64(sq) ^ 0x9E3779B97F4A7C15
	x += 0xBF58476D1CE4E5B9
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// PieceIndex maps a piece to 0-5 for White Pawn..King and 6-11 for Black.
// The result is -1 for an empty square.
func PieceIndex(p chess.Piece) int {
	if p.IsEmpty() {
		return -1
	}
	idx := int(p.Kind) - int(chess.Pawn)
	if p.Colour == chess.Black {
		idx += 6
	}
	return idx
}

// Hash computes the Zobrist hash of a position's pieces and side to move.
// Castling rights and the en-passant square are not part of the hash.
func Hash(pos *chess.Position) uint64 {
	var h uint64
	for sq := chess.Square(0); sq < chess.NoSquare; sq++ {
		if idx := PieceIndex(pos.Board[sq]); idx >= 0 {
			h ^= PieceKey(idx, sq)
		}
	}
	if pos.ToMove == chess.White {
		h ^= SideKey
	}
	return h
}

// PositionKey extends Hash with castling rights and the en-passant square,
// so positions that differ only in those fields get different keys.
func PositionKey(pos *chess.Position) uint64 {
	return Hash(pos) ^ uint64(pos.Castling)<<56 ^ uint64(pos.EnPassant)<<48
}
