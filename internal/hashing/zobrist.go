// Package hashing provides position keys and a transposition cache for
// move-path enumeration.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// zobristSeed fixes the key tables so keys are stable across runs.
const zobristSeed = 0x2545F4914F6CDD1D

// pieceSlots covers every Kind for both colours.
const pieceSlots = 16

var (
	pieceKeys     [pieceSlots][chess.NumSquares]uint64
	sideKey       uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // keys need determinism, not secrecy
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = rng.Uint64()
		}
	}
	sideKey = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
}

// GenerateZobristHash returns the Zobrist key of a position. The key
// covers placement, side to move, castling rights and the en-passant file;
// the clocks are left out since they do not change which moves exist.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for sq, piece := range board.Squares {
		if piece.IsEmpty() {
			continue
		}
		hash ^= pieceKeys[pieceSlot(piece)][sq]
	}

	if board.ActiveColour == chess.White {
		hash ^= sideKey
	}

	rights := []bool{
		board.Castling.WhiteKingside, board.Castling.WhiteQueenside,
		board.Castling.BlackKingside, board.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= castlingKeys[i]
		}
	}

	if board.EnPassant.Valid() {
		hash ^= enPassantKeys[board.EnPassant.File()]
	}
	return hash
}

func pieceSlot(p chess.Piece) int {
	return int(p.Kind())*2 + int(p.Colour())
}
