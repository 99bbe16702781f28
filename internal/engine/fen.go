// Package engine provides chess move generation, validation and board
// manipulation.
package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFieldCount is the number of space separated fields in a FEN string.
const fenFieldCount = 6

// ParseFEN creates a board from a FEN string. On failure it returns a
// *errors.FENError (matching errors.ErrInvalidFEN) and no board.
func ParseFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFieldCount {
		return nil, errors.NewFENError("fields", "", "expected %d fields, got %d", fenFieldCount, len(parts))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseActiveColour(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Groups run from rank 8 down to rank 1; squares are filled from a1 upward.
func parsePiecePositions(board *chess.Board, positions string) error {
	const field = "piece placement"

	groups := strings.Split(positions, "/")
	if len(groups) != chess.BoardSize {
		return errors.NewFENError(field, positions, "expected %d ranks, got %d", chess.BoardSize, len(groups))
	}

	i := 0
	for g := len(groups) - 1; g >= 0; g-- {
		rankStart := i
		for _, c := range []byte(groups[g]) {
			if c >= '0' && c <= '9' {
				skip := int(c - '0')
				if skip < 1 || skip > chess.BoardSize {
					return errors.NewFENError(field, groups[g], "skip count %c out of range 1-8", c)
				}
				i += skip
				continue
			}

			if i >= chess.NumSquares {
				return errors.NewFENError(field, positions, "square index %d beyond the board", i)
			}
			piece := chess.PieceFromChar(c)
			if piece.IsEmpty() {
				return errors.NewFENError(field, groups[g], "invalid piece character %q", c)
			}
			board.Set(chess.Square(i), piece)
			i++
		}
		if i-rankStart != chess.BoardSize {
			return errors.NewFENError(field, groups[g], "rank %d describes %d squares", g+1, i-rankStart)
		}
	}

	if i != chess.NumSquares {
		return errors.NewFENError(field, positions, "board has %d squares, want %d", i, chess.NumSquares)
	}
	return nil
}

// parseActiveColour parses the side to move field.
func parseActiveColour(board *chess.Board, text string) error {
	switch strings.ToLower(text) {
	case "w":
		board.ActiveColour = chess.White
	case "b":
		board.ActiveColour = chess.Black
	default:
		return errors.NewFENError("active colour", text, "must be w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, text string) error {
	board.Castling = chess.CastlingRights{}
	if text == "-" {
		return nil
	}

	for _, c := range text {
		switch c {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		default:
			return errors.NewFENError("castling", text, "unexpected character %q", c)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, text string) error {
	board.EnPassant = chess.NoSquare
	if text == "-" {
		return nil
	}
	sq := chess.SquareFromString(text)
	if sq == chess.NoSquare {
		return errors.NewFENError("en passant", text, "not a square")
	}
	board.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	clock, err := strconv.Atoi(halfmove)
	if err != nil {
		return errors.NewFENError("halfmove clock", halfmove, "not an integer")
	}
	if clock < 0 {
		return errors.NewFENError("halfmove clock", halfmove, "must not be negative")
	}

	number, err := strconv.Atoi(fullmove)
	if err != nil {
		return errors.NewFENError("fullmove number", fullmove, "not an integer")
	}
	if number < 1 {
		return errors.NewFENError("fullmove number", fullmove, "must be at least 1")
	}

	board.HalfmoveClock = clock
	board.FullmoveNumber = number
	return nil
}

// ToFEN converts a board to a FEN string.
func ToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeActiveColour(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(board.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(board.FullmoveNumber))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.SquareAt(rank, file))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeActiveColour writes the side to move to the builder.
func writeActiveColour(sb *strings.Builder, board *chess.Board) {
	if board.ActiveColour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if !board.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	if board.Castling.WhiteKingside {
		sb.WriteByte('K')
	}
	if board.Castling.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if board.Castling.BlackKingside {
		sb.WriteByte('k')
	}
	if board.Castling.BlackQueenside {
		sb.WriteByte('q')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := ParseFEN(InitialFEN)
	return board
}
