package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		// Rook and queen along a rank, every distance
		{"rook adjacent left", "8/Rk6/8/8/8/8/6K1/8 b - - 0 1", chess.Black, true},
		{"rook adjacent right", "8/1kR5/8/8/8/8/6K1/8 b - - 0 1", chess.Black, true},
		{"rook two away", "8/1k1R4/8/8/8/8/6K1/8 b - - 0 1", chess.Black, true},
		{"rook three away", "8/1k2R3/8/8/8/8/6K1/8 b - - 0 1", chess.Black, true},
		{"rook four away", "8/1k3R2/8/8/8/8/6K1/8 b - - 0 1", chess.Black, true},
		{"rook five away", "8/1k4R1/8/8/8/8/6K1/8 b - - 0 1", chess.Black, true},
		{"rook on the edge", "8/1k5R/8/8/8/8/6K1/8 b - - 0 1", chess.Black, true},
		{"queen adjacent", "8/Qk6/8/8/8/8/6K1/8 b - - 0 1", chess.Black, true},
		{"queen on the edge", "8/1k5Q/8/8/8/8/6K1/8 b - - 0 1", chess.Black, true},
		{"black rook", "8/rK6/8/8/8/8/6k1/8 b - - 0 1", chess.White, true},
		{"black rook far", "8/1K4r1/8/8/8/8/6k1/8 b - - 0 1", chess.White, true},
		{"black queen", "8/1K2q3/8/8/8/8/6k1/8 b - - 0 1", chess.White, true},
		{"rook on a file", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", chess.White, true},

		// Blocked rays
		{"rook blocked left", "8/Rpk5/8/8/8/8/6K1/8 b - - 0 1", chess.Black, false},
		{"rook blocked right", "8/1kpR4/8/8/8/8/6K1/8 b - - 0 1", chess.Black, false},
		{"rook blocked far", "8/1kp4R/8/8/8/8/6K1/8 b - - 0 1", chess.Black, false},
		{"queen blocked", "8/1kp2Q2/8/8/8/8/6K1/8 b - - 0 1", chess.Black, false},
		{"black rook blocked", "8/1Kp3r1/8/8/8/8/6k1/8 b - - 0 1", chess.White, false},
		{"black queen blocked", "8/qpK5/8/8/8/8/6k1/8 b - - 0 1", chess.White, false},

		// Diagonals
		{"bishop", "4k3/8/8/b7/8/8/8/4K3 w - - 0 1", chess.White, true},
		{"bishop blocked", "4k3/8/8/b7/8/2P5/8/4K3 w - - 0 1", chess.White, false},
		{"queen diagonal adjacent", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1", chess.White, true},
		{"bishop across the edge", "4k3/8/8/8/K7/8/7b/8 w - - 0 1", chess.White, false},

		// Knights
		{"knight", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"knight across the edge", "4k3/8/8/7n/K7/8/8/8 w - - 0 1", chess.White, false},

		// Pawns
		{"black pawn", "8/8/8/3p4/4K3/8/8/7k w - - 0 1", chess.White, true},
		{"black pawn behind", "8/8/8/8/4K3/3p4/8/7k w - - 0 1", chess.White, false},
		{"white pawn", "8/8/8/4k3/3P4/8/8/K7 b - - 0 1", chess.Black, true},
		{"pawn across the edge", "7k/8/8/7p/K7/8/8/8 w - - 0 1", chess.White, false},

		// Straight lines across the edge
		{"rook across the edge", "4k3/8/8/8/8/8/K7/7r w - - 0 1", chess.White, false},

		// The enemy king is not a checker
		{"adjacent kings", "8/8/8/3k4/3K4/8/8/8 w - - 0 1", chess.White, false},

		{"start position", InitialFEN, chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustParseFEN(t, tt.fen)
			king := board.FindKing(tt.colour)
			testutil.AssertEqual(t, IsInCheck(board, king), tt.want, "IsInCheck(%s)", king)
			testutil.AssertEqual(t, KingInCheck(board, tt.colour), tt.want, "KingInCheck(%s)", tt.colour)
		})
	}
}

func TestIsInCheckNotAKing(t *testing.T) {
	board := mustParseFEN(t, "4k3/8/8/8/8/8/8/r3K2R w - - 0 1")
	testutil.AssertFalse(t, IsInCheck(board, chess.H1), "rook square")
	testutil.AssertFalse(t, IsInCheck(board, chess.D1), "empty square")
	testutil.AssertFalse(t, IsInCheck(board, chess.NoSquare), "no square")
	testutil.AssertFalse(t, IsInCheck(board, 64), "off board")

	empty := mustParseFEN(t, "8/8/8/8/8/8/8/8 w - - 0 1")
	testutil.AssertFalse(t, KingInCheck(empty, chess.White), "no king")
}

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sq   string
		by   chess.Colour
		want bool
	}{
		{"knight and pawns", InitialFEN, "f3", chess.White, true},
		{"pawns", InitialFEN, "e3", chess.White, true},
		{"unreached", InitialFEN, "e4", chess.White, false},
		{"black knight", InitialFEN, "f6", chess.Black, true},
		{"black unreached", InitialFEN, "d4", chess.Black, false},
		{"own piece square", InitialFEN, "d1", chess.White, true},
		{"king adjacency", "8/8/8/3k4/8/8/8/4K3 w - - 0 1", "d4", chess.Black, true},
		{"king two away", "8/8/8/3k4/8/8/8/4K3 w - - 0 1", "d3", chess.Black, false},
		{"rook through the gap", "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", "g1", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustParseFEN(t, tt.fen)
			got := IsSquareAttacked(board, testutil.Square(t, tt.sq), tt.by)
			testutil.AssertEqual(t, got, tt.want, "IsSquareAttacked(%s, %s)", tt.sq, tt.by)
		})
	}

	board := mustParseFEN(t, InitialFEN)
	testutil.AssertFalse(t, IsSquareAttacked(board, chess.NoSquare, chess.White), "no square")
}
