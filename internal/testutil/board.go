package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Square converts an algebraic name, failing the test on bad input.
func Square(t *testing.T, name string) chess.Square {
	t.Helper()
	sq := chess.SquareFromString(name)
	if sq == chess.NoSquare {
		t.Fatalf("bad square %q", name)
	}
	return sq
}

// MoveStrings returns the long algebraic text of moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// Destinations returns the sorted destination squares of moves, as
// algebraic text. Promotion variants of one destination appear once each.
func Destinations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.To().String()
	}
	sort.Strings(out)
	return out
}

// Sorted returns a sorted copy of names.
func Sorted(names ...string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
