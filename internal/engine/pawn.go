package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// promotionKinds lists the pieces a pawn may become, in generation order.
var promotionKinds = []chess.Kind{chess.Knight, chess.Bishop, chess.Rook, chess.Queen}

// pawnDirection returns the rank step of a pawn kind: +1 for white pawns,
// -1 for black pawns.
func pawnDirection(kind chess.Kind) int {
	if kind == chess.WhitePawn {
		return 1
	}
	return -1
}

// pawnRanks returns the home rank and the promotion rank of a pawn kind.
func pawnRanks(kind chess.Kind) (home, last int) {
	if kind == chess.WhitePawn {
		return 1, chess.BoardSize - 1
	}
	return chess.BoardSize - 2, 0
}

// pawnMoves generates pushes, double pushes, captures, en-passant captures
// and promotions for the pawn on from.
func pawnMoves(board *chess.Board, from chess.Square, moves []chess.Move) []chess.Move {
	kind := board.Get(from).Kind()
	dir := pawnDirection(kind)
	home, last := pawnRanks(kind)

	// Single and double pushes
	one := from.Offset(dir, 0)
	if one != chess.NoSquare && board.Get(one).IsEmpty() {
		moves = addPawnMove(moves, from, one, one.Rank() == last, false)

		two := from.Offset(2*dir, 0)
		if from.Rank() == home && two != chess.NoSquare && board.Get(two).IsEmpty() {
			moves = append(moves, chess.DoublePawnPush(from, two))
		}
	}

	// Diagonal captures; Offset refuses to wrap across the a/h files
	for _, df := range []int{-1, 1} {
		to := from.Offset(dir, df)
		if to == chess.NoSquare {
			continue
		}
		switch {
		case to == board.EnPassant && isEnPassantCapturable(board, to, dir):
			moves = append(moves, chess.EnPassantCapture(from, to))
		case isEnemy(board, to) && board.Get(to).Kind() != chess.King:
			moves = addPawnMove(moves, from, to, to.Rank() == last, true)
		}
	}
	return moves
}

// addPawnMove appends a pawn move, expanding it into the four promotions
// when the pawn reaches its last rank.
func addPawnMove(moves []chess.Move, from, to chess.Square, promotes, capture bool) []chess.Move {
	if promotes {
		for _, kind := range promotionKinds {
			moves = append(moves, chess.PromotionMove(from, to, kind, capture))
		}
		return moves
	}
	if capture {
		return append(moves, chess.CaptureMove(from, to))
	}
	return append(moves, chess.QuietMove(from, to))
}

// isEnPassantCapturable reports whether the en-passant target is backed by
// an enemy pawn that has just passed over it.
func isEnPassantCapturable(board *chess.Board, target chess.Square, dir int) bool {
	if !board.Get(target).IsEmpty() {
		return false
	}
	victim := board.Get(target.Offset(-dir, 0))
	return victim.IsPawn() && victim.BelongsTo(board.ActiveColour.Opposite())
}

// enPassantVictim returns the square of the pawn removed by an en-passant
// capture landing on to.
func enPassantVictim(colour chess.Colour, to chess.Square) chess.Square {
	if colour == chess.White {
		return to - chess.BoardSize
	}
	return to + chess.BoardSize
}
