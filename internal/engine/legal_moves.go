package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// LegalMoves returns the moves of the piece on from that do not leave the
// mover's king attacked.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Move {
	var legal []chess.Move
	for _, m := range PseudoLegalMoves(board, from) {
		if isLegal(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move of the side to move, ordered by
// origin square.
func AllLegalMoves(board *chess.Board) []chess.Move {
	var legal []chess.Move
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if !board.Get(sq).BelongsTo(board.ActiveColour) {
			continue
		}
		legal = append(legal, LegalMoves(board, sq)...)
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal
// move, as if it were that colour's turn.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	if board.ActiveColour != colour {
		board = board.Copy()
		board.ActiveColour = colour
	}
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if !board.Get(sq).BelongsTo(colour) {
			continue
		}
		for _, m := range PseudoLegalMoves(board, sq) {
			if isLegal(board, m) {
				return true
			}
		}
	}
	return false
}

// isLegal plays a pseudo-legal move on a scratch copy and checks the
// mover's king.
func isLegal(board *chess.Board, move chess.Move) bool {
	trial := board.Copy()
	mover := trial.ActiveColour
	commitMove(trial, move)
	return !kingExposed(trial, mover)
}
