package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// IsCheckmate returns true if the side to move is in check with no legal
// moves.
func IsCheckmate(board *chess.Board) bool {
	return KingInCheck(board, board.ActiveColour) && !HasLegalMoves(board, board.ActiveColour)
}

// IsStalemate returns true if the side to move is not in check but has no
// legal moves.
func IsStalemate(board *chess.Board) bool {
	return !KingInCheck(board, board.ActiveColour) && !HasLegalMoves(board, board.ActiveColour)
}

// Status classifies the position for the side to move. Checkmate and
// stalemate take precedence over the draw rules, which in turn take
// precedence over a plain check.
func Status(board *chess.Board) chess.GameStatus {
	inCheck := KingInCheck(board, board.ActiveColour)
	if !HasLegalMoves(board, board.ActiveColour) {
		if inCheck {
			return chess.Checkmate
		}
		return chess.Stalemate
	}
	switch {
	case HasInsufficientMaterial(board):
		return chess.InsufficientMaterial
	case CanClaimFiftyMove(board):
		return chess.FiftyMoveDraw
	case inCheck:
		return chess.Check
	}
	return chess.Ongoing
}
