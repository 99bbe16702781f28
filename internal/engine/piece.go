package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// knightMoves generates knight jumps from the given square.
func knightMoves(board *chess.Board, from chess.Square, moves []chess.Move) []chess.Move {
	for _, jump := range knightJumps {
		to := jump.next(from)
		if to == chess.NoSquare {
			continue
		}
		moves, _ = checkMove(board, from, to, moves)
	}
	return moves
}

// slidingMoves casts a ray along each direction until it leaves the board
// or meets an occupied square. With oneStep set only the first square of
// each ray is considered, which gives the king's moves.
func slidingMoves(board *chess.Board, from chess.Square, dirs []direction, oneStep bool, moves []chess.Move) []chess.Move {
	for _, dir := range dirs {
		to := dir.next(from)
		for to != chess.NoSquare {
			var stop bool
			moves, stop = checkMove(board, from, to, moves)
			if stop || oneStep {
				break
			}
			to = dir.next(to)
		}
	}
	return moves
}
