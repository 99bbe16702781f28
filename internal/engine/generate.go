package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// direction is a single step on the board. Step is the index difference
// of the step; DRank and DFile say how it moves so that a ray can stop at
// the true board edge instead of wrapping to the next rank.
type direction struct {
	Step  int
	DRank int
	DFile int
}

// Diagonal directions, outward (step 9, 7) and inward (-9, -7).
var diagonalDirs = []direction{
	{Step: 9, DRank: 1, DFile: 1},
	{Step: -9, DRank: -1, DFile: -1},
	{Step: 7, DRank: 1, DFile: -1},
	{Step: -7, DRank: -1, DFile: 1},
}

// Orthogonal directions, outward (step 8, 1) and inward (-8, -1).
var straightDirs = []direction{
	{Step: 8, DRank: 1, DFile: 0},
	{Step: -8, DRank: -1, DFile: 0},
	{Step: 1, DRank: 0, DFile: 1},
	{Step: -1, DRank: 0, DFile: -1},
}

// allDirs is the union used by queens and kings.
var allDirs = append(append([]direction{}, diagonalDirs...), straightDirs...)

// knightJumps holds the eight knight offsets {±6, ±10, ±15, ±17}.
var knightJumps = []direction{
	{Step: 17, DRank: 2, DFile: 1},
	{Step: 15, DRank: 2, DFile: -1},
	{Step: 10, DRank: 1, DFile: 2},
	{Step: 6, DRank: 1, DFile: -2},
	{Step: -6, DRank: -1, DFile: 2},
	{Step: -10, DRank: -1, DFile: -2},
	{Step: -15, DRank: -2, DFile: 1},
	{Step: -17, DRank: -2, DFile: -1},
}

// next returns the square one step along dir from sq, or NoSquare at the
// edge of the board.
func (d direction) next(sq chess.Square) chess.Square {
	return sq.Offset(d.DRank, d.DFile)
}

// PseudoLegalMoves returns the moves available to the piece on from that
// obey movement and blocking rules. The list is empty when from is off the
// board, empty, or holds a piece of the side not to move. Moves may still
// leave the mover's own king in check.
func PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Move {
	if !from.Valid() {
		return nil
	}
	piece := board.Get(from)
	if !piece.BelongsTo(board.ActiveColour) {
		return nil
	}

	var moves []chess.Move
	switch piece.Kind() {
	case chess.WhitePawn, chess.BlackPawn:
		moves = pawnMoves(board, from, moves)
	case chess.Knight:
		moves = knightMoves(board, from, moves)
	case chess.Bishop:
		moves = slidingMoves(board, from, diagonalDirs, false, moves)
	case chess.Rook:
		moves = slidingMoves(board, from, straightDirs, false, moves)
	case chess.Queen:
		moves = slidingMoves(board, from, allDirs, false, moves)
	case chess.King:
		moves = slidingMoves(board, from, allDirs, true, moves)
		moves = castlingMoves(board, from, moves)
	}
	return moves
}

// checkMove applies the shared single-step rule for pieces other than
// pawns: a square holding the mover's piece or the enemy king is skipped,
// an enemy piece is captured, and an empty square is a quiet move. It
// reports whether a ray through to must stop here.
func checkMove(board *chess.Board, from, to chess.Square, moves []chess.Move) ([]chess.Move, bool) {
	target := board.Get(to)
	switch {
	case target.IsEmpty():
		return append(moves, chess.QuietMove(from, to)), false
	case target.BelongsTo(board.ActiveColour), target.Kind() == chess.King:
		return moves, true
	default:
		return append(moves, chess.CaptureMove(from, to)), true
	}
}

// isEnemy reports whether sq holds an opponent piece of the side to move.
func isEnemy(board *chess.Board, sq chess.Square) bool {
	return board.Get(sq).BelongsTo(board.ActiveColour.Opposite())
}
