package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// IsInCheck returns true if the king standing on kingSquare is attacked by
// an opposing rook, bishop, queen, knight or pawn. It returns false when
// the square is off the board or holds no king.
func IsInCheck(board *chess.Board, kingSquare chess.Square) bool {
	if !kingSquare.Valid() {
		return false
	}
	king := board.Get(kingSquare)
	if king.Kind() != chess.King {
		return false
	}
	return isAttacked(board, kingSquare, king.Colour().Opposite(), false)
}

// KingInCheck returns true if the given colour's king is in check.
func KingInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, board.FindKing(colour))
}

// IsSquareAttacked returns true if the square is attacked by the given
// colour. Unlike IsInCheck it also counts the attacking king, so it
// answers whether a king may stand on the square.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	return isAttacked(board, sq, byColour, true)
}

// isAttacked scans every attacker category and returns on the first hit.
func isAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour, withKing bool) bool {
	// Sliding pieces along straight lines
	if rayAttacked(board, sq, straightDirs, chess.NewPiece(chess.Rook, byColour), chess.NewPiece(chess.Queen, byColour)) {
		return true
	}

	// Sliding pieces along diagonals
	if rayAttacked(board, sq, diagonalDirs, chess.NewPiece(chess.Bishop, byColour), chess.NewPiece(chess.Queen, byColour)) {
		return true
	}

	// Knights
	knight := chess.NewPiece(chess.Knight, byColour)
	for _, jump := range knightJumps {
		from := jump.next(sq)
		if from == chess.NoSquare {
			continue
		}
		fileDiff := abs(from.File() - sq.File())
		rankDiff := abs(from.Rank() - sq.Rank())
		if !((fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)) {
			continue
		}
		if board.Get(from) == knight {
			return true
		}
	}

	// Pawns capture towards their forward direction, so an attacker sits
	// one rank behind the target from its own point of view.
	pawn := chess.NewPiece(chess.PawnFor(byColour), byColour)
	back := -pawnDirection(pawn.Kind())
	for _, df := range []int{-1, 1} {
		if board.Get(sq.Offset(back, df)) == pawn {
			return true
		}
	}

	if withKing {
		king := chess.NewPiece(chess.King, byColour)
		for _, dir := range allDirs {
			if board.Get(dir.next(sq)) == king {
				return true
			}
		}
	}

	return false
}

// rayAttacked walks each direction from sq and reports whether the first
// occupied square holds one of the given attackers.
func rayAttacked(board *chess.Board, sq chess.Square, dirs []direction, attackers ...chess.Piece) bool {
	for _, dir := range dirs {
		for to := dir.next(sq); to != chess.NoSquare; to = dir.next(to) {
			piece := board.Get(to)
			if piece.IsEmpty() {
				continue
			}
			for _, attacker := range attackers {
				if piece == attacker {
					return true
				}
			}
			break // Blocked
		}
	}
	return false
}
