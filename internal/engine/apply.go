package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// MakeMove validates and plays the move between two algebraic squares for
// the side to move. A pawn reaching its last rank becomes a queen. The
// returned move reports Valid when it was played; otherwise the board is
// left exactly as it was.
func MakeMove(board *chess.Board, from, to string) chess.Move {
	return MakeMoveWithPromotion(board, from, to, chess.Queen)
}

// MakeMoveWithPromotion is MakeMove with an explicit promotion piece. The
// promotion kind is ignored for moves that do not promote, and an unusable
// kind falls back to a queen.
func MakeMoveWithPromotion(board *chess.Board, from, to string, promo chess.Kind) chess.Move {
	fromSq := chess.SquareFromString(from)
	toSq := chess.SquareFromString(to)
	request := chess.QuietMove(fromSq, toSq)

	move, ok := findCandidate(board, request, promo)
	if !ok {
		return request.Invalidate()
	}

	// Play the move on a copy so a rejected move leaves no trace.
	trial := board.Copy()
	mover := trial.ActiveColour
	commitMove(trial, move)
	if kingExposed(trial, mover) {
		return move.Invalidate()
	}

	*board = *trial
	return move
}

// ApplyMove plays a move taken from the generator without re-validating
// it. It returns false, leaving the board untouched, when the move is
// marked invalid or its origin is not a piece of the side to move.
func ApplyMove(board *chess.Board, move chess.Move) bool {
	if !move.Valid() || !board.Get(move.From()).BelongsTo(board.ActiveColour) {
		return false
	}
	commitMove(board, move)
	return true
}

// findCandidate looks the requested squares up among the pseudo-legal
// moves of the piece on the origin square.
func findCandidate(board *chess.Board, request chess.Move, promo chess.Kind) (chess.Move, bool) {
	if !request.From().Valid() || !request.To().Valid() {
		return request, false
	}
	if promo != chess.Knight && promo != chess.Bishop && promo != chess.Rook {
		promo = chess.Queen
	}

	var found chess.Move
	ok := false
	for _, m := range PseudoLegalMoves(board, request.From()) {
		if !m.Equal(request) || !m.Valid() {
			continue
		}
		if m.IsPromotion() && m.Promotion() != promo {
			continue
		}
		found, ok = m, true
		break
	}
	return found, ok
}

// kingExposed reports whether colour's king is attacked after a move. A
// side without a king is treated as exposed.
func kingExposed(board *chess.Board, colour chess.Colour) bool {
	king := board.FindKing(colour)
	if king == chess.NoSquare {
		return true
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// commitMove performs the piece movement and all state bookkeeping for a
// move of the side to move.
func commitMove(board *chess.Board, move chess.Move) {
	colour := board.ActiveColour
	from, to := move.From(), move.To()
	piece := board.Get(from)
	captured := board.Get(to)

	board.Clear(from)
	board.Set(to, piece)

	switch {
	case move.IsEnPassant():
		board.Clear(enPassantVictim(colour, to))
	case move.IsPromotion():
		board.Set(to, chess.NewPiece(move.Promotion(), colour))
	case move.IsCastle():
		rookFrom, rookTo := castleRook(colour, move)
		rook := board.Get(rookFrom)
		board.Clear(rookFrom)
		board.Set(rookTo, rook)
	}

	// Castling rights
	switch piece.Kind() {
	case chess.King:
		board.Castling.ClearColour(colour)
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, from)
	}
	if captured.Is(chess.Rook, colour.Opposite()) {
		updateCastlingRightsForRook(board, colour.Opposite(), to)
	}

	board.EnPassant = move.EnPassantTarget()

	if piece.IsPawn() || move.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if colour == chess.Black {
		board.FullmoveNumber++
	}
	board.ActiveColour = colour.Opposite()
}
