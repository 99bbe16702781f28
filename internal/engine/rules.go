package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// FiftyMoveLimit is the half-move clock value at which a draw may be
// claimed.
const FiftyMoveLimit = 100

// CanClaimFiftyMove returns true once 50 full moves have passed without a
// pawn move or capture.
func CanClaimFiftyMove(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		switch piece.Kind() {
		case chess.None, chess.King:
			continue
		case chess.Knight, chess.Bishop:
		default:
			// Any pawn, rook, or queen can still mate
			return false
		}

		if piece.Colour() == chess.White {
			whitePieces = append(whitePieces, piece.Kind())
			if piece.Kind() == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind())
			if piece.Kind() == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return true
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return true
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.Rank()+sq.File())%2 == 1
}
