package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// castlePath describes one castling option for one colour.
type castlePath struct {
	King   chess.Square   // king's home square
	KingTo chess.Square   // king's destination
	Rook   chess.Square   // rook's home square
	RookTo chess.Square   // rook's destination
	Empty  []chess.Square // squares that must be vacant
	Safe   []chess.Square // squares the king stands on, crosses or lands on
}

var (
	whiteKingside = castlePath{
		King: chess.E1, KingTo: chess.G1, Rook: chess.H1, RookTo: chess.F1,
		Empty: []chess.Square{chess.F1, chess.G1},
		Safe:  []chess.Square{chess.E1, chess.F1, chess.G1},
	}
	whiteQueenside = castlePath{
		King: chess.E1, KingTo: chess.C1, Rook: chess.A1, RookTo: chess.D1,
		Empty: []chess.Square{chess.D1, chess.C1, chess.B1},
		Safe:  []chess.Square{chess.E1, chess.D1, chess.C1},
	}
	blackKingside = castlePath{
		King: chess.E8, KingTo: chess.G8, Rook: chess.H8, RookTo: chess.F8,
		Empty: []chess.Square{chess.F8, chess.G8},
		Safe:  []chess.Square{chess.E8, chess.F8, chess.G8},
	}
	blackQueenside = castlePath{
		King: chess.E8, KingTo: chess.C8, Rook: chess.A8, RookTo: chess.D8,
		Empty: []chess.Square{chess.D8, chess.C8, chess.B8},
		Safe:  []chess.Square{chess.E8, chess.D8, chess.C8},
	}
)

// castlePaths returns the kingside and queenside options of a colour.
func castlePaths(colour chess.Colour) (kingside, queenside castlePath) {
	if colour == chess.White {
		return whiteKingside, whiteQueenside
	}
	return blackKingside, blackQueenside
}

// castlingMoves appends the castling moves available to the king on from.
func castlingMoves(board *chess.Board, from chess.Square, moves []chess.Move) []chess.Move {
	colour := board.ActiveColour
	kingside, queenside := castlePaths(colour)

	if board.Castling.Kingside(colour) && canCastle(board, colour, from, kingside) {
		moves = append(moves, chess.KingCastle(from, kingside.KingTo))
	}
	if board.Castling.Queenside(colour) && canCastle(board, colour, from, queenside) {
		moves = append(moves, chess.QueenCastle(from, queenside.KingTo))
	}
	return moves
}

// canCastle checks pieces, vacancy and attacks along a castling path.
func canCastle(board *chess.Board, colour chess.Colour, from chess.Square, path castlePath) bool {
	if from != path.King || !board.Get(from).Is(chess.King, colour) {
		return false
	}
	if !board.Get(path.Rook).Is(chess.Rook, colour) {
		return false
	}
	for _, sq := range path.Empty {
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}
	enemy := colour.Opposite()
	for _, sq := range path.Safe {
		if IsSquareAttacked(board, sq, enemy) {
			return false
		}
	}
	return true
}

// castleRook returns the rook relocation that accompanies a castling move.
func castleRook(colour chess.Colour, move chess.Move) (from, to chess.Square) {
	kingside, queenside := castlePaths(colour)
	if move.IsKingCastle() {
		return kingside.Rook, kingside.RookTo
	}
	return queenside.Rook, queenside.RookTo
}

// updateCastlingRightsForRook removes a castling right when a rook leaves
// or is captured on its home square.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	kingside, queenside := castlePaths(colour)
	switch sq {
	case kingside.Rook:
		if colour == chess.White {
			board.Castling.WhiteKingside = false
		} else {
			board.Castling.BlackKingside = false
		}
	case queenside.Rook:
		if colour == chess.White {
			board.Castling.WhiteQueenside = false
		} else {
			board.Castling.BlackQueenside = false
		}
	}
}
