package chess

// CastlingRights records which castling options each side still holds,
// independent of whether castling is currently possible.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights has every right set, as in the initial position.
var AllCastlingRights = CastlingRights{
	WhiteKingside:  true,
	WhiteQueenside: true,
	BlackKingside:  true,
	BlackQueenside: true,
}

// Any reports whether at least one right is held.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Kingside reports the kingside right for the given colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queenside right for the given colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// ClearColour removes both rights of the given colour.
func (c *CastlingRights) ClearColour(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
		c.WhiteQueenside = false
	} else {
		c.BlackKingside = false
		c.BlackQueenside = false
	}
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The 64 squares, indexed by Square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ActiveColour Colour

	// Castling availability.
	Castling CastlingRights

	// The square behind a pawn that has just made a double push, or
	// NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, starting at 1 and incremented after Black
	// moves.
	FullmoveNumber int
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ActiveColour:   White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[SquareAt(0, file)] = W(backRank[file])
		b.Squares[SquareAt(1, file)] = W(WhitePawn)
		b.Squares[SquareAt(6, file)] = B(BlackPawn)
		b.Squares[SquareAt(7, file)] = B(backRank[file])
	}

	b.ActiveColour = White
	b.Castling = AllCastlingRights
	b.EnPassant = NoSquare
	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
}

// Get returns the piece on the given square, or Empty when the square is
// off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq]
}

// Set places a piece on the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq] = piece
	}
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Empty)
}

// FindKing returns the square of the given colour's king, or NoSquare.
func (b *Board) FindKing(colour Colour) Square {
	king := NewPiece(King, colour)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
