// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind identifies what occupies a square. Pawns carry their colour in the
// kind so that their direction of travel follows from the kind alone.
type Kind int

const (
	None Kind = iota
	WhitePawn
	BlackPawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "WhitePawn", "BlackPawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// PawnFor returns the pawn kind that moves for the given colour.
func PawnFor(colour Colour) Kind {
	if colour == White {
		return WhitePawn
	}
	return BlackPawn
}

// Piece is a kind tagged with a colour. The zero value is an empty square.
type Piece struct {
	kind   Kind
	colour Colour
}

// Empty is the piece value of an unoccupied square.
var Empty = Piece{}

// NewPiece creates a coloured piece. A pawn kind is normalised to the
// pawn of the given colour; None always yields Empty.
func NewPiece(kind Kind, colour Colour) Piece {
	switch kind {
	case None:
		return Empty
	case WhitePawn, BlackPawn:
		kind = PawnFor(colour)
	}
	return Piece{kind: kind, colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// Kind returns the kind of the piece.
func (p Piece) Kind() Kind {
	return p.kind
}

// Colour returns the colour of the piece. Meaningless for Empty.
func (p Piece) Colour() Colour {
	return p.colour
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.kind == None
}

// IsPawn reports whether the piece is a pawn of either colour.
func (p Piece) IsPawn() bool {
	return p.kind == WhitePawn || p.kind == BlackPawn
}

// Is reports whether the piece has the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return !p.IsEmpty() && p == NewPiece(kind, colour)
}

// BelongsTo reports whether the square holds a piece of the given colour.
func (p Piece) BelongsTo(colour Colour) bool {
	return !p.IsEmpty() && p.colour == colour
}

// fenLetters maps each kind to its white FEN letter.
var fenLetters = [...]byte{' ', 'P', 'P', 'N', 'B', 'R', 'Q', 'K'}

// Char returns the FEN diagram character for the piece: uppercase for
// white, lowercase for black and a space for Empty.
func (p Piece) Char() byte {
	if p.IsEmpty() || p.kind < 0 || int(p.kind) >= len(fenLetters) {
		return ' '
	}
	letter := fenLetters[p.kind]
	if p.colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN character of the piece as a string.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar decodes a FEN diagram character. Anything other than one
// of PNBRQK (either case) decodes to Empty.
func PieceFromChar(c byte) Piece {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return NewPiece(PawnFor(colour), colour)
	case 'N':
		return NewPiece(Knight, colour)
	case 'B':
		return NewPiece(Bishop, colour)
	case 'R':
		return NewPiece(Rook, colour)
	case 'Q':
		return NewPiece(Queen, colour)
	case 'K':
		return NewPiece(King, colour)
	default:
		return Empty
	}
}

// KindFromPromotionChar decodes the promotion suffix of a long algebraic
// move (n, b, r or q, either case). It returns None for anything else.
func KindFromPromotionChar(c byte) Kind {
	switch c {
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	default:
		return None
	}
}

// GameStatus describes the state of play for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
	FiftyMoveDraw
	InsufficientMaterial
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	names := []string{"ongoing", "check", "checkmate", "stalemate", "fifty-move draw", "insufficient material"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}
