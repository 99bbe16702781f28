package chess

// moveTag is the internal encoding of a move's flags. It is never exposed;
// callers query a Move through its predicates.
type moveTag uint8

const (
	tagQuiet       moveTag = 0x00
	tagDoublePush  moveTag = 0x01
	tagKingCastle  moveTag = 0x02
	tagQueenCastle moveTag = 0x03
	tagCapture     moveTag = 0x04
	tagEnPassant   moveTag = 0x05
	tagPromotion   moveTag = 0x08
	tagInvalid     moveTag = 0x80

	// low bits of a promotion tag select the piece
	tagPromotionMask moveTag = 0x03
	tagKindMask      moveTag = 0x0F
)

// promotionKinds is indexed by the low bits of a promotion tag.
var promotionKinds = [...]Kind{Knight, Bishop, Rook, Queen}

// Move is an immutable (from, to, flags) value. Two moves are Equal when
// their squares match, whatever their flags.
type Move struct {
	from Square
	to   Square
	tag  moveTag
}

// QuietMove creates a non-capturing, non-special move.
func QuietMove(from, to Square) Move {
	return Move{from: from, to: to, tag: tagQuiet}
}

// DoublePawnPush creates a two-square pawn advance.
func DoublePawnPush(from, to Square) Move {
	return Move{from: from, to: to, tag: tagDoublePush}
}

// CaptureMove creates an ordinary capture.
func CaptureMove(from, to Square) Move {
	return Move{from: from, to: to, tag: tagCapture}
}

// EnPassantCapture creates an en-passant pawn capture.
func EnPassantCapture(from, to Square) Move {
	return Move{from: from, to: to, tag: tagEnPassant}
}

// KingCastle creates a kingside castling move of the king.
func KingCastle(from, to Square) Move {
	return Move{from: from, to: to, tag: tagKingCastle}
}

// QueenCastle creates a queenside castling move of the king.
func QueenCastle(from, to Square) Move {
	return Move{from: from, to: to, tag: tagQueenCastle}
}

// PromotionMove creates a pawn promotion to kind, which must be one of
// Knight, Bishop, Rook or Queen; any other kind promotes to a queen.
func PromotionMove(from, to Square, kind Kind, capture bool) Move {
	tag := tagPromotion
	switch kind {
	case Knight:
	case Bishop:
		tag |= 1
	case Rook:
		tag |= 2
	default:
		tag |= 3
	}
	if capture {
		tag |= tagCapture
	}
	return Move{from: from, to: to, tag: tag}
}

// InvalidMove creates a move that reports !Valid().
func InvalidMove(from, to Square) Move {
	return Move{from: from, to: to, tag: tagInvalid}
}

// From returns the origin square.
func (m Move) From() Square { return m.from }

// To returns the destination square.
func (m Move) To() Square { return m.to }

// Valid reports whether the move was accepted.
func (m Move) Valid() bool {
	return m.tag&tagInvalid == 0
}

// Invalidate returns a copy of the move marked invalid.
func (m Move) Invalidate() Move {
	m.tag |= tagInvalid
	return m
}

func (m Move) kind() moveTag {
	return m.tag & tagKindMask
}

// Quiet reports whether the move is an ordinary non-capturing move.
func (m Move) Quiet() bool {
	return m.tag == tagQuiet
}

// IsCapture reports whether the move captures, including en passant and
// capturing promotions.
func (m Move) IsCapture() bool {
	return m.kind()&tagCapture != 0
}

// IsDoublePawnPush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool {
	return m.kind() == tagDoublePush
}

// IsKingCastle reports whether the move is kingside castling.
func (m Move) IsKingCastle() bool {
	return m.kind() == tagKingCastle
}

// IsQueenCastle reports whether the move is queenside castling.
func (m Move) IsQueenCastle() bool {
	return m.kind() == tagQueenCastle
}

// IsCastle reports whether the move is castling on either wing.
func (m Move) IsCastle() bool {
	return m.IsKingCastle() || m.IsQueenCastle()
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.kind() == tagEnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.kind()&tagPromotion != 0
}

// Promotion returns the kind promoted to, or None.
func (m Move) Promotion() Kind {
	if !m.IsPromotion() {
		return None
	}
	return promotionKinds[m.tag&tagPromotionMask]
}

// EnPassantTarget returns the square skipped by a double pawn push, or
// NoSquare for every other move.
func (m Move) EnPassantTarget() Square {
	if !m.IsDoublePawnPush() {
		return NoSquare
	}
	return (m.from + m.to) / 2
}

// Equal reports whether both moves share origin and destination.
func (m Move) Equal(other Move) bool {
	return m.from == other.from && m.to == other.to
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.from.String() + m.to.String()
	if m.IsPromotion() {
		s += string(B(m.Promotion()).Char())
	}
	return s
}
