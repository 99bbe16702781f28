package chess

// Square is an index into the board, rank*8 + file with a1 = 0 and h8 = 63.
type Square int

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	// NoSquare is the sentinel for an absent or out-of-range square.
	NoSquare Square = -1

	RankBase = '1'
	FileBase = 'a'
)

// Named squares used by castling and setup.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// SquareAt returns the square at the given rank and file (both 0-7), or
// NoSquare if either is out of range.
func SquareAt(rank, file int) Square {
	if rank < 0 || rank >= BoardSize || file < 0 || file >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// SquareFromString converts algebraic text such as "e4" (case-insensitive)
// into a square. Anything that is not exactly a file letter followed by a
// rank digit yields NoSquare.
func SquareFromString(text string) Square {
	if len(text) != 2 {
		return NoSquare
	}
	file := text[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare
	}
	return SquareAt(int(rank-RankBase), int(file-FileBase))
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Rank returns the 0-based rank of the square. The result is undefined
// for squares that are not Valid.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the 0-based file of the square. The result is undefined
// for squares that are not Valid.
func (s Square) File() int {
	return int(s) % BoardSize
}

// String returns the algebraic name of the square, or "-" when the square
// is not on the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// Offset returns the square reached by moving dRank ranks and dFile files,
// or NoSquare if that leaves the board.
func (s Square) Offset(dRank, dFile int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return SquareAt(s.Rank()+dRank, s.File()+dFile)
}
