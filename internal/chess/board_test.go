package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ActiveColour != White {
			t.Errorf("ActiveColour = %v; want White", b.ActiveColour)
		}
		if b.FullmoveNumber != 1 {
			t.Errorf("FullmoveNumber = %d; want 1", b.FullmoveNumber)
		}
		if b.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", b.EnPassant)
		}
		if b.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock)
		}
		if b.Castling.Any() {
			t.Errorf("Castling = %+v; want none", b.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); sq < NumSquares; sq++ {
			if got := b.Get(sq); !got.IsEmpty() {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white rook h1", "h1", W(Rook)},
		{"white pawn e2", "e2", W(WhitePawn)},
		{"black pawn e7", "e7", B(BlackPawn)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		{"empty e4", "e4", Empty},
		{"empty d5", "d5", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(SquareFromString(tt.sq)); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	if b.Castling != AllCastlingRights {
		t.Errorf("Castling = %+v; want all rights", b.Castling)
	}
	if got := b.FindKing(White); got != E1 {
		t.Errorf("FindKing(White) = %v; want e1", got)
	}
	if got := b.FindKing(Black); got != E8 {
		t.Errorf("FindKing(Black) = %v; want e8", got)
	}
}

func TestBoardGetSet(t *testing.T) {
	b := NewBoard()

	b.Set(D1, W(Queen))
	if got := b.Get(D1); got != W(Queen) {
		t.Errorf("Get(d1) = %v; want Q", got)
	}

	b.Clear(D1)
	if got := b.Get(D1); !got.IsEmpty() {
		t.Errorf("Get(d1) after Clear = %v; want Empty", got)
	}

	// Off-board access is ignored
	b.Set(NoSquare, W(King))
	b.Set(NumSquares, W(King))
	if got := b.Get(NoSquare); !got.IsEmpty() {
		t.Errorf("Get(NoSquare) = %v; want Empty", got)
	}
	if got := b.Get(NumSquares); !got.IsEmpty() {
		t.Errorf("Get(64) = %v; want Empty", got)
	}
	if got := b.FindKing(White); got != NoSquare {
		t.Errorf("FindKing(White) = %v; want NoSquare", got)
	}
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	original.SetupInitialPosition()
	original.EnPassant = SquareFromString("e3")
	original.HalfmoveClock = 7

	cp := original.Copy()
	if *cp != *original {
		t.Fatal("Copy() differs from original")
	}

	cp.Set(SquareFromString("e4"), W(WhitePawn))
	cp.Castling.ClearColour(White)
	cp.ActiveColour = Black

	if !original.Get(SquareFromString("e4")).IsEmpty() {
		t.Error("modifying the copy changed the original squares")
	}
	if !original.Castling.WhiteKingside || !original.Castling.WhiteQueenside {
		t.Error("modifying the copy changed the original castling rights")
	}
	if original.ActiveColour != White {
		t.Error("modifying the copy changed the original side to move")
	}
}

func TestCastlingRights(t *testing.T) {
	rights := AllCastlingRights
	if !rights.Kingside(White) || !rights.Queenside(Black) {
		t.Fatalf("AllCastlingRights = %+v", rights)
	}

	rights.ClearColour(Black)
	want := CastlingRights{WhiteKingside: true, WhiteQueenside: true}
	if rights != want {
		t.Errorf("after ClearColour(Black) = %+v; want %+v", rights, want)
	}
	if rights.Kingside(Black) || rights.Queenside(Black) {
		t.Error("black rights still reported")
	}

	rights.ClearColour(White)
	if rights.Any() {
		t.Errorf("Any() = true after clearing both colours")
	}
}
