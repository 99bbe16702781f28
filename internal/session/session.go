// Package session keeps independent games, each behind its own lock, and
// hands them out by id.
package session

import (
	"sync"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/protocol"
)

// Session is one game. All methods are safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	engine    *protocol.Engine
	updatedAt time.Time
}

// MakeMove plays a move given as two algebraic squares. A rejected move
// returns a *errors.MoveError wrapping errors.ErrIllegalMove and leaves
// the position unchanged.
func (s *Session) MakeMove(from, to string, promo chess.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.engine.Board()
	fen := engine.ToFEN(board)
	move := engine.MakeMoveWithPromotion(board, from, to, promo)
	if !move.Valid() {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Move: from + to, FEN: fen}
	}
	s.updatedAt = time.Now()
	return nil
}

// FEN returns the current position.
func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.ToFEN(s.engine.Board())
}

// Status returns the state of play for the side to move.
func (s *Session) Status() chess.GameStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.Status(s.engine.Board())
}

// LegalMoves lists the legal moves of the side to move in long algebraic
// form.
func (s *Session) LegalMoves() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves := engine.AllLegalMoves(s.engine.Board())
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return names
}

// Handle runs one protocol command line against the session's position.
func (s *Session) Handle(line string) protocol.Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := s.engine.HandleLine(line)
	s.updatedAt = time.Now()
	return resp
}

// UpdatedAt returns when the position last changed or a command ran.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
