package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/protocol"
)

// Manager maps game ids to sessions.
type Manager struct {
	cfg *config.Config

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty manager whose sessions share cfg.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{cfg: cfg, sessions: make(map[string]*Session)}
}

// NewSession starts a game from fen, or from the configured start
// position when fen is empty.
func (m *Manager) NewSession(fen string) (*Session, error) {
	e, err := protocol.NewEngine(m.cfg)
	if err != nil {
		return nil, err
	}
	if fen != "" {
		board, err := engine.ParseFEN(fen)
		if err != nil {
			return nil, err
		}
		e.SetBoard(board)
	}

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		engine:    e,
		updatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	m.cfg.Logf(2, "session %s started at %s", s.ID, engine.ToFEN(e.Board()))
	return s, nil
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrSessionNotFound, "id %q", id)
	}
	return s, nil
}

// Remove drops a session. Removing an unknown id is an error.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return errors.Wrapf(errors.ErrSessionNotFound, "id %q", id)
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
