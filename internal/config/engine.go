package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// EngineConfig holds the identity the protocol adapter reports and the
// position a new game starts from.
type EngineConfig struct {
	// Name is reported in "id name"
	Name string

	// Author is reported in "id author"
	Author string

	// StartFEN is loaded by "ucinewgame" and "position startpos"
	StartFEN string
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		Name:     "chesscore",
		Author:   "chesscore authors",
		StartFEN: engine.InitialFEN,
	}
}

// Validate checks that the engine configuration is usable.
func (e *EngineConfig) Validate() error {
	if e.Name == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "engine name is empty")
	}
	if _, err := engine.ParseFEN(e.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
