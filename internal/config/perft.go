package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// MaxPerftDepth bounds the depth the CLI and protocol accept.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the default depth for the -perft flag (0 = disabled)
	Depth int

	// Workers is the number of goroutines PerftDivide fans out to
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is within range.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth (%d) outside 0..%d: %w",
			p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers (%d) must be at least 1", p.Workers)
	}
	return nil
}
