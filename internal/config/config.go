// Package config provides configuration for the chesscore engine.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=per-command trace

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Sub-configurations
	Engine *EngineConfig
	Perft  *PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Engine:     NewEngineConfig(),
		Perft:      NewPerftConfig(),
	}
}

// SetOutput sets the writer that protocol responses go to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-configuration and the top-level fields.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity (%d) is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "output writer is nil")
	}
	if c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "log writer is nil")
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
