package config

import (
	"bytes"
	"errors"
	"os"
	"runtime"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

// TestEngineConfig_Defaults verifies EngineConfig has sensible defaults
func TestEngineConfig_Defaults(t *testing.T) {
	cfg := NewEngineConfig()

	if cfg.Name != "chesscore" {
		t.Errorf("Name = %q, want chesscore", cfg.Name)
	}
	if cfg.Author == "" {
		t.Error("Author should not be empty by default")
	}
	if !strings.HasPrefix(cfg.StartFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w") {
		t.Errorf("StartFEN = %q, want the initial position", cfg.StartFEN)
	}
}

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 0 {
		t.Errorf("Depth = %d, want 0", cfg.Depth)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
}

// TestConfig_Defaults verifies the top-level defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if cfg.Engine == nil || cfg.Perft == nil {
		t.Fatal("sub-configs should be populated")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"silent", func(c *Config) { c.Verbosity = 0 }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"nil output", func(c *Config) { c.OutputFile = nil }, true},
		{"nil log", func(c *Config) { c.LogFile = nil }, true},
		{"empty name", func(c *Config) { c.Engine.Name = "" }, true},
		{"custom start", func(c *Config) { c.Engine.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1" }, false},
		{"bad start", func(c *Config) { c.Engine.StartFEN = "not a fen" }, true},
		{"max depth", func(c *Config) { c.Perft.Depth = MaxPerftDepth }, false},
		{"depth too large", func(c *Config) { c.Perft.Depth = MaxPerftDepth + 1 }, true},
		{"negative depth", func(c *Config) { c.Perft.Depth = -1 }, true},
		{"zero workers", func(c *Config) { c.Perft.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "summary %d", 1)
	cfg.Logf(2, "trace %d", 2)

	if got := buf.String(); got != "summary 1\n" {
		t.Errorf("log = %q, want %q", got, "summary 1\n")
	}

	buf.Reset()
	cfg.Verbosity = 0
	cfg.Logf(1, "quiet")
	if buf.Len() != 0 {
		t.Errorf("log at verbosity 0 = %q, want empty", buf.String())
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithOutput(out).
		WithLogFile(log).
		WithVerbosity(2).
		WithEngineName("kernel").
		WithAuthor("someone").
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithPerftDepth(3).
		WithWorkers(4).
		Build()

	if cfg.OutputFile != out {
		t.Error("OutputFile not set")
	}
	if cfg.LogFile != log {
		t.Error("LogFile not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.Engine.Name != "kernel" {
		t.Errorf("Name = %q, want kernel", cfg.Engine.Name)
	}
	if cfg.Engine.Author != "someone" {
		t.Errorf("Author = %q, want someone", cfg.Engine.Author)
	}
	if cfg.Engine.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.Engine.StartFEN)
	}
	if cfg.Perft.Depth != 3 {
		t.Errorf("Depth = %d, want 3", cfg.Perft.Depth)
	}
	if cfg.Perft.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Perft.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config should be valid: %v", err)
	}
}
