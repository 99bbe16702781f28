// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore-go/internal/config"
)

var (
	startFEN    = flag.String("fen", "", "Start position in FEN (default: standard initial position)")
	verbosity   = flag.Int("v", 1, "Verbosity: 0=silent, 1=summary, 2=per-command trace")
	logFile     = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	perftDepth  = flag.Int("perft", 0, "Print a perft divide to depth N and exit")
	workers     = flag.Int("workers", 0, "Perft worker goroutines (0 = number of CPUs)")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *startFEN != "" {
		cfg.Engine.StartFEN = *startFEN
	}
	cfg.Perft.Depth = *perftDepth
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}
