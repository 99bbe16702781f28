// chesscore is a chess rules kernel driven by a UCI-style command stream.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var err error
	if cfg.Perft.Depth > 0 {
		err = runPerft(cfg)
	} else {
		err = runSession(cfg, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// runPerft prints a divide of the start position and the node total.
func runPerft(cfg *config.Config) error {
	board, err := engine.ParseFEN(cfg.Engine.StartFEN)
	if err != nil {
		return err
	}

	start := time.Now()
	results := engine.PerftDivide(board, cfg.Perft.Depth, cfg.Perft.Workers)
	for _, r := range results {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", r.Move, r.Nodes)
	}
	total := engine.TotalNodes(results)
	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", total)

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft %d: %d nodes in %v on %d workers\n",
			cfg.Perft.Depth, total, time.Since(start).Round(time.Millisecond), cfg.Perft.Workers)
	}
	return nil
}

// runSession feeds input lines to a fresh session until quit or EOF.
func runSession(cfg *config.Config, in io.Reader) error {
	manager := session.NewManager(cfg)
	s, err := manager.NewSession("")
	if err != nil {
		return err
	}
	defer func() { _ = manager.Remove(s.ID) }()

	var commands, failures int
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		resp := s.Handle(scanner.Text())
		for _, line := range resp.Lines {
			fmt.Fprintln(cfg.OutputFile, line)
		}
		commands++
		if resp.Err != nil {
			failures++
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "error: %v\n", resp.Err)
			}
		}
		if resp.Quit {
			break
		}
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d commands, %d rejected\n", commands, failures)
	}
	return scanner.Err()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "A chess rules kernel that reads UCI-style commands from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  uci, isready, ucinewgame, quit\n")
	fmt.Fprintf(os.Stderr, "  position startpos|fen <fen> [moves e2e4 ...]\n")
	fmt.Fprintf(os.Stderr, "  d          show the current FEN and status\n")
	fmt.Fprintf(os.Stderr, "  perft <n>  count move paths to depth n\n")
}
