package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func newTestConfig(out, log *bytes.Buffer) *config.Config {
	return config.NewConfigBuilder().
		WithOutput(out).
		WithLogFile(log).
		WithWorkers(2).
		Build()
}

func TestRunSession(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log)

	input := strings.Join([]string{
		"uci",
		"",
		"position startpos moves e2e4 e7e5",
		"d",
		"bogus",
		"quit",
		"isready",
	}, "\n")

	testutil.AssertNoError(t, runSession(cfg, strings.NewReader(input)))

	want := strings.Join([]string{
		"id name chesscore",
		"id author chesscore authors",
		"uciok",
		"Fen: rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"Status: ongoing",
		"Unknown command: bogus",
	}, "\n") + "\n"
	testutil.AssertEqual(t, out.String(), want)
	testutil.AssertEqual(t, log.String(), "6 commands, 1 rejected\n")
}

func TestRunSession_EOF(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log)
	cfg.Verbosity = 0

	testutil.AssertNoError(t, runSession(cfg, strings.NewReader("isready\n")))
	testutil.AssertEqual(t, out.String(), "readyok\n")
	testutil.AssertEqual(t, log.Len(), 0)
}

func TestRunSession_TraceLogsErrors(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log)
	cfg.Verbosity = 2

	testutil.AssertNoError(t, runSession(cfg, strings.NewReader("position startpos moves e2e5\n")))
	testutil.AssertEqual(t, out.String(), "info string illegal move e2e5\n")
	testutil.AssertContains(t, log.String(), "error: move \"e2e5\"")
}

func TestRunPerft(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log)
	cfg.Engine.StartFEN = "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	cfg.Perft.Depth = 1

	testutil.AssertNoError(t, runPerft(cfg))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	// five king steps, one castle and nine rook moves
	testutil.AssertEqual(t, lines[len(lines)-1], "Nodes searched: 15")
	testutil.AssertEqual(t, lines[len(lines)-2], "")
	testutil.AssertContains(t, out.String(), "e1g1: 1\n")
	testutil.AssertContains(t, log.String(), "perft 1: 15 nodes")
}

func TestRunPerft_BadFEN(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log)
	cfg.Engine.StartFEN = "bad"
	cfg.Perft.Depth = 1

	if err := runPerft(cfg); err == nil {
		t.Error("runPerft should fail on a bad FEN")
	}
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chesscore.log")
	defer saveRestoreString(logFile, path)()

	cfg := config.NewConfig()
	setupLogFile(cfg)

	f, ok := cfg.LogFile.(*os.File)
	if !ok {
		t.Fatalf("LogFile is %T, want *os.File", cfg.LogFile)
	}
	defer f.Close()
	testutil.AssertEqual(t, f.Name(), path)
}

func TestUsage(t *testing.T) {
	// Just verify no panic
	usage()
}
