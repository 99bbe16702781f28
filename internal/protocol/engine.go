package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Engine holds the current position and answers protocol requests. It is
// not safe for concurrent use; session.Session serialises access.
type Engine struct {
	cfg   *config.Config
	board *chess.Board
}

// NewEngine creates an engine positioned at the configured start FEN.
func NewEngine(cfg *config.Config) (*Engine, error) {
	board, err := engine.ParseFEN(cfg.Engine.StartFEN)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	return &Engine{cfg: cfg, board: board}, nil
}

// Board returns the engine's current position.
func (e *Engine) Board() *chess.Board {
	return e.board
}

// SetBoard replaces the current position.
func (e *Engine) SetBoard(board *chess.Board) {
	e.board = board
}

// HandleLine parses and handles a single command line.
func (e *Engine) HandleLine(line string) Response {
	return e.Handle(ParseRequest(line))
}

// Handle dispatches one request.
func (e *Engine) Handle(req Request) Response {
	var resp Response
	if req.Empty() {
		return resp
	}
	e.cfg.Logf(2, "> %s", req.Line)

	switch req.Command {
	case "uci":
		resp.add("id name " + e.cfg.Engine.Name)
		resp.add("id author " + e.cfg.Engine.Author)
		resp.add("uciok")
	case "isready":
		resp.add("readyok")
	case "ucinewgame":
		e.position(&resp, []string{"startpos"})
	case "position":
		e.position(&resp, req.Args)
	case "d":
		resp.add("Fen: " + engine.ToFEN(e.board))
		resp.add("Status: " + engine.Status(e.board).String())
	case "perft":
		e.perft(&resp, req.Args)
	case "quit":
		resp.Quit = true
	case "debug", "setoption", "register", "go", "stop", "ponderhit":
		// Accepted; nothing to do without a search.
	default:
		resp.Err = errors.Wrap(errors.ErrUnknownCommand, req.Line)
		resp.add("Unknown command: " + req.Line)
	}

	for _, line := range resp.Lines {
		e.cfg.Logf(2, "< %s", line)
	}
	return resp
}

// position handles "startpos [moves ...]" and "fen <fields> [moves ...]".
func (e *Engine) position(resp *Response, args []string) {
	if len(args) == 0 {
		e.report(resp, fmt.Errorf("position: missing startpos or fen: %w", errors.ErrUnknownCommand))
		return
	}

	var fen string
	var rest []string
	switch strings.ToLower(args[0]) {
	case "startpos":
		fen = e.cfg.Engine.StartFEN
		rest = args[1:]
	case "fen":
		fields, moves := splitMoves(args[1:])
		fen = strings.Join(fields, " ")
		rest = moves
	default:
		e.report(resp, fmt.Errorf("position %s: %w", args[0], errors.ErrUnknownCommand))
		return
	}

	board, err := engine.ParseFEN(fen)
	if err != nil {
		e.report(resp, err)
		return
	}
	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		rest = rest[1:]
	}

	e.board = board
	for _, text := range rest {
		if err := e.playback(text); err != nil {
			resp.Err = err
			resp.add("info string illegal move " + text)
			return
		}
	}
}

// splitMoves separates FEN fields from a trailing "moves" list.
func splitMoves(args []string) (fields, moves []string) {
	for i, arg := range args {
		if strings.ToLower(arg) == "moves" {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// playback plays one long algebraic move such as "e2e4" or "e7e8n".
func (e *Engine) playback(text string) error {
	moveErr := &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, FEN: engine.ToFEN(e.board)}
	if len(text) != 4 && len(text) != 5 {
		return moveErr
	}
	promo := chess.Queen
	if len(text) == 5 {
		promo = chess.KindFromPromotionChar(text[4])
		if promo == chess.None {
			return moveErr
		}
	}
	move := engine.MakeMoveWithPromotion(e.board, text[0:2], text[2:4], promo)
	if !move.Valid() {
		return moveErr
	}
	return nil
}

// perft prints a divide of the current position followed by the total.
func (e *Engine) perft(resp *Response, args []string) {
	if len(args) != 1 {
		e.report(resp, errors.Wrap(errors.ErrUnknownCommand, "perft: expected a depth"))
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 || depth > config.MaxPerftDepth {
		e.report(resp, fmt.Errorf("perft depth %q outside 1..%d: %w",
			args[0], config.MaxPerftDepth, errors.ErrUnknownCommand))
		return
	}

	results := engine.PerftDivide(e.board, depth, e.cfg.Perft.Workers)
	for _, r := range results {
		resp.add(fmt.Sprintf("%s: %d", r.Move, r.Nodes))
	}
	resp.add("")
	resp.add(fmt.Sprintf("Nodes searched: %d", engine.TotalNodes(results)))
}

func (e *Engine) report(resp *Response, err error) {
	resp.Err = err
	resp.add("info string " + err.Error())
}
