package engine

import (
	"sort"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// perftCacheCapacity bounds the table shared by PerftDivide workers.
const perftCacheCapacity = 1 << 20

// NodeCache stores subtree node counts keyed by position hash and depth.
type NodeCache interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// DivideResult is the node count below one root move.
type DivideResult struct {
	Move  string
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 counts the position itself.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Copy()
		commitMove(child, m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// PerftCached is Perft with transpositions looked up in cache. Subtrees
// of depth 1 are counted directly.
func PerftCached(board *chess.Board, depth int, cache NodeCache) uint64 {
	if depth <= 1 {
		return Perft(board, depth)
	}
	hash := hashing.GenerateZobristHash(board)
	if nodes, ok := cache.Lookup(hash, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range AllLegalMoves(board) {
		child := board.Copy()
		commitMove(child, m)
		nodes += PerftCached(child, depth-1, cache)
	}
	cache.Store(hash, depth, nodes)
	return nodes
}

// PerftDivide splits Perft by root move, counting the subtrees on the
// given number of workers. Results are sorted by move text.
func PerftDivide(board *chess.Board, depth, workers int) []DivideResult {
	if depth <= 0 {
		return nil
	}

	moves := AllLegalMoves(board)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		child := board.Copy()
		commitMove(child, m)
		items[i] = worker.WorkItem{Index: i, Board: child, Move: m, Depth: depth - 1}
	}

	cache := hashing.NewThreadSafePerftCache(perftCacheCapacity)
	pool := worker.NewPool(subtreeCounter(cache), worker.WithWorkers(workers), worker.WithBufferSize(len(items)+1))
	results := make([]DivideResult, 0, len(items))
	for _, r := range pool.Run(items) {
		results = append(results, DivideResult{Move: r.Move.String(), Nodes: r.Nodes})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Move < results[j].Move
	})
	return results
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(results []DivideResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}

// subtreeCounter returns a worker function counting each item's subtree
// against a shared cache.
func subtreeCounter(cache NodeCache) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: PerftCached(item.Board, item.Depth, cache),
		}
	}
}
