package worker

import (
	"context"
	"runtime"
	"sort"

	"github.com/lgbarn/tinychess-go/internal/chess"
	"github.com/lgbarn/tinychess-go/internal/engine"
)

// Split is the node count below one root move.
type Split struct {
	Move  chess.Move
	Nodes uint64
}

// DivideResult is a perft split of a position.
type DivideResult struct {
	Depth   int
	Workers int
	Splits  []Split // in legal move generation order
	Total   uint64
}

// ParallelDivide counts the perft leaves below each legal root move, one
// root move per work item. workers < 1 uses one worker per CPU. Cancelling
// ctx stops queued items and returns ctx.Err().
func ParallelDivide(ctx context.Context, pos chess.Position, depth, workers int) (DivideResult, error) {
	result := DivideResult{Depth: depth}
	if depth <= 0 {
		result.Total = 1
		return result, nil
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	legal := engine.GenerateLegalMoves(&pos)
	pool := NewPool(countSubtree(ctx), WithWorkers(workers), WithBufferSize(legal.Len()))
	pool.Start()
	result.Workers = pool.NumWorkers()

	go func() {
		for i, m := range legal.Moves() {
			if ctx.Err() != nil {
				pool.Stop()
				break
			}
			pool.Submit(WorkItem{Position: engine.Apply(pos, m), Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	splits := make([]Split, 0, legal.Len())
	indexes := make(map[chess.Move]int, legal.Len())
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			pool.Stop()
			continue
		}
		indexes[r.Move] = r.Index
		splits = append(splits, Split{Move: r.Move, Nodes: r.Nodes})
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return result, firstErr
	}

	sort.Slice(splits, func(i, j int) bool {
		return indexes[splits[i].Move] < indexes[splits[j].Move]
	})
	for _, s := range splits {
		result.Total += s.Nodes
	}
	result.Splits = splits
	return result, nil
}

func countSubtree(ctx context.Context) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		if err := ctx.Err(); err != nil {
			return ProcessResult{Move: item.Move, Index: item.Index, Error: err}
		}
		return ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: engine.Perft(item.Position, item.Depth),
		}
	}
}
