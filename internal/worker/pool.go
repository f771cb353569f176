// Package worker provides a worker pool for counting perft subtrees in
// parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/tinychess-go/internal/chess"
)

// WorkItem is one root move to be counted.
type WorkItem struct {
	Position chess.Position // position after Move
	Move     chess.Move
	Depth    int // remaining depth below Move
	Index    int // root move index for ordering
}

// ProcessResult is the subtree count for one root move.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with default settings of one worker and a buffer
// of MaxMoves items, then applies opts.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  chess.MaxMoves,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
