package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Engine computes the next generation of a grid with a fixed neighbour counting strategy.
type Engine struct {
	counter NeighborCounter
	workers int
}

// NewEngine builds an engine for the given boundary. workers <= 0 uses one worker per CPU.
func NewEngine(boundary Boundary, workers int) (*Engine, error) {
	counter, err := NewNeighborCounter(boundary)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{counter: counter, workers: workers}, nil
}

// Workers returns the number of goroutines a pass is split across.
func (e *Engine) Workers() int {
	return e.workers
}

// Compute writes the next generation of g into its scratch buffer. Every cell of the
// scratch buffer is overwritten; the current buffer is only read. It does not swap.
func (e *Engine) Compute(g *Grid) {
	numWorkers := min(e.workers, g.height)
	if numWorkers <= 1 {
		e.computeRows(g, 0, g.height)
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			e.computeRows(g, startRow, endRow)
			return nil
		})
	}

	// workers never fail; Wait is the barrier before the caller swaps
	_ = eg.Wait()
}

func (e *Engine) computeRows(g *Grid, startRow, endRow int) {
	cur, next := g.cur(), g.next()
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			next[y][x] = rules.ApplyConwayRules(e.counter.CountNeighbors(g, x, y), cur[y][x])
		}
	}
}
