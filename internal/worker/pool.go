package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// ErrSkipped is reported for inputs that were never processed because the
// pool stopped early.
var ErrSkipped = errors.New("task skipped")

// Task represents a unit of work to be processed by the pool.
type Task[T any, R any] struct {
	Input  T
	Result R
	Err    error
}

// ProcessFunc is the function signature for processing a single task.
type ProcessFunc[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool is a generic worker pool with configurable concurrency.
type Pool[T any, R any] struct {
	workers  int
	process  ProcessFunc[T, R]
	failFast bool
	logger   zerolog.Logger
}

// NewPool creates a new worker pool.
func NewPool[T any, R any](workers int, fn ProcessFunc[T, R], logger zerolog.Logger) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{
		workers: workers,
		process: fn,
		logger:  logger,
	}
}

// FailFast makes Execute stop handing out inputs after the first failure.
func (p *Pool[T, R]) FailFast() *Pool[T, R] {
	p.failFast = true
	return p
}

// Execute runs all inputs through the worker pool and returns one Task per
// input, at the input's index. Inputs are handed out in order, so when the
// pool stops early every input before the first failure has been processed.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Task[T, R] {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]Task[T, R], len(inputs))
	ran := make([]bool, len(inputs))
	inputCh := make(chan int, len(inputs))

	for i := range inputs {
		inputCh <- i
	}
	close(inputCh)

	workers := min(p.workers, len(inputs))

	var wg sync.WaitGroup

	// Start workers.
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				idx, ok := <-inputCh
				if !ok {
					return
				}
				result, err := p.process(ctx, inputs[idx])
				results[idx] = Task[T, R]{
					Input:  inputs[idx],
					Result: result,
					Err:    err,
				}
				ran[idx] = true
				if err != nil {
					p.logger.Error().Err(err).Int("worker", workerID).Int("index", idx).Msg("Task failed")
					if p.failFast {
						cancel()
					}
				}
			}
		}(w)
	}

	// Wait for all workers to finish.
	wg.Wait()

	for i := range results {
		if ran[i] {
			continue
		}
		results[i] = Task[T, R]{Input: inputs[i], Err: ErrSkipped}
		if err := context.Cause(ctx); err != nil && !p.failFast {
			results[i].Err = err
		}
	}
	return results
}
