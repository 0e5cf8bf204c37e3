package runner

import (
	"context"
	"sync"
)

//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=runner

// Worker defines something that runs and returns an error.
type Worker interface {
	Start(ctx context.Context) error
}

// Runner runs workers off the caller's goroutine and collects the first error.
type Runner struct {
	mu      sync.Mutex
	workers []Worker
	wg      sync.WaitGroup
	errCh   chan error
}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{
		errCh: make(chan error, 1), // buffer size 1 to avoid blocking on first error
	}
}

// AddWorker adds a Worker to be run later.
func (r *Runner) AddWorker(worker Worker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers = append(r.workers, worker)
}

// Run starts all added workers and blocks until every worker has returned.
// Workers observe ctx for cancellation. The first worker error is returned.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	workers := append([]Worker(nil), r.workers...)
	r.mu.Unlock()

	for _, w := range workers {
		r.runWorker(ctx, w)
	}

	r.wg.Wait()

	select {
	case err := <-r.errCh:
		return err
	default:
		return nil
	}
}

// runWorker runs a single Worker in a goroutine.
func (r *Runner) runWorker(ctx context.Context, worker Worker) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := worker.Start(ctx); err != nil {
			r.sendError(err)
		}
	}()
}

// sendError tries to send the first encountered error to errCh.
func (r *Runner) sendError(err error) {
	select {
	case r.errCh <- err:
	default:
	}
}
