package workers

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	limit   int
}

// NewWorkers groups workers that run at most limit at a time. A limit below
// one runs them all at once.
func NewWorkers(limit int, workers ...Worker) *Workers {
	return &Workers{
		workers: workers,
		limit:   limit,
	}
}

// Run starts every worker and waits for all of them. A failing worker does
// not stop the others; the failures are joined into the returned error.
func (w *Workers) Run(ctx context.Context) error {
	var g errgroup.Group
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}

	errs := make([]error, len(w.workers))
	for i, worker := range w.workers {
		i, worker := i, worker
		g.Go(func() error {
			errs[i] = worker.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
