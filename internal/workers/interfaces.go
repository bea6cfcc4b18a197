// Package workers runs batches of independent jobs with bounded
// concurrency.
// It defines the Worker interface and a Workers aggregate that runs
// multiple workers and reports every failure at once.
package workers

import "context"

// Worker is one unit of work.
//
// Example implementation:
//
//	type importWorker struct{ source string }
//
//	func (w *importWorker) Run(ctx context.Context) error {
//	    // fetch and store w.source
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the [Worker] interface.
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
