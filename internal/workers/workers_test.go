// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *mockWorker) Run(context.Context) error {
	m.runCount.Add(1)
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	err := NewWorkers(2, w1, w2, w3).Run(context.Background())

	require.NoError(t, err)
	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers(4).Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_JoinsFailures(t *testing.T) {
	errFirst := errors.New("first failed")
	errThird := errors.New("third failed")
	ok := &mockWorker{}

	err := NewWorkers(0,
		&mockWorker{err: errFirst},
		ok,
		&mockWorker{err: errThird},
	).Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errThird)
	assert.Equal(t, int32(1), ok.runCount.Load(), "a failure must not stop other workers")
}

func TestWorkers_Run_RespectsLimit(t *testing.T) {
	const limit = 2

	var running, peak atomic.Int32
	job := WorkerFunc(func(context.Context) error {
		now := running.Add(1)
		for {
			old := peak.Load()
			if now <= old || peak.CompareAndSwap(old, now) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
		return nil
	})

	jobs := make([]Worker, 6)
	for i := range jobs {
		jobs[i] = job
	}

	require.NoError(t, NewWorkers(limit, jobs...).Run(context.Background()))
	assert.LessOrEqual(t, peak.Load(), int32(limit))
	assert.Positive(t, peak.Load())
}

func TestWorkers_Run_PassesContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "value")

	var got any
	err := NewWorkers(1, WorkerFunc(func(ctx context.Context) error {
		got = ctx.Value(ctxKey{})
		return nil
	})).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "value", got)
}
