// Package tasks runs blocking operations on a bounded set of goroutines.
package tasks

import (
	"context"
	"errors"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// Runner bounds how many submitted tasks execute at once.
type Runner struct {
	sem    *semaphore.Weighted
	logger ports.Logger
}

// NewRunner creates a runner with the given number of workers. Values below
// one are raised to one.
func NewRunner(workers int, logger ports.Logger) *Runner {
	return &Runner{
		sem:    semaphore.NewWeighted(int64(max(workers, 1))),
		logger: logger,
	}
}

// Handle is the pending result of a submitted task.
type Handle[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Submit starts fn on the runner and returns immediately. A panic inside fn
// is reported as domain.ErrTaskFailed.
func Submit[T any](ctx context.Context, r *Runner, name string, fn func(context.Context) (T, error)) *Handle[T] {
	h := &Handle[T]{done: make(chan struct{})}

	go func() {
		defer close(h.done)

		if err := r.sem.Acquire(ctx, 1); err != nil {
			h.err = zerr.With(zerr.Wrap(err, "task not started"), "task", name)
			return
		}
		defer r.sem.Release(1)

		defer zerr.Defer(func(err error) {
			r.logger.Warn("task panicked", "task", name, "panic", err.Error())
			h.err = zerr.With(zerr.Wrap(domain.ErrTaskFailed, err.Error()), "task", name)
		})

		r.logger.Debug("task started", "task", name)
		h.value, h.err = fn(ctx)
	}()

	return h
}

// Done is closed once the task has finished.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Await blocks until the task finishes or ctx is done.
func (h *Handle[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-h.done:
		return h.value, h.err
	case <-ctx.Done():
		var zero T
		return zero, errors.Join(domain.ErrTaskFailed, ctx.Err())
	}
}

// Run submits fn and awaits its result.
func Run[T any](ctx context.Context, r *Runner, name string, fn func(context.Context) (T, error)) (T, error) {
	return Submit(ctx, r, name, fn).Await(ctx)
}
