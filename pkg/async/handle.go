package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Handle is a started computation. It represents exactly one underlying
// execution: awaiting it any number of times returns the same resolved
// Result, never a re-run. Ownership of a handle may move to another flow;
// dropping a handle without awaiting it does not cancel the work.
type Handle[T any] struct {
	id        uuid.UUID
	startedAt time.Time
	done      chan struct{}
	result    Result[T]
}

// Go starts comp detached against ctx and returns immediately with a
// handle to the running execution.
func Go[T any](ctx context.Context, comp Computation[T]) *Handle[T] {
	h := &Handle[T]{
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		h.result = Capture(ctx, comp)
	}()

	return h
}

// Await blocks until the execution resolves and returns its Result. If ctx
// is cancelled first, Await returns a cancellation outcome; the underlying
// execution keeps running and can still be awaited later.
func (h *Handle[T]) Await(ctx context.Context) Result[T] {
	select {
	case <-h.done:
		return h.result
	case <-ctx.Done():
		return Cancel[T](ctx.Err())
	}
}

// TryResult reports the Result if the execution has already resolved.
func (h *Handle[T]) TryResult() (Result[T], bool) {
	select {
	case <-h.done:
		return h.result, true
	default:
		return Result[T]{}, false
	}
}

// Done is closed when the execution resolves; for select-composition.
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

func (h *Handle[T]) ID() uuid.UUID {
	return h.id
}

func (h *Handle[T]) StartedAt() time.Time {
	return h.startedAt
}
