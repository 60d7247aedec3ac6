package async

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Computation is a deferred unit of work. It is re-evaluated on every run:
// running the same Computation value twice executes the work twice. A run
// ends in a value, an error, or a cancellation error from ctx.
type Computation[T any] func(ctx context.Context) (T, error)

var ErrNilComputation = errors.New("nil computation")

// Unit lifts a value into a computation that resolves immediately.
func Unit[T any](v T) Computation[T] {
	return func(ctx context.Context) (T, error) {
		return v, nil
	}
}

// FailWith lifts an error into a computation that fails immediately.
func FailWith[T any](err error) Computation[T] {
	return func(ctx context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// Never resolves only by cancellation of ctx.
func Never[T any]() Computation[T] {
	return func(ctx context.Context) (T, error) {
		<-ctx.Done()
		var zero T
		return zero, ctx.Err()
	}
}

// Sleep resolves after d elapses on the monotonic clock. Negative d is
// clamped to zero.
func Sleep(d time.Duration) Computation[struct{}] {
	return func(ctx context.Context) (struct{}, error) {
		if d < 0 {
			d = 0
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return struct{}{}, nil
		case <-ctx.Done():
			return struct{}{}, ctx.Err()
		}
	}
}

// Capture runs comp and classifies the outcome into the Result trichotomy.
// Panics inside the run are captured as failures. A ctx already cancelled
// before the run starts yields a cancellation without invoking comp.
func Capture[T any](ctx context.Context, comp Computation[T]) Result[T] {
	if comp == nil {
		return Fail[T](ErrNilComputation)
	}
	if err := ctx.Err(); err != nil {
		return Cancel[T](err)
	}

	v, err := protect(ctx, comp)
	if err == nil {
		return Success(v)
	}
	if IsCancellation(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

func protect[T any](ctx context.Context, comp Computation[T]) (v T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("computation panicked: %v", rec)
		}
	}()
	return comp(ctx)
}
