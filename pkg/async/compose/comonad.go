package compose

import (
	"context"

	"github.com/trog4444/parallel/pkg/async"
)

// Extract runs m to completion on the calling goroutine and returns the
// outcome. It blocks: any other logical work sharing this goroutine stalls
// until m resolves.
func Extract[T any](ctx context.Context, m async.Computation[T]) (T, error) {
	if m == nil {
		var zero T
		return zero, async.ErrNilComputation
	}
	return m(ctx)
}

// Duplicate wraps m in a computation that, when run, starts m detached and
// resolves immediately with the still-running handle.
func Duplicate[T any](m async.Computation[T]) async.Computation[*async.Handle[T]] {
	return func(ctx context.Context) (*async.Handle[T], error) {
		return async.Go(ctx, m), nil
	}
}

// Extend is the dual of Bind: it starts m detached and applies f to the
// still-running handle instead of the resolved value.
func Extend[T, R any](m async.Computation[T], f func(ctx context.Context, h *async.Handle[T]) R) async.Computation[R] {
	return func(ctx context.Context) (R, error) {
		return f(ctx, async.Go(ctx, m)), nil
	}
}

// PEval starts slow detached, runs fast to completion, and returns the
// possibly still-running slow handle alongside fast's resolved value. Used
// when the slow branch is expected to outlive this call.
func PEval[S, F any](ctx context.Context, slow async.Computation[S], fast async.Computation[F]) (*async.Handle[S], F, error) {
	hs := async.Go(ctx, slow)
	v, err := fast(ctx)
	return hs, v, err
}

// PEvals starts t1 detached, then starts and awaits t2, returning both
// handles; t2's handle is resolved on return, t1's may still be running.
func PEvals[A, B any](ctx context.Context, t1 async.Computation[A], t2 async.Computation[B]) (*async.Handle[A], *async.Handle[B]) {
	h1 := async.Go(ctx, t1)
	h2 := async.Go(ctx, t2)
	h2.Await(ctx)
	return h1, h2
}
