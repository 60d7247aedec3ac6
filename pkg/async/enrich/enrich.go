package enrich

import (
	"context"

	"github.com/trog4444/parallel/pkg/async"
	"github.com/trog4444/parallel/pkg/async/token"
)

// Continuations carries the optional callbacks and cancellation source for
// WithContinuations. A nil Source means the ambient token.Default().
type Continuations[T any] struct {
	Source       *token.CancellationSource
	Continuation func(ctx context.Context, v T)
	OnError      func(ctx context.Context, err error)
}

// WithContinuations unifies "fire and forget with callbacks" and "await
// with captured result". It starts comp detached immediately, running
// against the supplied source (or the ambient default): detached completion
// is ignored, detached failure is routed to OnError (re-raised as a panic
// of the detached goroutine when absent), detached cancellation to onCancel,
// exactly once.
//
// The returned computation is the error-captured wrapper around comp; a
// caller that runs it executes the work a second time, with Continuation
// invoked on its success and OnError on its failure, and the outcome
// returned as a Result rather than a fault.
func WithContinuations[T any](comp async.Computation[T],
	onCancel func(ctx context.Context, err error),
	conts Continuations[T]) async.Computation[async.Result[T]] {

	src := conts.Source
	if src == nil {
		src = token.Default()
	}

	dctx := src.Context()
	h := async.Go(dctx, comp)
	go func() {
		r := h.Await(dctx)
		switch {
		case r.IsSuccess():
			// detached completion is ignored
		case r.IsCancel():
			if onCancel != nil {
				onCancel(dctx, r.Err())
			}
		default:
			if conts.OnError != nil {
				conts.OnError(dctx, r.Err())
			} else {
				panic(r.Err())
			}
		}
	}()

	return func(ctx context.Context) (async.Result[T], error) {
		r := async.Capture(ctx, comp)
		switch {
		case r.IsSuccess():
			if conts.Continuation != nil {
				conts.Continuation(ctx, r.Value())
			}
		case r.IsFailure():
			if conts.OnError != nil {
				conts.OnError(ctx, r.Err())
			}
		}
		return r, nil
	}
}

// FoldMap runs comp with error capture and reduces both outcomes to a
// value: onValue on success, onError on failure. It never re-raises; the
// failure path is always handled. Cancellation passes through as a
// cancellation outcome without touching either handler.
func FoldMap[T, R any](ctx context.Context, comp async.Computation[T],
	onValue func(ctx context.Context, v T) R,
	onError func(ctx context.Context, err error) R) async.Result[R] {

	in := async.Capture(ctx, comp)
	if in.IsCancel() {
		return async.CancelFrom[T, R](in)
	}
	if in.IsSuccess() {
		return async.Success(onValue(ctx, in.Value()))
	}
	return async.Success(onError(ctx, in.Err()))
}

// FoldBind is the chaining form of FoldMap: handlers return a new
// computation whose outcome becomes the final result.
func FoldBind[T, R any](ctx context.Context, comp async.Computation[T],
	onValue func(ctx context.Context, v T) async.Computation[R],
	onError func(ctx context.Context, err error) async.Computation[R]) async.Result[R] {

	in := async.Capture(ctx, comp)
	if in.IsCancel() {
		return async.CancelFrom[T, R](in)
	}
	if in.IsSuccess() {
		return async.Capture(ctx, onValue(ctx, in.Value()))
	}
	return async.Capture(ctx, onError(ctx, in.Err()))
}
