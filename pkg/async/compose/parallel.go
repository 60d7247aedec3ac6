package compose

import (
	"context"

	"github.com/trog4444/parallel/pkg/async"
)

// Map2 starts both argument computations concurrently in argument order,
// awaits them strictly in argument order, then applies f. The first failure
// in await order propagates, even when a later-listed argument failed
// earlier in wall-clock time.
func Map2[A, B, R any](ma async.Computation[A], mb async.Computation[B],
	f func(ctx context.Context, a A, b B) R) async.Computation[R] {

	return func(ctx context.Context) (R, error) {
		ha := async.Go(ctx, ma)
		hb := async.Go(ctx, mb)

		ra := ha.Await(ctx)
		if !ra.IsSuccess() {
			var zero R
			return zero, ra.Err()
		}
		rb := hb.Await(ctx)
		if !rb.IsSuccess() {
			var zero R
			return zero, rb.Err()
		}
		return f(ctx, ra.Value(), rb.Value()), nil
	}
}

// Map3 is Map2 over three concurrent arguments.
func Map3[A, B, C, R any](ma async.Computation[A], mb async.Computation[B], mc async.Computation[C],
	f func(ctx context.Context, a A, b B, c C) R) async.Computation[R] {

	return func(ctx context.Context) (R, error) {
		ha := async.Go(ctx, ma)
		hb := async.Go(ctx, mb)
		hc := async.Go(ctx, mc)

		ra := ha.Await(ctx)
		if !ra.IsSuccess() {
			var zero R
			return zero, ra.Err()
		}
		rb := hb.Await(ctx)
		if !rb.IsSuccess() {
			var zero R
			return zero, rb.Err()
		}
		rc := hc.Await(ctx)
		if !rc.IsSuccess() {
			var zero R
			return zero, rc.Err()
		}
		return f(ctx, ra.Value(), rb.Value(), rc.Value()), nil
	}
}

// Bind2 runs both arguments concurrently like Map2, then chains into the
// computation returned by f.
func Bind2[A, B, R any](ma async.Computation[A], mb async.Computation[B],
	f func(ctx context.Context, a A, b B) async.Computation[R]) async.Computation[R] {

	return Flatten(Map2(ma, mb, f))
}

// Bind3 runs three arguments concurrently like Map3, then chains into the
// computation returned by f.
func Bind3[A, B, C, R any](ma async.Computation[A], mb async.Computation[B], mc async.Computation[C],
	f func(ctx context.Context, a A, b B, c C) async.Computation[R]) async.Computation[R] {

	return Flatten(Map3(ma, mb, mc, f))
}
