package compose

import (
	"context"

	"github.com/trog4444/parallel/pkg/async"
)

// Map applies a pure function to the resolved value of m.
func Map[A, B any](m async.Computation[A], f func(ctx context.Context, v A) B) async.Computation[B] {
	return func(ctx context.Context) (B, error) {
		a, err := m(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(ctx, a), nil
	}
}

// Bind sequences m with a computation-returning function.
func Bind[A, B any](m async.Computation[A], f func(ctx context.Context, v A) async.Computation[B]) async.Computation[B] {
	return func(ctx context.Context) (B, error) {
		a, err := m(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(ctx, a)(ctx)
	}
}

// Then sequences m with n, discarding m's value.
func Then[A, B any](m async.Computation[A], n async.Computation[B]) async.Computation[B] {
	return func(ctx context.Context) (B, error) {
		if _, err := m(ctx); err != nil {
			var zero B
			return zero, err
		}
		return n(ctx)
	}
}

// Flatten collapses a computation of a computation.
func Flatten[A any](mm async.Computation[async.Computation[A]]) async.Computation[A] {
	return func(ctx context.Context) (A, error) {
		m, err := mm(ctx)
		if err != nil {
			var zero A
			return zero, err
		}
		return m(ctx)
	}
}

// Ap starts ff and fv concurrently (ff first), awaits ff then fv, and
// applies the resolved function to the resolved value. The awaits are in
// that fixed order, so ff's outcome is observed before fv's regardless of
// which finished first.
func Ap[A, B any](fv async.Computation[A], ff async.Computation[func(A) B]) async.Computation[B] {
	return func(ctx context.Context) (B, error) {
		hf := async.Go(ctx, ff)
		hv := async.Go(ctx, fv)

		rf := hf.Await(ctx)
		if !rf.IsSuccess() {
			var zero B
			return zero, rf.Err()
		}
		rv := hv.Await(ctx)
		if !rv.IsSuccess() {
			var zero B
			return zero, rv.Err()
		}
		return rf.Value()(rv.Value()), nil
	}
}
