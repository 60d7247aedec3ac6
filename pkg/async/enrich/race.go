package enrich

import (
	"context"

	"github.com/trog4444/parallel/pkg/async"
)

type raceItem[T any] struct {
	idx int
	res async.Result[async.Option[T]]
}

// RaceFoldMap races the whole set concurrently: the first member to resolve
// successfully with a present value wins, and onSome is applied to the
// state and the winning value. An empty set, or a set where no member
// produces a value, resolves with state unchanged. Failures among
// non-winning members are swallowed; only when every member failed does the
// first failure in input order propagate.
func RaceFoldMap[T, S any](ctx context.Context, comps []async.Computation[async.Option[T]],
	onSome func(ctx context.Context, state S, v T) S, state S) async.Result[S] {

	win, ok, r := race(ctx, comps)
	if !ok {
		return settle(r, state)
	}
	return async.Success(onSome(ctx, state, win))
}

// RaceFoldBind is the chaining form of RaceFoldMap: onSome returns a new
// computation whose outcome becomes the final result.
func RaceFoldBind[T, S any](ctx context.Context, comps []async.Computation[async.Option[T]],
	onSome func(ctx context.Context, state S, v T) async.Computation[S], state S) async.Result[S] {

	win, ok, r := race(ctx, comps)
	if !ok {
		return settle(r, state)
	}
	return async.Capture(ctx, onSome(ctx, state, win))
}

// noWinner describes how a winnerless race resolved.
type noWinner struct {
	err       error
	cancelled bool
}

func settle[S any](n noWinner, state S) async.Result[S] {
	if n.cancelled {
		return async.Cancel[S](n.err)
	}
	if n.err != nil {
		return async.Fail[S](n.err)
	}
	return async.Success(state)
}

func race[T any](ctx context.Context, comps []async.Computation[async.Option[T]]) (T, bool, noWinner) {
	var zero T
	if len(comps) == 0 {
		return zero, false, noWinner{}
	}

	rctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan raceItem[T], len(comps))
	for i, comp := range comps {
		h := async.Go(rctx, comp)
		go func(i int) {
			ch <- raceItem[T]{idx: i, res: h.Await(rctx)}
		}(i)
	}

	results := make([]async.Result[async.Option[T]], len(comps))
	for range comps {
		select {
		case <-ctx.Done():
			return zero, false, noWinner{err: ctx.Err(), cancelled: true}
		case it := <-ch:
			if it.res.IsSuccess() {
				if v, ok := it.res.Value().Get(); ok {
					return v, true, noWinner{}
				}
			}
			results[it.idx] = it.res
		}
	}

	// no winner: state passes through unless every member failed outright,
	// in which case the first failure by input order propagates
	allFailed := true
	for _, r := range results {
		if !r.IsFailure() {
			allFailed = false
			break
		}
	}
	if allFailed {
		return zero, false, noWinner{err: results[0].Err()}
	}
	return zero, false, noWinner{}
}
