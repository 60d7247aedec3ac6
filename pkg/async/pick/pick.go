package pick

import (
	"context"

	"github.com/trog4444/parallel/pkg/async"
)

// Tag identifies which variant of a closed alternative set is populated.
type Tag int

const (
	TagFirst Tag = iota + 1
	TagSecond
	TagThird
)

// Alt2 is a closed two-variant alternative; exactly one side is populated.
type Alt2[A, B any] struct {
	tag    Tag
	first  A
	second B
}

func First2[A, B any](v A) Alt2[A, B] {
	return Alt2[A, B]{tag: TagFirst, first: v}
}

func Second2[A, B any](v B) Alt2[A, B] {
	return Alt2[A, B]{tag: TagSecond, second: v}
}

func (a Alt2[A, B]) Tag() Tag {
	return a.tag
}

// Alt3 is a closed three-variant alternative.
type Alt3[A, B, C any] struct {
	tag    Tag
	first  A
	second B
	third  C
}

func First3[A, B, C any](v A) Alt3[A, B, C] {
	return Alt3[A, B, C]{tag: TagFirst, first: v}
}

func Second3[A, B, C any](v B) Alt3[A, B, C] {
	return Alt3[A, B, C]{tag: TagSecond, second: v}
}

func Third3[A, B, C any](v C) Alt3[A, B, C] {
	return Alt3[A, B, C]{tag: TagThird, third: v}
}

func (a Alt3[A, B, C]) Tag() Tag {
	return a.tag
}

// Map2 runs comp, dispatches on the resolved variant and applies the
// matching value-returning handler. A failed or cancelled comp propagates
// untouched; no handler runs.
func Map2[A, B, R any](ctx context.Context, comp async.Computation[Alt2[A, B]],
	onFirst func(ctx context.Context, v A) R,
	onSecond func(ctx context.Context, v B) R) async.Result[R] {

	in := async.Capture(ctx, comp)
	if !in.IsSuccess() {
		return async.CancelFrom[Alt2[A, B], R](in)
	}

	alt := in.Value()
	if alt.tag == TagSecond {
		return async.Success(onSecond(ctx, alt.second))
	}
	return async.Success(onFirst(ctx, alt.first))
}

// Bind2 is the chaining form of Map2: the matching handler returns a new
// computation which is run and awaited for the final result.
func Bind2[A, B, R any](ctx context.Context, comp async.Computation[Alt2[A, B]],
	onFirst func(ctx context.Context, v A) async.Computation[R],
	onSecond func(ctx context.Context, v B) async.Computation[R]) async.Result[R] {

	in := async.Capture(ctx, comp)
	if !in.IsSuccess() {
		return async.CancelFrom[Alt2[A, B], R](in)
	}

	alt := in.Value()
	if alt.tag == TagSecond {
		return async.Capture(ctx, onSecond(ctx, alt.second))
	}
	return async.Capture(ctx, onFirst(ctx, alt.first))
}

// Map3 runs comp and applies the matching handler of the three-variant set.
func Map3[A, B, C, R any](ctx context.Context, comp async.Computation[Alt3[A, B, C]],
	onFirst func(ctx context.Context, v A) R,
	onSecond func(ctx context.Context, v B) R,
	onThird func(ctx context.Context, v C) R) async.Result[R] {

	in := async.Capture(ctx, comp)
	if !in.IsSuccess() {
		return async.CancelFrom[Alt3[A, B, C], R](in)
	}

	alt := in.Value()
	switch alt.tag {
	case TagSecond:
		return async.Success(onSecond(ctx, alt.second))
	case TagThird:
		return async.Success(onThird(ctx, alt.third))
	default:
		return async.Success(onFirst(ctx, alt.first))
	}
}

// Bind3 is the chaining form of Map3.
func Bind3[A, B, C, R any](ctx context.Context, comp async.Computation[Alt3[A, B, C]],
	onFirst func(ctx context.Context, v A) async.Computation[R],
	onSecond func(ctx context.Context, v B) async.Computation[R],
	onThird func(ctx context.Context, v C) async.Computation[R]) async.Result[R] {

	in := async.Capture(ctx, comp)
	if !in.IsSuccess() {
		return async.CancelFrom[Alt3[A, B, C], R](in)
	}

	alt := in.Value()
	switch alt.tag {
	case TagSecond:
		return async.Capture(ctx, onSecond(ctx, alt.second))
	case TagThird:
		return async.Capture(ctx, onThird(ctx, alt.third))
	default:
		return async.Capture(ctx, onFirst(ctx, alt.first))
	}
}
