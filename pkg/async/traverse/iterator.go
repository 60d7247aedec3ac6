package traverse

import (
	"context"

	"github.com/trog4444/parallel/pkg/async"
)

// Iterator is a pull-driven sequence of results backed by chunked lazy
// execution. Pulling into a new chunk launches that whole chunk's
// computations concurrently, blocks materializing it, then yields its
// results one by one. Chunks the consumer never reaches are never started.
type Iterator[R any] struct {
	fetch   func(chunk int) []async.Result[R]
	nchunks int
	chunk   int
	buf     []async.Result[R]
	pos     int
}

// Next yields the next result, forcing the containing chunk on first entry.
// The second return is false once the sequence is exhausted.
func (it *Iterator[R]) Next() (async.Result[R], bool) {
	for it.pos >= len(it.buf) {
		if it.chunk >= it.nchunks {
			return async.Result[R]{}, false
		}
		it.buf = it.fetch(it.chunk)
		it.pos = 0
		it.chunk++
	}
	r := it.buf[it.pos]
	it.pos++
	return r, true
}

// Collect drains the iterator, forcing every remaining chunk.
func (it *Iterator[R]) Collect() []async.Result[R] {
	out := make([]async.Result[R], 0)
	for {
		r, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

// Traverse chunks items by count (clamped to at least 1) and yields the
// projected computations' results in input order, executing lazily: the
// projection for an item is invoked, and its computation started, only when
// the consumer pulls into that item's chunk. Members of a forced chunk run
// concurrently while the pulling goroutine blocks materializing them.
func Traverse[I, R any](ctx context.Context, count int, proj func(item I) async.Computation[R], items []I) *Iterator[R] {
	size := clamp(count)
	bounds := chunkBounds(len(items), size)

	return &Iterator[R]{
		nchunks: len(bounds),
		fetch: func(chunk int) []async.Result[R] {
			start, end := bounds[chunk][0], bounds[chunk][1]
			comps := make([]async.Computation[R], end-start)
			for i, item := range items[start:end] {
				comps[i] = proj(item)
			}
			results := make([]async.Result[R], len(comps))
			runGroup(ctx, comps, results)
			return results
		},
	}
}

// Sequence is Traverse over computations themselves.
func Sequence[T any](ctx context.Context, count int, comps []async.Computation[T]) *Iterator[T] {
	return Traverse(ctx, count, func(c async.Computation[T]) async.Computation[T] { return c }, comps)
}
