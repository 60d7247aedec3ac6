package traverse

import (
	"context"
	"sync"

	"github.com/trog4444/parallel/pkg/async"
)

// ChunkBySize partitions comps into fixed-size groups (the last may be
// smaller), runs every group's members concurrently and all groups
// concurrently, and returns the results concatenated in input order. size
// below 1 is clamped to 1. A nil or empty input yields an empty result with
// nothing started.
func ChunkBySize[T any](ctx context.Context, size int, comps []async.Computation[T]) []async.Result[T] {
	return runGroups(ctx, chunkBounds(len(comps), clamp(size)), comps)
}

// SplitInto partitions comps into count contiguous groups of roughly equal
// length (sizes differ by at most one, larger groups first) and runs them
// like ChunkBySize. count below 1 is clamped to 1.
func SplitInto[T any](ctx context.Context, count int, comps []async.Computation[T]) []async.Result[T] {
	return runGroups(ctx, splitBounds(len(comps), clamp(count)), comps)
}

// All runs every computation concurrently as one group, results in input
// order.
func All[T any](ctx context.Context, comps []async.Computation[T]) []async.Result[T] {
	if len(comps) == 0 {
		return []async.Result[T]{}
	}
	return runGroups(ctx, [][2]int{{0, len(comps)}}, comps)
}

func clamp(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// chunkBounds yields [start, end) index pairs for fixed-size grouping.
func chunkBounds(n, size int) [][2]int {
	if n == 0 {
		return nil
	}
	bounds := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		bounds = append(bounds, [2]int{start, end})
	}
	return bounds
}

// splitBounds yields index pairs for count roughly-equal contiguous groups.
func splitBounds(n, count int) [][2]int {
	if n == 0 {
		return nil
	}
	if count > n {
		count = n
	}
	base := n / count
	rem := n % count
	bounds := make([][2]int, 0, count)
	start := 0
	for i := 0; i < count; i++ {
		size := base
		if i < rem {
			size++
		}
		bounds = append(bounds, [2]int{start, start + size})
		start += size
	}
	return bounds
}

func runGroups[T any](ctx context.Context, bounds [][2]int, comps []async.Computation[T]) []async.Result[T] {
	results := make([]async.Result[T], len(comps))
	if len(comps) == 0 {
		return results
	}

	wg := &sync.WaitGroup{}
	for _, b := range bounds {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			runGroup(ctx, comps[start:end], results[start:end])
		}(b[0], b[1])
	}
	wg.Wait()

	return results
}

// runGroup starts every member detached, then awaits them in order,
// writing each outcome to its own slot.
func runGroup[T any](ctx context.Context, comps []async.Computation[T], results []async.Result[T]) {
	handles := make([]*async.Handle[T], len(comps))
	for i, comp := range comps {
		handles[i] = async.Go(ctx, comp)
	}
	for i, h := range handles {
		results[i] = h.Await(ctx)
	}
}
