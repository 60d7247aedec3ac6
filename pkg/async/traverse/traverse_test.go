package traverse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trog4444/parallel/pkg/async"
)

func delayed[T any](d time.Duration, v T) async.Computation[T] {
	return func(ctx context.Context) (T, error) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return v, nil
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func values[T any](results []async.Result[T]) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		out = append(out, r.Value())
	}
	return out
}

func TestChunkBySize_PreservesInputOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// c1 is delayed well past c0; completion order must not leak into
	// result order
	comps := []async.Computation[int]{
		delayed(10*time.Millisecond, 0),
		delayed(80*time.Millisecond, 1),
		delayed(40*time.Millisecond, 2),
		delayed(0, 3),
	}

	results := ChunkBySize(ctx, 2, comps)
	require.Len(t, results, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, values(results))
}

func TestChunkBySize_ClampsDegreeToOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	comps := []async.Computation[int]{async.Unit(1), async.Unit(2), async.Unit(3)}

	zero := ChunkBySize(ctx, 0, comps)
	neg := ChunkBySize(ctx, -5, comps)
	one := ChunkBySize(ctx, 1, comps)

	assert.Equal(t, values(one), values(zero))
	assert.Equal(t, values(one), values(neg))
}

func TestChunkBySize_NilAndEmptyStartNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Empty(t, ChunkBySize[int](ctx, 3, nil))
	assert.Empty(t, ChunkBySize(ctx, 3, []async.Computation[int]{}))
}

func TestChunkBySize_FailuresStayInPlace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	results := ChunkBySize(ctx, 2, []async.Computation[int]{
		async.Unit(1),
		async.FailWith[int](boom),
		async.Unit(3),
	})

	require.Len(t, results, 3)
	assert.True(t, results[0].IsSuccess())
	assert.True(t, results[1].IsFailure())
	assert.ErrorIs(t, results[1].Err(), boom)
	assert.True(t, results[2].IsSuccess())
}

func TestSplitInto_RoughlyEqualGroupsPreserveOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	comps := make([]async.Computation[int], 7)
	for i := range comps {
		comps[i] = delayed(time.Duration(7-i)*5*time.Millisecond, i)
	}

	results := SplitInto(ctx, 3, comps)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, values(results))
}

func TestSplitInto_ClampsCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	comps := []async.Computation[int]{async.Unit(1), async.Unit(2)}
	assert.Equal(t, []int{1, 2}, values(SplitInto(ctx, -1, comps)))
	assert.Equal(t, []int{1, 2}, values(SplitInto(ctx, 100, comps)))
}

func TestSplitBounds_SizesDifferByAtMostOne(t *testing.T) {
	t.Parallel()

	bounds := splitBounds(10, 3)
	require.Len(t, bounds, 3)
	sizes := []int{}
	for _, b := range bounds {
		sizes = append(sizes, b[1]-b[0])
	}
	assert.Equal(t, []int{4, 3, 3}, sizes)
	assert.Equal(t, 0, bounds[0][0])
	assert.Equal(t, 10, bounds[2][1])
}

func TestAll_RunsEverythingConcurrently(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	comps := make([]async.Computation[int], 5)
	for i := range comps {
		comps[i] = delayed(50*time.Millisecond, i)
	}

	start := time.Now()
	results := All(ctx, comps)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, values(results))
}
