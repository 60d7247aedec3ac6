package traverse

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trog4444/parallel/pkg/async"
)

func TestTraverse_FirstPullForcesOnlyFirstChunk(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var mu sync.Mutex
	projected := map[string]bool{}
	proj := func(item string) async.Computation[string] {
		mu.Lock()
		projected[item] = true
		mu.Unlock()
		return async.Unit(item)
	}

	it := Traverse(ctx, 2, proj, []string{"a", "b", "c", "d"})

	r, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "a", r.Value())

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, projected["a"])
	assert.True(t, projected["b"], "the whole containing chunk is forced together")
	assert.False(t, projected["c"], "chunks beyond the pull must never start")
	assert.False(t, projected["d"])
}

func TestTraverse_SecondChunkForcedOnDemand(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var mu sync.Mutex
	var invoked []int
	proj := func(item int) async.Computation[int] {
		mu.Lock()
		invoked = append(invoked, item)
		mu.Unlock()
		return async.Unit(item * 10)
	}

	it := Traverse(ctx, 2, proj, []int{1, 2, 3, 4})

	for i := 0; i < 3; i++ {
		_, ok := it.Next()
		require.True(t, ok)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, invoked, "third pull crosses into the second chunk")
}

func TestTraverse_CollectPreservesOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	proj := func(item int) async.Computation[int] {
		return delayed(time.Duration(4-item)*10*time.Millisecond, item*item)
	}

	results := Traverse(ctx, 2, proj, []int{0, 1, 2, 3}).Collect()
	assert.Equal(t, []int{0, 1, 4, 9}, values(results))
}

func TestTraverse_Exhausted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	it := Traverse(ctx, 3, func(v int) async.Computation[int] { return async.Unit(v) }, []int{1})
	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok, "exhausted iterator stays exhausted")
}

func TestTraverse_EmptyAndNilInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	proj := func(v int) async.Computation[int] {
		t.Fatal("projection must not run for empty input")
		return nil
	}

	assert.Empty(t, Traverse(ctx, 2, proj, nil).Collect())
	assert.Empty(t, Traverse(ctx, 2, proj, []int{}).Collect())
}

func TestTraverse_ClampsCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	proj := func(v int) async.Computation[int] { return async.Unit(v) }
	results := Traverse(ctx, -3, proj, []int{1, 2, 3}).Collect()
	assert.Equal(t, []int{1, 2, 3}, values(results))
}

func TestSequence_LazyChunkedExecution(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var mu sync.Mutex
	ran := map[int]bool{}
	mark := func(i int) async.Computation[int] {
		return func(ctx context.Context) (int, error) {
			mu.Lock()
			ran[i] = true
			mu.Unlock()
			return i, nil
		}
	}

	it := Sequence(ctx, 2, []async.Computation[int]{mark(0), mark(1), mark(2), mark(3)})

	r, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 0, r.Value())

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, ran[0])
	assert.True(t, ran[1])
	assert.False(t, ran[2], "unpulled chunk must never execute")
	assert.False(t, ran[3])
}

func TestSequence_ChunkMembersRunConcurrently(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	comps := []async.Computation[int]{
		delayed(50*time.Millisecond, 1),
		delayed(50*time.Millisecond, 2),
		delayed(50*time.Millisecond, 3),
	}

	start := time.Now()
	results := Sequence(ctx, 3, comps).Collect()
	assert.Less(t, time.Since(start), 140*time.Millisecond, "chunk members run concurrently")
	assert.Equal(t, []int{1, 2, 3}, values(results))
}
