package chain

import (
	"context"

	"github.com/trog4444/parallel/pkg/async"
	"github.com/trog4444/parallel/pkg/async/compose"
	"github.com/trog4444/parallel/pkg/async/enrich"
)

// Chain wraps a Computation with context to enable fluent composition.
// Nothing runs until Run or Finally.
type Chain[T any] struct {
	ctx  context.Context
	comp async.Computation[T]
}

// From creates a new chain from a computation
func From[T any](ctx context.Context, comp async.Computation[T]) *Chain[T] {
	return &Chain[T]{
		ctx:  ctx,
		comp: comp,
	}
}

// FromValue creates a new chain from an immediate value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:  ctx,
		comp: async.Unit(value),
	}
}

// Computation returns the underlying composed computation
func (c *Chain[T]) Computation() async.Computation[T] {
	return c.comp
}

// Then chains a computation-returning function
func (c *Chain[T]) Then(onSuccess func(context.Context, T) async.Computation[T]) *Chain[T] {
	return &Chain[T]{
		ctx:  c.ctx,
		comp: compose.Bind(c.comp, onSuccess),
	}
}

// ThenTry chains a function that returns (T, error)
func (c *Chain[T]) ThenTry(tryOnSuccess func(context.Context, T) (T, error)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		comp: compose.Bind(c.comp, func(ctx context.Context, v T) async.Computation[T] {
			return func(ctx context.Context) (T, error) {
				return tryOnSuccess(ctx, v)
			}
		}),
	}
}

// Map chains a pure transformation function
func (c *Chain[T]) Map(onSuccess func(context.Context, T) T) *Chain[T] {
	return &Chain[T]{
		ctx:  c.ctx,
		comp: compose.Map(c.comp, onSuccess),
	}
}

// Ensure performs a side effect without changing the value
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		comp: compose.Map(c.comp, func(ctx context.Context, v T) T {
			onSuccess(ctx, v)
			return v
		}),
	}
}

// Run executes the chain with error capture and returns the outcome
func (c *Chain[T]) Run() async.Result[T] {
	return async.Capture(c.ctx, c.comp)
}

// Start launches the chain detached and returns the running handle
func (c *Chain[T]) Start() *async.Handle[T] {
	return async.Go(c.ctx, c.comp)
}

// Then chains a function that moves the chain to a new element type
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) async.Computation[U]) *Chain[U] {
	return &Chain[U]{
		ctx:  c.ctx,
		comp: compose.Bind(c.comp, onSuccess),
	}
}

// Map chains a pure type-changing transformation
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:  c.ctx,
		comp: compose.Map(c.comp, onSuccess),
	}
}

// Finally collapses the chain into a final value via handlers
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {

	r := enrich.FoldMap(c.ctx, c.comp, onSuccess, onFailure)
	if r.IsCancel() {
		return onCancel(c.ctx, r.Err())
	}
	return r.Value()
}
