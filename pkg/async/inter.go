package async

import (
	"context"
	"time"
)

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the computation failed
	Err() error
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the computation was cancelled
	IsCancel() bool
}

// Awaiter is the surface of a started computation: it can be awaited any
// number of times and always reports the same resolution.
type Awaiter[T any] interface {
	Await(ctx context.Context) Result[T]
	TryResult() (Result[T], bool)
	Done() <-chan struct{}
}
