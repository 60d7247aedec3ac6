package async

// Option is a possibly-absent value, used by race-style combinators where a
// member computation may decline to produce a result.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}
