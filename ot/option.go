package ot

// Option holds the result of a search which may find nothing, e.g. looking
// up a feature by tag.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a found value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None is the empty result.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

// Unwrap returns the value in the usual (value, ok) form.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// Or returns the value if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}
