package attr

import "reflect"

// Transform adapts a value on its way into or out of an attribute. Extra
// arguments passed to Get or Set are forwarded to the transform. Transforms
// must be pure functions of their inputs.
type Transform[T any] func(value T, extra ...any) T

// identity is the default transform for both reads and writes.
func identity[T any](value T, _ ...any) T {
	return value
}

// Change is the payload of a mutable attribute's changed signal.
type Change[T any] struct {
	// Value is the newly stored value.
	Value T

	// Previous is the value that was replaced.
	Previous T

	// Extra carries the extra arguments given to the Set call, if any.
	Extra []any
}

// Update is the payload of an immutable attribute's changed signal. It
// carries only the transformed current value: an update may be a broadcast
// of unchanged state, where "previous" has no meaning.
type Update[T any] struct {
	Value T
	Extra []any
}

// defaultEquals reports value equality via reflect.DeepEqual, which matches
// == for the built-in comparable types and compares slices, maps, and
// structs element-wise. Override with WithEquals when that is too expensive
// or has the wrong semantics for T.
func defaultEquals[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
