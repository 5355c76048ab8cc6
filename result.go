package contains

// Result holds either a success value of type T or a failure value of
// type E. The zero value is a failure holding E's zero value.
type Result[T comparable, E any] struct {
	val  T
	fail E
	ok   bool
}

// Ok returns a Result holding the success value.
func Ok[T comparable, E any](value T) Result[T, E] {
	return Result[T, E]{val: value, ok: true}
}

// Err returns a Result holding the failure value.
func Err[T comparable, E any](failure E) Result[T, E] {
	return Result[T, E]{fail: failure}
}

// IsOk reports whether the Result is the success variant.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Get returns the success value and whether the Result holds one.
func (r Result[T, E]) Get() (T, bool) {
	return r.val, r.ok
}

// Err returns the failure value and whether the Result holds one.
func (r Result[T, E]) Err() (E, bool) {
	return r.fail, !r.ok
}

// Contains reports whether the Result is the success variant and its value
// equals item. Failures contain nothing, whatever they hold.
func (r Result[T, E]) Contains(item T) bool {
	return r.ok && r.val == item
}
