package contains

// Option holds either a single value or nothing.
// The zero value is the empty Option.
type Option[T comparable] struct {
	val     T
	present bool
}

// Some returns an Option holding value.
func Some[T comparable](value T) Option[T] {
	return Option[T]{val: value, present: true}
}

// None returns the empty Option.
func None[T comparable]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether one is present.
// When no value is present, it returns the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.present
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// Contains reports whether a value is present and equal to item.
// The empty Option contains nothing.
func (o Option[T]) Contains(item T) bool {
	return o.present && o.val == item
}
