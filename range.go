package contains

import "cmp"

// The range types cover every combination of bounds over an ordered element
// type. Each one is a plain struct meant to be built with a literal:
//
//	contains.Range[int]{Low: 0, High: 5}
//
// Membership is a bound check, nothing more. An inverted range (Low above
// High) is simply empty.

// Range is the half-open interval [Low, High): Low is included, High is not.
type Range[T cmp.Ordered] struct {
	Low  T
	High T
}

func (r Range[T]) Contains(item T) bool {
	return r.Low <= item && item < r.High
}

// RangeInclusive is the closed interval [Low, High]: both bounds included.
type RangeInclusive[T cmp.Ordered] struct {
	Low  T
	High T
}

func (r RangeInclusive[T]) Contains(item T) bool {
	return r.Low <= item && item <= r.High
}

// RangeFrom is bounded below and unbounded above: [Low, ...).
type RangeFrom[T cmp.Ordered] struct {
	Low T
}

func (r RangeFrom[T]) Contains(item T) bool {
	return r.Low <= item
}

// RangeTo is unbounded below and bounded above, excluding the bound:
// (..., High).
type RangeTo[T cmp.Ordered] struct {
	High T
}

func (r RangeTo[T]) Contains(item T) bool {
	return item < r.High
}

// RangeToInclusive is unbounded below and bounded above, including the
// bound: (..., High].
type RangeToInclusive[T cmp.Ordered] struct {
	High T
}

func (r RangeToInclusive[T]) Contains(item T) bool {
	return item <= r.High
}

// RangeFull is unbounded on both sides: it holds every item.
type RangeFull[T cmp.Ordered] struct{}

func (RangeFull[T]) Contains(T) bool {
	return true
}
