package contains

import "slices"

// Slice adapts a slice to [Container] using a linear equality scan.
// Fixed-size arrays are tested by slicing them first: Slice[int](arr[:]).
type Slice[T comparable] []T

func (s Slice[T]) Contains(item T) bool {
	return Contains(s, item)
}

// Seq adapts a slice to Container[[]T]: it holds an item slice iff the item
// occurs as a contiguous, order-preserving sub-sequence.
type Seq[T comparable] []T

func (s Seq[T]) Contains(item []T) bool {
	return ContainsSeq(s, item)
}

// Contains checks if the target element exists in the collection.
// Works for comparable types.
func Contains[T comparable](collection []T, target T) bool {
	if len(collection) == 0 {
		return false
	}
	_ = collection[len(collection)-1] // BCE hint
	for _, v := range collection {
		if v == target {
			return true
		}
	}
	return false
}

// ContainsFunc checks if any element satisfies the predicate.
// Useful for non-comparable types or custom matching logic.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	if len(collection) == 0 {
		return false
	}
	_ = collection[len(collection)-1]

	for _, item := range collection {
		if predicate(item) {
			return true
		}
	}
	return false
}

// ContainsSeq checks if sub occurs as a contiguous, order-preserving
// sub-sequence of collection, by scanning every window of len(sub) elements.
// An empty sub matches vacuously. A sub longer than collection never matches.
//
// The scan is the naive O(n*m) one: this is a convenience predicate, not a
// search primitive for large inputs.
func ContainsSeq[T comparable](collection, sub []T) bool {
	if len(sub) == 0 {
		return true
	}
	if len(sub) > len(collection) {
		return false
	}
	for i := 0; i+len(sub) <= len(collection); i++ {
		if slices.Equal(collection[i:i+len(sub)], sub) {
			return true
		}
	}
	return false
}
