package contains

import (
	"iter"
	"maps"
)

// HashSet is an unordered set backed by a map. Membership is an average
// O(1) hash lookup.
type HashSet[T comparable] map[T]struct{}

// NewHashSet returns a HashSet holding the given items.
func NewHashSet[T comparable](items ...T) HashSet[T] {
	s := make(HashSet[T], len(items))
	s.Add(items...)
	return s
}

// Add inserts items into the set. Already-present items are no-ops.
func (s HashSet[T]) Add(items ...T) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// Remove deletes item from the set if present.
func (s HashSet[T]) Remove(item T) {
	delete(s, item)
}

// Len returns the number of elements in the set.
func (s HashSet[T]) Len() int {
	return len(s)
}

// Values returns the elements in no particular order.
func (s HashSet[T]) Values() iter.Seq[T] {
	return maps.Keys(s)
}

// Contains reports whether item is a member of the set.
func (s HashSet[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}
