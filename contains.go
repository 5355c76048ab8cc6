package contains

// Container abstracts over types that can hold items of type T.
// Each container shape implements Contains with its own native membership
// rule: equality scans for sequences, hash or ordered lookups for sets,
// bound checks for ranges, substring search for text.
//
// Contains must be a pure function of the container's current contents and
// the item: it never mutates either and is safe for concurrent readers.
type Container[T any] interface {
	// Contains reports whether item is held by the container.
	Contains(item T) bool
}

// In reports whether item is held by c. It is the inverse call order of
// [Container.Contains], for call sites that read better subject-first:
//
//	contains.In(3, rng)
//
// instead of rng.Contains(3). It forwards the call unchanged and adds no
// logic of its own.
func In[T any](item T, c Container[T]) bool {
	return c.Contains(item)
}
