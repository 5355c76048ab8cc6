/*
Package contains provides a uniform membership predicate across many
container shapes: slices, sets, ranges, optional and result values, text,
linked lists and deques.

Two abstractions make up the whole package:

  - [Container] is implemented once per container shape and answers
    "does this container hold this item".
  - [In] is the inverse call order, answering "is this item in that
    container". It is defined once, generically, by forwarding to
    [Container].

Every adapter delegates to the native membership primitive of its shape: a
hash lookup for [HashSet], an ordered descent for the orderedset package, a
bound check for the range types, a substring search for [Text], and a linear
equality scan for the sequence shapes. The abstraction adds nothing beyond
one indirect dispatch.

	vec := contains.Slice[int]{1, 2, 3, 4, 5}
	rng := contains.Range[int]{Low: 0, High: 5}
	opt := contains.Some(3)

	for _, c := range []contains.Container[int]{vec, rng, opt} {
		_ = c.Contains(3) // true
	}

	_ = contains.In(3, rng) // true, same result with the subject first

Membership tests never mutate the container or the item, so any container
may be queried concurrently by any number of readers, as long as no writer
mutates it at the same time.
*/
package contains
