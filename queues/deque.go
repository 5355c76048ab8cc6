// Package queues provides a double-ended queue whose membership test is a
// linear equality scan over the live elements.
package queues

import (
	"iter"
	"math/bits"
)

// Deque is a double-ended queue over a circular buffer. The capacity is
// always a power of two so positions wrap with idx & mask instead of a
// modulo. Pushes at either end are amortized O(1).
type Deque[T comparable] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the deque
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// NewDeque returns a Deque with at least the given initial capacity,
// holding the given items front to back.
func NewDeque[T comparable](initialCapacity int, items ...T) *Deque[T] {
	if initialCapacity < len(items) {
		initialCapacity = len(items)
	}
	if initialCapacity <= 0 {
		initialCapacity = 16
	}

	// round up to the next power of two
	var capacity int
	if initialCapacity <= 1 {
		capacity = 1
	} else {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}

	d := &Deque[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
	for _, item := range items {
		d.PushBack(item)
	}
	return d
}

// grow doubles the buffer until it fits size+capDiff elements and
// straightens the ring so head is back at index 0.
func (d *Deque[T]) grow(capDiff int) {
	newCapacity := 1 << uint(bits.Len(uint(d.size+capDiff-1)))
	newBuf := make([]T, newCapacity)

	if d.head+d.size <= len(d.buf) {
		// not wrapped around
		copy(newBuf, d.buf[d.head:d.head+d.size])
	} else {
		// wrapped around: head to end, then start to tail
		n := copy(newBuf, d.buf[d.head:])
		tailPos := (d.head + d.size) & d.mask
		copy(newBuf[n:], d.buf[:tailPos])
	}

	clear(d.buf)
	d.buf = newBuf
	d.head = 0
	d.mask = newCapacity - 1
}

// PushBack appends value at the back of the deque.
func (d *Deque[T]) PushBack(value T) {
	if d.size == len(d.buf) {
		d.grow(1)
	}
	d.buf[(d.head+d.size)&d.mask] = value
	d.size++
}

// PushFront prepends value at the front of the deque.
func (d *Deque[T]) PushFront(value T) {
	if d.size == len(d.buf) {
		d.grow(1)
	}
	d.head = (d.head - 1) & d.mask
	d.buf[d.head] = value
	d.size++
}

// PopFront removes and returns the element at the front of the deque.
func (d *Deque[T]) PopFront() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	value = d.buf[d.head]
	var zero T
	d.buf[d.head] = zero // clear reference
	d.head = (d.head + 1) & d.mask
	d.size--
	return value, true
}

// PopBack removes and returns the element at the back of the deque.
func (d *Deque[T]) PopBack() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	tail := (d.head + d.size - 1) & d.mask
	value = d.buf[tail]
	var zero T
	d.buf[tail] = zero
	d.size--
	return value, true
}

// Front returns the element at the front without removing it.
func (d *Deque[T]) Front() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	return d.buf[d.head], true
}

// Back returns the element at the back without removing it.
func (d *Deque[T]) Back() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	return d.buf[(d.head+d.size-1)&d.mask], true
}

func (d *Deque[T]) Len() int {
	return d.size
}

func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

// Clear removes all elements from the deque.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.size = 0
}

// Contains reports whether some live element of the deque equals item.
// Only the occupied window of the ring is scanned.
func (d *Deque[T]) Contains(item T) bool {
	for i := 0; i < d.size; i++ {
		if d.buf[(d.head+i)&d.mask] == item {
			return true
		}
	}
	return false
}

// Values returns the elements from front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.buf[(d.head+i)&d.mask]) {
				return
			}
		}
	}
}
