// Package lists provides a doubly linked list whose membership test is a
// linear equality scan.
package lists

import (
	"fmt"
	"iter"
	"strings"
)

type node[T comparable] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// List is a doubly linked list with head and tail sentinels, so inserts and
// removals at either end never special-case an empty list.
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns a List holding the given items in order.
func New[T comparable](items ...T) *List[T] {
	l := &List[T]{
		head: &node[T]{},
		tail: &node[T]{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.PushBack(items...)
	return l
}

// insertAfter links n in right after at.
func (l *List[T]) insertAfter(at, n *node[T]) {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
	l.size++
}

// remove unlinks n and returns its value.
// After removal the node's pointers and value are cleared to help GC.
func (l *List[T]) remove(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	val := n.val
	n.prev = nil
	n.next = nil
	var zero T
	n.val = zero
	l.size--
	return val
}

// PushBack appends values to the end of the list.
func (l *List[T]) PushBack(values ...T) {
	for _, value := range values {
		l.insertAfter(l.tail.prev, &node[T]{val: value})
	}
}

// PushFront prepends a value to the list.
func (l *List[T]) PushFront(value T) {
	l.insertAfter(l.head, &node[T]{val: value})
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (val T, ok bool) {
	if l.size == 0 {
		return val, false
	}
	return l.remove(l.head.next), true
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (val T, ok bool) {
	if l.size == 0 {
		return val, false
	}
	return l.remove(l.tail.prev), true
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (val T, ok bool) {
	if l.size == 0 {
		return val, false
	}
	return l.head.next.val, true
}

// Back returns the last element without removing it.
func (l *List[T]) Back() (val T, ok bool) {
	if l.size == 0 {
		return val, false
	}
	return l.tail.prev.val, true
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Clear removes all elements. Every node is unlinked and zeroed to help GC.
func (l *List[T]) Clear() {
	current := l.head.next
	var zero T
	for current != l.tail {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.size = 0
}

// Contains reports whether some element of the list equals item.
func (l *List[T]) Contains(item T) bool {
	for current := l.head.next; current != l.tail; current = current.next {
		if current.val == item {
			return true
		}
	}
	return false
}

// Values returns the elements from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.head.next; current != l.tail; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

// Backward returns the elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.tail.prev; current != l.head; current = current.prev {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for current := l.head.next; current != l.tail; current = current.next {
		fmt.Fprintf(&b, "%v", current.val)
		if current.next != l.tail {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}
