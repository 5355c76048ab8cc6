// Package orderedset provides a sorted set backed by a self-balancing
// binary tree, with O(log n) membership lookups via ordered comparison.
package orderedset

import (
	"cmp"
	"iter"
)

type node[T cmp.Ordered] struct {
	left   *node[T]
	right  *node[T]
	height int
	val    T
}

// Set is an ordered set of unique elements backed by an AVL tree.
// Add, Remove and Contains are O(log n); iteration yields elements in
// ascending order. The zero value is not usable, call New.
type Set[T cmp.Ordered] struct {
	root *node[T]
	size int
}

// New returns a Set holding the given items.
func New[T cmp.Ordered](items ...T) *Set[T] {
	s := &Set[T]{}
	s.Add(items...)
	return s
}

// Add inserts items into the set. Already-present items are no-ops.
func (s *Set[T]) Add(items ...T) {
	for _, item := range items {
		var added bool
		s.root, added = insert(s.root, item)
		if added {
			s.size++
		}
	}
}

// Remove deletes item from the set and reports whether it was present.
func (s *Set[T]) Remove(item T) bool {
	var removed bool
	s.root, removed = remove(s.root, item)
	if removed {
		s.size--
	}
	return removed
}

// Contains reports whether item is a member of the set.
func (s *Set[T]) Contains(item T) bool {
	n := s.root
	for n != nil {
		switch c := cmp.Compare(item, n.val); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.size
}

// Min returns the smallest element, or false if the set is empty.
func (s *Set[T]) Min() (val T, ok bool) {
	n := s.root
	if n == nil {
		return val, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.val, true
}

// Max returns the largest element, or false if the set is empty.
func (s *Set[T]) Max() (val T, ok bool) {
	n := s.root
	if n == nil {
		return val, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.val, true
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	s.root = nil
	s.size = 0
}

// All returns the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		inorder(s.root, yield)
	}
}

func inorder[T cmp.Ordered](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(n.val) && inorder(n.right, yield)
}

func height[T cmp.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func update[T cmp.Ordered](n *node[T]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func rotateRight[T cmp.Ordered](n *node[T]) *node[T] {
	l := n.left
	n.left = l.right
	l.right = n
	update(n)
	update(l)
	return l
}

func rotateLeft[T cmp.Ordered](n *node[T]) *node[T] {
	r := n.right
	n.right = r.left
	r.left = n
	update(n)
	update(r)
	return r
}

// rebalance restores the AVL invariant (subtree heights differ by at most 1)
// at n after an insert or remove below it, and returns the new subtree root.
func rebalance[T cmp.Ordered](n *node[T]) *node[T] {
	update(n)
	switch bf := height(n.left) - height(n.right); {
	case bf > 1:
		if height(n.left.left) < height(n.left.right) {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if height(n.right.right) < height(n.right.left) {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	default:
		return n
	}
}

func insert[T cmp.Ordered](n *node[T], item T) (*node[T], bool) {
	if n == nil {
		return &node[T]{val: item, height: 1}, true
	}
	var added bool
	switch c := cmp.Compare(item, n.val); {
	case c < 0:
		n.left, added = insert(n.left, item)
	case c > 0:
		n.right, added = insert(n.right, item)
	default:
		return n, false
	}
	if !added {
		return n, false
	}
	return rebalance(n), true
}

func remove[T cmp.Ordered](n *node[T], item T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch c := cmp.Compare(item, n.val); {
	case c < 0:
		n.left, removed = remove(n.left, item)
	case c > 0:
		n.right, removed = remove(n.right, item)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// Two children: swap in the in-order successor, then delete it
		// from the right subtree.
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.val = succ.val
		n.right, _ = remove(n.right, succ.val)
		removed = true
	}
	if !removed {
		return n, false
	}
	return rebalance(n), true
}
