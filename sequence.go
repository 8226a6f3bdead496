package avlseq

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Sequence is an ordered list of items of type T, stored in a height-balanced
// binary tree ordered by position.
//
// A sequence created by
//
//	Sequence[T]{}
//
// is a valid object and behaves like the empty list.
//
// Indices are 0-based. Operations which receive an index outside of the
// valid range report ErrIndexOutOfBounds and leave the sequence unchanged.
// Queries on an empty sequence are not errors; they report an absent result.
type Sequence[T any] struct {
	root  *node[T]
	first *node[T] // leftmost node, cached for O(1) access
	last  *node[T] // rightmost node, cached for O(1) access
}

// New creates a new and empty sequence.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// IsEmpty reports whether the sequence has no items.
func (s *Sequence[T]) IsEmpty() bool {
	return s == nil || s.root == nil
}

// Len returns the number of items in the sequence.
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.root.Size()
}

// Height returns the height of the sequence's tree. A sequence with a single
// item has height 0, an empty sequence has height -1.
func (s *Sequence[T]) Height() int {
	if s == nil {
		return -1
	}
	return s.root.Height()
}

// At returns the item at index i. If i is not a valid index, ok is false.
func (s *Sequence[T]) At(i int) (v T, ok bool) {
	if i < 0 || i >= s.Len() {
		return v, false
	}
	return selectByRank(s.root, i+1).value, true
}

// First returns the first item of the sequence. For an empty sequence ok is false.
func (s *Sequence[T]) First() (v T, ok bool) {
	if s.IsEmpty() {
		return v, false
	}
	return s.first.value, true
}

// Last returns the last item of the sequence. For an empty sequence ok is false.
func (s *Sequence[T]) Last() (v T, ok bool) {
	if s.IsEmpty() {
		return v, false
	}
	return s.last.value, true
}

// Set replaces the item at index i.
func (s *Sequence[T]) Set(i int, v T) error {
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("%w: set at %d, length is %d", ErrIndexOutOfBounds, i, s.Len())
	}
	selectByRank(s.root, i+1).value = v
	return nil
}

// Append adds v as the new last item and returns the number of rotations
// needed to re-balance the tree.
func (s *Sequence[T]) Append(v T) int {
	r, err := s.Insert(s.Len(), v)
	assert(err == nil, "Append: insert at end failed")
	return r
}

// Prepend adds v as the new first item and returns the number of rotations
// needed to re-balance the tree.
func (s *Sequence[T]) Prepend(v T) int {
	r, err := s.Insert(0, v)
	assert(err == nil, "Prepend: insert at start failed")
	return r
}

// Clear removes all items.
func (s *Sequence[T]) Clear() {
	s.root, s.first, s.last = nil, nil, nil
}

// String returns a short description of the sequence, not its items.
func (s *Sequence[T]) String() string {
	return fmt.Sprintf("Sequence(len=%d, height=%d)", s.Len(), s.Height())
}

// replaceChild puts repl into the tree position of old, either as a child of
// old's parent or as the new root. repl may be virtual. old keeps its links.
func (s *Sequence[T]) replaceChild(old, repl *node[T]) {
	p := old.parent
	switch {
	case p == nil:
		s.root = repl
	case p.left == old:
		p.left = repl
	default:
		p.right = repl
	}
	if repl.isReal() {
		repl.parent = p
	}
}
