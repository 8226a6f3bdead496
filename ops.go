package avlseq

import "fmt"

// Insert inserts v into the sequence so that it becomes the item at index i,
// with 0 ≤ i ≤ Len(). It returns the number of rotations which have been
// necessary to re-balance the tree.
//
// If i is out of range, Insert returns -1 and an ErrIndexOutOfBounds error.
func (s *Sequence[T]) Insert(i int, v T) (int, error) {
	if s == nil {
		return -1, ErrIllegalArguments
	}
	length := s.Len()
	if i < 0 || i > length {
		return -1, fmt.Errorf("%w: insert at %d, length is %d", ErrIndexOutOfBounds, i, length)
	}
	z := newNode(v)
	switch {
	case s.root == nil:
		s.root, s.first, s.last = z, z, z
		return 0, nil
	case i == 0:
		s.first.setLeft(z)
		s.first = z
	case i == length:
		s.last.setRight(z)
		s.last = z
	default:
		// the current item at i will become z's successor
		at := selectByRank(s.root, i+1)
		if !at.left.isReal() {
			at.setLeft(z)
		} else {
			predecessor(at).setRight(z)
		}
	}
	return s.rebalanceFrom(z.parent, insertMode), nil
}

// Delete removes the item at index i, with 0 ≤ i < Len(). It returns the
// number of rotations which have been necessary to re-balance the tree.
//
// If i is out of range, Delete returns -1 and an ErrIndexOutOfBounds error.
func (s *Sequence[T]) Delete(i int) (int, error) {
	length := s.Len()
	if i < 0 || i >= length {
		return -1, fmt.Errorf("%w: delete at %d, length is %d", ErrIndexOutOfBounds, i, length)
	}
	z := selectByRank(s.root, i+1)
	if z.left.isReal() && z.right.isReal() {
		return s.deleteInner(z), nil
	}
	return s.deleteLeafOrSingle(z), nil
}

// deleteLeafOrSingle removes a node with at most one real child by bypassing
// it: the child (possibly virtual) takes the node's place.
func (s *Sequence[T]) deleteLeafOrSingle(z *node[T]) int {
	child := z.left
	if !child.isReal() {
		child = z.right
	}
	if z == s.root {
		// the root of an AVL tree has at most one child only if that child is a leaf
		s.root = child
		s.first, s.last = child, child
		if child.isReal() {
			child.parent = nil
		}
		z.unlink()
		return 0
	}
	if z == s.first {
		s.first = successor(z)
	} else if z == s.last {
		s.last = predecessor(z)
	}
	parent := z.parent
	s.replaceChild(z, child)
	z.unlink()
	return s.rebalanceFrom(parent, deleteMode)
}

// deleteInner removes a node with two real children. Its in-order successor
// is cut out of its place (it has no left child) and re-linked in the
// structural position of z. Re-balancing starts where the successor has been
// cut out, as this is the lowest node with stale fields.
func (s *Sequence[T]) deleteInner(z *node[T]) int {
	suc := successor(z)
	assert(suc.isReal() && !suc.left.isReal(), "deleteInner: successor must not have a left child")
	start := suc.parent
	s.replaceChild(suc, suc.right)
	if start == z {
		start = suc
	}
	s.replaceChild(z, suc)
	suc.setLeft(z.left)
	suc.setRight(z.right)
	suc.update()
	z.unlink()
	return s.rebalanceFrom(start, deleteMode)
}
