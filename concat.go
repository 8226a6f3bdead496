package avlseq

// Concat appends all items of other to s. other is consumed: its items are
// moved into s and other is left empty.
//
// Concat returns the absolute difference of the heights of the two trees
// before joining them, which is a measure of the work needed to re-balance
// the joined tree. The height of an empty sequence counts as -1.
//
// Joining takes O(log(n+m)): a temporary splice node is linked between the
// root of the lower tree and a node on the outer spine of the higher tree,
// the tree is re-balanced from there, and the splice node is deleted again.
func (s *Sequence[T]) Concat(other *Sequence[T]) int {
	assert(s != nil, "Concat: receiver is nil")
	assert(s != other, "Concat: cannot concatenate a sequence with itself")
	h1, h2 := s.Height(), other.Height()
	diff := abs(h1 - h2)
	switch {
	case other.IsEmpty():
		return diff
	case s.IsEmpty():
		s.root, s.first, s.last = other.root, other.first, other.last
		other.Clear()
		return diff
	}
	length := s.Len()
	x := &node[T]{} // splice node
	if h1 <= h2 {
		// search the left spine of other for the first node not higher than s
		var c *node[T]
		b := other.root
		for b.Height() > h1 {
			c, b = b, b.left
		}
		x.setLeft(s.root)
		x.setRight(b)
		if c == nil {
			s.root = x
		} else {
			c.setLeft(x)
			s.root = other.root
		}
	} else {
		// search the right spine of s for the first node not higher than other
		var c *node[T]
		b := s.root
		for b.Height() > h2 {
			c, b = b, b.right
		}
		x.setLeft(b)
		x.setRight(other.root)
		if c == nil {
			s.root = x
		} else {
			c.setRight(x)
		}
	}
	s.root.parent = nil
	x.update()
	tracer().Debugf("concat: heights %d and %d, splice node at height %d", h1, h2, x.height)
	s.rebalanceFrom(x.parent, deleteMode)
	s.last = other.last
	other.Clear()
	// rotations preserve the in-order sequence, so x is found after all of s' original items
	_, err := s.Delete(length)
	assert(err == nil, "Concat: cannot remove splice node")
	return diff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
