package avlseq

// rebalanceMode selects how far the upward fix-up walk keeps rotating.
type rebalanceMode uint8

const (
	// insertMode: after an insertion at most one (single or double) rotation
	// is necessary. Once it has been done, or once a node's height turns out
	// to be unchanged, heights are stable for the rest of the path.
	insertMode rebalanceMode = iota
	// deleteMode: after a deletion or a join every ancestor may become
	// unbalanced, so violations are resolved all the way up.
	deleteMode
)

func (m rebalanceMode) String() string {
	if m == insertMode {
		return "insert"
	}
	return "delete"
}

// rotateLeft rotates the subtree at b to the left:
//
//	    b                a
//	   / \              / \
//	  x   a     ->     b   z
//	     / \          / \
//	    y   z        x   y
//
// a takes b's place in the tree. Fields of b are recomputed before those of a,
// as a now depends on b.
func (s *Sequence[T]) rotateLeft(b *node[T]) {
	a := b.right
	assert(a.isReal(), "rotateLeft: right child is virtual")
	b.setRight(a.left)
	s.replaceChild(b, a)
	a.setLeft(b)
	b.update()
	a.update()
}

// rotateRight rotates the subtree at b to the right:
//
//	      b            a
//	     / \          / \
//	    a   z   ->   x   b
//	   / \              / \
//	  x   y            y   z
//
// a takes b's place in the tree. Fields of b are recomputed before those of a.
func (s *Sequence[T]) rotateRight(b *node[T]) {
	a := b.left
	assert(a.isReal(), "rotateRight: left child is virtual")
	b.setLeft(a.right)
	s.replaceChild(b, a)
	a.setRight(b)
	b.update()
	a.update()
}

// resolveViolation restores the AVL property at a node with balance factor
// ±2 and returns the number of rotations performed (1 or 2).
func (s *Sequence[T]) resolveViolation(n *node[T]) int {
	switch n.balanceFactor() {
	case 2:
		if n.left.balanceFactor() == -1 {
			s.rotateLeft(n.left)
			s.rotateRight(n)
			return 2
		}
		s.rotateRight(n)
		return 1
	case -2:
		if n.right.balanceFactor() == 1 {
			s.rotateRight(n.right)
			s.rotateLeft(n)
			return 2
		}
		s.rotateLeft(n)
		return 1
	}
	assert(false, "resolveViolation called for a balanced node")
	return 0
}

// rebalanceFrom walks from n up to the root. It refreshes height and size of
// every node on the path and resolves AVL violations on the way, according to
// mode. n is the lowest node whose cached fields may be stale; it may be
// virtual, in which case nothing has to be done.
//
// Returns the total number of rotations.
func (s *Sequence[T]) rebalanceFrom(n *node[T], mode rebalanceMode) int {
	rotations := 0
	fixing := true
	for n.isReal() {
		oldHeight := n.height
		n.update()
		if fixing {
			bf := n.balanceFactor()
			switch {
			case bf > 1 || bf < -1:
				r := s.resolveViolation(n)
				tracer().Debugf("rebalance (%s): %d rotation(s) at height %d", mode, r, oldHeight)
				rotations += r
				if mode == insertMode {
					fixing = false
				}
			case oldHeight == n.height && mode == insertMode:
				fixing = false
			}
		}
		// after a rotation n has moved down; its parent is the new subtree root
		n = n.parent
	}
	return rotations
}
