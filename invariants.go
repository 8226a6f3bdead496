package avlseq

import "fmt"

// Check validates the structural invariants of the sequence's tree:
// cached heights and sizes, the AVL balance condition, parent links, and
// the cached first and last nodes.
//
// Check is strict and runs in O(n). It is meant for tests and debugging.
func (s *Sequence[T]) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil sequence", ErrInvariantViolation)
	}
	if s.root == nil {
		if s.first != nil || s.last != nil {
			return fmt.Errorf("%w: empty sequence with first/last set", ErrInvariantViolation)
		}
		return nil
	}
	if s.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariantViolation)
	}
	if _, _, err := checkNode(s.root); err != nil {
		return err
	}
	if first := selectByRank(s.root, 1); first != s.first {
		return fmt.Errorf("%w: cached first node is stale", ErrInvariantViolation)
	}
	if last := selectByRank(s.root, s.root.size); last != s.last {
		return fmt.Errorf("%w: cached last node is stale", ErrInvariantViolation)
	}
	return nil
}

// checkNode recursively validates the subtree at n and returns its actual
// size and height.
func checkNode[T any](n *node[T]) (size int, height int, err error) {
	if !n.isReal() {
		return 0, -1, nil
	}
	for _, child := range []*node[T]{n.left, n.right} {
		if child.isReal() && child.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link below node of size %d",
				ErrInvariantViolation, n.size)
		}
	}
	lsize, lheight, err := checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rsize, rheight, err := checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	size, height = 1+lsize+rsize, 1+max(lheight, rheight)
	if n.size != size {
		return 0, 0, fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariantViolation, n.size, size)
	}
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariantViolation, n.height, height)
	}
	if bf := lheight - rheight; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: balance factor %d at node of height %d",
			ErrInvariantViolation, bf, height)
	}
	return size, height, nil
}
