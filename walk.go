package avlseq

// NodeInfo describes a single tree node, as reported by Walk.
type NodeInfo[T any] struct {
	Value   T
	Index   int // position of the item in the sequence
	Depth   int // distance from the root
	Height  int
	Size    int // number of items in the node's subtree
	Balance int // height of left subtree minus height of right subtree
	Parent  int // index of the parent's item, or -1 for the root
	Left    bool
	Right   bool
}

// Walk visits every node of the tree in pre-order, i.e. parents before their
// children and left subtrees before right subtrees. If fn returns an error,
// the walk stops and Walk returns that error.
//
// Walk is meant for tools which render or analyze the shape of the tree.
func (s *Sequence[T]) Walk(fn func(NodeInfo[T]) error) error {
	if s.IsEmpty() {
		return nil
	}
	return walk(s.root, 0, 0, -1, fn)
}

// walk visits the subtree at n. offset is the number of items preceding the
// subtree in the sequence.
func walk[T any](n *node[T], offset, depth, parent int, fn func(NodeInfo[T]) error) error {
	if !n.isReal() {
		return nil
	}
	index := offset + n.left.Size()
	info := NodeInfo[T]{
		Value:   n.value,
		Index:   index,
		Depth:   depth,
		Height:  n.height,
		Size:    n.size,
		Balance: n.balanceFactor(),
		Parent:  parent,
		Left:    n.left.isReal(),
		Right:   n.right.isReal(),
	}
	if err := fn(info); err != nil {
		return err
	}
	if err := walk(n.left, offset, depth+1, index, fn); err != nil {
		return err
	}
	return walk(n.right, index+1, depth+1, index, fn)
}
