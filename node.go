package avlseq

// A node is a cell of the sequence tree. Every node carries an item together
// with some cached properties of the subtree rooted at it:
//
//   - height is the length of the longest path down to a virtual node.
//   - size is the number of (real) nodes in the subtree, including the node itself.
//
// A nil *node is the virtual node. It stands in for every missing child and
// behaves like a node without a value, with height -1 and size 0. All
// accessors accept the virtual node as a receiver, so the tree algorithms
// never have to special-case absent children.
type node[T any] struct {
	value  T
	height int
	size   int
	left   *node[T]
	right  *node[T]
	parent *node[T] // navigational only; nil for the root
}

// newNode creates a leaf node carrying v, with two virtual children.
func newNode[T any](v T) *node[T] {
	return &node[T]{value: v, height: 0, size: 1}
}

func (n *node[T]) isReal() bool {
	return n != nil
}

// Height returns the cached height of n, or -1 for the virtual node.
func (n *node[T]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// Size returns the number of items in the subtree of n.
func (n *node[T]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[T]) Left() *node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *node[T]) Right() *node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *node[T]) Parent() *node[T] {
	if n == nil {
		return nil
	}
	return n.parent
}

// balanceFactor is the height of the left subtree minus the height of the right
// subtree. The virtual node is balanced.
func (n *node[T]) balanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// update recomputes height and size of n from its children. Children have to
// be up to date already.
func (n *node[T]) update() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
	n.size = 1 + n.left.Size() + n.right.Size()
}

// setLeft links child as the left child of n. child may be virtual.
func (n *node[T]) setLeft(child *node[T]) {
	n.left = child
	if child.isReal() {
		child.parent = n
	}
}

// setRight links child as the right child of n. child may be virtual.
func (n *node[T]) setRight(child *node[T]) {
	n.right = child
	if child.isReal() {
		child.parent = n
	}
}

// unlink drops all structural links of a node which has been removed from
// the tree.
func (n *node[T]) unlink() {
	n.left, n.right, n.parent = nil, nil, nil
}

// --- Navigation ------------------------------------------------------------

// selectByRank returns the node with (1-based) rank k within the subtree of n.
// Clients have to make sure that 1 ≤ k ≤ n.Size().
func selectByRank[T any](n *node[T], k int) *node[T] {
	for n.isReal() {
		r := n.left.Size() + 1
		switch {
		case k == r:
			return n
		case k < r:
			n = n.left
		default:
			k -= r
			n = n.right
		}
	}
	assert(false, "selectByRank: rank out of range")
	return nil
}

// successor returns the node following n in sequence order, or nil if n is
// the last node.
func successor[T any](n *node[T]) *node[T] {
	if n.right.isReal() {
		return selectByRank(n.right, 1)
	}
	p := n.parent
	for p.isReal() && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// predecessor returns the node preceding n in sequence order, or nil if n is
// the first node.
func predecessor[T any](n *node[T]) *node[T] {
	if n.left.isReal() {
		return selectByRank(n.left, n.left.size)
	}
	p := n.parent
	for p.isReal() && n == p.left {
		n, p = p, p.parent
	}
	return p
}

// rankOf returns the 1-based rank of n within the whole tree.
func rankOf[T any](n *node[T]) int {
	r := n.left.Size() + 1
	for p := n.parent; p.isReal(); n, p = p, p.parent {
		if n == p.right {
			r += p.left.Size() + 1
		}
	}
	return r
}
