package avlseq

// Builder incrementally stages items and finalizes them into a Sequence.
//
// Builder collects items in plain slices and materializes the tree only when
// Sequence() is called. The tree is then built bottom-up as a perfectly
// balanced tree, which is cheaper than inserting items one by one.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T any] struct {
	// front keeps prepended items in reverse logical order.
	front []T
	// back keeps appended items in logical order.
	back []T

	done  bool
	dirty bool
	seq   *Sequence[T]
}

// NewBuilder creates a new and empty sequence builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Sequence returns the sequence built from all staged items.
//
// It is illegal to continue adding items after Sequence has been called, but
// Sequence may be called multiple times. Every call returns the same sequence.
func (b *Builder[T]) Sequence() *Sequence[T] {
	if b == nil {
		return New[T]()
	}
	if b.dirty || b.seq == nil {
		b.seq = FromSlice(b.orderedItems()...)
		b.dirty = false
	}
	b.done = true
	if b.seq.IsEmpty() {
		tracer().Debugf("sequence builder: sequence is empty")
	}
	return b.seq
}

// Reset drops the staged items and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.seq = nil
}

// Append stages items at the end of the build.
func (b *Builder[T]) Append(items ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSequenceCompleted
	}
	if len(items) > 0 {
		b.back = append(b.back, items...)
		b.dirty = true
	}
	return nil
}

// Prepend stages items at the start of the build. The items keep their
// relative order, i.e. Prepend(a, b) followed by Prepend(c) results in c, a, b.
func (b *Builder[T]) Prepend(items ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSequenceCompleted
	}
	// front is stored in reverse logical order.
	for i := len(items) - 1; i >= 0; i-- {
		b.front = append(b.front, items[i])
	}
	if len(items) > 0 {
		b.dirty = true
	}
	return nil
}

func (b *Builder[T]) orderedItems() []T {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]T, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	return append(out, b.back...)
}

// FromSlice creates a sequence holding items in the given order.
//
// The tree is built in O(n) by recursively choosing the median as subtree
// root. The result satisfies the AVL property without any rotations.
func FromSlice[T any](items ...T) *Sequence[T] {
	s := New[T]()
	if len(items) == 0 {
		return s
	}
	s.root = buildBalanced(items)
	s.first = selectByRank(s.root, 1)
	s.last = selectByRank(s.root, len(items))
	return s
}

// buildBalanced builds a perfectly balanced subtree for items, which must not
// be empty.
func buildBalanced[T any](items []T) *node[T] {
	mid := len(items) / 2
	n := newNode(items[mid])
	if mid > 0 {
		n.setLeft(buildBalanced(items[:mid]))
	}
	if mid+1 < len(items) {
		n.setRight(buildBalanced(items[mid+1:]))
	}
	n.update()
	return n
}
