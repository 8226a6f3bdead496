package avlseq

import "fmt"

// Cursor navigates a sequence item by item.
//
// A cursor is positioned between items: position 0 is before the first item,
// position Len() is after the last one. Moving the cursor follows successor
// and predecessor links, which is amortized O(1) per step.
//
// A cursor is bound to one state of its sequence. After the sequence has been
// mutated, the cursor has to be re-positioned with Seek before using it again.
type Cursor[T any] struct {
	seq  *Sequence[T]
	pos  int
	next *node[T] // node at pos, nil if pos == Len()
}

// Cursor creates a cursor positioned at the start of the sequence.
func (s *Sequence[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{seq: s}
	if !s.IsEmpty() {
		c.next = s.first
	}
	return c
}

// Pos returns the current cursor position.
func (c *Cursor[T]) Pos() int {
	if c == nil {
		return 0
	}
	return c.pos
}

// Seek moves the cursor to position i, with 0 ≤ i ≤ Len().
func (c *Cursor[T]) Seek(i int) error {
	if c == nil {
		return ErrIllegalArguments
	}
	length := c.seq.Len()
	if i < 0 || i > length {
		return fmt.Errorf("%w: seek to %d, length is %d", ErrIndexOutOfBounds, i, length)
	}
	c.pos = i
	if i == length {
		c.next = nil
	} else {
		c.next = selectByRank(c.seq.root, i+1)
	}
	return nil
}

// Next returns the item at the current cursor position and advances by one.
//
// If the cursor is at the end of the sequence, ok is false.
func (c *Cursor[T]) Next() (v T, ok bool) {
	if c == nil || !c.next.isReal() {
		return v, false
	}
	v = c.next.value
	c.next = successor(c.next)
	c.pos++
	return v, true
}

// Prev returns the item before the current cursor position and moves back by one.
//
// If the cursor is at the start of the sequence, ok is false.
func (c *Cursor[T]) Prev() (v T, ok bool) {
	if c == nil || c.pos == 0 {
		return v, false
	}
	if c.next.isReal() {
		c.next = predecessor(c.next)
	} else {
		c.next = c.seq.last
	}
	assert(c.next.isReal(), "Cursor.Prev: lost track of position")
	c.pos--
	return c.next.value, true
}
