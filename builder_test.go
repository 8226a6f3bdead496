package avlseq

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderStagesItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	b := NewBuilder[int]()
	if err := b.Append(3, 4); err != nil {
		t.Fatal(err)
	}
	if err := b.Prepend(1, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.Prepend(0); err != nil {
		t.Fatal(err)
	}
	b.Append(5)
	s := b.Sequence()
	if !slices.Equal(s.ToSlice(), []int{0, 1, 2, 3, 4, 5}) {
		t.Errorf("unexpected items %v", s.ToSlice())
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
	if b.Sequence() != s {
		t.Errorf("repeated calls to Sequence should return the same sequence")
	}
	if err := b.Append(6); !errors.Is(err, ErrSequenceCompleted) {
		t.Errorf("expected ErrSequenceCompleted, got %v", err)
	}
	b.Reset()
	if err := b.Append(6); err != nil {
		t.Errorf("append after reset failed: %v", err)
	}
	if got := b.Sequence().ToSlice(); !slices.Equal(got, []int{6}) {
		t.Errorf("expected [6] after reset, got %v", got)
	}
}

func TestBuilderEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	var b Builder[string]
	if !b.Sequence().IsEmpty() {
		t.Errorf("expected empty sequence from empty builder")
	}
	var nb *Builder[string]
	if err := nb.Append("x"); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil builder, got %v", err)
	}
}

func TestFromSliceIsBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	for n := range 70 {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		s := FromSlice(items...)
		if err := s.Check(); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if !slices.Equal(s.ToSlice(), items) {
			t.Fatalf("n=%d: items out of order", n)
		}
		// a perfectly balanced tree has height floor(log2 n)
		want := -1
		for k := n; k > 0; k >>= 1 {
			want++
		}
		if s.Height() != want {
			t.Errorf("n=%d: expected height %d, is %d", n, want, s.Height())
		}
	}
}
