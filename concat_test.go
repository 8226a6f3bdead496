package avlseq

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func seqOfRange(from, to int) *Sequence[int] {
	s := New[int]()
	for i := from; i < to; i++ {
		s.Append(i)
	}
	return s
}

func TestConcatEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	s := New[int]()
	if d := s.Concat(New[int]()); d != 0 || !s.IsEmpty() {
		t.Errorf("concat of two empty sequences: diff=%d, len=%d", d, s.Len())
	}
	other := seqOfRange(0, 7) // height 2
	if d := s.Concat(other); d != 3 {
		t.Errorf("expected height difference 3, got %d", d)
	}
	if !other.IsEmpty() {
		t.Errorf("concat should consume the other sequence")
	}
	if !slices.Equal(s.ToSlice(), []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Errorf("unexpected items %v", s.ToSlice())
	}
	if d := s.Concat(New[int]()); d != 3 {
		t.Errorf("expected height difference 3 for empty right side, got %d", d)
	}
	if d := s.Concat(nil); d != 3 || s.Len() != 7 {
		t.Errorf("concat with nil: diff=%d, len=%d", d, s.Len())
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestConcatSingletons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	s := FromSlice("a")
	if d := s.Concat(FromSlice("b")); d != 0 {
		t.Errorf("expected height difference 0, got %d", d)
	}
	if !slices.Equal(s.ToSlice(), []string{"a", "b"}) {
		t.Errorf("unexpected items %v", s.ToSlice())
	}
	if v, _ := s.Last(); v != "b" {
		t.Errorf("Last() = %q", v)
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestConcatHeightDifferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	sizes := []int{1, 2, 3, 5, 8, 40, 300, 2000}
	for _, n := range sizes {
		for _, m := range sizes {
			left, right := seqOfRange(0, n), seqOfRange(n, n+m)
			h1, h2 := left.Height(), right.Height()
			d := left.Concat(right)
			if d != abs(h1-h2) {
				t.Errorf("%d+%d: expected height difference %d, got %d", n, m, abs(h1-h2), d)
			}
			if err := left.Check(); err != nil {
				t.Fatalf("%d+%d: %v", n, m, err)
			}
			if left.Len() != n+m {
				t.Fatalf("%d+%d: length is %d", n, m, left.Len())
			}
			i := 0
			for v := range left.Values() {
				if v != i {
					t.Fatalf("%d+%d: item %d is %d", n, m, i, v)
				}
				i++
			}
			if max(h1, h2)+1 < left.Height() {
				t.Errorf("%d+%d: joined height %d exceeds %d", n, m, left.Height(), max(h1, h2)+1)
			}
		}
	}
}

func TestConcatThenEdit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	rnd := rand.New(rand.NewPCG(99, 100))
	s := New[int]()
	var model []int
	next := 0
	for range 60 {
		n := rnd.IntN(50)
		part := seqOfRange(next, next+n)
		for i := next; i < next+n; i++ {
			model = append(model, i)
		}
		next += n
		s.Concat(part)
		if err := s.Check(); err != nil {
			t.Fatal(err)
		}
		if s.Len() > 0 {
			i := rnd.IntN(s.Len())
			s.Delete(i)
			model = slices.Delete(model, i, i+1)
		}
	}
	if !slices.Equal(s.ToSlice(), model) {
		t.Errorf("sequence differs from model")
	}
}

func TestConcatSelfPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected concat with itself to panic")
		}
	}()
	s := FromSlice(1, 2)
	s.Concat(s)
}
