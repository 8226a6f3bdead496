package avlseq

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptySequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	var s Sequence[int]
	if !s.IsEmpty() || s.Len() != 0 || s.Height() != -1 {
		t.Fatalf("zero sequence not empty: %s", s.String())
	}
	if _, ok := s.At(0); ok {
		t.Errorf("At(0) on empty sequence reported an item")
	}
	if _, ok := s.First(); ok {
		t.Errorf("First() on empty sequence reported an item")
	}
	if _, ok := s.Last(); ok {
		t.Errorf("Last() on empty sequence reported an item")
	}
	if r, err := s.Delete(0); err == nil || r != -1 {
		t.Errorf("Delete(0) on empty sequence should fail, got r=%d err=%v", r, err)
	}
	if len(s.ToSlice()) != 0 {
		t.Errorf("expected no items")
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
	var nilseq *Sequence[int]
	if nilseq.Len() != 0 || !nilseq.IsEmpty() {
		t.Errorf("nil sequence should behave like an empty one")
	}
	if _, err := nilseq.Insert(0, 1); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("Insert on nil sequence should report illegal arguments, got %v", err)
	}
}

func TestInsertDeleteScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	s := New[string]()
	for _, step := range []struct {
		i int
		v string
	}{{0, "a"}, {1, "b"}, {0, "c"}} {
		if _, err := s.Insert(step.i, step.v); err != nil {
			t.Fatalf("Insert(%d, %q) failed: %v", step.i, step.v, err)
		}
	}
	if got := s.ToSlice(); !slices.Equal(got, []string{"c", "a", "b"}) {
		t.Fatalf("expected [c a b], got %v", got)
	}
	if s.Len() != 3 {
		t.Errorf("expected length 3, is %d", s.Len())
	}
	if _, err := s.Delete(1); err != nil {
		t.Fatal(err)
	}
	if got := s.ToSlice(); !slices.Equal(got, []string{"c", "b"}) {
		t.Fatalf("expected [c b], got %v", got)
	}
	s.Concat(FromSlice("x", "y"))
	if got := s.ToSlice(); !slices.Equal(got, []string{"c", "b", "x", "y"}) {
		t.Fatalf("expected [c b x y], got %v", got)
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestInsertOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	s := FromSlice(1, 2, 3)
	for _, i := range []int{-1, 4, 100} {
		r, err := s.Insert(i, 9)
		if !errors.Is(err, ErrIndexOutOfBounds) || r != -1 {
			t.Errorf("Insert(%d) should fail with index out of bounds, got r=%d err=%v", i, r, err)
		}
	}
	for _, i := range []int{-1, 3} {
		r, err := s.Delete(i)
		if !errors.Is(err, ErrIndexOutOfBounds) || r != -1 {
			t.Errorf("Delete(%d) should fail with index out of bounds, got r=%d err=%v", i, r, err)
		}
	}
	if err := s.Set(3, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Set(3) should fail, got %v", err)
	}
	if got := s.ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("failed operations altered the sequence: %v", got)
	}
}

func TestAscendingAppendRotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	s := New[int]()
	if r := s.Append(1); r != 0 {
		t.Errorf("first append should not rotate, did %d", r)
	}
	if r := s.Append(2); r != 0 {
		t.Errorf("second append should not rotate, did %d", r)
	}
	if r := s.Append(3); r != 1 {
		t.Errorf("third append should need a single rotation, did %d", r)
	}
	if s.Height() != 1 {
		t.Errorf("expected height 1 after three appends, is %d", s.Height())
	}
	if s.root.value != 2 {
		t.Errorf("expected 2 at the root, is %d", s.root.value)
	}
}

func TestDoubleRotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	s := New[int]()
	s.Append(1)
	s.Append(3)
	r, err := s.Insert(1, 2) // becomes left child of 3, zig-zag
	if err != nil {
		t.Fatal(err)
	}
	if r != 2 {
		t.Errorf("expected a double rotation, got %d rotation(s)", r)
	}
	if s.root.value != 2 {
		t.Errorf("expected 2 at the root, is %d", s.root.value)
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestAscendingHeightIsLogarithmic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	s := New[int]()
	const n = 1 << 12
	for i := range n {
		s.Append(i)
	}
	// AVL trees have height < 1.45 log2(n+2)
	if s.Height() > 17 {
		t.Errorf("height %d too large for %d items", s.Height(), n)
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
	for i := range n {
		if v, ok := s.At(i); !ok || v != i {
			t.Fatalf("At(%d) = %d, %v", i, v, ok)
		}
	}
}

func TestFirstLastSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	s := FromSlice("b", "c")
	s.Prepend("a")
	s.Append("d")
	if v, ok := s.First(); !ok || v != "a" {
		t.Errorf("First() = %q, %v", v, ok)
	}
	if v, ok := s.Last(); !ok || v != "d" {
		t.Errorf("Last() = %q, %v", v, ok)
	}
	if err := s.Set(2, "C"); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.At(2); v != "C" {
		t.Errorf("At(2) after Set = %q", v)
	}
	s.Delete(0)
	s.Delete(s.Len() - 1)
	if v, _ := s.First(); v != "b" {
		t.Errorf("First() after deleting the first item = %q", v)
	}
	if v, _ := s.Last(); v != "C" {
		t.Errorf("Last() after deleting the last item = %q", v)
	}
	s.Delete(0)
	s.Delete(0)
	if !s.IsEmpty() {
		t.Errorf("expected sequence to be empty")
	}
	if err := s.Check(); err != nil {
		t.Error(err)
	}
}

func TestRandomEditsAgainstSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	rnd := rand.New(rand.NewPCG(17, 4711))
	s := New[int]()
	var model []int
	for step := range 3000 {
		if len(model) == 0 || rnd.IntN(3) > 0 {
			i := rnd.IntN(len(model) + 1)
			if _, err := s.Insert(i, step); err != nil {
				t.Fatalf("step %d: Insert(%d) failed: %v", step, i, err)
			}
			model = slices.Insert(model, i, step)
		} else {
			i := rnd.IntN(len(model))
			if _, err := s.Delete(i); err != nil {
				t.Fatalf("step %d: Delete(%d) failed: %v", step, i, err)
			}
			model = slices.Delete(model, i, i+1)
		}
		if err := s.Check(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		if s.Len() != len(model) {
			t.Fatalf("step %d: length %d, expected %d", step, s.Len(), len(model))
		}
	}
	if !slices.Equal(s.ToSlice(), model) {
		t.Errorf("sequence differs from model")
	}
	for i, v := range model {
		if got, _ := s.At(i); got != v {
			t.Fatalf("At(%d) = %d, expected %d", i, got, v)
		}
	}
}

func TestRotationCountsBounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avlseq")
	defer teardown()

	rnd := rand.New(rand.NewPCG(1, 2))
	s := New[int]()
	for i := range 500 {
		r, _ := s.Insert(rnd.IntN(i+1), i)
		if r < 0 || r > 2 {
			t.Fatalf("insert needed %d rotations", r)
		}
	}
	for s.Len() > 0 {
		r, _ := s.Delete(rnd.IntN(s.Len()))
		if r < 0 || r > 2*(s.Height()+2) {
			t.Fatalf("delete needed %d rotations at height %d", r, s.Height())
		}
	}
}
