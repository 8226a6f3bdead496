package avlseq

import (
	"cmp"
	"iter"
	"math/rand/v2"
)

// Values returns an iterator over all items in sequence order.
//
// The iterator is lazy and may be restarted. Mutating the sequence while
// iterating over it is not supported.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.IsEmpty() {
			return
		}
		for n := s.first; n.isReal(); n = successor(n) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All returns an iterator over index-value pairs in sequence order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s.IsEmpty() {
			return
		}
		i := 0
		for n := s.first; n.isReal(); n = successor(n) {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over index-value pairs, traversing the
// sequence from its last item to its first.
func (s *Sequence[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s.IsEmpty() {
			return
		}
		i := s.Len() - 1
		for n := s.last; n.isReal(); n = predecessor(n) {
			if !yield(i, n.value) {
				return
			}
			i--
		}
	}
}

// ToSlice collects all items of the sequence into a new slice.
func (s *Sequence[T]) ToSlice() []T {
	values := make([]T, 0, s.Len())
	for v := range s.Values() {
		values = append(values, v)
	}
	return values
}

// --- Searching -------------------------------------------------------------

// Search returns the index of the first item equal to v, or NotFound.
//
// Sequences are ordered by position, not by value, so Search is a linear scan.
func Search[T comparable](s *Sequence[T], v T) int {
	return SearchFunc(s, func(item T) bool {
		return item == v
	})
}

// SearchFunc returns the index of the first item satisfying match, or NotFound.
func SearchFunc[T any](s *Sequence[T], match func(T) bool) int {
	for i, item := range s.All() {
		if match(item) {
			return i
		}
	}
	return NotFound
}

// --- Sorting ---------------------------------------------------------------

// Sort returns a new sequence with the items of s in ascending order.
// s is left unchanged.
func Sort[T cmp.Ordered](s *Sequence[T]) *Sequence[T] {
	return SortFunc(s, cmp.Compare[T])
}

// SortFunc returns a new sequence with the items of s sorted by compare.
// The sort is stable. s is left unchanged.
//
// Items are sorted with a merge sort in O(n log n) and then appended one
// after the other to an empty sequence.
func SortFunc[T any](s *Sequence[T], compare func(a, b T) int) *Sequence[T] {
	sorted := mergeSort(s.ToSlice(), compare)
	tracer().Debugf("sort: %d items", len(sorted))
	out := New[T]()
	for _, v := range sorted {
		out.Append(v)
	}
	return out
}

func mergeSort[T any](values []T, compare func(a, b T) int) []T {
	if len(values) <= 1 {
		return values
	}
	mid := len(values) / 2
	return merge(mergeSort(values[:mid], compare), mergeSort(values[mid:], compare), compare)
}

// merge merges two sorted slices into a new one. For equal items, items from
// left come first.
func merge[T any](left, right []T, compare func(a, b T) int) []T {
	merged := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if compare(right[j], left[i]) < 0 {
			merged = append(merged, right[j])
			j++
		} else {
			merged = append(merged, left[i])
			i++
		}
	}
	merged = append(merged, left[i:]...)
	return append(merged, right[j:]...)
}

// --- Shuffling -------------------------------------------------------------

// RandomSource supplies uniformly distributed integers in [0,n).
// *rand.Rand from math/rand/v2 satisfies it; using a seeded source makes
// shuffling reproducible.
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Shuffle returns a new sequence holding a uniformly random permutation of the
// items of s. s is left unchanged. If rnd is nil, the global random source of
// math/rand/v2 is used.
//
// Shuffle runs in O(n): the items are permuted in place with Fisher-Yates and
// the result is built as a perfectly balanced tree, without any rotations.
func (s *Sequence[T]) Shuffle(rnd RandomSource) *Sequence[T] {
	if rnd == nil {
		rnd = globalRandom{}
	}
	values := s.ToSlice()
	for i := len(values) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}
	tracer().Debugf("shuffle: %d items", len(values))
	return FromSlice(values...)
}
