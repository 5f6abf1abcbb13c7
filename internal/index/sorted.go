package index

import (
	"github.com/dball/dephyr/internal/iterator"

	"github.com/google/btree"
)

type entry[T any] struct {
	value T
	seq   int
}

// Sorted is an ordered multiset. Values that compare equal are retained in insertion order.
type Sorted[T any] struct {
	tree *btree.BTreeG[entry[T]]
	seq  int
}

var _ iterator.Collection[string] = (*Sorted[string])(nil)

// NewSorted returns an empty sorted multiset of the given degree ordered by the comparer.
func NewSorted[T any](degree int, comparer Comparer[T]) (sorted *Sorted[T]) {
	if degree < 2 {
		degree = DefaultDegree
	}
	less := func(a entry[T], b entry[T]) bool {
		diff := comparer(a.value, b.value)
		if diff == 0 {
			return a.seq < b.seq
		}
		return diff < 0
	}
	sorted = &Sorted[T]{tree: btree.NewG(degree, btree.LessFunc[entry[T]](less))}
	return
}

// Insert adds the value.
func (sorted *Sorted[T]) Insert(values ...T) {
	for _, value := range values {
		sorted.tree.ReplaceOrInsert(entry[T]{value: value, seq: sorted.seq})
		sorted.seq++
	}
}

// Len returns the number of values.
func (sorted *Sorted[T]) Len() int {
	return sorted.tree.Len()
}

// Each gives the values to accept in ascending order.
func (sorted *Sorted[T]) Each(accept iterator.Accept[T]) {
	sorted.tree.Ascend(func(e entry[T]) bool {
		return accept(e.value)
	})
}

// Values returns the values in ascending order.
func (sorted *Sorted[T]) Values() (values []T) {
	values = make([]T, 0, sorted.Len())
	sorted.Each(func(value T) bool {
		values = append(values, value)
		return true
	})
	return
}
