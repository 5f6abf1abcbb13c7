// Package iterator provides forwards-only iterators over enumerable, potentially large collections, allowing for early termination.
package iterator

import "golang.org/x/exp/slices"

// Accept is a predicate that receives a value from an iterator
// and returns true if more values are desired.
type Accept[T any] func(T) bool

// Collection is a source for iterable values.
type Collection[T any] interface {
	Each(Accept[T])
}

// Iterator is a lazy, forwards-only iterator with early termination. Values are
// computed on demand by the iterator's step function on the caller's goroutine.
type Iterator[T any] struct {
	step    func() (T, bool)
	current T
	done    bool
}

var _ Collection[int] = (*Iterator[int])(nil)

// New returns an iterator whose values are produced by step until it returns false.
func New[T any](step func() (T, bool)) *Iterator[T] {
	return &Iterator[T]{step: step}
}

// Next advances the iterator, returning true if successful.
func (iter *Iterator[T]) Next() (ok bool) {
	if iter.done {
		return
	}
	iter.current, ok = iter.step()
	if !ok {
		iter.done = true
	}
	return
}

// Value returns the value of the iterable collection at the current position of the iterator.
func (iter *Iterator[T]) Value() T {
	return iter.current
}

// Stop invalidates the iterator, useful for partial iteration over lazy sequences.
func (iter *Iterator[T]) Stop() {
	iter.done = true
}

// Each gives the remaining values to accept until it declines one.
func (iter *Iterator[T]) Each(accept Accept[T]) {
	for iter.Next() {
		if !accept(iter.Value()) {
			iter.Stop()
			return
		}
	}
}

// Any returns true if pred holds for some remaining value, consuming values up to and
// including the first match.
func Any[T any](iter *Iterator[T], pred func(T) bool) (found bool) {
	iter.Each(func(value T) bool {
		found = pred(value)
		return !found
	})
	return
}

// Combinations returns an iterator of the k-element combinations of the indexes [0, n), in
// lexicographic order. Each yielded slice is a fresh copy.
func Combinations(n int, k int) *Iterator[[]int] {
	if k < 0 || k > n {
		return New(func() (combo []int, ok bool) { return })
	}
	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}
	started := false
	return New(func() (combo []int, ok bool) {
		if !started {
			started = true
			return slices.Clone(indexes), true
		}
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
		return slices.Clone(indexes), true
	})
}
