package iterator

import (
	. "github.com/dball/dephyr/internal/types"
)

// Subsets returns an iterator of the subsets of set whose sizes are between min and max
// inclusive, in ascending order of size. Subsets of the same size come in lexicographic
// order of their attrs.
func Subsets(set Set, min int, max int) *Iterator[Set] {
	return subsets(set, min, max, 1)
}

// SubsetsDescending is like Subsets but yields the larger subsets first, starting at max.
func SubsetsDescending(set Set, max int, min int) *Iterator[Set] {
	return subsets(set, max, min, -1)
}

func subsets(set Set, from int, to int, dir int) *Iterator[Set] {
	attrs := set.Attrs()
	k := from
	combos := Combinations(len(attrs), k)
	return New(func() (subset Set, ok bool) {
		for (dir > 0 && k <= to) || (dir < 0 && k >= to) {
			if combos.Next() {
				for _, i := range combos.Value() {
					subset = subset.With(attrs[i])
				}
				ok = true
				return
			}
			k += dir
			combos = Combinations(len(attrs), k)
		}
		return
	})
}

// PowerSet returns an iterator of every subset of set, the empty set and set itself included.
func PowerSet(set Set) *Iterator[Set] {
	return Subsets(set, 0, set.Len())
}
