package index

import (
	. "github.com/dball/dephyr/internal/types"
	"golang.org/x/exp/constraints"
)

// Lesser returns true iff the first arg sorts before the second.
type Lesser[T any] func(a T, b T) bool

// Comparer returns -1, 0 or 1 as the first arg sorts before, with or after the second.
type Comparer[T any] func(a T, b T) int

func compare[X constraints.Ordered](a X, b X) (diff int) {
	switch {
	case a < b:
		diff = -1
	case a > b:
		diff = 1
	default:
		diff = 0
	}
	return
}

// CompareSets orders sets by size, then by their attrs in alphabetical order.
func CompareSets(a Set, b Set) (diff int) {
	diff = compare(a.Len(), b.Len())
	if diff == 0 {
		diff = compare(a.String(), b.String())
	}
	return
}

// CompareRules orders rules by their requires sets, then by their creates sets.
func CompareRules(a Rule, b Rule) (diff int) {
	diff = CompareSets(a.Requires, b.Requires)
	if diff == 0 {
		diff = CompareSets(a.Creates, b.Creates)
	}
	return
}

// CompareStrings orders strings lexically.
func CompareStrings(a string, b string) int {
	return compare(a, b)
}

// Less converts a comparer into a lesser.
func Less[T any](comparer Comparer[T]) Lesser[T] {
	return func(a T, b T) bool {
		return comparer(a, b) < 0
	}
}
