package relation

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dball/dephyr/internal/index"
	"github.com/dball/dephyr/internal/iterator"
	. "github.com/dball/dephyr/internal/types"
)

// AllKeys returns every subset of the elements, the elements included, whose closure is
// the elements.
func (relation *Relation) AllKeys() (keys map[Set]Void) {
	keys = map[Set]Void{}
	iterator.PowerSet(relation.Elements).Each(func(subset Set) bool {
		if relation.Closure(subset) == relation.Elements {
			keys[subset] = Void{}
		}
		return true
	})
	return
}

// CandidateKeys returns the minimal keys, ordered by size and then alphabetically.
func (relation *Relation) CandidateKeys() (candidates []Set) {
	keys := relation.AllKeys()
	all := maps.Keys(keys)
	slices.SortFunc(all, index.Less(index.CompareSets))
	candidates = []Set{}
	for _, key := range all {
		if !hasSubKey(keys, key) {
			candidates = append(candidates, key)
		}
	}
	return
}

// hasSubKey searches the proper subsets of key from the largest down.
func hasSubKey(keys map[Set]Void, key Set) bool {
	if key.IsEmpty() {
		return false
	}
	return iterator.Any(iterator.SubsetsDescending(key, key.Len()-1, 0), func(subset Set) bool {
		_, ok := keys[subset]
		return ok
	})
}

// AllFunctionalDeps returns a rule for every subset of the elements that determines attrs
// beyond itself, creating everything it determines.
func (relation *Relation) AllFunctionalDeps() (rules []Rule) {
	rules = []Rule{}
	iterator.PowerSet(relation.Elements).Each(func(subset Set) bool {
		creates := relation.Closure(subset).Minus(subset)
		if !creates.IsEmpty() {
			rules = append(rules, Rule{Requires: subset, Creates: creates})
		}
		return true
	})
	return
}
