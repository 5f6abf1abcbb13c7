// Package index provides ordered rule indexes implemented on btrees.
package index

import (
	"github.com/dball/dephyr/internal/iterator"
	. "github.com/dball/dephyr/internal/types"

	"github.com/google/btree"
)

// DefaultDegree is the btree degree used when none is given.
const DefaultDegree = 32

// RuleIndex is a sorted set of rules where the basis for uniqueness is the requires set.
// Inserting a rule whose requires set is already present merges its creates set into the
// extant rule.
//
// RuleIndex instances are not safe for concurrent writes.
type RuleIndex struct {
	tree *btree.BTreeG[Rule]
}

var _ iterator.Collection[Rule] = (*RuleIndex)(nil)

func lessRequires(a Rule, b Rule) bool {
	return CompareSets(a.Requires, b.Requires) < 0
}

// NewRuleIndex returns an empty rule index of the given degree, or the default degree if it is
// too small for a btree.
func NewRuleIndex(degree int) (idx *RuleIndex) {
	if degree < 2 {
		degree = DefaultDegree
	}
	idx = &RuleIndex{tree: btree.NewG(degree, btree.LessFunc[Rule](lessRequires))}
	return
}

// Insert ensures a rule with the given rule's requires set is present and creates at least the
// given rule's creates set. It returns true if a rule with the requires set was already present.
func (idx *RuleIndex) Insert(rule Rule) (extant bool) {
	prior, extant := idx.tree.Get(rule)
	if extant {
		rule.Creates = rule.Creates.Union(prior.Creates)
	}
	idx.tree.ReplaceOrInsert(rule)
	return
}

// Len returns the number of distinct requires sets.
func (idx *RuleIndex) Len() int {
	return idx.tree.Len()
}

// Each gives the rules to accept in ascending requires order.
func (idx *RuleIndex) Each(accept iterator.Accept[Rule]) {
	idx.tree.Ascend(btree.ItemIteratorG[Rule](accept))
}

// Rules returns the rules in ascending requires order.
func (idx *RuleIndex) Rules() (rules []Rule) {
	rules = make([]Rule, 0, idx.Len())
	idx.Each(func(rule Rule) bool {
		rules = append(rules, rule)
		return true
	})
	return
}
