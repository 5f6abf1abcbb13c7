package relation

import (
	"golang.org/x/exp/slices"

	"github.com/dball/dephyr/internal/index"
	"github.com/dball/dephyr/internal/iterator"
	. "github.com/dball/dephyr/internal/types"
)

// MinimalBasis returns an equivalent set of rules with single attr creates sets, no
// reducible requires sets, and no redundant rules. The relation is not changed.
//
// The rules are considered in order, and the first successful reduction found wins, so the
// result is one of possibly several minimal bases.
func (relation *Relation) MinimalBasis() (rules []Rule) {
	rules = make([]Rule, 0, len(relation.Rules))
	for _, rule := range relation.Rules {
		for _, attr := range rule.Creates.Attrs() {
			rules = append(rules, Rule{Requires: rule.Requires, Creates: NewSet(attr)})
		}
	}
	for modified := true; modified; {
		modified = false
		for i := 0; i < len(rules); {
			if reduceRequires(rules, i) {
				modified = true
			}
			rule := rules[i]
			closure := Closure(rule.Requires, rules)
			rules = slices.Delete(rules, i, i+1)
			if Closure(rule.Requires, rules) == closure {
				modified = true
				continue
			}
			rules = slices.Insert(rules, i, rule)
			i++
		}
	}
	return
}

// reduceRequires drops attrs from the requires set of the ith rule for as long as some
// subset one attr smaller has the same closure under the rules.
func reduceRequires(rules []Rule, i int) (reduced bool) {
	for rules[i].Requires.Len() > 1 {
		requires := rules[i].Requires
		closure := Closure(requires, rules)
		smaller := iterator.Subsets(requires, requires.Len()-1, requires.Len()-1)
		found := false
		smaller.Each(func(subset Set) bool {
			found = Closure(subset, rules) == closure
			if found {
				rules[i].Requires = subset
			}
			return !found
		})
		if !found {
			return
		}
		reduced = true
	}
	return
}

// MakeMinimal replaces the relation's rules with their minimal basis.
func (relation *Relation) MakeMinimal() {
	relation.Rules = relation.MinimalBasis()
}

// Compress returns rules where those sharing a requires set are merged into one rule
// creating all of their creates sets, ordered by requires set.
func Compress(rules []Rule) []Rule {
	idx := index.NewRuleIndex(index.DefaultDegree)
	for _, rule := range rules {
		idx.Insert(rule)
	}
	return idx.Rules()
}

// Compress merges the relation's rules that share a requires set.
func (relation *Relation) Compress() {
	relation.Rules = Compress(relation.Rules)
}
