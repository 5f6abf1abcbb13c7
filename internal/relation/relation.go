// Package relation computes the properties of relational schemas under functional
// dependencies and decomposes them into normal forms.
//
// All of the operations are exhaustive over the subsets of a relation's attrs, which is
// acceptable for the small schemas found in practice.
package relation

import (
	"fmt"

	"golang.org/x/exp/slices"

	. "github.com/dball/dephyr/internal/types"
)

// Relation is a universe of attrs and the rules in force over them. Rules are expected to
// mention only attrs in Elements; foreign attrs are tolerated but can never be part of a key.
//
// Relations are not safe for concurrent use. Derived relations share no state with their
// sources.
type Relation struct {
	Elements Set
	Rules    []Rule
}

// New returns a relation over the elements with a copy of the given rules.
func New(elements Set, rules ...Rule) (relation *Relation) {
	relation = &Relation{Elements: elements, Rules: slices.Clone(rules)}
	if relation.Rules == nil {
		relation.Rules = []Rule{}
	}
	return
}

// WithRules returns a new relation over the same elements with the given rules.
func (relation *Relation) WithRules(rules []Rule) *Relation {
	return New(relation.Elements, rules...)
}

// Clone returns a copy of the relation.
func (relation *Relation) Clone() *Relation {
	return relation.WithRules(relation.Rules)
}

// Foreign returns the attrs mentioned by the rules that are not among the elements.
func Foreign(elements Set, rules ...Rule) (foreign Set) {
	for _, rule := range rules {
		foreign = foreign.Union(rule.Attrs())
	}
	foreign = foreign.Minus(elements)
	return
}

func (relation *Relation) String() string {
	return fmt.Sprintf("%s %v", relation.Elements, relation.Rules)
}
