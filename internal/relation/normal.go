package relation

import (
	"github.com/dball/dephyr/internal/iterator"
	. "github.com/dball/dephyr/internal/types"
)

// EachBCNFViolator gives accept the rules, in order, whose requires set is not itself a key.
// Note a superset of a key is itself a key, so this is the superkey test.
func (relation *Relation) EachBCNFViolator(accept iterator.Accept[Rule]) {
	for _, rule := range relation.Rules {
		if !relation.IsKey(rule.Requires) && !accept(rule) {
			return
		}
	}
}

// BCNFViolators returns the rules that violate boyce-codd normal form.
func (relation *Relation) BCNFViolators() (violators []Rule) {
	violators = []Rule{}
	relation.EachBCNFViolator(func(rule Rule) bool {
		violators = append(violators, rule)
		return true
	})
	return
}

// FirstBCNFViolator returns the first rule that violates boyce-codd normal form, if any.
func (relation *Relation) FirstBCNFViolator() (violator Rule, found bool) {
	relation.EachBCNFViolator(func(rule Rule) bool {
		violator, found = rule, true
		return false
	})
	return
}

// ThreeNFViolators returns the BCNF violators that create an attr which is not required by
// any rule.
//
// Attrs required by some rule stand in for the prime attrs here, which is a looser test than
// membership in a candidate key.
func (relation *Relation) ThreeNFViolators() (violators []Rule) {
	var required Set
	for _, rule := range relation.Rules {
		required = required.Union(rule.Requires)
	}
	violators = []Rule{}
	relation.EachBCNFViolator(func(rule Rule) bool {
		if !required.Contains(rule.Creates) {
			violators = append(violators, rule)
		}
		return true
	})
	return
}
