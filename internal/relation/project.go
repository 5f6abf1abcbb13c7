package relation

import (
	"github.com/dball/dephyr/internal/iterator"
	. "github.com/dball/dephyr/internal/types"
)

// Project returns a new relation over the target attrs whose rules are every dependency that
// holds among them: for each subset of the target, the attrs of the target it determines
// beyond itself. The rules are not minimized.
func (relation *Relation) Project(target Set) (projected *Relation) {
	rules := []Rule{}
	iterator.PowerSet(target).Each(func(requires Set) bool {
		creates := relation.Closure(requires).Intersect(target).Minus(requires)
		if !creates.IsEmpty() {
			rules = append(rules, Rule{Requires: requires, Creates: creates})
		}
		return true
	})
	projected = &Relation{Elements: target, Rules: rules}
	return
}
