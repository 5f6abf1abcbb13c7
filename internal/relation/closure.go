package relation

import (
	. "github.com/dball/dephyr/internal/types"
)

// Closure returns every attr derivable from attrs by repeatedly applying the rules. Each rule
// is applied at most once; a pass over the remaining rules repeats until one adds nothing.
func Closure(attrs Set, rules []Rule) (seen Set) {
	seen = attrs
	pending := make([]Rule, len(rules))
	copy(pending, rules)
	for {
		prior := seen
		for i := 0; i < len(pending); {
			rule := pending[i]
			if !seen.Contains(rule.Requires) {
				i++
				continue
			}
			seen = seen.Union(rule.Creates)
			last := len(pending) - 1
			pending[i] = pending[last]
			pending = pending[:last]
		}
		if seen == prior {
			return
		}
	}
}

// Closure returns the closure of attrs under the relation's rules.
func (relation *Relation) Closure(attrs Set) Set {
	return Closure(attrs, relation.Rules)
}

// IsKey returns true if the attrs are among the elements and close to all of them. These are
// exactly the members of AllKeys.
func (relation *Relation) IsKey(attrs Set) bool {
	return relation.Elements.Contains(attrs) && relation.Closure(attrs) == relation.Elements
}
