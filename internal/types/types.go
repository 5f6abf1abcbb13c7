// Package types defines the core system types.
package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Void is used for values in maps used as sets.
type Void struct{}

// Attr is a single schema attribute, a lowercase ascii letter.
type Attr rune

// Valid returns true if the attr is a lowercase ascii letter.
func (attr Attr) Valid() bool {
	return attr >= 'a' && attr <= 'z'
}

func (attr Attr) String() string {
	return string(attr)
}

// ToAttr normalizes a rune to an attr. Uppercase ascii letters are lowercased;
// anything else that is not a lowercase ascii letter is rejected.
func ToAttr(r rune) (attr Attr, ok bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	attr = Attr(r)
	ok = attr.Valid()
	return
}

// Set is an immutable set of attrs. Sets are comparable with == and usable as map keys.
type Set uint32

// NewSet returns the set of the given attrs. Invalid attrs are ignored.
func NewSet(attrs ...Attr) (set Set) {
	for _, attr := range attrs {
		set = set.With(attr)
	}
	return
}

// ParseSet returns the set of the letters in the string, ignoring case and dropping
// every other character.
func ParseSet(s string) (set Set) {
	for _, r := range s {
		attr, ok := ToAttr(r)
		if ok {
			set = set.With(attr)
		}
	}
	return
}

func bit(attr Attr) Set {
	return Set(1) << uint(attr-'a')
}

// With returns the set with the attr added.
func (set Set) With(attr Attr) Set {
	if !attr.Valid() {
		return set
	}
	return set | bit(attr)
}

// Has returns true if the attr is in the set.
func (set Set) Has(attr Attr) bool {
	return attr.Valid() && set&bit(attr) != 0
}

// Union returns the attrs in either set.
func (set Set) Union(other Set) Set { return set | other }

// Intersect returns the attrs in both sets.
func (set Set) Intersect(other Set) Set { return set & other }

// Minus returns the attrs in the set that are not in the other.
func (set Set) Minus(other Set) Set { return set &^ other }

// Contains returns true if every attr of the other set is in this set.
func (set Set) Contains(other Set) bool { return other&^set == 0 }

// Len returns the number of attrs in the set.
func (set Set) Len() int { return bits.OnesCount32(uint32(set)) }

// IsEmpty returns true if the set has no attrs.
func (set Set) IsEmpty() bool { return set == 0 }

// Attrs returns the attrs in ascending order.
func (set Set) Attrs() (attrs []Attr) {
	attrs = make([]Attr, 0, set.Len())
	for rest := uint32(set); rest != 0; rest &= rest - 1 {
		attrs = append(attrs, Attr('a'+bits.TrailingZeros32(rest)))
	}
	return
}

// String returns the attrs in ascending order, e.g. "abd".
func (set Set) String() string {
	var b strings.Builder
	for _, attr := range set.Attrs() {
		b.WriteRune(rune(attr))
	}
	return b.String()
}

// Rule is a functional dependency: the Requires attrs determine the Creates attrs.
// Rules are values; two rules are the same if their sets are.
type Rule struct {
	Requires Set
	Creates  Set
}

// R is a convenience function for building a rule from attr strings, e.g. R("ab", "c").
func R(requires string, creates string) Rule {
	return Rule{Requires: ParseSet(requires), Creates: ParseSet(creates)}
}

// Attrs returns every attr the rule mentions.
func (rule Rule) Attrs() Set {
	return rule.Requires | rule.Creates
}

func (rule Rule) String() string {
	return fmt.Sprintf("%s->%s", rule.Requires, rule.Creates)
}
