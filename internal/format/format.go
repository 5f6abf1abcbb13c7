// Package format renders keys, rules and relations for people: attrs are uppercased and
// every list is sorted so that output is stable.
package format

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dball/dephyr/internal/index"
	"github.com/dball/dephyr/internal/parser"
	"github.com/dball/dephyr/internal/relation"
	. "github.com/dball/dephyr/internal/types"
)

// Formatter renders engine results. Formatters are not safe for concurrent use.
type Formatter struct {
	degree int
	upper  cases.Caser
}

// NewFormatter returns a formatter whose sorted lists use btrees of the given degree.
func NewFormatter(degree int) (f *Formatter) {
	f = &Formatter{degree: degree, upper: cases.Upper(language.Und)}
	return
}

// Key renders a set of attrs, e.g. "ABD".
func (f *Formatter) Key(set Set) string {
	return f.upper.String(set.String())
}

// Rule renders a rule, e.g. "AB -> C".
func (f *Formatter) Rule(rule Rule) string {
	return f.Key(rule.Requires) + " -> " + f.Key(rule.Creates)
}

// KeyList renders the sets in alphabetical order.
func (f *Formatter) KeyList(sets []Set) []string {
	sorted := index.NewSorted(f.degree, index.CompareStrings)
	for _, set := range sets {
		sorted.Insert(f.Key(set))
	}
	return sorted.Values()
}

// RuleList renders the rules ordered by their requires sets, then by their creates sets, each by
// size and then alphabetically.
func (f *Formatter) RuleList(rules []Rule) (lines []string) {
	sorted := index.NewSorted(f.degree, index.CompareRules)
	sorted.Insert(rules...)
	lines = make([]string, 0, len(rules))
	sorted.Each(func(rule Rule) bool {
		lines = append(lines, f.Rule(rule))
		return true
	})
	return
}

func compareDocuments(a parser.Document, b parser.Document) (diff int) {
	diff = index.CompareStrings(a.Elements, b.Elements)
	if diff == 0 {
		diff = index.CompareStrings(strings.Join(a.Rules, "\n"), strings.Join(b.Rules, "\n"))
	}
	return
}

// Documents renders the relations ordered by their elements, then by their rules.
func (f *Formatter) Documents(relations []*relation.Relation) []parser.Document {
	sorted := index.NewSorted(f.degree, compareDocuments)
	for _, rel := range relations {
		sorted.Insert(parser.Document{Elements: f.Key(rel.Elements), Rules: f.RuleList(rel.Rules)})
	}
	return sorted.Values()
}

// Keys renders the sets one per line.
func (f *Formatter) Keys(sets []Set) string {
	return strings.Join(f.KeyList(sets), "\n")
}

// Rules renders the rules one per line.
func (f *Formatter) Rules(rules []Rule) string {
	return strings.Join(f.RuleList(rules), "\n")
}

// Relations renders each relation as its elements, its rules, and a blank line.
func (f *Formatter) Relations(relations []*relation.Relation) string {
	return RenderDocuments(f.Documents(relations))
}

// RenderDocuments renders each document as its elements, its rules, and a blank line.
func RenderDocuments(docs []parser.Document) string {
	var b strings.Builder
	for _, doc := range docs {
		b.WriteString(doc.Elements)
		b.WriteString("\n")
		b.WriteString(strings.Join(doc.Rules, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}

// EncodeYAML writes each value as a yaml document.
func EncodeYAML(w io.Writer, values ...any) (err error) {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	for _, value := range values {
		err = encoder.Encode(value)
		if err != nil {
			return
		}
	}
	err = encoder.Close()
	return
}
