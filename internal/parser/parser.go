// Package parser reads relations from dependency text: a line naming the universe of
// attrs, e.g. "ABCD", followed by lines of rules, e.g. "AB -> C".
//
// Letters are case-insensitive and every other character is ignored. Blank lines and lines
// starting with # are skipped. Attrs a rule both requires and creates are dropped from its
// creates set, and a rule that creates nothing else is a syntax error.
package parser

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/dball/dephyr/internal/relation"
	. "github.com/dball/dephyr/internal/types"
)

const arrow = "->"

var separators = regexp.MustCompile(`[;,\n]+`)

type ingester struct {
	elements Set
	started  bool
	rules    []Rule
}

func (in *ingester) ingest(n int, line string) (err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	if !in.started {
		in.elements = ParseSet(line)
		if in.elements.IsEmpty() {
			err = NewError("parser.emptyUniverse", "line", n, "text", line)
			return
		}
		in.started = true
		return
	}
	requires, creates, ok := strings.Cut(line, arrow)
	if !ok || strings.Contains(creates, arrow) {
		err = NewError("parser.syntax", "line", n, "text", line)
		return
	}
	rule := Rule{Requires: ParseSet(requires), Creates: ParseSet(creates)}
	foreign := relation.Foreign(in.elements, rule)
	if !foreign.IsEmpty() {
		err = NewError("parser.unknownAttrs", "line", n, "attrs", foreign.String())
		return
	}
	rule.Creates = rule.Creates.Minus(rule.Requires)
	if rule.Creates.IsEmpty() {
		err = NewError("parser.syntax", "line", n, "text", line)
		return
	}
	in.rules = append(in.rules, rule)
	return
}

func (in *ingester) relation() (rel *relation.Relation, err error) {
	if !in.started {
		err = NewError("parser.empty")
		return
	}
	rel = relation.New(in.elements, in.rules...)
	return
}

func ingestLines(lines []string) (rel *relation.Relation, err error) {
	in := &ingester{}
	for i, line := range lines {
		err = in.ingest(i+1, line)
		if err != nil {
			return
		}
	}
	rel, err = in.relation()
	return
}

// ParseString parses a relation from a string whose lines may also be separated by commas or
// semicolons, e.g. "ABC; A->B, B->C".
func ParseString(s string) (rel *relation.Relation, err error) {
	rel, err = ingestLines(separators.Split(s, -1))
	return
}

// Read parses a relation from newline separated text.
func Read(r io.Reader) (rel *relation.Relation, err error) {
	in := &ingester{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		err = in.ingest(n, scanner.Text())
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}
	rel, err = in.relation()
	return
}
