package format

import (
	"bytes"
	"testing"

	"github.com/dball/dephyr/internal/parser"
	"github.com/dball/dephyr/internal/relation"
	. "github.com/dball/dephyr/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	f := NewFormatter(2)
	assert.Equal(t, "ABD", f.Key(ParseSet("dba")))
	assert.Equal(t, "", f.Key(0))
	assert.Equal(t, "AC\nB\nBD", f.Keys([]Set{ParseSet("bd"), ParseSet("ac"), ParseSet("b")}))
	assert.Equal(t, "", f.Keys(nil))
}

func TestRules(t *testing.T) {
	f := NewFormatter(2)
	rules := []Rule{R("bc", "a"), R("b", "d"), R("ab", "c"), R("a", "d"), R("a", "c"), R("a", "c")}
	expected := "A -> C\nA -> C\nA -> D\nB -> D\nAB -> C\nBC -> A"
	assert.Equal(t, expected, f.Rules(rules))
	assert.Equal(t, "", f.Rules(nil))
	assert.Equal(t, "A -> D\nA -> BC", f.Rules([]Rule{R("a", "bc"), R("a", "d")}))
}

func TestRelations(t *testing.T) {
	f := NewFormatter(0)
	relations := []*relation.Relation{
		relation.New(ParseSet("ac")),
		relation.New(ParseSet("ab"), R("a", "b")),
	}
	assert.Equal(t, "AB\nA -> B\n\nAC\n\n\n", f.Relations(relations))
	assert.Equal(t, []parser.Document{
		{Elements: "AB", Rules: []string{"A -> B"}},
		{Elements: "AC", Rules: []string{}},
	}, f.Documents(relations))
}

func TestEncodeYAML(t *testing.T) {
	f := NewFormatter(0)
	var buf bytes.Buffer
	docs := f.Documents([]*relation.Relation{relation.New(ParseSet("abc"), R("a", "b"), R("b", "c"))})
	require.NoError(t, EncodeYAML(&buf, docs[0]))
	assert.Equal(t, "elements: ABC\nrules:\n  - A -> B\n  - B -> C\n", buf.String())

	rel, err := parser.ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, relation.New(ParseSet("abc"), R("a", "b"), R("b", "c")), rel)
}
