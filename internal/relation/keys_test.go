package relation

import (
	"testing"

	. "github.com/dball/dephyr/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestAllKeys(t *testing.T) {
	relation := New(ParseSet("abc"), R("a", "b"))
	expected := map[Set]Void{ParseSet("ac"): {}, ParseSet("abc"): {}}
	assert.Equal(t, expected, relation.AllKeys())
}

func TestCandidateKeys(t *testing.T) {
	t.Run("one rule", func(t *testing.T) {
		relation := New(ParseSet("abc"), R("a", "b"))
		assert.Equal(t, []Set{ParseSet("ac")}, relation.CandidateKeys())
	})

	t.Run("mutual rules", func(t *testing.T) {
		relation := New(ParseSet("ab"), R("a", "b"), R("b", "a"))
		assert.Equal(t, []Set{ParseSet("a"), ParseSet("b")}, relation.CandidateKeys())
	})

	t.Run("no rules", func(t *testing.T) {
		relation := New(ParseSet("ab"))
		assert.Equal(t, []Set{ParseSet("ab")}, relation.CandidateKeys())
	})

	t.Run("cycle", func(t *testing.T) {
		relation := New(ParseSet("abcd"), R("ab", "c"), R("c", "d"), R("d", "a"))
		expected := []Set{ParseSet("ab"), ParseSet("bc"), ParseSet("bd")}
		assert.Equal(t, expected, relation.CandidateKeys())
	})

	t.Run("keys are minimal", func(t *testing.T) {
		relation := New(ParseSet("abcdef"), R("ab", "c"), R("c", "d"), R("d", "a"), R("e", "f"), R("f", "e"))
		keys := relation.CandidateKeys()
		assert.NotEmpty(t, keys)
		for _, key := range keys {
			assert.Equal(t, relation.Elements, relation.Closure(key))
			for _, attr := range key.Attrs() {
				smaller := key.Minus(NewSet(attr))
				assert.NotEqual(t, relation.Elements, relation.Closure(smaller), "%s in %s", attr, key)
			}
		}
	})

	t.Run("foreign attrs prevent keys", func(t *testing.T) {
		relation := New(ParseSet("ab"), R("a", "c"))
		assert.Equal(t, ParseSet("c"), Foreign(relation.Elements, relation.Rules...))
		assert.Equal(t, ParseSet("ac"), relation.Closure(ParseSet("a")))
		assert.Empty(t, relation.CandidateKeys())
	})
}

func TestAllFunctionalDeps(t *testing.T) {
	t.Run("one rule", func(t *testing.T) {
		relation := New(ParseSet("abc"), R("a", "b"))
		assert.Equal(t, []Rule{R("a", "b"), R("ac", "b")}, relation.AllFunctionalDeps())
	})

	t.Run("chain", func(t *testing.T) {
		relation := New(ParseSet("abc"), R("a", "b"), R("b", "c"))
		expected := []Rule{R("a", "bc"), R("b", "c"), R("ab", "c"), R("ac", "b")}
		assert.Equal(t, expected, relation.AllFunctionalDeps())
	})

	t.Run("no rules", func(t *testing.T) {
		assert.Empty(t, New(ParseSet("abc")).AllFunctionalDeps())
	})
}
