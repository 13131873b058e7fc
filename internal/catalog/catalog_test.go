package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleKeysAreUnique(t *testing.T) {
	// A duplicate literal key would silently shadow an earlier entry in the
	// index map, so the slice and the map must agree on cardinality.
	assert.Equal(t, len(examples), len(exampleIndex))

	seen := make(map[string]bool)
	for _, e := range examples {
		assert.False(t, seen[e.Key], "duplicate example key %q", e.Key)
		seen[e.Key] = true
	}
}

func TestCategoryKeysAreUnique(t *testing.T) {
	assert.Equal(t, len(categories), len(categoryIndex))

	seen := make(map[string]bool)
	for _, c := range categories {
		assert.False(t, seen[c.Key], "duplicate category key %q", c.Key)
		seen[c.Key] = true
	}
}

func TestCategoriesReferenceRealExamples(t *testing.T) {
	for _, c := range Categories() {
		for _, key := range c.ExampleKeys {
			_, ok := ExampleByKey(key)
			assert.True(t, ok, "category %q references unknown example %q", c.Key, key)
		}
	}
}

func TestEveryExampleBelongsToAKnownCategory(t *testing.T) {
	for _, e := range Examples() {
		_, ok := CategoryByKey(e.Category)
		assert.True(t, ok, "example %q names unknown category %q", e.Key, e.Category)
	}
}

func TestExampleByKey(t *testing.T) {
	e, ok := ExampleByKey("encrypted-counter")
	require.True(t, ok)
	assert.Equal(t, "Encrypted Counter", e.DisplayName)
	assert.Equal(t, "basic-operations", e.Category)
	assert.NotEmpty(t, e.Features)

	_, ok = ExampleByKey("not-a-real-key")
	assert.False(t, ok)
}

func TestDeclarationOrderIsPreserved(t *testing.T) {
	keys := ExampleKeys()
	require.Len(t, keys, len(examples))
	for i, e := range examples {
		assert.Equal(t, e.Key, keys[i])
	}

	ckeys := CategoryKeys()
	require.Len(t, ckeys, len(categories))
	assert.Equal(t, "basic-operations", ckeys[0])
}
