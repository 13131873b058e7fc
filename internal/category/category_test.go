package category

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fhehub/internal/catalog"
)

func quietOrganizer() (*Organizer, *bytes.Buffer) {
	errBuf := &bytes.Buffer{}
	return &Organizer{out: io.Discard, errOut: errBuf}, errBuf
}

func TestCreateStructure(t *testing.T) {
	t.Run("known key writes both files", func(t *testing.T) {
		org, _ := quietOrganizer()
		dir := t.TempDir()
		require.NoError(t, org.CreateStructure("basic-operations", dir))

		assert.FileExists(t, filepath.Join(dir, "basic-operations", "CATEGORY.md"))
		assert.FileExists(t, filepath.Join(dir, "basic-operations", "README.md"))

		raw, err := os.ReadFile(filepath.Join(dir, "basic-operations", "CATEGORY.md"))
		require.NoError(t, err)
		text := string(raw)

		cat, ok := catalog.CategoryByKey("basic-operations")
		require.True(t, ok)
		for _, concept := range cat.Concepts {
			assert.Contains(t, text, concept)
		}
		for _, key := range cat.ExampleKeys {
			assert.Contains(t, text, "](../examples/"+key+"/README.md)")
		}
		assert.Contains(t, text, "## Learning Path")
	})

	t.Run("unknown key is a logged no-op", func(t *testing.T) {
		org, errBuf := quietOrganizer()
		dir := t.TempDir()

		require.NoError(t, org.CreateStructure("no-such-category", dir))
		assert.Contains(t, errBuf.String(), "no-such-category")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("README links same-named subdirectories", func(t *testing.T) {
		org, _ := quietOrganizer()
		dir := t.TempDir()
		require.NoError(t, org.CreateStructure("decryption", dir))

		raw, err := os.ReadFile(filepath.Join(dir, "decryption", "README.md"))
		require.NoError(t, err)
		text := string(raw)

		assert.Contains(t, text, "## Contents")
		assert.Contains(t, text, "- [user-decryption](./user-decryption/)")
		assert.Contains(t, text, "- [public-decryption](./public-decryption/)")
	})
}

func TestCreateAll(t *testing.T) {
	org, _ := quietOrganizer()
	dir := t.TempDir()
	require.NoError(t, org.CreateAll(dir))

	cats := catalog.Categories()
	for _, cat := range cats {
		assert.FileExists(t, filepath.Join(dir, cat.Key, "CATEGORY.md"))
		assert.FileExists(t, filepath.Join(dir, cat.Key, "README.md"))
	}

	raw, err := os.ReadFile(filepath.Join(dir, "CATEGORIES.md"))
	require.NoError(t, err)
	text := string(raw)

	assert.Equal(t, len(cats), strings.Count(text, "\n## "), "one level-2 heading per category")
	for _, cat := range cats {
		assert.Contains(t, text, "["+cat.DisplayName+"]("+cat.Key+"/README.md)")
		assert.Contains(t, text, cat.Description)
	}

	// N category subdirectories plus the aggregate index.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(cats)+1)
}
