package scaffold

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fhehub/internal/catalog"
)

func quietGenerator() *Generator {
	gen := NewGenerator("INFURA_API_KEY")
	gen.out = io.Discard
	return gen
}

func TestPascalName(t *testing.T) {
	cases := map[string]string{
		"encrypted-counter":    "EncryptedCounter",
		"add-two-values":       "AddTwoValues",
		"a":                    "A",
		"erc20-swap":           "Erc20Swap",
		"sealed-bid-auction":   "SealedBidAuction",
		"already-Capitalized":  "AlreadyCapitalized",
		"trailing-":            "Trailing",
		"double--dash":         "DoubleDash",
	}
	for in, want := range cases {
		assert.Equal(t, want, PascalName(in), "PascalName(%q)", in)
	}

	t.Run("idempotent on its own output", func(t *testing.T) {
		for in := range cases {
			once := PascalName(in)
			assert.Equal(t, once, PascalName(once))
		}
	})
}

func TestGenerate_LayoutForEveryCatalogKey(t *testing.T) {
	gen := quietGenerator()

	for _, ex := range catalog.Examples() {
		t.Run(ex.Key, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, gen.Generate(ex.Key, dir))

			// Exactly one top-level directory, named by the transform.
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			name := PascalName(ex.Key)
			assert.Equal(t, name, entries[0].Name())

			root := filepath.Join(dir, name)
			for _, want := range []string{
				filepath.Join("contracts", name+".sol"),
				filepath.Join("test", name+".test.ts"),
				"hardhat.config.ts",
				"tsconfig.json",
				"package.json",
				"README.md",
			} {
				assert.FileExists(t, filepath.Join(root, want))
			}
			for _, seed := range seedDirs {
				assert.DirExists(t, filepath.Join(root, seed))
			}

			// Six generated files and nothing else.
			var fileCount int
			require.NoError(t, filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() {
					fileCount++
				}
				return nil
			}))
			assert.Equal(t, 6, fileCount)
		})
	}
}

func TestGenerate_UnknownKeyWritesNothing(t *testing.T) {
	gen := quietGenerator()
	dir := t.TempDir()

	err := gen.Generate("not-a-real-key", dir)
	require.ErrorIs(t, err, ErrUnknownExample)
	assert.Contains(t, err.Error(), "not-a-real-key")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_ReRunIsByteIdentical(t *testing.T) {
	gen := quietGenerator()
	dir := t.TempDir()

	require.NoError(t, gen.Generate("encrypted-counter", dir))
	first := snapshotTree(t, dir)

	require.NoError(t, gen.Generate("encrypted-counter", dir))
	second := snapshotTree(t, dir)

	assert.Empty(t, cmp.Diff(first, second))
}

func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	require.NoError(t, filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[rel] = string(raw)
		return nil
	}))
	return tree
}

func TestGenerate_ContractContent(t *testing.T) {
	gen := quietGenerator()
	dir := t.TempDir()
	require.NoError(t, gen.Generate("sealed-bid-auction", dir))

	raw, err := os.ReadFile(filepath.Join(dir, "SealedBidAuction", "contracts", "SealedBidAuction.sol"))
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "contract SealedBidAuction is SepoliaConfig")
	assert.Contains(t, text, "@category advanced")
	assert.Contains(t, text, "@title Sealed Bid Auction")
}

func TestGenerate_TestReferencesFactory(t *testing.T) {
	gen := quietGenerator()
	dir := t.TempDir()
	require.NoError(t, gen.Generate("encrypted-counter", dir))

	raw, err := os.ReadFile(filepath.Join(dir, "EncryptedCounter", "test", "EncryptedCounter.test.ts"))
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, `getContractFactory("EncryptedCounter")`)
	assert.Contains(t, text, "EncryptedCounter__factory")
}

func TestGenerate_ReadmeListsFeatures(t *testing.T) {
	gen := quietGenerator()
	dir := t.TempDir()

	ex, ok := catalog.ExampleByKey("confidential-inventory")
	require.True(t, ok)
	require.NoError(t, gen.Generate(ex.Key, dir))

	raw, err := os.ReadFile(filepath.Join(dir, "ConfidentialInventory", "README.md"))
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, ex.Description)
	for _, f := range ex.Features {
		assert.Contains(t, text, "- "+f)
	}
}

func TestGenerate_HardhatConfigUsesConfiguredKeyEnv(t *testing.T) {
	gen := NewGenerator("MY_RPC_KEY")
	gen.out = io.Discard
	dir := t.TempDir()
	require.NoError(t, gen.Generate("encrypted-counter", dir))

	raw, err := os.ReadFile(filepath.Join(dir, "EncryptedCounter", "hardhat.config.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "process.env.MY_RPC_KEY")
}

func TestMarshalValidated(t *testing.T) {
	t.Run("manifest passes its schema", func(t *testing.T) {
		ex, ok := catalog.ExampleByKey("encrypted-counter")
		require.True(t, ok)

		raw, err := marshalValidated("package.schema.json", packageManifestSchema, manifestFor(ex))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(raw), "{\n"))
		assert.True(t, strings.HasSuffix(string(raw), "}\n"))
	})

	t.Run("tsconfig passes its schema", func(t *testing.T) {
		_, err := marshalValidated("tsconfig.schema.json", tsConfigSchema, defaultTSConfig())
		require.NoError(t, err)
	})

	t.Run("schema rejects a malformed manifest", func(t *testing.T) {
		bad := map[string]any{"version": "not-semver"}
		_, err := marshalValidated("package.schema.json", packageManifestSchema, bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}
