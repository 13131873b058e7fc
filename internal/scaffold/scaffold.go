package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"fhehub/internal/catalog"
)

// ErrUnknownExample is returned when the requested key is not in the catalog.
// The CLI treats it as fatal, unlike the category tool's lookup miss.
var ErrUnknownExample = errors.New("unknown example")

// seedDirs are created inside every generated project, in this order.
var seedDirs = []string{
	"contracts",
	"test",
	"deploy",
	"tasks",
	"scripts",
	"docs",
	filepath.Join(".github", "workflows"),
	".vscode",
}

// PascalName converts a kebab-case catalog key into the generated contract
// identifier: the first rune of every '-'-delimited segment is upper-cased,
// nothing else is altered, and segments are joined with no separator.
func PascalName(key string) string {
	var b strings.Builder
	for _, seg := range strings.Split(key, "-") {
		if seg == "" {
			continue
		}
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// Generator scaffolds example projects from the compiled-in catalog.
type Generator struct {
	apiKeyEnv string
	out       io.Writer
}

// NewGenerator creates a generator whose hardhat.config.ts template reads the
// network API key from the named environment variable.
func NewGenerator(apiKeyEnv string) *Generator {
	return &Generator{apiKeyEnv: apiKeyEnv, out: os.Stdout}
}

// List prints every catalog entry with its key, display name and category.
func List(w io.Writer) {
	fmt.Fprintln(w, "Available examples:")
	for _, e := range catalog.Examples() {
		fmt.Fprintf(w, "  %-26s %s [%s]\n", e.Key, e.DisplayName, e.Category)
		fmt.Fprintf(w, "  %-26s %s\n", "", e.Description)
	}
}

// Generate scaffolds outputDir/<PascalName(key)>: eight seed directories and
// six generated files, each write reported with one status line. There is no
// rollback; a failure partway through leaves the directory partially written.
func (g *Generator) Generate(key, outputDir string) error {
	ex, ok := catalog.ExampleByKey(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExample, key)
	}

	name := PascalName(ex.Key)
	root := filepath.Join(outputDir, name)
	for _, dir := range seedDirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return err
		}
	}

	if err := g.writeFile(filepath.Join(root, "contracts", name+".sol"), renderContract(ex, name)); err != nil {
		return err
	}
	if err := g.writeFile(filepath.Join(root, "test", name+".test.ts"), renderTest(ex, name)); err != nil {
		return err
	}
	if err := g.writeFile(filepath.Join(root, "hardhat.config.ts"), renderHardhatConfig(g.apiKeyEnv)); err != nil {
		return err
	}

	tsBytes, err := marshalValidated("tsconfig.schema.json", tsConfigSchema, defaultTSConfig())
	if err != nil {
		return err
	}
	if err := g.writeFile(filepath.Join(root, "tsconfig.json"), string(tsBytes)); err != nil {
		return err
	}

	pkgBytes, err := marshalValidated("package.schema.json", packageManifestSchema, manifestFor(ex))
	if err != nil {
		return err
	}
	if err := g.writeFile(filepath.Join(root, "package.json"), string(pkgBytes)); err != nil {
		return err
	}

	return g.writeFile(filepath.Join(root, "README.md"), renderReadme(ex))
}

func (g *Generator) writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	fmt.Fprintf(g.out, "📄 Wrote %s\n", path)
	return nil
}
