// Package category materializes the compiled-in category catalog into
// per-category markdown files and an aggregate index.
package category

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fhehub/internal/catalog"
)

// Organizer writes category markdown. Unlike the example scaffolder, an
// unknown key is reported and swallowed rather than treated as fatal.
type Organizer struct {
	out    io.Writer
	errOut io.Writer
}

func NewOrganizer() *Organizer {
	return &Organizer{out: os.Stdout, errOut: os.Stderr}
}

// List prints every category with its key, display name and example count.
func List(w io.Writer) {
	fmt.Fprintln(w, "Available categories:")
	for _, c := range catalog.Categories() {
		fmt.Fprintf(w, "  %-20s %s (%d examples)\n", c.Key, c.DisplayName, len(c.ExampleKeys))
		fmt.Fprintf(w, "  %-20s %s\n", "", c.Description)
	}
}

// CreateStructure writes <outputDir>/<key>/CATEGORY.md and README.md for one
// category. An unknown key writes nothing, reports the miss on stderr and
// returns nil: the command still completes normally.
func (o *Organizer) CreateStructure(key, outputDir string) error {
	cat, ok := catalog.CategoryByKey(key)
	if !ok {
		fmt.Fprintf(o.errOut, "❌ Unknown category %q. Run 'create-category list' to see valid keys.\n", key)
		return nil
	}

	dir := filepath.Join(outputDir, cat.Key)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := o.writeFile(filepath.Join(dir, "CATEGORY.md"), renderCategory(cat)); err != nil {
		return err
	}
	return o.writeFile(filepath.Join(dir, "README.md"), renderIndex(cat))
}

// CreateAll writes every category in declaration order, then the aggregate
// CATEGORIES.md index. Categories already written stay on disk if a later
// write fails.
func (o *Organizer) CreateAll(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	for _, cat := range catalog.Categories() {
		if err := o.CreateStructure(cat.Key, outputDir); err != nil {
			return err
		}
	}

	var sb strings.Builder
	sb.WriteString("# Categories\n\n")
	for _, cat := range catalog.Categories() {
		sb.WriteString(fmt.Sprintf("## [%s](%s/README.md)\n\n", cat.DisplayName, cat.Key))
		sb.WriteString(cat.Description + "\n\n")
	}
	return o.writeFile(filepath.Join(outputDir, "CATEGORIES.md"), sb.String())
}

func (o *Organizer) writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	fmt.Fprintf(o.out, "📄 Wrote %s\n", path)
	return nil
}

func renderCategory(cat catalog.Category) string {
	var sb strings.Builder
	sb.WriteString("# " + cat.DisplayName + "\n\n")
	sb.WriteString(cat.Description + "\n\n")

	sb.WriteString("## Concepts\n\n")
	for _, c := range cat.Concepts {
		sb.WriteString("- " + c + "\n")
	}

	sb.WriteString("\n## Examples\n\n")
	for _, key := range cat.ExampleKeys {
		sb.WriteString(fmt.Sprintf("- [%s](../examples/%s/README.md)\n", key, key))
	}

	sb.WriteString("\n## Learning Path\n\n")
	sb.WriteString("Work through the examples in the order listed above. ")
	sb.WriteString("Each example builds on the concepts introduced by the previous one, ")
	sb.WriteString("so finish each project before moving on to the next.\n")
	return sb.String()
}

func renderIndex(cat catalog.Category) string {
	var sb strings.Builder
	sb.WriteString("# " + cat.DisplayName + "\n\n")
	sb.WriteString(cat.Description + "\n\n")

	sb.WriteString("## Contents\n\n")
	for _, key := range cat.ExampleKeys {
		sb.WriteString(fmt.Sprintf("- [%s](./%s/)\n", key, key))
	}
	return sb.String()
}
