package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	whitespaceRunRe = regexp.MustCompile(`\s+`)
	contractNameRe  = regexp.MustCompile(`contract\s+(\w+)`)
	functionNameRe  = regexp.MustCompile(`function\s+(\w+)\s*\(`)
)

// chapterFileName derives the output file name for a chapter: lower-cased,
// whitespace runs collapsed to single hyphens.
func chapterFileName(chapter string) string {
	return whitespaceRunRe.ReplaceAllString(strings.ToLower(chapter), "-") + ".md"
}

// WriteMarkdownTree groups records by chapter and writes one markdown file
// per chapter into outputDir. Within a chapter, records are grouped by
// category; both groupings use first-appearance order so re-runs are
// deterministic. An empty record slice writes nothing.
func WriteMarkdownTree(records []Record, outputDir string) error {
	if len(records) == 0 {
		return nil
	}

	var chapterOrder []string
	byChapter := make(map[string][]Record)
	for _, r := range records {
		if _, ok := byChapter[r.Chapter]; !ok {
			chapterOrder = append(chapterOrder, r.Chapter)
		}
		byChapter[r.Chapter] = append(byChapter[r.Chapter], r)
	}

	for _, chapter := range chapterOrder {
		recs := byChapter[chapter]

		var catOrder []string
		byCat := make(map[string][]Record)
		for _, r := range recs {
			if _, ok := byCat[r.Category]; !ok {
				catOrder = append(catOrder, r.Category)
			}
			byCat[r.Category] = append(byCat[r.Category], r)
		}

		var sb strings.Builder
		sb.WriteString("# " + chapter + "\n\n")
		for _, cat := range catOrder {
			sb.WriteString("## " + cat + "\n\n")
			for _, r := range byCat[cat] {
				sb.WriteString("### " + r.Title + "\n\n")
				if r.Description != "" {
					sb.WriteString(r.Description + "\n\n")
				}
				sb.WriteString("---\n\n")
			}
		}

		path := filepath.Join(outputDir, chapterFileName(chapter))
		if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
			return err
		}
		fmt.Printf("📄 Wrote %s\n", path)
	}
	return nil
}

// WriteAPIReference emits a function index for one contract source file. The
// contract name is the first identifier after the contract keyword, falling
// back to "Contract"; function names are deduplicated in appearance order.
func WriteAPIReference(sourceText, outputDir string) error {
	name := "Contract"
	if m := contractNameRe.FindStringSubmatch(sourceText); m != nil {
		name = m[1]
	}

	var fns []string
	seen := make(map[string]bool)
	for _, m := range functionNameRe.FindAllStringSubmatch(sourceText, -1) {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		fns = append(fns, m[1])
	}

	var sb strings.Builder
	sb.WriteString("# " + name + " API Reference\n\n")
	sb.WriteString("## Functions\n\n")
	for _, fn := range fns {
		sb.WriteString("- `" + fn + "`\n")
	}

	path := filepath.Join(outputDir, "api-"+name+".md")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return err
	}
	fmt.Printf("📄 Wrote %s\n", path)
	return nil
}
