// Package docgen derives grouped markdown documentation from annotation
// comments embedded in contract and test sources. The extraction is a
// deliberate line/regex heuristic, not a structural parser: a comment block
// that is not immediately followed by a declaration produces no output.
package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	testFileSuffix     = ".test.ts"
	contractFileSuffix = ".sol"
)

// Run scans testDir and contractsDir for annotated sources and writes the
// grouped markdown tree plus one API reference per contract into outputDir.
// A missing input directory means there is nothing to process; a read failure
// on an individual file aborts the whole run.
func Run(contractsDir, testDir, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	var records []Record

	testEntries, err := os.ReadDir(testDir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, entry := range testEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), testFileSuffix) {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(testDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read test file %s: %w", entry.Name(), err)
		}
		records = append(records, ExtractFromTest(string(raw))...)
	}

	contractEntries, err := os.ReadDir(contractsDir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, entry := range contractEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), contractFileSuffix) {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(contractsDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read contract %s: %w", entry.Name(), err)
		}
		text := string(raw)
		records = append(records, ExtractFromContract(text)...)
		if err := WriteAPIReference(text, outputDir); err != nil {
			return err
		}
	}

	if len(records) == 0 {
		fmt.Println("⚠️  No annotated blocks found, skipping markdown tree.")
		return nil
	}
	return WriteMarkdownTree(records, outputDir)
}
