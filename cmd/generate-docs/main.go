package main

import (
	"fmt"
	"log"
	"os"

	"fhehub/internal/config"
	"fhehub/internal/docgen"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "generate-docs",
	Short: "Extract annotated documentation from contracts and tests",
	Long: `Scans the configured test and contract directories for annotation
comment blocks (@title, @category, @chapter, @notice, @description) and
writes grouped markdown plus per-contract API references into the docs
directory. Directories that do not exist are simply skipped.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load("fhehub.yaml")
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("🔍 Scanning %s and %s...\n", cfg.Paths.Tests, cfg.Paths.Contracts)
		if err := docgen.Run(cfg.Paths.Contracts, cfg.Paths.Tests, cfg.Paths.Docs); err != nil {
			log.Fatalf("Documentation run failed: %v", err)
		}
		fmt.Printf("✅ Documentation written to %s\n", cfg.Paths.Docs)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
