package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fhehub/internal/catalog"
	"fhehub/internal/config"
	"fhehub/internal/scaffold"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "create-example",
	Short: "Scaffold FHEVM example projects from the built-in catalog",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every example in the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		scaffold.List(os.Stdout)
	},
}

var createCmd = &cobra.Command{
	Use:   "create <key> [outputDir]",
	Short: "Scaffold one example project into outputDir (default: current directory)",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		outputDir := "."
		if len(args) > 1 {
			outputDir = args[1]
		}

		cfg, err := config.Load("fhehub.yaml")
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("🚀 Scaffolding %s into %s...\n", key, outputDir)
		gen := scaffold.NewGenerator(cfg.Network.APIKeyEnv)
		if err := gen.Generate(key, outputDir); err != nil {
			if errors.Is(err, scaffold.ErrUnknownExample) {
				fmt.Fprintf(os.Stderr, "❌ %v\n", err)
				fmt.Fprintf(os.Stderr, "Valid keys: %s\n", strings.Join(catalog.ExampleKeys(), ", "))
				os.Exit(1)
			}
			log.Fatalf("Failed to scaffold example: %v", err)
		}

		fmt.Printf("🎉 Example ready in %s\n", filepath.Join(outputDir, scaffold.PascalName(key)))
	},
}
