package main

import (
	"fmt"
	"log"
	"os"

	"fhehub/internal/category"
	"fhehub/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "create-category",
	Short: "Materialize the category catalog into markdown files",
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
	rootCmd.AddCommand(createAllCmd)
}

func categoriesDir(args []string, idx int) string {
	if len(args) > idx {
		return args[idx]
	}
	cfg, err := config.Load("fhehub.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg.Paths.Categories
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every category in the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		category.List(os.Stdout)
	},
}

var createCmd = &cobra.Command{
	Use:   "create <key> [outputDir]",
	Short: "Write one category (default outputDir: ./docs/categories)",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		// An unknown key is reported by the organizer and the command still
		// exits 0; only filesystem failures are fatal here.
		org := category.NewOrganizer()
		if err := org.CreateStructure(args[0], categoriesDir(args, 1)); err != nil {
			log.Fatalf("Failed to write category: %v", err)
		}
	},
}

var createAllCmd = &cobra.Command{
	Use:   "create-all [outputDir]",
	Short: "Write all categories plus the aggregate index (default outputDir: ./docs/categories)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outputDir := categoriesDir(args, 0)
		org := category.NewOrganizer()
		if err := org.CreateAll(outputDir); err != nil {
			log.Fatalf("Failed to write categories: %v", err)
		}
		fmt.Printf("✅ Categories written to %s\n", outputDir)
	},
}
