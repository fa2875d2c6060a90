// Package main provides the paperdex CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paperdex",
	Short: "Personal paper tracker backed by a flat-file catalog",
	Long: `paperdex queries arXiv, downloads PDFs, and keeps a local JSON catalog
with full-text search, duplicate detection, and popularity ranking.

All commands output JSON by default for easy scripting; pass --human
for readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
