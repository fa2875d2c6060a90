package main

import (
	"fmt"
	"os"

	"github.com/paperdex/paperdex/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new paperdex repository",
	Long: `Initialize a new paperdex repository in the current directory.

Creates:
  .paperdex/
  ├── config.json     # Default config
  ├── papers.json     # Empty catalog
  └── pdfs/           # Download folder`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}
	if root := os.Getenv("PAPERDEX_ROOT"); root != "" {
		cwd = root
	}

	if config.IsRepository(cwd) {
		exitWithError(ExitError, "directory already contains a paperdex repository")
	}

	if err := config.Init(cwd); err != nil {
		exitWithError(ExitError, "initializing repository: %v", err)
	}
	if err := os.MkdirAll(config.PDFRoot(cwd), 0755); err != nil {
		exitWithError(ExitError, "creating pdf directory: %v", err)
	}
	// Create the empty catalog up front so the repo is immediately usable.
	mustOpenCatalog(cwd)

	if humanOutput {
		fmt.Printf("Initialized paperdex repository in %s\n", config.PaperdexPath(cwd))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.PaperdexPath(cwd)})
	}
	return nil
}
