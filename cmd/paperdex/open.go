package main

import (
	"errors"
	"fmt"

	"github.com/paperdex/paperdex/internal/catalog"
	"github.com/paperdex/paperdex/internal/config"
	"github.com/paperdex/paperdex/internal/pdf"
	"github.com/spf13/cobra"
)

var openReader string

func init() {
	openCmd.Flags().StringVar(&openReader, "reader", "", "PDF reader to use (overrides config)")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a paper's PDF in a reader",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	p, err := cat.Get(args[0])
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			exitWithError(ExitDataError, "paper %q not found", args[0])
		}
		exitWithError(ExitError, "getting paper: %v", err)
	}
	if p.PDFPath == "" {
		exitWithError(ExitDataError, "paper %s has no PDF", p.ID)
	}

	reader := openReader
	if reader == "" {
		cfg, err := config.Load(root)
		if err != nil {
			exitWithError(ExitConfigError, "loading config: %v", err)
		}
		reader = cfg.PDFReader
	}

	if err := pdf.Open(p.PDFPath, reader); err != nil {
		exitWithError(ExitError, "opening PDF: %v", err)
	}

	// Opening a paper counts as a view.
	if err := cat.RecordAccess(p.ID); err != nil {
		exitWithError(ExitError, "recording access: %v", err)
	}

	if humanOutput {
		fmt.Printf("Opened %s\n", p.PDFPath)
	} else {
		outputJSON(StatusResponse{Status: "opened", ID: p.ID, Path: p.PDFPath})
	}
	return nil
}
