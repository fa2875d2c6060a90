package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/paperdex/paperdex/internal/catalog"
	"github.com/spf13/cobra"
)

var deleteKeepPDF bool

func init() {
	deleteCmd.Flags().BoolVar(&deleteKeepPDF, "keep-pdf", false, "Leave the downloaded PDF on disk")
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a paper from the catalog",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	p, err := cat.Get(args[0])
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			exitWithError(ExitDataError, "paper %q not found", args[0])
		}
		exitWithError(ExitError, "getting paper: %v", err)
	}

	if err := cat.Delete(p.ID); err != nil {
		exitWithError(ExitError, "deleting paper: %v", err)
	}
	if !deleteKeepPDF && p.PDFPath != "" {
		if err := os.Remove(p.PDFPath); err != nil && !os.IsNotExist(err) {
			exitWithError(ExitError, "removing PDF: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("Deleted %s: %s\n", p.ID, p.Title)
	} else {
		outputJSON(StatusResponse{Status: "deleted", ID: p.ID})
	}
	return nil
}
