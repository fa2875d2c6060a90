package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/paperdex/paperdex/internal/catalog"
	"github.com/paperdex/paperdex/internal/export"
	"github.com/paperdex/paperdex/internal/paper"
	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [id]...",
	Short: "Export papers as BibTeX",
	Long: `Export catalog records as BibTeX @misc entries. With no ids the whole
catalog is exported.

Examples:
  paperdex export
  paperdex export arxiv:1706.03762 -o refs.bib`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	var papers []paper.Paper
	if len(args) == 0 {
		papers = cat.All()
	} else {
		for _, id := range args {
			p, err := cat.Get(id)
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					exitWithError(ExitDataError, "paper %q not found", id)
				}
				exitWithError(ExitError, "getting paper: %v", err)
			}
			papers = append(papers, p)
		}
	}

	bib := export.ToBibTeXList(papers)

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, []byte(bib), 0644); err != nil {
			exitWithError(ExitError, "writing %s: %v", exportOutput, err)
		}
		if humanOutput {
			fmt.Printf("Exported %d entries to %s\n", len(papers), exportOutput)
		} else {
			outputJSON(StatusResponse{Status: "exported", Path: exportOutput})
		}
		return nil
	}

	fmt.Print(bib)
	return nil
}
