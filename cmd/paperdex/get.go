package main

import (
	"errors"
	"fmt"

	"github.com/paperdex/paperdex/internal/catalog"
	"github.com/spf13/cobra"
)

var getNoTrack bool

func init() {
	getCmd.Flags().BoolVar(&getNoTrack, "no-track", false, "Do not record an access for this view")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one paper by id",
	Long: `Show a single catalog record. Viewing a paper records an access,
which feeds the popularity ranking; pass --no-track to look without
counting.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	p, err := cat.Get(args[0])
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			exitWithError(ExitDataError, "paper %q not found", args[0])
		}
		exitWithError(ExitError, "getting paper: %v", err)
	}

	if !getNoTrack {
		if err := cat.RecordAccess(p.ID); err != nil {
			exitWithError(ExitError, "recording access: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("%s\n%s\n\n", p.ID, p.Title)
		if len(p.Authors) > 0 {
			fmt.Printf("Authors: %s\n", formatAuthorsShort(p.Authors, 10))
		}
		if p.Summary != "" {
			fmt.Printf("\n%s\n", p.Summary)
		}
		if p.PDFPath != "" {
			fmt.Printf("\nPDF: %s\n", p.PDFPath)
		}
		fmt.Printf("\nAccesses: %d\n", cat.AccessCount(p.ID))
	} else {
		outputJSON(p)
	}
	return nil
}
