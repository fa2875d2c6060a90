package main

import (
	"fmt"

	"github.com/paperdex/paperdex/internal/paper"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cataloged papers",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	papers := cat.All()

	if humanOutput {
		if len(papers) == 0 {
			fmt.Println("No papers in catalog")
			return nil
		}
		fmt.Printf("%d papers in catalog:\n\n", len(papers))
		printPapersHuman(papers)
	} else {
		if papers == nil {
			papers = []paper.Paper{}
		}
		outputJSON(papers)
	}
	return nil
}
