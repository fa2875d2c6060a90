package main

import (
	"fmt"

	"github.com/paperdex/paperdex/internal/catalog"
	"github.com/paperdex/paperdex/internal/paper"
	"github.com/spf13/cobra"
)

var (
	findOr        bool
	findExact     bool
	findRegex     bool
	findScore     bool
	findHighlight bool
	findPDF       bool
	findCount     bool
	findLimit     int
	findOffset    int
)

func init() {
	findCmd.Flags().BoolVar(&findOr, "or", false, "Match records containing any keyword instead of all")
	findCmd.Flags().BoolVar(&findExact, "exact", false, "Require a keyword to equal a whole field")
	findCmd.Flags().BoolVar(&findRegex, "regex", false, "Treat keywords as regular expressions")
	findCmd.Flags().BoolVar(&findScore, "score", false, "Order results by relevance")
	findCmd.Flags().BoolVar(&findHighlight, "highlight", false, "Mark matched spans in the output")
	findCmd.Flags().BoolVar(&findPDF, "pdf", false, "Also search extracted PDF text")
	findCmd.Flags().BoolVar(&findCount, "count", false, "Report the result count alongside the page")
	findCmd.Flags().IntVar(&findLimit, "limit", catalog.NoLimit, "Maximum results (negative = unlimited)")
	findCmd.Flags().IntVar(&findOffset, "offset", 0, "Results to skip")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find [keyword]...",
	Short: "Search the local catalog",
	Long: `Full-text search over cataloged titles, authors, and summaries.

Keywords are matched case-insensitively with unicode normalization, so
"ＡＩ" finds "ai". With no keywords every record matches.

Examples:
  paperdex find transformer attention
  paperdex find --or --score bert gpt
  paperdex find --regex 'agent(s)?'
  paperdex find --highlight --limit 5 "prompt"`,
	RunE: runFind,
}

// FindResponse is the paged search result with an optional count.
type FindResponse struct {
	Papers []paper.Paper `json:"papers"`
	Count  int           `json:"count"`
}

func runFind(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	q := catalog.NewQuery(args...)
	q.Exact = findExact
	q.Regex = findRegex
	q.OrderByScore = findScore
	q.Highlight = findHighlight
	q.IncludePDF = findPDF
	q.Limit = findLimit
	q.Offset = findOffset
	if findOr {
		q.Mode = catalog.ModeOr
	}

	page, count := cat.SearchCount(q)
	if page == nil {
		page = []paper.Paper{}
	}

	if humanOutput {
		if count == 0 {
			fmt.Println("No matches")
			return nil
		}
		fmt.Printf("%d matches:\n\n", count)
		printPapersHuman(page)
	} else if findCount {
		outputJSON(FindResponse{Papers: page, Count: count})
	} else {
		outputJSON(page)
	}
	return nil
}
