package main

import (
	"fmt"

	"github.com/paperdex/paperdex/internal/catalog"
	"github.com/paperdex/paperdex/internal/paper"
	"github.com/spf13/cobra"
)

var (
	rankOrder  string
	rankLimit  int
	rankFilter string
)

func init() {
	rankCmd.Flags().StringVar(&rankOrder, "order", "popular", "Ranking order: popular or newest")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 0, "Maximum results (0 = unlimited)")
	rankCmd.Flags().StringVar(&rankFilter, "filter", "", "Keep only titles containing this keyword")
	rankCmd.AddCommand(rankResetCmd)
	rootCmd.AddCommand(rankCmd)
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank papers by access count or recency",
	Long: `Rank cataloged papers.

The popular order sorts by descending access count with ties broken by
id; the newest order lists papers most recently added first.

Examples:
  paperdex rank
  paperdex rank --order newest --limit 10
  paperdex rank --filter transformer`,
	RunE: runRank,
}

var rankResetCmd = &cobra.Command{
	Use:   "reset <id>",
	Short: "Reset the access counter for a paper",
	Args:  cobra.ExactArgs(1),
	RunE:  runRankReset,
}

// RankedPaper pairs a record with its access count.
type RankedPaper struct {
	paper.Paper
	Accesses int `json:"accesses"`
}

func runRank(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	order := catalog.Order(rankOrder)
	if order != catalog.OrderPopular && order != catalog.OrderNewest {
		exitWithError(ExitError, "unknown order %q (want popular or newest)", rankOrder)
	}

	ranked := cat.Ranking(catalog.RankQuery{
		Order:         order,
		Limit:         rankLimit,
		FilterKeyword: rankFilter,
	})

	out := make([]RankedPaper, len(ranked))
	for i, p := range ranked {
		out[i] = RankedPaper{Paper: p, Accesses: cat.AccessCount(p.ID)}
	}

	if humanOutput {
		if len(out) == 0 {
			fmt.Println("No papers to rank")
			return nil
		}
		for i, r := range out {
			fmt.Printf("%2d. [%3d] %-24s %s\n", i+1, r.Accesses, r.ID, truncateString(r.Title, ListTitleMaxLen))
		}
	} else {
		outputJSON(out)
	}
	return nil
}

func runRankReset(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	if err := cat.ResetAccess(args[0]); err != nil {
		exitWithError(ExitError, "resetting access counter: %v", err)
	}

	if humanOutput {
		fmt.Printf("Reset access counter for %s\n", args[0])
	} else {
		outputJSON(StatusResponse{Status: "reset", ID: args[0]})
	}
	return nil
}
