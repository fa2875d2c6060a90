package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/arxiv"
	"github.com/paperdex/paperdex/internal/catalog"
	"github.com/paperdex/paperdex/internal/config"
)

var (
	searchMax   int
	searchFrom  string
	searchTo    string
	searchField string
)

func init() {
	searchCmd.Flags().IntVar(&searchMax, "max", 0, "Maximum results (0 = configured default)")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "Earliest submission date (YYYYMMDD)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "Latest submission date (YYYYMMDD)")
	searchCmd.Flags().StringVar(&searchField, "field", "", "Restrict to a field: title, author, summary")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search arXiv for papers",
	Long: `Search arXiv and show candidate papers with duplicate annotations.

Examples:
  paperdex search "prompt engineering"
  paperdex search --field author "Shannon"
  paperdex search --from 20240101 --to 20241231 "agents"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

// SearchResultResponse is one remote search hit plus its local duplicate
// status.
type SearchResultResponse struct {
	arxiv.Result
	Duplicate bool `json:"duplicate"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	results, err := remoteSearch(args[0])
	if err != nil {
		if errors.Is(err, arxiv.ErrEmptyQuery) {
			exitWithError(ExitError, "query must be non-empty")
		}
		if arxiv.IsRateLimited(err) {
			exitWithError(ExitError, "arXiv rate limit exceeded, try again later")
		}
		exitWithError(ExitError, "searching arXiv: %v", err)
	}

	out := make([]SearchResultResponse, len(results))
	for i, r := range results {
		out[i] = SearchResultResponse{Result: r, Duplicate: cat.IsDuplicate(r.Paper())}
	}

	if humanOutput {
		if len(out) == 0 {
			fmt.Println("No results")
			return nil
		}
		for i, r := range out {
			marker := " "
			if r.Duplicate {
				marker = "*"
			}
			fmt.Printf("%2d.%s %-24s %s\n", i+1, marker, r.ID, truncateString(r.Title, SearchTitleMaxLen))
		}
		fmt.Println("\n* already in catalog")
	} else {
		outputJSON(out)
	}
	return nil
}

// remoteSearch runs an arXiv query with flags and config applied.
func remoteSearch(query string) ([]arxiv.Result, error) {
	gcfg, err := config.LoadGlobalConfig()
	if err != nil {
		return nil, err
	}

	var opts []arxiv.ClientOption
	if url := os.Getenv("PAPERDEX_ARXIV_URL"); url != "" {
		opts = append(opts, arxiv.WithBaseURL(url))
	} else if gcfg.ArxivBaseURL != "" {
		opts = append(opts, arxiv.WithBaseURL(gcfg.ArxivBaseURL))
	}
	if gcfg.DownloadTimeout > 0 {
		opts = append(opts, arxiv.WithTimeout(time.Duration(gcfg.DownloadTimeout)*time.Second))
	}
	client := arxiv.NewClient(opts...)

	max := searchMax
	if max <= 0 {
		max = gcfg.SearchLimit
	}

	return client.Search(context.Background(), query, arxiv.SearchOptions{
		MaxResults: max,
		StartDate:  searchFrom,
		EndDate:    searchTo,
		Field:      searchField,
	})
}

// annotateDuplicates is shared by search and add to warn about candidates
// already present.
func annotateDuplicates(cat *catalog.Catalog, r arxiv.Result) []string {
	dupes := cat.FindDuplicates(r.Paper())
	ids := make([]string, len(dupes))
	for i, d := range dupes {
		ids[i] = d.ID
	}
	return ids
}
