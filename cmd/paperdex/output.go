package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/paperdex/paperdex/internal/catalog"
	"github.com/paperdex/paperdex/internal/config"
	"github.com/paperdex/paperdex/internal/paper"
)

// Title truncation lengths by context.
const (
	ListTitleMaxLen   = 50 // list command output
	SearchTitleMaxLen = 70 // search result summaries
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	ID     string `json:"id,omitempty"`
}

// mustFindRepository locates the repository root or exits.
func mustFindRepository() string {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}
	if root := os.Getenv("PAPERDEX_ROOT"); root != "" {
		cwd = root
	}

	root, err := config.FindRepository(cwd)
	if err != nil {
		exitWithError(ExitConfigError, "no paperdex repository found (run 'paperdex init')")
	}
	return root
}

// mustOpenCatalog opens the repository catalog or exits.
func mustOpenCatalog(root string) *catalog.Catalog {
	cat, err := catalog.Open(config.CatalogPath(root))
	if err != nil {
		if errors.Is(err, catalog.ErrCorrupt) || errors.Is(err, catalog.ErrPathIsDirectory) {
			exitWithError(ExitDataError, "opening catalog: %v", err)
		}
		exitWithError(ExitError, "opening catalog: %v", err)
	}
	return cat
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatAuthorsShort formats authors with "et al." past maxCount.
func formatAuthorsShort(authors paper.AuthorList, maxCount int) string {
	if len(authors) == 0 {
		return ""
	}
	var names []string
	for i, a := range authors {
		if i >= maxCount {
			names = append(names, "et al.")
			break
		}
		names = append(names, a)
	}
	return strings.Join(names, ", ")
}

// printPapersHuman prints records as a short human-readable listing.
func printPapersHuman(papers []paper.Paper) {
	for _, p := range papers {
		fmt.Printf("  %-24s %s\n", p.ID, truncateString(p.Title, ListTitleMaxLen))
		if len(p.Authors) > 0 {
			fmt.Printf("  %-24s %s\n", "", formatAuthorsShort(p.Authors, 3))
		}
	}
}
