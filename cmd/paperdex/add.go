package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/paperdex/paperdex/internal/config"
	"github.com/paperdex/paperdex/internal/download"
)

var (
	addPick   int
	addNoPDF  bool
	addForce  bool
)

func init() {
	addCmd.Flags().IntVar(&addPick, "pick", 1, "Which search result to add (1-based)")
	addCmd.Flags().BoolVar(&addNoPDF, "no-pdf", false, "Skip the PDF download")
	addCmd.Flags().BoolVar(&addForce, "force", false, "Add even when duplicates are found")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <query>",
	Short: "Fetch a paper from arXiv and add it to the catalog",
	Long: `Search arXiv, download the selected paper's PDF, and add the record.

The candidate is checked against the catalog first; duplicates abort the
add unless --force is given.

Examples:
  paperdex add "attention is all you need"
  paperdex add --pick 2 --no-pdf "diffusion models"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

// AddResponse reports the outcome of an add.
type AddResponse struct {
	Status     string   `json:"status"`
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	PDFPath    string   `json:"pdf_path,omitempty"`
	Duplicates []string `json:"duplicates,omitempty"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	results, err := remoteSearch(args[0])
	if err != nil {
		exitWithError(ExitError, "searching arXiv: %v", err)
	}
	if len(results) == 0 {
		exitWithError(ExitDataError, "no arXiv results for %q", args[0])
	}
	if addPick < 1 || addPick > len(results) {
		exitWithError(ExitError, "--pick %d out of range (1-%d)", addPick, len(results))
	}
	result := results[addPick-1]

	dupes := annotateDuplicates(cat, result)
	if len(dupes) > 0 && !addForce {
		if humanOutput {
			exitWithError(ExitDataError, "looks like a duplicate of %s (use --force to add anyway)",
				strings.Join(dupes, ", "))
		}
		outputJSON(AddResponse{Status: "duplicate", ID: result.ID, Title: result.Title, Duplicates: dupes})
		return nil
	}

	record := result.Paper()

	if !addNoPDF && result.PDFURL != "" {
		dest := filepath.Join(config.PDFRoot(root), pdfFileName(result.ID))
		if err := downloadPDF(result.PDFURL, dest); err != nil {
			exitWithError(ExitError, "downloading PDF: %v", err)
		}
		record.PDFPath = dest
	}

	if err := cat.Add(record); err != nil {
		exitWithError(ExitError, "adding record: %v", err)
	}

	if humanOutput {
		fmt.Printf("Added %s: %s\n", record.ID, record.Title)
		if record.PDFPath != "" {
			fmt.Printf("PDF: %s\n", record.PDFPath)
		}
	} else {
		outputJSON(AddResponse{Status: "added", ID: record.ID, Title: record.Title, PDFPath: record.PDFPath, Duplicates: dupes})
	}
	return nil
}

// pdfFileName derives a safe file name from a record id.
func pdfFileName(id string) string {
	name := strings.NewReplacer(":", "_", "/", "_").Replace(id)
	return name + ".pdf"
}

// downloadPDF fetches a PDF honoring global config limits.
func downloadPDF(url, dest string) error {
	gcfg, err := config.LoadGlobalConfig()
	if err != nil {
		return err
	}

	opts := download.Options{}
	if gcfg.DownloadTimeout > 0 {
		opts.Timeout = time.Duration(gcfg.DownloadTimeout) * time.Second
	}
	if gcfg.MaxPDFSizeMB > 0 {
		opts.MaxSize = int64(gcfg.MaxPDFSizeMB) * 1024 * 1024
	}

	return download.Download(context.Background(), url, dest, opts)
}
