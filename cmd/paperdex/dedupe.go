package main

import (
	"fmt"

	"github.com/paperdex/paperdex/internal/paper"
	"github.com/spf13/cobra"
)

var (
	dedupeID      string
	dedupeTitle   string
	dedupeAuthor  []string
	dedupeSummary string
)

func init() {
	dedupeCmd.Flags().StringVar(&dedupeID, "id", "", "Candidate id")
	dedupeCmd.Flags().StringVar(&dedupeTitle, "title", "", "Candidate title")
	dedupeCmd.Flags().StringArrayVar(&dedupeAuthor, "author", nil, "Candidate author (repeatable)")
	dedupeCmd.Flags().StringVar(&dedupeSummary, "summary", "", "Candidate summary")
	rootCmd.AddCommand(dedupeCmd)
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Find catalog records resembling a candidate paper",
	Long: `Probe the catalog with a candidate paper described by flags and list
every stored record that looks like a duplicate: same id, overlapping
title or author text, or a near-identical summary.

Examples:
  paperdex dedupe --title "Attention Is All You Need"
  paperdex dedupe --author "Vaswani" --summary "..."`,
	RunE: runDedupe,
}

func runDedupe(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cat := mustOpenCatalog(root)

	cand := paper.Paper{
		ID:      dedupeID,
		Title:   dedupeTitle,
		Authors: dedupeAuthor,
		Summary: dedupeSummary,
	}
	if cand.ID == "" && cand.Title == "" && len(cand.Authors) == 0 && cand.Summary == "" {
		exitWithError(ExitError, "candidate is empty, give at least one of --id, --title, --author, --summary")
	}

	dupes := cat.FindDuplicates(cand)
	if dupes == nil {
		dupes = []paper.Paper{}
	}

	if humanOutput {
		if len(dupes) == 0 {
			fmt.Println("No duplicates found")
			return nil
		}
		fmt.Printf("%d possible duplicates:\n\n", len(dupes))
		printPapersHuman(dupes)
	} else {
		outputJSON(dupes)
	}
	return nil
}
