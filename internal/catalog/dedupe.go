package catalog

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/paperdex/paperdex/internal/paper"
)

// SimilarityThreshold is the minimum summary similarity ratio for a fuzzy
// duplicate match.
const SimilarityThreshold = 0.8

// IsDuplicate reports whether the candidate exactly matches any stored
// record: same id, normalized-equal title, or element-wise identical author
// list. Author comparison is exact sequence equality, no normalization.
func (c *Catalog) IsDuplicate(cand paper.Paper) bool {
	if cand.ID != "" {
		for _, p := range c.papers {
			if p.ID == cand.ID {
				return true
			}
		}
	}

	if cand.Title != "" {
		normTitle := Normalize(cand.Title)
		for _, p := range c.papers {
			if Normalize(p.Title) == normTitle {
				return true
			}
		}
	}

	if len(cand.Authors) > 0 {
		for _, p := range c.papers {
			if p.Authors.Equal(cand.Authors) {
				return true
			}
		}
	}

	return false
}

// FindDuplicates returns every stored record that looks like a duplicate of
// the candidate under any of four predicates, checked in order per record
// with the first hit winning:
//
//   - exact id match;
//   - the normalized candidate title is a substring of the normalized
//     stored title (asymmetric: a short candidate matches a longer stored
//     title, not the reverse);
//   - any normalized candidate author is a substring of the normalized,
//     space-joined stored author list;
//   - the normalized summaries have similarity >= SimilarityThreshold.
//
// Each stored record appears at most once in the result.
func (c *Catalog) FindDuplicates(cand paper.Paper) []paper.Paper {
	normTitle := Normalize(cand.Title)
	normAuthors := make([]string, 0, len(cand.Authors))
	for _, a := range cand.Authors {
		if na := Normalize(a); na != "" {
			normAuthors = append(normAuthors, na)
		}
	}
	normSummary := Normalize(cand.Summary)

	var dupes []paper.Paper
record:
	for _, p := range c.papers {
		if cand.ID != "" && p.ID == cand.ID {
			dupes = append(dupes, p.Clone())
			continue
		}

		if normTitle != "" && strings.Contains(Normalize(p.Title), normTitle) {
			dupes = append(dupes, p.Clone())
			continue
		}

		if len(normAuthors) > 0 {
			stored := Normalize(p.Authors.Joined())
			for _, a := range normAuthors {
				if strings.Contains(stored, a) {
					dupes = append(dupes, p.Clone())
					continue record
				}
			}
		}

		if normSummary != "" && Similarity(normSummary, Normalize(p.Summary)) >= SimilarityThreshold {
			dupes = append(dupes, p.Clone())
		}
	}
	return dupes
}

// Similarity returns a sequence-similarity ratio in [0,1] for two strings:
// twice the total length of matching blocks divided by the combined length.
// Identical strings score 1, disjoint strings 0.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	m := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return m.Ratio()
}

// splitRunes splits a string into one-rune elements for the matcher.
func splitRunes(s string) []string {
	return strings.Split(s, "")
}
