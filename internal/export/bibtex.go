// Package export converts catalog records to citation formats.
package export

import (
	"fmt"
	"strings"

	"github.com/paperdex/paperdex/internal/paper"
)

// ToBibTeX converts a catalog record to a BibTeX @misc entry. Catalog
// records carry no venue or year, so @misc with an eprint field is the
// honest entry type for arXiv-sourced papers.
func ToBibTeX(p paper.Paper) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@misc{%s,\n", citeKey(p.ID)))

	if len(p.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", strings.Join(p.Authors, " and ")))
	}
	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(p.Title)))
	if eprint := strings.TrimPrefix(p.ID, "arxiv:"); eprint != p.ID {
		b.WriteString(fmt.Sprintf("  eprint = {%s},\n", eprint))
		b.WriteString("  archivePrefix = {arXiv},\n")
	}
	if p.Summary != "" {
		b.WriteString(fmt.Sprintf("  abstract = {%s},\n", escapeLatex(p.Summary)))
	}
	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts multiple records to BibTeX.
func ToBibTeXList(papers []paper.Paper) string {
	var entries []string
	for _, p := range papers {
		entries = append(entries, ToBibTeX(p))
	}
	return strings.Join(entries, "\n")
}

// citeKey derives a BibTeX-safe citation key from a record id.
func citeKey(id string) string {
	key := strings.NewReplacer(":", "-", "/", "-", " ", "").Replace(id)
	if key == "" {
		key = "unknown"
	}
	return key
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
