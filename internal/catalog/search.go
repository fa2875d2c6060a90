package catalog

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/paperdex/paperdex/internal/paper"
)

// Mode selects how multiple keywords combine.
type Mode int

const (
	// ModeAnd requires every keyword to match at least one field.
	ModeAnd Mode = iota
	// ModeOr requires at least one keyword to match at least one field.
	ModeOr
)

// NoLimit disables the result cap. Any negative limit behaves the same;
// a limit of zero is honored and yields an empty page.
const NoLimit = -1

// Query describes a full-text search over the catalog.
//
// The search surface is defensive by design: empty keywords match every
// record, invalid regex patterns match nothing, and out-of-range pagination
// values fall back to their unset behavior. A Query never causes Search to
// fail.
type Query struct {
	// Keywords to match. An empty list behaves as a single empty keyword,
	// which matches every record.
	Keywords []string

	// Exact requires a keyword to equal a whole field after normalization
	// instead of being contained in it.
	Exact bool

	// Regex treats each keyword as a pattern, matched case-insensitively
	// against raw (non-normalized) field text.
	Regex bool

	// Mode combines multiple keywords; ModeAnd is the default.
	Mode Mode

	// OrderByScore sorts results by relevance: more exact field matches
	// first, then more partial matches, then shorter titles. The sort is
	// stable.
	OrderByScore bool

	// Highlight wraps matched spans in the returned records' raw text with
	// <mark> markers.
	Highlight bool

	// IncludePDF adds extracted PDF text as a match field for records with
	// a pdf_path. Extraction failures silently drop the field.
	IncludePDF bool

	// Limit caps the number of results after filtering and sorting.
	// Negative means no cap; zero yields an empty page.
	Limit int

	// Offset skips results after filtering and sorting. Negative is
	// treated as zero.
	Offset int
}

// NewQuery returns a Query over the given keywords with no result cap.
func NewQuery(keywords ...string) Query {
	return Query{Keywords: keywords, Limit: NoLimit}
}

// Search runs a full-text query over title, authors, and summary (and PDF
// text when requested) and returns the matching page in insertion order,
// or score order when requested.
func (c *Catalog) Search(q Query) []paper.Paper {
	keywords := q.Keywords
	if len(keywords) == 0 {
		keywords = []string{""}
	}

	var matched []paper.Paper
	for _, p := range c.papers {
		fields := c.matchFields(p, q.IncludePDF)
		if matchRecord(fields, keywords, q) {
			matched = append(matched, p.Clone())
		}
	}

	if q.OrderByScore {
		c.sortByScore(matched, keywords, q)
	}

	matched = paginate(matched, q.Limit, q.Offset)

	if q.Highlight && anyKeyword(keywords) {
		for i := range matched {
			matched[i] = highlightPaper(matched[i], keywords, q)
		}
	}

	return matched
}

// SearchCount runs Search and also returns the number of results in the
// returned page (after pagination, not the pre-pagination total).
func (c *Catalog) SearchCount(q Query) ([]paper.Paper, int) {
	page := c.Search(q)
	return page, len(page)
}

// matchFields returns the raw text fields a record is matched against.
func (c *Catalog) matchFields(p paper.Paper, includePDF bool) []string {
	fields := []string{p.Title, p.Authors.Joined(), p.Summary}
	if includePDF && p.PDFPath != "" && c.pdfText != nil {
		if text, err := c.pdfText(p.PDFPath); err == nil && text != "" {
			fields = append(fields, text)
		}
	}
	return fields
}

// matchRecord combines per-keyword results under the query mode, short-
// circuiting on the first decisive keyword.
func matchRecord(fields []string, keywords []string, q Query) bool {
	for _, kw := range keywords {
		hit := matchKeyword(fields, kw, q)
		if q.Mode == ModeOr {
			if hit {
				return true
			}
		} else if !hit {
			return false
		}
	}
	return q.Mode == ModeAnd
}

// matchKeyword reports whether a single keyword matches any field.
func matchKeyword(fields []string, kw string, q Query) bool {
	if q.Regex {
		re, err := compilePattern(kw)
		if err != nil {
			return false
		}
		for _, f := range fields {
			if re.MatchString(f) {
				return true
			}
		}
		return false
	}

	nkw := Normalize(kw)
	for _, f := range fields {
		nf := Normalize(f)
		if q.Exact {
			if nf == nkw {
				return true
			}
		} else if strings.Contains(nf, nkw) {
			return true
		}
	}
	return false
}

// compilePattern compiles a user-supplied pattern case-insensitively.
func compilePattern(kw string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + kw)
}

// sortByScore orders records by (exact field matches desc, partial field
// matches desc, title length asc), stably.
func (c *Catalog) sortByScore(papers []paper.Paper, keywords []string, q Query) {
	type scored struct {
		p                        paper.Paper
		exact, partial, titleLen int
	}
	rows := make([]scored, len(papers))
	for i, p := range papers {
		exact, partial := c.scoreRecord(p, keywords, q)
		rows[i] = scored{p, exact, partial, utf8.RuneCountInString(p.Title)}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].exact != rows[j].exact {
			return rows[i].exact > rows[j].exact
		}
		if rows[i].partial != rows[j].partial {
			return rows[i].partial > rows[j].partial
		}
		return rows[i].titleLen < rows[j].titleLen
	})
	for i := range rows {
		papers[i] = rows[i].p
	}
}

// scoreRecord counts exact and partial field matches across all keywords,
// over the same field set matching uses, so a record found only through
// its PDF text still earns partial credit. Regex hits count as partial
// matches; exact is reserved for whole-field normalized equality.
func (c *Catalog) scoreRecord(p paper.Paper, keywords []string, q Query) (exact, partial int) {
	fields := c.matchFields(p, q.IncludePDF)
	for _, kw := range keywords {
		if q.Regex {
			re, err := compilePattern(kw)
			if err != nil {
				continue
			}
			for _, f := range fields {
				if re.MatchString(f) {
					partial++
				}
			}
			continue
		}
		nkw := Normalize(kw)
		for _, f := range fields {
			nf := Normalize(f)
			if nf == nkw {
				exact++
			} else if nkw != "" && strings.Contains(nf, nkw) {
				partial++
			}
		}
	}
	return exact, partial
}

// paginate applies offset then limit. Negative offset means start at the
// beginning; negative limit means no cap.
func paginate(papers []paper.Paper, limit, offset int) []paper.Paper {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(papers) {
		return nil
	}
	papers = papers[offset:]
	if limit >= 0 && limit < len(papers) {
		papers = papers[:limit]
	}
	return papers
}

// anyKeyword reports whether at least one keyword is non-empty.
func anyKeyword(keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" {
			return true
		}
	}
	return false
}
