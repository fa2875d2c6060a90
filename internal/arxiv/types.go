package arxiv

import (
	"strings"

	"github.com/paperdex/paperdex/internal/paper"
)

// Result is one paper returned by an arXiv search. It carries the PDF link
// alongside the metadata; the catalog record gains a pdf_path only after a
// download.
type Result struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Summary string   `json:"summary"`
	PDFURL  string   `json:"pdf_url"`
}

// Paper converts the result into a catalog record without a PDF path.
func (r Result) Paper() paper.Paper {
	return paper.Paper{
		ID:      r.ID,
		Title:   r.Title,
		Authors: paper.AuthorList(r.Authors),
		Summary: r.Summary,
	}
}

// Atom feed structures for the arXiv API response.

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID      string       `xml:"id"`
	Title   string       `xml:"title"`
	Summary string       `xml:"summary"`
	Authors []atomAuthor `xml:"author"`
	Links   []atomLink   `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
}

// mapEntry converts an Atom entry to a Result. Returns false when the
// entry lacks the fields needed to form a usable record.
func mapEntry(e atomEntry) (Result, bool) {
	id := entryID(e.ID)
	title := strings.TrimSpace(e.Title)
	if id == "" || title == "" {
		return Result{}, false
	}

	authors := make([]string, 0, len(e.Authors))
	for _, a := range e.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			authors = append(authors, name)
		}
	}

	return Result{
		ID:      id,
		Title:   title,
		Authors: authors,
		Summary: strings.TrimSpace(e.Summary),
		PDFURL:  pdfLink(e),
	}, true
}

// entryID derives the canonical paper id from the Atom entry id URL,
// e.g. "http://arxiv.org/abs/2001.00001v2" -> "arxiv:2001.00001v2".
func entryID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if i := strings.Index(raw, "/abs/"); i >= 0 {
		return "arxiv:" + raw[i+len("/abs/"):]
	}
	return raw
}

// pdfLink returns the entry's application/pdf link, falling back to the
// abs URL rewritten to its PDF form.
func pdfLink(e atomEntry) string {
	for _, l := range e.Links {
		if l.Type == "application/pdf" && l.Href != "" {
			return l.Href
		}
	}
	if strings.Contains(e.ID, "/abs/") {
		return strings.Replace(e.ID, "/abs/", "/pdf/", 1) + ".pdf"
	}
	return ""
}
