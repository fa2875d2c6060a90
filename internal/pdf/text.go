// Package pdf provides best-effort text extraction from downloaded papers.
package pdf

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxTextPages caps how many pages are extracted for full-text search.
// Searchable content (title, abstract, body) front-loads papers, and
// unbounded extraction makes linear-scan search too slow on large PDFs.
const MaxTextPages = 20

// ExtractText extracts plain text from the first pages of a PDF. Pages
// that fail to extract are skipped; only failing to open the file at all
// is an error.
func ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	maxPages := r.NumPage()
	if maxPages > MaxTextPages {
		maxPages = MaxTextPages
	}

	var b strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}
