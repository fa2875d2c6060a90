package catalog

import (
	"testing"

	"github.com/paperdex/paperdex/internal/paper"
)

// seedSearchCatalog builds a small, varied corpus for search tests.
func seedSearchCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := newTestCatalog(t)
	mustAdd(t, c,
		paper.Paper{ID: "arxiv:1", Title: "Attention Is All You Need", Authors: paper.AuthorList{"Vaswani"}, Summary: "transformer architecture"},
		paper.Paper{ID: "arxiv:2", Title: "Deep Learning", Authors: paper.AuthorList{"LeCun", "Bengio"}, Summary: "survey of deep learning"},
		paper.Paper{ID: "arxiv:3", Title: "ＡＩ Ａｇｅｎｔｓ", Authors: paper.AuthorList{"Tanaka"}, Summary: "autonomous agents"},
	)
	return c
}

func ids(papers []paper.Paper) []string {
	out := make([]string, len(papers))
	for i, p := range papers {
		out[i] = p.ID
	}
	return out
}

func assertIDs(t *testing.T, got []paper.Paper, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIDs, want)
		}
	}
}

func TestSearchSubstring(t *testing.T) {
	c := seedSearchCatalog(t)
	assertIDs(t, c.Search(NewQuery("attention")), "arxiv:1")
}

func TestSearchMatchesAuthorsAndSummary(t *testing.T) {
	c := seedSearchCatalog(t)
	assertIDs(t, c.Search(NewQuery("bengio")), "arxiv:2")
	assertIDs(t, c.Search(NewQuery("autonomous")), "arxiv:3")
}

func TestSearchNormalizedMatch(t *testing.T) {
	c := seedSearchCatalog(t)
	// ascii query finds the fullwidth title and vice versa
	assertIDs(t, c.Search(NewQuery("ai agents")), "arxiv:3")
	assertIDs(t, c.Search(NewQuery("ＤｅｅｐＬｅａｒｎｉｎｇ")), "arxiv:2")
}

func TestSearchEmptyKeywordsMatchAll(t *testing.T) {
	c := seedSearchCatalog(t)
	assertIDs(t, c.Search(NewQuery()), "arxiv:1", "arxiv:2", "arxiv:3")
}

func TestSearchModeAnd(t *testing.T) {
	c := seedSearchCatalog(t)
	q := NewQuery("deep", "survey")
	assertIDs(t, c.Search(q), "arxiv:2")

	q = NewQuery("deep", "transformer")
	if got := c.Search(q); len(got) != 0 {
		t.Errorf("AND across records should not match, got %v", ids(got))
	}
}

func TestSearchModeOr(t *testing.T) {
	c := seedSearchCatalog(t)
	q := NewQuery("transformer", "autonomous")
	q.Mode = ModeOr
	assertIDs(t, c.Search(q), "arxiv:1", "arxiv:3")
}

func TestSearchExact(t *testing.T) {
	c := seedSearchCatalog(t)
	q := NewQuery("deep learning")
	q.Exact = true
	assertIDs(t, c.Search(q), "arxiv:2")

	q = NewQuery("deep")
	q.Exact = true
	if got := c.Search(q); len(got) != 0 {
		t.Errorf("partial keyword should not match exactly, got %v", ids(got))
	}
}

func TestSearchRegex(t *testing.T) {
	c := seedSearchCatalog(t)
	q := NewQuery("atten.ion")
	q.Regex = true
	assertIDs(t, c.Search(q), "arxiv:1")

	// case-insensitive against raw text
	q = NewQuery("^deep")
	q.Regex = true
	assertIDs(t, c.Search(q), "arxiv:2")
}

func TestSearchRegexInvalidPattern(t *testing.T) {
	c := seedSearchCatalog(t)
	q := NewQuery("[unclosed")
	q.Regex = true
	if got := c.Search(q); len(got) != 0 {
		t.Errorf("invalid pattern should match nothing, got %v", ids(got))
	}
}

func TestSearchPagination(t *testing.T) {
	c := newTestCatalog(t)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		mustAdd(t, c, paper.Paper{ID: id, Title: "paper " + id})
	}

	tests := []struct {
		name          string
		limit, offset int
		want          int
	}{
		{"no limit", NoLimit, 0, 10},
		{"limit caps", 3, 0, 3},
		{"offset skips", NoLimit, 8, 2},
		{"limit past end", 5, 8, 2},
		{"offset past end", NoLimit, 20, 0},
		{"negative offset is zero", NoLimit, -7, 10},
		{"zero limit", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuery()
			q.Limit = tt.limit
			q.Offset = tt.offset
			if got := c.Search(q); len(got) != tt.want {
				t.Errorf("limit=%d offset=%d: got %d results, want %d", tt.limit, tt.offset, len(got), tt.want)
			}
		})
	}
}

func TestSearchOrderByScore(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c,
		paper.Paper{ID: "partial", Title: "graph networks and more", Summary: "long"},
		paper.Paper{ID: "exact", Title: "graph networks", Summary: "x"},
		paper.Paper{ID: "none", Title: "unrelated", Summary: "graph networks appear here"},
	)

	q := NewQuery("graph networks")
	q.OrderByScore = true
	got := c.Search(q)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	// whole-field match outranks containment
	if got[0].ID != "exact" {
		t.Errorf("first result = %s, want exact", got[0].ID)
	}
}

func TestSearchScoreTieBreaksByTitleLength(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c,
		paper.Paper{ID: "long", Title: "reinforcement learning from human feedback"},
		paper.Paper{ID: "short", Title: "reinforcement learning"},
	)

	q := NewQuery("reinforcement")
	q.OrderByScore = true
	got := c.Search(q)
	assertIDs(t, got, "short", "long")
}

func TestSearchCount(t *testing.T) {
	c := seedSearchCatalog(t)
	q := NewQuery()
	q.Limit = 2
	page, count := c.SearchCount(q)
	if count != 2 || len(page) != 2 {
		t.Errorf("SearchCount = %d results, count %d, want 2/2", len(page), count)
	}
}

func TestSearchIncludePDF(t *testing.T) {
	c := seedSearchCatalog(t)
	mustAdd(t, c, paper.Paper{ID: "arxiv:4", Title: "untitled", PDFPath: "/fake.pdf"})
	c.pdfText = func(path string) (string, error) {
		return "hidden keyword inside pdf", nil
	}

	q := NewQuery("hidden keyword")
	if got := c.Search(q); len(got) != 0 {
		t.Errorf("pdf text matched without IncludePDF: %v", ids(got))
	}

	q.IncludePDF = true
	assertIDs(t, c.Search(q), "arxiv:4")
}

func TestSearchScoreCountsPDFField(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c,
		paper.Paper{ID: "title-hit", Title: "quantum computing and its very long subtitle"},
		paper.Paper{ID: "pdf-hit", Title: "untitled note", PDFPath: "/fake.pdf"},
	)
	c.pdfText = func(path string) (string, error) {
		return "an introduction to quantum computing", nil
	}

	q := NewQuery("quantum computing")
	q.IncludePDF = true
	q.OrderByScore = true
	got := c.Search(q)

	// both records score one partial match, so the shorter title wins
	assertIDs(t, got, "pdf-hit", "title-hit")
}

func TestSearchIncludePDFExtractFailure(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c, paper.Paper{ID: "arxiv:1", Title: "readable title", PDFPath: "/fake.pdf"})
	c.pdfText = func(path string) (string, error) { return "", errTest }

	// extraction failure drops the pdf field, other fields still match
	q := NewQuery("readable")
	q.IncludePDF = true
	assertIDs(t, c.Search(q), "arxiv:1")
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "test error" }
