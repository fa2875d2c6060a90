package catalog

import (
	"testing"

	"github.com/paperdex/paperdex/internal/paper"
)

func TestIsDuplicate(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c, paper.Paper{
		ID:      "arxiv:1",
		Title:   "Attention Is All You Need",
		Authors: paper.AuthorList{"Vaswani", "Shazeer"},
	})

	tests := []struct {
		name string
		cand paper.Paper
		want bool
	}{
		{"same id", paper.Paper{ID: "arxiv:1"}, true},
		{"title differs only in case and spacing", paper.Paper{Title: "attention is  all you need"}, true},
		{"fullwidth title", paper.Paper{Title: "Ａｔｔｅｎｔｉｏｎ Ｉｓ Ａｌｌ Ｙｏｕ Ｎｅｅｄ"}, true},
		{"identical author list", paper.Paper{Authors: paper.AuthorList{"Vaswani", "Shazeer"}}, true},
		{"author subset is not exact", paper.Paper{Authors: paper.AuthorList{"Vaswani"}}, false},
		{"author case differs", paper.Paper{Authors: paper.AuthorList{"vaswani", "shazeer"}}, false},
		{"unrelated", paper.Paper{ID: "arxiv:9", Title: "Deep Learning"}, false},
		{"empty candidate", paper.Paper{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsDuplicate(tt.cand); got != tt.want {
				t.Errorf("IsDuplicate(%+v) = %v, want %v", tt.cand, got, tt.want)
			}
		})
	}
}

func TestFindDuplicatesByTitleContainment(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c, paper.Paper{ID: "arxiv:1", Title: "A Survey of Deep Learning Methods"})

	// shorter candidate title contained in the stored title matches
	dupes := c.FindDuplicates(paper.Paper{Title: "deep learning"})
	if len(dupes) != 1 || dupes[0].ID != "arxiv:1" {
		t.Fatalf("FindDuplicates = %v", ids(dupes))
	}

	// the reverse direction does not: containment is asymmetric
	c2 := newTestCatalog(t)
	mustAdd(t, c2, paper.Paper{ID: "arxiv:2", Title: "deep learning"})
	dupes = c2.FindDuplicates(paper.Paper{Title: "A Survey of Deep Learning Methods"})
	if len(dupes) != 0 {
		t.Errorf("longer candidate should not match shorter stored title, got %v", ids(dupes))
	}
}

func TestFindDuplicatesByAuthor(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c, paper.Paper{ID: "arxiv:1", Title: "Some Paper", Authors: paper.AuthorList{"Yoshua Bengio", "Yann LeCun"}})

	dupes := c.FindDuplicates(paper.Paper{Authors: paper.AuthorList{"BENGIO"}})
	if len(dupes) != 1 {
		t.Errorf("author substring should match case-insensitively, got %v", ids(dupes))
	}
}

func TestFindDuplicatesBySimilarSummary(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c,
		paper.Paper{ID: "near", Title: "X", Summary: "We study transformer models for machine translation tasks."},
		paper.Paper{ID: "far", Title: "Y", Summary: "Completely unrelated botany field notes."},
	)

	dupes := c.FindDuplicates(paper.Paper{
		Summary: "We study transformer models for machine translation task.",
	})
	if len(dupes) != 1 || dupes[0].ID != "near" {
		t.Errorf("FindDuplicates = %v, want [near]", ids(dupes))
	}
}

func TestFindDuplicatesEachRecordOnce(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c, paper.Paper{
		ID:      "arxiv:1",
		Title:   "Deep Learning",
		Authors: paper.AuthorList{"LeCun"},
		Summary: "the survey",
	})

	// candidate trips the id, title, and author predicates at once
	dupes := c.FindDuplicates(paper.Paper{
		ID:      "arxiv:1",
		Title:   "deep learning",
		Authors: paper.AuthorList{"lecun"},
		Summary: "the survey",
	})
	if len(dupes) != 1 {
		t.Errorf("record reported %d times, want once", len(dupes))
	}
}

func TestFindDuplicatesEmptyCandidate(t *testing.T) {
	c := newTestCatalog(t)
	mustAdd(t, c, paper.Paper{ID: "arxiv:1", Title: "T", Summary: "s"})

	if dupes := c.FindDuplicates(paper.Paper{}); len(dupes) != 0 {
		t.Errorf("empty candidate matched %v", ids(dupes))
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "abcdef", "abcdef", 1},
		{"both empty", "", "", 1},
		{"disjoint", "aaaa", "bbbb", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if got := Similarity("abcdefghij", "abcdefghix"); got < 0.8 {
		t.Errorf("nine of ten characters shared, ratio = %v", got)
	}
	if got := Similarity("short", "a very different long string"); got >= SimilarityThreshold {
		t.Errorf("unrelated strings above threshold: %v", got)
	}
}
