package catalog

import (
	"sort"
	"strings"

	"github.com/paperdex/paperdex/internal/paper"
)

// Order selects a ranking policy.
type Order string

const (
	// OrderPopular ranks by descending access count, ties broken by
	// ascending id so the order is deterministic.
	OrderPopular Order = "popular"

	// OrderNewest ranks by reverse insertion order (last added first).
	// Insertion order stands in for chronology: Add appends genuinely new
	// ids at the end, and an upsert keeps the original position.
	OrderNewest Order = "newest"
)

// RankQuery describes a ranking request.
type RankQuery struct {
	// Order is the ranking policy; empty defaults to OrderPopular.
	Order Order

	// Limit truncates the result when positive; zero or negative means
	// unlimited.
	Limit int

	// FilterKeyword keeps only records whose normalized title contains the
	// normalized keyword. Empty keeps everything.
	FilterKeyword string
}

// RecordAccess increments the access counter for id, creating it at zero
// first, and persists the counters. The id need not exist in the catalog.
func (c *Catalog) RecordAccess(id string) error {
	c.access[id]++
	return c.saveAccess()
}

// AccessCount returns the access counter for id, zero when unknown.
func (c *Catalog) AccessCount(id string) int {
	return c.access[id]
}

// ResetAccess sets the counter for id back to zero and persists.
func (c *Catalog) ResetAccess(id string) error {
	c.access[id] = 0
	return c.saveAccess()
}

// Ranking returns catalog records ordered by the requested policy.
//
// Records and counters may reference disjoint id sets: counters orphaned by
// a delete simply never surface, and records that were never accessed rank
// with count zero.
func (c *Catalog) Ranking(q RankQuery) []paper.Paper {
	filter := Normalize(q.FilterKeyword)

	var ranked []paper.Paper
	for _, p := range c.papers {
		if filter != "" && !strings.Contains(Normalize(p.Title), filter) {
			continue
		}
		ranked = append(ranked, p.Clone())
	}

	switch q.Order {
	case OrderNewest:
		for i, j := 0, len(ranked)-1; i < j; i, j = i+1, j-1 {
			ranked[i], ranked[j] = ranked[j], ranked[i]
		}
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			ci, cj := c.access[ranked[i].ID], c.access[ranked[j].ID]
			if ci != cj {
				return ci > cj
			}
			return ranked[i].ID < ranked[j].ID
		})
	}

	if q.Limit > 0 && q.Limit < len(ranked) {
		ranked = ranked[:q.Limit]
	}
	return ranked
}
