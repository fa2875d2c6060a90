package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/paperdex/paperdex/internal/paper"
)

// Markers wrapped around highlighted spans.
const (
	markStart = "<mark>"
	markEnd   = "</mark>"
)

// span is a half-open rune range [Start, End) over raw text.
type span struct {
	Start, End int
}

// highlightPaper returns a copy of the record with every matched span in
// title, summary, and each author element wrapped in markers.
func highlightPaper(p paper.Paper, keywords []string, q Query) paper.Paper {
	out := p.Clone()
	out.Title = highlightText(p.Title, keywords, q)
	out.Summary = highlightText(p.Summary, keywords, q)
	for i, a := range out.Authors {
		out.Authors[i] = highlightText(a, keywords, q)
	}
	return out
}

// highlightText wraps all keyword matches in raw with marker pairs.
// Overlapping and adjacent matches merge into a single contiguous pair, so
// repeated or abutting hits never produce nested or duplicate markers.
func highlightText(raw string, keywords []string, q Query) string {
	if raw == "" {
		return raw
	}
	spans := findSpans(raw, keywords, q)
	if len(spans) == 0 {
		return raw
	}
	return applySpans(raw, mergeSpans(spans))
}

// findSpans locates every keyword match in raw and returns the spans as
// raw rune ranges.
//
// For normalized matching the match happens in normalized space: a
// per-character index map projects normalized positions back to the raw
// characters that produced them (a single raw character may normalize to
// zero, one, or several characters, e.g. full-width forms or ligatures).
// Regex keywords match the raw text directly.
func findSpans(raw string, keywords []string, q Query) []span {
	var spans []span
	var normalized string
	var indexMap []int
	rawLen := utf8.RuneCountInString(raw)

	for _, kw := range keywords {
		if kw == "" {
			continue
		}

		if q.Regex {
			re, err := compilePattern(kw)
			if err != nil {
				continue
			}
			for _, m := range re.FindAllStringIndex(raw, -1) {
				if m[0] == m[1] {
					continue
				}
				spans = append(spans, span{
					Start: utf8.RuneCountInString(raw[:m[0]]),
					End:   utf8.RuneCountInString(raw[:m[1]]),
				})
			}
			continue
		}

		nkw := Normalize(kw)
		if nkw == "" {
			continue
		}
		if indexMap == nil {
			normalized, indexMap = buildIndexMap(raw)
		}

		if q.Exact {
			if normalized == nkw {
				spans = append(spans, span{Start: 0, End: rawLen})
			}
			continue
		}

		kwLen := utf8.RuneCountInString(nkw)
		normRunes := strings.Split(normalized, "")
		for from := 0; ; {
			i := indexOfRunes(normRunes, nkw, from)
			if i < 0 {
				break
			}
			spans = append(spans, span{
				Start: indexMap[i],
				End:   indexMap[i+kwLen-1] + 1,
			})
			from = i + 1
		}
	}

	return spans
}

// buildIndexMap normalizes raw character by character and records, for each
// character of the normalized expansion, the index of the raw rune that
// produced it.
//
// Per-rune normalization cannot compose sequences that span runes: "e"
// followed by a combining acute composes to "é" under whole-string NFKC
// but stays two runes here. A keyword that matches only through such a
// composition finds no span and the text comes back unmarked, which keeps
// the raw-to-normalized projection unambiguous.
func buildIndexMap(raw string) (normalized string, indexMap []int) {
	var b strings.Builder
	for i, r := range []rune(raw) {
		n := Normalize(string(r))
		for range []rune(n) {
			indexMap = append(indexMap, i)
		}
		b.WriteString(n)
	}
	return b.String(), indexMap
}

// indexOfRunes finds needle within the rune sequence starting at rune
// offset from, returning the rune index of the match or -1.
func indexOfRunes(haystack []string, needle string, from int) int {
	if from >= len(haystack) {
		return -1
	}
	suffix := strings.Join(haystack[from:], "")
	byteIdx := strings.Index(suffix, needle)
	if byteIdx < 0 {
		return -1
	}
	return from + utf8.RuneCountInString(suffix[:byteIdx])
}

// mergeSpans sorts spans and merges any that overlap or touch.
func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// applySpans wraps each span of raw in marker pairs.
func applySpans(raw string, spans []span) string {
	runes := []rune(raw)
	var b strings.Builder
	prev := 0
	for _, s := range spans {
		if s.Start > len(runes) {
			break
		}
		end := s.End
		if end > len(runes) {
			end = len(runes)
		}
		b.WriteString(string(runes[prev:s.Start]))
		b.WriteString(markStart)
		b.WriteString(string(runes[s.Start:end]))
		b.WriteString(markEnd)
		prev = end
	}
	b.WriteString(string(runes[prev:]))
	return b.String()
}
