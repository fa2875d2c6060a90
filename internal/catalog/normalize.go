package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for comparison: NFKC compatibility folding
// (full-width Latin, ideographic spaces, and ligatures collapse to their
// standard forms), lower-casing, and removal of all whitespace.
//
// Every equality and containment check in the catalog goes through this
// function. The one exception is regex search, which runs case-insensitively
// over raw text: normalizing would corrupt user-supplied patterns.
//
// The result is a transient comparison key and is never stored.
func Normalize(s string) string {
	s = strings.ToLower(norm.NFKC.String(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
