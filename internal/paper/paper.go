// Package paper defines the core domain type for catalog entries.
package paper

import (
	"encoding/json"
	"strings"
)

// Paper represents one catalog entry: metadata for a single paper plus an
// optional path to its downloaded PDF. Identity is carried solely by ID.
type Paper struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Authors AuthorList `json:"authors"`
	Summary string     `json:"summary"`
	PDFPath string     `json:"pdf_path,omitempty"`
}

// Clone returns a deep copy of the paper.
func (p Paper) Clone() Paper {
	c := p
	if p.Authors != nil {
		c.Authors = make(AuthorList, len(p.Authors))
		copy(c.Authors, p.Authors)
	}
	return c
}

// AuthorList is an ordered list of author names.
//
// Catalog files written by earlier tools occasionally contain degenerate
// author entries: nested arrays, numbers, or null. Those records must still
// load and match, so unmarshaling flattens one level of nesting and coerces
// scalar elements to their JSON text instead of failing.
type AuthorList []string

// UnmarshalJSON accepts a JSON array whose elements are strings, nested
// arrays of strings (flattened), or other scalars (coerced).
func (a *AuthorList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// A bare string is treated as a single-author list.
		var s string
		if err2 := json.Unmarshal(data, &s); err2 == nil {
			*a = AuthorList{s}
			return nil
		}
		return err
	}

	out := make(AuthorList, 0, len(raw))
	for _, elem := range raw {
		out = append(out, coerceAuthors(elem)...)
	}
	*a = out
	return nil
}

// coerceAuthors converts a single array element into zero or more names.
// Null elements are dropped. The null check must come before the string
// unmarshal: decoding null into a string succeeds and leaves it empty.
func coerceAuthors(data json.RawMessage) []string {
	if isJSONNull(data) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return []string{s}
	}

	var nested []json.RawMessage
	if err := json.Unmarshal(data, &nested); err == nil {
		var out []string
		for _, elem := range nested {
			if isJSONNull(elem) {
				continue
			}
			var ns string
			if err := json.Unmarshal(elem, &ns); err == nil {
				out = append(out, ns)
			} else {
				out = append(out, string(elem))
			}
		}
		return out
	}

	return []string{string(data)}
}

func isJSONNull(data json.RawMessage) bool {
	return strings.TrimSpace(string(data)) == "null"
}

// Joined returns the authors as a single space-separated string, the form
// used for matching.
func (a AuthorList) Joined() string {
	return strings.Join(a, " ")
}

// Equal reports element-wise equality of two author lists.
func (a AuthorList) Equal(b AuthorList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
