// Package catalog implements the local paper catalog: a JSON-backed record
// store with full-text search, duplicate detection, and access-count
// ranking.
//
// The catalog holds all records in memory and rewrites its backing files on
// every mutation. It is single-writer by design; matching and sorting are
// linear scans, which is adequate for catalogs in the low thousands of
// records.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paperdex/paperdex/internal/paper"
	"github.com/paperdex/paperdex/internal/pdf"
)

// AccessFileSuffix is appended to the catalog path to derive the sidecar
// file holding access counters.
const AccessFileSuffix = ".access.json"

// Catalog is a flat-file store of paper records plus a sidecar map of
// access counters. Not safe for concurrent use.
type Catalog struct {
	path       string
	accessPath string
	papers     []paper.Paper
	access     map[string]int

	// pdfText extracts text from a PDF for full-text search. Swappable in
	// tests; extraction failures degrade to an absent field.
	pdfText func(path string) (string, error)
}

// Open loads (or creates) a catalog at path. A missing file is created
// holding an empty array. A path that denotes a directory returns
// ErrPathIsDirectory; an unparseable file returns ErrCorrupt.
//
// The access-counter sidecar at <path>.access.json is loaded best-effort:
// counters are not load-critical, so any read or parse failure silently
// resets them to empty.
func Open(path string) (*Catalog, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPathIsDirectory, path)
	}

	c := &Catalog{
		path:       path,
		accessPath: path + AccessFileSuffix,
		access:     make(map[string]int),
		pdfText:    pdf.ExtractText,
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := c.save(); err != nil {
			return nil, fmt.Errorf("creating catalog file: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	if err := json.Unmarshal(data, &c.papers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	// A file holding JSON null unmarshals without error into a nil slice.
	// Only an actual array is a valid catalog; [] decodes non-nil.
	if c.papers == nil {
		return nil, fmt.Errorf("%w: not a record array", ErrCorrupt)
	}

	c.loadAccess()
	return c, nil
}

// Path returns the catalog file path.
func (c *Catalog) Path() string {
	return c.path
}

// loadAccess reads the sidecar counter file, tolerating any failure.
func (c *Catalog) loadAccess() {
	data, err := os.ReadFile(c.accessPath)
	if err != nil {
		return
	}
	var access map[string]int
	if err := json.Unmarshal(data, &access); err != nil || access == nil {
		return
	}
	c.access = access
}

// save rewrites the full record file. Non-ASCII text is written literally.
func (c *Catalog) save() error {
	records := c.papers
	if records == nil {
		records = []paper.Paper{}
	}
	return writeJSONFile(c.path, records)
}

// saveAccess rewrites the sidecar counter file.
func (c *Catalog) saveAccess() error {
	return writeJSONFile(c.accessPath, c.access)
}

// writeJSONFile writes v as JSON atomically via a temp file + rename in the
// target directory.
func writeJSONFile(path string, v any) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// indexOf returns the position of the record with the given id, or -1.
func (c *Catalog) indexOf(id string) int {
	for i, p := range c.papers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Add upserts a record by id: an existing id is replaced in place,
// preserving its position; a new id is appended. The change is persisted
// before returning.
func (c *Catalog) Add(p paper.Paper) error {
	if i := c.indexOf(p.ID); i >= 0 {
		c.papers[i] = p
	} else {
		c.papers = append(c.papers, p)
	}
	return c.save()
}

// All returns a defensive copy of every record in insertion order.
func (c *Catalog) All() []paper.Paper {
	out := make([]paper.Paper, len(c.papers))
	for i, p := range c.papers {
		out[i] = p.Clone()
	}
	return out
}

// Get returns the record with the given id, or ErrNotFound.
func (c *Catalog) Get(id string) (paper.Paper, error) {
	if i := c.indexOf(id); i >= 0 {
		return c.papers[i].Clone(), nil
	}
	return paper.Paper{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Update replaces the record with the given id wholesale. Returns
// ErrNotFound if the id is absent.
func (c *Catalog) Update(id string, p paper.Paper) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.papers[i] = p
	return c.save()
}

// Delete removes the record with the given id. Returns ErrNotFound if the
// id is absent. The record's access counter is deliberately left in place.
func (c *Catalog) Delete(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	c.papers = append(c.papers[:i], c.papers[i+1:]...)
	return c.save()
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.papers)
}
