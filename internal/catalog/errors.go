package catalog

import "errors"

// Errors returned by catalog operations.
var (
	// ErrPathIsDirectory indicates the catalog path points at a directory.
	ErrPathIsDirectory = errors.New("catalog path is a directory")

	// ErrCorrupt indicates the catalog file exists but does not parse as a
	// JSON array of records. Fatal at open time; the caller decides whether
	// to re-initialize or abort.
	ErrCorrupt = errors.New("catalog file is corrupt")

	// ErrNotFound indicates an update or delete target is absent.
	ErrNotFound = errors.New("paper not found")
)
