// Package config handles repository and global configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents repository configuration stored in .paperdex/config.json.
type Config struct {
	PDFRoot     string `json:"pdf_root,omitempty"`     // Absolute path to the PDF folder
	PDFReader   string `json:"pdf_reader,omitempty"`   // Reader preference: system, skim, zathura, etc.
	CatalogFile string `json:"catalog_file,omitempty"` // Catalog file path, relative to the repo root
}

const (
	// PaperdexDir is the repository marker directory.
	PaperdexDir = ".paperdex"
	// ConfigFile is the repo config file name.
	ConfigFile = "config.json"
	// CatalogFileName is the default catalog file name.
	CatalogFileName = "papers.json"
	// PDFDirName is the default PDF folder name.
	PDFDirName = "pdfs"
)

// ValidReaders lists the supported PDF reader values.
var ValidReaders = []string{"system", "skim", "preview", "zathura", "evince", "okular"}

// ErrNoRepository is returned when no .paperdex directory is found.
var ErrNoRepository = errors.New("no paperdex repository found")

// PaperdexPath returns the path to the .paperdex directory from a root.
func PaperdexPath(root string) string {
	return filepath.Join(root, PaperdexDir)
}

// ConfigPath returns the path to config.json from a root.
func ConfigPath(root string) string {
	return filepath.Join(root, PaperdexDir, ConfigFile)
}

// CatalogPath returns the catalog file path for a repository, honoring a
// configured override.
func CatalogPath(root string) string {
	cfg, err := Load(root)
	if err == nil && cfg.CatalogFile != "" {
		if filepath.IsAbs(cfg.CatalogFile) {
			return cfg.CatalogFile
		}
		return filepath.Join(root, cfg.CatalogFile)
	}
	return filepath.Join(root, PaperdexDir, CatalogFileName)
}

// PDFRoot returns the PDF folder for a repository, honoring a configured
// override.
func PDFRoot(root string) string {
	cfg, err := Load(root)
	if err == nil && cfg.PDFRoot != "" {
		return ExpandTilde(cfg.PDFRoot)
	}
	return filepath.Join(root, PaperdexDir, PDFDirName)
}

// IsRepository checks whether path contains a paperdex repository.
func IsRepository(root string) bool {
	info, err := os.Stat(PaperdexPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from start to locate a paperdex repository and
// returns its root, or ErrNoRepository.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNoRepository
		}
		abs = parent
	}
}

// Init creates the .paperdex directory and an empty config file.
func Init(root string) error {
	if err := os.MkdirAll(PaperdexPath(root), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", PaperdexDir, err)
	}
	if _, err := os.Stat(ConfigPath(root)); err == nil {
		return nil // Already initialized
	}
	return Save(root, &Config{})
}

// Load reads the repo config. A missing file yields an empty config.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the repo config.
func Save(root string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(ConfigPath(root), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
