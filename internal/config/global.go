package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in
// ~/.config/paperdex/config.yml.
type GlobalConfig struct {
	ArxivBaseURL    string `yaml:"arxiv_base_url,omitempty"`
	SearchLimit     int    `yaml:"search_limit,omitempty"`      // Default max results for remote search
	DownloadTimeout int    `yaml:"download_timeout,omitempty"`  // Seconds
	MaxPDFSizeMB    int    `yaml:"max_pdf_size_mb,omitempty"`   // Download size cap
	DefaultPDFRoot  string `yaml:"default_pdf_root,omitempty"`  // Fallback PDF folder outside repos
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "paperdex"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/paperdex/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file. Returns an empty
// config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.DefaultPDFRoot != "" {
		cfg.DefaultPDFRoot = ExpandTilde(cfg.DefaultPDFRoot)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config. Useful for
// testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}
