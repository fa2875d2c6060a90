package main

import (
	"fmt"
	"slices"

	"github.com/paperdex/paperdex/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change repository configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one config value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one config value",
	Long: `Set a repository config value.

Keys:
  pdf_root      Folder for downloaded PDFs
  pdf_reader    PDF reader: system, skim, preview, zathura, evince, okular
  catalog_file  Catalog file path, relative to the repo root`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	if humanOutput {
		fmt.Printf("pdf_root:     %s\n", config.PDFRoot(root))
		fmt.Printf("pdf_reader:   %s\n", orDefault(cfg.PDFReader, "system"))
		fmt.Printf("catalog_file: %s\n", config.CatalogPath(root))
	} else {
		outputJSON(cfg)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	var value string
	switch args[0] {
	case "pdf_root":
		value = cfg.PDFRoot
	case "pdf_reader":
		value = cfg.PDFReader
	case "catalog_file":
		value = cfg.CatalogFile
	default:
		exitWithError(ExitError, "unknown config key %q", args[0])
	}

	fmt.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "pdf_root":
		cfg.PDFRoot = value
	case "pdf_reader":
		if !slices.Contains(config.ValidReaders, value) {
			exitWithError(ExitError, "invalid reader %q (valid: %v)", value, config.ValidReaders)
		}
		cfg.PDFReader = value
	case "catalog_file":
		cfg.CatalogFile = value
	default:
		exitWithError(ExitError, "unknown config key %q", key)
	}

	if err := config.Save(root, cfg); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Set %s = %s\n", key, value)
	} else {
		outputJSON(StatusResponse{Status: "set", Path: config.ConfigPath(root)})
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
