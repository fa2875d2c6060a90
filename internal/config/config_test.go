package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestInitAndLoad(t *testing.T) {
	root := t.TempDir()
	if err := Init(root); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if !IsRepository(root) {
		t.Error("IsRepository = false after Init")
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.PDFReader != "" {
		t.Errorf("fresh config PDFReader = %q", cfg.PDFReader)
	}
}

func TestInitIdempotent(t *testing.T) {
	root := t.TempDir()
	if err := Init(root); err != nil {
		t.Fatal(err)
	}
	if err := Save(root, &Config{PDFReader: "zathura"}); err != nil {
		t.Fatal(err)
	}

	// a second Init must not clobber the existing config
	if err := Init(root); err != nil {
		t.Fatalf("second Init error: %v", err)
	}
	cfg, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PDFReader != "zathura" {
		t.Errorf("PDFReader after re-Init = %q, want zathura", cfg.PDFReader)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load of missing config error: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("missing config loaded as %+v, want empty", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	root := t.TempDir()
	if err := Init(root); err != nil {
		t.Fatal(err)
	}

	want := Config{PDFRoot: "/papers", PDFReader: "skim", CatalogFile: "custom.json"}
	if err := Save(root, &want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load(root)
	if err != nil {
		t.Fatal(err)
	}
	if *got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestFindRepositoryWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := Init(root); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRepository(nested)
	if err != nil {
		t.Fatalf("FindRepository error: %v", err)
	}
	// resolve symlinks so macOS /var vs /private/var temp paths compare equal
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("FindRepository = %q, want %q", got, root)
	}
}

func TestFindRepositoryNotFound(t *testing.T) {
	_, err := FindRepository(t.TempDir())
	if !errors.Is(err, ErrNoRepository) {
		t.Errorf("error = %v, want ErrNoRepository", err)
	}
}

func TestCatalogPathOverride(t *testing.T) {
	root := t.TempDir()
	if err := Init(root); err != nil {
		t.Fatal(err)
	}

	if got := CatalogPath(root); got != filepath.Join(root, PaperdexDir, CatalogFileName) {
		t.Errorf("default CatalogPath = %q", got)
	}

	if err := Save(root, &Config{CatalogFile: "elsewhere.json"}); err != nil {
		t.Fatal(err)
	}
	if got := CatalogPath(root); got != filepath.Join(root, "elsewhere.json") {
		t.Errorf("relative override CatalogPath = %q", got)
	}

	abs := filepath.Join(t.TempDir(), "abs.json")
	if err := Save(root, &Config{CatalogFile: abs}); err != nil {
		t.Fatal(err)
	}
	if got := CatalogPath(root); got != abs {
		t.Errorf("absolute override CatalogPath = %q, want %q", got, abs)
	}
}

func TestPDFRootOverride(t *testing.T) {
	root := t.TempDir()
	if err := Init(root); err != nil {
		t.Fatal(err)
	}

	if got := PDFRoot(root); got != filepath.Join(root, PaperdexDir, PDFDirName) {
		t.Errorf("default PDFRoot = %q", got)
	}

	if err := Save(root, &Config{PDFRoot: "/somewhere/else"}); err != nil {
		t.Fatal(err)
	}
	if got := PDFRoot(root); got != "/somewhere/else" {
		t.Errorf("override PDFRoot = %q", got)
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandTilde("~/papers"); got != filepath.Join(home, "papers") {
		t.Errorf("ExpandTilde(~/papers) = %q", got)
	}
	if got := ExpandTilde("~"); got != home {
		t.Errorf("ExpandTilde(~) = %q", got)
	}
	if got := ExpandTilde("/absolute/path"); got != "/absolute/path" {
		t.Errorf("ExpandTilde(/absolute/path) = %q", got)
	}
}
