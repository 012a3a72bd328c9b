package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/codescout/internal/domain"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Executables.HostingCLI != "gh" || cfg.Executables.RegistryCLI != "npm" {
		t.Fatalf("executables = %+v", cfg.Executables)
	}
	if cfg.Cache.TTLSecondsByCategory[domain.CategoryCodeSearch] != domain.DefaultTTLCodeSearch {
		t.Fatalf("code search TTL = %d", cfg.Cache.TTLSecondsByCategory[domain.CategoryCodeSearch])
	}
	if len(cfg.Branches.Candidates) == 0 {
		t.Fatal("branch candidates missing")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := `config_format_version: "1"
executables:
  hosting_cli: /usr/local/bin/gh
branches:
  candidates: ["main", "stable"]
`
	if err := os.WriteFile(path, []byte(partial), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Executables.HostingCLI != "/usr/local/bin/gh" {
		t.Fatalf("hosting cli = %q", cfg.Executables.HostingCLI)
	}
	if cfg.Executables.RegistryCLI != "npm" {
		t.Fatalf("registry cli not hydrated: %q", cfg.Executables.RegistryCLI)
	}
	if cfg.Executables.TimeoutSeconds != 30 {
		t.Fatalf("timeout not hydrated: %d", cfg.Executables.TimeoutSeconds)
	}
	if got := cfg.Branches.Candidates; len(got) != 2 || got[0] != "main" || got[1] != "stable" {
		t.Fatalf("candidates overridden: %v", got)
	}
	if cfg.Cache.MaxEntries == 0 || cfg.Cache.DefaultTTLSeconds == 0 {
		t.Fatalf("cache settings not hydrated: %+v", cfg.Cache)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cache: ["), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}
