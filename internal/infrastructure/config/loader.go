// Package config loads codescout's YAML configuration.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/codescout/internal/domain"
	"github.com/doeshing/codescout/internal/ports"
)

// FileLoader loads YAML configuration from ~/.codescout/config.yaml
// (overridable via CODESCOUT_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the config file location the loader resolves to.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("CODESCOUT_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".codescout", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// DefaultConfig is the configuration written on first run.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Executables: domain.ExecutableSettings{
			HostingCLI:     "gh",
			RegistryCLI:    "npm",
			TimeoutSeconds: 30,
		},
		Cache: domain.CacheSettings{
			KeyVersion:          "v1",
			MaxEntries:          250,
			SweepIntervalSecond: 300,
			DefaultTTLSeconds:   domain.DefaultTTLFallback,
			TTLSecondsByCategory: map[string]int{
				domain.CategoryCodeSearch:    domain.DefaultTTLCodeSearch,
				domain.CategoryRepoSearch:    domain.DefaultTTLRepoSearch,
				domain.CategoryPackageSearch: domain.DefaultTTLPackageSearch,
				domain.CategoryPackageView:   domain.DefaultTTLPackageView,
			},
		},
		Branches: domain.BranchSettings{
			Candidates: append([]string(nil), domain.DefaultBranchCandidates...),
		},
		Redaction: domain.RedactionSettings{
			Enabled:   true,
			RulesFile: filepath.Join(userHomeDir(), ".codescout", "redaction.yaml"),
		},
		Audit: domain.AuditSettings{
			Enabled: true,
			DBPath:  filepath.Join(userHomeDir(), ".codescout", "audit", "audit.db"),
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	defaults := DefaultConfig()
	if cfg.Executables.HostingCLI == "" {
		cfg.Executables.HostingCLI = defaults.Executables.HostingCLI
	}
	if cfg.Executables.RegistryCLI == "" {
		cfg.Executables.RegistryCLI = defaults.Executables.RegistryCLI
	}
	if cfg.Executables.TimeoutSeconds == 0 {
		cfg.Executables.TimeoutSeconds = defaults.Executables.TimeoutSeconds
	}
	if cfg.Cache.KeyVersion == "" {
		cfg.Cache.KeyVersion = defaults.Cache.KeyVersion
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = defaults.Cache.MaxEntries
	}
	if cfg.Cache.SweepIntervalSecond == 0 {
		cfg.Cache.SweepIntervalSecond = defaults.Cache.SweepIntervalSecond
	}
	if cfg.Cache.DefaultTTLSeconds == 0 {
		cfg.Cache.DefaultTTLSeconds = defaults.Cache.DefaultTTLSeconds
	}
	if len(cfg.Cache.TTLSecondsByCategory) == 0 {
		cfg.Cache.TTLSecondsByCategory = defaults.Cache.TTLSecondsByCategory
	}
	if len(cfg.Branches.Candidates) == 0 {
		cfg.Branches.Candidates = defaults.Branches.Candidates
	}
	if cfg.Redaction.RulesFile == "" {
		cfg.Redaction.RulesFile = defaults.Redaction.RulesFile
	}
	if cfg.Audit.DBPath == "" {
		cfg.Audit.DBPath = defaults.Audit.DBPath
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
