// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The application depends on these
// abstractions, never on concrete implementations like the process gateway,
// the sqlite audit store, or the MCP transport.
package ports

import (
	"context"

	"github.com/doeshing/codescout/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.codescout/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandRunner invokes one external CLI with an argument vector and
// normalizes the outcome. Implementations never retry and never interpret
// errors beyond wrapping them into the Result.
type CommandRunner interface {
	Run(ctx context.Context, spec domain.CommandSpec) domain.CommandOutcome
}

// Classifier turns a finished command outcome into a taxonomy bucket.
// Implementations are pure and must not panic on arbitrary input.
type Classifier interface {
	Classify(outcome domain.CommandOutcome) domain.Classification
}

// Producer yields a fresh Result, typically by invoking the CommandRunner.
type Producer func(ctx context.Context) domain.Result

// CacheRepository memoizes successful Results under category-scoped keys.
type CacheRepository interface {
	// Wrap returns the cached Result for key when live, otherwise runs the
	// producer. Error Results are never stored. The bool reports a hit.
	Wrap(ctx context.Context, key string, producer Producer, opts domain.CacheOptions) (domain.Result, bool)
	Key(category string, params any) string
	Stats() domain.CacheStats
	ClearAll()
}

// Redactor scrubs secrets from outbound text.
type Redactor interface {
	Redact(text string) string
}

// AuditRepository persists the tool-invocation log.
type AuditRepository interface {
	Save(record domain.AuditRecord) error
	Records(limit int, search string) ([]domain.AuditRecord, error)
	Clear() error
	ExportJSON(dest string) error
}

// Logger provides structured logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
