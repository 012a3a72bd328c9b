// Package audit persists the tool-invocation log in SQLite.
package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/doeshing/codescout/internal/domain"
	"github.com/doeshing/codescout/internal/ports"
)

// SQLiteStore records every tool invocation: cache behavior, outcome
// classification, resolved branch, and timing.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS invocations (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		tool TEXT,
		category TEXT,
		cache_key TEXT,
		cache_hit INTEGER,
		is_error INTEGER,
		classification TEXT,
		used_branch TEXT,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record, assigning an ID and timestamp when unset.
func (s *SQLiteStore) Save(record domain.AuditRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO invocations
		(id, timestamp, tool, category, cache_key, cache_hit, is_error, classification, used_branch, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(time.RFC3339),
		record.Tool,
		record.Category,
		record.CacheKey,
		boolToInt(record.CacheHit),
		boolToInt(record.IsError),
		string(record.Classification),
		record.UsedBranch,
		record.DurationMS,
	)
	return err
}

// Records returns invocation entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.AuditRecord, error) {
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, tool, category, cache_key, cache_hit, is_error, classification, used_branch, duration_ms FROM invocations")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE tool LIKE ? OR category LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		var ts, classification string
		var cacheHit, isError int
		if err := rows.Scan(&rec.ID, &ts, &rec.Tool, &rec.Category, &rec.CacheKey, &cacheHit, &isError, &classification, &rec.UsedBranch, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.CacheHit = cacheHit == 1
		rec.IsError = isError == 1
		rec.Classification = domain.Classification(classification)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all invocation entries.
func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec("DELETE FROM invocations")
	return err
}

// ExportJSON writes the invocation table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return file.Close()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping() error {
	if s.db == nil {
		return fmt.Errorf("audit store not initialized")
	}
	return s.db.Ping()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.AuditRepository = (*SQLiteStore)(nil)
