package audit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/codescout/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRecordsRoundtrip(t *testing.T) {
	store := newTestStore(t)

	record := domain.AuditRecord{
		Tool:           "fetch_file_content",
		Category:       domain.CategoryFileContent,
		CacheKey:       "v1-gh-file-content:abc",
		CacheHit:       false,
		IsError:        true,
		Classification: domain.ClassNotFound,
		UsedBranch:     "main",
		DurationMS:     42,
	}
	if err := store.Save(record); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	records, err := store.Records(10, "")
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if got.ID == "" {
		t.Fatal("ID not assigned")
	}
	if got.Timestamp.IsZero() {
		t.Fatal("timestamp not assigned")
	}
	if got.Tool != record.Tool || got.Classification != domain.ClassNotFound ||
		got.UsedBranch != "main" || got.DurationMS != 42 || !got.IsError || got.CacheHit {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestRecordsSearchAndLimit(t *testing.T) {
	store := newTestStore(t)

	tools := []string{"search_code", "search_code", "view_package"}
	for i, tool := range tools {
		err := store.Save(domain.AuditRecord{
			Tool:      tool,
			Category:  "cat",
			Timestamp: time.Now().Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	records, err := store.Records(0, "search_code")
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("search returned %d records, want 2", len(records))
	}

	records, err = store.Records(1, "")
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("limit returned %d records, want 1", len(records))
	}
	if records[0].Tool != "view_package" {
		t.Fatalf("newest record = %q, want view_package", records[0].Tool)
	}
}

func TestClearDeletesEverything(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(domain.AuditRecord{Tool: "search_code"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records after clear", len(records))
	}
}

func TestExportJSONWritesLines(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(domain.AuditRecord{Tool: "search_code"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	dest := filepath.Join(t.TempDir(), "audit.jsonl")
	if err := store.ExportJSON(dest); err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}
}
