package domain

import "time"

// AuditRecord is one row of the tool-invocation log.
type AuditRecord struct {
	ID             string         `json:"id"`
	Timestamp      time.Time      `json:"timestamp"`
	Tool           string         `json:"tool"`
	Category       string         `json:"category"`
	CacheKey       string         `json:"cache_key"`
	CacheHit       bool           `json:"cache_hit"`
	IsError        bool           `json:"is_error"`
	Classification Classification `json:"classification,omitempty"`
	UsedBranch     string         `json:"used_branch,omitempty"`
	DurationMS     int64          `json:"duration_ms"`
}
