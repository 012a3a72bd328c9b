package domain

import "time"

// CacheEntry is a stored successful Result. Owned exclusively by the cache
// store and never exposed outside it.
type CacheEntry struct {
	Key        string
	Value      Result
	InsertedAt time.Time
	TTL        time.Duration
}

// Expired reports whether the entry has outlived its TTL at the given time.
func (e CacheEntry) Expired(now time.Time) bool {
	return e.TTL > 0 && now.Sub(e.InsertedAt) > e.TTL
}

// CacheOptions tune a single Wrap call.
type CacheOptions struct {
	// SkipCache bypasses the store entirely: the producer always runs and
	// nothing is read or written.
	SkipCache bool
	// ForceRefresh ignores a live entry and re-runs the producer, storing
	// the fresh value on success.
	ForceRefresh bool
	// TTLOverride replaces the category-derived TTL for this call.
	TTLOverride time.Duration
}

// CacheStats are monotonically increasing counters, reset only by ClearAll.
type CacheStats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Sets    uint64 `json:"sets"`
	Entries int    `json:"entries"`
}
