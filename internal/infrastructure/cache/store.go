// Package cache memoizes successful command Results in memory under
// category-scoped TTL policies.
package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/doeshing/codescout/internal/domain"
	"github.com/doeshing/codescout/internal/ports"
)

const (
	defaultMaxEntries    = 250
	defaultSweepInterval = 5 * time.Minute
)

// Store is an injectable in-memory result cache. The map is the only shared
// mutable state in the core; the mutex covers map access only and is never
// held across a producer call, so two concurrent misses on one key will both
// run the producer (documented limitation: producers are idempotent external
// reads, so the duplicate work is accepted).
type Store struct {
	mu      sync.Mutex
	entries map[string]domain.CacheEntry

	keyVersion    string
	maxEntries    int
	defaultTTL    time.Duration
	ttlByCategory map[string]time.Duration

	hits   uint64
	misses uint64
	sets   uint64

	stop     chan struct{}
	stopOnce sync.Once
}

// NewStore builds a cache from settings, hydrating unset values with the
// defaults observed for each category, and starts the expiry sweeper.
func NewStore(settings domain.CacheSettings) *Store {
	s := &Store{
		entries:       make(map[string]domain.CacheEntry),
		keyVersion:    settings.KeyVersion,
		maxEntries:    settings.MaxEntries,
		defaultTTL:    time.Duration(settings.DefaultTTLSeconds) * time.Second,
		ttlByCategory: make(map[string]time.Duration),
		stop:          make(chan struct{}),
	}
	if s.keyVersion == "" {
		s.keyVersion = "v1"
	}
	if s.maxEntries <= 0 {
		s.maxEntries = defaultMaxEntries
	}
	if s.defaultTTL <= 0 {
		s.defaultTTL = domain.DefaultTTLFallback * time.Second
	}
	for category, seconds := range defaultTTLTable() {
		s.ttlByCategory[category] = time.Duration(seconds) * time.Second
	}
	for category, seconds := range settings.TTLSecondsByCategory {
		s.ttlByCategory[category] = time.Duration(seconds) * time.Second
	}

	sweep := time.Duration(settings.SweepIntervalSecond) * time.Second
	if sweep <= 0 {
		sweep = defaultSweepInterval
	}
	go s.sweeper(sweep)
	return s
}

func defaultTTLTable() map[string]int {
	return map[string]int{
		domain.CategoryCodeSearch:    domain.DefaultTTLCodeSearch,
		domain.CategoryRepoSearch:    domain.DefaultTTLRepoSearch,
		domain.CategoryPackageSearch: domain.DefaultTTLPackageSearch,
		domain.CategoryPackageView:   domain.DefaultTTLPackageView,
	}
}

// Wrap implements ports.CacheRepository. The returned bool reports a hit.
func (s *Store) Wrap(ctx context.Context, key string, producer ports.Producer, opts domain.CacheOptions) (domain.Result, bool) {
	if opts.SkipCache {
		return producer(ctx), false
	}

	s.mu.Lock()
	if entry, ok := s.entries[key]; ok {
		if entry.Expired(time.Now()) {
			delete(s.entries, key)
		} else if !opts.ForceRefresh {
			s.hits++
			s.mu.Unlock()
			return entry.Value, true
		}
	}
	s.misses++
	s.mu.Unlock()

	result := producer(ctx)
	if result.IsError {
		// Hard invariant: a transient failure must never become sticky
		// for a full TTL window.
		return result, false
	}

	ttl := opts.TTLOverride
	if ttl <= 0 {
		ttl = s.ttlFor(s.categoryOf(key))
	}
	s.mu.Lock()
	s.entries[key] = domain.CacheEntry{
		Key:        key,
		Value:      result,
		InsertedAt: time.Now(),
		TTL:        ttl,
	}
	s.sets++
	s.evictLocked()
	s.mu.Unlock()
	return result, false
}

// Stats implements ports.CacheRepository.
func (s *Store) Stats() domain.CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CacheStats{
		Hits:    s.hits,
		Misses:  s.misses,
		Sets:    s.sets,
		Entries: len(s.entries),
	}
}

// ClearAll resets the store and its counters.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]domain.CacheEntry)
	s.hits, s.misses, s.sets = 0, 0, 0
}

// Entries returns a snapshot of live entries, oldest first.
func (s *Store) Entries() []domain.CacheEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CacheEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InsertedAt.Before(out[j].InsertedAt) })
	return out
}

// Close stops the background sweeper.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) ttlFor(category string) time.Duration {
	if ttl, ok := s.ttlByCategory[category]; ok {
		return ttl
	}
	return s.defaultTTL
}

// categoryOf recovers the category from "{version}-{category}:{hash}".
func (s *Store) categoryOf(key string) string {
	rest := key
	if prefix := s.keyVersion + "-"; len(rest) > len(prefix) && rest[:len(prefix)] == prefix {
		rest = rest[len(prefix):]
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] == ':' {
			return rest[:i]
		}
	}
	return rest
}

// evictLocked drops oldest entries until the count bound holds.
func (s *Store) evictLocked() {
	for len(s.entries) > s.maxEntries {
		oldestKey := ""
		var oldest time.Time
		for key, entry := range s.entries {
			if oldestKey == "" || entry.InsertedAt.Before(oldest) {
				oldestKey = key
				oldest = entry.InsertedAt
			}
		}
		delete(s.entries, oldestKey)
	}
}

func (s *Store) sweeper(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.removeExpired(time.Now())
		}
	}
}

func (s *Store) removeExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, key)
		}
	}
}

var _ ports.CacheRepository = (*Store)(nil)
