// Package cache implements the translation cache tier: normalized phrase +
// platform to a prior resolution, with use counters.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// MemoryCache is the in-process cache store. Counter increments are taken
// under the lock so concurrent hits are never lost; a racing double Put for
// the same key is last-write-wins on the result, keeping the counter.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]*domain.CacheEntry
	maxEntries int
	logger     ports.Logger
}

// NewMemoryCache builds an empty store. maxEntries <= 0 uses the default cap.
func NewMemoryCache(maxEntries int, logger ports.Logger) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = domain.DefaultMaxCacheEntries
	}
	return &MemoryCache{
		entries:    make(map[string]*domain.CacheEntry),
		maxEntries: maxEntries,
		logger:     logger,
	}
}

// Get returns the entry for a phrase/platform pair and counts the hit.
func (c *MemoryCache) Get(phrase, platform string) (domain.CacheEntry, bool) {
	key := Key(phrase, platform)
	if key == "" {
		return domain.CacheEntry{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return domain.CacheEntry{}, false
	}
	entry.UseCount++
	entry.LastUsedAt = time.Now()
	return *entry, true
}

// Put stores a resolution. Inserting counts as the first use. Writing over
// an existing key is a logic error upstream; it is honored as
// overwrite-with-warning and the accumulated counter survives.
func (c *MemoryCache) Put(phrase, platform string, res domain.Resolution) {
	key := Key(phrase, platform)
	if key == "" {
		return
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		if c.logger != nil {
			c.logger.Warn("cache double-write", map[string]interface{}{"key": key})
		}
		existing.Command = res.Command
		existing.Explanation = res.Explanation
		existing.Confidence = res.Confidence
		existing.Source = res.Source
		existing.LastUsedAt = now
		return
	}

	if len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = &domain.CacheEntry{
		Key:         key,
		Phrase:      phrase,
		Platform:    platform,
		Command:     res.Command,
		Explanation: res.Explanation,
		Confidence:  res.Confidence,
		Source:      res.Source,
		UseCount:    1,
		CreatedAt:   now,
		LastUsedAt:  now,
	}
}

// Popular returns the limit most-used entries, ties broken by most recent
// use.
func (c *MemoryCache) Popular(limit int) []domain.CacheEntry {
	if limit <= 0 {
		return nil
	}
	entries := c.snapshot()
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].UseCount != entries[j].UseCount {
			return entries[i].UseCount > entries[j].UseCount
		}
		return entries[i].LastUsedAt.After(entries[j].LastUsedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Stats aggregates counters on demand from the stored entries.
func (c *MemoryCache) Stats() domain.CacheStats {
	return statsFromEntries(c.snapshot())
}

// Clear drops every entry.
func (c *MemoryCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*domain.CacheEntry)
	return nil
}

func (c *MemoryCache) snapshot() []domain.CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CacheEntry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, *e)
	}
	return out
}

func (c *MemoryCache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.LastUsedAt.Before(oldest) {
			oldestKey = k
			oldest = e.LastUsedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Key folds a phrase/platform pair into the cache key. Callers pass phrases
// already normalized by the resolver; the fold here only guards casing and
// stray whitespace.
func Key(phrase, platform string) string {
	p := strings.ToLower(strings.Join(strings.Fields(phrase), " "))
	if p == "" {
		return ""
	}
	return p + "|" + strings.ToLower(platform)
}

func statsFromEntries(entries []domain.CacheEntry) domain.CacheStats {
	stats := domain.CacheStats{TotalEntries: len(entries)}
	for _, e := range entries {
		stats.TotalUses += e.UseCount
	}
	if stats.TotalEntries > 0 {
		stats.AverageUses = float64(stats.TotalUses) / float64(stats.TotalEntries)
	}
	// Share of uses that were repeat hits rather than first writes.
	if stats.TotalUses > 0 {
		stats.HitPotential = float64(stats.TotalUses-stats.TotalEntries) / float64(stats.TotalUses)
	}
	return stats
}

var _ ports.CacheRepository = (*MemoryCache)(nil)
