package domain

import "time"

// CacheEntry stores a prior resolution keyed by normalized phrase + platform.
type CacheEntry struct {
	Key         string    `json:"key"`
	Phrase      string    `json:"phrase"`
	Platform    string    `json:"platform"`
	Command     string    `json:"command"`
	Explanation string    `json:"explanation"`
	Confidence  float64   `json:"confidence"`
	Source      Source    `json:"source"`
	UseCount    int       `json:"use_count"`
	CreatedAt   time.Time `json:"created_at"`
	LastUsedAt  time.Time `json:"last_used_at"`
}

// CacheStats aggregates cache counters for diagnostics. Computed on demand
// from the stored entries so the numbers cannot drift.
type CacheStats struct {
	TotalEntries int     `json:"total_entries"`
	TotalUses    int     `json:"total_uses"`
	AverageUses  float64 `json:"average_uses"`
	HitPotential float64 `json:"hit_potential"`
}
