package cache

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// SQLiteCache persists translations in a SQLite database so the cache
// survives restarts. When the database cannot be opened it degrades to the
// in-memory store for the rest of the process.
type SQLiteCache struct {
	db       *sql.DB
	path     string
	mu       sync.Mutex
	fallback *MemoryCache
	logger   ports.Logger
}

// NewSQLiteCache creates (or opens) the translations database at path. An
// empty path defaults to ~/.nlsh/cache/translations.db.
func NewSQLiteCache(path string, maxEntries int, logger ports.Logger) *SQLiteCache {
	if path == "" {
		path = filepath.Join(userHome(), ".nlsh", "cache", "translations.db")
	}
	store := &SQLiteCache{
		path:     path,
		fallback: NewMemoryCache(maxEntries, logger),
		logger:   logger,
	}
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		if logger != nil {
			logger.Warn("cache database unavailable, using memory store", map[string]interface{}{"path": path})
		}
		return store
	}
	store.db = db
	if err := store.init(); err != nil {
		if logger != nil {
			logger.Warn("cache schema init failed, using memory store", map[string]interface{}{"path": path})
		}
		store.db = nil
	}
	return store
}

func (s *SQLiteCache) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS translations (
		key TEXT PRIMARY KEY,
		phrase TEXT,
		platform TEXT,
		command TEXT,
		explanation TEXT,
		confidence REAL,
		source TEXT,
		use_count INTEGER,
		created_at TEXT,
		last_used_at TEXT
	);`)
	return err
}

// Get returns the entry for a phrase/platform pair and counts the hit.
func (s *SQLiteCache) Get(phrase, platform string) (domain.CacheEntry, bool) {
	if s.db == nil {
		return s.fallback.Get(phrase, platform)
	}
	key := Key(phrase, platform)
	if key == "" {
		return domain.CacheEntry{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.scanOne(`SELECT key, phrase, platform, command, explanation, confidence, source, use_count, created_at, last_used_at
		FROM translations WHERE key = ?`, key)
	if !ok {
		return domain.CacheEntry{}, false
	}
	entry.UseCount++
	entry.LastUsedAt = time.Now()
	if _, err := s.db.Exec(`UPDATE translations SET use_count = ?, last_used_at = ? WHERE key = ?`,
		entry.UseCount, entry.LastUsedAt.Format(time.RFC3339), key); err != nil {
		if s.logger != nil {
			s.logger.Warn("cache counter update failed", map[string]interface{}{"key": key})
		}
	}
	return entry, true
}

// Put stores a resolution, keeping the accumulated counter when the key
// already exists.
func (s *SQLiteCache) Put(phrase, platform string, res domain.Resolution) {
	if s.db == nil {
		s.fallback.Put(phrase, platform, res)
		return
	}
	key := Key(phrase, platform)
	if key == "" {
		return
	}
	now := time.Now().Format(time.RFC3339)

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO translations
		(key, phrase, platform, command, explanation, confidence, source, use_count, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			command = excluded.command,
			explanation = excluded.explanation,
			confidence = excluded.confidence,
			source = excluded.source,
			last_used_at = excluded.last_used_at`,
		key, phrase, platform, res.Command, res.Explanation, res.Confidence, string(res.Source), now, now)
	if err != nil && s.logger != nil {
		s.logger.Warn("cache write failed", map[string]interface{}{"key": key})
	}
}

// Popular returns the limit most-used entries.
func (s *SQLiteCache) Popular(limit int) []domain.CacheEntry {
	if s.db == nil {
		return s.fallback.Popular(limit)
	}
	if limit <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT key, phrase, platform, command, explanation, confidence, source, use_count, created_at, last_used_at
		FROM translations ORDER BY use_count DESC, datetime(last_used_at) DESC LIMIT ?`, limit)
	if err != nil {
		return nil
	}
	defer rows.Close()
	var out []domain.CacheEntry
	for rows.Next() {
		if entry, ok := scanEntry(rows); ok {
			out = append(out, entry)
		}
	}
	return out
}

// Stats aggregates counters from the stored rows.
func (s *SQLiteCache) Stats() domain.CacheStats {
	if s.db == nil {
		return s.fallback.Stats()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats domain.CacheStats
	row := s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(use_count), 0) FROM translations`)
	if err := row.Scan(&stats.TotalEntries, &stats.TotalUses); err != nil {
		return domain.CacheStats{}
	}
	if stats.TotalEntries > 0 {
		stats.AverageUses = float64(stats.TotalUses) / float64(stats.TotalEntries)
	}
	if stats.TotalUses > 0 {
		stats.HitPotential = float64(stats.TotalUses-stats.TotalEntries) / float64(stats.TotalUses)
	}
	return stats
}

// Clear deletes every cached translation.
func (s *SQLiteCache) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM translations`)
	return err
}

// Path returns the database path.
func (s *SQLiteCache) Path() string {
	return s.path
}

func (s *SQLiteCache) scanOne(query string, args ...interface{}) (domain.CacheEntry, bool) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return domain.CacheEntry{}, false
	}
	defer rows.Close()
	if !rows.Next() {
		return domain.CacheEntry{}, false
	}
	return scanEntry(rows)
}

func scanEntry(rows *sql.Rows) (domain.CacheEntry, bool) {
	var entry domain.CacheEntry
	var source, created, lastUsed string
	if err := rows.Scan(&entry.Key, &entry.Phrase, &entry.Platform, &entry.Command,
		&entry.Explanation, &entry.Confidence, &source, &entry.UseCount, &created, &lastUsed); err != nil {
		return domain.CacheEntry{}, false
	}
	entry.Source = domain.Source(source)
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		entry.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, lastUsed); err == nil {
		entry.LastUsedAt = t
	}
	return entry, true
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

var _ ports.CacheRepository = (*SQLiteCache)(nil)
