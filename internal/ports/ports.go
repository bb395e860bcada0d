// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the resolution core and
// external adapters (infrastructure). The orchestrator depends only on these
// abstractions, so tests can substitute in-memory stores and stub translators
// without touching the pipeline.
package ports

import (
	"context"

	"github.com/doeshing/nlsh-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.nlsh/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// TypoCorrector normalizes known single-token command misspellings.
// Implementations are pure functions over immutable, platform-selected tables.
type TypoCorrector interface {
	Correct(token string) string
	CorrectPhrase(phrase string) string
	IsKnownCommand(token string) bool
}

// DirectIndex is the registry of phrase -> command mappings, both built-in
// and user-added. Custom entries shadow built-ins with the same key.
type DirectIndex interface {
	Lookup(phrase string) (domain.CommandEntry, bool)
	Add(entry domain.CommandEntry, overwrite bool) error
	Remove(phrase string) bool
	Suggest(partial string, limit int) []string
}

// FuzzyMatcher runs the multi-algorithm matchers and reports the single best
// candidate, or ok=false when every matcher misses.
type FuzzyMatcher interface {
	Match(phrase string) (domain.MatchCandidate, bool)
}

// LearningStore records accepted matches keyed by pattern key and recalls
// them, sorted by (use count, confidence) descending. Injectable so tests get
// a fresh store per test and production can pick a persisted backing.
type LearningStore interface {
	Record(phrase, command string, confidence float64)
	Query(phrase string, limit int) []domain.LearnedSuggestion
}

// CacheRepository is the translation cache: normalized phrase + platform to a
// prior resolution, with use counters.
type CacheRepository interface {
	Get(phrase, platform string) (domain.CacheEntry, bool)
	Put(phrase, platform string, res domain.Resolution)
	Popular(limit int) []domain.CacheEntry
	Stats() domain.CacheStats
	Clear() error
}

// CustomCommandStore persists user-added direct entries across runs.
type CustomCommandStore interface {
	Load() ([]domain.CommandEntry, error)
	Save(entries []domain.CommandEntry) error
}

// Translator is the external AI translation collaborator. Implementations
// must honor ctx cancellation, never retry, and distinguish timeout,
// malformed-response and unavailable failures via the domain error kinds.
type Translator interface {
	Name() string
	Translate(ctx context.Context, phrase string, platform domain.PlatformContext) (domain.TranslationResult, error)
}

// SafetyEvaluator annotates a resolved command with a coarse risk verdict.
type SafetyEvaluator interface {
	Evaluate(command string) (safe bool, reasons []string)
}

// PlatformDetector reports the platform context the process runs under.
type PlatformDetector interface {
	Detect() domain.PlatformContext
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
