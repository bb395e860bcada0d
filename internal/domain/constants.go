package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Resolution constants
const (
	// DefaultFuzzyThreshold is the per-algorithm minimum similarity.
	DefaultFuzzyThreshold = 0.7
	// DefaultIntentConfidence is the fixed confidence an intent-pattern hit
	// reports (constant, never computed).
	DefaultIntentConfidence = 0.75
	// MaxPhraseLength bounds accepted input; anything longer is InvalidInput.
	MaxPhraseLength = 1000
	// PatternKeyWords is how many significant words feed a learning key.
	PatternKeyWords = 3
)

// Limit constants
const (
	// DefaultSuggestLimit is the default number of suggest() results.
	DefaultSuggestLimit = 5
	// DefaultPopularLimit is the default number of popular cache entries shown.
	DefaultPopularLimit = 10
	// DefaultMaxCacheEntries is the maximum number of cache entries.
	DefaultMaxCacheEntries = 500
	// DefaultLearnedLimit is the default number of learned suggestions.
	DefaultLearnedLimit = 3
)

// Timeout constants
const (
	// DefaultTranslateTimeout bounds the external collaborator call.
	DefaultTranslateTimeout = 30 * time.Second
	// DefaultHTTPClientTimeout is the hard ceiling on collaborator requests.
	DefaultHTTPClientTimeout = 60 * time.Second
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
