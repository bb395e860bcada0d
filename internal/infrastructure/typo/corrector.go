// Package typo corrects known single-token command misspellings via O(1)
// lookup against immutable, platform-selected tables.
package typo

import (
	"strings"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// Corrector holds the active correction table for the detected platform and
// shell. It is pure: construction selects the tables, lookups never mutate.
type Corrector struct {
	active map[string]string
	known  map[string]bool
}

// NewCorrector builds the active table as universal + platform subset +
// shell-specific extras. Later layers win when the same key appears twice, so
// a platform-local target (e.g. "sl" on Windows) shadows the universal one.
func NewCorrector(platform domain.PlatformContext) *Corrector {
	active := make(map[string]string, len(universalTypos)+len(unixTypos))
	for k, v := range universalTypos {
		active[k] = v
	}

	var platformTable map[string]string
	var binaries []string
	if platform.IsWindows() {
		platformTable = windowsTypos
		binaries = windowsKnownCommands
	} else {
		platformTable = unixTypos
		binaries = unixKnownCommands
	}
	for k, v := range platformTable {
		active[k] = v
	}

	switch strings.ToLower(platform.Shell) {
	case "fish":
		for k, v := range fishTypos {
			active[k] = v
		}
	case "zsh":
		for k, v := range zshTypos {
			active[k] = v
		}
	}

	known := make(map[string]bool, len(binaries)+len(active))
	for _, b := range binaries {
		known[b] = true
	}
	for _, target := range active {
		// Targets may carry arguments ("cd .."); the command part counts.
		if i := strings.IndexByte(target, ' '); i > 0 {
			known[target[:i]] = true
		} else {
			known[target] = true
		}
	}

	return &Corrector{active: active, known: known}
}

// Correct returns the canonical form of a misspelled token, or the input
// unchanged when it is not a known misspelling. Empty and whitespace-only
// input passes through untouched.
func (c *Corrector) Correct(token string) string {
	trimmed := strings.ToLower(strings.TrimSpace(token))
	if trimmed == "" {
		return token
	}
	if fixed, ok := c.active[trimmed]; ok {
		return fixed
	}
	return token
}

// CorrectPhrase applies Correct to every whitespace-separated token of a
// phrase. Tokens without a table entry are preserved as typed.
func (c *Corrector) CorrectPhrase(phrase string) string {
	if strings.TrimSpace(phrase) == "" {
		return phrase
	}
	fields := strings.Fields(phrase)
	changed := false
	for i, f := range fields {
		if fixed, ok := c.active[strings.ToLower(f)]; ok {
			fields[i] = fixed
			changed = true
		}
	}
	if !changed {
		return phrase
	}
	return strings.Join(fields, " ")
}

// IsKnownCommand reports whether the token (raw or after correction) is a
// correction target or a known command binary for the platform.
func (c *Corrector) IsKnownCommand(token string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(token))
	if trimmed == "" {
		return false
	}
	if c.known[trimmed] {
		return true
	}
	if fixed, ok := c.active[trimmed]; ok {
		if i := strings.IndexByte(fixed, ' '); i > 0 {
			fixed = fixed[:i]
		}
		return c.known[fixed]
	}
	return false
}

var _ ports.TypoCorrector = (*Corrector)(nil)
