package fuzzy

import (
	"regexp"

	"github.com/doeshing/nlsh-go/internal/domain"
)

// intentMatcher tries an ordered list of compiled intent regexes. The first
// pattern that matches wins and returns the intent's first command with the
// pattern's fixed confidence.
type intentMatcher struct {
	patterns []compiledIntent
}

type compiledIntent struct {
	name       string
	re         *regexp.Regexp
	commands   []string
	confidence float64
}

func newIntentMatcher() *intentMatcher {
	compiled := make([]compiledIntent, 0, len(intentPatterns))
	for _, p := range intentPatterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			// A broken table entry disables that one intent, not the matcher.
			continue
		}
		compiled = append(compiled, compiledIntent{
			name:       p.Name,
			re:         re,
			commands:   p.Commands,
			confidence: p.Confidence,
		})
	}
	return &intentMatcher{patterns: compiled}
}

func (m *intentMatcher) Algorithm() domain.Algorithm {
	return domain.AlgorithmIntent
}

func (m *intentMatcher) Match(in matchInput) (domain.MatchCandidate, error) {
	if in.Normalized == "" {
		return domain.MatchCandidate{}, errNoCandidate
	}
	for _, p := range m.patterns {
		if !p.re.MatchString(in.Normalized) {
			continue
		}
		if len(p.commands) == 0 {
			continue
		}
		return domain.MatchCandidate{
			Command:   p.commands[0],
			Score:     p.confidence,
			Algorithm: domain.AlgorithmIntent,
			Method:    "intent:" + p.name,
		}, nil
	}
	return domain.MatchCandidate{}, errNoCandidate
}
