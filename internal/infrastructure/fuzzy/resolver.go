package fuzzy

import (
	"errors"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// errNoCandidate marks a matcher miss. Matchers wrap it with detail; the
// combiner treats any error uniformly as "no candidate from this matcher".
var errNoCandidate = errors.New("no candidate")

// matchInput is the normalized view of one phrase, computed once and shared
// by all four matchers.
type matchInput struct {
	Raw        string
	Normalized string
	Tokens     []string
	TokenSet   map[string]bool
}

type matcher interface {
	Algorithm() domain.Algorithm
	Match(matchInput) (domain.MatchCandidate, error)
}

// Options configures the combined resolver.
type Options struct {
	Threshold float64
	Weights   domain.MatcherWeights
	Language  string
	Learning  ports.LearningStore
	Logger    ports.Logger
}

// Resolver runs the four matchers over the same input and combines their
// candidates by fixed per-algorithm weights.
type Resolver struct {
	threshold float64
	weights   domain.MatcherWeights
	language  string
	matchers  []matcher
	learning  ports.LearningStore
	logger    ports.Logger
}

// NewResolver builds the matcher set. A zero threshold falls back to the
// default; a zero weight table falls back to the standard weights.
func NewResolver(opts Options) *Resolver {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = domain.DefaultFuzzyThreshold
	}
	weights := opts.Weights
	if weights == (domain.MatcherWeights{}) {
		weights = domain.DefaultMatcherWeights()
	}
	learning := opts.Learning
	if learning == nil {
		learning = NewMemoryLearningStore()
	}
	return &Resolver{
		threshold: threshold,
		weights:   weights,
		language:  opts.Language,
		matchers: []matcher{
			newDistanceMatcher(threshold),
			newSemanticMatcher(threshold),
			newPhoneticMatcher(threshold),
			newIntentMatcher(),
		},
		learning: learning,
		logger:   opts.Logger,
	}
}

// Match resolves a phrase through all matchers. The winner is the candidate
// with the highest weighted score, but the returned candidate carries its
// original unweighted score. ok is false when every matcher misses.
func (r *Resolver) Match(phrase string) (domain.MatchCandidate, bool) {
	in := r.buildInput(phrase)
	if in.Normalized == "" {
		return domain.MatchCandidate{}, false
	}

	var best domain.MatchCandidate
	bestWeighted := 0.0
	found := false
	for _, m := range r.matchers {
		cand, err := r.runMatcher(m, in)
		if err != nil {
			if r.logger != nil && !errors.Is(err, errNoCandidate) {
				r.logger.Warn("matcher failed", map[string]interface{}{
					"algorithm": m.Algorithm().String(),
					"error":     err.Error(),
				})
			}
			continue
		}
		weighted := cand.Score * r.weights[cand.Algorithm]
		if !found || weighted > bestWeighted {
			best = cand
			bestWeighted = weighted
			found = true
		}
	}
	if !found {
		return domain.MatchCandidate{}, false
	}

	r.learning.Record(phrase, best.Command, best.Score)
	return best, true
}

// LearnedSuggestions recalls past accepted matches for the phrase's pattern
// key. Advisory only; the main resolution path does not consult it.
func (r *Resolver) LearnedSuggestions(phrase string, limit int) []domain.LearnedSuggestion {
	return r.learning.Query(phrase, limit)
}

// Normalize exposes the resolver's input normalization so the orchestrator
// can use identical keys for the translation cache.
func (r *Resolver) Normalize(phrase string) string {
	return Normalize(phrase, r.language)
}

func (r *Resolver) buildInput(phrase string) matchInput {
	normalized := Normalize(phrase, r.language)
	tokens := Tokens(normalized)
	return matchInput{
		Raw:        phrase,
		Normalized: normalized,
		Tokens:     tokens,
		TokenSet:   tokenSet(tokens),
	}
}

// runMatcher converts a matcher panic into a miss so one broken algorithm
// can never abort the combination.
func (r *Resolver) runMatcher(m matcher, in matchInput) (cand domain.MatchCandidate, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if r.logger != nil {
				r.logger.Error("matcher panicked", nil, map[string]interface{}{
					"algorithm": m.Algorithm().String(),
					"panic":     rec,
				})
			}
			cand = domain.MatchCandidate{}
			err = errNoCandidate
		}
	}()
	return m.Match(in)
}

var _ ports.FuzzyMatcher = (*Resolver)(nil)
