// Package services orchestrates the resolution pipeline over the ports.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// Resolver runs the tiered resolution pipeline: typo correction, direct
// lookup, translation cache, fuzzy matching, external collaborator. Tiers
// are consulted in that order and the first qualifying answer wins.
type Resolver struct {
	Config     domain.Config
	Platform   domain.PlatformContext
	Typo       ports.TypoCorrector
	Direct     ports.DirectIndex
	Fuzzy      ports.FuzzyMatcher
	Cache      ports.CacheRepository
	Learning   ports.LearningStore
	Translator ports.Translator
	Safety     ports.SafetyEvaluator
	Logger     ports.Logger

	// Normalizer folds a phrase into the canonical form used for cache
	// keys. Wired to the fuzzy resolver's normalization so cache and
	// matcher tiers agree on what "the same phrase" means.
	Normalizer func(string) string
}

// Resolve processes one phrase through the pipeline.
func (s *Resolver) Resolve(req domain.ResolveRequest) (domain.Resolution, error) {
	if s.Typo == nil || s.Direct == nil || s.Fuzzy == nil || s.Cache == nil {
		return domain.Resolution{}, errors.New("services.Resolver dependencies not satisfied")
	}

	phrase := strings.TrimSpace(req.Phrase)
	if phrase == "" {
		return domain.Resolution{}, fmt.Errorf("%w: empty phrase", domain.ErrInvalidInput)
	}
	if max := s.maxPhraseLen(); len(phrase) > max {
		return domain.Resolution{}, fmt.Errorf("%w: phrase exceeds %d characters", domain.ErrInvalidInput, max)
	}

	platform := req.Platform
	if platform.Platform == "" {
		platform = s.Platform
	}

	corrected := s.Typo.CorrectPhrase(phrase)
	if req.Debug && corrected != phrase {
		s.debug("typo correction applied", map[string]interface{}{"from": phrase, "to": corrected})
	}

	if entry, ok := s.Direct.Lookup(corrected); ok {
		s.debug("direct hit", map[string]interface{}{"phrase": corrected, "command": entry.Command})
		return s.finish(domain.Resolution{
			Command:     entry.Command,
			Explanation: entry.Explanation,
			Confidence:  entry.Confidence,
			Source:      domain.SourceDirect,
			Phrase:      phrase,
		}), nil
	}

	cacheKey := s.normalize(corrected)
	if cached, ok := s.Cache.Get(cacheKey, platform.Platform); ok {
		s.debug("cache hit", map[string]interface{}{"key": cached.Key, "uses": cached.UseCount})
		return s.finish(domain.Resolution{
			Command:     cached.Command,
			Explanation: cached.Explanation,
			Confidence:  cached.Confidence,
			Source:      domain.SourceCache,
			Phrase:      phrase,
		}), nil
	}

	if cand, ok := s.Fuzzy.Match(corrected); ok {
		s.debug("fuzzy match", map[string]interface{}{
			"algorithm": cand.Algorithm.String(),
			"score":     cand.Score,
			"command":   cand.Command,
		})
		res := s.finish(domain.Resolution{
			Command:     cand.Command,
			Explanation: cand.Descriptor,
			Confidence:  cand.Score,
			Source:      domain.FuzzySource(cand.Algorithm),
			Phrase:      phrase,
		})
		s.Cache.Put(cacheKey, platform.Platform, res)
		return res, nil
	}

	return s.translate(req, phrase, corrected, cacheKey, platform)
}

// translate is the collaborator tier. A missing or disabled collaborator is
// a pipeline miss, never a fabricated guess.
func (s *Resolver) translate(req domain.ResolveRequest, phrase, corrected, cacheKey string, platform domain.PlatformContext) (domain.Resolution, error) {
	if req.SkipAI || s.Config.Preferences.OfflineOnly || s.Translator == nil {
		return domain.Resolution{}, fmt.Errorf("%w: %q", domain.ErrNoMatch, phrase)
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, s.translateTimeout(req))
	defer cancel()

	s.debug("consulting collaborator", map[string]interface{}{"translator": s.Translator.Name()})
	result, err := s.Translator.Translate(ctx, corrected, platform)
	if err != nil {
		return domain.Resolution{}, err
	}

	res := s.finish(domain.Resolution{
		Command:     result.Command,
		Explanation: result.Explanation,
		Confidence:  result.Confidence,
		Source:      domain.SourceAI,
		Phrase:      phrase,
	})
	if !result.Safe {
		res.Safe = false
		res.RiskReasons = append(res.RiskReasons, "flagged unsafe by the translation collaborator")
	}
	s.Cache.Put(cacheKey, platform.Platform, res)
	return res, nil
}

// Suggest returns completion candidates for a partial phrase.
func (s *Resolver) Suggest(partial string, limit int) []string {
	if s.Direct == nil {
		return nil
	}
	if limit <= 0 {
		limit = s.Config.Resolver.SuggestLimit
	}
	if limit <= 0 {
		limit = domain.DefaultSuggestLimit
	}
	return s.Direct.Suggest(s.Typo.CorrectPhrase(partial), limit)
}

// AddCustomCommand registers a user mapping in the direct index.
func (s *Resolver) AddCustomCommand(phrase, command, explanation string, confidence float64, overwrite bool) error {
	return s.Direct.Add(domain.CommandEntry{
		Phrase:      phrase,
		Command:     command,
		Explanation: explanation,
		Confidence:  confidence,
		Category:    domain.CategoryCustom,
		IsCustom:    true,
	}, overwrite)
}

// RemoveCustomCommand deletes a user mapping. Built-ins cannot be removed.
func (s *Resolver) RemoveCustomCommand(phrase string) bool {
	return s.Direct.Remove(phrase)
}

// CacheStats reports translation cache counters.
func (s *Resolver) CacheStats() domain.CacheStats {
	return s.Cache.Stats()
}

// PopularCommands lists the most re-used cached translations.
func (s *Resolver) PopularCommands(limit int) []domain.CacheEntry {
	if limit <= 0 {
		limit = domain.DefaultPopularLimit
	}
	return s.Cache.Popular(limit)
}

// ClearCache drops every cached translation.
func (s *Resolver) ClearCache() error {
	return s.Cache.Clear()
}

// LearnedSuggestions recalls accepted fuzzy matches for similar phrases.
func (s *Resolver) LearnedSuggestions(phrase string, limit int) []domain.LearnedSuggestion {
	if s.Learning == nil {
		return nil
	}
	if limit <= 0 {
		limit = domain.DefaultLearnedLimit
	}
	return s.Learning.Query(s.Typo.CorrectPhrase(phrase), limit)
}

func (s *Resolver) finish(res domain.Resolution) domain.Resolution {
	res.Safe = true
	if s.Safety != nil {
		safe, reasons := s.Safety.Evaluate(res.Command)
		res.Safe = safe
		res.RiskReasons = reasons
	}
	return res
}

func (s *Resolver) normalize(phrase string) string {
	if s.Normalizer != nil {
		return s.Normalizer(phrase)
	}
	return strings.ToLower(strings.Join(strings.Fields(phrase), " "))
}

func (s *Resolver) maxPhraseLen() int {
	if s.Config.Resolver.MaxPhraseLen > 0 {
		return s.Config.Resolver.MaxPhraseLen
	}
	return domain.MaxPhraseLength
}

func (s *Resolver) translateTimeout(req domain.ResolveRequest) time.Duration {
	seconds := req.TimeoutSeconds
	if seconds <= 0 {
		seconds = s.Config.Preferences.TimeoutSeconds
	}
	if seconds <= 0 {
		return domain.DefaultTranslateTimeout
	}
	return time.Duration(seconds * float64(time.Second))
}

func (s *Resolver) debug(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, fields)
	}
}

// Compile-time interface compliance check
var _ domain.ResolverService = (*Resolver)(nil)
