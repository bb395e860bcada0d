package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

func newTestResolver() (*Resolver, *stubDirect, *stubFuzzy, *stubCache) {
	direct := &stubDirect{entries: map[string]domain.CommandEntry{
		"list files": {Phrase: "list files", Command: "ls", Explanation: "List directory contents", Confidence: 0.98},
		"git status": {Phrase: "git status", Command: "git status", Explanation: "Show working tree status", Confidence: 0.99},
	}}
	fz := &stubFuzzy{}
	cch := newStubCache()
	return &Resolver{
		Config:   domain.Config{Resolver: domain.ResolverSettings{MaxPhraseLen: domain.MaxPhraseLength}},
		Platform: domain.PlatformContext{Platform: "unix", Shell: "bash"},
		Typo:     stubTypo{corrections: map[string]string{"gti": "git", "lst": "ls"}},
		Direct:   direct,
		Fuzzy:    fz,
		Cache:    cch,
	}, direct, fz, cch
}

func TestResolveDirectHit(t *testing.T) {
	svc, _, fz, cch := newTestResolver()

	res, err := svc.Resolve(domain.ResolveRequest{Phrase: "list files"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Command != "ls" {
		t.Fatalf("Command = %q, want %q", res.Command, "ls")
	}
	if res.Source != domain.SourceDirect {
		t.Fatalf("Source = %q, want %q", res.Source, domain.SourceDirect)
	}
	if fz.calls != 0 {
		t.Fatalf("fuzzy consulted %d times on a direct hit", fz.calls)
	}
	if cch.puts != 0 {
		t.Fatalf("direct hit wrote to cache %d times", cch.puts)
	}
}

func TestResolveCorrectsTyposBeforeLookup(t *testing.T) {
	svc, _, _, _ := newTestResolver()

	res, err := svc.Resolve(domain.ResolveRequest{Phrase: "gti status"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Command != "git status" {
		t.Fatalf("Command = %q, want %q", res.Command, "git status")
	}
	if res.Source != domain.SourceDirect {
		t.Fatalf("Source = %q, want %q", res.Source, domain.SourceDirect)
	}
}

func TestResolveFuzzyThenCacheRoundTrip(t *testing.T) {
	svc, _, fz, cch := newTestResolver()
	fz.cand = domain.MatchCandidate{
		Command:    "ls",
		Score:      0.94,
		Algorithm:  domain.AlgorithmDistance,
		Descriptor: "List directory contents",
	}
	fz.ok = true

	first, err := svc.Resolve(domain.ResolveRequest{Phrase: "lizt filez"})
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	if first.Source != domain.FuzzySource(domain.AlgorithmDistance) {
		t.Fatalf("first Source = %q, want %q", first.Source, domain.FuzzySource(domain.AlgorithmDistance))
	}
	if cch.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cch.puts)
	}

	second, err := svc.Resolve(domain.ResolveRequest{Phrase: "lizt filez"})
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if second.Source != domain.SourceCache {
		t.Fatalf("second Source = %q, want %q", second.Source, domain.SourceCache)
	}
	if second.Command != "ls" {
		t.Fatalf("second Command = %q, want %q", second.Command, "ls")
	}
	if uses := cch.useCount("lizt filez", "unix"); uses != 2 {
		t.Fatalf("use count = %d, want 2 (put counts as first use)", uses)
	}
	if fz.calls != 1 {
		t.Fatalf("fuzzy consulted %d times, want 1 (second hit served from cache)", fz.calls)
	}
}

func TestResolveEmptyPhraseHasNoSideEffects(t *testing.T) {
	svc, direct, fz, cch := newTestResolver()

	_, err := svc.Resolve(domain.ResolveRequest{Phrase: "   "})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if direct.lookups != 0 || fz.calls != 0 || cch.gets != 0 || cch.puts != 0 {
		t.Fatalf("empty input touched tiers: direct=%d fuzzy=%d cacheGets=%d cachePuts=%d",
			direct.lookups, fz.calls, cch.gets, cch.puts)
	}
}

func TestResolveRejectsOverlongPhrase(t *testing.T) {
	svc, _, _, _ := newTestResolver()

	_, err := svc.Resolve(domain.ResolveRequest{Phrase: strings.Repeat("a", domain.MaxPhraseLength+1)})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestResolveMissWithoutTranslator(t *testing.T) {
	svc, _, _, _ := newTestResolver()

	_, err := svc.Resolve(domain.ResolveRequest{Phrase: "do something inscrutable"})
	if !errors.Is(err, domain.ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
}

func TestResolveSkipAIDoesNotConsultTranslator(t *testing.T) {
	svc, _, _, _ := newTestResolver()
	translator := &stubTranslator{result: domain.TranslationResult{Command: "ls", Confidence: 0.9, Safe: true}}
	svc.Translator = translator

	_, err := svc.Resolve(domain.ResolveRequest{Phrase: "do something inscrutable", SkipAI: true})
	if !errors.Is(err, domain.ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
	if translator.calls != 0 {
		t.Fatalf("translator consulted %d times with SkipAI set", translator.calls)
	}
}

func TestResolveOfflineOnlySkipsTranslator(t *testing.T) {
	svc, _, _, _ := newTestResolver()
	svc.Config.Preferences.OfflineOnly = true
	translator := &stubTranslator{result: domain.TranslationResult{Command: "ls", Confidence: 0.9, Safe: true}}
	svc.Translator = translator

	if _, err := svc.Resolve(domain.ResolveRequest{Phrase: "do something inscrutable"}); !errors.Is(err, domain.ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
	if translator.calls != 0 {
		t.Fatalf("translator consulted in offline mode")
	}
}

func TestResolveTranslatorAnswerIsCached(t *testing.T) {
	svc, _, _, cch := newTestResolver()
	svc.Translator = &stubTranslator{result: domain.TranslationResult{
		Command:     "tar -xzf archive.tar.gz",
		Explanation: "Extracts the archive",
		Confidence:  0.85,
		Safe:        true,
	}}

	res, err := svc.Resolve(domain.ResolveRequest{Phrase: "unpack that tarball thing"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Source != domain.SourceAI {
		t.Fatalf("Source = %q, want %q", res.Source, domain.SourceAI)
	}
	if cch.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cch.puts)
	}

	second, err := svc.Resolve(domain.ResolveRequest{Phrase: "unpack that tarball thing"})
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if second.Source != domain.SourceCache {
		t.Fatalf("second Source = %q, want %q", second.Source, domain.SourceCache)
	}
}

func TestResolveTranslatorUnsafeVerdictPropagates(t *testing.T) {
	svc, _, _, _ := newTestResolver()
	svc.Translator = &stubTranslator{result: domain.TranslationResult{
		Command:    "rm -rf build/",
		Confidence: 0.8,
		Safe:       false,
	}}

	res, err := svc.Resolve(domain.ResolveRequest{Phrase: "obliterate the build artifacts"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Safe {
		t.Fatalf("expected unsafe resolution")
	}
	if len(res.RiskReasons) == 0 {
		t.Fatalf("unsafe resolution carries no reasons")
	}
}

func TestResolveTranslatorErrorKindsPropagate(t *testing.T) {
	for _, sentinel := range []error{
		domain.ErrCollaboratorTimeout,
		domain.ErrCollaboratorMalformed,
		domain.ErrCollaboratorUnavailable,
	} {
		svc, _, _, _ := newTestResolver()
		svc.Translator = &stubTranslator{err: sentinel}

		_, err := svc.Resolve(domain.ResolveRequest{Phrase: "do something inscrutable"})
		if !errors.Is(err, sentinel) {
			t.Fatalf("err = %v, want %v", err, sentinel)
		}
	}
}

func TestResolveAppliesTimeoutToTranslator(t *testing.T) {
	svc, _, _, _ := newTestResolver()
	translator := &stubTranslator{result: domain.TranslationResult{Command: "ls", Confidence: 0.9, Safe: true}}
	svc.Translator = translator

	if _, err := svc.Resolve(domain.ResolveRequest{Phrase: "do something inscrutable", TimeoutSeconds: 5}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if translator.deadline.IsZero() {
		t.Fatalf("translator context carried no deadline")
	}
	if remaining := time.Until(translator.deadline); remaining > 5*time.Second {
		t.Fatalf("deadline too far out: %v", remaining)
	}
}

func TestResolveSafetyEvaluatorAnnotates(t *testing.T) {
	svc, direct, _, _ := newTestResolver()
	direct.entries["wipe the disk"] = domain.CommandEntry{
		Phrase: "wipe the disk", Command: "dd if=/dev/zero of=/dev/sda", Confidence: 0.9,
	}
	svc.Safety = stubSafety{flagged: "dd if="}

	res, err := svc.Resolve(domain.ResolveRequest{Phrase: "wipe the disk"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Safe {
		t.Fatalf("expected flagged resolution")
	}
}

func TestAddCustomCommandMarksEntryCustom(t *testing.T) {
	svc, direct, _, _ := newTestResolver()

	if err := svc.AddCustomCommand("deploy it", "make deploy", "Runs the deploy target", 0.95, false); err != nil {
		t.Fatalf("AddCustomCommand: %v", err)
	}
	entry := direct.added[0]
	if !entry.IsCustom || entry.Category != domain.CategoryCustom {
		t.Fatalf("entry not marked custom: %+v", entry)
	}
}

type stubTypo struct {
	corrections map[string]string
}

func (s stubTypo) Correct(token string) string {
	if fixed, ok := s.corrections[token]; ok {
		return fixed
	}
	return token
}

func (s stubTypo) CorrectPhrase(phrase string) string {
	tokens := strings.Fields(phrase)
	for i, tok := range tokens {
		tokens[i] = s.Correct(tok)
	}
	return strings.Join(tokens, " ")
}

func (s stubTypo) IsKnownCommand(token string) bool {
	_, ok := s.corrections[token]
	return ok
}

type stubDirect struct {
	entries map[string]domain.CommandEntry
	added   []domain.CommandEntry
	lookups int
}

func (s *stubDirect) Lookup(phrase string) (domain.CommandEntry, bool) {
	s.lookups++
	entry, ok := s.entries[strings.ToLower(strings.TrimSpace(phrase))]
	return entry, ok
}

func (s *stubDirect) Add(entry domain.CommandEntry, overwrite bool) error {
	s.added = append(s.added, entry)
	return nil
}

func (s *stubDirect) Remove(phrase string) bool {
	_, ok := s.entries[phrase]
	delete(s.entries, phrase)
	return ok
}

func (s *stubDirect) Suggest(partial string, limit int) []string { return nil }

type stubFuzzy struct {
	cand  domain.MatchCandidate
	ok    bool
	calls int
}

func (s *stubFuzzy) Match(phrase string) (domain.MatchCandidate, bool) {
	s.calls++
	return s.cand, s.ok
}

type stubCache struct {
	entries map[string]*domain.CacheEntry
	gets    int
	puts    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string]*domain.CacheEntry{}}
}

func (s *stubCache) key(phrase, platform string) string {
	return strings.ToLower(strings.TrimSpace(phrase)) + "|" + platform
}

func (s *stubCache) Get(phrase, platform string) (domain.CacheEntry, bool) {
	s.gets++
	entry, ok := s.entries[s.key(phrase, platform)]
	if !ok {
		return domain.CacheEntry{}, false
	}
	entry.UseCount++
	entry.LastUsedAt = time.Now()
	return *entry, true
}

func (s *stubCache) Put(phrase, platform string, res domain.Resolution) {
	s.puts++
	s.entries[s.key(phrase, platform)] = &domain.CacheEntry{
		Key:      s.key(phrase, platform),
		Phrase:   phrase,
		Platform: platform,
		Command:  res.Command,
		UseCount: 1,
	}
}

func (s *stubCache) Popular(limit int) []domain.CacheEntry { return nil }
func (s *stubCache) Stats() domain.CacheStats              { return domain.CacheStats{} }
func (s *stubCache) Clear() error                          { return nil }

func (s *stubCache) useCount(phrase, platform string) int {
	if entry, ok := s.entries[s.key(phrase, platform)]; ok {
		return entry.UseCount
	}
	return 0
}

type stubTranslator struct {
	result   domain.TranslationResult
	err      error
	calls    int
	deadline time.Time
}

func (s *stubTranslator) Name() string { return "stub" }

func (s *stubTranslator) Translate(ctx context.Context, phrase string, platform domain.PlatformContext) (domain.TranslationResult, error) {
	s.calls++
	if d, ok := ctx.Deadline(); ok {
		s.deadline = d
	}
	return s.result, s.err
}

type stubSafety struct {
	flagged string
}

func (s stubSafety) Evaluate(command string) (bool, []string) {
	if s.flagged != "" && strings.Contains(command, s.flagged) {
		return false, []string{"matches a danger pattern"}
	}
	return true, nil
}

var _ ports.Translator = (*stubTranslator)(nil)
