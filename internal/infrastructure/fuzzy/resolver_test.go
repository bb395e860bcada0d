package fuzzy

import (
	"testing"

	"github.com/doeshing/nlsh-go/internal/domain"
)

type stubMatcher struct {
	alg  domain.Algorithm
	cand domain.MatchCandidate
	err  error
}

func (s stubMatcher) Algorithm() domain.Algorithm { return s.alg }
func (s stubMatcher) Match(matchInput) (domain.MatchCandidate, error) {
	return s.cand, s.err
}

type panickyMatcher struct{}

func (panickyMatcher) Algorithm() domain.Algorithm { return domain.AlgorithmDistance }
func (panickyMatcher) Match(matchInput) (domain.MatchCandidate, error) {
	panic("boom")
}

func testResolver(matchers ...matcher) *Resolver {
	return &Resolver{
		threshold: domain.DefaultFuzzyThreshold,
		weights:   domain.DefaultMatcherWeights(),
		matchers:  matchers,
		learning:  NewMemoryLearningStore(),
	}
}

func TestCombinerPicksHighestWeightedScore(t *testing.T) {
	// distance 0.9 * 0.30 = 0.27; semantic 0.8 * 0.40 = 0.32 -> semantic wins
	// even though its raw score is lower.
	r := testResolver(
		stubMatcher{alg: domain.AlgorithmDistance, cand: domain.MatchCandidate{Command: "ls", Score: 0.9, Algorithm: domain.AlgorithmDistance}},
		stubMatcher{alg: domain.AlgorithmSemantic, cand: domain.MatchCandidate{Command: "ps aux", Score: 0.8, Algorithm: domain.AlgorithmSemantic}},
	)
	cand, ok := r.Match("show processes")
	if !ok {
		t.Fatal("expected a match")
	}
	if cand.Command != "ps aux" {
		t.Fatalf("Command = %q, want ps aux (weighted winner)", cand.Command)
	}
	if cand.Score != 0.8 {
		t.Fatalf("Score = %v, want the unweighted 0.8", cand.Score)
	}
	if cand.Algorithm != domain.AlgorithmSemantic {
		t.Fatalf("Algorithm = %v, want semantic", cand.Algorithm)
	}
}

func TestCombinerTreatsErrorsAsMisses(t *testing.T) {
	r := testResolver(
		stubMatcher{alg: domain.AlgorithmDistance, err: errNoCandidate},
		stubMatcher{alg: domain.AlgorithmPhonetic, cand: domain.MatchCandidate{Command: "ping", Score: 0.75, Algorithm: domain.AlgorithmPhonetic}},
	)
	cand, ok := r.Match("ping host")
	if !ok || cand.Command != "ping" {
		t.Fatalf("expected phonetic fallback, got ok=%v cand=%+v", ok, cand)
	}
}

func TestCombinerSurvivesPanickingMatcher(t *testing.T) {
	r := testResolver(
		panickyMatcher{},
		stubMatcher{alg: domain.AlgorithmSemantic, cand: domain.MatchCandidate{Command: "free -h", Score: 0.8, Algorithm: domain.AlgorithmSemantic}},
	)
	cand, ok := r.Match("memory usage")
	if !ok || cand.Command != "free -h" {
		t.Fatalf("panicking matcher must not abort the combination, got ok=%v cand=%+v", ok, cand)
	}
}

func TestCombinerAllMiss(t *testing.T) {
	r := testResolver(
		stubMatcher{alg: domain.AlgorithmDistance, err: errNoCandidate},
		stubMatcher{alg: domain.AlgorithmSemantic, err: errNoCandidate},
	)
	if _, ok := r.Match("anything"); ok {
		t.Fatal("expected overall miss")
	}
}

func TestEmptyInputMissesWithoutInvokingMatchers(t *testing.T) {
	called := false
	probe := matcherFunc(func(matchInput) (domain.MatchCandidate, error) {
		called = true
		return domain.MatchCandidate{}, errNoCandidate
	})
	r := testResolver(probe)
	if _, ok := r.Match("   "); ok {
		t.Fatal("expected miss for whitespace input")
	}
	if called {
		t.Fatal("matchers must not run for empty input")
	}
}

type matcherFunc func(matchInput) (domain.MatchCandidate, error)

func (matcherFunc) Algorithm() domain.Algorithm { return domain.AlgorithmDistance }
func (f matcherFunc) Match(in matchInput) (domain.MatchCandidate, error) {
	return f(in)
}

func TestAcceptedMatchIsLearned(t *testing.T) {
	r := NewResolver(Options{})
	phrase := "lst fles"
	if _, ok := r.Match(phrase); !ok {
		t.Fatal("expected a fuzzy match for lst fles")
	}
	learned := r.LearnedSuggestions(phrase, domain.DefaultLearnedLimit)
	if len(learned) == 0 {
		t.Fatal("accepted match must be recorded")
	}
	if learned[0].Command != "ls" || learned[0].UseCount != 1 {
		t.Fatalf("learned = %+v", learned[0])
	}
}

func TestLearningStorePrefersUseCountThenConfidence(t *testing.T) {
	s := NewMemoryLearningStore()
	s.Record("list files", "ls", 0.8)
	s.Record("list files", "ls", 0.75) // count 2, confidence stays 0.8
	s.Record("list files", "ls -la", 0.95)

	got := s.Query("files list", 2)
	if len(got) != 2 {
		t.Fatalf("Query returned %d entries, want 2", len(got))
	}
	if got[0].Command != "ls" || got[0].UseCount != 2 || got[0].Confidence != 0.8 {
		t.Fatalf("first = %+v, want ls count=2 conf=0.8", got[0])
	}
	if got[1].Command != "ls -la" {
		t.Fatalf("second = %+v, want ls -la", got[1])
	}
}

func TestNewResolverDefaults(t *testing.T) {
	r := NewResolver(Options{})
	if r.threshold != domain.DefaultFuzzyThreshold {
		t.Fatalf("threshold = %v", r.threshold)
	}
	if r.weights != domain.DefaultMatcherWeights() {
		t.Fatalf("weights = %v", r.weights)
	}
	if len(r.matchers) != domain.AlgorithmCount {
		t.Fatalf("matcher count = %d, want %d", len(r.matchers), domain.AlgorithmCount)
	}
}
