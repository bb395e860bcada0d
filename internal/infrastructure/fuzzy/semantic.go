package fuzzy

import (
	"fmt"

	"github.com/doeshing/nlsh-go/internal/domain"
)

// Weighting between keyword coverage and action-verb coverage inside one
// semantic group.
const (
	keywordWeight = 0.6
	actionWeight  = 0.4
)

// semanticMatcher scores word-set overlap between the input and predefined
// keyword/action groups, returning the best group's representative command.
type semanticMatcher struct {
	threshold float64
	groups    []semanticGroup
}

func newSemanticMatcher(threshold float64) *semanticMatcher {
	return &semanticMatcher{threshold: threshold, groups: semanticGroups}
}

func (m *semanticMatcher) Algorithm() domain.Algorithm {
	return domain.AlgorithmSemantic
}

func (m *semanticMatcher) Match(in matchInput) (domain.MatchCandidate, error) {
	if len(in.Tokens) == 0 {
		return domain.MatchCandidate{}, errNoCandidate
	}

	best := domain.MatchCandidate{Algorithm: domain.AlgorithmSemantic, Method: "keyword-overlap"}
	for _, g := range m.groups {
		score := keywordWeight*overlapRatio(in.TokenSet, g.Keywords) +
			actionWeight*overlapRatio(in.TokenSet, g.Actions)
		if score > best.Score {
			best.Score = score
			best.Command = g.Command
		}
	}
	if best.Score < m.threshold {
		return domain.MatchCandidate{}, fmt.Errorf("%w: best %.2f below %.2f", errNoCandidate, best.Score, m.threshold)
	}
	return best, nil
}

// overlapRatio is the share of the group's vocabulary present in the input
// word set, in [0,1]. The group side is the denominator so short focused
// inputs can still score a full overlap.
func overlapRatio(inputSet map[string]bool, vocabulary []string) float64 {
	if len(vocabulary) == 0 {
		return 0
	}
	hits := 0
	for _, w := range vocabulary {
		if inputSet[w] {
			hits++
		}
	}
	return float64(hits) / float64(len(vocabulary))
}
