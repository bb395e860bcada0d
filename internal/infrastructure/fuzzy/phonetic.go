package fuzzy

import (
	"fmt"
	"strings"

	"github.com/doeshing/nlsh-go/internal/domain"
)

// phoneticMatcher compares consonant skeletons: vowels are stripped from both
// the input and a table of short sound-alike variants, then the skeletons are
// scored with the same sequence ratio the distance matcher uses.
type phoneticMatcher struct {
	threshold float64
	variants  []phoneticVariant
}

func newPhoneticMatcher(threshold float64) *phoneticMatcher {
	return &phoneticMatcher{threshold: threshold, variants: phoneticVariants}
}

func (m *phoneticMatcher) Algorithm() domain.Algorithm {
	return domain.AlgorithmPhonetic
}

func (m *phoneticMatcher) Match(in matchInput) (domain.MatchCandidate, error) {
	skeleton := stripVowels(in.Normalized)
	if skeleton == "" {
		return domain.MatchCandidate{}, errNoCandidate
	}

	best := domain.MatchCandidate{Algorithm: domain.AlgorithmPhonetic, Method: "consonant-skeleton"}
	for _, v := range m.variants {
		for _, variant := range v.Variants {
			ratio := sequenceRatio(skeleton, stripVowels(variant))
			if ratio > best.Score {
				best.Score = ratio
				best.Command = v.Command
				best.Descriptor = variant
			}
		}
	}
	if best.Score < m.threshold {
		return domain.MatchCandidate{}, fmt.Errorf("%w: best %.2f below %.2f", errNoCandidate, best.Score, m.threshold)
	}
	return best, nil
}

func stripVowels(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', ' ':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
