package fuzzy

import (
	"fmt"

	"github.com/doeshing/nlsh-go/internal/domain"
)

// distanceMatcher scores the input against command descriptors with a
// longest-common-subsequence similarity ratio.
type distanceMatcher struct {
	threshold   float64
	descriptors []commandDescriptor
}

func newDistanceMatcher(threshold float64) *distanceMatcher {
	return &distanceMatcher{threshold: threshold, descriptors: commandDescriptors}
}

func (m *distanceMatcher) Algorithm() domain.Algorithm {
	return domain.AlgorithmDistance
}

func (m *distanceMatcher) Match(in matchInput) (domain.MatchCandidate, error) {
	if in.Normalized == "" {
		return domain.MatchCandidate{}, errNoCandidate
	}

	best := domain.MatchCandidate{Algorithm: domain.AlgorithmDistance, Method: "lcs-ratio"}
	for _, desc := range m.descriptors {
		for _, text := range desc.Descriptions {
			ratio := sequenceRatio(in.Normalized, text)
			if ratio > best.Score {
				best.Score = ratio
				best.Command = desc.Command
				best.Descriptor = text
			}
		}
	}
	if best.Score < m.threshold {
		return domain.MatchCandidate{}, fmt.Errorf("%w: best %.2f below %.2f", errNoCandidate, best.Score, m.threshold)
	}
	return best, nil
}

// sequenceRatio is the normalized similarity 2*LCS(a,b) / (len(a)+len(b))
// computed over runes, in [0,1].
func sequenceRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	lcs := longestCommonSubsequence(ra, rb)
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// longestCommonSubsequence uses the classic DP with a rolling row, O(len(a))
// space.
func longestCommonSubsequence(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
		for j := range curr {
			curr[j] = 0
		}
	}
	return prev[len(b)]
}
