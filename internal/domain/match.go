package domain

// Algorithm is the closed set of fuzzy matcher kinds. Keeping it an enum (and
// sizing the weight table off it) avoids stringly-typed weight lookups.
type Algorithm int

const (
	AlgorithmDistance Algorithm = iota
	AlgorithmSemantic
	AlgorithmPhonetic
	AlgorithmIntent
	algorithmCount
)

// AlgorithmCount is the number of matcher kinds, for weight table sizing.
const AlgorithmCount = int(algorithmCount)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmDistance:
		return "distance"
	case AlgorithmSemantic:
		return "semantic"
	case AlgorithmPhonetic:
		return "phonetic"
	case AlgorithmIntent:
		return "intent"
	default:
		return "unknown"
	}
}

// MatchCandidate is one matcher's proposal for an input phrase. Score is the
// raw, unweighted similarity in [0,1]; Method carries matcher-specific detail
// such as the matched descriptor or intent name.
type MatchCandidate struct {
	Command    string
	Score      float64
	Algorithm  Algorithm
	Method     string
	Descriptor string
}

// MatcherWeights maps each algorithm to its fixed combination weight.
// The values mirror the tuning of the original resolver and are deliberately
// configurable constants; see DefaultMatcherWeights.
type MatcherWeights [AlgorithmCount]float64

// DefaultMatcherWeights returns the standard weight table.
func DefaultMatcherWeights() MatcherWeights {
	return MatcherWeights{
		AlgorithmDistance: 0.30,
		AlgorithmSemantic: 0.40,
		AlgorithmPhonetic: 0.15,
		AlgorithmIntent:   0.15,
	}
}

// LearnedSuggestion is an advisory association recalled from past accepted
// matches for a pattern key.
type LearnedSuggestion struct {
	Command    string
	Confidence float64
	UseCount   int
}
