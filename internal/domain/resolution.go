// Package domain defines core business entities and value objects for NLSH.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures shared by the resolution pipeline.
package domain

import "context"

// Source identifies the pipeline tier that produced a resolution.
type Source string

const (
	SourceDirect Source = "direct"
	SourceFuzzy  Source = "fuzzy"
	SourceCache  Source = "cache"
	SourceAI     Source = "ai"
)

// FuzzySource builds the "fuzzy:<algorithm>" source tag for a winning matcher.
func FuzzySource(alg Algorithm) Source {
	return Source(string(SourceFuzzy) + ":" + alg.String())
}

// ResolveRequest captures user intent originating from CLI or shell integration.
type ResolveRequest struct {
	Context        context.Context
	Phrase         string
	Platform       PlatformContext
	TimeoutSeconds float64
	SkipAI         bool
	Debug          bool
}

// Resolution is the canonical result propagated back to the CLI.
// Source records the tier that answered and is part of the contract, not a
// rendering hint.
type Resolution struct {
	Command     string
	Explanation string
	Confidence  float64
	Source      Source
	Phrase      string
	Safe        bool
	RiskReasons []string
}

// TranslationResult is the structured answer from the external AI collaborator.
type TranslationResult struct {
	Command     string  `json:"command"`
	Explanation string  `json:"explanation"`
	Confidence  float64 `json:"confidence"`
	Safe        bool    `json:"safe"`
}

// PlatformContext carries the environment facts the resolver and the external
// collaborator need to pick platform-appropriate commands.
type PlatformContext struct {
	Platform     string // "unix" or "windows"
	Shell        string // bash, zsh, fish, powershell, cmd
	OSName       string // runtime.GOOS value
	Architecture string
}

// IsWindows reports whether the context describes a Windows-family platform.
func (p PlatformContext) IsWindows() bool {
	return p.Platform == "windows"
}

// ResolverService exposes the use-case boundary for resolving a phrase.
type ResolverService interface {
	Resolve(ResolveRequest) (Resolution, error)
}
