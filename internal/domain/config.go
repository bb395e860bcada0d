package domain

// Config mirrors ~/.nlsh/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Preferences         Preferences       `yaml:"preferences"`
	Resolver            ResolverSettings  `yaml:"resolver"`
	Cache               CacheSettings     `yaml:"cache"`
	Models              []ModelDefinition `yaml:"models"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultModel   string  `yaml:"default_model"`
	TimeoutSeconds float64 `yaml:"timeout"`
	OfflineOnly    bool    `yaml:"offline_only"`
	Language       string  `yaml:"language"`
}

// ResolverSettings tunes the local matching tiers.
type ResolverSettings struct {
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`
	SuggestLimit   int     `yaml:"suggest_limit"`
	MaxPhraseLen   int     `yaml:"max_phrase_length"`
}

// CacheSettings controls the translation cache store.
type CacheSettings struct {
	Persist    bool `yaml:"persist"`
	MaxEntries int  `yaml:"max_entries"`
}

// ModelDefinition describes an AI collaborator endpoint declared in the
// config file.
type ModelDefinition struct {
	Name       string `yaml:"name"`
	Endpoint   string `yaml:"endpoint"`
	AuthEnvVar string `yaml:"auth_env_var"`
	ModelID    string `yaml:"model_id"`
	MaxTokens  int    `yaml:"max_tokens"`
}

// ProviderKind classifies collaborator endpoints by wire shape.
type ProviderKind string

const (
	ProviderKindAnthropic ProviderKind = "anthropic"
	ProviderKindOpenAI    ProviderKind = "openai"
	ProviderKindOllama    ProviderKind = "ollama"
	ProviderKindUnknown   ProviderKind = "unknown"
)
