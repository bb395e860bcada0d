// Package config loads and persists the YAML configuration file.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/nlsh-go/assets"
	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.nlsh/config.yaml (overridable
// via NLSH_CONFIG). The first load writes the default file so users have a
// template to edit.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. path overrides the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := writeDefault(path); err != nil {
				return domain.Config{}, err
			}
			return defaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path reports the config file location the loader resolves to.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("NLSH_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".nlsh", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

// writeDefault installs the embedded, commented template so the first-run
// file is editable documentation, not bare marshaled output.
func writeDefault(path string) error {
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Preferences: domain.Preferences{
			DefaultModel:   "claude-sonnet",
			TimeoutSeconds: 30,
			OfflineOnly:    false,
			Language:       "en",
		},
		Resolver: domain.ResolverSettings{
			FuzzyThreshold: domain.DefaultFuzzyThreshold,
			SuggestLimit:   domain.DefaultSuggestLimit,
			MaxPhraseLen:   domain.MaxPhraseLength,
		},
		Cache: domain.CacheSettings{
			Persist:    true,
			MaxEntries: domain.DefaultMaxCacheEntries,
		},
		Models: []domain.ModelDefinition{
			{
				Name:       "claude-sonnet",
				Endpoint:   "https://api.anthropic.com/v1/messages",
				AuthEnvVar: "ANTHROPIC_API_KEY",
				ModelID:    "claude-3-5-sonnet-20240620",
				MaxTokens:  1024,
			},
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Preferences.DefaultModel == "" && len(cfg.Models) > 0 {
		cfg.Preferences.DefaultModel = cfg.Models[0].Name
	}
	if cfg.Preferences.TimeoutSeconds == 0 {
		cfg.Preferences.TimeoutSeconds = 30
	}
	if cfg.Preferences.Language == "" {
		cfg.Preferences.Language = "en"
	}
	if cfg.Resolver.FuzzyThreshold == 0 {
		cfg.Resolver.FuzzyThreshold = domain.DefaultFuzzyThreshold
	}
	if cfg.Resolver.SuggestLimit == 0 {
		cfg.Resolver.SuggestLimit = domain.DefaultSuggestLimit
	}
	if cfg.Resolver.MaxPhraseLen == 0 {
		cfg.Resolver.MaxPhraseLen = domain.MaxPhraseLength
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = domain.DefaultMaxCacheEntries
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
