package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/nlsh-go/internal/domain"
)

func TestLoadWritesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigFormatVersion != "1" {
		t.Fatalf("ConfigFormatVersion = %q, want %q", cfg.ConfigFormatVersion, "1")
	}
	if cfg.Resolver.FuzzyThreshold != domain.DefaultFuzzyThreshold {
		t.Fatalf("FuzzyThreshold = %v, want %v", cfg.Resolver.FuzzyThreshold, domain.DefaultFuzzyThreshold)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file not written: %v", err)
	}
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `config_format_version: "1"
preferences:
  default_model: local-llama
  timeout: 10
  language: es
resolver:
  fuzzy_threshold: 0.8
cache:
  persist: false
models:
  - name: local-llama
    endpoint: http://localhost:11434/v1/chat/completions
    model_id: llama3
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preferences.DefaultModel != "local-llama" {
		t.Fatalf("DefaultModel = %q", cfg.Preferences.DefaultModel)
	}
	if cfg.Preferences.Language != "es" {
		t.Fatalf("Language = %q", cfg.Preferences.Language)
	}
	if cfg.Resolver.FuzzyThreshold != 0.8 {
		t.Fatalf("FuzzyThreshold = %v", cfg.Resolver.FuzzyThreshold)
	}
	if cfg.Cache.Persist {
		t.Fatalf("Persist = true, want false")
	}
}

func TestLoadHydratesMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `models:
  - name: only-model
    endpoint: https://api.openai.com/v1/chat/completions
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preferences.DefaultModel != "only-model" {
		t.Fatalf("DefaultModel = %q, want fallback to first model", cfg.Preferences.DefaultModel)
	}
	if cfg.Preferences.TimeoutSeconds != 30 {
		t.Fatalf("TimeoutSeconds = %v, want 30", cfg.Preferences.TimeoutSeconds)
	}
	if cfg.Resolver.MaxPhraseLen != domain.MaxPhraseLength {
		t.Fatalf("MaxPhraseLen = %d", cfg.Resolver.MaxPhraseLen)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("preferences: [broken"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestEnvOverrideResolvesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alt.yaml")
	t.Setenv("NLSH_CONFIG", path)

	loader := NewFileLoader("")
	if got := loader.Path(); got != path {
		t.Fatalf("Path() = %q, want %q", got, path)
	}
}
