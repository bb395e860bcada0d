package ai

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// Factory builds translators from model definitions. One shared HTTP client
// backs every translator; per-call deadlines come from the request context.
type Factory struct {
	httpClient *http.Client
}

func NewFactory() *Factory {
	return &Factory{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
	}
}

// ForModel returns the translator for a configured model. An endpoint that
// matches no known wire shape is unavailable, not approximated.
func (f *Factory) ForModel(model domain.ModelDefinition) (ports.Translator, error) {
	switch inferProviderKind(model.Endpoint, model.Name) {
	case domain.ProviderKindAnthropic:
		return newHTTPTranslator("anthropic", model, f.httpClient, anthropicAdapter()), nil
	case domain.ProviderKindOpenAI:
		return newHTTPTranslator("openai", model, f.httpClient, openaiAdapter()), nil
	case domain.ProviderKindOllama:
		return newHTTPTranslator("ollama", model, f.httpClient, ollamaAdapter()), nil
	default:
		return nil, fmt.Errorf("%w: no provider for model %q (endpoint %q)",
			domain.ErrCollaboratorUnavailable, model.Name, model.Endpoint)
	}
}

func inferProviderKind(endpoint string, name string) domain.ProviderKind {
	nameLower := strings.ToLower(name)

	switch {
	case strings.Contains(endpoint, "anthropic.com"):
		return domain.ProviderKindAnthropic
	case strings.Contains(endpoint, "openai.com"):
		return domain.ProviderKindOpenAI
	case strings.Contains(nameLower, "ollama"), strings.Contains(endpoint, "11434"), strings.Contains(endpoint, "localhost"), strings.Contains(endpoint, "127.0.0.1"):
		return domain.ProviderKindOllama
	default:
		return domain.ProviderKindUnknown
	}
}
