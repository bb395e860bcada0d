package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/doeshing/nlsh-go/internal/domain"
)

func unixPlatform() domain.PlatformContext {
	return domain.PlatformContext{Platform: "unix", Shell: "bash", OSName: "linux", Architecture: "amd64"}
}

func chatResponse(content string) string {
	return `{"choices":[{"message":{"content":` + jsonQuote(content) + `}}]}`
}

func jsonQuote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, s[i])
		}
	}
	return string(append(out, '"'))
}

func newTestTranslator(t *testing.T, handler http.HandlerFunc) *httpTranslator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	model := domain.ModelDefinition{Name: "test-ollama", Endpoint: server.URL, ModelID: "llama3"}
	return newHTTPTranslator("ollama", model, server.Client(), ollamaAdapter()).(*httpTranslator)
}

func TestTranslateParsesStructuredAnswer(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Write([]byte(chatResponse(`{"command":"ls -la","explanation":"lists files","confidence":0.9,"safe":true}`)))
	})

	result, err := tr.Translate(context.Background(), "list files", unixPlatform())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if result.Command != "ls -la" {
		t.Fatalf("Command = %q, want %q", result.Command, "ls -la")
	}
	if result.Confidence != 0.9 || !result.Safe {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestTranslateAcceptsFencedJSON(t *testing.T) {
	content := "Here you go:\n```json\n{\"command\":\"df -h\",\"explanation\":\"disk usage\",\"confidence\":0.8,\"safe\":true}\n```"
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatResponse(content)))
	})

	result, err := tr.Translate(context.Background(), "disk usage", unixPlatform())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if result.Command != "df -h" {
		t.Fatalf("Command = %q, want %q", result.Command, "df -h")
	}
}

func TestTranslateMalformedAnswer(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatResponse("sure, try running ls")))
	})

	_, err := tr.Translate(context.Background(), "list files", unixPlatform())
	if !errors.Is(err, domain.ErrCollaboratorMalformed) {
		t.Fatalf("err = %v, want ErrCollaboratorMalformed", err)
	}
}

func TestTranslateEmptyCommandIsMalformed(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatResponse(`{"command":"","explanation":"","confidence":0,"safe":true}`)))
	})

	_, err := tr.Translate(context.Background(), "gibberish", unixPlatform())
	if !errors.Is(err, domain.ErrCollaboratorMalformed) {
		t.Fatalf("err = %v, want ErrCollaboratorMalformed", err)
	}
}

func TestTranslateServerErrorIsUnavailable(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, err := tr.Translate(context.Background(), "list files", unixPlatform())
	if !errors.Is(err, domain.ErrCollaboratorUnavailable) {
		t.Fatalf("err = %v, want ErrCollaboratorUnavailable", err)
	}
}

func TestTranslateHonorsContextDeadline(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := tr.Translate(ctx, "list files", unixPlatform())
	if !errors.Is(err, domain.ErrCollaboratorTimeout) {
		t.Fatalf("err = %v, want ErrCollaboratorTimeout", err)
	}
}

func TestTranslateMissingCredentialIsUnavailable(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	model := domain.ModelDefinition{Name: "claude", Endpoint: "https://api.anthropic.com/v1/messages"}
	tr := newHTTPTranslator("anthropic", model, http.DefaultClient, anthropicAdapter())

	_, err := tr.Translate(context.Background(), "list files", unixPlatform())
	if !errors.Is(err, domain.ErrCollaboratorUnavailable) {
		t.Fatalf("err = %v, want ErrCollaboratorUnavailable", err)
	}
}

func TestFactoryInfersProviderKind(t *testing.T) {
	factory := NewFactory()

	cases := []struct {
		endpoint string
		name     string
		want     string
	}{
		{"https://api.anthropic.com/v1/messages", "claude", "anthropic"},
		{"https://api.openai.com/v1/chat/completions", "gpt", "openai"},
		{"http://localhost:11434/v1/chat/completions", "local", "ollama"},
	}
	for _, tc := range cases {
		translator, err := factory.ForModel(domain.ModelDefinition{Name: tc.name, Endpoint: tc.endpoint})
		if err != nil {
			t.Fatalf("ForModel(%s): %v", tc.endpoint, err)
		}
		if translator.Name() != tc.want {
			t.Fatalf("Name() = %q, want %q", translator.Name(), tc.want)
		}
	}
}

func TestFactoryRejectsUnknownEndpoint(t *testing.T) {
	factory := NewFactory()
	_, err := factory.ForModel(domain.ModelDefinition{Name: "mystery", Endpoint: "https://example.com/api"})
	if !errors.Is(err, domain.ErrCollaboratorUnavailable) {
		t.Fatalf("err = %v, want ErrCollaboratorUnavailable", err)
	}
}

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"noise {\"a\":{\"b\":2}} trailing", `{"a":{"b":2}}`},
		{`{"s":"br{ace}"}`, `{"s":"br{ace}"}`},
		{"no object here", ""},
		{`{"unterminated":`, ""},
	}
	for _, tc := range cases {
		if got := extractJSONObject(tc.in); got != tc.want {
			t.Fatalf("extractJSONObject(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
