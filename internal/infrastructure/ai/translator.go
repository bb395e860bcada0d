// Package ai adapts external model APIs into the Translator port. The
// collaborator is asked for a strict JSON answer; anything it sends that
// cannot be decoded into a TranslationResult is a malformed-response error,
// never a guess.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

type httpTranslator struct {
	name       string
	model      domain.ModelDefinition
	httpClient *http.Client
	adapter    providerAdapter
}

type providerAdapter struct {
	buildRequest  func(domain.ModelDefinition, []promptMessage) ([]byte, error)
	parseResponse func([]byte) (string, error)
	setHeaders    func(*http.Request, domain.ModelDefinition) error
}

func newHTTPTranslator(name string, model domain.ModelDefinition, client *http.Client, adapter providerAdapter) ports.Translator {
	return &httpTranslator{
		name:       name,
		model:      model,
		httpClient: client,
		adapter:    adapter,
	}
}

func (t *httpTranslator) Name() string {
	return t.name
}

// Translate performs a single request to the collaborator. It never retries;
// the caller owns the timeout through ctx.
func (t *httpTranslator) Translate(ctx context.Context, phrase string, platform domain.PlatformContext) (domain.TranslationResult, error) {
	messages := buildMessages(phrase, platform)

	requestBody, err := t.adapter.buildRequest(t.model, messages)
	if err != nil {
		return domain.TranslationResult{}, fmt.Errorf("%s: build request: %w", t.name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.model.Endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return domain.TranslationResult{}, fmt.Errorf("%s: %w", t.name, err)
	}
	httpReq.Header.Set("content-type", "application/json")
	if err := t.adapter.setHeaders(httpReq, t.model); err != nil {
		return domain.TranslationResult{}, fmt.Errorf("%s: %w: %v", t.name, domain.ErrCollaboratorUnavailable, err)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.TranslationResult{}, fmt.Errorf("%s: %w", t.name, domain.ErrCollaboratorTimeout)
		}
		return domain.TranslationResult{}, fmt.Errorf("%s: %w: %v", t.name, domain.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return domain.TranslationResult{}, fmt.Errorf("%s: %w: %s", t.name, domain.ErrCollaboratorUnavailable, resp.Status)
	}

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return domain.TranslationResult{}, fmt.Errorf("%s: %w: %v", t.name, domain.ErrCollaboratorMalformed, err)
	}

	content, err := t.adapter.parseResponse(responseBody.Bytes())
	if err != nil {
		return domain.TranslationResult{}, fmt.Errorf("%s: %w: %v", t.name, domain.ErrCollaboratorMalformed, err)
	}

	result, err := parseTranslation(content)
	if err != nil {
		return domain.TranslationResult{}, fmt.Errorf("%s: %w: %v", t.name, domain.ErrCollaboratorMalformed, err)
	}
	return result, nil
}

// parseTranslation decodes the model's answer. The JSON object may be wrapped
// in a code fence or surrounded by prose; the first balanced object is taken.
func parseTranslation(content string) (domain.TranslationResult, error) {
	payload := extractJSONObject(content)
	if payload == "" {
		return domain.TranslationResult{}, errors.New("no JSON object in response")
	}

	var result domain.TranslationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return domain.TranslationResult{}, err
	}
	result.Command = strings.TrimSpace(result.Command)
	if result.Command == "" {
		return domain.TranslationResult{}, errors.New("response carried no command")
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		return domain.TranslationResult{}, fmt.Errorf("confidence %v out of range", result.Confidence)
	}
	return result, nil
}

func extractJSONObject(content string) string {
	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return content[start : i+1]
			}
		}
	}
	return ""
}

func anthropicAdapter() providerAdapter {
	return providerAdapter{
		buildRequest:  buildAnthropicRequest,
		parseResponse: parseAnthropicResponse,
		setHeaders:    setAnthropicHeaders,
	}
}

func openaiAdapter() providerAdapter {
	return providerAdapter{
		buildRequest:  buildChatCompletionRequest,
		parseResponse: parseChatCompletionResponse,
		setHeaders:    setOpenAIHeaders,
	}
}

func ollamaAdapter() providerAdapter {
	return providerAdapter{
		buildRequest:  buildChatCompletionRequest,
		parseResponse: parseChatCompletionResponse,
		setHeaders:    setOllamaHeaders,
	}
}

func buildAnthropicRequest(model domain.ModelDefinition, messages []promptMessage) ([]byte, error) {
	systemPrompt, chatMessages := splitSystemMessages(messages)

	request := map[string]interface{}{
		"model":      defaultString(model.ModelID, "claude-3-5-sonnet-20240620"),
		"max_tokens": defaultInt(model.MaxTokens, 1024),
		"messages":   chatMessages,
	}
	if systemPrompt != "" {
		request["system"] = systemPrompt
	}
	return json.Marshal(request)
}

func splitSystemMessages(messages []promptMessage) (string, []map[string]interface{}) {
	var systemLines []string
	var chatMessages []map[string]interface{}

	for _, msg := range messages {
		if strings.EqualFold(msg.Role, "system") {
			systemLines = append(systemLines, msg.Content)
			continue
		}
		chatMessages = append(chatMessages, map[string]interface{}{
			"role": msg.Role,
			"content": []map[string]string{
				{"type": "text", "text": msg.Content},
			},
		})
	}
	return strings.TrimSpace(strings.Join(systemLines, "\n")), chatMessages
}

func parseAnthropicResponse(body []byte) (string, error) {
	var response struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Content) == 0 {
		return "", errors.New("empty content")
	}
	return response.Content[0].Text, nil
}

func setAnthropicHeaders(req *http.Request, model domain.ModelDefinition) error {
	apiKey := getEnv(model.AuthEnvVar, "ANTHROPIC_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s or ANTHROPIC_API_KEY", model.AuthEnvVar)
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	return nil
}

func buildChatCompletionRequest(model domain.ModelDefinition, messages []promptMessage) ([]byte, error) {
	chatMessages := make([]map[string]string, 0, len(messages))
	for _, msg := range messages {
		chatMessages = append(chatMessages, map[string]string{
			"role":    strings.ToLower(msg.Role),
			"content": msg.Content,
		})
	}

	request := map[string]interface{}{
		"model":    model.ModelID,
		"messages": chatMessages,
	}
	if model.MaxTokens > 0 {
		request["max_tokens"] = model.MaxTokens
	}
	return json.Marshal(request)
}

func parseChatCompletionResponse(body []byte) (string, error) {
	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", errors.New("empty choices")
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

func setOpenAIHeaders(req *http.Request, model domain.ModelDefinition) error {
	apiKey := getEnv(model.AuthEnvVar, "OPENAI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s or OPENAI_API_KEY", model.AuthEnvVar)
	}
	req.Header.Set("authorization", "Bearer "+apiKey)
	return nil
}

func setOllamaHeaders(req *http.Request, model domain.ModelDefinition) error {
	return nil
}

func getEnv(primary, fallback string) string {
	if primary != "" {
		if value := os.Getenv(primary); value != "" {
			return value
		}
	}
	if fallback != "" {
		return os.Getenv(fallback)
	}
	return ""
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
