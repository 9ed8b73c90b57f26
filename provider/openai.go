package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/contextbridge/idiomate"
)

// OpenAIProvider implements Provider using OpenAI's API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a single text using OpenAI.
func (p *OpenAIProvider) Translate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: req.Text},
		},
		Temperature: p.temperature,
	})
	if err != nil {
		return "", &idiomate.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &idiomate.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildSystemPrompt(req Request) string {
	sourceName := idiomate.GetLanguageName(req.SourceLang)
	targetName := idiomate.GetLanguageName(req.TargetLang)

	return fmt.Sprintf(`# Role
You are an expert native translator. You translate %s text to %s with the fluency of a highly educated native speaker.

# Task
Translate the provided text into %s.

# Rules
- Reply with ONLY the translation. No explanations, no quotes, no Markdown.
- Write the output in the native script of %s.
- Translate the text exactly as given; do not add or drop content.
- Preserve meaningful punctuation.`,
		sourceName, targetName, targetName, targetName)
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
