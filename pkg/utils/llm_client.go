package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	ProviderDashScope = "dashscope"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"

	DefaultDashScopeBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	DefaultDashScopeModel   = "qwen-turbo"
	DefaultGeminiModel      = "gemini-1.5-flash"
)

// GeneratorConfig is fixed at construction; generators never read the environment.
type GeneratorConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// ChatPrompt is a system instruction plus the user message.
type ChatPrompt struct {
	System string
	User   string
}

// TextGenerator returns raw completion text. Every failure is a *GenerationError.
type TextGenerator interface {
	Generate(ctx context.Context, prompt ChatPrompt) (string, error)
}

// NewTextGenerator picks the implementation for cfg.Provider.
func NewTextGenerator(cfg GeneratorConfig) (TextGenerator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderDashScope, ProviderOpenAI:
		return NewOpenAICompatibleGenerator(cfg), nil
	case ProviderGemini:
		return NewGeminiGenerator(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s. Use 'dashscope', 'openai' or 'gemini'", cfg.Provider)
	}
}

// OpenAICompatibleGenerator talks to any chat-completions endpoint, DashScope compatible mode included.
type OpenAICompatibleGenerator struct {
	cfg    GeneratorConfig
	client *openai.Client
}

func NewOpenAICompatibleGenerator(cfg GeneratorConfig) *OpenAICompatibleGenerator {
	if cfg.Model == "" {
		cfg.Model = DefaultDashScopeModel
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	return &OpenAICompatibleGenerator{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

func (g *OpenAICompatibleGenerator) Generate(ctx context.Context, prompt ChatPrompt) (string, error) {
	if g.cfg.APIKey == "" {
		return "", NewGenerationError(nil, "llm api key is not configured")
	}

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", NewGenerationError(err, "llm returned status %d", apiErr.HTTPStatusCode)
		}
		return "", NewGenerationError(err, "llm request failed")
	}

	if len(resp.Choices) == 0 {
		return "", NewGenerationError(nil, "llm response has no choices")
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", NewGenerationError(nil, "llm response content is empty")
	}
	return content, nil
}
