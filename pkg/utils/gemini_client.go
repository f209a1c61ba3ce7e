package utils

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerator uses Google's Gemini models through the generative-ai-go SDK.
type GeminiGenerator struct {
	cfg  GeneratorConfig
	opts []option.ClientOption
}

func NewGeminiGenerator(cfg GeneratorConfig, opts ...option.ClientOption) *GeminiGenerator {
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	return &GeminiGenerator{cfg: cfg, opts: opts}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt ChatPrompt) (string, error) {
	if g.cfg.APIKey == "" {
		return "", NewGenerationError(nil, "gemini api key is not configured")
	}

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	opts := append([]option.ClientOption{option.WithAPIKey(g.cfg.APIKey)}, g.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", NewGenerationError(err, "create gemini client")
	}
	defer client.Close()

	model := client.GenerativeModel(g.cfg.Model)
	model.SetTemperature(g.cfg.Temperature)
	if g.cfg.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(g.cfg.MaxTokens))
	}
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(prompt.System)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt.User))
	if err != nil {
		return "", NewGenerationError(err, "gemini api call failed")
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", NewGenerationError(nil, "no content generated by gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", NewGenerationError(nil, "gemini response content is empty")
	}
	return sb.String(), nil
}
