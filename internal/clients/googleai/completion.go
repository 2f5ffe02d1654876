package googleai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bizdesk-server/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-1.5-flash"

// CompletionClient generates text with a Gemini model.
type CompletionClient struct {
	client *genai.Client
	model  string
	logger *observability.Logger
}

func NewCompletionClient(ctx context.Context, apiKey, model string, logger *observability.Logger) (*CompletionClient, error) {
	if apiKey == "" {
		return nil, errors.New("Google AI API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &CompletionClient{client: client, model: model, logger: logger}, nil
}

func (c *CompletionClient) Name() string {
	return "gemini"
}

func (c *CompletionClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.3)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.logger.Error(ctx, "failed to generate content", err)
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no candidates returned from Gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}

func (c *CompletionClient) Close() error {
	return c.client.Close()
}
