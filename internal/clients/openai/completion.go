package openai

import (
	"context"
	"errors"
	"fmt"

	"bizdesk-server/internal/observability"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultModel = openai.ChatModelGPT4oMini

// CompletionClient sends single-turn chat completions.
type CompletionClient struct {
	client openai.Client
	model  string
	logger *observability.Logger
}

func NewCompletionClient(apiKey, model string, logger *observability.Logger) (*CompletionClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if model == "" {
		model = string(DefaultModel)
	}
	return &CompletionClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logger,
	}, nil
}

func (c *CompletionClient) Name() string {
	return "openai"
}

func (c *CompletionClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(0.3),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to create chat completion", err)
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}
