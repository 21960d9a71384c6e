package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// Client wraps the Gemini API with an ordered model fallback: each prompt is
// tried against the configured models in order and the first non-error
// response wins. There is no retry or backoff on a model that failed.
type Client struct {
	api    *genai.Client
	models []string
	logger *slog.Logger
}

func NewClient(ctx context.Context, apiKey string, models []string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("genai: API key is required")
	}
	if len(models) == 0 {
		return nil, errors.New("genai: at least one model must be configured")
	}

	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai: create client: %w", err)
	}

	return &Client{api: api, models: models, logger: logger}, nil
}

// Generate sends the prompt to each configured model in order and returns
// the first successful response text along with the model that produced it.
func (c *Client) Generate(ctx context.Context, prompt string) (text string, model string, err error) {
	var lastErr error
	for _, m := range c.models {
		resp, err := c.api.Models.GenerateContent(ctx, m, genai.Text(prompt), nil)
		if err != nil {
			c.logger.WarnContext(ctx, "model request failed, trying next",
				slog.String("model", m),
				slog.String("error", err.Error()))
			lastErr = err
			continue
		}
		return resp.Text(), m, nil
	}
	return "", "", fmt.Errorf("genai: all models failed: %w", lastErr)
}
