package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/emojisense/emojisense-backend/internal/common"
	"github.com/emojisense/emojisense-backend/internal/config"
	"github.com/emojisense/emojisense-backend/pkg/logger"
)

// ModelClient is the outbound boundary to the external model API.
type ModelClient interface {
	// Complete sends one system+user exchange and returns the raw reply
	// text. Errors are classified as KindConfig, KindUpstreamTransient,
	// or KindUpstreamPermanent.
	Complete(ctx context.Context, system, user string) (string, error)
}

// openAIModelClient implements ModelClient over the OpenAI-compatible
// chat completions API, with a small fixed retry budget for transient
// failures.
type openAIModelClient struct {
	client      *openai.Client
	model       string
	maxAttempts int
	retryDelay  time.Duration
}

// NewModelClient creates a ModelClient from config. A missing API key is
// allowed here; every call then fails with a configuration error before
// any network I/O.
func NewModelClient(cfg config.ModelConfig) ModelClient {
	var client *openai.Client
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout()}
		client = openai.NewClientWithConfig(clientCfg)
	}

	return &openAIModelClient{
		client:      client,
		model:       cfg.Name,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay(),
	}
}

// Complete calls the chat completions endpoint, retrying rate-limit and
// server-side failures up to maxAttempts with a fixed delay.
func (c *openAIModelClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c.client == nil {
		return "", common.NewAppError(common.KindConfig, "model API key is not configured", nil)
	}

	req := openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: 1024,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
				return "", common.NewAppError(common.KindParse, "model reply contains no text", nil)
			}
			return resp.Choices[0].Message.Content, nil
		}

		classified := classifyUpstreamError(err)
		if common.KindOf(classified) != common.KindUpstreamTransient {
			return "", classified
		}

		lastErr = classified
		if attempt < c.maxAttempts {
			logger.Warn("model: transient failure (attempt %d/%d): %v", attempt, c.maxAttempts, err)
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return "", common.NewAppError(common.KindUpstreamTransient, "model call cancelled", ctx.Err())
			}
		}
	}

	return "", lastErr
}

// classifyUpstreamError maps an API failure to transient (retryable) or
// permanent. Rate limits and 5xx are transient; auth and bad-request are
// permanent; transport-level failures are treated as transient.
func classifyUpstreamError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return common.NewAppError(common.KindUpstreamTransient, "model API rate limited", err)
		case apiErr.HTTPStatusCode >= 500:
			return common.NewAppError(common.KindUpstreamTransient, "model API server error", err)
		default:
			return common.NewAppError(common.KindUpstreamPermanent, "model API rejected the request", err)
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500 {
			return common.NewAppError(common.KindUpstreamTransient, "model API server error", err)
		}
		return common.NewAppError(common.KindUpstreamPermanent, "model API rejected the request", err)
	}

	return common.NewAppError(common.KindUpstreamTransient, "model API unreachable", err)
}
