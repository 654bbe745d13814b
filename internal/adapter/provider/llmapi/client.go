// Package llmapi is an HTTP client for an OpenAI-compatible
// chat-completions endpoint with ordered API-key failover.
package llmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/somnia-backend/internal/config"
)

// ErrKeysExhausted is returned when every configured API key failed with
// a retryable error. It is distinguishable from validation failures,
// which never reach the network.
var ErrKeysExhausted = errors.New("llmapi: all api keys exhausted")

// Client calls the provider's chat-completions endpoint. Keys are tried
// strictly in order: each attempt runs to completion (response or
// network failure) before the next key is used; total latency is the
// sum of the attempts, not the minimum.
type Client struct {
	baseURL    string
	model      string
	keys       []string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from LLMConfig.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		keys:       cfg.APIKeys,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		log:        logger.With("adapter", "llmapi"),
	}
}

// CreateCompletion sends the messages to the provider and returns the
// generated text of the first choice.
//
// Failure classification per attempt:
//   - 429 and 5xx, network errors, and malformed success bodies are
//     retryable: the next key is tried.
//   - other client errors (bad request, invalid key semantics the
//     provider reports as 4xx) are terminal: returned immediately.
//
// When the key list is exhausted the error wraps ErrKeysExhausted.
func (c *Client) CreateCompletion(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("llmapi: no messages")
	}

	body, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("llmapi: marshal request: %w", err)
	}

	var lastErr error
	for i, key := range c.keys {
		if ctx.Err() != nil {
			return "", fmt.Errorf("llmapi: %w", ctx.Err())
		}

		text, retryable, err := c.attempt(ctx, key, body)
		if err == nil {
			return text, nil
		}
		if !retryable {
			c.log.ErrorContext(ctx, "llm request failed", slog.Int("key_index", i), slog.String("error", err.Error()))
			return "", err
		}

		c.log.WarnContext(ctx, "llm key failed, trying next",
			slog.Int("key_index", i),
			slog.String("error", err.Error()),
		)
		lastErr = err
	}

	return "", fmt.Errorf("%w (last error: %v)", ErrKeysExhausted, lastErr)
}

// attempt issues one request with one key. The second return value
// reports whether the failure allows falling through to the next key.
func (c *Client) attempt(ctx context.Context, key string, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("llmapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("llmapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("llmapi: read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", true, fmt.Errorf("llmapi: status %d: %s", resp.StatusCode, truncate(respBody, 256))
	default:
		return "", false, fmt.Errorf("llmapi: status %d: %s", resp.StatusCode, truncate(respBody, 256))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", true, fmt.Errorf("llmapi: decode json: %w", err)
	}
	if parsed.Error != nil {
		return "", true, fmt.Errorf("llmapi: provider error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", true, fmt.Errorf("llmapi: empty completion")
	}

	return parsed.Choices[0].Message.Content, false, nil
}

// truncate bounds a response body for log/error messages.
func truncate(b []byte, n int) string {
	s := string(b)
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
