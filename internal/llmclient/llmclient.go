// Package llmclient talks to an Ollama-style local generation endpoint
// using a context-aware HTTP client, with structured extraction helpers
// built on top of it.
package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"auros/internal/retry"
)

// Client issues generation requests against a local Ollama-compatible
// server, paced by a token-bucket limiter so a single scan can't overrun
// a shared Ollama instance.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New builds a Client targeting baseURL with the given default model,
// capped at requestsPerMinute outbound generation calls (a value of 0 or
// less disables pacing).
func New(baseURL, model string, requestsPerMinute int) *Client {
	var limiter *rate.Limiter
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1)
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		limiter: limiter,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate posts prompt to /api/generate and returns the raw "response"
// field, retried over transient HTTP/timeout errors.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Format: "json",
	})
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	var result generateResponse
	err = retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("llm endpoint returned %d: %w", resp.StatusCode, errServerError)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("llm endpoint returned %d: non-retryable", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, &result)
	}, isTransient, retry.DefaultAttempts, retry.DefaultBaseDelay)

	if err != nil {
		return "", err
	}
	return result.Response, nil
}

var errServerError = errors.New("llm endpoint server error")

func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, errServerError)
}
