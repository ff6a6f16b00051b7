// Package anthropic provides a labelai.Analyzer implementation backed by the
// Anthropic messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/labelai"
	"labelchecker/pkg/serrors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public Anthropic API endpoint.
const DefaultBaseURL = "https://api.anthropic.com"

const apiVersion = "2023-06-01"

// Client talks to the Anthropic REST API and fulfills the labelai.Analyzer
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
}

// ParseRateLimit extracts the request rate-limit information from the
// Anthropic response headers. Missing headers yield a zero status.
func ParseRateLimit(h http.Header, now time.Time) (labelai.RateLimitStatus, error) {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}
	rl := labelai.RateLimitStatus{
		Limit:     atoi(h.Get("anthropic-ratelimit-requests-limit")),
		Remaining: atoi(h.Get("anthropic-ratelimit-requests-remaining")),
	}

	if resetStr := h.Get("anthropic-ratelimit-requests-reset"); resetStr != "" {
		resetAt, err := time.Parse(time.RFC3339, resetStr)
		if err != nil {
			return labelai.RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
		}
		rl.ResetAt = resetAt
	}
	if rl.ResetAt.IsZero() {
		if secs := atoi(h.Get("retry-after")); secs > 0 {
			rl.ResetAt = now.Add(time.Duration(secs) * time.Second)
		}
	}

	return rl, nil
}

// Analyze sends the label image to the messages endpoint and parses the model
// answer into a compliance report.
func (c *Client) Analyze(ctx context.Context, in labelai.Input) (*domain.ComplianceReport, labelai.RateLimitStatus, error) {
	// https://docs.anthropic.com/en/api/messages
	body := labelai.NewClaudeRequest(in, c.maxTokens)
	body.Model = c.model
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, labelai.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, labelai.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, labelai.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header, time.Now())
	if err != nil {
		return nil, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rl, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", errorMessage(b))
	case resp.StatusCode == 529 || resp.StatusCode == http.StatusServiceUnavailable:
		return nil, rl, serrors.With(serrors.ErrUnavailable, "model overloaded: %s", errorMessage(b))
	case resp.StatusCode == http.StatusBadRequest:
		return nil, rl, serrors.With(serrors.ErrBadRequest, "request rejected: %s", errorMessage(b))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, rl, fmt.Errorf("analyze failed with status %d: %s", resp.StatusCode, errorMessage(b))
	}

	// successful
	var out labelai.ClaudeResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, rl, fmt.Errorf("could not decode response: %w", err)
	}
	model := out.Model
	if model == "" {
		model = c.model
	}
	report, err := labelai.ParseReport(out.Text(), in, model)
	if err != nil {
		return nil, rl, fmt.Errorf("could not parse report: %w", err)
	}

	return report, rl, nil
}

// errorMessage pulls error.message out of an API error body, falling back to the raw body.
func errorMessage(b []byte) string {
	var e struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(b, &e); err == nil && e.Error.Message != "" {
		return e.Error.Type + ": " + e.Error.Message
	}

	return strings.TrimSpace(string(b))
}

// Ensure Client conforms to the labelai.Analyzer interface at compile time.
var _ labelai.Analyzer = (*Client)(nil)

// Options configures the client.
type Options struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
}

// New constructs a Client that uses the provided http.Client to interact
// with the Anthropic API.
func New(httpClient *http.Client, opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     opts.APIKey,
		model:      opts.Model,
		maxTokens:  maxTokens,
	}
}
