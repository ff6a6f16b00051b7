// Package gemini provides a labelai.Analyzer backed by Google Gemini through
// the google.golang.org/genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/labelai"
	"labelchecker/pkg/serrors"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// Options configures the Gemini analyzer.
type Options struct {
	APIKey    string
	Model     string
	MaxTokens int
	// BaseURL overrides the API endpoint; mostly useful in tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Analyzer implements labelai.Analyzer on the Gemini API.
type Analyzer struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

var _ labelai.Analyzer = (*Analyzer)(nil)

// New creates an Analyzer.
func New(ctx context.Context, opts Options) (*Analyzer, error) {
	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &Analyzer{client: client, model: opts.Model, maxTokens: int32(maxTokens)}, nil
}

// Analyze asks Gemini for a JSON answer and parses it into a report.
func (a *Analyzer) Analyze(ctx context.Context, in labelai.Input) (*domain.ComplianceReport, labelai.RateLimitStatus, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(in.Image, in.ContentType),
			genai.NewPartFromText(labelai.BuildPrompt(in)),
		}, genai.RoleUser),
	}
	temperature := float32(0)
	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(labelai.SystemPrompt(), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		MaxOutputTokens:   a.maxTokens,
		Temperature:       &temperature,
	})
	if err != nil {
		return nil, rateLimitFor(err), classify(err)
	}

	report, err := labelai.ParseReport(resp.Text(), in, a.model)
	if err != nil {
		return nil, labelai.RateLimitStatus{}, fmt.Errorf("could not parse report: %w", err)
	}

	return report, labelai.RateLimitStatus{}, nil
}

func rateLimitFor(err error) labelai.RateLimitStatus {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return labelai.RateLimitStatus{ResetAt: time.Now().Add(time.Minute)}
	}

	return labelai.RateLimitStatus{}
}

func classify(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("could not generate content: %w", err)
	}

	switch {
	case apiErr.Code == http.StatusTooManyRequests:
		return serrors.Wrap(serrors.ErrRateLimited, err, "gemini quota exhausted")
	case apiErr.Code == http.StatusServiceUnavailable:
		return serrors.Wrap(serrors.ErrUnavailable, err, "gemini unavailable")
	case apiErr.Code == http.StatusBadRequest:
		return serrors.Wrap(serrors.ErrBadRequest, err, "gemini rejected request")
	default:
		return fmt.Errorf("could not generate content: %w", err)
	}
}
