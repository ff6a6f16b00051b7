// Package labelai defines the vision model abstraction that turns a label
// image into a compliance report, together with the prompt and response
// handling shared by all providers.
package labelai

import (
	"context"
	"labelchecker/pkg/domain"
	"time"
)

// RateLimitStatus describes the current API rate-limit status returned by the
// underlying model provider. A zero value means the provider did not report one.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Input is everything the model needs to assess a label.
type Input struct {
	ProductName  string
	Marketplaces []domain.Marketplace
	Rules        []domain.RegulatoryRule
	Image        []byte
	ContentType  string
}

// Analyzer is the abstraction for vision model providers.
//
// Errors carry serrors kinds: ErrRateLimited when the provider throttles,
// ErrBadRequest when the request can never succeed (e.g. rejected image),
// ErrUnavailable when the provider is overloaded. Anything else is retryable.
//
//go:generate mockgen -package mocklabelai -source=interface.go -destination=mock/mocklabelai.go *
type Analyzer interface {
	// Analyze sends the label to the model and returns the parsed report plus
	// the latest rate-limit status.
	Analyze(ctx context.Context, in Input) (*domain.ComplianceReport, RateLimitStatus, error)
}
