package scanner

import (
	"context"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/labelai"
)

// NewScan is an uploaded label waiting to be checked.
type NewScan struct {
	ProductName string
	// Marketplaces are the requested storefront codes; empty defaults to US.
	Marketplaces []string
	Image        []byte
}

// Scanner is the API facing side of the label scan pipeline. Scans are scoped
// to the account of the acting user.
//
//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *
type Scanner interface {
	// Enqueue stores the image, charges one scan credit and queues the scan.
	Enqueue(ctx context.Context, user domain.User, scan NewScan) (*domain.Scan, error)
	AccountScans(ctx context.Context,
		user domain.User,
		status domain.ScanStatus,
		cursor string,
		limit uint) ([]domain.Scan, string, error)
	Result(ctx context.Context, user domain.User, scanID domain.ScanID) (*domain.Scan, error)
	Delete(ctx context.Context, user domain.User, scanID domain.ScanID) error
	// ImageURL returns a short-lived download URL of the uploaded label.
	ImageURL(ctx context.Context, user domain.User, scanID domain.ScanID) (string, error)
	// Retry queues a failed scan again without charging another credit.
	Retry(ctx context.Context, user domain.User, scanID domain.ScanID) (*domain.Scan, error)
}

// Processor is the worker side of the pipeline.
type Processor interface {
	// Process analyzes a queued scan and returns the latest provider rate-limit status.
	Process(ctx context.Context, scanID domain.ScanID) (labelai.RateLimitStatus, error)
	// Fail marks the scan as failed for good and refunds its credit.
	Fail(ctx context.Context, scanID domain.ScanID, cause error) error
}
