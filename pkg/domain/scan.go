package domain

import (
	"time"
)

// ScanStatus represents the lifecycle state of a scan.
type ScanStatus string

const (
	// ScanStatusPending indicates the scan has been enqueued but not picked up yet.
	ScanStatusPending ScanStatus = "PENDING"
	// ScanStatusProcessing indicates a worker is analyzing the label.
	ScanStatusProcessing ScanStatus = "PROCESSING"
	// ScanStatusCompleted indicates the scan finished successfully and a report is available.
	ScanStatusCompleted ScanStatus = "COMPLETED"
	// ScanStatusFailed indicates the scan ended with an error; see LastError and Attempts for details.
	ScanStatusFailed ScanStatus = "FAILED"
)

// Valid reports whether s is a known status.
func (s ScanStatus) Valid() bool {
	switch s {
	case ScanStatusPending, ScanStatusProcessing, ScanStatusCompleted, ScanStatusFailed:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further processing will happen for the status.
func (s ScanStatus) Terminal() bool {
	return s == ScanStatusCompleted || s == ScanStatusFailed
}

// CreditSource names the pool a scan credit was taken from.
type CreditSource string

const (
	// CreditSourcePeriod is the monthly quota of the plan.
	CreditSourcePeriod CreditSource = "PERIOD"
	// CreditSourceBonus is the pool of purchased and refunded credits.
	CreditSourceBonus CreditSource = "BONUS"
)

// Scan represents a single label check request and its current state.
type Scan struct {
	// ID is the unique identifier of the scan.
	ID ScanID `json:"id"`
	// AccountID is the tenant that owns the scan and was charged for it.
	AccountID AccountID `json:"accountId"`
	// UserID is the identifier of the user who uploaded the label.
	UserID UserID `json:"userId"`

	// ProductName is an optional seller provided label for the product.
	ProductName string `json:"productName"`
	// ImageKey is the object storage key of the uploaded label image.
	ImageKey string `json:"-"`
	// ImageContentType is the detected MIME type of the image.
	ImageContentType string `json:"imageContentType"`
	// Marketplaces lists the storefronts the label is checked against.
	Marketplaces []Marketplace `json:"marketplaces"`

	// Status is the current lifecycle state of the scan.
	Status ScanStatus `json:"status"`
	// Progress is a 0..100 indicator of how far processing got.
	Progress int `json:"progress"`
	// Result is the compliance report, set once the scan completed.
	Result *ComplianceReport `json:"result,omitempty"`

	// CreditSource is the pool the scan was paid from. A refund goes back there.
	CreditSource CreditSource `json:"-"`

	// Attempts is the number of times the system has tried to process this scan.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any.
	LastError string `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the scan was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// Progress stages reported while a scan moves through the pipeline.
const (
	ProgressQueued      = 5
	ProgressDownloading = 15
	ProgressAnalyzing   = 35
	ProgressSaving      = 90
	ProgressDone        = 100
)

// ScanEvent is pushed to connected clients whenever a scan changes.
type ScanEvent struct {
	ScanID    ScanID     `json:"scanId"`
	AccountID AccountID  `json:"accountId"`
	Status    ScanStatus `json:"status"`
	Progress  int        `json:"progress"`
	Stage     string     `json:"stage"`
	Error     string     `json:"error,omitempty"`
	// Score is set on completion.
	Score *int      `json:"score,omitempty"`
	At    time.Time `json:"at"`
}
