package storage

import (
	"context"
	"labelchecker/pkg/domain"
	"time"
)

// ScanUpdates describes a set of optional fields that can be applied to an
// existing scan during an update. Only non-nil fields will be updated.
type ScanUpdates struct {
	// Status is the new status to set for the scan. Empty keeps the current one.
	Status domain.ScanStatus
	// Progress, when provided, replaces the progress indicator.
	Progress *int
	// Result, when provided, replaces the stored compliance report.
	Result *domain.ComplianceReport
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// CreditSource, when not empty, records the pool the scan was paid from.
	CreditSource domain.CreditSource
	// IncrementAttempts bumps the attempts counter by one.
	IncrementAttempts bool
	// FromStatuses, when not empty, restricts the update to scans currently in one of these statuses.
	FromStatuses []domain.ScanStatus
}

// AccountScans groups a page of scans returned for an account together with an
// optional NextCursor used for pagination.
type AccountScans struct {
	// Scans contains the current page of scan records.
	Scans []domain.Scan
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// ScanStorage defines CRUD and query operations related to scans. Scans are
// scoped to the account that paid for them and are soft-deleted.
type ScanStorage interface {
	// StoreScans inserts one or more scans and returns the stored rows as they
	// exist in the database (including generated fields).
	StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error)
	// UpdateScanByID updates a single scan identified by its ID and returns the updated row,
	// or nil when no row matched. The update ignores soft-deleted rows and sets updated_at
	// automatically. Only provided fields are changed.
	UpdateScanByID(ctx context.Context, ID domain.ScanID, updates ScanUpdates) (*domain.Scan, error)
	// DeleteScan performs a soft delete for the given scan ID within the account and
	// returns the deleted scan, or nil if it was not found.
	DeleteScan(ctx context.Context, accountID domain.AccountID, ID domain.ScanID) (*domain.Scan, error)
	// AccountScans returns a page of scans for an account created before the optional
	// cursor time, limited by the given limit. If status is non-empty, results are
	// filtered to records with the given status.
	AccountScans(ctx context.Context,
		accountID domain.AccountID,
		status domain.ScanStatus,
		cursor time.Time,
		limit uint) (AccountScans, error)
	// ScanByID fetches a scan by its ID for the given account, excluding soft-deleted
	// records. Returns nil when not found.
	ScanByID(ctx context.Context, accountID domain.AccountID, ID domain.ScanID) (*domain.Scan, error)
	// ScanForProcessing fetches a non-deleted scan by ID regardless of account.
	// It is used by background workers. Returns nil when not found.
	ScanForProcessing(ctx context.Context, ID domain.ScanID) (*domain.Scan, error)
	// DeletedScanByID fetches a soft-deleted scan by ID regardless of account.
	// Returns nil when the scan does not exist or is not deleted.
	DeletedScanByID(ctx context.Context, ID domain.ScanID) (*domain.Scan, error)
	// ScanCountsByStatus returns the number of non-deleted scans per status.
	ScanCountsByStatus(ctx context.Context) (map[domain.ScanStatus]int64, error)
}
