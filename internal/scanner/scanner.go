package scanner

import (
	"context"
	"fmt"
	"labelchecker/internal/config"
	"labelchecker/pkg/blob"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/labelimage"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/progress"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxProductName = 200

// Options configure upload limits and how scan jobs are enqueued.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a scan job before marking it failed.
	MaxAttempts int
	// MaxImageBytes and MaxImagePixels bound accepted uploads.
	MaxImageBytes  int64
	MaxImagePixels int64
	// PresignTTL is how long image download URLs stay valid.
	PresignTTL time.Duration
	// ModelMaxDimension is the longest edge of the image sent to the model.
	ModelMaxDimension int
	// AnalyzeTimeout bounds a single analyzer call.
	AnalyzeTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:       cfg.Scanner.MaxAttempts,
		MaxImageBytes:     cfg.Scanner.MaxImageBytes,
		MaxImagePixels:    int64(cfg.Scanner.MaxImagePixels),
		PresignTTL:        cfg.Scanner.PresignTTL,
		ModelMaxDimension: cfg.Scanner.ModelMaxDimension,
		AnalyzeTimeout:    cfg.AI.Timeout,
	}
}

// scanner is the concrete implementation of the Scanner interface.
// It coordinates image storage, quota accounting and job enqueueing.
type scanner struct {
	options   Options
	storage   storage.Storage
	blobs     blob.Store
	publisher progress.Publisher
	now       func() time.Time
}

// New creates a new Scanner backed by the provided storage and blob store.
// Queued scans are announced through publisher.
func New(storage storage.Storage, blobs blob.Store, publisher progress.Publisher, options Options) Scanner {
	return &scanner{
		options:   options,
		storage:   storage,
		blobs:     blobs,
		publisher: publisher,
		now:       time.Now,
	}
}

// queued tells connected clients a scan is waiting for a worker. It runs
// after the commit and a failed publish does not fail the request.
func (s *scanner) queued(ctx context.Context, scan *domain.Scan) {
	if err := s.publisher.Publish(ctx, domain.ScanEvent{
		ScanID:    scan.ID,
		AccountID: scan.AccountID,
		Status:    scan.Status,
		Progress:  scan.Progress,
		Stage:     StageQueued,
		At:        s.now().UTC(),
	}); err != nil {
		logger.Warn(ctx, "could not publish scan event", zap.String("stage", StageQueued), zap.Error(err))
	}
}

// ImageKey returns the object key a label image of the account is stored under.
func ImageKey(accountID domain.AccountID, ext string) string {
	return fmt.Sprintf("labels/%s/%s%s", accountID, uuid.New(), ext)
}

// Enqueue validates and stores the uploaded image, then in one transaction
// takes a scan credit, stores a PENDING scan and queues its job. The uploaded
// object is removed again when the transaction fails.
func (s *scanner) Enqueue(ctx context.Context, user domain.User, req NewScan) (*domain.Scan, error) {
	info, err := labelimage.Inspect(req.Image, labelimage.Limits{
		MaxBytes:  s.options.MaxImageBytes,
		MaxPixels: s.options.MaxImagePixels,
	})
	if err != nil {
		return nil, err
	}
	marketplaces, err := domain.ParseMarketplaces(req.Marketplaces)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid marketplaces")
	}
	productName := strings.TrimSpace(req.ProductName)
	if len(productName) > maxProductName {
		return nil, serrors.With(serrors.ErrBadRequest, "product name must be at most %d characters", maxProductName)
	}

	key := ImageKey(user.AccountID, info.Extension())
	if err := s.blobs.Put(ctx, key, info.ContentType, req.Image); err != nil {
		return nil, fmt.Errorf("could not store image: %w", err)
	}

	var scan *domain.Scan
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		source, err := tx.ConsumeScanCredit(ctx, user.AccountID)
		if err != nil {
			return fmt.Errorf("could not consume scan credit: %w", err)
		}
		if source == "" {
			return serrors.With(serrors.ErrPaymentRequired, "scan quota exhausted, upgrade your plan or buy credits")
		}

		res, err := tx.StoreScans(ctx, domain.Scan{
			AccountID:        user.AccountID,
			UserID:           user.ID,
			ProductName:      productName,
			ImageKey:         key,
			ImageContentType: info.ContentType,
			Marketplaces:     marketplaces,
			Status:           domain.ScanStatusPending,
			Progress:         domain.ProgressQueued,
			CreditSource:     source,
		})
		if err != nil {
			return fmt.Errorf("could not store scan: %w", err)
		}
		scan = &res[0]

		if _, err := tx.AddJob(ctx, JobArgs{ScanID: scan.ID, maxAttempts: s.options.MaxAttempts}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		if derr := s.blobs.Delete(context.WithoutCancel(ctx), key); derr != nil {
			logger.Warn(ctx, "could not delete orphaned image", zap.String("key", key), zap.Error(derr))
		}

		return nil, fmt.Errorf("could not enqueue scan: %w", err)
	}

	logger.Info(ctx, "scan enqueued", zap.Stringer("scanId", scan.ID), zap.Stringer("accountId", user.AccountID))
	s.queued(ctx, scan)

	return scan, nil
}

// AccountScans returns a page of scans of the user's account filtered by status.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (s *scanner) AccountScans(ctx context.Context,
	user domain.User,
	status domain.ScanStatus,
	cursor string,
	limit uint) ([]domain.Scan, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown status %q", status)
	}
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := s.storage.AccountScans(ctx, user.AccountID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get account scans: %w", err)
	}

	return page.Scans, storage.FormatCursor(page.NextCursor), nil
}

// Result fetches a single scan by ID for the user's account. It returns a
// not-found error when no matching scan exists.
func (s *scanner) Result(ctx context.Context, user domain.User, scanID domain.ScanID) (*domain.Scan, error) {
	res, err := s.storage.ScanByID(ctx, user.AccountID, scanID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan results: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan not found")
	}

	return res, nil
}

// Delete soft deletes a scan of the user's account. The image of a finished
// scan is removed right away. Scans still owned by a job keep their image
// until the worker notices the deletion, cancels the job and removes it.
func (s *scanner) Delete(ctx context.Context, user domain.User, scanID domain.ScanID) error {
	res, err := s.storage.DeleteScan(ctx, user.AccountID, scanID)
	if err != nil {
		return fmt.Errorf("could not delete scan: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "scan not found")
	}

	if res.Status.Terminal() && res.ImageKey != "" {
		if err := s.blobs.Delete(ctx, res.ImageKey); err != nil {
			logger.Warn(ctx, "could not delete scan image", zap.Stringer("scanId", scanID), zap.Error(err))
		}
	}

	return nil
}

func (s *scanner) ImageURL(ctx context.Context, user domain.User, scanID domain.ScanID) (string, error) {
	scan, err := s.Result(ctx, user, scanID)
	if err != nil {
		return "", err
	}

	u, err := s.blobs.PresignGet(ctx, scan.ImageKey, s.options.PresignTTL)
	if err != nil {
		return "", fmt.Errorf("could not presign image: %w", err)
	}

	return u, nil
}

// Retry moves a FAILED scan back to PENDING and queues a new job. Failing
// refunds the credit, so retrying takes it again and a scan never costs more
// than one credit.
func (s *scanner) Retry(ctx context.Context, user domain.User, scanID domain.ScanID) (*domain.Scan, error) {
	var scan *domain.Scan
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.ScanByID(ctx, user.AccountID, scanID)
		if err != nil {
			return fmt.Errorf("could not get scan: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "scan not found")
		}
		if current.Status != domain.ScanStatusFailed {
			return serrors.With(serrors.ErrConflict, "only failed scans can be retried")
		}

		source, err := tx.ConsumeScanCredit(ctx, user.AccountID)
		if err != nil {
			return fmt.Errorf("could not consume scan credit: %w", err)
		}
		if source == "" {
			return serrors.With(serrors.ErrPaymentRequired, "scan quota exhausted, upgrade your plan or buy credits")
		}

		queuedProgress := domain.ProgressQueued
		cleared := ""
		scan, err = tx.UpdateScanByID(ctx, scanID, storage.ScanUpdates{
			Status:       domain.ScanStatusPending,
			Progress:     &queuedProgress,
			LastError:    &cleared,
			CreditSource: source,
			FromStatuses: []domain.ScanStatus{domain.ScanStatusFailed},
		})
		if err != nil {
			return fmt.Errorf("could not update scan: %w", err)
		}
		if scan == nil {
			return serrors.With(serrors.ErrConflict, "only failed scans can be retried")
		}

		if _, err := tx.AddJob(ctx, JobArgs{ScanID: scanID, maxAttempts: s.options.MaxAttempts}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not retry scan: %w", err)
	}
	s.queued(ctx, scan)

	return scan, nil
}
