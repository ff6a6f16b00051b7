package scanner

import (
	"context"
	"errors"
	"fmt"
	"labelchecker/internal/rules"
	"labelchecker/pkg/blob"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/labelai"
	"labelchecker/pkg/labelimage"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/progress"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"
	"time"

	"go.uber.org/zap"
)

// Stage names sent with progress events.
const (
	StageQueued      = "queued"
	StageDownloading = "downloading"
	StageAnalyzing   = "analyzing"
	StageSaving      = "saving"
	StageCompleted   = "completed"
	StageRetrying    = "retrying"
	StageFailed      = "failed"
)

type processor struct {
	options   Options
	storage   storage.Storage
	blobs     blob.Store
	rules     rules.Service
	analyzer  labelai.Analyzer
	publisher progress.Publisher
	now       func() time.Time
}

// NewProcessor creates the worker side of the pipeline.
func NewProcessor(storage storage.Storage,
	blobs blob.Store,
	rules rules.Service,
	analyzer labelai.Analyzer,
	publisher progress.Publisher,
	options Options) Processor {
	return &processor{
		options:   options,
		storage:   storage,
		blobs:     blobs,
		rules:     rules,
		analyzer:  analyzer,
		publisher: publisher,
		now:       time.Now,
	}
}

// publish pushes an event to connected clients. Delivery is best effort and
// never fails the scan.
func (p *processor) publish(ctx context.Context, scan *domain.Scan, stage string, cause error) {
	ev := domain.ScanEvent{
		ScanID:    scan.ID,
		AccountID: scan.AccountID,
		Status:    scan.Status,
		Progress:  scan.Progress,
		Stage:     stage,
		At:        p.now().UTC(),
	}
	if cause != nil {
		ev.Error = cause.Error()
	}
	if scan.Result != nil {
		score := scan.Result.Score
		ev.Score = &score
	}

	if err := p.publisher.Publish(ctx, ev); err != nil {
		logger.Warn(ctx, "could not publish scan event", zap.String("stage", stage), zap.Error(err))
	}
}

func (p *processor) setProgress(ctx context.Context, scan *domain.Scan, value int, stage string) *domain.Scan {
	updated, err := p.storage.UpdateScanByID(ctx, scan.ID, storage.ScanUpdates{
		Progress:     &value,
		FromStatuses: []domain.ScanStatus{domain.ScanStatusProcessing},
	})
	if err != nil || updated == nil {
		// progress is cosmetic, the final update decides
		logger.Debug(ctx, "could not update scan progress", zap.Int("progress", value), zap.Error(err))
		scan.Progress = value
		p.publish(ctx, scan, stage, nil)

		return scan
	}
	p.publish(ctx, updated, stage, nil)

	return updated
}

// Process analyzes a queued scan. A scan that no longer exists or was taken
// over by another status yields serrors.ErrConflict so the job is cancelled.
// A completed scan is a no-op. Analyzer errors keep the scan PENDING with the
// error recorded so the job can be retried.
func (p *processor) Process(ctx context.Context, scanID domain.ScanID) (labelai.RateLimitStatus, error) {
	var rl labelai.RateLimitStatus

	scan, err := p.storage.ScanForProcessing(ctx, scanID)
	if err != nil {
		return rl, fmt.Errorf("could not get scan: %w", err)
	}
	if scan == nil {
		p.discardDeleted(ctx, scanID)

		return rl, serrors.With(serrors.ErrConflict, "scan no longer exists")
	}
	if scan.Status == domain.ScanStatusCompleted {
		logger.Info(ctx, "scan already completed")

		return rl, nil
	}

	started := domain.ProgressDownloading
	scan, err = p.storage.UpdateScanByID(ctx, scanID, storage.ScanUpdates{
		Status:            domain.ScanStatusProcessing,
		Progress:          &started,
		IncrementAttempts: true,
		FromStatuses:      []domain.ScanStatus{domain.ScanStatusPending, domain.ScanStatusProcessing},
	})
	if err != nil {
		return rl, fmt.Errorf("could not mark scan processing: %w", err)
	}
	if scan == nil {
		p.discardDeleted(ctx, scanID)

		return rl, serrors.With(serrors.ErrConflict, "scan is not pending anymore")
	}
	p.publish(ctx, scan, StageDownloading, nil)

	report, rl, err := p.analyze(ctx, scan)
	if err != nil {
		p.recordAttemptError(ctx, scan, err)

		return rl, err
	}

	scan = p.setProgress(ctx, scan, domain.ProgressSaving, StageSaving)

	done := domain.ProgressDone
	cleared := ""
	completed, err := p.storage.UpdateScanByID(ctx, scanID, storage.ScanUpdates{
		Status:       domain.ScanStatusCompleted,
		Progress:     &done,
		Result:       report,
		LastError:    &cleared,
		FromStatuses: []domain.ScanStatus{domain.ScanStatusProcessing},
	})
	if err != nil {
		return rl, fmt.Errorf("could not store scan result: %w", err)
	}
	if completed == nil {
		p.discardDeleted(ctx, scanID)

		return rl, serrors.With(serrors.ErrConflict, "scan was deleted while processing")
	}
	p.publish(ctx, completed, StageCompleted, nil)

	logger.Info(ctx, "scan completed", zap.Int("score", report.Score), zap.String("status", string(report.Status)))

	return rl, nil
}

func (p *processor) analyze(ctx context.Context,
	scan *domain.Scan) (*domain.ComplianceReport, labelai.RateLimitStatus, error) {
	var rl labelai.RateLimitStatus

	obj, err := p.blobs.Get(ctx, scan.ImageKey)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return nil, rl, serrors.Wrap(serrors.ErrBadRequest, err, "label image is missing")
		}

		return nil, rl, fmt.Errorf("could not download image: %w", err)
	}
	image, contentType, err := labelimage.PrepareForModel(obj.Body, p.options.ModelMaxDimension)
	if err != nil {
		return nil, rl, err
	}

	applicable, err := p.rules.ForMarketplaces(ctx, scan.Marketplaces)
	if err != nil {
		return nil, rl, fmt.Errorf("could not load rules: %w", err)
	}

	scan = p.setProgress(ctx, scan, domain.ProgressAnalyzing, StageAnalyzing)

	analyzeCtx := ctx
	if p.options.AnalyzeTimeout > 0 {
		var cancel context.CancelFunc
		analyzeCtx, cancel = context.WithTimeout(ctx, p.options.AnalyzeTimeout)
		defer cancel()
	}
	report, rl, err := p.analyzer.Analyze(analyzeCtx, labelai.Input{
		ProductName:  scan.ProductName,
		Marketplaces: scan.Marketplaces,
		Rules:        applicable,
		Image:        image,
		ContentType:  contentType,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, rl, serrors.Wrap(serrors.ErrTimeout, err, "analyzer timed out")
		}

		return nil, rl, fmt.Errorf("could not analyze label: %w", err)
	}

	return report, rl, nil
}

// recordAttemptError puts the scan back to PENDING with the error so clients
// see why it is being retried. It also runs when ctx already timed out.
func (p *processor) recordAttemptError(ctx context.Context, scan *domain.Scan, cause error) {
	ctx = context.WithoutCancel(ctx)
	msg := cause.Error()
	queued := domain.ProgressQueued
	updated, err := p.storage.UpdateScanByID(ctx, scan.ID, storage.ScanUpdates{
		Status:       domain.ScanStatusPending,
		Progress:     &queued,
		LastError:    &msg,
		FromStatuses: []domain.ScanStatus{domain.ScanStatusProcessing},
	})
	if err != nil {
		logger.Error(ctx, "could not record scan error", zap.Error(err))

		return
	}
	if updated == nil {
		p.discardDeleted(ctx, scan.ID)

		return
	}
	p.publish(ctx, updated, StageRetrying, cause)
}

// discardDeleted removes the image of a scan that was deleted while a job
// still held it. Delete leaves the image of non-terminal scans to the worker.
func (p *processor) discardDeleted(ctx context.Context, scanID domain.ScanID) {
	ctx = context.WithoutCancel(ctx)
	scan, err := p.storage.DeletedScanByID(ctx, scanID)
	if err != nil {
		logger.Warn(ctx, "could not look up deleted scan", zap.Error(err))

		return
	}
	if scan == nil || scan.ImageKey == "" {
		return
	}
	if err := p.blobs.Delete(ctx, scan.ImageKey); err != nil {
		logger.Warn(ctx, "could not delete image of deleted scan", zap.String("key", scan.ImageKey), zap.Error(err))

		return
	}
	logger.Info(ctx, "deleted image of deleted scan", zap.String("key", scan.ImageKey))
}

// Fail marks the scan FAILED and gives its credit back. Scans that already
// finished are left alone.
func (p *processor) Fail(ctx context.Context, scanID domain.ScanID, cause error) error {
	msg := "scan failed"
	if cause != nil {
		msg = cause.Error()
	}

	var failed *domain.Scan
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		failed, err = tx.UpdateScanByID(ctx, scanID, storage.ScanUpdates{
			Status:       domain.ScanStatusFailed,
			LastError:    &msg,
			FromStatuses: []domain.ScanStatus{domain.ScanStatusPending, domain.ScanStatusProcessing},
		})
		if err != nil {
			return fmt.Errorf("could not mark scan failed: %w", err)
		}
		if failed == nil {
			return nil
		}

		if err := tx.RefundScanCredit(ctx, failed.AccountID, failed.CreditSource); err != nil {
			return fmt.Errorf("could not refund scan credit: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not fail scan: %w", err)
	}
	if failed == nil {
		logger.Info(ctx, "scan already finished, not failing it")
		p.discardDeleted(ctx, scanID)

		return nil
	}

	logger.Warn(ctx, "scan failed", zap.String("reason", msg))
	p.publish(ctx, failed, StageFailed, cause)

	return nil
}
