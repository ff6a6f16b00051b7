package worker

import (
	"context"
	"errors"
	"fmt"
	"labelchecker/internal/scanner"
	"labelchecker/pkg/labelai"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/metrics"
	"labelchecker/pkg/serrors"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitedSnooze is used when the provider throttles without telling us when the window resets.
const rateLimitedSnooze = 30 * time.Second

// LabelScanWorker is a River worker that runs label scans through a
// scanner.Processor. It embeds River's WorkerDefaults to integrate with the job
// runtime and provides its own cooperative rate limiting so that concurrent
// jobs never exceed the model provider's request budget while still running in
// parallel when budget remains.
//
// # Rate limiting overview
//
// The worker tracks the last known provider rate-limit status (lastRLStatus)
// and the number of analyzer calls currently in flight (inFlightRequests).
// Before a scan starts, reserveRL reserves a slot from the current budget. The
// effective remaining budget is computed as:
//
//	remaining := lastRLStatus.Remaining
//	if now > lastRLStatus.ResetAt { remaining = lastRLStatus.Limit }
//
// A scan may start if remaining - inFlightRequests > 0. When there is no budget
// left, reserveRL waits until either the ResetAt time is reached or another
// in-flight scan finishes and signals requestFinishedChan.
//
// After a scan returns, requestFinished merges the reported status: a new
// ResetAt is always adopted, otherwise Remaining is only replaced when it
// decreases so concurrent responses cannot make the view optimistic.
//
// Bootstrap: before any status is known a synthetic Limit=1, Remaining=1
// status with a far-future ResetAt lets exactly one request through. Providers
// that never report rate limits (e.g. Bedrock, Gemini) answer that request with a
// zero status; the worker then stops throttling until a status shows up, and
// concurrency is bounded by the queue's MaxWorkers alone.
//
// # Error handling
//
//   - CONFLICT: the scan is gone or owned by another attempt, the job is cancelled.
//   - RATE_LIMITED: the job is snoozed until ResetAt.
//   - BAD_REQUEST: retrying cannot help, the scan is failed and the job cancelled.
//   - anything else: River retries with backoff; on the last attempt the scan
//     is failed and its credit refunded.
type LabelScanWorker struct {
	river.WorkerDefaults[scanner.JobArgs]

	processor  scanner.Processor
	metrics    *metrics.ScanMetrics
	jobTimeout time.Duration

	// mu protects all fields below it.
	mu               sync.Mutex
	inFlightRequests int
	lastRLStatus     *labelai.RateLimitStatus
	// probing is set while the bootstrap request is in flight.
	probing bool
	// unthrottled is set once the provider answered without rate-limit info.
	unthrottled bool
	// requestFinishedChan wakes goroutines waiting in reserveRL.
	requestFinishedChan chan struct{}
}

// NewLabelScanWorker constructs a LabelScanWorker. A nil metrics records nothing
// and a zero jobTimeout keeps River's default.
func NewLabelScanWorker(processor scanner.Processor, m *metrics.ScanMetrics, jobTimeout time.Duration) *LabelScanWorker {
	return &LabelScanWorker{
		processor:           processor,
		metrics:             m,
		jobTimeout:          jobTimeout,
		requestFinishedChan: make(chan struct{}),
	}
}

// Timeout bounds a single attempt, including time spent waiting for rate-limit budget.
func (w *LabelScanWorker) Timeout(*river.Job[scanner.JobArgs]) time.Duration {
	return w.jobTimeout
}

// Work executes a single scan attempt while respecting rate limits and maps
// the result to the matching River action.
func (w *LabelScanWorker) Work(ctx context.Context, job *river.Job[scanner.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("scanId", job.Args.ScanID),
		zap.Int("attempt", job.Attempt))

	if err := w.reserveRL(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	started := time.Now()
	done := w.metrics.Started(ctx)
	rlStatus, err := w.processor.Process(ctx, job.Args.ScanID)
	done()
	w.requestFinished(ctx, rlStatus)

	outcome, err := w.handleResult(ctx, job, rlStatus, err)
	w.metrics.Record(ctx, outcome, time.Since(started))

	return err
}

func (w *LabelScanWorker) handleResult(ctx context.Context,
	job *river.Job[scanner.JobArgs],
	rlStatus labelai.RateLimitStatus,
	err error) (string, error) {
	if err == nil {
		logger.Info(ctx, "label scanned successfully")

		return metrics.OutcomeCompleted, nil
	}

	switch {
	case errors.Is(err, serrors.ErrConflict):
		logger.Info(ctx, "scan job cancelled", zap.Error(err))

		return metrics.OutcomeCancelled, river.JobCancel(err) //nolint: wrapcheck

	case errors.Is(err, serrors.ErrRateLimited):
		logger.Warn(ctx, "analyzer rate limited", zap.Error(err))
		dur := rateLimitedSnooze
		if !rlStatus.ResetAt.IsZero() {
			dur = max(time.Until(rlStatus.ResetAt), 0)
		}

		return metrics.OutcomeRateLimited, river.JobSnooze(dur) //nolint: wrapcheck

	case errors.Is(err, serrors.ErrBadRequest):
		logger.Error(ctx, "label cannot be analyzed", zap.Error(err))
		if ferr := w.processor.Fail(context.WithoutCancel(ctx), job.Args.ScanID, err); ferr != nil {
			return metrics.OutcomeRetried, fmt.Errorf("could not fail scan: %w", ferr)
		}

		return metrics.OutcomeFailed, river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "error in scanning label", zap.Error(err))

	if job.Attempt >= job.MaxAttempts {
		if ferr := w.processor.Fail(context.WithoutCancel(ctx), job.Args.ScanID, err); ferr != nil {
			logger.Error(ctx, "could not fail scan", zap.Error(ferr))
		}

		return metrics.OutcomeFailed, fmt.Errorf("could not scan label: %w", err)
	}

	return metrics.OutcomeRetried, fmt.Errorf("could not scan label: %w", err)
}

// requestFinished is called after every scan attempt. It decrements the in-flight
// counter, wakes one waiter and merges the returned rate-limit status.
func (w *LabelScanWorker) requestFinished(ctx context.Context, newRLStatus labelai.RateLimitStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlightRequests > 0 {
		w.inFlightRequests--
	}

	select {
	case w.requestFinishedChan <- struct{}{}:
	default:
	}

	if newRLStatus.ResetAt.IsZero() {
		if w.probing {
			logger.Debug(ctx, "analyzer reports no rate limits, not throttling")
			w.probing = false
			w.unthrottled = true
			w.lastRLStatus = nil
		}

		return
	}

	log := func() {
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", newRLStatus.Limit),
			zap.Int("remaining", newRLStatus.Remaining),
			zap.Time("resetAt", newRLStatus.ResetAt),
			zap.Int("inFlight", w.inFlightRequests))
	}

	if w.probing || w.unthrottled || w.lastRLStatus == nil {
		w.probing = false
		w.unthrottled = false
		w.lastRLStatus = &newRLStatus
		log()

		return
	}

	if !w.lastRLStatus.ResetAt.Equal(newRLStatus.ResetAt) {
		w.lastRLStatus = &newRLStatus
		log()

		return
	}

	if newRLStatus.Remaining < w.lastRLStatus.Remaining {
		w.lastRLStatus = &newRLStatus
		log()
	}
}

// reserveRL reserves one unit from the rate-limit budget or blocks until a unit
// becomes available. If ctx is cancelled while waiting, an error is returned.
func (w *LabelScanWorker) reserveRL(ctx context.Context) error {
	for {
		w.mu.Lock()

		if w.unthrottled {
			w.inFlightRequests++
			w.mu.Unlock()

			return nil
		}

		if w.lastRLStatus == nil {
			// allow one request to learn the provider's limits
			w.probing = true
			w.lastRLStatus = &labelai.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		status := *w.lastRLStatus
		remaining := status.Remaining
		if time.Now().After(status.ResetAt) {
			remaining = status.Limit
		}

		if remaining-w.inFlightRequests > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", status.Limit),
				zap.Time("resetAt", status.ResetAt),
				zap.Int("inFlight", w.inFlightRequests))
			w.inFlightRequests++
			w.mu.Unlock()

			return nil
		}

		inFlight := w.inFlightRequests
		w.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Int("limit", status.Limit),
			zap.Time("resetAt", status.ResetAt),
			zap.Int("inFlight", inFlight))

		timer := time.NewTimer(time.Until(status.ResetAt))
		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-w.requestFinishedChan:
			timer.Stop()
		case <-timer.C:
		}
	}
}
