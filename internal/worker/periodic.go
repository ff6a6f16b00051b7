package worker

import (
	"context"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// UsageResetJob starts a new usage period for accounts whose period ran out.
type UsageResetJob struct{}

func (UsageResetJob) Kind() string { return "UsageResetJob" }

// UsageResetWorker zeroes scans_used of accounts on plans with a periodic allowance.
type UsageResetWorker struct {
	river.WorkerDefaults[UsageResetJob]

	storage storage.AccountStorage
	period  time.Duration
	now     func() time.Time
}

func NewUsageResetWorker(storage storage.AccountStorage, period time.Duration) *UsageResetWorker {
	return &UsageResetWorker{storage: storage, period: period, now: time.Now}
}

func (w *UsageResetWorker) Work(ctx context.Context, job *river.Job[UsageResetJob]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	n, err := w.storage.ResetUsage(ctx, domain.PeriodicPlans(), w.now().Add(-w.period))
	if err != nil {
		return fmt.Errorf("could not reset usage: %w", err)
	}
	logger.Info(ctx, "usage periods reset", zap.Int64("accounts", n))

	return nil
}

// InviteExpiryJob revokes pending invites past their expiry.
type InviteExpiryJob struct{}

func (InviteExpiryJob) Kind() string { return "InviteExpiryJob" }

type InviteExpiryWorker struct {
	river.WorkerDefaults[InviteExpiryJob]

	storage storage.InviteStorage
	now     func() time.Time
}

func NewInviteExpiryWorker(storage storage.InviteStorage) *InviteExpiryWorker {
	return &InviteExpiryWorker{storage: storage, now: time.Now}
}

func (w *InviteExpiryWorker) Work(ctx context.Context, job *river.Job[InviteExpiryJob]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	n, err := w.storage.ExpireInvites(ctx, w.now())
	if err != nil {
		return fmt.Errorf("could not expire invites: %w", err)
	}
	if n > 0 {
		logger.Info(ctx, "expired invites revoked", zap.Int64("invites", n))
	}

	return nil
}
