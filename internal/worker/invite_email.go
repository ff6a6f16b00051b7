package worker

import (
	"context"
	"fmt"
	"labelchecker/internal/account"
	"labelchecker/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// InviteEmailWorker sends invitation emails queued by account.Service.Invite.
type InviteEmailWorker struct {
	river.WorkerDefaults[account.InviteEmailJob]

	accounts account.Service
}

func NewInviteEmailWorker(accounts account.Service) *InviteEmailWorker {
	return &InviteEmailWorker{accounts: accounts}
}

func (w *InviteEmailWorker) Work(ctx context.Context, job *river.Job[account.InviteEmailJob]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("inviteId", job.Args.InviteID))

	if err := w.accounts.SendInviteEmail(ctx, job.Args.AccountID, job.Args.InviteID); err != nil {
		logger.Error(ctx, "could not send invite email", zap.Error(err))

		return fmt.Errorf("could not send invite email: %w", err)
	}

	return nil
}
