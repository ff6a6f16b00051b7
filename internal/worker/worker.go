// Package worker runs the background jobs of the application on River.
package worker

import (
	"context"
	"fmt"
	"labelchecker/internal/account"
	"labelchecker/internal/scanner"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/metrics"
	"labelchecker/pkg/storage"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const (
	usageResetInterval   = 24 * time.Hour
	inviteExpiryInterval = time.Hour
)

// Dependencies are the services the workers call into.
type Dependencies struct {
	Processor scanner.Processor
	Accounts  account.Service
	Storage   storage.AllStorage
	Metrics   *metrics.ScanMetrics
}

// Options tune the River client.
type Options struct {
	// Concurrency is the MaxWorkers of the default queue.
	Concurrency int
	// JobTimeout bounds a single scan attempt.
	JobTimeout time.Duration
	// UsagePeriod is the length of a quota period.
	UsagePeriod time.Duration
}

// NewWorkers registers every worker of the application.
func NewWorkers(deps Dependencies, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewLabelScanWorker(deps.Processor, deps.Metrics, options.JobTimeout))
	river.AddWorker(workers, NewInviteEmailWorker(deps.Accounts))
	river.AddWorker(workers, NewUsageResetWorker(deps.Storage, options.UsagePeriod))
	river.AddWorker(workers, NewInviteExpiryWorker(deps.Storage))

	return workers
}

// PeriodicJobs returns the jobs scheduled by the leader. Both run once at
// start so a restarted deployment catches up right away.
func PeriodicJobs() []*river.PeriodicJob {
	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(usageResetInterval),
			func() (river.JobArgs, *river.InsertOpts) { return UsageResetJob{}, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		),
		river.NewPeriodicJob(
			river.PeriodicInterval(inviteExpiryInterval),
			func() (river.JobArgs, *river.InsertOpts) { return InviteExpiryJob{}, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// Start creates and starts the River client processing all queues.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	deps Dependencies,
	options Options) (*river.Client[pgx.Tx], error) {
	concurrency := options.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: concurrency},
		},
		Workers:      NewWorkers(deps, options),
		PeriodicJobs: PeriodicJobs(),
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
