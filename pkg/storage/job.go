package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background work. Scan and invite email jobs go through
// it so they commit or roll back together with the rows that reference them.
type JobStorage interface {
	// AddJob enqueues a job and reports whether a new row was written. False
	// means a unique job with the same arguments is already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
