package scanner

import (
	"labelchecker/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a label scan job submitted to River.
type JobArgs struct {
	// ScanID is the scan to process. It is marked as unique so River keeps at
	// most one live job per scan.
	ScanID domain.ScanID `json:"scanId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the scan worker.
func (args JobArgs) Kind() string { return "LabelScanJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Finished jobs are left out of the unique states so a failed scan can be retried.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
