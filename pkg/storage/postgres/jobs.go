package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job on the current handle. Inside WithTx the job row
// is written in the same transaction as the scan or invite it belongs to, so a
// rolled back upload never leaves an orphan job behind. Returns false when a
// unique job with the same arguments already exists.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		// insert-only client, the driver pool is never touched
		var client *river.Client[*sql.Tx]
		if client, err = river.NewClient(riverdatabasesql.New(nil), &river.Config{}); err == nil {
			res, err = client.InsertTx(ctx, db, args, opts)
		}
	case *sql.DB:
		var client *river.Client[*sql.Tx]
		if client, err = river.NewClient(riverdatabasesql.New(db), &river.Config{}); err == nil {
			res, err = client.Insert(ctx, args, opts)
		}
	default:
		return false, fmt.Errorf("unsupported executor %T for job %s", p.DB, args.Kind())
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
