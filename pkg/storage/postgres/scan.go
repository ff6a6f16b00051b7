package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	scansTable = "scans"
)

func (p *PgSQL) StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
	if len(scans) == 0 {
		return nil, nil
	}

	pgScans, err := domainScansToPg(scans)
	if err != nil {
		return nil, err
	}

	var result []PgScan
	if err := p.Builder.Insert(scansTable).
		Rows(pgScans).
		Returning(&PgScan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scans into pg: %w", err)
	}

	return pgScansToDomain(result)
}

// UpdateScanByID updates a single non-deleted scan with the provided fields.
// Only non-nil fields from updates are set and updated_at is always refreshed.
func (p *PgSQL) UpdateScanByID(ctx context.Context, id domain.ScanID, updates storage.ScanUpdates) (*domain.Scan, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Progress != nil {
		rec["progress"] = *updates.Progress
	}
	if updates.CreditSource != "" {
		rec["credit_source"] = string(updates.CreditSource)
	}
	if updates.IncrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}
	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = string(b)
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	w := []exp.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if len(updates.FromStatuses) > 0 {
		statuses := make([]string, len(updates.FromStatuses))
		for i, s := range updates.FromStatuses {
			statuses[i] = string(s)
		}
		w = append(w, goqu.I("status").In(statuses))
	}

	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(rec).
		Where(w...).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteScan performs a soft delete by setting deleted_at timestamp
// for a given scan id and account, returning the deleted record.
func (p *PgSQL) DeleteScan(ctx context.Context, accountID domain.AccountID, id domain.ScanID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("account_id").Eq(uuid.UUID(accountID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgScan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete scan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// AccountScans returns a list of scans for an account filtered by optional status and cursor,
// limited by limit. Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) AccountScans(ctx context.Context,
	accountID domain.AccountID,
	status domain.ScanStatus,
	cursor time.Time,
	limit uint) (storage.AccountScans, error) {
	w := []exp.Expression{
		goqu.I("account_id").Eq(uuid.UUID(accountID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(scansTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgScan
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.AccountScans{}, fmt.Errorf("could not fetch account scans from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgScansToDomain(rows)
	if err != nil {
		return storage.AccountScans{}, err
	}

	return storage.AccountScans{
		Scans:      domainRows,
		NextCursor: nextCursor,
	}, nil
}

// ScanByID returns a scan of the account by its ID, excluding soft-deleted rows.
func (p *PgSQL) ScanByID(ctx context.Context, accountID domain.AccountID, id domain.ScanID) (*domain.Scan, error) {
	return p.scanWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("account_id").Eq(uuid.UUID(accountID)),
		goqu.I("deleted_at").IsNull(),
	)
}

// ScanForProcessing returns a non-deleted scan by its ID without account scoping.
func (p *PgSQL) ScanForProcessing(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	return p.scanWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	)
}

// DeletedScanByID returns a soft-deleted scan by its ID without account scoping.
func (p *PgSQL) DeletedScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	return p.scanWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNotNull(),
	)
}

func (p *PgSQL) scanWhere(ctx context.Context, w ...exp.Expression) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(w...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ScanCountsByStatus counts non-deleted scans grouped by status.
func (p *PgSQL) ScanCountsByStatus(ctx context.Context) (map[domain.ScanStatus]int64, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := p.Builder.From(scansTable).
		Select(goqu.I("status"), goqu.COUNT("*").As("count")).
		Where(goqu.I("deleted_at").IsNull()).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count scans by status: %w", err)
	}

	out := make(map[domain.ScanStatus]int64, len(rows))
	for _, r := range rows {
		out[domain.ScanStatus(r.Status)] = r.Count
	}

	return out, nil
}
