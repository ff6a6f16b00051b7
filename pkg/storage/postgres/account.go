package postgres

import (
	"context"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	accountsTable = "accounts"
)

func (p *PgSQL) StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var in, row PgAccount
	in.FromDomain(account)

	if _, err := p.Builder.Insert(accountsTable).
		Rows(in).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store account: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store account into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	return p.accountWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

// LockAccount selects the account FOR UPDATE. Seat checks take it so that
// concurrent invites and joins of one account run one after the other.
func (p *PgSQL) LockAccount(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not lock account: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AccountByStripeCustomer(ctx context.Context, customerID string) (*domain.Account, error) {
	return p.accountWhere(ctx, goqu.I("stripe_customer_id").Eq(customerID))
}

func (p *PgSQL) accountWhere(ctx context.Context, w ...exp.Expression) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(w...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateAccount applies the non-nil fields of updates and returns the new row.
func (p *PgSQL) UpdateAccount(ctx context.Context,
	id domain.AccountID,
	updates storage.AccountUpdates) (*domain.Account, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Plan != nil {
		rec["plan"] = string(*updates.Plan)
	}
	if updates.ScanLimit != nil {
		rec["scan_limit"] = *updates.ScanLimit
	}
	if updates.ScansUsed != nil {
		rec["scans_used"] = *updates.ScansUsed
	}
	if updates.AddBonusCredits != 0 {
		rec["bonus_credits"] = goqu.L("GREATEST(bonus_credits + ?, 0)", updates.AddBonusCredits)
	}
	if updates.StripeCustomerID != nil {
		rec["stripe_customer_id"] = nullString(*updates.StripeCustomerID)
	}
	if updates.StripeSubscriptionID != nil {
		rec["stripe_subscription_id"] = nullString(*updates.StripeSubscriptionID)
	}
	if updates.ResetPeriod {
		rec["scans_used"] = 0
		rec["period_start"] = goqu.L("CURRENT_TIMESTAMP")
	}

	var row PgAccount
	found, err := p.Builder.Update(accountsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not update account: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not update account in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ConsumeScanCredit takes one scan from the period quota first and from the
// bonus credits once the quota is used up. The account row is locked by the
// subquery, so the pool it reports is the one the update charged.
func (p *PgSQL) ConsumeScanCredit(ctx context.Context, id domain.AccountID) (domain.CreditSource, error) {
	current := p.Builder.From(accountsTable).
		Select(goqu.I("id"), goqu.L("scans_used < scan_limit").As("from_period")).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ForUpdate(exp.Wait).
		As("o")

	var fromPeriod bool
	found, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"scans_used": goqu.L(
				"CASE WHEN o.from_period THEN accounts.scans_used + 1 ELSE accounts.scans_used END"),
			"bonus_credits": goqu.L(
				"CASE WHEN o.from_period THEN accounts.bonus_credits ELSE accounts.bonus_credits - 1 END"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		From(current).
		Where(
			goqu.I("accounts.id").Eq(goqu.I("o.id")),
			goqu.Or(
				goqu.I("o.from_period").IsTrue(),
				goqu.I("accounts.bonus_credits").Gt(0),
			),
		).
		Returning(goqu.I("o.from_period")).
		Executor().ScanValContext(ctx, &fromPeriod)
	if err != nil {
		return "", fmt.Errorf("could not consume scan credit in pg: %w", err)
	}
	if !found {
		return "", nil
	}
	if fromPeriod {
		return domain.CreditSourcePeriod, nil
	}

	return domain.CreditSourceBonus, nil
}

// RefundScanCredit returns a scan to the pool it was taken from. Bonus is the
// fallback for scans stored before the source was recorded.
func (p *PgSQL) RefundScanCredit(ctx context.Context, id domain.AccountID, source domain.CreditSource) error {
	rec := goqu.Record{
		"bonus_credits": goqu.L("bonus_credits + 1"),
		"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
	}
	if source == domain.CreditSourcePeriod {
		rec = goqu.Record{
			"scans_used": goqu.L("GREATEST(scans_used - 1, 0)"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}
	}

	_, err := p.Builder.Update(accountsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not refund scan credit in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) ResetUsage(ctx context.Context, plans []domain.Plan, startedBefore time.Time) (int64, error) {
	if len(plans) == 0 {
		return 0, nil
	}

	names := make([]string, len(plans))
	for i, pl := range plans {
		names[i] = string(pl)
	}

	res, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"scans_used":   0,
			"period_start": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("plan").In(names),
			goqu.I("period_start").Lt(startedBefore),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not reset usage in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}

// Accounts returns accounts ordered by created_at DESC, id DESC.
func (p *PgSQL) Accounts(ctx context.Context, cursor time.Time, limit uint) (storage.AccountPage, error) {
	ds := p.Builder.From(accountsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)
	if !cursor.IsZero() {
		ds = ds.Where(goqu.I("created_at").Lt(cursor))
	}

	var rows []PgAccount
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.AccountPage{}, fmt.Errorf("could not fetch accounts from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	out := make([]domain.Account, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return storage.AccountPage{Accounts: out, NextCursor: nextCursor}, nil
}

// PlatformStats aggregates counters for the admin dashboard.
func (p *PgSQL) PlatformStats(ctx context.Context) (storage.PlatformStats, error) {
	var plans []struct {
		Plan  string `db:"plan"`
		Count int64  `db:"count"`
	}
	if err := p.Builder.From(accountsTable).
		Select(goqu.I("plan"), goqu.COUNT("*").As("count")).
		GroupBy(goqu.I("plan")).
		Executor().ScanStructsContext(ctx, &plans); err != nil {
		return storage.PlatformStats{}, fmt.Errorf("could not count accounts by plan: %w", err)
	}

	users, err := p.Builder.From(usersTable).CountContext(ctx)
	if err != nil {
		return storage.PlatformStats{}, fmt.Errorf("could not count users: %w", err)
	}

	scans, err := p.ScanCountsByStatus(ctx)
	if err != nil {
		return storage.PlatformStats{}, err
	}

	var revenue []struct {
		Currency string `db:"currency"`
		Total    int64  `db:"total"`
	}
	if err := p.Builder.From(paymentsTable).
		Select(goqu.I("currency"), goqu.L("COALESCE(SUM(amount), 0)").As("total")).
		Where(goqu.I("status").Eq(string(domain.PaymentStatusSucceeded))).
		GroupBy(goqu.I("currency")).
		Executor().ScanStructsContext(ctx, &revenue); err != nil {
		return storage.PlatformStats{}, fmt.Errorf("could not sum revenue: %w", err)
	}

	stats := storage.PlatformStats{
		AccountsByPlan: make(map[domain.Plan]int64, len(plans)),
		Users:          users,
		ScansByStatus:  scans,
		Revenue:        make(map[string]int64, len(revenue)),
	}
	for _, pl := range plans {
		stats.AccountsByPlan[domain.Plan(pl.Plan)] = pl.Count
	}
	for _, r := range revenue {
		stats.Revenue[r.Currency] = r.Total
	}

	return stats, nil
}
