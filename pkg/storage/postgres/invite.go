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
	invitesTable = "account_invites"
)

func (p *PgSQL) StoreInvite(ctx context.Context, invite domain.AccountInvite) (*domain.AccountInvite, error) {
	var in, row PgInvite
	in.FromDomain(invite)

	if _, err := p.Builder.Insert(invitesTable).
		Rows(in).
		Returning(&PgInvite{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store invite: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store invite into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) InviteByToken(ctx context.Context, token string) (*domain.AccountInvite, error) {
	return p.inviteWhere(ctx, goqu.I("token").Eq(token))
}

func (p *PgSQL) InviteByID(ctx context.Context,
	accountID domain.AccountID,
	id domain.InviteID) (*domain.AccountInvite, error) {
	return p.inviteWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("account_id").Eq(uuid.UUID(accountID)),
	)
}

func (p *PgSQL) inviteWhere(ctx context.Context, w ...exp.Expression) (*domain.AccountInvite, error) {
	var row PgInvite
	found, err := p.Builder.From(invitesTable).
		Where(w...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch invite: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AccountInvites(ctx context.Context,
	accountID domain.AccountID,
	status domain.InviteStatus) ([]domain.AccountInvite, error) {
	w := []exp.Expression{goqu.I("account_id").Eq(uuid.UUID(accountID))}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}

	var rows []PgInvite
	if err := p.Builder.From(invitesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch account invites: %w", err)
	}

	out := make([]domain.AccountInvite, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) CountPendingInvites(ctx context.Context, accountID domain.AccountID, now time.Time) (int64, error) {
	n, err := p.Builder.From(invitesTable).
		Where(
			goqu.I("account_id").Eq(uuid.UUID(accountID)),
			goqu.I("status").Eq(string(domain.InviteStatusPending)),
			goqu.I("expires_at").Gt(now),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending invites: %w", err)
	}

	return n, nil
}

// UpdateInviteStatus only touches pending invites so that concurrent accept and
// revoke requests cannot both win.
func (p *PgSQL) UpdateInviteStatus(ctx context.Context,
	id domain.InviteID,
	status domain.InviteStatus) (*domain.AccountInvite, error) {
	var row PgInvite
	found, err := p.Builder.Update(invitesTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.InviteStatusPending)),
		).
		Returning(&PgInvite{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update invite status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ExpireInvites(ctx context.Context, before time.Time) (int64, error) {
	return p.expireInvites(ctx, goqu.I("expires_at").Lte(before))
}

func (p *PgSQL) ExpireStaleInvite(ctx context.Context,
	accountID domain.AccountID,
	email string,
	before time.Time) (int64, error) {
	return p.expireInvites(ctx,
		goqu.I("account_id").Eq(uuid.UUID(accountID)),
		goqu.I("email").Eq(email),
		goqu.I("expires_at").Lte(before),
	)
}

func (p *PgSQL) expireInvites(ctx context.Context, w ...exp.Expression) (int64, error) {
	w = append(w, goqu.I("status").Eq(string(domain.InviteStatusPending)))
	res, err := p.Builder.Update(invitesTable).
		Set(goqu.Record{
			"status":     string(domain.InviteStatusRevoked),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(w...).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not expire invites in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}
