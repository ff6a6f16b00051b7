package postgres

import (
	"context"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/storage"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var in, row PgUser
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	in.FromDomain(user)

	if _, err := p.Builder.Insert(usersTable).
		Rows(in).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store user: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("email").Eq(strings.ToLower(strings.TrimSpace(email))))
}

func (p *PgSQL) userWhere(ctx context.Context, w ...exp.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(w...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// AccountMembers lists the users of an account, owners first and then by join date.
func (p *PgSQL) AccountMembers(ctx context.Context, accountID domain.AccountID) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(goqu.I("account_id").Eq(uuid.UUID(accountID))).
		Order(
			goqu.L("account_role = ?", string(domain.AccountRoleOwner)).Desc(),
			goqu.I("created_at").Asc(),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch account members: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) CountAccountMembers(ctx context.Context, accountID domain.AccountID) (int64, error) {
	n, err := p.Builder.From(usersTable).
		Where(goqu.I("account_id").Eq(uuid.UUID(accountID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count account members: %w", err)
	}

	return n, nil
}

func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.AccountID != nil {
		rec["account_id"] = uuid.UUID(*updates.AccountID)
	}
	if updates.Role != nil {
		rec["role"] = string(*updates.Role)
	}
	if updates.AccountRole != nil {
		rec["account_role"] = string(*updates.AccountRole)
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Users returns users ordered by created_at DESC, id DESC.
func (p *PgSQL) Users(ctx context.Context, cursor time.Time, limit uint) (storage.UserPage, error) {
	ds := p.Builder.From(usersTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)
	if !cursor.IsZero() {
		ds = ds.Where(goqu.I("created_at").Lt(cursor))
	}

	var rows []PgUser
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPage{}, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return storage.UserPage{Users: out, NextCursor: nextCursor}, nil
}
