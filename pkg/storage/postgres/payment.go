package postgres

import (
	"context"
	"fmt"
	"labelchecker/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	paymentsTable = "payments"
)

// StorePayment inserts the payment unless one with the same Stripe identifiers
// exists already. Webhooks are delivered at least once, so duplicates are expected.
func (p *PgSQL) StorePayment(ctx context.Context, payment domain.Payment) (bool, error) {
	var in PgPayment
	in.FromDomain(payment)

	res, err := p.Builder.Insert(paymentsTable).
		Rows(in).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not store payment into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) AccountPayments(ctx context.Context, accountID domain.AccountID, limit uint) ([]domain.Payment, error) {
	var rows []PgPayment
	if err := p.Builder.From(paymentsTable).
		Where(goqu.I("account_id").Eq(uuid.UUID(accountID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch account payments: %w", err)
	}

	out := make([]domain.Payment, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
