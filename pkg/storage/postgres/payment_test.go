package postgres_test

import (
	"context"
	"labelchecker/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StorePayment_Idempotent(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, _ := seedAccountUser(t, pgSQL, domain.PlanFree)

	p := domain.Payment{
		AccountID:       acc.ID,
		Plan:            domain.PlanDeluxe,
		StripeSessionID: "cs_test_1",
		Amount:          2900,
		Currency:        "usd",
	}
	stored, err := pgSQL.StorePayment(ctx, p)
	require.NoError(t, err)
	require.True(t, stored)

	stored, err = pgSQL.StorePayment(ctx, p)
	require.NoError(t, err)
	require.False(t, stored)

	stored, err = pgSQL.StorePayment(ctx, domain.Payment{
		AccountID:       acc.ID,
		Plan:            domain.PlanDeluxe,
		StripeInvoiceID: "in_1",
		Amount:          2900,
		Currency:        "usd",
	})
	require.NoError(t, err)
	require.True(t, stored)

	payments, err := pgSQL.AccountPayments(ctx, acc.ID, 10)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	for _, pm := range payments {
		require.Equal(t, domain.PaymentStatusSucceeded, pm.Status)
		require.Equal(t, int64(2900), pm.Amount)
	}
}
