package postgres_test

import (
	"context"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/storage"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreAccount_Defaults(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, err := pgSQL.StoreAccount(ctx, domain.Account{Name: "acme", Plan: domain.PlanFree, ScanLimit: 3})
	require.NoError(t, err)
	require.NotEqual(t, domain.AccountID(uuid.Nil), acc.ID)
	require.Equal(t, domain.PlanFree, acc.Plan)
	require.Equal(t, 3, acc.ScanLimit)
	require.Zero(t, acc.ScansUsed)
	require.False(t, acc.PeriodStart.IsZero())
	require.Empty(t, acc.StripeCustomerID)

	got, err := pgSQL.AccountByID(ctx, acc.ID)
	require.NoError(t, err)
	require.Equal(t, acc.ID, got.ID)

	got, err = pgSQL.AccountByID(ctx, domain.AccountID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_UpdateAccount(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, _ := seedAccountUser(t, pgSQL, domain.PlanFree)

	plan := domain.PlanDeluxe
	limit := 100
	customer := "cus_" + uuid.NewString()
	sub := "sub_123"
	name := "Acme GmbH"
	updated, err := pgSQL.UpdateAccount(ctx, acc.ID, storage.AccountUpdates{
		Name:                 &name,
		Plan:                 &plan,
		ScanLimit:            &limit,
		StripeCustomerID:     &customer,
		StripeSubscriptionID: &sub,
		AddBonusCredits:      10,
	})
	require.NoError(t, err)
	require.Equal(t, name, updated.Name)
	require.Equal(t, domain.PlanDeluxe, updated.Plan)
	require.Equal(t, 100, updated.ScanLimit)
	require.Equal(t, 10, updated.BonusCredits)
	require.Equal(t, sub, updated.StripeSubscriptionID)

	byCustomer, err := pgSQL.AccountByStripeCustomer(ctx, customer)
	require.NoError(t, err)
	require.Equal(t, acc.ID, byCustomer.ID)

	// clearing the subscription stores NULL
	empty := ""
	updated, err = pgSQL.UpdateAccount(ctx, acc.ID, storage.AccountUpdates{StripeSubscriptionID: &empty})
	require.NoError(t, err)
	require.Empty(t, updated.StripeSubscriptionID)

	// customer ids are unique
	other, _ := seedAccountUser(t, pgSQL, domain.PlanFree)
	_, err = pgSQL.UpdateAccount(ctx, other.ID, storage.AccountUpdates{StripeCustomerID: &customer})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	missing, err := pgSQL.UpdateAccount(ctx, domain.AccountID(uuid.New()), storage.AccountUpdates{Name: &name})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_ConsumeScanCredit(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, _ := seedAccountUser(t, pgSQL, domain.PlanFree)
	_, err := pgSQL.UpdateAccount(ctx, acc.ID, storage.AccountUpdates{AddBonusCredits: 1})
	require.NoError(t, err)

	accountState := func() *domain.Account {
		t.Helper()
		got, err := pgSQL.AccountByID(ctx, acc.ID)
		require.NoError(t, err)

		return got
	}

	// three from the period quota
	for i := 1; i <= 3; i++ {
		source, err := pgSQL.ConsumeScanCredit(ctx, acc.ID)
		require.NoError(t, err)
		require.Equal(t, domain.CreditSourcePeriod, source)
		got := accountState()
		require.Equal(t, i, got.ScansUsed)
		require.Equal(t, 1, got.BonusCredits)
	}

	// then the bonus credit
	source, err := pgSQL.ConsumeScanCredit(ctx, acc.ID)
	require.NoError(t, err)
	require.Equal(t, domain.CreditSourceBonus, source)
	got := accountState()
	require.Equal(t, 3, got.ScansUsed)
	require.Zero(t, got.BonusCredits)

	// exhausted
	source, err = pgSQL.ConsumeScanCredit(ctx, acc.ID)
	require.NoError(t, err)
	require.Empty(t, source)

	source, err = pgSQL.ConsumeScanCredit(ctx, domain.AccountID(uuid.New()))
	require.NoError(t, err)
	require.Empty(t, source)
}

func TestPgSQL_RefundScanCredit(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, _ := seedAccountUser(t, pgSQL, domain.PlanFree)
	source, err := pgSQL.ConsumeScanCredit(ctx, acc.ID)
	require.NoError(t, err)
	require.Equal(t, domain.CreditSourcePeriod, source)

	// a period refund frees the quota slot and mints no bonus credit
	require.NoError(t, pgSQL.RefundScanCredit(ctx, acc.ID, source))
	got, err := pgSQL.AccountByID(ctx, acc.ID)
	require.NoError(t, err)
	require.Zero(t, got.ScansUsed)
	require.Zero(t, got.BonusCredits)

	// the usage counter never goes negative, e.g. after a period reset
	require.NoError(t, pgSQL.RefundScanCredit(ctx, acc.ID, domain.CreditSourcePeriod))
	got, err = pgSQL.AccountByID(ctx, acc.ID)
	require.NoError(t, err)
	require.Zero(t, got.ScansUsed)

	require.NoError(t, pgSQL.RefundScanCredit(ctx, acc.ID, domain.CreditSourceBonus))
	got, err = pgSQL.AccountByID(ctx, acc.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.BonusCredits)
}

// A FREE account that fails every scan must not turn its monthly quota into
// an ever growing pile of bonus credits.
func TestPgSQL_RefundScanCredit_QuotaDoesNotGrow(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, _ := seedAccountUser(t, pgSQL, domain.PlanFree)
	for range 10 {
		source, err := pgSQL.ConsumeScanCredit(ctx, acc.ID)
		require.NoError(t, err)
		require.NotEmpty(t, source)
		require.NoError(t, pgSQL.RefundScanCredit(ctx, acc.ID, source))
	}

	granted := 0
	for range 10 {
		source, err := pgSQL.ConsumeScanCredit(ctx, acc.ID)
		require.NoError(t, err)
		if source != "" {
			granted++
		}
	}
	require.Equal(t, 3, granted)
}

func TestPgSQL_ConsumeScanCredit_Concurrent(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, _ := seedAccountUser(t, pgSQL, domain.PlanFree)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			source, err := pgSQL.ConsumeScanCredit(ctx, acc.ID)
			if err == nil && source != "" {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 3, granted)
}

func TestPgSQL_ResetUsage(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	free, _ := seedAccountUser(t, pgSQL, domain.PlanFree)
	oneTime, _ := seedAccountUser(t, pgSQL, domain.PlanOneTime)
	for _, id := range []domain.AccountID{free.ID, oneTime.ID} {
		used := 2
		_, err := pgSQL.UpdateAccount(ctx, id, storage.AccountUpdates{ScansUsed: &used})
		require.NoError(t, err)
	}

	// nothing is older than an hour ago
	n, err := pgSQL.ResetUsage(ctx, []domain.Plan{domain.PlanFree}, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = pgSQL.ResetUsage(ctx, []domain.Plan{domain.PlanFree, domain.PlanDeluxe}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, int64(1))

	got, err := pgSQL.AccountByID(ctx, free.ID)
	require.NoError(t, err)
	require.Zero(t, got.ScansUsed)

	got, err = pgSQL.AccountByID(ctx, oneTime.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.ScansUsed)
}

func TestPgSQL_AccountsAndStats(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, u := seedAccountUser(t, pgSQL, domain.PlanFree)
	time.Sleep(5 * time.Millisecond)
	seedAccountUser(t, pgSQL, domain.PlanDeluxe)
	time.Sleep(5 * time.Millisecond)
	seedAccountUser(t, pgSQL, domain.PlanDeluxe)

	page, err := pgSQL.Accounts(ctx, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Accounts, 2)
	require.NotNil(t, page.NextCursor)

	page, err = pgSQL.Accounts(ctx, *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.Accounts, 1)
	require.Equal(t, acc.ID, page.Accounts[0].ID)
	require.Nil(t, page.NextCursor)

	_, err = pgSQL.StoreScans(ctx, newScan(acc, u, domain.ScanStatusCompleted))
	require.NoError(t, err)
	_, err = pgSQL.StorePayment(ctx, domain.Payment{
		AccountID: acc.ID, Plan: domain.PlanOneTime, StripeSessionID: "cs_1", Amount: 1900, Currency: "usd",
	})
	require.NoError(t, err)

	stats, err := pgSQL.PlatformStats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.AccountsByPlan[domain.PlanFree])
	require.Equal(t, int64(2), stats.AccountsByPlan[domain.PlanDeluxe])
	require.Equal(t, int64(3), stats.Users)
	require.Equal(t, int64(1), stats.ScansByStatus[domain.ScanStatusCompleted])
	require.Equal(t, int64(1900), stats.Revenue["usd"])
}

func TestPgSQL_LockAccount(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, _ := seedAccountUser(t, pgSQL, domain.PlanDeluxe)

	missing, err := pgSQL.LockAccount(ctx, domain.AccountID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)

	tx, err := pgSQL.Begin(ctx)
	require.NoError(t, err)
	locked, err := tx.LockAccount(ctx, acc.ID)
	require.NoError(t, err)
	require.Equal(t, acc.ID, locked.ID)

	done := make(chan error, 1)
	go func() {
		done <- pgSQL.WithTx(ctx, func(other storage.AllStorage) error {
			_, err := other.LockAccount(ctx, acc.ID)

			return err
		})
	}()

	select {
	case <-done:
		t.Fatal("second lock did not wait for the first transaction")
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, tx.Commit())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("second lock was never granted")
	}
}
