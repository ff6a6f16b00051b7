package postgres_test

import (
	"context"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Invites(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, owner := seedAccountUser(t, pgSQL, domain.PlanDeluxe)
	now := time.Now()

	inv, err := pgSQL.StoreInvite(ctx, domain.AccountInvite{
		AccountID: acc.ID,
		Email:     "teammate@example.com",
		Token:     uuid.NewString(),
		InvitedBy: owner.ID,
		Status:    domain.InviteStatusPending,
		ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.InviteID(uuid.Nil), inv.ID)

	// one pending invite per email and account
	_, err = pgSQL.StoreInvite(ctx, domain.AccountInvite{
		AccountID: acc.ID,
		Email:     "teammate@example.com",
		Token:     uuid.NewString(),
		InvitedBy: owner.ID,
		Status:    domain.InviteStatusPending,
		ExpiresAt: now.Add(time.Hour),
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	byToken, err := pgSQL.InviteByToken(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, inv.ID, byToken.ID)

	byID, err := pgSQL.InviteByID(ctx, acc.ID, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.Email, byID.Email)

	other, _ := seedAccountUser(t, pgSQL, domain.PlanFree)
	byID, err = pgSQL.InviteByID(ctx, other.ID, inv.ID)
	require.NoError(t, err)
	require.Nil(t, byID)

	n, err := pgSQL.CountPendingInvites(ctx, acc.ID, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	accepted, err := pgSQL.UpdateInviteStatus(ctx, inv.ID, domain.InviteStatusAccepted)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusAccepted, accepted.Status)

	// no longer pending
	again, err := pgSQL.UpdateInviteStatus(ctx, inv.ID, domain.InviteStatusRevoked)
	require.NoError(t, err)
	require.Nil(t, again)

	list, err := pgSQL.AccountInvites(ctx, acc.ID, domain.InviteStatusPending)
	require.NoError(t, err)
	require.Empty(t, list)

	list, err = pgSQL.AccountInvites(ctx, acc.ID, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestPgSQL_ExpireInvites(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, owner := seedAccountUser(t, pgSQL, domain.PlanDeluxe)
	now := time.Now()

	expired, err := pgSQL.StoreInvite(ctx, domain.AccountInvite{
		AccountID: acc.ID, Email: "old@example.com", Token: uuid.NewString(), InvitedBy: owner.ID,
		Status: domain.InviteStatusPending, ExpiresAt: now.Add(-time.Minute),
	})
	require.NoError(t, err)
	_, err = pgSQL.StoreInvite(ctx, domain.AccountInvite{
		AccountID: acc.ID, Email: "new@example.com", Token: uuid.NewString(), InvitedBy: owner.ID,
		Status: domain.InviteStatusPending, ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	n, err := pgSQL.CountPendingInvites(ctx, acc.ID, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n, "expired invites do not hold seats")

	changed, err := pgSQL.ExpireInvites(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), changed)

	got, err := pgSQL.InviteByToken(ctx, expired.Token)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusRevoked, got.Status)
}

func TestPgSQL_ExpireStaleInvite(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, owner := seedAccountUser(t, pgSQL, domain.PlanDeluxe)
	now := time.Now()

	stale, err := pgSQL.StoreInvite(ctx, domain.AccountInvite{
		AccountID: acc.ID, Email: "again@example.com", Token: uuid.NewString(), InvitedBy: owner.ID,
		Status: domain.InviteStatusPending, ExpiresAt: now.Add(-time.Minute),
	})
	require.NoError(t, err)
	fresh, err := pgSQL.StoreInvite(ctx, domain.AccountInvite{
		AccountID: acc.ID, Email: "fresh@example.com", Token: uuid.NewString(), InvitedBy: owner.ID,
		Status: domain.InviteStatusPending, ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	// unexpired invites stay
	changed, err := pgSQL.ExpireStaleInvite(ctx, acc.ID, fresh.Email, now)
	require.NoError(t, err)
	require.Zero(t, changed)

	changed, err = pgSQL.ExpireStaleInvite(ctx, acc.ID, stale.Email, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), changed)

	// the email can be invited again
	_, err = pgSQL.StoreInvite(ctx, domain.AccountInvite{
		AccountID: acc.ID, Email: "again@example.com", Token: uuid.NewString(), InvitedBy: owner.ID,
		Status: domain.InviteStatusPending, ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := pgSQL.InviteByToken(ctx, stale.Token)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusRevoked, got.Status)
}
