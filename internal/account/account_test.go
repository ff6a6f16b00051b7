package account_test

import (
	"context"
	"fmt"
	"labelchecker/internal/account"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/mailer"
	mockmailer "labelchecker/pkg/mailer/mock"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"
	mockstorage "labelchecker/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

type fixture struct {
	ctrl   *gomock.Controller
	st     *mockstorage.MockStorage
	sender *mockmailer.MockSender
	svc    account.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	sender := mockmailer.NewMockSender(ctrl)
	tpls, err := mailer.NewTemplates()
	require.NoError(t, err)

	return fixture{
		ctrl:   ctrl,
		st:     st,
		sender: sender,
		svc: account.New(st, sender, tpls, account.Options{
			InviteTTL: 48 * time.Hour,
			AppURL:    "https://app.example.com/",
		}),
	}
}

func (f fixture) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) {
	f.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func owner() domain.User {
	return domain.User{
		ID:          domain.UserID(uuid.New()),
		AccountID:   domain.AccountID(uuid.New()),
		Email:       "owner@example.com",
		Name:        "Olive",
		AccountRole: domain.AccountRoleOwner,
	}
}

func member(accountID domain.AccountID) domain.User {
	return domain.User{
		ID:          domain.UserID(uuid.New()),
		AccountID:   accountID,
		Email:       "member@example.com",
		Name:        "Max",
		AccountRole: domain.AccountRoleMember,
	}
}

func TestOverview(t *testing.T) {
	f := newFixture(t)
	o := owner()
	acc := domain.Account{ID: o.AccountID, Plan: domain.PlanDeluxe, ScanLimit: 100, ScansUsed: 40, BonusCredits: 2}
	invites := []domain.AccountInvite{{Email: "x@example.com"}}

	f.st.EXPECT().AccountByID(gomock.Any(), o.AccountID).Return(&acc, nil).Times(2)
	f.st.EXPECT().AccountMembers(gomock.Any(), o.AccountID).Return([]domain.User{o}, nil).Times(2)
	f.st.EXPECT().AccountInvites(gomock.Any(), o.AccountID, domain.InviteStatusPending).Return(invites, nil)

	got, err := f.svc.Overview(context.Background(), o)
	require.NoError(t, err)
	require.Equal(t, 62, got.ScansRemaining)
	require.Equal(t, 5, got.Limits.TeamSize)
	require.Len(t, got.PendingInvites, 1)

	got, err = f.svc.Overview(context.Background(), member(o.AccountID))
	require.NoError(t, err)
	require.Empty(t, got.PendingInvites)
}

func TestRename(t *testing.T) {
	f := newFixture(t)
	o := owner()

	_, err := f.svc.Rename(context.Background(), member(o.AccountID), "New")
	require.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = f.svc.Rename(context.Background(), o, "   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.st.EXPECT().UpdateAccount(gomock.Any(), o.AccountID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.AccountID, u storage.AccountUpdates) (*domain.Account, error) {
			require.Equal(t, "Acme", *u.Name)

			return &domain.Account{ID: o.AccountID, Name: *u.Name}, nil
		})
	acc, err := f.svc.Rename(context.Background(), o, " Acme ")
	require.NoError(t, err)
	require.Equal(t, "Acme", acc.Name)
}

func TestInvite(t *testing.T) {
	o := owner()
	acc := domain.Account{ID: o.AccountID, Plan: domain.PlanDeluxe}

	t.Run("stores invite and enqueues email", func(t *testing.T) {
		f := newFixture(t)
		inviteID := domain.InviteID(uuid.New())
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
			tx.EXPECT().LockAccount(gomock.Any(), o.AccountID).Return(&acc, nil)
			tx.EXPECT().ExpireStaleInvite(gomock.Any(), o.AccountID, "new@example.com", gomock.Any()).Return(int64(0), nil)
			tx.EXPECT().CountAccountMembers(gomock.Any(), o.AccountID).Return(int64(2), nil)
			tx.EXPECT().CountPendingInvites(gomock.Any(), o.AccountID, gomock.Any()).Return(int64(2), nil)
			tx.EXPECT().StoreInvite(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, inv domain.AccountInvite) (*domain.AccountInvite, error) {
					require.Equal(t, "new@example.com", inv.Email)
					require.Equal(t, o.ID, inv.InvitedBy)
					require.Equal(t, domain.InviteStatusPending, inv.Status)
					require.Len(t, inv.Token, 43)
					require.WithinDuration(t, time.Now().Add(48*time.Hour), inv.ExpiresAt, time.Minute)
					inv.ID = inviteID

					return &inv, nil
				})
			tx.EXPECT().AddJob(gomock.Any(), account.InviteEmailJob{AccountID: o.AccountID, InviteID: inviteID}, nil).
				Return(true, nil)
		})

		inv, err := f.svc.Invite(context.Background(), o, "New@Example.com")
		require.NoError(t, err)
		require.Equal(t, inviteID, inv.ID)
	})

	t.Run("team is full", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
			tx.EXPECT().LockAccount(gomock.Any(), o.AccountID).Return(&acc, nil)
			tx.EXPECT().ExpireStaleInvite(gomock.Any(), o.AccountID, gomock.Any(), gomock.Any()).Return(int64(0), nil)
			tx.EXPECT().CountAccountMembers(gomock.Any(), o.AccountID).Return(int64(4), nil)
			tx.EXPECT().CountPendingInvites(gomock.Any(), o.AccountID, gomock.Any()).Return(int64(1), nil)
		})

		_, err := f.svc.Invite(context.Background(), o, "new@example.com")
		require.ErrorIs(t, err, serrors.ErrPaymentRequired)
	})

	t.Run("free plan has a single seat", func(t *testing.T) {
		f := newFixture(t)
		free := domain.Account{ID: o.AccountID, Plan: domain.PlanFree}
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
			tx.EXPECT().LockAccount(gomock.Any(), o.AccountID).Return(&free, nil)
			tx.EXPECT().ExpireStaleInvite(gomock.Any(), o.AccountID, gomock.Any(), gomock.Any()).Return(int64(0), nil)
			tx.EXPECT().CountAccountMembers(gomock.Any(), o.AccountID).Return(int64(1), nil)
			tx.EXPECT().CountPendingInvites(gomock.Any(), o.AccountID, gomock.Any()).Return(int64(0), nil)
		})

		_, err := f.svc.Invite(context.Background(), o, "new@example.com")
		require.ErrorIs(t, err, serrors.ErrPaymentRequired)
	})

	t.Run("already a member", func(t *testing.T) {
		f := newFixture(t)
		m := member(o.AccountID)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByEmail(gomock.Any(), m.Email).Return(&m, nil)
		})

		_, err := f.svc.Invite(context.Background(), o, m.Email)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("duplicate pending invite", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
			tx.EXPECT().LockAccount(gomock.Any(), o.AccountID).Return(&acc, nil)
			tx.EXPECT().ExpireStaleInvite(gomock.Any(), o.AccountID, gomock.Any(), gomock.Any()).Return(int64(0), nil)
			tx.EXPECT().CountAccountMembers(gomock.Any(), o.AccountID).Return(int64(1), nil)
			tx.EXPECT().CountPendingInvites(gomock.Any(), o.AccountID, gomock.Any()).Return(int64(0), nil)
			tx.EXPECT().StoreInvite(gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("could not insert invite: %w", storage.ErrDuplicate))
		})

		_, err := f.svc.Invite(context.Background(), o, "new@example.com")
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("expired invite of the same email is replaced", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
			tx.EXPECT().LockAccount(gomock.Any(), o.AccountID).Return(&acc, nil)
			gomock.InOrder(
				tx.EXPECT().ExpireStaleInvite(gomock.Any(), o.AccountID, "new@example.com", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.AccountID, _ string, before time.Time) (int64, error) {
						require.WithinDuration(t, time.Now(), before, time.Minute)

						return 1, nil
					}),
				tx.EXPECT().StoreInvite(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv domain.AccountInvite) (*domain.AccountInvite, error) {
						inv.ID = domain.InviteID(uuid.New())

						return &inv, nil
					}),
			)
			tx.EXPECT().CountAccountMembers(gomock.Any(), o.AccountID).Return(int64(1), nil)
			tx.EXPECT().CountPendingInvites(gomock.Any(), o.AccountID, gomock.Any()).Return(int64(0), nil)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).Return(true, nil)
		})

		inv, err := f.svc.Invite(context.Background(), o, "new@example.com")
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusPending, inv.Status)
	})

	t.Run("members cannot invite", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Invite(context.Background(), member(o.AccountID), "new@example.com")
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})
}

func TestInviteEmailJob_Args(t *testing.T) {
	var args river.JobArgs = account.InviteEmailJob{}
	require.Equal(t, "InviteEmailJob", args.Kind())
	require.True(t, account.InviteEmailJob{}.InsertOpts().UniqueOpts.ByArgs)
}

func TestRemoveMember(t *testing.T) {
	o := owner()

	t.Run("moves member to own account", func(t *testing.T) {
		f := newFixture(t)
		m := member(o.AccountID)
		newAccount := domain.AccountID(uuid.New())
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), m.ID).Return(&m, nil)
			tx.EXPECT().StoreAccount(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, acc domain.Account) (*domain.Account, error) {
					require.Equal(t, domain.PlanFree, acc.Plan)
					require.Equal(t, "Max", acc.Name)
					acc.ID = newAccount

					return &acc, nil
				})
			tx.EXPECT().UpdateUser(gomock.Any(), m.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.UserID, u storage.UserUpdates) (*domain.User, error) {
					require.Equal(t, newAccount, *u.AccountID)
					require.Equal(t, domain.AccountRoleOwner, *u.AccountRole)

					return &m, nil
				})
		})

		require.NoError(t, f.svc.RemoveMember(context.Background(), o, m.ID))
	})

	t.Run("member of another account", func(t *testing.T) {
		f := newFixture(t)
		m := member(domain.AccountID(uuid.New()))
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().UserByID(gomock.Any(), m.ID).Return(&m, nil)
		})

		require.ErrorIs(t, f.svc.RemoveMember(context.Background(), o, m.ID), serrors.ErrNotFound)
	})

	t.Run("cannot remove self", func(t *testing.T) {
		f := newFixture(t)
		require.ErrorIs(t, f.svc.RemoveMember(context.Background(), o, o.ID), serrors.ErrBadRequest)
	})
}

func TestRevokeInvite(t *testing.T) {
	f := newFixture(t)
	o := owner()
	inv := domain.AccountInvite{ID: domain.InviteID(uuid.New()), AccountID: o.AccountID}

	f.st.EXPECT().InviteByID(gomock.Any(), o.AccountID, inv.ID).Return(&inv, nil).Times(2)
	f.st.EXPECT().UpdateInviteStatus(gomock.Any(), inv.ID, domain.InviteStatusRevoked).Return(&inv, nil)
	require.NoError(t, f.svc.RevokeInvite(context.Background(), o, inv.ID))

	f.st.EXPECT().UpdateInviteStatus(gomock.Any(), inv.ID, domain.InviteStatusRevoked).Return(nil, nil)
	require.ErrorIs(t, f.svc.RevokeInvite(context.Background(), o, inv.ID), serrors.ErrConflict)

	f.st.EXPECT().InviteByID(gomock.Any(), o.AccountID, gomock.Any()).Return(nil, nil)
	require.ErrorIs(t, f.svc.RevokeInvite(context.Background(), o, domain.InviteID(uuid.New())), serrors.ErrNotFound)
}

func TestAcceptInvite(t *testing.T) {
	target := domain.AccountID(uuid.New())
	pending := func(email string) *domain.AccountInvite {
		return &domain.AccountInvite{
			ID:        domain.InviteID(uuid.New()),
			AccountID: target,
			Email:     email,
			Status:    domain.InviteStatusPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}
	}

	t.Run("solo owner joins", func(t *testing.T) {
		f := newFixture(t)
		u := owner()
		inv := pending(u.Email)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().InviteByToken(gomock.Any(), "tok").Return(inv, nil)
			tx.EXPECT().CountAccountMembers(gomock.Any(), u.AccountID).Return(int64(1), nil)
			tx.EXPECT().AccountByID(gomock.Any(), u.AccountID).Return(&domain.Account{ID: u.AccountID}, nil)
			tx.EXPECT().LockAccount(gomock.Any(), target).Return(&domain.Account{ID: target, Plan: domain.PlanDeluxe}, nil)
			tx.EXPECT().CountAccountMembers(gomock.Any(), target).Return(int64(2), nil)
			tx.EXPECT().UpdateUser(gomock.Any(), u.ID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.UserID, upd storage.UserUpdates) (*domain.User, error) {
					moved := u
					moved.AccountID = *upd.AccountID
					moved.AccountRole = *upd.AccountRole

					return &moved, nil
				})
			tx.EXPECT().UpdateInviteStatus(gomock.Any(), inv.ID, domain.InviteStatusAccepted).Return(inv, nil)
		})

		got, err := f.svc.AcceptInvite(context.Background(), u, "tok")
		require.NoError(t, err)
		require.Equal(t, target, got.AccountID)
		require.Equal(t, domain.AccountRoleMember, got.AccountRole)
	})

	t.Run("no seat left after a downgrade", func(t *testing.T) {
		f := newFixture(t)
		u := member(domain.AccountID(uuid.New()))
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().InviteByToken(gomock.Any(), "tok").Return(pending(u.Email), nil)
			tx.EXPECT().LockAccount(gomock.Any(), target).Return(&domain.Account{ID: target, Plan: domain.PlanFree}, nil)
			tx.EXPECT().CountAccountMembers(gomock.Any(), target).Return(int64(1), nil)
		})

		_, err := f.svc.AcceptInvite(context.Background(), u, "tok")
		require.ErrorIs(t, err, serrors.ErrPaymentRequired)
	})

	t.Run("owner with team cannot leave", func(t *testing.T) {
		f := newFixture(t)
		u := owner()
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().InviteByToken(gomock.Any(), "tok").Return(pending(u.Email), nil)
			tx.EXPECT().CountAccountMembers(gomock.Any(), u.AccountID).Return(int64(3), nil)
		})

		_, err := f.svc.AcceptInvite(context.Background(), u, "tok")
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("owner with subscription cannot leave", func(t *testing.T) {
		f := newFixture(t)
		u := owner()
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().InviteByToken(gomock.Any(), "tok").Return(pending(u.Email), nil)
			tx.EXPECT().CountAccountMembers(gomock.Any(), u.AccountID).Return(int64(1), nil)
			tx.EXPECT().AccountByID(gomock.Any(), u.AccountID).
				Return(&domain.Account{ID: u.AccountID, StripeSubscriptionID: "sub_1"}, nil)
		})

		_, err := f.svc.AcceptInvite(context.Background(), u, "tok")
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("wrong email", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().InviteByToken(gomock.Any(), "tok").Return(pending("other@example.com"), nil)
		})

		_, err := f.svc.AcceptInvite(context.Background(), owner(), "tok")
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("expired", func(t *testing.T) {
		f := newFixture(t)
		u := owner()
		inv := pending(u.Email)
		inv.ExpiresAt = time.Now().Add(-time.Second)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().InviteByToken(gomock.Any(), "tok").Return(inv, nil)
		})

		_, err := f.svc.AcceptInvite(context.Background(), u, "tok")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestInviteByToken(t *testing.T) {
	f := newFixture(t)
	o := owner()
	inv := domain.AccountInvite{
		AccountID: o.AccountID,
		Email:     "new@example.com",
		InvitedBy: o.ID,
		Status:    domain.InviteStatusPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	f.st.EXPECT().InviteByToken(gomock.Any(), "tok").Return(&inv, nil)
	f.st.EXPECT().AccountByID(gomock.Any(), o.AccountID).Return(&domain.Account{Name: "Acme"}, nil)
	f.st.EXPECT().UserByID(gomock.Any(), o.ID).Return(&o, nil)

	got, err := f.svc.InviteByToken(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, account.InvitePreview{
		Email:       "new@example.com",
		AccountName: "Acme",
		InviterName: "Olive",
		ExpiresAt:   inv.ExpiresAt,
	}, *got)

	f.st.EXPECT().InviteByToken(gomock.Any(), "missing").Return(nil, nil)
	_, err = f.svc.InviteByToken(context.Background(), "missing")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestSendInviteEmail(t *testing.T) {
	o := owner()
	inv := domain.AccountInvite{
		ID:        domain.InviteID(uuid.New()),
		AccountID: o.AccountID,
		Email:     "new@example.com",
		Token:     "tok123",
		InvitedBy: o.ID,
		Status:    domain.InviteStatusPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	t.Run("sends", func(t *testing.T) {
		f := newFixture(t)
		f.st.EXPECT().InviteByID(gomock.Any(), o.AccountID, inv.ID).Return(&inv, nil)
		f.st.EXPECT().AccountByID(gomock.Any(), o.AccountID).Return(&domain.Account{Name: "Acme"}, nil)
		f.st.EXPECT().UserByID(gomock.Any(), o.ID).Return(&o, nil)
		f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg mailer.Message) error {
				require.Equal(t, "new@example.com", msg.To)
				require.Contains(t, msg.Text, "https://app.example.com/invite/tok123")
				require.Contains(t, msg.Subject, "Acme")

				return nil
			})

		require.NoError(t, f.svc.SendInviteEmail(context.Background(), o.AccountID, inv.ID))
	})

	t.Run("skips revoked", func(t *testing.T) {
		f := newFixture(t)
		revoked := inv
		revoked.Status = domain.InviteStatusRevoked
		f.st.EXPECT().InviteByID(gomock.Any(), o.AccountID, inv.ID).Return(&revoked, nil)

		require.NoError(t, f.svc.SendInviteEmail(context.Background(), o.AccountID, inv.ID))
	})
}
