package storage

import (
	"context"
	"labelchecker/pkg/domain"
	"time"
)

// InviteStorage persists account invites.
type InviteStorage interface {
	// StoreInvite inserts a new invite. ErrDuplicate is returned when a pending invite
	// for the same email already exists in the account.
	StoreInvite(ctx context.Context, invite domain.AccountInvite) (*domain.AccountInvite, error)
	// InviteByToken returns the invite with the given token or nil.
	InviteByToken(ctx context.Context, token string) (*domain.AccountInvite, error)
	// InviteByID returns the invite of the account or nil.
	InviteByID(ctx context.Context, accountID domain.AccountID, ID domain.InviteID) (*domain.AccountInvite, error)
	// AccountInvites lists the invites of an account in the given status. Empty status lists all.
	AccountInvites(ctx context.Context, accountID domain.AccountID, status domain.InviteStatus) ([]domain.AccountInvite, error)
	// CountPendingInvites counts unexpired pending invites of an account.
	CountPendingInvites(ctx context.Context, accountID domain.AccountID, now time.Time) (int64, error)
	// UpdateInviteStatus moves a pending invite to the given status. It returns nil
	// when the invite does not exist or is no longer pending.
	UpdateInviteStatus(ctx context.Context, ID domain.InviteID, status domain.InviteStatus) (*domain.AccountInvite, error)
	// ExpireInvites revokes pending invites that expired before the given time and
	// returns how many were changed.
	ExpireInvites(ctx context.Context, before time.Time) (int64, error)
	// ExpireStaleInvite revokes the pending invite of one email in an account when it
	// expired before the given time, so a new invite can take its place.
	ExpireStaleInvite(ctx context.Context, accountID domain.AccountID, email string, before time.Time) (int64, error)
}
