package account

import (
	"context"
	"labelchecker/pkg/domain"
	"time"
)

// Overview is everything the account settings page shows.
type Overview struct {
	Account        domain.Account    `json:"account"`
	Limits         domain.PlanLimits `json:"limits"`
	ScansRemaining int               `json:"scansRemaining"`
	Members        []domain.User     `json:"members"`
	// PendingInvites is only filled for owners.
	PendingInvites []domain.AccountInvite `json:"pendingInvites"`
}

// InvitePreview is the public view of an invite shown on the signup page.
type InvitePreview struct {
	Email       string    `json:"email"`
	AccountName string    `json:"accountName"`
	InviterName string    `json:"inviterName"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Service manages accounts, their members and invitations. Every method taking a
// user acts on that user's account.
//
//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Service interface {
	Overview(ctx context.Context, user domain.User) (*Overview, error)
	Rename(ctx context.Context, user domain.User, name string) (*domain.Account, error)
	Members(ctx context.Context, user domain.User) ([]domain.User, error)
	// RemoveMember moves the member into a fresh FREE account of its own.
	RemoveMember(ctx context.Context, user domain.User, memberID domain.UserID) error

	Invite(ctx context.Context, user domain.User, email string) (*domain.AccountInvite, error)
	Invites(ctx context.Context, user domain.User) ([]domain.AccountInvite, error)
	RevokeInvite(ctx context.Context, user domain.User, inviteID domain.InviteID) error
	// AcceptInvite moves the user into the inviting account as a member.
	AcceptInvite(ctx context.Context, user domain.User, token string) (*domain.User, error)
	InviteByToken(ctx context.Context, token string) (*InvitePreview, error)

	// SendInviteEmail delivers the invitation email. Invites that are no longer
	// pending are skipped.
	SendInviteEmail(ctx context.Context, accountID domain.AccountID, inviteID domain.InviteID) error
}
