package domain

import "time"

// InviteStatus is the lifecycle state of an account invite.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusRevoked  InviteStatus = "REVOKED"
)

// AccountInvite invites an email address to join an account as a member.
type AccountInvite struct {
	ID        InviteID     `json:"id"`
	AccountID AccountID    `json:"accountId"`
	Email     string       `json:"email"`
	Token     string       `json:"-"`
	InvitedBy UserID       `json:"invitedBy"`
	Status    InviteStatus `json:"status"`
	ExpiresAt time.Time    `json:"expiresAt"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// Usable reports whether the invite can still be accepted at the given time.
func (i AccountInvite) Usable(now time.Time) bool {
	return i.Status == InviteStatusPending && now.Before(i.ExpiresAt)
}
