package account

import (
	"labelchecker/pkg/domain"

	"github.com/riverqueue/river"
)

// InviteEmailJob asks a worker to send the invitation email of an invite.
type InviteEmailJob struct {
	AccountID domain.AccountID `json:"accountId"`
	InviteID  domain.InviteID  `json:"inviteId" river:"unique"`
}

// Kind returns the River job kind used to dispatch the invite email worker.
func (InviteEmailJob) Kind() string { return "InviteEmailJob" }

// InsertOpts sends every invite at most once while it is queued.
func (InviteEmailJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 5,
		UniqueOpts:  river.UniqueOpts{ByArgs: true},
	}
}
