package account

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"labelchecker/internal/auth"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/mailer"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	maxAccountName  = 100
	inviteTokenSize = 32
)

// Options configure invitations.
type Options struct {
	// InviteTTL is how long an invite can be accepted.
	InviteTTL time.Duration
	// AppURL is the base URL of the web app used to build accept links.
	AppURL string
}

type service struct {
	storage   storage.Storage
	sender    mailer.Sender
	templates *mailer.Templates
	options   Options
	now       func() time.Time
}

// New creates an account Service.
func New(storage storage.Storage, sender mailer.Sender, templates *mailer.Templates, options Options) Service {
	if options.InviteTTL <= 0 {
		options.InviteTTL = 7 * 24 * time.Hour
	}

	return &service{
		storage:   storage,
		sender:    sender,
		templates: templates,
		options:   options,
		now:       time.Now,
	}
}

func requireOwner(user domain.User) error {
	if !user.IsOwner() {
		return serrors.With(serrors.ErrForbidden, "only the account owner can do this")
	}

	return nil
}

func (s *service) account(ctx context.Context, st storage.AccountStorage, ID domain.AccountID) (*domain.Account, error) {
	acc, err := st.AccountByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get account: %w", err)
	}
	if acc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}

	return acc, nil
}

func (s *service) Overview(ctx context.Context, user domain.User) (*Overview, error) {
	acc, err := s.account(ctx, s.storage, user.AccountID)
	if err != nil {
		return nil, err
	}
	members, err := s.storage.AccountMembers(ctx, user.AccountID)
	if err != nil {
		return nil, fmt.Errorf("could not get members: %w", err)
	}

	out := &Overview{
		Account:        *acc,
		Limits:         acc.Plan.Limits(),
		ScansRemaining: acc.ScansRemaining(),
		Members:        members,
		PendingInvites: []domain.AccountInvite{},
	}
	if user.IsOwner() {
		invites, err := s.storage.AccountInvites(ctx, user.AccountID, domain.InviteStatusPending)
		if err != nil {
			return nil, fmt.Errorf("could not get invites: %w", err)
		}
		if invites != nil {
			out.PendingInvites = invites
		}
	}

	return out, nil
}

func (s *service) Rename(ctx context.Context, user domain.User, name string) (*domain.Account, error) {
	if err := requireOwner(user); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxAccountName {
		return nil, serrors.With(serrors.ErrBadRequest, "account name must be 1 to %d characters", maxAccountName)
	}

	acc, err := s.storage.UpdateAccount(ctx, user.AccountID, storage.AccountUpdates{Name: &name})
	if err != nil {
		return nil, fmt.Errorf("could not rename account: %w", err)
	}
	if acc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}

	return acc, nil
}

func (s *service) Members(ctx context.Context, user domain.User) ([]domain.User, error) {
	members, err := s.storage.AccountMembers(ctx, user.AccountID)
	if err != nil {
		return nil, fmt.Errorf("could not get members: %w", err)
	}

	return members, nil
}

func (s *service) RemoveMember(ctx context.Context, user domain.User, memberID domain.UserID) error {
	if err := requireOwner(user); err != nil {
		return err
	}
	if memberID == user.ID {
		return serrors.With(serrors.ErrBadRequest, "owners cannot remove themselves")
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		member, err := tx.UserByID(ctx, memberID)
		if err != nil {
			return fmt.Errorf("could not get member: %w", err)
		}
		if member == nil || member.AccountID != user.AccountID {
			return serrors.With(serrors.ErrNotFound, "member not found")
		}

		return s.moveToOwnAccount(ctx, tx, *member)
	}); err != nil {
		return fmt.Errorf("could not remove member: %w", err)
	}

	logger.Info(ctx, "member removed from account",
		zap.Stringer("accountId", user.AccountID), zap.Stringer("memberId", memberID))

	return nil
}

// moveToOwnAccount gives the user a personal FREE account it owns.
func (s *service) moveToOwnAccount(ctx context.Context, tx storage.AllStorage, user domain.User) error {
	acc, err := tx.StoreAccount(ctx, domain.Account{
		Name:      user.Name,
		Plan:      domain.PlanFree,
		ScanLimit: domain.PlanFree.Limits().ScansPerPeriod,
	})
	if err != nil {
		return fmt.Errorf("could not store account: %w", err)
	}

	role := domain.AccountRoleOwner
	updated, err := tx.UpdateUser(ctx, user.ID, storage.UserUpdates{AccountID: &acc.ID, AccountRole: &role})
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	if updated == nil {
		return serrors.With(serrors.ErrNotFound, "member not found")
	}

	return nil
}

func newInviteToken() (string, error) {
	b := make([]byte, inviteTokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (s *service) Invite(ctx context.Context, user domain.User, email string) (*domain.AccountInvite, error) {
	if err := requireOwner(user); err != nil {
		return nil, err
	}
	email, err := auth.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	token, err := newInviteToken()
	if err != nil {
		return nil, err
	}

	var invite *domain.AccountInvite
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.UserByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		if existing != nil && existing.AccountID == user.AccountID {
			return serrors.With(serrors.ErrConflict, "%s is already a member", email)
		}

		// the lock serializes seat checks of the account
		acc, err := tx.LockAccount(ctx, user.AccountID)
		if err != nil {
			return fmt.Errorf("could not lock account: %w", err)
		}
		if acc == nil {
			return serrors.With(serrors.ErrNotFound, "account not found")
		}
		now := s.now()
		if _, err := tx.ExpireStaleInvite(ctx, acc.ID, email, now); err != nil {
			return fmt.Errorf("could not expire stale invite: %w", err)
		}
		members, err := tx.CountAccountMembers(ctx, acc.ID)
		if err != nil {
			return fmt.Errorf("could not count members: %w", err)
		}
		pending, err := tx.CountPendingInvites(ctx, acc.ID, now)
		if err != nil {
			return fmt.Errorf("could not count invites: %w", err)
		}
		if seats := acc.Plan.Limits().TeamSize; members+pending >= int64(seats) {
			return serrors.With(serrors.ErrPaymentRequired, "the %s plan allows %d team members", acc.Plan, seats)
		}

		invite, err = tx.StoreInvite(ctx, domain.AccountInvite{
			AccountID: acc.ID,
			Email:     email,
			Token:     token,
			InvitedBy: user.ID,
			Status:    domain.InviteStatusPending,
			ExpiresAt: now.Add(s.options.InviteTTL),
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "a pending invite for this email already exists")
			}

			return fmt.Errorf("could not store invite: %w", err)
		}

		if _, err := tx.AddJob(ctx, InviteEmailJob{AccountID: acc.ID, InviteID: invite.ID}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not invite member: %w", err)
	}

	return invite, nil
}

func (s *service) Invites(ctx context.Context, user domain.User) ([]domain.AccountInvite, error) {
	if err := requireOwner(user); err != nil {
		return nil, err
	}

	invites, err := s.storage.AccountInvites(ctx, user.AccountID, "")
	if err != nil {
		return nil, fmt.Errorf("could not get invites: %w", err)
	}

	return invites, nil
}

func (s *service) RevokeInvite(ctx context.Context, user domain.User, inviteID domain.InviteID) error {
	if err := requireOwner(user); err != nil {
		return err
	}

	invite, err := s.storage.InviteByID(ctx, user.AccountID, inviteID)
	if err != nil {
		return fmt.Errorf("could not get invite: %w", err)
	}
	if invite == nil {
		return serrors.With(serrors.ErrNotFound, "invite not found")
	}

	revoked, err := s.storage.UpdateInviteStatus(ctx, inviteID, domain.InviteStatusRevoked)
	if err != nil {
		return fmt.Errorf("could not revoke invite: %w", err)
	}
	if revoked == nil {
		return serrors.With(serrors.ErrConflict, "invite is no longer pending")
	}

	return nil
}

func (s *service) AcceptInvite(ctx context.Context, user domain.User, token string) (*domain.User, error) {
	var updated *domain.User
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		invite, err := tx.InviteByToken(ctx, token)
		if err != nil {
			return fmt.Errorf("could not get invite: %w", err)
		}
		if invite == nil || !invite.Usable(s.now()) {
			return serrors.With(serrors.ErrNotFound, "invite not found or expired")
		}
		if !strings.EqualFold(invite.Email, user.Email) {
			return serrors.With(serrors.ErrForbidden, "invite was sent to a different email address")
		}
		if invite.AccountID == user.AccountID {
			return serrors.With(serrors.ErrConflict, "already a member of this account")
		}

		if user.IsOwner() {
			members, err := tx.CountAccountMembers(ctx, user.AccountID)
			if err != nil {
				return fmt.Errorf("could not count members: %w", err)
			}
			if members > 1 {
				return serrors.With(serrors.ErrConflict, "remove the other members of your account first")
			}
			acc, err := s.account(ctx, tx, user.AccountID)
			if err != nil {
				return err
			}
			if acc.StripeSubscriptionID != "" {
				return serrors.With(serrors.ErrConflict, "cancel your subscription first")
			}
		}
		if err := auth.ClaimSeat(ctx, tx, invite.AccountID); err != nil {
			return err
		}

		role := domain.AccountRoleMember
		updated, err = tx.UpdateUser(ctx, user.ID, storage.UserUpdates{AccountID: &invite.AccountID, AccountRole: &role})
		if err != nil {
			return fmt.Errorf("could not update user: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}

		accepted, err := tx.UpdateInviteStatus(ctx, invite.ID, domain.InviteStatusAccepted)
		if err != nil {
			return fmt.Errorf("could not accept invite: %w", err)
		}
		if accepted == nil {
			return serrors.With(serrors.ErrConflict, "invite is no longer pending")
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not accept invite: %w", err)
	}

	return updated, nil
}

func (s *service) InviteByToken(ctx context.Context, token string) (*InvitePreview, error) {
	invite, err := s.storage.InviteByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("could not get invite: %w", err)
	}
	if invite == nil || !invite.Usable(s.now()) {
		return nil, serrors.With(serrors.ErrNotFound, "invite not found or expired")
	}

	acc, err := s.account(ctx, s.storage, invite.AccountID)
	if err != nil {
		return nil, err
	}
	preview := &InvitePreview{Email: invite.Email, AccountName: acc.Name, ExpiresAt: invite.ExpiresAt}
	inviter, err := s.storage.UserByID(ctx, invite.InvitedBy)
	if err != nil {
		return nil, fmt.Errorf("could not get inviter: %w", err)
	}
	if inviter != nil {
		preview.InviterName = inviter.Name
	}

	return preview, nil
}

func (s *service) SendInviteEmail(ctx context.Context, accountID domain.AccountID, inviteID domain.InviteID) error {
	invite, err := s.storage.InviteByID(ctx, accountID, inviteID)
	if err != nil {
		return fmt.Errorf("could not get invite: %w", err)
	}
	if invite == nil || !invite.Usable(s.now()) {
		logger.Info(ctx, "skipping email of unusable invite", zap.Stringer("inviteId", inviteID))

		return nil
	}

	acc, err := s.account(ctx, s.storage, accountID)
	if err != nil {
		return err
	}
	data := mailer.Invite{
		To:          invite.Email,
		AccountName: acc.Name,
		AcceptURL:   strings.TrimSuffix(s.options.AppURL, "/") + "/invite/" + invite.Token,
		ExpiresAt:   invite.ExpiresAt,
	}
	inviter, err := s.storage.UserByID(ctx, invite.InvitedBy)
	if err != nil {
		return fmt.Errorf("could not get inviter: %w", err)
	}
	if inviter != nil {
		data.InviterName = inviter.Name
	}

	msg, err := s.templates.Invite(data)
	if err != nil {
		return fmt.Errorf("could not render invite: %w", err)
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("could not send invite: %w", err)
	}

	return nil
}
