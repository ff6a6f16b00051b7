package auth

import (
	"context"
	"errors"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
	maxNameLength    = 100
)

// Options configures the authenticator.
type Options struct {
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

type authenticator struct {
	storage storage.Storage
	tokens  *Tokens
	options Options
	now     func() time.Time
	// dummyHash is compared against when the email is unknown so both
	// failures cost one bcrypt round.
	dummyHash []byte
}

// New creates an Authenticator issuing tokens with the given Tokens.
func New(storage storage.Storage, tokens *Tokens, options Options) Authenticator {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), options.BcryptCost)
	if err != nil {
		// only an invalid cost fails; fall back to the default one
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	}

	return &authenticator{
		storage:   storage,
		tokens:    tokens,
		options:   options,
		now:       time.Now,
		dummyHash: dummyHash,
	}
}

// NormalizeEmail validates an address and returns it lower-cased.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", serrors.With(serrors.ErrBadRequest, "invalid email address")
	}

	return strings.ToLower(addr.Address), nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return serrors.With(serrors.ErrBadRequest, "password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return serrors.With(serrors.ErrBadRequest, "password must be at most %d bytes", maxPasswordBytes)
	}

	return nil
}

func cleanName(name, fallback string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallback
	}
	if len(name) > maxNameLength {
		return "", serrors.With(serrors.ErrBadRequest, "name must be at most %d characters", maxNameLength)
	}

	return name, nil
}

// Register creates a user. Without an invite token a FREE account owned by the
// new user is created; with one the user joins the inviting account.
func (a *authenticator) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	name, err := cleanName(req.Name, email[:strings.IndexByte(email, '@')])
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	var user *domain.User
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		newUser := domain.User{
			Email:        email,
			Name:         name,
			Role:         domain.RoleUser,
			PasswordHash: string(hash),
		}

		if req.InviteToken != "" {
			invite, err := tx.InviteByToken(ctx, req.InviteToken)
			if err != nil {
				return fmt.Errorf("could not get invite: %w", err)
			}
			if invite == nil || !invite.Usable(a.now()) {
				return serrors.With(serrors.ErrNotFound, "invite not found or expired")
			}
			if !strings.EqualFold(invite.Email, email) {
				return serrors.With(serrors.ErrForbidden, "invite was sent to a different email address")
			}
			if err := ClaimSeat(ctx, tx, invite.AccountID); err != nil {
				return err
			}

			newUser.AccountID = invite.AccountID
			newUser.AccountRole = domain.AccountRoleMember
			if user, err = storeUser(ctx, tx, newUser); err != nil {
				return err
			}

			accepted, err := tx.UpdateInviteStatus(ctx, invite.ID, domain.InviteStatusAccepted)
			if err != nil {
				return fmt.Errorf("could not accept invite: %w", err)
			}
			if accepted == nil {
				return serrors.With(serrors.ErrConflict, "invite is no longer pending")
			}

			return nil
		}

		accountName, err := cleanName(req.AccountName, name)
		if err != nil {
			return err
		}
		account, err := tx.StoreAccount(ctx, domain.Account{
			Name:      accountName,
			Plan:      domain.PlanFree,
			ScanLimit: domain.PlanFree.Limits().ScansPerPeriod,
		})
		if err != nil {
			return fmt.Errorf("could not store account: %w", err)
		}

		newUser.AccountID = account.ID
		newUser.AccountRole = domain.AccountRoleOwner
		user, err = storeUser(ctx, tx, newUser)

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not register user: %w", err)
	}

	return a.session(*user)
}

func storeUser(ctx context.Context, tx storage.AllStorage, user domain.User) (*domain.User, error) {
	stored, err := tx.StoreUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "email is already registered")
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return stored, nil
}

// ClaimSeat locks the account and fails with PAYMENT_REQUIRED when its plan has
// no room for another member. It must run in the transaction that adds the
// member so concurrent joins are counted one after the other.
func ClaimSeat(ctx context.Context, tx storage.AllStorage, accountID domain.AccountID) error {
	acc, err := tx.LockAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("could not lock account: %w", err)
	}
	if acc == nil {
		return serrors.With(serrors.ErrNotFound, "account not found")
	}

	members, err := tx.CountAccountMembers(ctx, accountID)
	if err != nil {
		return fmt.Errorf("could not count members: %w", err)
	}
	if seats := acc.Plan.Limits().TeamSize; members >= int64(seats) {
		return serrors.With(serrors.ErrPaymentRequired, "the %s plan allows %d team members", acc.Plan, seats)
	}

	return nil
}

// Login checks the credentials and issues a new session.
func (a *authenticator) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := a.storage.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))

		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}

	return a.session(*user)
}

// Authenticate verifies the token and returns the user it was issued for.
func (a *authenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	subject, err := a.tokens.Verify(token)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	user, err := a.storage.UserByID(ctx, domain.UserID(id))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "user no longer exists")
	}

	return user, nil
}

func (a *authenticator) session(user domain.User) (*Session, error) {
	token, expiresAt, err := a.tokens.Issue(user.ID.String(), a.now(), 0)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
