package storage

import (
	"context"
	"labelchecker/pkg/domain"
	"time"
)

// UserUpdates lists optional user fields to change.
type UserUpdates struct {
	AccountID   *domain.AccountID
	Role        *domain.Role
	AccountRole *domain.AccountRole
	Name        *string
}

// UserPage is a page of users ordered by newest first.
type UserPage struct {
	Users      []domain.User
	NextCursor *time.Time
}

// UserStorage persists users.
type UserStorage interface {
	// StoreUser inserts a new user. ErrDuplicate is returned when the email is taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user or nil.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByEmail looks a user up by its lower-cased email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// AccountMembers returns every user of an account, owners first.
	AccountMembers(ctx context.Context, accountID domain.AccountID) ([]domain.User, error)
	// CountAccountMembers returns the number of users in an account.
	CountAccountMembers(ctx context.Context, accountID domain.AccountID) (int64, error)
	// UpdateUser applies the updates and returns the updated row, or nil when not found.
	UpdateUser(ctx context.Context, ID domain.UserID, updates UserUpdates) (*domain.User, error)
	// Users returns a page of all users created before the optional cursor.
	Users(ctx context.Context, cursor time.Time, limit uint) (UserPage, error)
}
