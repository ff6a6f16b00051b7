package storage

import (
	"context"
	"labelchecker/pkg/domain"
	"time"
)

// AccountUpdates lists optional account fields to change. Nil fields are left untouched.
type AccountUpdates struct {
	Name      *string
	Plan      *domain.Plan
	ScanLimit *int
	ScansUsed *int
	// AddBonusCredits is added to the current bonus credits.
	AddBonusCredits int
	// StripeCustomerID links the account to a Stripe customer.
	StripeCustomerID *string
	// StripeSubscriptionID set to an empty string clears the subscription.
	StripeSubscriptionID *string
	// ResetPeriod zeroes scans_used and starts a new usage period now.
	ResetPeriod bool
}

// AccountPage is a page of accounts ordered by newest first.
type AccountPage struct {
	Accounts   []domain.Account
	NextCursor *time.Time
}

// PlatformStats aggregates platform wide numbers for the admin console.
type PlatformStats struct {
	AccountsByPlan map[domain.Plan]int64
	Users          int64
	ScansByStatus  map[domain.ScanStatus]int64
	// Revenue is the sum of succeeded payments per currency, in minor units.
	Revenue map[string]int64
}

// AccountStorage persists accounts together with their quota counters.
type AccountStorage interface {
	// StoreAccount inserts a new account and returns the stored row.
	StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// AccountByID returns the account or nil when it does not exist.
	AccountByID(ctx context.Context, ID domain.AccountID) (*domain.Account, error)
	// LockAccount returns the account and holds a row lock on it until the surrounding
	// transaction ends. Returns nil when it does not exist.
	LockAccount(ctx context.Context, ID domain.AccountID) (*domain.Account, error)
	// AccountByStripeCustomer returns the account linked to the Stripe customer or nil.
	AccountByStripeCustomer(ctx context.Context, customerID string) (*domain.Account, error)
	// UpdateAccount applies the updates and returns the updated row, or nil when not found.
	UpdateAccount(ctx context.Context, ID domain.AccountID, updates AccountUpdates) (*domain.Account, error)
	// ConsumeScanCredit atomically takes one scan from the period quota, falling back to
	// bonus credits, and reports which pool paid. It returns an empty source when the
	// account has nothing left.
	ConsumeScanCredit(ctx context.Context, ID domain.AccountID) (domain.CreditSource, error)
	// RefundScanCredit gives one scan back to the pool it was taken from. Period
	// refunds never push the usage counter below zero.
	RefundScanCredit(ctx context.Context, ID domain.AccountID, source domain.CreditSource) error
	// ResetUsage starts a new usage period for accounts on the given plans whose period
	// started before the given time. It returns the number of accounts reset.
	ResetUsage(ctx context.Context, plans []domain.Plan, startedBefore time.Time) (int64, error)
	// Accounts returns a page of accounts created before the optional cursor.
	Accounts(ctx context.Context, cursor time.Time, limit uint) (AccountPage, error)
	// PlatformStats computes the admin dashboard aggregates.
	PlatformStats(ctx context.Context) (PlatformStats, error)
}
