package admin

import (
	"context"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/storage"
)

// Stats are the platform wide numbers shown on the admin dashboard.
type Stats struct {
	AccountsByPlan map[domain.Plan]int64       `json:"accountsByPlan"`
	Users          int64                       `json:"users"`
	ScansByStatus  map[domain.ScanStatus]int64 `json:"scansByStatus"`
	// Revenue is per currency in minor units.
	Revenue map[string]int64 `json:"revenue"`
}

// AccountDetails is an account with its members and recent payments.
type AccountDetails struct {
	Account  domain.Account   `json:"account"`
	Members  []domain.User    `json:"members"`
	Payments []domain.Payment `json:"payments"`
}

// AccountUpdate holds the fields an admin may override. Nil fields are kept.
type AccountUpdate struct {
	Plan      *domain.Plan `json:"plan,omitempty"`
	ScanLimit *int         `json:"scanLimit,omitempty"`
	ScansUsed *int         `json:"scansUsed,omitempty"`
	// AddBonusCredits grants (or with a negative value takes back) credits.
	AddBonusCredits int `json:"addBonusCredits,omitempty"`
}

// Service is the admin console. Every method requires an ADMIN caller.
//
//go:generate mockgen -package mockadmin -source=interface.go -destination=mock/mockadmin.go *
type Service interface {
	Stats(ctx context.Context, caller domain.User) (*Stats, error)
	Accounts(ctx context.Context, caller domain.User, cursor string, limit uint) ([]domain.Account, string, error)
	Account(ctx context.Context, caller domain.User, ID domain.AccountID) (*AccountDetails, error)
	UpdateAccount(ctx context.Context, caller domain.User, ID domain.AccountID, update AccountUpdate) (*domain.Account, error)
	Users(ctx context.Context, caller domain.User, cursor string, limit uint) ([]domain.User, string, error)
	SetUserRole(ctx context.Context, caller domain.User, ID domain.UserID, role domain.Role) (*domain.User, error)

	// Rules lists every rule, optionally only those of one marketplace.
	Rules(ctx context.Context, caller domain.User, marketplace domain.Marketplace) ([]domain.RegulatoryRule, error)
	CreateRule(ctx context.Context, caller domain.User, rule domain.RegulatoryRule) (*domain.RegulatoryRule, error)
	UpdateRule(ctx context.Context, caller domain.User, ID domain.RuleID, updates storage.RuleUpdates) (*domain.RegulatoryRule, error)
	DeleteRule(ctx context.Context, caller domain.User, ID domain.RuleID) error
}
