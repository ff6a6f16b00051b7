package storage

import (
	"context"
	"labelchecker/pkg/domain"
)

// RuleFilter narrows rule listings. Zero values do not filter.
type RuleFilter struct {
	Marketplaces []domain.Marketplace
	ActiveOnly   bool
}

// RuleUpdates lists optional rule fields to change.
type RuleUpdates struct {
	Authority   *domain.Authority
	Marketplace *domain.Marketplace
	Category    *string
	Title       *string
	Description *string
	Severity    *domain.Severity
	Active      *bool
}

// RuleStorage persists regulatory rules.
type RuleStorage interface {
	// UpsertRules inserts rules or updates existing ones matched by code. It returns
	// the number of rows written.
	UpsertRules(ctx context.Context, rules ...domain.RegulatoryRule) (int64, error)
	// StoreRule inserts a rule. ErrDuplicate is returned when the code is taken.
	StoreRule(ctx context.Context, rule domain.RegulatoryRule) (*domain.RegulatoryRule, error)
	// UpdateRule applies the updates and returns the updated row, or nil when not found.
	UpdateRule(ctx context.Context, ID domain.RuleID, updates RuleUpdates) (*domain.RegulatoryRule, error)
	// DeleteRule removes a rule. It returns false when nothing was deleted.
	DeleteRule(ctx context.Context, ID domain.RuleID) (bool, error)
	// Rules lists rules ordered by marketplace and code.
	Rules(ctx context.Context, filter RuleFilter) ([]domain.RegulatoryRule, error)
}
