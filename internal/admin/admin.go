// Package admin implements the platform operator console.
package admin

import (
	"context"
	"errors"
	"fmt"
	"labelchecker/internal/rules"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
	paymentsShown   = 20
)

type service struct {
	storage storage.Storage
}

// New creates an admin Service.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}

func requireAdmin(caller domain.User) error {
	if !caller.IsAdmin() {
		return serrors.With(serrors.ErrForbidden, "admin access required")
	}

	return nil
}

func pageSize(limit uint) uint {
	switch {
	case limit == 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}

func (s *service) Stats(ctx context.Context, caller domain.User) (*Stats, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	st, err := s.storage.PlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get platform stats: %w", err)
	}

	out := &Stats{
		AccountsByPlan: st.AccountsByPlan,
		Users:          st.Users,
		ScansByStatus:  st.ScansByStatus,
		Revenue:        st.Revenue,
	}
	// zero rows for known enums keep the dashboard layout stable
	if out.AccountsByPlan == nil {
		out.AccountsByPlan = map[domain.Plan]int64{}
	}
	for _, p := range domain.Plans() {
		if _, ok := out.AccountsByPlan[p]; !ok {
			out.AccountsByPlan[p] = 0
		}
	}
	if out.ScansByStatus == nil {
		out.ScansByStatus = map[domain.ScanStatus]int64{}
	}
	for _, status := range []domain.ScanStatus{
		domain.ScanStatusPending, domain.ScanStatusProcessing, domain.ScanStatusCompleted, domain.ScanStatusFailed,
	} {
		if _, ok := out.ScansByStatus[status]; !ok {
			out.ScansByStatus[status] = 0
		}
	}
	if out.Revenue == nil {
		out.Revenue = map[string]int64{}
	}

	return out, nil
}

func (s *service) Accounts(ctx context.Context, caller domain.User,
	cursor string, limit uint) ([]domain.Account, string, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, "", err
	}
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := s.storage.Accounts(ctx, cursorTime, pageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not get accounts: %w", err)
	}

	return page.Accounts, storage.FormatCursor(page.NextCursor), nil
}

func (s *service) Account(ctx context.Context, caller domain.User, ID domain.AccountID) (*AccountDetails, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	acc, err := s.storage.AccountByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get account: %w", err)
	}
	if acc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}
	members, err := s.storage.AccountMembers(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get members: %w", err)
	}
	payments, err := s.storage.AccountPayments(ctx, ID, paymentsShown)
	if err != nil {
		return nil, fmt.Errorf("could not get payments: %w", err)
	}

	return &AccountDetails{Account: *acc, Members: members, Payments: payments}, nil
}

func (s *service) UpdateAccount(ctx context.Context, caller domain.User,
	ID domain.AccountID, update AccountUpdate) (*domain.Account, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	updates := storage.AccountUpdates{
		ScanLimit:       update.ScanLimit,
		ScansUsed:       update.ScansUsed,
		AddBonusCredits: update.AddBonusCredits,
	}
	if update.Plan != nil {
		if !update.Plan.Valid() {
			return nil, serrors.With(serrors.ErrBadRequest, "unknown plan %q", *update.Plan)
		}
		updates.Plan = update.Plan
		if updates.ScanLimit == nil {
			limit := update.Plan.Limits().ScansPerPeriod
			updates.ScanLimit = &limit
		}
	}
	if updates.ScanLimit != nil && *updates.ScanLimit < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "scan limit cannot be negative")
	}
	if updates.ScansUsed != nil && *updates.ScansUsed < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "scans used cannot be negative")
	}

	acc, err := s.storage.UpdateAccount(ctx, ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update account: %w", err)
	}
	if acc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "account not found")
	}
	logger.Info(ctx, "account updated by admin", zap.Stringer("accountId", ID), zap.Stringer("adminId", caller.ID))

	return acc, nil
}

func (s *service) Users(ctx context.Context, caller domain.User, cursor string, limit uint) ([]domain.User, string, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, "", err
	}
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := s.storage.Users(ctx, cursorTime, pageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not get users: %w", err)
	}

	return page.Users, storage.FormatCursor(page.NextCursor), nil
}

func (s *service) SetUserRole(ctx context.Context, caller domain.User,
	ID domain.UserID, role domain.Role) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown role %q", role)
	}
	if ID == caller.ID && role != domain.RoleAdmin {
		return nil, serrors.With(serrors.ErrBadRequest, "admins cannot demote themselves")
	}

	user, err := s.storage.UpdateUser(ctx, ID, storage.UserUpdates{Role: &role})
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}
	logger.Info(ctx, "user role changed",
		zap.Stringer("userId", ID), zap.String("role", string(role)), zap.Stringer("adminId", caller.ID))

	return user, nil
}

func (s *service) Rules(ctx context.Context, caller domain.User,
	marketplace domain.Marketplace) ([]domain.RegulatoryRule, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	var filter storage.RuleFilter
	if marketplace != "" {
		if !marketplace.Valid() {
			return nil, serrors.With(serrors.ErrBadRequest, "unsupported marketplace %q", marketplace)
		}
		filter.Marketplaces = []domain.Marketplace{marketplace}
	}

	out, err := s.storage.Rules(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get rules: %w", err)
	}

	return out, nil
}

func (s *service) CreateRule(ctx context.Context, caller domain.User,
	rule domain.RegulatoryRule) (*domain.RegulatoryRule, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	rule.Code = strings.ToUpper(strings.TrimSpace(rule.Code))
	if err := rules.Validate(rule); err != nil {
		return nil, err
	}

	stored, err := s.storage.StoreRule(ctx, rule)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "rule code already exists")
		}

		return nil, fmt.Errorf("could not store rule: %w", err)
	}

	return stored, nil
}

func (s *service) UpdateRule(ctx context.Context, caller domain.User,
	ID domain.RuleID, updates storage.RuleUpdates) (*domain.RegulatoryRule, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	var updated *domain.RegulatoryRule
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		updated, err = tx.UpdateRule(ctx, ID, updates)
		if err != nil {
			return fmt.Errorf("could not update rule: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "rule not found")
		}

		// rolls back changes that leave the rule inconsistent, e.g. CE on the US marketplace
		return rules.Validate(*updated)
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *service) DeleteRule(ctx context.Context, caller domain.User, ID domain.RuleID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	deleted, err := s.storage.DeleteRule(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete rule: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "rule not found")
	}

	return nil
}
