package v1handler_test

import (
	"context"
	"labelchecker/internal/admin"
	"labelchecker/internal/api/handler/v1handler"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminStats(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	caller := testUser(domain.RoleAdmin)
	f.loginAs(caller)

	f.admin.EXPECT().Stats(gomock.Any(), caller).Return(&admin.Stats{
		AccountsByPlan: map[domain.Plan]int64{domain.PlanFree: 10, domain.PlanDeluxe: 2},
		Users:          14,
		ScansByStatus:  map[domain.ScanStatus]int64{domain.ScanStatusCompleted: 40},
		Revenue:        map[string]int64{"usd": 9800},
	}, nil)

	rec := f.json(http.MethodGet, "/admin/stats", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stats := decode[admin.Stats](t, rec)
	require.Equal(t, int64(14), stats.Users)
	require.Equal(t, int64(2), stats.AccountsByPlan[domain.PlanDeluxe])
	require.Equal(t, int64(9800), stats.Revenue["usd"])
}

func TestAdmin_ForbiddenForUsers(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	caller := testUser(domain.RoleUser)
	f.loginAs(caller)

	f.admin.EXPECT().
		Accounts(gomock.Any(), caller, "", uint(v1handler.DefaultLimit)).
		Return(nil, "", serrors.With(serrors.ErrForbidden, "admin role required"))

	rec := f.json(http.MethodGet, "/admin/accounts", "")
	res := requireError(t, rec, http.StatusForbidden, serrors.ErrForbidden)
	require.Equal(t, "admin role required", res.Message)
}

func TestAdminAccounts(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	caller := testUser(domain.RoleAdmin)
	f.loginAs(caller)

	acc := domain.Account{ID: domain.AccountID(uuid.New()), Name: "Acme", Plan: domain.PlanFree, ScanLimit: 3}
	plan := domain.PlanDeluxe
	gomock.InOrder(
		f.admin.EXPECT().
			Accounts(gomock.Any(), caller, "c1", uint(10)).
			Return([]domain.Account{acc}, "c2", nil),
		f.admin.EXPECT().
			Account(gomock.Any(), caller, acc.ID).
			Return(&admin.AccountDetails{Account: acc}, nil),
		f.admin.EXPECT().
			UpdateAccount(gomock.Any(), caller, acc.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.User, _ domain.AccountID,
				update admin.AccountUpdate) (*domain.Account, error) {
				require.Equal(t, &plan, update.Plan)
				require.Nil(t, update.ScanLimit)
				require.Equal(t, 0, *update.ScansUsed)
				require.Equal(t, 5, update.AddBonusCredits)

				updated := acc
				updated.Plan = *update.Plan
				updated.BonusCredits = 5

				return &updated, nil
			}),
	)

	rec := f.json(http.MethodGet, "/admin/accounts?cursor=c1&limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[v1handler.Page[domain.Account]](t, rec)
	require.Len(t, page.Items, 1)
	require.Equal(t, "c2", page.NextCursor)

	rec = f.json(http.MethodGet, "/admin/accounts/"+acc.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, acc.ID, decode[admin.AccountDetails](t, rec).Account.ID)

	rec = f.json(http.MethodPatch, "/admin/accounts/"+acc.ID.String(),
		`{"plan":"DELUXE","scansUsed":0,"addBonusCredits":5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[domain.Account](t, rec)
	require.Equal(t, domain.PlanDeluxe, updated.Plan)
	require.Equal(t, 5, updated.BonusCredits)
}

func TestAdminUsers(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	caller := testUser(domain.RoleAdmin)
	f.loginAs(caller)

	target := testUser(domain.RoleUser)
	promoted := target
	promoted.Role = domain.RoleAdmin
	gomock.InOrder(
		f.admin.EXPECT().
			Users(gomock.Any(), caller, "", uint(v1handler.DefaultLimit)).
			Return([]domain.User{caller, target}, "", nil),
		f.admin.EXPECT().
			SetUserRole(gomock.Any(), caller, target.ID, domain.RoleAdmin).
			Return(&promoted, nil),
	)

	rec := f.json(http.MethodGet, "/admin/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[v1handler.Page[domain.User]](t, rec).Items, 2)

	rec = f.json(http.MethodPatch, "/admin/users/"+target.ID.String(), `{"role":"ADMIN"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.RoleAdmin, decode[domain.User](t, rec).Role)
}

func TestAdminListRules_FiltersMarketplace(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	caller := testUser(domain.RoleAdmin)
	f.loginAs(caller)

	f.admin.EXPECT().
		Rules(gomock.Any(), caller, domain.MarketplaceUK).
		Return([]domain.RegulatoryRule{{Code: "UK-FIC-01", Marketplace: domain.MarketplaceUK}}, nil)

	rec := f.json(http.MethodGet, "/admin/rules?marketplace=uk", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rules := decode[v1handler.Items[domain.RegulatoryRule]](t, rec).Items
	require.Len(t, rules, 1)
	require.Equal(t, "UK-FIC-01", rules[0].Code)
}

func TestAdminCreateRule(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		active bool
	}{
		{
			name:   "active by default",
			body:   `{"code":"US-FDA-101","authority":"FDA","marketplace":"US","category":"allergens","title":"Allergen statement","severity":"CRITICAL"}`,
			active: true,
		},
		{
			name:   "explicitly inactive",
			body:   `{"code":"US-FDA-101","authority":"FDA","marketplace":"US","category":"allergens","title":"Allergen statement","severity":"CRITICAL","active":false}`,
			active: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, v1handler.Options{})
			caller := testUser(domain.RoleAdmin)
			f.loginAs(caller)

			f.admin.EXPECT().
				CreateRule(gomock.Any(), caller, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.User, rule domain.RegulatoryRule) (*domain.RegulatoryRule, error) {
					require.Equal(t, "US-FDA-101", rule.Code)
					require.Equal(t, domain.MarketplaceUS, rule.Marketplace)
					require.Equal(t, tt.active, rule.Active)
					rule.ID = domain.RuleID(uuid.New())

					return &rule, nil
				})

			rec := f.json(http.MethodPost, "/admin/rules", tt.body)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			require.Equal(t, tt.active, decode[domain.RegulatoryRule](t, rec).Active)
		})
	}
}

func TestAdminUpdateRule(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	caller := testUser(domain.RoleAdmin)
	f.loginAs(caller)

	id := domain.RuleID(uuid.New())
	f.admin.EXPECT().
		UpdateRule(gomock.Any(), caller, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.User, _ domain.RuleID,
			updates storage.RuleUpdates) (*domain.RegulatoryRule, error) {
			require.Nil(t, updates.Authority)
			require.Nil(t, updates.Marketplace)
			require.Equal(t, "New title", *updates.Title)
			require.False(t, *updates.Active)

			return &domain.RegulatoryRule{ID: id, Title: *updates.Title, Active: *updates.Active}, nil
		})

	rec := f.json(http.MethodPatch, "/admin/rules/"+id.String(), `{"title":"New title","active":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rule := decode[domain.RegulatoryRule](t, rec)
	require.Equal(t, "New title", rule.Title)
	require.False(t, rule.Active)
}

func TestAdminDeleteRule(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	caller := testUser(domain.RoleAdmin)
	f.loginAs(caller)

	id := domain.RuleID(uuid.New())
	missing := domain.RuleID(uuid.New())
	f.admin.EXPECT().DeleteRule(gomock.Any(), caller, id).Return(nil)
	f.admin.EXPECT().DeleteRule(gomock.Any(), caller, missing).Return(serrors.KindOnly(serrors.ErrNotFound))

	rec := f.json(http.MethodDelete, "/admin/rules/"+id.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.json(http.MethodDelete, "/admin/rules/"+missing.String(), "")
	requireError(t, rec, http.StatusNotFound, serrors.ErrNotFound)
}
