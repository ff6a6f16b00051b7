package v1handler_test

import (
	"bytes"
	"labelchecker/internal/api/handler/v1handler"
	"labelchecker/internal/billing"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPlans_IsPublic(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	f.billing.EXPECT().Plans().Return([]billing.PlanInfo{
		{Plan: domain.PlanFree, Limits: domain.PlanLimits{ScansPerPeriod: 3, TeamSize: 1}},
		{Plan: domain.PlanDeluxe, Purchasable: true},
	})

	rec := httptest.NewRecorder()
	f.routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/billing/plans", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	plans := decode[v1handler.Items[billing.PlanInfo]](t, rec).Items
	require.Len(t, plans, 2)
	require.False(t, plans[0].Purchasable)
	require.True(t, plans[1].Purchasable)
}

func TestCheckout(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	f.billing.EXPECT().
		Checkout(gomock.Any(), user, domain.PlanDeluxe).
		Return("https://checkout.stripe.com/c/pay/cs_test_1", nil)

	rec := f.json(http.MethodPost, "/billing/checkout", `{"plan":"DELUXE"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `{"url":"https://checkout.stripe.com/c/pay/cs_test_1"}`, rec.Body.String())
}

func TestCheckout_UnknownPlan(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	f.billing.EXPECT().
		Checkout(gomock.Any(), user, domain.Plan("GOLD")).
		Return("", serrors.With(serrors.ErrBadRequest, "plan GOLD cannot be purchased"))

	rec := f.json(http.MethodPost, "/billing/checkout", `{"plan":"GOLD"}`)
	requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
}

func TestPortal_NoCustomer(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	f.billing.EXPECT().
		Portal(gomock.Any(), user).
		Return("", serrors.With(serrors.ErrConflict, "account has no billing profile yet"))

	rec := f.json(http.MethodPost, "/billing/portal", "")
	requireError(t, rec, http.StatusConflict, serrors.ErrConflict)
}

func TestListPayments(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	user := testUser(domain.RoleUser)
	f.loginAs(user)

	f.billing.EXPECT().Payments(gomock.Any(), user).Return([]domain.Payment{
		{ID: domain.PaymentID(uuid.New()), AccountID: user.AccountID, Plan: domain.PlanOneTime, Amount: 1900, Currency: "usd"},
	}, nil)

	rec := f.json(http.MethodGet, "/billing/payments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	payments := decode[v1handler.Items[domain.Payment]](t, rec).Items
	require.Len(t, payments, 1)
	require.Equal(t, int64(1900), payments[0].Amount)
	require.NotContains(t, rec.Body.String(), "stripe")
}

func TestStripeWebhook(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	f.billing.EXPECT().HandleWebhook(gomock.Any(), payload, "t=1,v1=abc").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	rec := httptest.NewRecorder()
	f.routes.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"received":true}`, rec.Body.String())
}

func TestStripeWebhook_Errors(t *testing.T) {
	t.Run("bad signature", func(t *testing.T) {
		f := newFixture(t, v1handler.Options{})
		f.billing.EXPECT().
			HandleWebhook(gomock.Any(), gomock.Any(), "forged").
			Return(serrors.With(serrors.ErrBadRequest, "invalid webhook signature"))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(`{}`))
		req.Header.Set("Stripe-Signature", "forged")
		rec := httptest.NewRecorder()
		f.routes.ServeHTTP(rec, req)

		requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
	})

	t.Run("payload too large", func(t *testing.T) {
		f := newFixture(t, v1handler.Options{})

		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(make([]byte, 128<<10)))
		rec := httptest.NewRecorder()
		f.routes.ServeHTTP(rec, req)

		requireError(t, rec, http.StatusRequestEntityTooLarge, serrors.ErrTooLarge)
	})

	t.Run("storage failure asks for redelivery", func(t *testing.T) {
		f := newFixture(t, v1handler.Options{})
		f.billing.EXPECT().
			HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(serrors.Wrap(serrors.ErrInternal, bytes.ErrTooLarge, "could not store payment"))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		f.routes.ServeHTTP(rec, req)

		res := requireError(t, rec, http.StatusInternalServerError, serrors.ErrInternal)
		require.Equal(t, "internal error", res.Message)
	})
}
