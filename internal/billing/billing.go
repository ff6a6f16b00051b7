// Package billing sells plans through the payment provider and applies the
// provider's webhook events to accounts.
package billing

import (
	"context"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/payments"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"

	"go.uber.org/zap"
)

const paymentsPageSize = 50

// Options hold the provider price ids and redirect URLs.
type Options struct {
	DeluxePriceID   string
	OneTimePriceID  string
	SuccessURL      string
	CancelURL       string
	PortalReturnURL string
}

type service struct {
	storage  storage.Storage
	provider payments.Provider
	options  Options
}

// New creates a billing Service.
func New(storage storage.Storage, provider payments.Provider, options Options) Service {
	return &service{storage: storage, provider: provider, options: options}
}

func (s *service) priceID(plan domain.Plan) string {
	switch plan {
	case domain.PlanDeluxe:
		return s.options.DeluxePriceID
	case domain.PlanOneTime:
		return s.options.OneTimePriceID
	default:
		return ""
	}
}

func (s *service) Plans() []PlanInfo {
	out := make([]PlanInfo, 0, len(domain.Plans()))
	for _, p := range domain.Plans() {
		out = append(out, PlanInfo{Plan: p, Limits: p.Limits(), Purchasable: s.priceID(p) != ""})
	}

	return out
}

func (s *service) Checkout(ctx context.Context, user domain.User, plan domain.Plan) (string, error) {
	if !user.IsOwner() {
		return "", serrors.With(serrors.ErrForbidden, "only the account owner can manage billing")
	}

	var mode payments.CheckoutMode
	switch plan {
	case domain.PlanDeluxe:
		mode = payments.CheckoutModeSubscription
	case domain.PlanOneTime:
		mode = payments.CheckoutModePayment
	default:
		return "", serrors.With(serrors.ErrBadRequest, "plan %q cannot be purchased", plan)
	}
	priceID := s.priceID(plan)
	if priceID == "" {
		return "", serrors.With(serrors.ErrUnavailable, "plan %s is not available for purchase", plan)
	}

	acc, err := s.storage.AccountByID(ctx, user.AccountID)
	if err != nil {
		return "", fmt.Errorf("could not get account: %w", err)
	}
	if acc == nil {
		return "", serrors.With(serrors.ErrNotFound, "account not found")
	}
	if plan == domain.PlanDeluxe && acc.StripeSubscriptionID != "" {
		return "", serrors.With(serrors.ErrConflict, "account already has an active subscription")
	}

	customerID := acc.StripeCustomerID
	if customerID == "" {
		customerID, err = s.provider.CreateCustomer(ctx, acc.ID, user.Email, acc.Name)
		if err != nil {
			return "", fmt.Errorf("could not create customer: %w", err)
		}
		if _, err := s.storage.UpdateAccount(ctx, acc.ID, storage.AccountUpdates{StripeCustomerID: &customerID}); err != nil {
			return "", fmt.Errorf("could not save customer: %w", err)
		}
	}

	sess, err := s.provider.CreateCheckoutSession(ctx, payments.CheckoutRequest{
		CustomerID: customerID,
		PriceID:    priceID,
		Mode:       mode,
		AccountID:  acc.ID,
		Plan:       plan,
		SuccessURL: s.options.SuccessURL,
		CancelURL:  s.options.CancelURL,
	})
	if err != nil {
		return "", fmt.Errorf("could not create checkout session: %w", err)
	}

	return sess.URL, nil
}

func (s *service) Portal(ctx context.Context, user domain.User) (string, error) {
	if !user.IsOwner() {
		return "", serrors.With(serrors.ErrForbidden, "only the account owner can manage billing")
	}

	acc, err := s.storage.AccountByID(ctx, user.AccountID)
	if err != nil {
		return "", fmt.Errorf("could not get account: %w", err)
	}
	if acc == nil {
		return "", serrors.With(serrors.ErrNotFound, "account not found")
	}
	if acc.StripeCustomerID == "" {
		return "", serrors.With(serrors.ErrConflict, "account has no billing history yet")
	}

	sess, err := s.provider.CreatePortalSession(ctx, acc.StripeCustomerID, s.options.PortalReturnURL)
	if err != nil {
		return "", fmt.Errorf("could not create portal session: %w", err)
	}

	return sess.URL, nil
}

func (s *service) Payments(ctx context.Context, user domain.User) ([]domain.Payment, error) {
	out, err := s.storage.AccountPayments(ctx, user.AccountID, paymentsPageSize)
	if err != nil {
		return nil, fmt.Errorf("could not get payments: %w", err)
	}

	return out, nil
}

func (s *service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	ev, err := s.provider.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	ctx = logger.WithFields(ctx, zap.String("eventId", ev.ID), zap.String("eventType", ev.RawType))

	switch ev.Type {
	case payments.EventCheckoutCompleted:
		return s.checkoutCompleted(ctx, ev)
	case payments.EventInvoicePaid:
		return s.invoicePaid(ctx, ev)
	case payments.EventSubscriptionDeleted:
		return s.subscriptionDeleted(ctx, ev)
	default:
		logger.Debug(ctx, "ignoring payment event")

		return nil
	}
}

// resolveAccount finds the account an event belongs to, preferring the checkout
// metadata over the customer id. Nil means the event cannot be attributed.
func (s *service) resolveAccount(ctx context.Context, st storage.AccountStorage,
	ev payments.Event) (*domain.Account, error) {
	if ev.AccountID != (domain.AccountID{}) {
		acc, err := st.AccountByID(ctx, ev.AccountID)
		if err != nil {
			return nil, fmt.Errorf("could not get account: %w", err)
		}
		if acc != nil {
			return acc, nil
		}
	}
	if ev.CustomerID == "" {
		return nil, nil
	}

	acc, err := st.AccountByStripeCustomer(ctx, ev.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("could not get account by customer: %w", err)
	}

	return acc, nil
}

func (s *service) checkoutCompleted(ctx context.Context, ev payments.Event) error {
	if !ev.Paid {
		logger.Info(ctx, "checkout completed without payment, waiting for async payment")

		return nil
	}

	plan := ev.Plan
	if !plan.Valid() || plan == domain.PlanFree {
		plan = domain.PlanOneTime
		if ev.Mode == payments.CheckoutModeSubscription {
			plan = domain.PlanDeluxe
		}
	}

	return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		acc, err := s.resolveAccount(ctx, tx, ev)
		if err != nil {
			return err
		}
		if acc == nil {
			logger.Warn(ctx, "checkout for unknown account", zap.String("customerId", ev.CustomerID))

			return nil
		}

		stored, err := tx.StorePayment(ctx, domain.Payment{
			AccountID:       acc.ID,
			Plan:            plan,
			StripeSessionID: ev.SessionID,
			Amount:          ev.Amount,
			Currency:        ev.Currency,
			Status:          domain.PaymentStatusSucceeded,
		})
		if err != nil {
			return fmt.Errorf("could not store payment: %w", err)
		}
		if !stored {
			logger.Info(ctx, "checkout already applied", zap.String("sessionId", ev.SessionID))

			return nil
		}

		var updates storage.AccountUpdates
		if ev.CustomerID != "" && acc.StripeCustomerID != ev.CustomerID {
			updates.StripeCustomerID = &ev.CustomerID
		}
		switch plan {
		case domain.PlanDeluxe:
			limit := plan.Limits().ScansPerPeriod
			updates.Plan = &plan
			updates.ScanLimit = &limit
			updates.StripeSubscriptionID = &ev.SubscriptionID
			updates.ResetPeriod = true
		default:
			updates.AddBonusCredits = plan.Limits().Credits
			// credit packs never downgrade a subscription
			if acc.Plan == domain.PlanFree {
				updates.Plan = &plan
			}
		}

		if _, err := tx.UpdateAccount(ctx, acc.ID, updates); err != nil {
			return fmt.Errorf("could not apply plan: %w", err)
		}
		logger.Info(ctx, "plan purchased", zap.Stringer("accountId", acc.ID), zap.String("plan", string(plan)))

		return nil
	})
}

func (s *service) invoicePaid(ctx context.Context, ev payments.Event) error {
	// the first invoice of a subscription is covered by the checkout event
	if !ev.Renewal {
		return nil
	}

	return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		acc, err := s.resolveAccount(ctx, tx, ev)
		if err != nil {
			return err
		}
		if acc == nil {
			logger.Warn(ctx, "invoice for unknown account", zap.String("customerId", ev.CustomerID))

			return nil
		}

		stored, err := tx.StorePayment(ctx, domain.Payment{
			AccountID:       acc.ID,
			Plan:            domain.PlanDeluxe,
			StripeInvoiceID: ev.InvoiceID,
			Amount:          ev.Amount,
			Currency:        ev.Currency,
			Status:          domain.PaymentStatusSucceeded,
		})
		if err != nil {
			return fmt.Errorf("could not store payment: %w", err)
		}
		if !stored {
			return nil
		}

		plan := domain.PlanDeluxe
		limit := plan.Limits().ScansPerPeriod
		updates := storage.AccountUpdates{Plan: &plan, ScanLimit: &limit, ResetPeriod: true}
		if ev.SubscriptionID != "" {
			updates.StripeSubscriptionID = &ev.SubscriptionID
		}
		if _, err := tx.UpdateAccount(ctx, acc.ID, updates); err != nil {
			return fmt.Errorf("could not renew subscription: %w", err)
		}
		logger.Info(ctx, "subscription renewed", zap.Stringer("accountId", acc.ID))

		return nil
	})
}

func (s *service) subscriptionDeleted(ctx context.Context, ev payments.Event) error {
	acc, err := s.resolveAccount(ctx, s.storage, ev)
	if err != nil {
		return err
	}
	if acc == nil {
		logger.Warn(ctx, "subscription of unknown account deleted", zap.String("customerId", ev.CustomerID))

		return nil
	}
	if acc.StripeSubscriptionID != ev.SubscriptionID {
		logger.Info(ctx, "ignoring deletion of a replaced subscription",
			zap.String("subscriptionId", ev.SubscriptionID))

		return nil
	}

	plan := domain.PlanFree
	limit := plan.Limits().ScansPerPeriod
	none := ""
	if _, err := s.storage.UpdateAccount(ctx, acc.ID, storage.AccountUpdates{
		Plan:                 &plan,
		ScanLimit:            &limit,
		StripeSubscriptionID: &none,
	}); err != nil {
		return fmt.Errorf("could not downgrade account: %w", err)
	}
	logger.Info(ctx, "subscription ended", zap.Stringer("accountId", acc.ID))

	return nil
}
