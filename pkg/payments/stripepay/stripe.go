// Package stripepay implements payments.Provider with Stripe.
package stripepay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/payments"
	"labelchecker/pkg/serrors"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Options configures the Stripe client.
type Options struct {
	SecretKey     string
	WebhookSecret string
	// BaseURL and HTTPClient override the API backend; used in tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Provider talks to the Stripe API.
type Provider struct {
	api           *client.API
	webhookSecret string
}

var _ payments.Provider = (*Provider)(nil)

// New creates a Provider.
func New(opts Options) *Provider {
	var backends *stripe.Backends
	if opts.BaseURL != "" || opts.HTTPClient != nil {
		cfg := &stripe.BackendConfig{
			HTTPClient:        opts.HTTPClient,
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
		}
		if opts.BaseURL != "" {
			cfg.URL = stripe.String(opts.BaseURL)
		}
		backends = &stripe.Backends{
			API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
			Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
			Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
		}
	}

	return &Provider{
		api:           client.New(opts.SecretKey, backends),
		webhookSecret: opts.WebhookSecret,
	}
}

// CreateCustomer creates a Stripe customer tagged with the account id.
func (p *Provider) CreateCustomer(ctx context.Context, accountID domain.AccountID, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx
	params.AddMetadata(payments.MetadataAccountID, accountID.String())

	c, err := p.api.Customers.New(params)
	if err != nil {
		return "", wrap(err, "could not create customer")
	}

	return c.ID, nil
}

// CreateCheckoutSession creates a hosted checkout for a single price.
func (p *Provider) CreateCheckoutSession(ctx context.Context, req payments.CheckoutRequest) (payments.Session, error) {
	params := &stripe.CheckoutSessionParams{
		Customer:          stripe.String(req.CustomerID),
		Mode:              stripe.String(string(req.Mode)),
		ClientReferenceID: stripe.String(req.AccountID.String()),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(req.PriceID), Quantity: stripe.Int64(1)},
		},
	}
	params.Context = ctx
	params.AddMetadata(payments.MetadataAccountID, req.AccountID.String())
	params.AddMetadata(payments.MetadataPlan, string(req.Plan))
	if req.Mode == payments.CheckoutModeSubscription {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{}
		params.SubscriptionData.AddMetadata(payments.MetadataAccountID, req.AccountID.String())
		params.SubscriptionData.AddMetadata(payments.MetadataPlan, string(req.Plan))
	}

	s, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return payments.Session{}, wrap(err, "could not create checkout session")
	}

	return payments.Session{ID: s.ID, URL: s.URL}, nil
}

// CreatePortalSession opens the customer billing portal.
func (p *Provider) CreatePortalSession(ctx context.Context, customerID, returnURL string) (payments.Session, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	s, err := p.api.BillingPortalSessions.New(params)
	if err != nil {
		return payments.Session{}, wrap(err, "could not create portal session")
	}

	return payments.Session{ID: s.ID, URL: s.URL}, nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes the events
// the app handles. Other event types are returned as payments.EventIgnored.
func (p *Provider) ParseWebhook(payload []byte, signature string) (payments.Event, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return payments.Event{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid webhook signature")
	}

	out := payments.Event{ID: ev.ID, Type: payments.EventIgnored, RawType: string(ev.Type)}
	if ev.Data == nil {
		return out, nil
	}

	switch ev.Type {
	// delayed payment methods complete the session unpaid and settle later
	case stripe.EventTypeCheckoutSessionCompleted, stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return out, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode checkout session")
		}
		out.Type = payments.EventCheckoutCompleted
		out.SessionID = s.ID
		out.Mode = payments.CheckoutMode(s.Mode)
		out.Paid = s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid ||
			s.PaymentStatus == stripe.CheckoutSessionPaymentStatusNoPaymentRequired
		out.Amount = s.AmountTotal
		out.Currency = string(s.Currency)
		if s.Customer != nil {
			out.CustomerID = s.Customer.ID
		}
		if s.Subscription != nil {
			out.SubscriptionID = s.Subscription.ID
		}
		out.AccountID, out.Plan = fromMetadata(s.Metadata, s.ClientReferenceID)
	case stripe.EventTypeInvoicePaid:
		var inv stripe.Invoice
		if err := json.Unmarshal(ev.Data.Raw, &inv); err != nil {
			return out, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode invoice")
		}
		out.Type = payments.EventInvoicePaid
		out.InvoiceID = inv.ID
		out.Paid = true
		out.Amount = inv.AmountPaid
		out.Currency = string(inv.Currency)
		out.Renewal = inv.BillingReason == stripe.InvoiceBillingReasonSubscriptionCycle
		if inv.Customer != nil {
			out.CustomerID = inv.Customer.ID
		}
		if inv.Subscription != nil {
			out.SubscriptionID = inv.Subscription.ID
			out.AccountID, out.Plan = fromMetadata(inv.Subscription.Metadata, "")
		}
		if inv.SubscriptionDetails != nil && out.AccountID == (domain.AccountID{}) {
			out.AccountID, out.Plan = fromMetadata(inv.SubscriptionDetails.Metadata, "")
		}
	case stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(ev.Data.Raw, &sub); err != nil {
			return out, serrors.Wrap(serrors.ErrBadRequest, err, "could not decode subscription")
		}
		out.Type = payments.EventSubscriptionDeleted
		out.SubscriptionID = sub.ID
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
		out.AccountID, out.Plan = fromMetadata(sub.Metadata, "")
	}

	return out, nil
}

func fromMetadata(md map[string]string, clientReference string) (domain.AccountID, domain.Plan) {
	var accountID domain.AccountID
	raw := md[payments.MetadataAccountID]
	if raw == "" {
		raw = clientReference
	}
	if raw != "" {
		if err := accountID.UnmarshalText([]byte(raw)); err != nil {
			accountID = domain.AccountID{}
		}
	}

	plan := domain.Plan(md[payments.MetadataPlan])
	if !plan.Valid() {
		plan = ""
	}

	return accountID, plan
}

// wrap maps Stripe API errors to semantic kinds.
func wrap(err error, msg string) error {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	switch {
	case se.HTTPStatusCode == http.StatusTooManyRequests:
		return serrors.Wrap(serrors.ErrRateLimited, err, "%s", msg)
	case se.Type == stripe.ErrorTypeInvalidRequest:
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s", msg)
	case se.HTTPStatusCode >= http.StatusInternalServerError:
		return serrors.Wrap(serrors.ErrUnavailable, err, "%s", msg)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
