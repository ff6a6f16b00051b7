// Package payments abstracts the payment provider used for plan purchases.
package payments

import (
	"context"
	"labelchecker/pkg/domain"
)

// CheckoutMode selects between recurring and one-off purchases.
type CheckoutMode string

const (
	CheckoutModeSubscription CheckoutMode = "subscription"
	CheckoutModePayment      CheckoutMode = "payment"
)

// Metadata keys attached to checkout sessions and subscriptions.
const (
	MetadataAccountID = "account_id"
	MetadataPlan      = "plan"
)

// CheckoutRequest describes a hosted checkout session to create.
type CheckoutRequest struct {
	CustomerID string
	PriceID    string
	Mode       CheckoutMode
	AccountID  domain.AccountID
	Plan       domain.Plan
	SuccessURL string
	CancelURL  string
}

// Session is a created hosted page.
type Session struct {
	ID  string
	URL string
}

// EventType is the subset of provider webhook events the app reacts to.
type EventType string

const (
	EventCheckoutCompleted   EventType = "CHECKOUT_COMPLETED"
	EventInvoicePaid         EventType = "INVOICE_PAID"
	EventSubscriptionDeleted EventType = "SUBSCRIPTION_DELETED"
	EventIgnored             EventType = "IGNORED"
)

// Event is a verified and decoded webhook event.
type Event struct {
	ID      string
	Type    EventType
	RawType string

	CustomerID     string
	SubscriptionID string
	SessionID      string
	InvoiceID      string
	// AccountID and Plan come from the metadata set at checkout; zero when absent.
	AccountID domain.AccountID
	Plan      domain.Plan
	Mode      CheckoutMode
	Paid      bool
	Amount    int64
	Currency  string
	// Renewal is true for invoices of an existing subscription cycle.
	Renewal bool
}

// Provider is the payment provider abstraction.
//
//go:generate mockgen -package mockpayments -source=interface.go -destination=mock/mockpayments.go *
type Provider interface {
	// CreateCustomer registers the account with the provider and returns its customer id.
	CreateCustomer(ctx context.Context, accountID domain.AccountID, email, name string) (string, error)
	// CreateCheckoutSession starts a hosted checkout.
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (Session, error)
	// CreatePortalSession opens the hosted billing portal for a customer.
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (Session, error)
	// ParseWebhook verifies the signature of payload and decodes it.
	// Invalid signatures yield serrors.ErrUnauthorized.
	ParseWebhook(payload []byte, signature string) (Event, error)
}
