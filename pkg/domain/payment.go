package domain

import "time"

// PaymentStatus is the state of a recorded payment.
type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "SUCCEEDED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// Payment is a successful charge made through the payment provider.
type Payment struct {
	ID        PaymentID `json:"id"`
	AccountID AccountID `json:"accountId"`
	Plan      Plan      `json:"plan"`

	// StripeSessionID is set for checkout payments.
	StripeSessionID string `json:"-"`
	// StripeInvoiceID is set for subscription invoices.
	StripeInvoiceID string `json:"-"`

	// Amount is in minor units of Currency.
	Amount   int64         `json:"amount"`
	Currency string        `json:"currency"`
	Status   PaymentStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
