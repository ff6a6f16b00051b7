package storage

import (
	"context"
	"labelchecker/pkg/domain"
)

// PaymentStorage persists payments received from the payment provider.
type PaymentStorage interface {
	// StorePayment records a payment. It returns false without error when a payment
	// with the same Stripe session or invoice id was already recorded.
	StorePayment(ctx context.Context, payment domain.Payment) (bool, error)
	// AccountPayments returns the payments of an account, newest first.
	AccountPayments(ctx context.Context, accountID domain.AccountID, limit uint) ([]domain.Payment, error)
}
