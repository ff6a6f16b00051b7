package billing

import (
	"context"
	"labelchecker/pkg/domain"
)

// PlanInfo is a catalog entry.
type PlanInfo struct {
	Plan   domain.Plan       `json:"plan"`
	Limits domain.PlanLimits `json:"limits"`
	// Purchasable is false for the free plan and for plans without a configured price.
	Purchasable bool `json:"purchasable"`
}

//go:generate mockgen -package mockbilling -source=interface.go -destination=mock/mockbilling.go *
type Service interface {
	Plans() []PlanInfo
	// Checkout returns the URL of a hosted checkout page for the plan.
	Checkout(ctx context.Context, user domain.User, plan domain.Plan) (string, error)
	// Portal returns the URL of the hosted billing portal.
	Portal(ctx context.Context, user domain.User) (string, error)
	Payments(ctx context.Context, user domain.User) ([]domain.Payment, error)
	// HandleWebhook verifies and applies a payment provider event.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}
