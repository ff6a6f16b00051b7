package domain

import "time"

// Account is the tenant that owns scans, users and billing state.
type Account struct {
	ID   AccountID `json:"id"`
	Name string    `json:"name"`
	Plan Plan      `json:"plan"`

	// ScansUsed counts scans consumed in the current usage period.
	ScansUsed int `json:"scansUsed"`
	// ScanLimit is the per-period quota.
	ScanLimit int `json:"scanLimit"`
	// BonusCredits are purchased scans that survive period resets.
	BonusCredits int `json:"bonusCredits"`
	// PeriodStart is when the current usage period began.
	PeriodStart time.Time `json:"periodStart"`

	StripeCustomerID     string `json:"-"`
	StripeSubscriptionID string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScansRemaining returns how many scans the account can still start.
func (a Account) ScansRemaining() int {
	left := a.ScanLimit - a.ScansUsed
	if left < 0 {
		left = 0
	}

	return left + a.BonusCredits
}
