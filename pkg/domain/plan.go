package domain

// Plan is the billing plan an account is on.
type Plan string

const (
	// PlanFree is the default plan with a small monthly scan quota.
	PlanFree Plan = "FREE"
	// PlanDeluxe is the recurring subscription plan.
	PlanDeluxe Plan = "DELUXE"
	// PlanOneTime marks accounts that bought a one-time credit pack. Credits never
	// expire and the free monthly allowance is kept.
	PlanOneTime Plan = "ONE_TIME"
)

// PlanLimits describes what a plan grants.
type PlanLimits struct {
	// ScansPerPeriod is the number of scans that reset every usage period. Zero for credit-only plans.
	ScansPerPeriod int `json:"scansPerPeriod"`
	// Credits is the number of non-expiring scans granted per purchase.
	Credits int `json:"credits"`
	// TeamSize is the maximum number of users (owner included) on the account.
	TeamSize int `json:"teamSize"`
	// Recurring is true for subscription plans.
	Recurring bool `json:"recurring"`
}

var planLimits = map[Plan]PlanLimits{
	PlanFree:    {ScansPerPeriod: 3, TeamSize: 1},
	PlanDeluxe:  {ScansPerPeriod: 100, TeamSize: 5, Recurring: true},
	PlanOneTime: {ScansPerPeriod: 3, Credits: 10, TeamSize: 1},
}

// Plans returns every known plan in display order.
func Plans() []Plan { return []Plan{PlanFree, PlanDeluxe, PlanOneTime} }

// PeriodicPlans returns the plans whose allowance resets every usage period.
func PeriodicPlans() []Plan {
	out := make([]Plan, 0, len(planLimits))
	for _, p := range Plans() {
		if planLimits[p].ScansPerPeriod > 0 {
			out = append(out, p)
		}
	}

	return out
}

// Valid reports whether p is a known plan.
func (p Plan) Valid() bool {
	_, ok := planLimits[p]

	return ok
}

// Limits returns the limits of the plan. Unknown plans get the free limits.
func (p Plan) Limits() PlanLimits {
	if l, ok := planLimits[p]; ok {
		return l
	}

	return planLimits[PlanFree]
}
