package domain

import "time"

// RegulatoryRule is a labelling requirement the analyzer checks for.
type RegulatoryRule struct {
	ID          RuleID      `json:"id"`
	Code        string      `json:"code"`
	Authority   Authority   `json:"authority"`
	Marketplace Marketplace `json:"marketplace"`
	Category    string      `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Severity    Severity    `json:"severity"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
