package domain

// ComplianceStatus is the verdict for a whole report or a single finding.
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "COMPLIANT"
	ComplianceWarning      ComplianceStatus = "WARNING"
	ComplianceNonCompliant ComplianceStatus = "NON_COMPLIANT"
	ComplianceUnknown      ComplianceStatus = "UNKNOWN"
)

// Severity ranks how serious a rule violation is.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// ComplianceReport is the AI generated assessment of a label.
type ComplianceReport struct {
	// Score is 0..100; higher means more compliant.
	Score   int              `json:"score"`
	Status  ComplianceStatus `json:"status"`
	Summary string           `json:"summary"`
	// DetectedText is what the model read off the label.
	DetectedText string              `json:"detectedText,omitempty"`
	Marketplaces []MarketplaceReport `json:"marketplaces"`
	// Model names the provider model that produced the report.
	Model string `json:"model,omitempty"`
}

// MarketplaceReport is the part of a report for one marketplace.
type MarketplaceReport struct {
	Marketplace Marketplace      `json:"marketplace"`
	Status      ComplianceStatus `json:"status"`
	Findings    []Finding        `json:"findings"`
}

// Finding is a single observation about the label.
type Finding struct {
	RuleCode       string           `json:"ruleCode,omitempty"`
	Authority      Authority        `json:"authority,omitempty"`
	Severity       Severity         `json:"severity"`
	Status         ComplianceStatus `json:"status"`
	Message        string           `json:"message"`
	Recommendation string           `json:"recommendation,omitempty"`
}
