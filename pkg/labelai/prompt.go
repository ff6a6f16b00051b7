package labelai

import (
	"encoding/json"
	"errors"
	"fmt"
	"labelchecker/pkg/domain"
	"math"
	"strconv"
	"strings"
)

const systemPrompt = `You are a product labelling compliance expert for Amazon sellers.
You inspect a photo of a product label and check it against the regulatory
requirements of the marketplaces the product is sold on (FDA and CPSC for the
US, UKCA for the UK, CE for the EU marketplaces).

Answer with a single JSON object and nothing else, using this shape:
{
  "score": <integer 0-100, 100 means fully compliant>,
  "status": "COMPLIANT" | "WARNING" | "NON_COMPLIANT",
  "summary": "<two or three sentences>",
  "detectedText": "<the text you can read on the label>",
  "marketplaces": [
    {
      "marketplace": "<marketplace code>",
      "status": "COMPLIANT" | "WARNING" | "NON_COMPLIANT",
      "findings": [
        {
          "ruleCode": "<code of the rule this finding is about, if any>",
          "authority": "FDA" | "CPSC" | "UKCA" | "CE",
          "severity": "LOW" | "MEDIUM" | "HIGH" | "CRITICAL",
          "status": "COMPLIANT" | "WARNING" | "NON_COMPLIANT",
          "message": "<what you observed>",
          "recommendation": "<how to fix it>"
        }
      ]
    }
  ]
}
If the image is not a product label, return score 0, status NON_COMPLIANT and
explain it in the summary.`

// SystemPrompt returns the instructions shared by all providers.
func SystemPrompt() string {
	return systemPrompt
}

// BuildPrompt renders the user message describing the product, the target
// marketplaces and the rules to check.
func BuildPrompt(in Input) string {
	var b strings.Builder

	if in.ProductName != "" {
		fmt.Fprintf(&b, "Product: %s\n", in.ProductName)
	}

	b.WriteString("Marketplaces:")
	for _, m := range in.Marketplaces {
		auths := make([]string, 0, 2)
		for _, a := range m.Authorities() {
			auths = append(auths, string(a))
		}
		fmt.Fprintf(&b, " %s (%s)", m, strings.Join(auths, ", "))
	}
	b.WriteString("\n")

	if len(in.Rules) > 0 {
		b.WriteString("\nRules to check:\n")
		for _, r := range in.Rules {
			fmt.Fprintf(&b, "- [%s] %s %s/%s (%s): %s", r.Code, r.Marketplace, r.Authority, r.Category, r.Severity, r.Title)
			if r.Description != "" {
				fmt.Fprintf(&b, ". %s", r.Description)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nAssess the attached label image and respond with the JSON object only.")

	return b.String()
}

// ErrEmptyResponse is returned when the model response contains no JSON object.
var ErrEmptyResponse = errors.New("model response contains no JSON object")

// rawReport mirrors the JSON the model is asked to produce. Fields are lenient
// on purpose; normalization happens in ParseReport.
type rawReport struct {
	Score        json.Number `json:"score"`
	Status       string      `json:"status"`
	Summary      string      `json:"summary"`
	DetectedText string      `json:"detectedText"`
	Marketplaces []struct {
		Marketplace string `json:"marketplace"`
		Status      string `json:"status"`
		Findings    []struct {
			RuleCode       string `json:"ruleCode"`
			Authority      string `json:"authority"`
			Severity       string `json:"severity"`
			Status         string `json:"status"`
			Message        string `json:"message"`
			Recommendation string `json:"recommendation"`
		} `json:"findings"`
	} `json:"marketplaces"`
}

// extractJSON returns the outermost JSON object in text, tolerating markdown
// fences and prose around it.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}

	return text[start : end+1], true
}

func parseStatus(s string) domain.ComplianceStatus {
	st := domain.ComplianceStatus(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")))
	switch st {
	case domain.ComplianceCompliant, domain.ComplianceWarning, domain.ComplianceNonCompliant:
		return st
	case "NONCOMPLIANT", "NOT_COMPLIANT":
		return domain.ComplianceNonCompliant
	default:
		return domain.ComplianceUnknown
	}
}

// worst returns the most severe of the given statuses. UNKNOWN only wins when
// nothing else is known.
func worst(statuses ...domain.ComplianceStatus) domain.ComplianceStatus {
	rank := map[domain.ComplianceStatus]int{
		domain.ComplianceUnknown:      0,
		domain.ComplianceCompliant:    1,
		domain.ComplianceWarning:      2,
		domain.ComplianceNonCompliant: 3,
	}
	out := domain.ComplianceUnknown
	for _, s := range statuses {
		if rank[s] > rank[out] {
			out = s
		}
	}

	return out
}

// ParseReport decodes the model's text answer into a report restricted to the
// requested marketplaces. Marketplaces the model skipped are reported with
// status UNKNOWN.
func ParseReport(text string, in Input, model string) (*domain.ComplianceReport, error) {
	raw, ok := extractJSON(text)
	if !ok {
		return nil, ErrEmptyResponse
	}

	var rr rawReport
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&rr); err != nil {
		return nil, fmt.Errorf("could not decode model response: %w", err)
	}

	score := 0
	// out of range numbers parse to an infinity that the clamp handles
	if f, err := rr.Score.Float64(); err == nil || errors.Is(err, strconv.ErrRange) {
		score = clampScore(f)
	}

	rulesByCode := make(map[string]domain.RegulatoryRule, len(in.Rules))
	for _, r := range in.Rules {
		rulesByCode[r.Code] = r
	}

	byMarketplace := make(map[domain.Marketplace]domain.MarketplaceReport, len(rr.Marketplaces))
	for _, m := range rr.Marketplaces {
		parsed, err := domain.ParseMarketplaces([]string{m.Marketplace})
		if err != nil || len(parsed) != 1 {
			continue
		}
		mp := parsed[0]

		mr := domain.MarketplaceReport{
			Marketplace: mp,
			Status:      parseStatus(m.Status),
			Findings:    make([]domain.Finding, 0, len(m.Findings)),
		}
		for _, f := range m.Findings {
			finding := domain.Finding{
				RuleCode:       strings.TrimSpace(f.RuleCode),
				Authority:      domain.Authority(strings.ToUpper(strings.TrimSpace(f.Authority))),
				Severity:       domain.Severity(strings.ToUpper(strings.TrimSpace(f.Severity))),
				Status:         parseStatus(f.Status),
				Message:        strings.TrimSpace(f.Message),
				Recommendation: strings.TrimSpace(f.Recommendation),
			}
			if rule, ok := rulesByCode[finding.RuleCode]; ok {
				if !finding.Authority.Valid() {
					finding.Authority = rule.Authority
				}
				if !finding.Severity.Valid() {
					finding.Severity = rule.Severity
				}
			}
			if !finding.Authority.Valid() {
				finding.Authority = ""
			}
			if !finding.Severity.Valid() {
				finding.Severity = domain.SeverityMedium
			}
			if finding.Message == "" {
				continue
			}
			mr.Findings = append(mr.Findings, finding)
		}
		if mr.Status == domain.ComplianceUnknown {
			for _, f := range mr.Findings {
				mr.Status = worst(mr.Status, f.Status)
			}
		}

		if prev, ok := byMarketplace[mp]; ok {
			prev.Findings = append(prev.Findings, mr.Findings...)
			prev.Status = worst(prev.Status, mr.Status)
			mr = prev
		}
		byMarketplace[mp] = mr
	}

	report := &domain.ComplianceReport{
		Score:        score,
		Status:       parseStatus(rr.Status),
		Summary:      strings.TrimSpace(rr.Summary),
		DetectedText: strings.TrimSpace(rr.DetectedText),
		Marketplaces: make([]domain.MarketplaceReport, 0, len(in.Marketplaces)),
		Model:        model,
	}
	statuses := make([]domain.ComplianceStatus, 0, len(in.Marketplaces))
	for _, mp := range in.Marketplaces {
		mr, ok := byMarketplace[mp]
		if !ok {
			mr = domain.MarketplaceReport{Marketplace: mp, Status: domain.ComplianceUnknown, Findings: []domain.Finding{}}
		}
		report.Marketplaces = append(report.Marketplaces, mr)
		statuses = append(statuses, mr.Status)
	}
	if report.Status == domain.ComplianceUnknown {
		report.Status = worst(statuses...)
	}

	return report, nil
}

// clampScore rounds f into 0..100 before converting, so huge values cannot
// overflow the int conversion.
func clampScore(f float64) int {
	if math.IsNaN(f) {
		return 0
	}

	return int(math.Round(min(max(f, 0), 100)))
}
