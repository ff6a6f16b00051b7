package labelai_test

import (
	"labelchecker/pkg/domain"
	"labelchecker/pkg/labelai"
	"testing"

	"github.com/stretchr/testify/require"
)

func testInput() labelai.Input {
	return labelai.Input{
		ProductName:  "Kids Crayons",
		Marketplaces: []domain.Marketplace{domain.MarketplaceUS, domain.MarketplaceDE},
		Rules: []domain.RegulatoryRule{
			{Code: "CPSC-ASTM-D4236", Authority: domain.AuthorityCPSC, Marketplace: domain.MarketplaceUS,
				Category: "art-materials", Title: "Conforms to ASTM D-4236", Severity: domain.SeverityHigh},
			{Code: "CE-MARK", Authority: domain.AuthorityCE, Marketplace: domain.MarketplaceDE,
				Category: "general", Title: "CE marking present", Description: "At least 5mm high.", Severity: domain.SeverityCritical},
		},
		Image:       []byte{1, 2, 3},
		ContentType: "image/png",
	}
}

func TestBuildPrompt(t *testing.T) {
	p := labelai.BuildPrompt(testInput())
	require.Contains(t, p, "Product: Kids Crayons")
	require.Contains(t, p, "US (FDA, CPSC)")
	require.Contains(t, p, "DE (CE)")
	require.Contains(t, p, "[CPSC-ASTM-D4236]")
	require.Contains(t, p, "CE marking present. At least 5mm high.")
	require.NotEmpty(t, labelai.SystemPrompt())
}

func TestParseReport_fencedAndNormalized(t *testing.T) {
	text := "Here is the result:\n```json\n" + `{
		"score": 142.6,
		"status": "non compliant",
		"summary": " Missing CE mark. ",
		"detectedText": "CRAYONS 24ct",
		"marketplaces": [
			{"marketplace": "us", "status": "COMPLIANT", "findings": [
				{"ruleCode": "CPSC-ASTM-D4236", "status": "COMPLIANT", "message": "ASTM statement present", "severity": "whatever"}
			]},
			{"marketplace": "DE", "findings": [
				{"ruleCode": "CE-MARK", "authority": "ce", "status": "NON_COMPLIANT", "message": "No CE mark", "recommendation": "Add it"},
				{"status": "WARNING", "message": ""}
			]},
			{"marketplace": "JP", "status": "COMPLIANT"}
		]
	}` + "\n```"

	in := testInput()
	r, err := labelai.ParseReport(text, in, "claude-test")
	require.NoError(t, err)
	require.Equal(t, 100, r.Score)
	require.Equal(t, domain.ComplianceNonCompliant, r.Status)
	require.Equal(t, "Missing CE mark.", r.Summary)
	require.Equal(t, "claude-test", r.Model)
	require.Len(t, r.Marketplaces, 2)

	us := r.Marketplaces[0]
	require.Equal(t, domain.MarketplaceUS, us.Marketplace)
	require.Equal(t, domain.ComplianceCompliant, us.Status)
	require.Len(t, us.Findings, 1)
	// authority and severity are filled from the referenced rule
	require.Equal(t, domain.AuthorityCPSC, us.Findings[0].Authority)
	require.Equal(t, domain.SeverityHigh, us.Findings[0].Severity)

	de := r.Marketplaces[1]
	require.Equal(t, domain.ComplianceNonCompliant, de.Status, "derived from findings")
	require.Len(t, de.Findings, 1, "empty messages are dropped")
	require.Equal(t, domain.AuthorityCE, de.Findings[0].Authority)
	require.Equal(t, domain.SeverityCritical, de.Findings[0].Severity)
}

func TestParseReport_missingMarketplaceIsUnknown(t *testing.T) {
	in := testInput()
	r, err := labelai.ParseReport(`{"score": -5, "summary": "ok", "marketplaces": [{"marketplace":"US","status":"WARNING","findings":[]}]}`, in, "m")
	require.NoError(t, err)
	require.Equal(t, 0, r.Score)
	require.Len(t, r.Marketplaces, 2)
	require.Equal(t, domain.ComplianceUnknown, r.Marketplaces[1].Status)
	require.NotNil(t, r.Marketplaces[1].Findings)
	require.Equal(t, domain.ComplianceWarning, r.Status)
}

func TestParseReport_scoreBounds(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "99.5", want: 100},
		{raw: "41.4", want: 41},
		{raw: "1e300", want: 100},
		{raw: "-1e300", want: 0},
		{raw: "1e400", want: 100},
		{raw: "-1e400", want: 0},
		{raw: "9223372036854775808", want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r, err := labelai.ParseReport(`{"score": `+tt.raw+`, "summary": "s"}`, testInput(), "m")
			require.NoError(t, err)
			require.Equal(t, tt.want, r.Score)
		})
	}
}

func TestParseReport_errors(t *testing.T) {
	_, err := labelai.ParseReport("I cannot help with that.", testInput(), "m")
	require.ErrorIs(t, err, labelai.ErrEmptyResponse)

	_, err = labelai.ParseReport(`{"score": "high"}`, testInput(), "m")
	require.Error(t, err)
}

func TestNewClaudeRequest(t *testing.T) {
	req := labelai.NewClaudeRequest(testInput(), 1024)
	require.Equal(t, 1024, req.MaxTokens)
	require.NotEmpty(t, req.System)
	require.Len(t, req.Messages, 1)
	require.Len(t, req.Messages[0].Content, 2)
	require.Equal(t, "image", req.Messages[0].Content[0].Type)
	require.Equal(t, "AQID", req.Messages[0].Content[0].Source.Data)
	require.Equal(t, "image/png", req.Messages[0].Content[0].Source.MediaType)
}
