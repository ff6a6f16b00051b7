package domain_test

import (
	"encoding/json"
	"labelchecker/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseMarketplaces(t *testing.T) {
	got, err := domain.ParseMarketplaces(nil)
	require.NoError(t, err)
	require.Equal(t, []domain.Marketplace{domain.MarketplaceUS}, got)

	got, err = domain.ParseMarketplaces([]string{" de", "gb", "DE", "", "us"})
	require.NoError(t, err)
	require.Equal(t, []domain.Marketplace{domain.MarketplaceDE, domain.MarketplaceUK, domain.MarketplaceUS}, got)

	_, err = domain.ParseMarketplaces([]string{"JP"})
	require.Error(t, err)
}

func TestMarketplaceAuthorities(t *testing.T) {
	require.Equal(t, []domain.Authority{domain.AuthorityFDA, domain.AuthorityCPSC}, domain.MarketplaceUS.Authorities())
	require.Equal(t, []domain.Authority{domain.AuthorityUKCA}, domain.MarketplaceUK.Authorities())
	for _, m := range []domain.Marketplace{domain.MarketplaceDE, domain.MarketplaceFR, domain.MarketplaceIT, domain.MarketplaceES} {
		require.Equal(t, []domain.Authority{domain.AuthorityCE}, m.Authorities(), m)
	}
}

func TestPlanLimits(t *testing.T) {
	require.Equal(t, 3, domain.PlanFree.Limits().ScansPerPeriod)
	require.Equal(t, 5, domain.PlanDeluxe.Limits().TeamSize)
	require.True(t, domain.PlanDeluxe.Limits().Recurring)
	require.Equal(t, 10, domain.PlanOneTime.Limits().Credits)
	require.Equal(t, 3, domain.PlanOneTime.Limits().ScansPerPeriod)
	require.Equal(t, []domain.Plan{domain.PlanFree, domain.PlanDeluxe, domain.PlanOneTime}, domain.PeriodicPlans())
	require.False(t, domain.Plan("GOLD").Valid())
	require.Equal(t, domain.PlanFree.Limits(), domain.Plan("GOLD").Limits())
}

func TestScansRemaining(t *testing.T) {
	require.Equal(t, 2, domain.Account{ScanLimit: 3, ScansUsed: 1}.ScansRemaining())
	require.Equal(t, 4, domain.Account{ScanLimit: 3, ScansUsed: 5, BonusCredits: 4}.ScansRemaining())
}

func TestIDTextRoundTrip(t *testing.T) {
	id := domain.ScanID(uuid.New())
	b, err := json.Marshal(struct {
		ID domain.ScanID `json:"id"`
	}{id})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"`+id.String()+`"}`, string(b))

	var out struct {
		ID domain.ScanID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, id, out.ID)
}
