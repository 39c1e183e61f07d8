package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/ranker"
	"MoneyMarketOptimizer/internal/recorder"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "$0.00"},
		{decimal.NewFromFloat(12.5), "$12.50"},
		{decimal.NewFromFloat(1234.567), "$1,234.57"},
		{decimal.NewFromInt(1000000), "$1,000,000.00"},
		{decimal.NewFromFloat(-14.004), "-$14.00"},
		{decimal.NewFromFloat(-0.001), "$0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in))
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "3.51%", Percent(0.0351))
	assert.Equal(t, "+0.97%", SignedPercent(0.0097))
	assert.Equal(t, "-0.14%", SignedPercent(-0.0014))
}

func TestFormatRanking(t *testing.T) {
	r := ranker.Ranking{
		Considered: 8,
		Funds: []model.RankedFund{
			{
				Fund:               model.Fund{Ticker: "SNSXX", Name: "Schwab U.S. Treasury Money Fund", SECYield: 0.0495},
				AfterTaxYield:      0.0386,
				TaxEquivalentYield: 0.0495,
				Exemption:          model.ExemptionResult{ExemptFraction: 1, Rule: model.RulePartialUSGovt},
			},
		},
	}
	out := FormatRanking(r, "", decimal.NewFromInt(10000))
	assert.Contains(t, out, "Top 1 money market funds by after-tax yield (8 considered)")
	assert.Contains(t, out, "SNSXX")
	assert.Contains(t, out, "after-tax 3.86%")
	assert.Contains(t, out, "state exemption 100.00% (PARTIAL_US_GOVT)")
	assert.Contains(t, out, "after-tax income on $10,000.00 over 12 months: $386.00")

	out = FormatRanking(r, "", decimal.Zero)
	assert.NotContains(t, out, "over 12 months")
}

func TestFormatRanking_NoMatches(t *testing.T) {
	out := FormatRanking(ranker.Ranking{NoMatchingFunds: true}, "Vanguard", decimal.Zero)
	assert.Contains(t, out, `No funds matched issuer "Vanguard"`)
}

func TestFormatComparison(t *testing.T) {
	c := &model.ComparisonResult{
		BestFund:           model.RankedFund{Fund: model.Fund{Ticker: "SNSXX"}, AfterTaxYield: 0.0386},
		ReferenceAPY:       0.04,
		YieldDeltaFraction: -0.0014,
		InvestmentAmount:   decimal.NewFromInt(10000),
		AnnualDollarDelta:  decimal.NewFromInt(-14),
	}
	out := FormatComparison(c, 0.0288)
	assert.Contains(t, out, "Reference APY: 4.00% (after tax 2.88%)")
	assert.Contains(t, out, "Reference after-tax income on $10,000.00 over 12 months: $288.00")
	assert.Contains(t, out, "is worse than the reference by -0.14% (-$14.00 per year)")
}

func TestFormatProfileAndHistory(t *testing.T) {
	out := FormatProfile(model.TaxProfile{FederalRate: 0.24, StateRate: 0.093, State: model.CA})
	assert.Contains(t, out, "CA | federal 24.00% | state 9.30%")

	assert.Equal(t, "No recorded runs.\n", FormatHistory(nil))
	apy := 0.04
	out = FormatHistory([]recorder.RunSummary{{
		ID: 3, At: time.Date(2026, 10, 1, 8, 0, 0, 0, time.Local), Trigger: "CLI", State: "TX",
		FederalRate: 0.22, TopTicker: "SNSXX", TopAfterTaxYield: 0.0386, Considered: 4,
		ReferenceAPY: &apy, AnnualDollarDelta: "-14.00",
	}})
	assert.Contains(t, out, "#3 2026-10-01 08:00:00 [CLI] TX")
	assert.Contains(t, out, "SNSXX 3.86% (4 considered) vs 4.00%, -$14.00/yr")

	out = FormatHistory([]recorder.RunSummary{{ID: 4, ReferenceAPY: &apy, AnnualDollarDelta: "1234.5"}})
	assert.Contains(t, out, "vs 4.00%, $1,234.50/yr")
}
