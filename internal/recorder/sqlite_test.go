package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MoneyMarketOptimizer/internal/model"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "db", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_RecordAndHistory(t *testing.T) {
	r := newTestRecorder(t)
	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	funds := []model.RankedFund{
		{Fund: model.Fund{Ticker: "SNSXX", Name: "Schwab U.S. Treasury Money Fund", Issuer: "Schwab", SECYield: 0.0495}, AfterTaxYield: 0.0386,
			Exemption: model.ExemptionResult{ExemptFraction: 1, Rule: model.RulePartialUSGovt}},
		{Fund: model.Fund{Ticker: "SWVXX", Name: "Schwab Value Advantage Money Fund", Issuer: "Schwab", SECYield: 0.051}, AfterTaxYield: 0.034},
	}
	require.NoError(t, r.RecordRanking(&RankingSnapshot{
		At:         base,
		Trigger:    "CLI",
		Source:     "file",
		Profile:    model.TaxProfile{FederalRate: 0.22, StateRate: 0.093, State: model.CA},
		Considered: 12,
		Funds:      funds,
	}))
	require.NoError(t, r.RecordRanking(&RankingSnapshot{
		At:      base.Add(time.Hour),
		Trigger: "WATCH",
		Profile: model.TaxProfile{FederalRate: 0.22, State: model.TX},
		Funds:   funds[1:],
		Comparison: &model.ComparisonResult{
			BestFund:           funds[1],
			ReferenceAPY:       0.04,
			YieldDeltaFraction: -0.006,
			AnnualDollarDelta:  decimal.NewFromFloat(-60),
		},
	}))

	history, err := r.History(5)
	require.NoError(t, err)
	require.Len(t, history, 2)

	latest := history[0]
	assert.Equal(t, "WATCH", latest.Trigger)
	assert.Equal(t, "TX", latest.State)
	assert.Equal(t, "SWVXX", latest.TopTicker)
	require.NotNil(t, latest.ReferenceAPY)
	assert.Equal(t, 0.04, *latest.ReferenceAPY)
	assert.Equal(t, "-60.00", latest.AnnualDollarDelta)

	first := history[1]
	assert.Equal(t, "CA", first.State)
	assert.Equal(t, "SNSXX", first.TopTicker)
	assert.Equal(t, 12, first.Considered)
	assert.Equal(t, 0.0386, first.TopAfterTaxYield)
	assert.Nil(t, first.ReferenceAPY)
	assert.Equal(t, base.Unix(), first.At.Unix())

	var count int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM ranked_funds`).Scan(&count))
	assert.Equal(t, 3, count)
}

func TestSQLiteRecorder_EmptyRanking(t *testing.T) {
	r := newTestRecorder(t)
	require.NoError(t, r.RecordRanking(&RankingSnapshot{Trigger: "CLI", Profile: model.TaxProfile{State: model.NY}}))

	history, err := r.History(0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Empty(t, history[0].TopTicker)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordRanking(&RankingSnapshot{}))
	h, err := r.History(3)
	assert.NoError(t, err)
	assert.Empty(t, h)
	assert.NoError(t, r.Close())
}
