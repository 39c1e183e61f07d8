package recorder

import (
	"time"

	"MoneyMarketOptimizer/internal/model"
)

// RankingSnapshot holds everything produced by one ranking run.
type RankingSnapshot struct {
	At         time.Time
	Source     string // fund catalog source, e.g. "http" or "file"
	Trigger    string // "CLI" or "WATCH"
	Issuer     string
	Profile    model.TaxProfile
	Considered int
	Funds      []model.RankedFund
	Comparison *model.ComparisonResult
}

// RunSummary is one row of ranking history with its top fund.
type RunSummary struct {
	ID                int64
	At                time.Time
	Trigger           string
	State             string
	FederalRate       float64
	StateRate         float64
	Considered        int
	TopTicker         string
	TopName           string
	TopAfterTaxYield  float64
	ReferenceAPY      *float64
	AnnualDollarDelta string
}

// Recorder persists ranking runs for later analysis.
type Recorder interface {
	RecordRanking(snap *RankingSnapshot) error
	History(limit int) ([]RunSummary, error)
	Close() error
}
