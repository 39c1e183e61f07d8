package collector

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"MoneyMarketOptimizer/internal/calculator"
	"MoneyMarketOptimizer/internal/model"
)

// MockFetcher returns a fixed catalog for development and testing.
type MockFetcher struct {
	Funds []model.Fund
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchFunds(_ context.Context) ([]model.Fund, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Funds, nil
}

// Collector fetches the catalog and drops records the engine cannot use.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect returns the valid funds from the fetcher. Invalid records are
// logged and skipped rather than failing the whole catalog.
func (c *Collector) Collect(ctx context.Context) ([]model.Fund, error) {
	funds, err := c.Fetcher.FetchFunds(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect from %s: %w", c.Fetcher.Name(), err)
	}

	valid := make([]model.Fund, 0, len(funds))
	for _, f := range funds {
		if err := calculator.ValidateFund(f); err != nil {
			log.Warn().Err(err).Str("ticker", f.Ticker).Msg("skipping fund record")
			continue
		}
		valid = append(valid, f)
	}

	log.Debug().
		Str("source", c.Fetcher.Name()).
		Int("fetched", len(funds)).
		Int("valid", len(valid)).
		Msg("fund catalog collected")
	return valid, nil
}
