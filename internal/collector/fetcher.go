package collector

import (
	"context"

	"MoneyMarketOptimizer/internal/model"
)

// Fetcher loads the fund catalog from some source.
type Fetcher interface {
	FetchFunds(ctx context.Context) ([]model.Fund, error)
	Name() string
}
