// Package ranker orders funds by after-tax yield and compares the best one
// against a reference account.
package ranker

import (
	"fmt"
	"sort"
	"strings"

	"MoneyMarketOptimizer/internal/calculator"
	"MoneyMarketOptimizer/internal/model"
)

// DefaultTopN is used when Options.TopN is zero.
const DefaultTopN = 5

// Options narrows and sizes a ranking.
type Options struct {
	// Issuer keeps only funds whose issuer or name contains this text,
	// case-insensitively.
	Issuer string
	TopN   int
	// InvestmentAmount, when positive, drops funds whose minimum initial
	// investment is above it.
	InvestmentAmount float64
}

// Ranking is the ordered result of Rank. NoMatchingFunds is set when the
// filters left nothing to rank; it is not an error.
type Ranking struct {
	Funds           []model.RankedFund
	Considered      int
	NoMatchingFunds bool
}

// Rank computes yields for every fund that passes the filters and returns the
// top N, ordered by after-tax yield, then SEC yield, then name.
func Rank(funds []model.Fund, p model.TaxProfile, opts Options) (Ranking, error) {
	topN := opts.TopN
	if topN == 0 {
		topN = DefaultTopN
	}
	if topN < 0 {
		return Ranking{}, fmt.Errorf("%w: %d", model.ErrInvalidTopN, opts.TopN)
	}

	ranked := make([]model.RankedFund, 0, len(funds))
	for _, f := range funds {
		if !matches(f, opts) {
			continue
		}
		y, err := calculator.ComputeYields(f, p)
		if err != nil {
			return Ranking{}, fmt.Errorf("rank %s: %w", f.Name, err)
		}
		ranked = append(ranked, model.RankedFund{
			Fund:               f,
			AfterTaxYield:      y.AfterTax,
			TaxEquivalentYield: y.TaxEquivalent,
			Exemption:          y.Exemption,
		})
	}

	if len(ranked) == 0 {
		return Ranking{Funds: []model.RankedFund{}, NoMatchingFunds: true}, nil
	}

	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })

	considered := len(ranked)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return Ranking{Funds: ranked, Considered: considered}, nil
}

func matches(f model.Fund, opts Options) bool {
	if opts.Issuer != "" && !matchesIssuer(f, opts.Issuer) {
		return false
	}
	if opts.InvestmentAmount > 0 && f.MinimumInitialInvestment > opts.InvestmentAmount {
		return false
	}
	return true
}

// matchesIssuer checks the issuer and the fund name. Catalog records often
// carry no issuer, and multi-word issuers only show up in the name.
func matchesIssuer(f model.Fund, issuer string) bool {
	want := strings.ToLower(issuer)
	return strings.Contains(strings.ToLower(f.Issuer), want) ||
		strings.Contains(strings.ToLower(f.Name), want)
}

func less(a, b model.RankedFund) bool {
	if a.AfterTaxYield != b.AfterTaxYield {
		return a.AfterTaxYield > b.AfterTaxYield
	}
	if a.Fund.SECYield != b.Fund.SECYield {
		return a.Fund.SECYield > b.Fund.SECYield
	}
	return a.Fund.Name < b.Fund.Name
}
