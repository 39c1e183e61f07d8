package ranker

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"MoneyMarketOptimizer/internal/model"
)

// Compare contrasts the top-ranked fund with a reference APY. A negative
// delta means the reference account pays more.
func Compare(ranked []model.RankedFund, referenceAPY, investmentAmount float64) (*model.ComparisonResult, error) {
	if len(ranked) == 0 {
		return nil, model.ErrEmptyFundList
	}
	if math.IsNaN(referenceAPY) || math.IsInf(referenceAPY, 0) {
		return nil, fmt.Errorf("%w: reference APY %v", model.ErrInvalidRate, referenceAPY)
	}
	if math.IsNaN(investmentAmount) || math.IsInf(investmentAmount, 0) || investmentAmount < 0 {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInvestment, investmentAmount)
	}

	best := ranked[0]
	delta := best.AfterTaxYield - referenceAPY
	amount := decimal.NewFromFloat(investmentAmount)

	return &model.ComparisonResult{
		BestFund:           best,
		ReferenceAPY:       referenceAPY,
		YieldDeltaFraction: delta,
		InvestmentAmount:   amount,
		AnnualDollarDelta:  decimal.NewFromFloat(delta).Mul(amount),
	}, nil
}
