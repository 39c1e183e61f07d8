package model

import "github.com/shopspring/decimal"

// Fund is a money-market fund as used by the yield engine. Percentages are
// fractions in [0,1]; SECYield is an annualized fraction (0.045 = 4.5%).
type Fund struct {
	Ticker                   string       `json:"ticker" yaml:"ticker"`
	Name                     string       `json:"name" yaml:"name"`
	Issuer                   string       `json:"issuer" yaml:"issuer"`
	SECYield                 float64      `json:"sec_yield" yaml:"sec_yield"`
	USGovtPercentage         float64      `json:"us_govt_percentage" yaml:"us_govt_percentage"`
	MunicipalPercentage      float64      `json:"municipal_percentage" yaml:"municipal_percentage"`
	IsMunicipal              bool         `json:"is_municipal" yaml:"is_municipal"`
	StateSpecific            Jurisdiction `json:"state_specific" yaml:"state_specific"`
	MinimumInitialInvestment float64      `json:"minimum_initial_investment" yaml:"minimum_initial_investment"`
	InvestorType             string       `json:"investor_type" yaml:"investor_type"`
}

// ExemptionRule names the state rule that produced an exemption fraction.
type ExemptionRule string

const (
	RuleNone                ExemptionRule = "NONE"
	RulePartialUSGovt       ExemptionRule = "PARTIAL_US_GOVT"
	RuleFullNJ              ExemptionRule = "FULL_NJ_RULE"
	RuleStandardStateExempt ExemptionRule = "STANDARD_STATE_EXEMPT"
	RuleInStateMunicipal    ExemptionRule = "IN_STATE_MUNICIPAL"
)

// ExemptionResult is the share of a fund's distribution excluded from state
// taxable income, along with the rule that decided it.
type ExemptionResult struct {
	ExemptFraction float64
	Rule           ExemptionRule
}

// RankedFund is a fund with its computed yields for a given TaxProfile.
type RankedFund struct {
	Fund               Fund
	AfterTaxYield      float64
	TaxEquivalentYield float64
	Exemption          ExemptionResult
}

// ComparisonResult contrasts the best fund with a reference account APY.
type ComparisonResult struct {
	BestFund           RankedFund
	ReferenceAPY       float64
	YieldDeltaFraction float64
	InvestmentAmount   decimal.Decimal
	AnnualDollarDelta  decimal.Decimal
}
