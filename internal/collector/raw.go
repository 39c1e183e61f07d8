package collector

import (
	"math"
	"strings"

	"MoneyMarketOptimizer/internal/model"
)

// RawFund is one record of the published fund-yield dataset. Yield is a
// percentage (4.95 = 4.95%); holding shares are fractions. Holding fields
// are pointers because the dataset uses null for unreported categories.
type RawFund struct {
	Ticker                   string   `json:"ticker" yaml:"ticker"`
	Name                     string   `json:"name" yaml:"name"`
	Issuer                   string   `json:"issuer" yaml:"issuer"`
	Yield                    float64  `json:"yield" yaml:"yield"`
	MinimumInitialInvestment float64  `json:"minimumInitialInvestment" yaml:"minimumInitialInvestment"`
	Category                 string   `json:"category" yaml:"category"`
	InvestorType             string   `json:"investorType" yaml:"investorType"`
	USTreasuryDebt           *float64 `json:"usTreasuryDebt" yaml:"usTreasuryDebt"`
	USGovernmentAgencyDebt   *float64 `json:"usGovernmentAgencyDebt" yaml:"usGovernmentAgencyDebt"`
	VariableRateDemandNote   *float64 `json:"variableRateDemandNote" yaml:"variableRateDemandNote"`
	OtherMunicipalSecurity   *float64 `json:"otherMunicipalSecurity" yaml:"otherMunicipalSecurity"`
	TenderOptionBond         *float64 `json:"tenderOptionBond" yaml:"tenderOptionBond"`
	InvestmentCompany        *float64 `json:"investmentCompany" yaml:"investmentCompany"`
	NonFinancialCompanyCP    *float64 `json:"nonFinancialCompanyCommercialPaper" yaml:"nonFinancialCompanyCommercialPaper"`
}

const (
	CategoryOtherTaxExempt = "OtherTaxExempt"
	CategorySingleState    = "SingleState"
)

// ToFund converts a dataset record into the engine's Fund.
func (r RawFund) ToFund() model.Fund {
	f := model.Fund{
		Ticker:                   r.Ticker,
		Name:                     r.Name,
		Issuer:                   r.Issuer,
		SECYield:                 r.Yield / 100,
		USGovtPercentage:         share(r.USTreasuryDebt, r.USGovernmentAgencyDebt),
		MinimumInitialInvestment: r.MinimumInitialInvestment,
		InvestorType:             r.InvestorType,
	}
	if f.Issuer == "" {
		f.Issuer = issuerFromName(r.Name)
	}

	switch r.Category {
	case CategoryOtherTaxExempt, CategorySingleState:
		f.IsMunicipal = true
		f.MunicipalPercentage = share(
			r.VariableRateDemandNote,
			r.OtherMunicipalSecurity,
			r.TenderOptionBond,
			r.InvestmentCompany,
			r.NonFinancialCompanyCP,
		)
		f.StateSpecific = stateInName(r.Name)
	}
	return f
}

// share adds holding categories, capping at 1 since published breakdowns
// can overshoot slightly through rounding.
func share(vals ...*float64) float64 {
	total := 0.0
	for _, v := range vals {
		if v != nil {
			total += *v
		}
	}
	return math.Min(total, 1)
}

func issuerFromName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// stateInName finds the state a single-state fund is named after. Longer
// names are checked first so "West Virginia" is not read as "Virginia".
func stateInName(name string) model.Jurisdiction {
	lower := strings.ToLower(name)
	var found model.Jurisdiction
	for _, s := range model.States() {
		if s == model.DC {
			continue
		}
		if strings.Contains(lower, strings.ToLower(s.Name())) && len(s.Name()) > len(found.Name()) {
			found = s
		}
	}
	return found
}
