// Package calculator computes after-tax and tax-equivalent yields.
package calculator

import (
	"fmt"
	"math"

	"MoneyMarketOptimizer/internal/exemption"
	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/tax"
)

// Yields is the result of applying a TaxProfile to one fund.
type Yields struct {
	AfterTax      float64
	TaxEquivalent float64
	Exemption     model.ExemptionResult
}

// ComputeYields returns the fund's after-tax yield and the yield a fully
// taxable instrument would need to match it. Values are never rounded.
func ComputeYields(f model.Fund, p model.TaxProfile) (Yields, error) {
	if err := ValidateFund(f); err != nil {
		return Yields{}, err
	}
	if err := validateProfile(p); err != nil {
		return Yields{}, err
	}

	ex := exemption.ComputeExemptFraction(f, p.State)
	afterTax := f.SECYield - federalTax(f, p) - stateTax(f, p, ex)

	teq, err := TaxEquivalent(afterTax, p)
	if err != nil {
		return Yields{}, fmt.Errorf("fund %s: %w", f.Name, err)
	}
	return Yields{AfterTax: afterTax, TaxEquivalent: teq, Exemption: ex}, nil
}

// Municipal fund income is exempt from federal tax.
func federalTax(f model.Fund, p model.TaxProfile) float64 {
	if f.IsMunicipal {
		return 0
	}
	return f.SECYield * p.FederalRate
}

func stateTax(f model.Fund, p model.TaxProfile, ex model.ExemptionResult) float64 {
	if p.StateRate == 0 {
		return 0
	}
	return f.SECYield * (1 - ex.ExemptFraction) * p.StateRate
}

// TaxEquivalent grosses an after-tax yield up by the combined marginal rate.
func TaxEquivalent(afterTax float64, p model.TaxProfile) (float64, error) {
	denom := 1 - p.CombinedRate()
	if denom <= 0 {
		return 0, fmt.Errorf("%w: combined rate %.4f", model.ErrDegenerateRate, p.CombinedRate())
	}
	return afterTax / denom, nil
}

// ReferenceAfterTaxYield is what a fully taxable account paying apy keeps
// after federal and state tax.
func ReferenceAfterTaxYield(apy float64, p model.TaxProfile) (float64, error) {
	if math.IsNaN(apy) || math.IsInf(apy, 0) || apy < 0 {
		return 0, fmt.Errorf("%w: reference APY %v", model.ErrInvalidRate, apy)
	}
	if err := validateProfile(p); err != nil {
		return 0, err
	}
	return apy * (1 - p.CombinedRate()), nil
}

// ValidateFund rejects negative yields and holding shares outside [0,1].
func ValidateFund(f model.Fund) error {
	if math.IsNaN(f.SECYield) || math.IsInf(f.SECYield, 0) || f.SECYield < 0 {
		return fmt.Errorf("%w: fund %q SEC yield %v", model.ErrInvalidFundData, f.Name, f.SECYield)
	}
	if !isFraction(f.USGovtPercentage) {
		return fmt.Errorf("%w: fund %q government share %v", model.ErrInvalidFundData, f.Name, f.USGovtPercentage)
	}
	if !isFraction(f.MunicipalPercentage) {
		return fmt.Errorf("%w: fund %q municipal share %v", model.ErrInvalidFundData, f.Name, f.MunicipalPercentage)
	}
	return nil
}

func validateProfile(p model.TaxProfile) error {
	if err := tax.ValidateRate(p.FederalRate); err != nil {
		return fmt.Errorf("federal rate: %w", err)
	}
	if err := tax.ValidateRate(p.StateRate); err != nil {
		return fmt.Errorf("state rate: %w", err)
	}
	return nil
}

func isFraction(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
