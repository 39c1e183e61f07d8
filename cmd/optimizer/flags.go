package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/profile"
	"MoneyMarketOptimizer/internal/ranker"
)

// rankOptions holds the ranking flags. Rates and APY are percentages as typed
// by the user (22 means 22%).
type rankOptions struct {
	federalRate      float64
	stateRate        float64
	state            string
	income           float64
	filingStatus     string
	investmentAmount float64
	bankAPY          float64
	issuer           string
	top              int
	fundFile         string
	record           bool
}

func bindRankFlags(fs *pflag.FlagSet, o *rankOptions) {
	bindTaxFlags(fs, o)
	fs.Float64Var(&o.investmentAmount, "investment_amount", 0, "Amount to invest in USD; filters out funds with a higher minimum")
	fs.Float64Var(&o.bankAPY, "bank_apy", 0, "Reference account APY in percent to compare against")
	fs.StringVar(&o.issuer, "issuer", "", "Only rank funds whose issuer contains this text")
	fs.IntVar(&o.top, "top", ranker.DefaultTopN, "Number of funds to show")
	fs.StringVar(&o.fundFile, "fund_file", "", "Read the fund catalog from a local JSON or YAML file")
	fs.BoolVar(&o.record, "record", false, "Record this ranking in the history database")
}

func bindTaxFlags(fs *pflag.FlagSet, o *rankOptions) {
	fs.Float64Var(&o.federalRate, "federal_tax_rate", 0, "Federal marginal tax rate in percent")
	fs.Float64Var(&o.stateRate, "state_tax_rate", 0, "State marginal tax rate in percent")
	fs.StringVar(&o.state, "state", "", "Two-letter state of residence, e.g. CA or DC")
	fs.Float64Var(&o.income, "income", 0, "Annual taxable income in USD, used to look up marginal rates")
	fs.StringVar(&o.filingStatus, "filing_status", "", "Filing status (single|married_joint|married_separate|head_of_household)")
}

// applyTaxFlags overlays the tax flags the user actually set onto s.
// Rates given on the command line replace a cached income and vice versa.
func applyTaxFlags(s profile.Settings, fs *pflag.FlagSet, o *rankOptions) (profile.Settings, error) {
	rateFlags := fs.Changed("federal_tax_rate") || fs.Changed("state_tax_rate")
	if rateFlags {
		s.Income = nil
	}
	if fs.Changed("federal_tax_rate") {
		s.FederalRate = fraction(o.federalRate)
	}
	if fs.Changed("state_tax_rate") {
		s.StateRate = fraction(o.stateRate)
	}
	if fs.Changed("income") {
		if !rateFlags {
			s.FederalRate, s.StateRate = nil, nil
		}
		income := o.income
		s.Income = &income
	}
	if fs.Changed("filing_status") {
		status, err := model.ParseFilingStatus(o.filingStatus)
		if err != nil {
			return s, fmt.Errorf("--filing_status: %w", err)
		}
		s.FilingStatus = status
	}
	if fs.Changed("state") {
		state, err := model.ParseState(o.state)
		if err != nil {
			return s, fmt.Errorf("--state: %w", err)
		}
		s.State = state
	}
	return s, nil
}

func fraction(percent float64) *float64 {
	v := percent / 100
	return &v
}
