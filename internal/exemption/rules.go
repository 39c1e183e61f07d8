// Package exemption decides how much of a fund's distribution a state
// excludes from taxable income.
package exemption

import (
	"math"

	"MoneyMarketOptimizer/internal/model"
)

const (
	// GovtThreshold is the minimum U.S. government share for threshold states
	// to honor any government-obligation exemption.
	GovtThreshold = 0.50
	// NJQualifyingThreshold is the share of NJ-exempt holdings a municipal
	// fund needs for its whole distribution to be exempt in New Jersey.
	NJQualifyingThreshold = 0.80
)

type stateRule uint8

const (
	ruleProportional stateRule = iota
	ruleThreshold
	ruleNoIncomeTax
	ruleNewJersey
)

// stateRules selects the rule variant per state. States not listed use the
// proportional U.S. government rule.
var stateRules = map[model.Jurisdiction]stateRule{
	model.CA: ruleThreshold,
	model.NY: ruleThreshold,
	model.CT: ruleThreshold,
	model.NJ: ruleNewJersey,
	model.AK: ruleNoIncomeTax,
	model.FL: ruleNoIncomeTax,
	model.NV: ruleNoIncomeTax,
	model.SD: ruleNoIncomeTax,
	model.TN: ruleNoIncomeTax,
	model.TX: ruleNoIncomeTax,
	model.WA: ruleNoIncomeTax,
	model.WY: ruleNoIncomeTax,
}

// HasNoIncomeTax reports whether the state levies no tax on fund distributions.
func HasNoIncomeTax(state model.Jurisdiction) bool {
	return stateRules[state] == ruleNoIncomeTax
}

// ComputeExemptFraction returns the fraction of the fund's income that the
// investor's state excludes from taxable income. The state is assumed to have
// been validated already.
func ComputeExemptFraction(f model.Fund, state model.Jurisdiction) model.ExemptionResult {
	rule := stateRules[state]

	if rule == ruleNoIncomeTax {
		return model.ExemptionResult{ExemptFraction: 1, Rule: model.RuleStandardStateExempt}
	}

	if rule == ruleNewJersey && f.IsMunicipal && njQualifyingShare(f) >= NJQualifyingThreshold {
		return model.ExemptionResult{ExemptFraction: 1, Rule: model.RuleFullNJ}
	}

	govt := governmentExemption(f.USGovtPercentage, rule)

	// NJ munis only qualify through the 80% rule above.
	if rule != ruleNewJersey && isInStateMunicipal(f, state) {
		return model.ExemptionResult{
			ExemptFraction: math.Min(1, f.MunicipalPercentage+govt.ExemptFraction),
			Rule:           model.RuleInStateMunicipal,
		}
	}
	return govt
}

func governmentExemption(p float64, rule stateRule) model.ExemptionResult {
	if rule == ruleThreshold && p < GovtThreshold {
		return model.ExemptionResult{ExemptFraction: 0, Rule: model.RuleNone}
	}
	return model.ExemptionResult{ExemptFraction: p, Rule: model.RulePartialUSGovt}
}

// njQualifyingShare counts U.S. government obligations plus New Jersey
// municipal paper held by an NJ-dedicated fund.
func njQualifyingShare(f model.Fund) float64 {
	share := f.USGovtPercentage
	if f.StateSpecific == model.NJ {
		share += f.MunicipalPercentage
	}
	return share
}

// DC exempts interest on municipal obligations from every state.
func isInStateMunicipal(f model.Fund, state model.Jurisdiction) bool {
	if !f.IsMunicipal || f.MunicipalPercentage <= 0 {
		return false
	}
	return state == model.DC || f.StateSpecific == state
}
