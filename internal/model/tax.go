package model

import (
	"fmt"
	"strings"
)

// FilingStatus is the federal filing status used to pick a bracket schedule.
type FilingStatus string

const (
	Single          FilingStatus = "single"
	MarriedJoint    FilingStatus = "married_joint"
	MarriedSeparate FilingStatus = "married_separate"
	HeadOfHousehold FilingStatus = "head_of_household"
)

var filingStatusAliases = map[string]FilingStatus{
	"single":            Single,
	"s":                 Single,
	"married_joint":     MarriedJoint,
	"married":           MarriedJoint,
	"joint":             MarriedJoint,
	"mfj":               MarriedJoint,
	"married_separate":  MarriedSeparate,
	"separate":          MarriedSeparate,
	"mfs":               MarriedSeparate,
	"head_of_household": HeadOfHousehold,
	"hoh":               HeadOfHousehold,
}

// ParseFilingStatus accepts the canonical names and a few common abbreviations.
func ParseFilingStatus(s string) (FilingStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if fs, ok := filingStatusAliases[key]; ok {
		return fs, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilingStatus, s)
}

// Bracket is one row of a progressive schedule. It applies from LowerBound
// (inclusive) up to the next bracket's LowerBound.
type Bracket struct {
	LowerBound float64 `yaml:"lower_bound" json:"lower_bound"`
	Rate       float64 `yaml:"rate" json:"rate"`
}

// BracketTable is ordered by ascending LowerBound, starting at 0.
type BracketTable []Bracket

// TaxProfile carries the marginal rates used for every fund in one run.
type TaxProfile struct {
	FederalRate float64      `json:"federal_rate"`
	StateRate   float64      `json:"state_rate"`
	State       Jurisdiction `json:"state"`
}

// CombinedRate is the effective combined marginal rate with state tax
// applied to the post-federal base: fed + state*(1-fed).
func (p TaxProfile) CombinedRate() float64 {
	return p.FederalRate + p.StateRate*(1-p.FederalRate)
}
