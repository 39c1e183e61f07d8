package tax

import (
	"fmt"
	"math"

	"MoneyMarketOptimizer/internal/model"
)

// ResolveMarginalRate returns the rate of the highest bracket whose lower
// bound is at or below income. This is the marginal rate, not a blended one.
// The filing status only selects among federal schedules.
func (t *Tables) ResolveMarginalRate(j model.Jurisdiction, status model.FilingStatus, income float64) (float64, error) {
	if income < 0 || math.IsNaN(income) {
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidIncome, income)
	}
	table, err := t.table(j, status)
	if err != nil {
		return 0, err
	}
	return marginalRate(table, income), nil
}

func (t *Tables) table(j model.Jurisdiction, status model.FilingStatus) (model.BracketTable, error) {
	if j == model.Federal {
		table, ok := t.Federal[status]
		if !ok || len(table) == 0 {
			return nil, fmt.Errorf("%w: %q", model.ErrUnknownFilingStatus, status)
		}
		return table, nil
	}
	table, ok := t.States[j]
	if !ok || len(table) == 0 {
		return nil, fmt.Errorf("%w: no bracket table for %s", model.ErrUnknownJurisdiction, j)
	}
	return table, nil
}

func marginalRate(table model.BracketTable, income float64) float64 {
	for i := len(table) - 1; i >= 0; i-- {
		if table[i].LowerBound <= income {
			return table[i].Rate
		}
	}
	// Unreachable for validated tables, whose first bound is 0.
	return table[0].Rate
}

// Validate checks every schedule is progressive: first bound 0, strictly
// increasing bounds, non-decreasing rates within [0,1].
func (t *Tables) Validate() error {
	if len(t.Federal) == 0 {
		return fmt.Errorf("no federal bracket tables")
	}
	for status, table := range t.Federal {
		if err := validateTable(table); err != nil {
			return fmt.Errorf("federal %s: %w", status, err)
		}
	}
	for j, table := range t.States {
		if !j.IsState() {
			return fmt.Errorf("%w: %s is not a state", model.ErrUnknownJurisdiction, j)
		}
		if err := validateTable(table); err != nil {
			return fmt.Errorf("state %s: %w", j, err)
		}
	}
	return nil
}

func validateTable(table model.BracketTable) error {
	if len(table) == 0 {
		return fmt.Errorf("empty table")
	}
	if table[0].LowerBound != 0 {
		return fmt.Errorf("first lower bound is %v, want 0", table[0].LowerBound)
	}
	for i, b := range table {
		if b.Rate < 0 || b.Rate > 1 || math.IsNaN(b.Rate) {
			return fmt.Errorf("bracket %d: %w: %v", i, model.ErrInvalidRate, b.Rate)
		}
		if i == 0 {
			continue
		}
		prev := table[i-1]
		if b.LowerBound <= prev.LowerBound {
			return fmt.Errorf("bracket %d: lower bound %v not above %v", i, b.LowerBound, prev.LowerBound)
		}
		if b.Rate < prev.Rate {
			return fmt.Errorf("bracket %d: rate %v below previous %v", i, b.Rate, prev.Rate)
		}
	}
	return nil
}
