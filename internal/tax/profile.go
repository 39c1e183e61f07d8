package tax

import (
	"fmt"
	"math"

	"MoneyMarketOptimizer/internal/model"
)

// ProfileSource says how a TaxProfile is obtained: either rates supplied
// directly (Override) or looked up from income (Lookup).
type ProfileSource interface {
	isProfileSource()
}

// Override uses the given marginal rates as-is.
type Override struct {
	FederalRate float64
	StateRate   float64
	State       model.Jurisdiction
}

// Lookup resolves marginal rates from the bracket tables.
type Lookup struct {
	Income float64
	Status model.FilingStatus
	State  model.Jurisdiction
}

func (Override) isProfileSource() {}
func (Lookup) isProfileSource()   {}

// ResolveProfile turns a ProfileSource into a concrete TaxProfile. It runs
// once per invocation; downstream code only sees the resolved rates.
func ResolveProfile(t *Tables, src ProfileSource) (model.TaxProfile, error) {
	switch s := src.(type) {
	case Override:
		if !s.State.IsState() {
			return model.TaxProfile{}, fmt.Errorf("%w: state %q", model.ErrUnknownJurisdiction, s.State.String())
		}
		if err := ValidateRate(s.FederalRate); err != nil {
			return model.TaxProfile{}, fmt.Errorf("federal rate: %w", err)
		}
		if err := ValidateRate(s.StateRate); err != nil {
			return model.TaxProfile{}, fmt.Errorf("state rate: %w", err)
		}
		return model.TaxProfile{FederalRate: s.FederalRate, StateRate: s.StateRate, State: s.State}, nil

	case Lookup:
		if !s.State.IsState() {
			return model.TaxProfile{}, fmt.Errorf("%w: state %q", model.ErrUnknownJurisdiction, s.State.String())
		}
		fed, err := t.ResolveMarginalRate(model.Federal, s.Status, s.Income)
		if err != nil {
			return model.TaxProfile{}, fmt.Errorf("resolve federal rate: %w", err)
		}
		state, err := t.ResolveMarginalRate(s.State, s.Status, s.Income)
		if err != nil {
			return model.TaxProfile{}, fmt.Errorf("resolve %s rate: %w", s.State, err)
		}
		return model.TaxProfile{FederalRate: fed, StateRate: state, State: s.State}, nil

	default:
		return model.TaxProfile{}, fmt.Errorf("unsupported profile source %T", src)
	}
}

// ValidateRate checks r is a fraction in [0,1].
func ValidateRate(r float64) error {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return fmt.Errorf("%w: %v", model.ErrInvalidRate, r)
	}
	return nil
}
