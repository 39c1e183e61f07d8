// Package profile persists the user's tax settings between runs.
package profile

import (
	"context"
	"errors"
	"time"

	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/tax"
)

// DefaultTTL is how long saved settings stay valid.
const DefaultTTL = 30 * 24 * time.Hour

// ErrIncomplete is returned when settings carry neither explicit rates nor an income.
var ErrIncomplete = errors.New("incomplete tax settings")

// Settings is what the user entered, not the resolved rates: an income-based
// profile is looked up again against the current tables on every run.
type Settings struct {
	FederalRate  *float64           `json:"federal_rate,omitempty"`
	StateRate    *float64           `json:"state_rate,omitempty"`
	Income       *float64           `json:"income,omitempty"`
	FilingStatus model.FilingStatus `json:"filing_status,omitempty"`
	State        model.Jurisdiction `json:"state"`
	SavedAt      time.Time          `json:"saved_at"`
}

// Source converts the settings into a tax.ProfileSource. Explicit rates win
// over income.
func (s Settings) Source() (tax.ProfileSource, error) {
	if s.FederalRate != nil && s.StateRate != nil {
		return tax.Override{FederalRate: *s.FederalRate, StateRate: *s.StateRate, State: s.State}, nil
	}
	if s.Income != nil {
		status := s.FilingStatus
		if status == "" {
			status = model.Single
		}
		return tax.Lookup{Income: *s.Income, Status: status, State: s.State}, nil
	}
	return nil, ErrIncomplete
}

// Expired reports whether settings saved at SavedAt are older than ttl.
func (s Settings) Expired(now time.Time, ttl time.Duration) bool {
	return s.SavedAt.IsZero() || now.Sub(s.SavedAt) > ttl
}

// Store loads and saves Settings. Load reports found=false for missing or
// expired settings.
type Store interface {
	Load(ctx context.Context) (Settings, bool, error)
	Save(ctx context.Context, s Settings) error
	Clear(ctx context.Context) error
}
