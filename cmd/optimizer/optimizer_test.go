package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/profile"
)

const testCatalog = `[
  {"ticker": "TREXX", "name": "Acme Treasury Money Fund", "issuer": "Acme", "yield": 5.0,
   "category": "Treasury", "usTreasuryDebt": 1.0},
  {"ticker": "PRIXX", "name": "Acme Prime Money Fund", "yield": 5.2,
   "minimumInitialInvestment": 1000000, "category": "Prime"},
  {"ticker": "CAMXX", "name": "Beacon California Municipal Money Fund", "issuer": "Beacon", "yield": 3.3,
   "category": "SingleState", "otherMunicipalSecurity": 0.9, "variableRateDemandNote": 0.1}
]`

// setupEnv points every path at a temp dir and returns the catalog path.
func setupEnv(t *testing.T) string {
	dir := t.TempDir()
	for _, k := range []string{"FUND_DATA_URL", "FUND_DATA_FILE", "TAX_BRACKETS_FILE", "REDIS_ADDR",
		"PROFILE_TTL_DAYS", "WATCH_CRON", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "METRICS_ADDR", "HTTPS_PROXY"} {
		t.Setenv(k, "")
	}
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "missing.yaml"))
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "history.db"))
	t.Setenv("PROFILE_CACHE_FILE", filepath.Join(dir, "tax_settings.json"))

	catalog := filepath.Join(dir, "funds.json")
	require.NoError(t, os.WriteFile(catalog, []byte(testCatalog), 0644))
	return catalog
}

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRank_EndToEnd(t *testing.T) {
	catalog := setupEnv(t)

	out, err := execute(t, "--fund_file", catalog, "--state", "CA",
		"--federal_tax_rate", "24", "--state_tax_rate", "9.3",
		"--investment_amount", "10000", "--bank_apy", "4.5", "--record")
	require.NoError(t, err)

	assert.Contains(t, out, "Tax profile: CA | federal 24.00% | state 9.30%")
	assert.Contains(t, out, "Top 2 money market funds by after-tax yield (2 considered)")
	assert.NotContains(t, out, "PRIXX")
	assert.Less(t, strings.Index(out, "TREXX"), strings.Index(out, "CAMXX"))
	assert.Contains(t, out, "IN_STATE_MUNICIPAL")
	assert.Contains(t, out, "Reference APY: 4.50%")
	// 0.038 - 0.045 = -0.7% on $10,000
	assert.Contains(t, out, "-$70.00 per year")

	// The saved settings make the next run work without tax flags.
	out, err = execute(t, "--fund_file", catalog, "--issuer", "beacon")
	require.NoError(t, err)
	assert.Contains(t, out, "CA | federal 24.00% | state 9.30%")
	assert.Contains(t, out, "CAMXX")
	assert.NotContains(t, out, "TREXX")

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "[CLI] CA")
	assert.Contains(t, out, "TREXX 3.80%")

	out, err = execute(t, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "State: CA")
	assert.Contains(t, out, "Rates: federal 24.00%, state 9.30%")

	out, err = execute(t, "profile", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	out, err = execute(t, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No cached tax settings.")
}

func TestRank_IncomeLookup(t *testing.T) {
	catalog := setupEnv(t)

	out, err := execute(t, "--fund_file", catalog, "--state", "TX", "--income", "100000", "--no_cache")
	require.NoError(t, err)
	assert.Contains(t, out, "Tax profile: TX | federal 22.00% | state 0.00%")
	assert.Contains(t, out, "STANDARD_STATE_EXEMPT")
}

func TestRank_Errors(t *testing.T) {
	catalog := setupEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing settings", []string{"--fund_file", catalog, "--no_cache"}, "tax settings incomplete"},
		{"unknown state", []string{"--fund_file", catalog, "--state", "ZZ", "--income", "1"}, "--state"},
		{"rate out of range", []string{"--fund_file", catalog, "--no_cache", "--state", "CA",
			"--federal_tax_rate", "140", "--state_tax_rate", "5"}, "invalid rate"},
		{"negative amount", []string{"--fund_file", catalog, "--investment_amount", "-5"}, "investment"},
		{"negative top", []string{"--fund_file", catalog, "--no_cache", "--state", "TX", "--income", "1", "--top", "-1"}, "top"},
		{"bad log level", []string{"--log_level", "loud"}, "--log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), strings.ToLower(tt.want))
		})
	}
}

func TestApplyTaxFlags(t *testing.T) {
	fed, state, income := 0.24, 0.05, 90000.0
	cached := profile.Settings{FederalRate: &fed, StateRate: &state, State: model.NY}

	parse := func(args ...string) (*pflag.FlagSet, *rankOptions) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		o := &rankOptions{}
		bindRankFlags(fs, o)
		require.NoError(t, fs.Parse(args))
		return fs, o
	}

	// Income on the command line replaces cached rates.
	fs, o := parse("--income", "90000", "--filing_status", "mfj")
	s, err := applyTaxFlags(cached, fs, o)
	require.NoError(t, err)
	assert.Nil(t, s.FederalRate)
	require.NotNil(t, s.Income)
	assert.Equal(t, income, *s.Income)
	assert.Equal(t, model.MarriedJoint, s.FilingStatus)
	assert.Equal(t, model.NY, s.State)

	// Rates replace a cached income and are converted from percent.
	fs, o = parse("--federal_tax_rate", "32", "--state_tax_rate", "6.85", "--state", "nj")
	s, err = applyTaxFlags(profile.Settings{Income: &income}, fs, o)
	require.NoError(t, err)
	assert.Nil(t, s.Income)
	assert.InDelta(t, 0.32, *s.FederalRate, 1e-12)
	assert.InDelta(t, 0.0685, *s.StateRate, 1e-12)
	assert.Equal(t, model.NJ, s.State)

	// No flags leaves the cached settings alone.
	fs, o = parse()
	s, err = applyTaxFlags(cached, fs, o)
	require.NoError(t, err)
	assert.Equal(t, cached, s)

	fs, o = parse("--filing_status", "widowed")
	_, err = applyTaxFlags(cached, fs, o)
	assert.ErrorIs(t, err, model.ErrUnknownFilingStatus)
}

func TestPrompter(t *testing.T) {
	t.Run("income", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader("XX\nca\n$120,000\nhead of household\n"), &out)
		s, err := p.complete(profile.Settings{})
		require.NoError(t, err)
		assert.Equal(t, model.CA, s.State)
		require.NotNil(t, s.Income)
		assert.Equal(t, 120000.0, *s.Income)
		assert.Equal(t, model.HeadOfHousehold, s.FilingStatus)
		assert.Contains(t, out.String(), "State of residence")
	})

	t.Run("rates", func(t *testing.T) {
		p := newPrompter(strings.NewReader("\n22\n150\n5%\n"), &bytes.Buffer{})
		s, err := p.complete(profile.Settings{State: model.OR})
		require.NoError(t, err)
		assert.InDelta(t, 0.22, *s.FederalRate, 1e-12)
		assert.InDelta(t, 0.05, *s.StateRate, 1e-12)
		assert.True(t, settingsComplete(s))
	})

	t.Run("eof", func(t *testing.T) {
		p := newPrompter(strings.NewReader(""), &bytes.Buffer{})
		_, err := p.complete(profile.Settings{})
		assert.Error(t, err)
	})
}

func TestResolveSettings_NonInteractive(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o := &rankOptions{}
	bindRankFlags(fs, o)
	require.NoError(t, fs.Parse([]string{"--state", "WA"}))

	_, err := resolveSettings(context.Background(), fs, o, nil, nil, nil, false)
	assert.ErrorIs(t, err, errIncompleteFlags)
}
