package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"MoneyMarketOptimizer/internal/calculator"
	"MoneyMarketOptimizer/internal/collector"
	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/profile"
	"MoneyMarketOptimizer/internal/ranker"
	"MoneyMarketOptimizer/internal/recorder"
	"MoneyMarketOptimizer/internal/report"
	"MoneyMarketOptimizer/internal/tax"
)

const triggerCLI = "CLI"

func runRank(cmd *cobra.Command, g *globalOptions, o *rankOptions) error {
	ctx := cmd.Context()
	if o.investmentAmount < 0 {
		return fmt.Errorf("--investment_amount: %w", model.ErrInvalidInvestment)
	}

	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	tables, err := loadTables(cfg)
	if err != nil {
		return err
	}

	var store profileStore
	if !g.noCache {
		store = newProfileStore(cfg)
		defer store.Close()
	}
	settings, err := resolveSettings(ctx, cmd.Flags(), o, store, cmd.InOrStdin(), cmd.ErrOrStderr(), isInteractive(cmd.InOrStdin()))
	if err != nil {
		return err
	}
	p, err := resolveProfile(tables, settings)
	if err != nil {
		return err
	}

	fetcher := newFetcher(cfg, o.fundFile)
	funds, err := collector.NewCollector(fetcher).Collect(ctx)
	if err != nil {
		return fmt.Errorf("load fund catalog: %w", err)
	}

	opts := ranker.Options{Issuer: o.issuer, TopN: o.top, InvestmentAmount: o.investmentAmount}
	ranking, err := ranker.Rank(funds, p, opts)
	if err != nil {
		return fmt.Errorf("rank funds: %w", err)
	}

	var comparison *model.ComparisonResult
	if cmd.Flags().Changed("bank_apy") && !ranking.NoMatchingFunds {
		comparison, err = ranker.Compare(ranking.Funds, o.bankAPY/100, o.investmentAmount)
		if err != nil {
			return fmt.Errorf("compare --bank_apy: %w", err)
		}
	}

	if err := printRanking(cmd.OutOrStdout(), p, ranking, comparison, opts); err != nil {
		return err
	}

	if o.record {
		rec := newRecorder(cfg)
		defer rec.Close()
		if err := rec.RecordRanking(&recorder.RankingSnapshot{
			Source:     fetcher.Name(),
			Trigger:    triggerCLI,
			Issuer:     o.issuer,
			Profile:    p,
			Considered: ranking.Considered,
			Funds:      ranking.Funds,
			Comparison: comparison,
		}); err != nil {
			log.Error().Err(err).Msg("record ranking")
		}
	}

	if store != nil {
		if err := store.Save(ctx, settings); err != nil {
			log.Warn().Err(err).Msg("save tax settings")
		}
	}
	return nil
}

// resolveSettings merges cached settings with flags and prompts for the rest
// when interactive. store may be nil.
func resolveSettings(ctx context.Context, fs *pflag.FlagSet, o *rankOptions, store profile.Store,
	in io.Reader, out io.Writer, interactive bool) (profile.Settings, error) {
	var s profile.Settings
	if store != nil {
		s = loadCachedSettings(ctx, store)
	}
	s, err := applyTaxFlags(s, fs, o)
	if err != nil {
		return s, err
	}
	if settingsComplete(s) {
		return s, nil
	}
	if !interactive {
		return s, errIncompleteFlags
	}
	return newPrompter(in, out).complete(s)
}

func resolveProfile(tables *tax.Tables, s profile.Settings) (model.TaxProfile, error) {
	src, err := s.Source()
	if err != nil {
		return model.TaxProfile{}, err
	}
	p, err := tax.ResolveProfile(tables, src)
	if err != nil {
		return model.TaxProfile{}, fmt.Errorf("resolve tax profile: %w", err)
	}
	return p, nil
}

func printRanking(w io.Writer, p model.TaxProfile, ranking ranker.Ranking, comparison *model.ComparisonResult, opts ranker.Options) error {
	amount := decimal.NewFromFloat(opts.InvestmentAmount)
	out := report.FormatProfile(p) + "\n" + report.FormatRanking(ranking, opts.Issuer, amount)
	if comparison != nil {
		refAfterTax, err := calculator.ReferenceAfterTaxYield(comparison.ReferenceAPY, p)
		if err != nil {
			return fmt.Errorf("reference after-tax yield: %w", err)
		}
		out += "\n" + report.FormatComparison(comparison, refAfterTax)
	}
	_, err := io.WriteString(w, out)
	return err
}
