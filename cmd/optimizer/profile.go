package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"MoneyMarketOptimizer/internal/profile"
	"MoneyMarketOptimizer/internal/report"
)

func newProfileCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or clear the cached tax settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the cached tax settings and the rates they resolve to",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			tables, err := loadTables(cfg)
			if err != nil {
				return err
			}
			store := newProfileStore(cfg)
			defer store.Close()

			s, found, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load tax settings: %w", err)
			}
			out := cmd.OutOrStdout()
			if !found {
				fmt.Fprintln(out, "No cached tax settings.")
				return nil
			}
			writeSettings(out, s)
			p, err := resolveProfile(tables, s)
			if err != nil {
				return err
			}
			fmt.Fprint(out, report.FormatProfile(p))
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the cached tax settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			store := newProfileStore(cfg)
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear tax settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cached tax settings cleared.")
			return nil
		},
	}

	cmd.AddCommand(showCmd, clearCmd)
	return cmd
}

func writeSettings(w io.Writer, s profile.Settings) {
	fmt.Fprintf(w, "State: %s\n", s.State.Code())
	if s.FederalRate != nil && s.StateRate != nil {
		fmt.Fprintf(w, "Rates: federal %s, state %s\n", report.Percent(*s.FederalRate), report.Percent(*s.StateRate))
	}
	if s.Income != nil {
		fmt.Fprintf(w, "Income: $%.0f (%s)\n", *s.Income, s.FilingStatus)
	}
	fmt.Fprintf(w, "Saved: %s\n", s.SavedAt.Format("2006-01-02 15:04"))
}
