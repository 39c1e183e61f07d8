package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"MoneyMarketOptimizer/internal/report"
)

func newHistoryCmd(g *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded rankings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			rec := newRecorder(cfg)
			defer rec.Close()

			runs, err := rec.History(limit)
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), report.FormatHistory(runs))
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show")
	return cmd
}
