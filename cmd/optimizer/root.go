package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	appName = "optimizer"
	version = "v0.4.0"
)

// globalOptions are shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	noCache    bool
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	o := &rankOptions{}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Rank money market funds by after-tax yield",
		Version: version,
		Long: `Ranks money market funds by the yield you keep after federal and state
income tax, using each fund's US government and municipal holdings to work
out how much of its income your state exempts.

Tax settings come from flags, then the profile cache, then an interactive
prompt when stdin is a terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(g.logLevel)
			if err != nil {
				return fmt.Errorf("parse --log_level: %w", err)
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, g, o)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Config file (default $CONFIG_PATH or configs/config.yaml)")
	pf.StringVar(&g.logLevel, "log_level", "info", "Log level (debug|info|warn|error)")
	pf.BoolVar(&g.noCache, "no_cache", false, "Neither read nor save the cached tax settings")

	bindRankFlags(rootCmd.Flags(), o)

	rootCmd.AddCommand(newWatchCmd(g))
	rootCmd.AddCommand(newProfileCmd(g))
	rootCmd.AddCommand(newHistoryCmd(g))
	return rootCmd
}
