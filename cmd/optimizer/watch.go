package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"MoneyMarketOptimizer/internal/collector"
	"MoneyMarketOptimizer/internal/metrics"
	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/notifier"
	"MoneyMarketOptimizer/internal/ranker"
	"MoneyMarketOptimizer/internal/scheduler"
)

func newWatchCmd(g *globalOptions) *cobra.Command {
	o := &rankOptions{}
	var runOnStart bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-rank the fund catalog on a cron schedule",
		Long: `Fetches the fund catalog on schedule.cron, ranks it with the cached or
flag-supplied tax settings, records every run and sends the report to
Telegram when configured. Metrics are served on metrics.addr when set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, g, o, runOnStart)
		},
	}
	bindRankFlags(cmd.Flags(), o)
	cmd.Flags().BoolVar(&runOnStart, "run_on_start", false, "Run once immediately before waiting for the schedule")
	return cmd
}

func runWatch(cmd *cobra.Command, g *globalOptions, o *rankOptions, runOnStart bool) error {
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

	// Watch never prompts; settings must come from flags or the cache.
	var store profileStore
	if !g.noCache {
		store = newProfileStore(cfg)
		defer store.Close()
	}
	settings, err := resolveSettings(cmd.Context(), cmd.Flags(), o, store, nil, nil, false)
	if err != nil {
		return err
	}
	p, err := resolveProfile(tables, settings)
	if err != nil {
		return err
	}

	job := scheduler.Job{
		Profile: p,
		Options: ranker.Options{Issuer: o.issuer, TopN: o.top, InvestmentAmount: o.investmentAmount},
	}
	if cmd.Flags().Changed("bank_apy") {
		apy := o.bankAPY / 100
		job.ReferenceAPY = &apy
	}

	rec := newRecorder(cfg)
	defer rec.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	fetcher := newFetcher(cfg, o.fundFile)
	log.Info().Str("source", fetcher.Name()).Msg("fund catalog source")
	sched := scheduler.NewScheduler(ctx, collector.NewCollector(fetcher), job, rec)

	if cfg.TelegramEnabled() {
		sched.Notifier = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		log.Info().Msg("telegram notifications enabled")
	}

	if cfg.Metrics.Addr != "" {
		sched.Metrics = metrics.New()
		srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: metricsMux(sched.Metrics), ReadHeaderTimeout: 10 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("metrics server")
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics server started")
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		return err
	}
	sched.Start()
	// Stop is deferred after rec.Close so in-flight runs finish recording first.
	defer sched.Stop()

	if runOnStart {
		sched.RunNow()
	}

	log.Info().Str("cron", cfg.Schedule.Cron).Msg("watching. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Info().Msg("shutdown signal received, stopping...")
	case <-ctx.Done():
	}
	cancel()
	return nil
}

func metricsMux(m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
