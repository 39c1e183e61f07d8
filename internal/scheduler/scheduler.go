package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"MoneyMarketOptimizer/internal/calculator"
	"MoneyMarketOptimizer/internal/collector"
	"MoneyMarketOptimizer/internal/metrics"
	"MoneyMarketOptimizer/internal/model"
	"MoneyMarketOptimizer/internal/notifier"
	"MoneyMarketOptimizer/internal/ranker"
	"MoneyMarketOptimizer/internal/recorder"
	"MoneyMarketOptimizer/internal/report"
)

// TriggerWatch marks runs started by the cron schedule.
const TriggerWatch = "WATCH"

// Job describes what each watch run ranks.
type Job struct {
	Profile      model.TaxProfile
	Options      ranker.Options
	ReferenceAPY *float64
}

// Scheduler re-ranks the fund catalog on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Job       Job
	Recorder  recorder.Recorder
	Notifier  notifier.Notifier // optional
	Metrics   *metrics.Metrics  // optional
	Ctx       context.Context

	wg sync.WaitGroup
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, job Job, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Job:       job,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// Register adds the watch run to the cron schedule.
func (s *Scheduler) Register(expr string) error {
	if _, err := s.Cron.AddFunc(expr, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running tasks to finish,
// including those started by RunNow.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.wg.Wait()
	log.Info().Msg("scheduler stopped")
}

// RunNow starts a watch run in the background, outside the schedule.
func (s *Scheduler) RunNow() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.watchTask()
	}()
}

func (s *Scheduler) watchTask() {
	if _, err := s.RunOnce(s.Ctx); err != nil {
		log.Error().Err(err).Msg("watch run failed")
	}
}

// RunOnce fetches, ranks, records and reports a single run.
func (s *Scheduler) RunOnce(ctx context.Context) (ranker.Ranking, error) {
	start := time.Now()
	log.Info().Str("state", s.Job.Profile.State.Code()).Msg("running watch task")

	ranking, err := s.run(ctx)
	result := metrics.ResultOK
	switch {
	case err != nil:
		result = metrics.ResultError
		s.trySend(ctx, fmt.Sprintf("Watch run failed: %v", err))
	case ranking.NoMatchingFunds:
		result = metrics.ResultEmpty
	}
	if s.Metrics != nil {
		s.Metrics.ObserveRun(result, time.Since(start))
	}
	return ranking, err
}

func (s *Scheduler) run(ctx context.Context) (ranker.Ranking, error) {
	funds, err := s.Collector.Collect(ctx)
	if err != nil {
		return ranker.Ranking{}, fmt.Errorf("collect funds: %w", err)
	}

	ranking, err := ranker.Rank(funds, s.Job.Profile, s.Job.Options)
	if err != nil {
		return ranker.Ranking{}, fmt.Errorf("rank funds: %w", err)
	}
	if s.Metrics != nil {
		s.Metrics.ObserveRanking(ranking.Funds)
	}

	msg := report.FormatProfile(s.Job.Profile) + "\n" +
		report.FormatRanking(ranking, s.Job.Options.Issuer, decimal.NewFromFloat(s.Job.Options.InvestmentAmount))

	var comparison *model.ComparisonResult
	if s.Job.ReferenceAPY != nil && !ranking.NoMatchingFunds {
		comparison, err = ranker.Compare(ranking.Funds, *s.Job.ReferenceAPY, s.Job.Options.InvestmentAmount)
		if err != nil {
			return ranking, fmt.Errorf("compare reference: %w", err)
		}
		refAfterTax, err := calculator.ReferenceAfterTaxYield(*s.Job.ReferenceAPY, s.Job.Profile)
		if err != nil {
			return ranking, fmt.Errorf("reference after-tax yield: %w", err)
		}
		msg += "\n" + report.FormatComparison(comparison, refAfterTax)
	}

	if err := s.Recorder.RecordRanking(&recorder.RankingSnapshot{
		Source:     s.Collector.Fetcher.Name(),
		Trigger:    TriggerWatch,
		Issuer:     s.Job.Options.Issuer,
		Profile:    s.Job.Profile,
		Considered: ranking.Considered,
		Funds:      ranking.Funds,
		Comparison: comparison,
	}); err != nil {
		log.Error().Err(err).Msg("record ranking")
	}

	s.trySend(ctx, msg)
	if len(ranking.Funds) > 0 {
		log.Info().Str("ticker", ranking.Funds[0].Fund.Ticker).Float64("after_tax_yield", ranking.Funds[0].AfterTaxYield).Msg("watch task complete")
	}
	return ranking, nil
}

func (s *Scheduler) trySend(ctx context.Context, text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(ctx, notifier.Preformatted(text), 3); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
