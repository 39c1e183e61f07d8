// Package metrics exposes watch-mode Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"MoneyMarketOptimizer/internal/model"
)

// Run results recorded in mmf_watch_runs_total.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultEmpty = "empty"
)

// Metrics holds the collectors for one registry.
type Metrics struct {
	registry *prometheus.Registry

	bestAfterTaxYield prometheus.Gauge
	fundAfterTaxYield *prometheus.GaugeVec
	runsTotal         *prometheus.CounterVec
	runDuration       prometheus.Histogram
}

// New registers the watch metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		bestAfterTaxYield: factory.NewGauge(prometheus.GaugeOpts{
			Name: "mmf_best_after_tax_yield",
			Help: "After-tax yield of the top ranked fund (fraction)",
		}),
		fundAfterTaxYield: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mmf_fund_after_tax_yield",
			Help: "After-tax yield of each fund in the latest ranking (fraction)",
		}, []string{"ticker"}),
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mmf_watch_runs_total",
			Help: "Watch runs by result",
		}, []string{"result"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mmf_watch_run_duration_seconds",
			Help:    "Duration of a watch run from fetch to notification",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveRanking replaces the per-fund gauges with the latest ranking.
func (m *Metrics) ObserveRanking(funds []model.RankedFund) {
	m.fundAfterTaxYield.Reset()
	if len(funds) == 0 {
		m.bestAfterTaxYield.Set(0)
		return
	}
	m.bestAfterTaxYield.Set(funds[0].AfterTaxYield)
	for _, f := range funds {
		m.fundAfterTaxYield.WithLabelValues(f.Fund.Ticker).Set(f.AfterTaxYield)
	}
}

// ObserveRun counts a finished run and records how long it took.
func (m *Metrics) ObserveRun(result string, d time.Duration) {
	m.runsTotal.WithLabelValues(result).Inc()
	m.runDuration.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
