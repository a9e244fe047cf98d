package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	tickersProcessed *prometheus.CounterVec
	fetchesTotal     *prometheus.CounterVec
	cacheEvents      *prometheus.CounterVec
	alertsTotal      *prometheus.CounterVec
	scanCycles       prometheus.Counter
	lastPrice        *prometheus.GaugeVec
	zscore           *prometheus.GaugeVec
	latency          *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		tickersProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volscan_tickers_processed_total",
				Help: "Total number of tickers processed by outcome",
			},
			[]string{"outcome"},
		),
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volscan_fetches_total",
				Help: "Total number of market data fetches by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		cacheEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volscan_cache_events_total",
				Help: "Total number of result cache events",
			},
			[]string{"event"},
		),
		alertsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volscan_alerts_total",
				Help: "Total number of volatility alerts by disposition",
			},
			[]string{"disposition"},
		),
		scanCycles: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "volscan_scan_cycles_total",
				Help: "Total number of completed scan cycles",
			},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "volscan_last_price",
				Help: "Last observed price for an alerted symbol",
			},
			[]string{"symbol"},
		),
		zscore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "volscan_zscore",
				Help: "Last computed z-score for an alerted symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "volscan_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordTicker records a ticker processing outcome.
func (r *Recorder) RecordTicker(outcome string) {
	r.tickersProcessed.WithLabelValues(outcome).Inc()
}

// RecordFetch records a market data fetch attempt outcome.
func (r *Recorder) RecordFetch(strategy, outcome string) {
	r.fetchesTotal.WithLabelValues(strategy, outcome).Inc()
}

// RecordCache records a result cache event.
func (r *Recorder) RecordCache(event string) {
	r.cacheEvents.WithLabelValues(event).Inc()
}

// RecordAlert records an alert disposition (sent, suppressed, failed).
func (r *Recorder) RecordAlert(disposition string) {
	r.alertsTotal.WithLabelValues(disposition).Inc()
}

// RecordCycle records a completed scan cycle.
func (r *Recorder) RecordCycle() {
	r.scanCycles.Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordZScore records the last z-score for a symbol.
func (r *Recorder) RecordZScore(symbol string, z float64) {
	r.zscore.WithLabelValues(symbol).Set(z)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
