package usecase

import (
	"context"
	"sync"
	"time"

	"VolScan/internal/domain/models"
	drepo "VolScan/internal/domain/repository"
	"VolScan/internal/repository"
	"VolScan/internal/services/stats"
	"VolScan/internal/universe"
	"VolScan/pkg/logger"
)

// AnalyzerParams bounds the batch run.
type AnalyzerParams struct {
	MinDays    int // pipeline gate: fewer valid trading days means the ticker is skipped
	BatchSize  int
	Workers    int
	FlushEvery int // cache flush cadence, in batches
}

// UniverseBuilder yields the ticker set a run walks.
type UniverseBuilder interface {
	Build(ctx context.Context) *universe.Universe
}

// Analyzer drives one full batch pass: universe, fetch, analyze, cache,
// aggregate, rank, export.
type Analyzer struct {
	p        AnalyzerParams
	provider UniverseBuilder
	source   drepo.BarSource
	engine   *stats.Engine
	cache    *repository.StatsCache
	exporter drepo.Exporter
	metrics  drepo.Metrics
	l        *logger.Logger
}

// NewAnalyzer creates the batch analyzer.
func NewAnalyzer(
	p AnalyzerParams,
	provider UniverseBuilder,
	source drepo.BarSource,
	engine *stats.Engine,
	cache *repository.StatsCache,
	exporter drepo.Exporter,
	metrics drepo.Metrics,
	l *logger.Logger,
) *Analyzer {
	return &Analyzer{
		p:        p,
		provider: provider,
		source:   source,
		engine:   engine,
		cache:    cache,
		exporter: exporter,
		metrics:  metrics,
		l:        l.With("analyzer"),
	}
}

// Run executes one batch pass. Individual ticker failures are absorbed;
// only cancellation aborts the run.
func (a *Analyzer) Run(ctx context.Context) error {
	start := time.Now()

	u := a.provider.Build(ctx)
	tickers := u.All()
	a.cache.Load(ctx)

	var results []*models.TickerStats
	batches := (len(tickers) + a.p.BatchSize - 1) / a.p.BatchSize

	for i, b := 0, 0; i < len(tickers); i, b = i+a.p.BatchSize, b+1 {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := i + a.p.BatchSize
		if end > len(tickers) {
			end = len(tickers)
		}
		batch := tickers[i:end]
		a.l.Info("processing batch",
			logger.Int("batch", b+1),
			logger.Int("batches", batches),
			logger.Int("size", len(batch)))

		results = append(results, a.processBatch(ctx, batch)...)
		a.l.Info("progress",
			logger.Int("processed", end),
			logger.Int("total", len(tickers)),
			logger.Int("with_stats", len(results)))

		if (b+1)%a.p.FlushEvery == 0 {
			if err := a.cache.Flush(ctx); err != nil {
				a.l.Warn("periodic cache flush failed", logger.Error(err))
			}
		}
	}

	if err := a.cache.Flush(ctx); err != nil {
		a.l.Warn("final cache flush failed", logger.Error(err))
	}

	aggregated := Aggregate(results, u.IsETF)
	exported := 0
	for _, window := range models.Windows() {
		for _, table := range RankAll(aggregated, window) {
			path, err := a.exporter.Export(table)
			if err != nil {
				a.l.Error("export failed",
					logger.String("category", string(table.Category)),
					logger.String("type", string(table.Type)),
					logger.String("window", string(table.Window)),
					logger.Error(err))
				continue
			}
			exported++
			a.l.Debug("exported", logger.String("path", path))
		}
	}

	elapsed := time.Since(start)
	a.metrics.RecordLatency("analyzer_run", elapsed.Seconds())
	a.l.Info("analysis complete",
		logger.Int("tickers", len(tickers)),
		logger.Int("analyzed", len(results)),
		logger.Int("tables", exported),
		logger.Duration("elapsed", elapsed))
	return nil
}

// processBatch fans the batch out over a bounded worker set and collects
// the successful results.
func (a *Analyzer) processBatch(ctx context.Context, batch []string) []*models.TickerStats {
	jobs := make(chan string)
	out := make(chan *models.TickerStats, len(batch))
	var wg sync.WaitGroup

	workers := a.p.Workers
	if workers > len(batch) {
		workers = len(batch)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ticker := range jobs {
				if st := a.processTicker(ctx, ticker); st != nil {
					out <- st
				}
			}
		}()
	}

feed:
	for _, t := range batch {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- t:
		}
	}
	close(jobs)

	go func() { wg.Wait(); close(out) }()

	var results []*models.TickerStats
	for st := range out {
		results = append(results, st)
	}
	return results
}

// processTicker resolves one ticker through cache, fetch and analysis.
// Returns nil when the ticker yields nothing usable.
func (a *Analyzer) processTicker(ctx context.Context, ticker string) *models.TickerStats {
	if st, ok := a.cache.Get(ticker); ok {
		a.metrics.RecordTicker("cached")
		return st
	}

	bars, ok := a.source.History(ctx, ticker)
	if !ok {
		a.metrics.RecordTicker("fetch_failed")
		return nil
	}

	st, ok := a.engine.Analyze(ticker, bars)
	if !ok {
		a.metrics.RecordTicker("no_data")
		return nil
	}
	if st.TotalDays < a.p.MinDays {
		a.metrics.RecordTicker("insufficient")
		a.l.Debug("insufficient history",
			logger.String("ticker", ticker),
			logger.Int("days", st.TotalDays),
			logger.Int("min_days", a.p.MinDays))
		return nil
	}

	a.cache.Put(ticker, st)
	a.metrics.RecordTicker("analyzed")
	return st
}
