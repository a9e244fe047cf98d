package di

import (
	"context"
	"fmt"
	"time"

	drepo "VolScan/internal/domain/repository"
	"VolScan/internal/handler/api"
	irepo "VolScan/internal/repository"
	"VolScan/internal/service/notify"
	"VolScan/internal/service/ratelimit"
	"VolScan/internal/service/yahoo"
	"VolScan/internal/services/stats"
	"VolScan/internal/universe"
	"VolScan/internal/usecase"
	"VolScan/pkg/config"
	xhttp "VolScan/pkg/http"
	"VolScan/pkg/logger"
	"VolScan/pkg/metrics"
	"VolScan/pkg/server"
	"VolScan/pkg/util"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideLocation resolves the exchange timezone for trading-date bucketing.
func ProvideLocation(cfg *config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Analysis.Location)
	if err != nil {
		return nil, fmt.Errorf("exchange location: %w", err)
	}
	return loc, nil
}

// ProvideEngine creates the statistics engine.
func ProvideEngine(loc *time.Location, l *logger.Logger) *stats.Engine {
	return stats.NewEngine(loc, stats.WithEngineLogger(l))
}

// ProvideHTTPClient creates the shared outbound HTTP client.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.Fetcher.Timeout))
}

// ProvideLimiter creates the shared token-bucket limiter.
func ProvideLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideBarSource creates the Yahoo chart client.
func ProvideBarSource(cfg *config.Config, client *xhttp.Client, limiter *ratelimit.Limiter, m drepo.Metrics, l *logger.Logger) drepo.BarSource {
	return yahoo.New(yahoo.Params{
		BaseURL:          cfg.Fetcher.BaseURL,
		IntradayInterval: cfg.Fetcher.IntradayInterval,
		IntradayRangeCap: cfg.Fetcher.IntradayRangeCap,
		HistoryRange:     cfg.Fetcher.HistoryRange,
		RecentRange:      cfg.Fetcher.RecentRange,
		MaxRetries:       cfg.Fetcher.MaxRetries,
		RetryDelay:       cfg.Fetcher.RetryDelay,
		RatePerSec:       cfg.Fetcher.RateLimit,
	}, client, limiter, m, l)
}

// ProvideUniverseBuilder creates the ticker universe provider. The screener
// gets its own client because its payload is far larger than a chart fetch.
func ProvideUniverseBuilder(cfg *config.Config, l *logger.Logger) usecase.UniverseBuilder {
	opts := []universe.Option{universe.WithExtra(cfg.Universe.Extra)}
	if cfg.Universe.Screener.Enabled {
		opts = append(opts, universe.WithScreener(cfg.Universe.Screener.URL, cfg.Universe.Screener.Limit))
	}
	client := xhttp.NewClient(xhttp.WithTimeout(cfg.Universe.Screener.Timeout))
	return universe.NewProvider(client, l, opts...)
}

// ProvideSnapshotStore selects the snapshot backend: Redis when enabled,
// otherwise a local JSON file.
func ProvideSnapshotStore(cfg *config.Config, l *logger.Logger) drepo.SnapshotStore {
	if cfg.Cache.Redis.Enabled {
		return irepo.NewRedisStore(irepo.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Key:      cfg.Cache.Redis.Key,
		}, l)
	}
	return irepo.NewFileStore(cfg.Cache.Path, l)
}

// ProvideStatsCache creates the TTL result cache.
func ProvideStatsCache(cfg *config.Config, store drepo.SnapshotStore, m drepo.Metrics, l *logger.Logger) *irepo.StatsCache {
	return irepo.NewStatsCache(cfg.Cache.TTL, store, m, l)
}

// ProvideExporter creates the CSV ranking exporter.
func ProvideExporter(cfg *config.Config, l *logger.Logger) drepo.Exporter {
	return irepo.NewCSVExporter(cfg.Export.Dir, l)
}

// ProvideNotifier creates the alert channel: Telegram when configured,
// otherwise alerts land in the log.
func ProvideNotifier(cfg *config.Config, l *logger.Logger) drepo.Notifier {
	tg := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID,
		xhttp.NewClient(xhttp.WithTimeout(cfg.Telegram.Timeout)), l)
	if tg.Enabled() {
		return tg
	}
	return notify.NewLogNotifier(l)
}

// ProvideAnalyzer creates the batch analyzer use case.
func ProvideAnalyzer(
	cfg *config.Config,
	builder usecase.UniverseBuilder,
	source drepo.BarSource,
	engine *stats.Engine,
	cache *irepo.StatsCache,
	exporter drepo.Exporter,
	m drepo.Metrics,
	l *logger.Logger,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(usecase.AnalyzerParams{
		MinDays:    cfg.Analysis.MinDays,
		BatchSize:  cfg.Analysis.BatchSize,
		Workers:    cfg.Analysis.Workers,
		FlushEvery: cfg.Cache.FlushEvery,
	}, builder, source, engine, cache, exporter, m, l)
}

// ProvideScanner creates the live scanner use case. An explicit watchlist
// wins; otherwise the full curated universe is scanned.
func ProvideScanner(
	cfg *config.Config,
	source drepo.BarSource,
	notifier drepo.Notifier,
	m drepo.Metrics,
	l *logger.Logger,
) *usecase.Scanner {
	tickers := util.DedupSorted(cfg.Scanner.Tickers)
	if len(tickers) == 0 {
		tickers = universe.Static().All()
	}

	zp := stats.DefaultZScoreParams()
	zp.VolWindowDays = cfg.Scanner.VolWindowDays
	zp.MinBars = cfg.Scanner.MinBars

	return usecase.NewScanner(usecase.ScannerParams{
		Interval:    cfg.Scanner.Interval,
		BatchSize:   cfg.Scanner.BatchSize,
		BatchPause:  cfg.Scanner.BatchPause,
		ZThreshold:  cfg.Scanner.ZThreshold,
		ZScore:      zp,
		Cooldown:    cfg.Scanner.Cooldown,
		PruneBuffer: cfg.Scanner.PruneBuffer,
	}, tickers, source, notifier, m, l)
}

// ProvideAPIHandler creates the read API handler over a warmed cache.
func ProvideAPIHandler(cfg *config.Config, cache *irepo.StatsCache, limiter *ratelimit.Limiter, l *logger.Logger) xhttp.Handler {
	// Warm the snapshot so the API serves data from the first request
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cache.Load(ctx)

	rate := api.RateParams{
		Capacity:     cfg.Server.RateCapacity,
		RefillPerSec: cfg.Server.RateRefill,
	}
	return api.NewHandler(cfg.Export.Dir, cache, limiter, rate, l)
}

// ProvideAPIServer creates the read API HTTP server.
func ProvideAPIServer(cfg *config.Config, h xhttp.Handler, l *logger.Logger) *xhttp.Server {
	return xhttp.NewServer(h,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(l),
	)
}

// ProvideOpsServer creates the liveness+metrics server for the scanner.
func ProvideOpsServer(cfg *config.Config, l *logger.Logger) *xhttp.Server {
	return xhttp.NewServer(api.NewHealthHandler(),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(false),
		xhttp.WithLogger(l),
	)
}

// ProvideScannerApp assembles the scanner process.
func ProvideScannerApp(cfg *config.Config, l *logger.Logger, s *xhttp.Server, sc *usecase.Scanner) *server.App {
	return server.New(cfg, l, server.WithHTTPServer(s), server.WithRunner(sc))
}

// ProvideServerApp assembles the read API process.
func ProvideServerApp(cfg *config.Config, l *logger.Logger, s *xhttp.Server) *server.App {
	return server.New(cfg, l, server.WithHTTPServer(s))
}
