package usecase

import (
	"context"
	"math"
	"sync"
	"time"

	"VolScan/internal/domain/models"
	drepo "VolScan/internal/domain/repository"
	"VolScan/internal/services/stats"
	"VolScan/pkg/logger"
)

// ScannerParams bounds the live scan loop.
type ScannerParams struct {
	Interval    time.Duration
	BatchSize   int
	BatchPause  time.Duration
	ZThreshold  float64
	ZScore      stats.ZScoreParams
	Cooldown    time.Duration
	PruneBuffer time.Duration
}

// Scanner runs repeated scan cycles over a watchlist and raises alerts on
// unusual moves.
type Scanner struct {
	p        ScannerParams
	tickers  []string
	source   drepo.BarSource
	notifier drepo.Notifier
	metrics  drepo.Metrics
	l        *logger.Logger

	mu        sync.Mutex
	lastAlert map[string]time.Time

	cycles int
	sent   int
}

// NewScanner creates the live scanner.
func NewScanner(
	p ScannerParams,
	tickers []string,
	source drepo.BarSource,
	notifier drepo.Notifier,
	metrics drepo.Metrics,
	l *logger.Logger,
) *Scanner {
	return &Scanner{
		p:         p,
		tickers:   tickers,
		source:    source,
		notifier:  notifier,
		metrics:   metrics,
		l:         l.With("scanner"),
		lastAlert: make(map[string]time.Time),
	}
}

// Breaches reports whether z exceeds the threshold strictly, in either
// direction. A score exactly at the threshold does not alert.
func Breaches(z, threshold float64) bool {
	return math.Abs(z) > threshold
}

// Run loops scan cycles until the context ends. Cancellation is observed
// at the inter-cycle wait, so an in-flight cycle finishes first.
func (s *Scanner) Run(ctx context.Context) error {
	s.l.Info("scanner started",
		logger.Int("tickers", len(s.tickers)),
		logger.Duration("interval", s.p.Interval),
		logger.Float64("z_threshold", s.p.ZThreshold))

	for {
		s.runCycle(ctx)

		select {
		case <-ctx.Done():
			s.l.Info("scanner stopped",
				logger.Int("cycles", s.cycles),
				logger.Int("alerts_sent", s.sent))
			return nil
		case <-time.After(s.p.Interval):
		}
	}
}

// runCycle scans the whole watchlist once. Every failure inside the cycle
// is absorbed so the loop never dies.
func (s *Scanner) runCycle(ctx context.Context) {
	start := time.Now()
	s.cycles++
	s.l.Info("scan cycle",
		logger.Int("cycle", s.cycles),
		logger.Int("tickers", len(s.tickers)))

	var alerts []*models.MoveAlert
	for i := 0; i < len(s.tickers); i += s.p.BatchSize {
		if ctx.Err() != nil {
			return
		}
		end := i + s.p.BatchSize
		if end > len(s.tickers) {
			end = len(s.tickers)
		}
		alerts = append(alerts, s.scanBatch(ctx, s.tickers[i:end])...)

		if end < len(s.tickers) {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.p.BatchPause):
			}
		}
	}

	for _, alert := range alerts {
		if err := s.notifier.Notify(ctx, alert); err != nil {
			s.metrics.RecordAlert("failed")
			s.l.Error("alert delivery failed",
				logger.String("ticker", alert.Ticker), logger.Error(err))
			continue
		}
		s.metrics.RecordAlert("sent")
		s.sent++
		s.l.Info("alert sent",
			logger.String("ticker", alert.Ticker),
			logger.Float64("zscore", alert.ZScore),
			logger.Float64("pct_move", alert.PctMove))
	}

	s.prune(time.Now())
	s.metrics.RecordCycle()
	s.l.Info("cycle complete",
		logger.Int("alerts", len(alerts)),
		logger.Int("total_sent", s.sent),
		logger.Duration("elapsed", time.Since(start)))
}

// scanBatch fans one batch out, one goroutine per ticker, and gathers the
// raised alerts.
func (s *Scanner) scanBatch(ctx context.Context, batch []string) []*models.MoveAlert {
	ch := make(chan *models.MoveAlert, len(batch))
	var wg sync.WaitGroup

	for _, ticker := range batch {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			if alert := s.scanTicker(ctx, ticker); alert != nil {
				ch <- alert
			}
		}(ticker)
	}
	go func() { wg.Wait(); close(ch) }()

	var alerts []*models.MoveAlert
	for a := range ch {
		alerts = append(alerts, a)
	}
	return alerts
}

// scanTicker scores one ticker and applies the threshold and cooldown. A
// suppressed alert leaves the ledger untouched, so the cooldown window is
// anchored at the last delivered detection.
func (s *Scanner) scanTicker(ctx context.Context, ticker string) *models.MoveAlert {
	bars, ok := s.source.Recent(ctx, ticker)
	if !ok {
		return nil
	}
	closes := make([]float64, 0, len(bars))
	for _, b := range bars {
		closes = append(closes, b.Close)
	}

	zs, ok := stats.ComputeZScore(closes, s.p.ZScore)
	if !ok {
		return nil
	}
	s.metrics.RecordLastPrice(ticker, zs.Price)
	s.metrics.RecordZScore(ticker, zs.ZScore)

	if !Breaches(zs.ZScore, s.p.ZThreshold) {
		return nil
	}

	now := time.Now()
	s.mu.Lock()
	if last, seen := s.lastAlert[ticker]; seen && now.Sub(last) < s.p.Cooldown {
		s.mu.Unlock()
		s.metrics.RecordAlert("suppressed")
		s.l.Debug("alert suppressed by cooldown", logger.String("ticker", ticker))
		return nil
	}
	s.lastAlert[ticker] = now
	s.mu.Unlock()

	direction := models.DirectionDown
	if zs.PctMove > 0 {
		direction = models.DirectionUp
	}
	return &models.MoveAlert{
		Ticker:    ticker,
		ZScore:    zs.ZScore,
		PctMove:   zs.PctMove,
		Direction: direction,
		Price:     zs.Price,
		Bars:      zs.Bars,
		Time:      now,
	}
}

// prune drops ledger entries old enough to be irrelevant to any future
// cooldown decision.
func (s *Scanner) prune(now time.Time) {
	cutoff := now.Add(-(s.p.Cooldown + s.p.PruneBuffer))
	s.mu.Lock()
	for ticker, at := range s.lastAlert {
		if at.Before(cutoff) {
			delete(s.lastAlert, ticker)
		}
	}
	s.mu.Unlock()
}
