// Package yahoo implements a BarSource backed by the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"VolScan/internal/domain/models"
	drepo "VolScan/internal/domain/repository"
	"VolScan/internal/service/ratelimit"
	apphttp "VolScan/pkg/http"
	"VolScan/pkg/logger"
)

const limiterKey = "yahoo"

// Fetch strategy labels for metrics.
const (
	strategyIntraday = "intraday"
	strategyDaily    = "daily"
	strategyRecent   = "recent"
)

// Params holds the fetch configuration.
type Params struct {
	BaseURL          string
	IntradayInterval string // e.g. 5m
	IntradayRangeCap string // chart API rejects intraday ranges beyond 60d
	HistoryRange     string // daily fallback range
	RecentRange      string // live scanning range
	MaxRetries       int
	RetryDelay       time.Duration
	RatePerSec       float64
}

// Client fetches OHLCV bars from the chart endpoint.
type Client struct {
	p       Params
	http    *apphttp.Client
	limiter *ratelimit.Limiter
	metrics drepo.Metrics
	l       *logger.Logger
}

// New creates a Yahoo-backed BarSource.
func New(p Params, httpClient *apphttp.Client, limiter *ratelimit.Limiter, m drepo.Metrics, l *logger.Logger) drepo.BarSource {
	return &Client{
		p:       p,
		http:    httpClient,
		limiter: limiter,
		metrics: m,
		l:       l.With("yahoo"),
	}
}

// History fetches bars for batch analysis. Intraday granularity is tried
// first so ranges resample into true session rows; daily bars are the
// fallback when the intraday window comes back empty.
func (c *Client) History(ctx context.Context, ticker string) ([]models.Bar, bool) {
	strategies := []struct {
		name     string
		interval string
		rng      string
	}{
		{strategyIntraday, c.p.IntradayInterval, c.p.IntradayRangeCap},
		{strategyDaily, "1d", c.p.HistoryRange},
	}

	for _, s := range strategies {
		bars, err := c.fetch(ctx, ticker, s.interval, s.rng)
		if err != nil {
			c.metrics.RecordFetch(s.name, "error")
			c.l.Debug("fetch failed",
				logger.String("ticker", ticker),
				logger.String("strategy", s.name),
				logger.Error(err))
			continue
		}
		if len(bars) == 0 {
			c.metrics.RecordFetch(s.name, "empty")
			continue
		}
		c.metrics.RecordFetch(s.name, "ok")
		return bars, true
	}
	return nil, false
}

// Recent fetches short-horizon intraday bars for the live scanner.
func (c *Client) Recent(ctx context.Context, ticker string) ([]models.Bar, bool) {
	bars, err := c.fetch(ctx, ticker, c.p.IntradayInterval, c.p.RecentRange)
	if err != nil {
		c.metrics.RecordFetch(strategyRecent, "error")
		c.l.Debug("recent fetch failed", logger.String("ticker", ticker), logger.Error(err))
		return nil, false
	}
	if len(bars) == 0 {
		c.metrics.RecordFetch(strategyRecent, "empty")
		return nil, false
	}
	c.metrics.RecordFetch(strategyRecent, "ok")
	return bars, true
}

// chart API response shape
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []float64 `json:"open"`
			High   []float64 `json:"high"`
			Low    []float64 `json:"low"`
			Close  []float64 `json:"close"`
			Volume []int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

func (c *Client) fetch(ctx context.Context, ticker, interval, rng string) ([]models.Bar, error) {
	var lastErr error
	for attempt := 0; attempt < c.p.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.p.RetryDelay * time.Duration(attempt)):
			}
		}
		if err := c.limiter.Wait(ctx, limiterKey, c.p.RatePerSec, c.p.RatePerSec); err != nil {
			return nil, err
		}

		bars, err := c.request(ctx, ticker, interval, rng)
		if err != nil {
			lastErr = err
			continue
		}
		return bars, nil
	}
	return nil, lastErr
}

func (c *Client) request(ctx context.Context, ticker, interval, rng string) ([]models.Bar, error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordLatency("yahoo_fetch", time.Since(start).Seconds())
	}()

	var resp chartResponse
	err := c.http.SendAndParse(ctx, &apphttp.RequestOptions{
		Method: apphttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.p.BaseURL, url.PathEscape(ticker)),
		// the chart endpoint rejects the default Go user agent
		Headers: map[string]string{"User-Agent": "Mozilla/5.0"},
		QueryParams: map[string][]string{
			"interval":       {interval},
			"range":          {rng},
			"includePrePost": {"false"},
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart error %s: %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}
	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]

	bars := make([]models.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		// null quote entries decode as zeros; a US listing never trades at 0
		if quote.Open[i] <= 0 || quote.Close[i] <= 0 {
			continue
		}
		var volume int64
		if i < len(quote.Volume) {
			volume = quote.Volume[i]
		}
		bars = append(bars, models.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   quote.Open[i],
			High:   quote.High[i],
			Low:    quote.Low[i],
			Close:  quote.Close[i],
			Volume: volume,
		})
	}
	return bars, nil
}
