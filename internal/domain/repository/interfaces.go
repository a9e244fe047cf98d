package repository

import (
	"context"

	"VolScan/internal/domain/models"
)

// BarSource retrieves OHLCV bars. Implementations translate every failure
// mode (transport errors, empty payloads, unknown tickers) into a definitive
// (nil, false) so callers never branch on provider errors.
type BarSource interface {
	// History returns up to a year of bars for batch analysis, intraday
	// granularity when available with a daily fallback.
	History(ctx context.Context, ticker string) ([]models.Bar, bool)
	// Recent returns short-horizon intraday bars for live scanning.
	Recent(ctx context.Context, ticker string) ([]models.Bar, bool)
}

// SnapshotStore persists the result cache between runs. Best-effort: a load
// failure yields an empty cache, never a fatal error.
type SnapshotStore interface {
	Load(ctx context.Context) (map[string]models.CacheEntry, error)
	Save(ctx context.Context, entries map[string]models.CacheEntry) error
}

// Exporter writes one ranking table to a durable artifact and returns its path.
type Exporter interface {
	Export(table *models.RankingTable) (string, error)
}

// Notifier delivers move alerts to an external channel.
type Notifier interface {
	Notify(ctx context.Context, alert *models.MoveAlert) error
	// Enabled reports whether delivery is configured. A disabled notifier
	// accepts alerts as no-ops so scanning continues without credentials.
	Enabled() bool
}

type Metrics interface {
	RecordTicker(outcome string)
	RecordFetch(strategy, outcome string)
	RecordCache(event string)
	RecordAlert(disposition string)
	RecordCycle()
	RecordLastPrice(symbol string, price float64)
	RecordZScore(symbol string, z float64)
	RecordLatency(op string, seconds float64)
}
