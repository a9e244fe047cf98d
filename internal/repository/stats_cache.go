// Package repository holds the result cache, its snapshot stores and the
// CSV exporter.
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"VolScan/internal/domain/models"
	drepo "VolScan/internal/domain/repository"
	"VolScan/pkg/logger"
)

// StatsCache keeps analysis results in memory with TTL freshness. Stale
// entries are evicted lazily on read.
type StatsCache struct {
	mu      sync.RWMutex
	entries map[string]models.CacheEntry

	ttl     time.Duration
	store   drepo.SnapshotStore
	metrics drepo.Metrics
	l       *logger.Logger
}

// NewStatsCache creates a cache backed by the given snapshot store.
func NewStatsCache(ttl time.Duration, store drepo.SnapshotStore, m drepo.Metrics, l *logger.Logger) *StatsCache {
	return &StatsCache{
		entries: make(map[string]models.CacheEntry),
		ttl:     ttl,
		store:   store,
		metrics: m,
		l:       l.With("cache"),
	}
}

// Get returns the cached stats for ticker when still fresh.
func (c *StatsCache) Get(ticker string) (*models.TickerStats, bool) {
	c.mu.RLock()
	e, ok := c.entries[ticker]
	c.mu.RUnlock()
	if !ok {
		c.metrics.RecordCache("miss")
		return nil, false
	}
	if !e.Fresh(time.Now(), c.ttl) {
		c.mu.Lock()
		delete(c.entries, ticker)
		c.mu.Unlock()
		c.metrics.RecordCache("expired")
		return nil, false
	}
	c.metrics.RecordCache("hit")
	return e.Stats, true
}

// Put stores stats for ticker stamped with the current time.
func (c *StatsCache) Put(ticker string, stats *models.TickerStats) {
	c.mu.Lock()
	c.entries[ticker] = models.CacheEntry{Timestamp: time.Now(), Stats: stats}
	c.mu.Unlock()
}

// Len returns the number of entries, fresh or not.
func (c *StatsCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Tickers returns the cached ticker symbols, sorted.
func (c *StatsCache) Tickers() []string {
	c.mu.RLock()
	out := make([]string, 0, len(c.entries))
	for t := range c.entries {
		out = append(out, t)
	}
	c.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Snapshot copies the current contents.
func (c *StatsCache) Snapshot() map[string]models.CacheEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]models.CacheEntry, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// Load replaces the contents from the snapshot store. Failures degrade to
// an empty cache with a warning; a previous run's snapshot is never worth
// aborting a new run over.
func (c *StatsCache) Load(ctx context.Context) {
	entries, err := c.store.Load(ctx)
	if err != nil {
		c.l.Warn("snapshot load failed, starting cold", logger.Error(err))
		return
	}
	c.mu.Lock()
	c.entries = entries
	if c.entries == nil {
		c.entries = make(map[string]models.CacheEntry)
	}
	c.mu.Unlock()
	c.l.Info("cache loaded", logger.Int("entries", len(entries)))
}

// Flush persists the current contents to the snapshot store.
func (c *StatsCache) Flush(ctx context.Context) error {
	snap := c.Snapshot()
	if err := c.store.Save(ctx, snap); err != nil {
		return err
	}
	c.l.Debug("cache flushed", logger.Int("entries", len(snap)))
	return nil
}
