package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"VolScan/internal/domain/models"
	drepo "VolScan/internal/domain/repository"
	"VolScan/pkg/logger"
)

// RedisStore persists cache snapshots as one hash, one field per ticker.
type RedisStore struct {
	cli *redis.Client
	key string
	l   *logger.Logger
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// NewRedisStore creates a Redis-backed snapshot store.
func NewRedisStore(cfg RedisConfig, l *logger.Logger) drepo.SnapshotStore {
	cli := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return &RedisStore{cli: cli, key: cfg.Key, l: l.With("redisstore")}
}

// Load reads all hash fields. Fields that fail to parse are skipped so one
// bad entry cannot poison the snapshot.
func (s *RedisStore) Load(ctx context.Context) (map[string]models.CacheEntry, error) {
	vals, err := s.cli.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", s.key, err)
	}

	entries := make(map[string]models.CacheEntry, len(vals))
	for ticker, raw := range vals {
		var e models.CacheEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			s.l.Debug("skipping corrupt snapshot field",
				logger.String("ticker", ticker), logger.Error(err))
			continue
		}
		entries[ticker] = e
	}
	return entries, nil
}

// Save replaces the hash with the given entries in one transaction.
func (s *RedisStore) Save(ctx context.Context, entries map[string]models.CacheEntry) error {
	fields := make(map[string]interface{}, len(entries))
	for ticker, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal entry %s: %w", ticker, err)
		}
		fields[ticker] = b
	}

	pipe := s.cli.TxPipeline()
	pipe.Del(ctx, s.key)
	if len(fields) > 0 {
		pipe.HSet(ctx, s.key, fields)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save snapshot %s: %w", s.key, err)
	}
	return nil
}
