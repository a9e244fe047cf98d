package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"VolScan/internal/domain/models"
	"VolScan/pkg/logger"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"), logger.Nop())
	entries, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("missing file should load empty, got %d", len(entries))
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	store := NewFileStore(path, logger.Nop())
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("corrupt file should surface an error for the cache to downgrade")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	store := NewFileStore(path, logger.Nop())

	in := map[string]models.CacheEntry{
		"TSLA": {
			Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			Stats:     sampleStats("TSLA"),
		},
	}
	if err := store.Save(context.Background(), in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	e, ok := out["TSLA"]
	if !ok {
		t.Fatalf("entry missing after round trip")
	}
	if !e.Timestamp.Equal(in["TSLA"].Timestamp) {
		t.Errorf("timestamp drifted: %v", e.Timestamp)
	}
	if e.Stats.TotalDays != 30 {
		t.Errorf("stats drifted: %+v", e.Stats)
	}
}
