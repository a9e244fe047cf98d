package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"VolScan/internal/domain/models"
	drepo "VolScan/internal/domain/repository"
	"VolScan/pkg/logger"
)

// FileStore persists cache snapshots as a single JSON file.
type FileStore struct {
	path string
	l    *logger.Logger
}

// NewFileStore creates a file-backed snapshot store.
func NewFileStore(path string, l *logger.Logger) drepo.SnapshotStore {
	return &FileStore{path: path, l: l.With("filestore")}
}

// Load reads the snapshot. A missing file is an empty snapshot, a corrupt
// one is an error the cache downgrades to a cold start.
func (s *FileStore) Load(_ context.Context) (map[string]models.CacheEntry, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.CacheEntry{}, nil
		}
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	var entries map[string]models.CacheEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", s.path, err)
	}
	if entries == nil {
		entries = map[string]models.CacheEntry{}
	}
	return entries, nil
}

// Save writes the snapshot, replacing any previous content.
func (s *FileStore) Save(_ context.Context, entries map[string]models.CacheEntry) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.path, err)
	}
	return nil
}
