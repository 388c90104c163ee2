// Package filestore persists extents as one JSON file per extent name.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/logger"
	"github.com/mlaskowski7/AllegroLikeByt/internal/store"
)

type Store struct {
	dir string
	log *logger.Logger
}

func New(dir string, baseLog *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create dir: %w", err)
	}
	return &Store{dir: dir, log: baseLog.With("store", "filestore")}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) WriteRecords(ctx context.Context, name string, records [][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw := make([]json.RawMessage, len(records))
	for i, rec := range records {
		raw[i] = json.RawMessage(rec)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("filestore: encode %s: %w", name, err)
	}

	// Write-then-rename so a crash mid-write never leaves a half file behind.
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("filestore: replace %s: %w", name, err)
	}
	s.log.Debug("extent written", "name", name, "records", len(records))
	return nil
}

func (s *Store) ReadRecords(ctx context.Context, name string) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("filestore: %s: %w", name, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read %s: %w", name, err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("filestore: decode %s: %w", name, store.ErrCorrupt)
	}
	records := make([][]byte, len(raw))
	for i, r := range raw {
		records[i] = []byte(r)
	}
	s.log.Debug("extent read", "name", name, "records", len(records))
	return records, nil
}
