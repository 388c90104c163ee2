// Package store defines the persistence contract for entity extents.
// One backing location per extent name; backends must never touch another
// extent's location.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by ReadRecords when the extent was never persisted.
var ErrNotFound = errors.New("store: extent not found")

// ErrCorrupt is returned by ReadRecords when the backing bytes cannot be
// decoded as a record sequence.
var ErrCorrupt = errors.New("store: extent data corrupt")

// Store persists ordered record sequences under an extent name.
// WriteRecords replaces the full sequence; ReadRecords returns records in the
// order they were written.
type Store interface {
	WriteRecords(ctx context.Context, name string, records [][]byte) error
	ReadRecords(ctx context.Context, name string) ([][]byte, error)
}
