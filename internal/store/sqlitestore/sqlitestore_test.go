package sqlitestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/logger"
	"github.com/mlaskowski7/AllegroLikeByt/internal/store"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir, logger.Nop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s, dir
}

func TestWriteReadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	in := [][]byte{
		[]byte(`{"id":"a"}`),
		[]byte(`{"id":"b"}`),
		[]byte(`{"id":"c"}`),
	}
	if err := s.WriteRecords(ctx, "products", in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := s.ReadRecords(ctx, "products")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d records, want 3", len(out))
	}
	for i := range in {
		if string(out[i]) != string(in[i]) {
			t.Fatalf("record %d = %s, want %s", i, out[i], in[i])
		}
	}
}

func TestEmptyExtentRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.WriteRecords(ctx, "products", nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := s.ReadRecords(ctx, "products")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d records, want 0", len(out))
	}
}

func TestReadMissingExtent(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.ReadRecords(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestWriteReplacesPrevious(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.WriteRecords(ctx, "products", [][]byte{[]byte(`1`), []byte(`2`)}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := s.WriteRecords(ctx, "products", [][]byte{[]byte(`3`)}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	out, err := s.ReadRecords(ctx, "products")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 || string(out[0]) != "3" {
		t.Fatalf("got %v, want single record 3", out)
	}
}

func TestExtentsAreIsolated(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	if err := s.WriteRecords(ctx, "products", [][]byte{[]byte(`1`)}); err != nil {
		t.Fatalf("write products: %v", err)
	}
	if err := s.WriteRecords(ctx, "orders", [][]byte{[]byte(`2`), []byte(`3`)}); err != nil {
		t.Fatalf("write orders: %v", err)
	}

	for _, name := range []string{"products", "orders"} {
		if _, err := os.Stat(filepath.Join(dir, name+".db")); err != nil {
			t.Fatalf("extent file %s: %v", name, err)
		}
	}

	out, err := s.ReadRecords(ctx, "products")
	if err != nil {
		t.Fatalf("read products: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("products has %d records, want 1", len(out))
	}
}

func TestReadPreservesWriteOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	in := make([][]byte, 0, 10)
	for i := 0; i < 10; i++ {
		in = append(in, []byte{byte('0' + i)})
	}
	if err := s.WriteRecords(ctx, "products", in); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := s.ReadRecords(ctx, "products")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for i := range in {
		if string(out[i]) != string(in[i]) {
			t.Fatalf("position %d = %s, want %s", i, out[i], in[i])
		}
	}
}
