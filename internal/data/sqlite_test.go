package data

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := store.Put(ctx, "cphi", sampleRows()); err != nil {
		t.Fatalf("put: %v", err)
	}

	loaded, err := store.Dataset(ctx, "cphi")
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	if got := len(loaded.All()); got != 3 {
		t.Fatalf("expected 3 rows, got %d", got)
	}

	first := loaded.All()[0]
	if first.Location != "FI" || first.Values["cphi:hicp2015"] != 102.3 {
		t.Errorf("first row mismatch: %+v", first)
	}

	datasets, err := store.Datasets(ctx)
	if err != nil {
		t.Fatalf("datasets: %v", err)
	}
	if len(datasets) != 1 || datasets[0] != "cphi" {
		t.Errorf("datasets = %v, want [cphi]", datasets)
	}
}

func TestSQLiteStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := store.Put(ctx, "cphi", sampleRows()); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := store.Put(ctx, "cphi", sampleRows()[:1]); err != nil {
		t.Fatalf("second put: %v", err)
	}

	loaded, err := store.Dataset(ctx, "cphi")
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	if got := len(loaded.All()); got != 1 {
		t.Errorf("expected replacement to leave 1 row, got %d", got)
	}
}
