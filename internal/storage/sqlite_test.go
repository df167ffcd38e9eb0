package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Variant: "srs/bag", Seed: 1, Ticks: 3600, Lines: 40, Pieces: 100, Fours: 4},
		{Variant: "srs/bag", Seed: 2, Ticks: 1200, Lines: 10, Pieces: 30, Singles: 6, Doubles: 2},
		{Variant: "ars/tgm1", Seed: 3, Ticks: 6000, Lines: 70, Pieces: 180, Triples: 2},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	// Should be sorted by lines descending
	if top[0].Lines != 70 || top[1].Lines != 40 || top[2].Lines != 10 {
		t.Errorf("Results not ordered by lines: %d, %d, %d", top[0].Lines, top[1].Lines, top[2].Lines)
	}
	if top[0].Variant != "ars/tgm1" {
		t.Errorf("Expected best variant ars/tgm1, got %s", top[0].Variant)
	}
	if top[1].Fours != 4 {
		t.Errorf("Clear-size counters not preserved: %+v", top[1])
	}
}

func TestTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult(Result{Variant: "srs/bag", Lines: uint64(i)}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 results, got %d", len(top))
	}
}

func TestBestLines(t *testing.T) {
	store := openTestStore(t)

	// Empty store reports zero
	best, err := store.BestLines()
	if err != nil {
		t.Fatalf("BestLines() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}

	store.SaveResult(Result{Variant: "srs/bag", Lines: 12})
	store.SaveResult(Result{Variant: "srs/bag", Lines: 55})

	best, err = store.BestLines()
	if err != nil {
		t.Fatalf("BestLines() failed: %v", err)
	}
	if best != 55 {
		t.Errorf("Expected best 55, got %d", best)
	}
}

func TestTotals(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Variant: "srs/bag", Lines: 10, Pieces: 25})
	store.SaveResult(Result{Variant: "srs/bag", Lines: 20, Pieces: 50})

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Games != 2 || totals.Lines != 30 || totals.Pieces != 75 {
		t.Errorf("Totals() = %+v, want 2 games, 30 lines, 75 pieces", totals)
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Variant: "srs/bag", Lines: 5})
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected empty store after clear, got %d results", len(top))
	}
}
