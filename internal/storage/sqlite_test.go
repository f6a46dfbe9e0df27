package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func run(preset string, score int) RunRecord {
	return RunRecord{
		Preset:   preset,
		Width:    20,
		Height:   16,
		Seed:     "1234:abcd",
		Score:    score,
		Reason:   "avoid walls",
		Ticks:    int64(score*10 + 3),
		Commands: "...U..L",
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 1, 7} {
		if _, err := store.SaveRun(run("classic", score)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(run("tiny", 2)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 7 || runs[1].Score != 3 || runs[2].Score != 1 {
		t.Errorf("Runs not sorted by score: %+v", runs)
	}

	top := runs[0]
	if top.Seed != "1234:abcd" || top.Commands != "...U..L" || top.Ticks != 73 {
		t.Errorf("Round-tripped run lost fields: %+v", top)
	}
	if top.Width != 20 || top.Height != 16 || top.Reason != "avoid walls" {
		t.Errorf("Round-tripped run lost fields: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	tiny, err := store.TopRuns("tiny", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(tiny) != 1 {
		t.Errorf("Expected 1 tiny run, got %d", len(tiny))
	}
}

func TestStoreTopRunsLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	var firstFive int64
	for i := 0; i < 5; i++ {
		id, _ := store.SaveRun(run("classic", 5))
		if i == 0 {
			firstFive = id
		}
	}
	store.SaveRun(run("classic", 9))

	runs, err := store.TopRuns("classic", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 9 {
		t.Errorf("Expected best score first, got %d", runs[0].Score)
	}
	if runs[1].ID != firstFive {
		t.Errorf("Ties should go to the earlier run: got id %d, want %d", runs[1].ID, firstFive)
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(run("narrow", 4))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.ID != id || got.Preset != "narrow" || got.Score != 4 {
		t.Errorf("RunByID() = %+v", got)
	}

	_, err = store.RunByID(id + 100)
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID(unknown) error = %v, want ErrRunNotFound", err)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("classic")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty preset, got %d", best)
	}

	store.SaveRun(run("classic", 4))
	store.SaveRun(run("classic", 11))
	store.SaveRun(run("classic", 6))

	best, err = store.BestScore("classic")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 11 {
		t.Errorf("Expected best score 11, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Best != 0 || empty.Preset != "classic" {
		t.Errorf("Stats() on empty preset = %+v", empty)
	}

	store.SaveRun(run("classic", 2))
	store.SaveRun(run("classic", 4))
	store.SaveRun(run("wide", 10))

	st, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.Best != 4 || st.AvgScore != 3 {
		t.Errorf("Stats() = %+v", st)
	}
	if st.TotalTicks != 23+43 {
		t.Errorf("TotalTicks = %d, want 66", st.TotalTicks)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all[0].Preset != "classic" || all[1].Preset != "wide" {
		t.Errorf("AllStats() = %+v", all)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run("classic", 1))
	store.SaveRun(run("classic", 2))
	store.SaveRun(run("tiny", 3))

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	classic, _ := store.TopRuns("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic runs after clear, got %d", len(classic))
	}

	tiny, _ := store.TopRuns("tiny", 10)
	if len(tiny) != 1 {
		t.Errorf("Tiny runs should not be affected by clearing classic")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
