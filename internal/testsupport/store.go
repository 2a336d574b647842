package testsupport

import (
	"context"
	"testing"
	"time"

	"launchset/internal/config"
	"launchset/internal/launch"
	"launchset/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SaveRun persists a run with the provided rows and returns it.
func SaveRun(t testing.TB, st *store.Store, run store.Run, rows []launch.EnrichedLaunch) *store.Run {
	t.Helper()

	if err := st.SaveRun(context.Background(), &run, rows); err != nil {
		t.Fatalf("store.SaveRun: %v", err)
	}
	return &run
}

// SampleRun returns run metadata matching SampleLaunches.
func SampleRun() store.Run {
	started := time.Date(2020, time.November, 14, 12, 0, 0, 0, time.UTC)
	return store.Run{
		Source:        store.SourceSnapshot,
		DateCutoff:    "2020-11-13",
		Family:        "Falcon 9",
		StartedAt:     started,
		FinishedAt:    started.Add(2 * time.Second),
		RawCount:      4,
		FlatCount:     3,
		WindowCount:   3,
		EnrichedCount: 3,
		FamilyCount:   2,
	}
}
