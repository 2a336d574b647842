package store

import (
	"errors"
	"time"
)

var (
	// ErrRunNotFound is returned when no run matches the requested ID.
	ErrRunNotFound = errors.New("run not found")

	// ErrAmbiguousRun is returned when an ID prefix matches several runs.
	ErrAmbiguousRun = errors.New("run id prefix is ambiguous")
)

// Source values recorded on a run.
const (
	SourceLive     = "live"
	SourceSnapshot = "snapshot"
)

// Run is one persisted pipeline execution.
type Run struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"`
	DateCutoff     string    `json:"date_cutoff"`
	Family         string    `json:"family"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	RawCount       int       `json:"raw_count"`
	FlatCount      int       `json:"flat_count"`
	WindowCount    int       `json:"window_count"`
	EnrichedCount  int       `json:"enriched_count"`
	FamilyCount    int       `json:"family_count"`
	LookupFailures int       `json:"lookup_failures"`
}

// Duration reports how long the run took.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// ShortID returns the first eight characters of the run ID.
func (r Run) ShortID() string {
	if len(r.ID) <= 8 {
		return r.ID
	}
	return r.ID[:8]
}
