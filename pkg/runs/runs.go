// Package runs queries the experiment tracking backend for validator run
// records reported during a competition window.
package runs

import (
	"context"
	"time"
)

// Record is one reported outcome for one competition window. The summary is
// an opaque field set owned by the backend; this system reads it and never
// writes it back.
type Record struct {
	ID        string         `json:"id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Summary   map[string]any `json:"summary"`
}

// Window bounds a query to records created in [CreatedAfter, CreatedBefore).
type Window struct {
	CreatedAfter  time.Time
	CreatedBefore time.Time
}

// Empty reports whether the window covers no time at all, which happens
// shortly after a slot fires while the announcement delay still overlaps it.
func (w Window) Empty() bool {
	return !w.CreatedAfter.Before(w.CreatedBefore)
}

type Service interface {
	// QueryRuns returns the run records reported for the project within the
	// window. A query matching nothing returns an empty slice, not an error.
	QueryRuns(ctx context.Context, project string, window Window) ([]Record, error)
}
