package bot

import (
	"context"
	"time"

	"github.com/safe-scan-ai/announcer/competition"
)

// Announcement reports the last announced occurrence for a competition.
type Announcement struct {
	CompetitionID string    `json:"competition_id"`
	Occurrence    time.Time `json:"occurrence"`
}

type Service interface {
	// RefreshRegistry fetches the remote configuration and atomically
	// replaces the registry contents. On failure the previous contents are
	// retained.
	RefreshRegistry(ctx context.Context) error

	// Sweep runs one full refresh-and-announce cycle: registry refresh
	// followed by an announcement pass over every configured competition.
	// Failures are isolated per phase and per competition.
	Sweep(ctx context.Context) error

	// AnnounceCompetition resolves the current occurrence for one
	// competition and, if it was not announced yet, aggregates its results
	// and delivers the announcement. The ledger is updated only after
	// delivery succeeded.
	AnnounceCompetition(ctx context.Context, def competition.Definition) error

	ListCompetitions(ctx context.Context, offset, limit uint64) (competition.Page, error)
	GetCompetition(ctx context.Context, competitionID string) (competition.Definition, error)

	// LastAnnouncement returns the last announced occurrence for the
	// competition, or ErrNotFound if none was announced this process.
	LastAnnouncement(ctx context.Context, competitionID string) (Announcement, error)

	// Shutdown flushes pending announcements with one final sweep and
	// releases the external connections.
	Shutdown(ctx context.Context) error
}
