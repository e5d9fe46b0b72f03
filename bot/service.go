package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/safe-scan-ai/announcer/competition"
	"github.com/safe-scan-ai/announcer/pkg/chat"
	"github.com/safe-scan-ai/announcer/pkg/configsource"
	pkgerrors "github.com/safe-scan-ai/announcer/pkg/errors"
	"github.com/safe-scan-ai/announcer/pkg/ledger"
	"github.com/safe-scan-ai/announcer/pkg/mqtt"
	"github.com/safe-scan-ai/announcer/pkg/registry"
	"github.com/safe-scan-ai/announcer/pkg/results"
	"github.com/safe-scan-ai/announcer/pkg/runs"
	"github.com/safe-scan-ai/announcer/pkg/schedule"
)

const (
	// Records younger than this are deliberately excluded from aggregation:
	// validators may still be reporting and announcing on a partial data
	// set would elect a premature winner.
	defAnnouncementDelay = 15 * time.Minute

	eventTopicPrefix = "announcements/"
)

type ServiceConfig struct {
	GuildID           string
	ChannelName       string
	AnnouncementDelay time.Duration
}

type service struct {
	registry *registry.Registry
	ledger   ledger.Ledger
	source   configsource.Fetcher
	runs     runs.Service
	chat     chat.Client
	events   mqtt.Publisher
	cfg      ServiceConfig
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*service)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(svc *service) {
		svc.now = now
	}
}

// NewService wires the announcement pipeline. The events publisher is
// optional; pass nil to disable the MQTT feed.
func NewService(reg *registry.Registry, led ledger.Ledger, source configsource.Fetcher, runsSvc runs.Service, chatClient chat.Client, events mqtt.Publisher, cfg ServiceConfig, logger *slog.Logger, opts ...Option) Service {
	if cfg.AnnouncementDelay <= 0 {
		cfg.AnnouncementDelay = defAnnouncementDelay
	}

	svc := &service{
		registry: reg,
		ledger:   led,
		source:   source,
		runs:     runsSvc,
		chat:     chatClient,
		events:   events,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

func (svc *service) RefreshRegistry(ctx context.Context) error {
	defs, err := svc.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh competition registry: %w", err)
	}

	svc.registry.Replace(defs)

	return nil
}

func (svc *service) Sweep(ctx context.Context) error {
	if err := svc.RefreshRegistry(ctx); err != nil {
		// Stale-but-available: keep announcing with the previous snapshot.
		svc.logger.Warn("registry refresh failed, using previous contents", slog.Any("error", err))
	}

	for _, def := range svc.registry.List() {
		if err := svc.AnnounceCompetition(ctx, def); err != nil {
			svc.logger.Error("failed to announce competition results",
				slog.String("competition_id", def.ID),
				slog.Any("error", err))
		}
	}

	return nil
}

func (svc *service) AnnounceCompetition(ctx context.Context, def competition.Definition) error {
	occurrence, err := schedule.Resolve(def.EvaluationTimes, svc.now())
	if err != nil {
		return fmt.Errorf("failed to resolve occurrence for competition %s: %w", def.ID, err)
	}

	if !svc.ledger.IsNew(ctx, def.ID, occurrence) {
		svc.logger.Info("competition already announced",
			slog.String("competition_id", def.ID),
			slog.Time("occurrence", occurrence))

		return nil
	}

	window := runs.Window{
		CreatedAfter:  occurrence,
		CreatedBefore: svc.now().Add(-svc.cfg.AnnouncementDelay),
	}
	records, err := svc.runs.QueryRuns(ctx, def.ID, window)
	if err != nil {
		return fmt.Errorf("failed to query runs for competition %s: %w", def.ID, err)
	}

	outcome, err := results.Aggregate(def.ID, occurrence, records)
	switch {
	case errors.Is(err, results.ErrNoRecords):
		svc.logger.Info("no runs found for competition",
			slog.String("competition_id", def.ID),
			slog.Time("occurrence", occurrence))

		return nil
	case err != nil:
		return err
	}

	message := results.Compose(outcome)
	if err := svc.chat.SendMessage(ctx, svc.cfg.GuildID, svc.cfg.ChannelName, message); err != nil {
		// Ledger untouched: the occurrence stays new and delivery is
		// retried on the next sweep.
		return fmt.Errorf("failed to deliver announcement for competition %s: %w", def.ID, err)
	}

	if svc.events != nil {
		if err := svc.events.Publish(ctx, eventTopicPrefix+def.ID, outcome); err != nil {
			svc.logger.Warn("failed to publish announcement event",
				slog.String("competition_id", def.ID),
				slog.Any("error", err))
		}
	}

	svc.ledger.Record(ctx, def.ID, occurrence)

	svc.logger.Info("competition results announced",
		slog.String("competition_id", def.ID),
		slog.Time("occurrence", occurrence),
		slog.String("winning_hotkey", outcome.WinningHotkey))

	return nil
}

func (svc *service) ListCompetitions(_ context.Context, offset, limit uint64) (competition.Page, error) {
	defs := svc.registry.List()

	total := uint64(len(defs))
	if offset >= total {
		return competition.Page{Offset: offset, Limit: limit, Total: total}, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return competition.Page{
		Offset:       offset,
		Limit:        limit,
		Total:        total,
		Competitions: defs[offset:end],
	}, nil
}

func (svc *service) GetCompetition(_ context.Context, competitionID string) (competition.Definition, error) {
	return svc.registry.Get(competitionID)
}

func (svc *service) LastAnnouncement(ctx context.Context, competitionID string) (Announcement, error) {
	if competitionID == "" {
		return Announcement{}, pkgerrors.ErrEmptyID
	}

	occurrence, ok := svc.ledger.Last(ctx, competitionID)
	if !ok {
		return Announcement{}, pkgerrors.ErrNotFound
	}

	return Announcement{
		CompetitionID: competitionID,
		Occurrence:    occurrence,
	}, nil
}

func (svc *service) Shutdown(ctx context.Context) error {
	// Flush any pending announcement before releasing the connection.
	if err := svc.Sweep(ctx); err != nil {
		svc.logger.Error("final announcement sweep failed", slog.Any("error", err))
	}

	if svc.events != nil {
		if err := svc.events.Disconnect(ctx); err != nil {
			svc.logger.Warn("failed to disconnect event publisher", slog.Any("error", err))
		}
	}

	return svc.chat.Close(ctx)
}
