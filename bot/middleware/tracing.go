package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/safe-scan-ai/announcer/bot"
	"github.com/safe-scan-ai/announcer/competition"
)

var _ bot.Service = (*tracing)(nil)

type tracing struct {
	tracer trace.Tracer
	svc    bot.Service
}

func Tracing(tracer trace.Tracer, svc bot.Service) bot.Service {
	return &tracing{tracer, svc}
}

func (tm *tracing) RefreshRegistry(ctx context.Context) error {
	ctx, span := tm.tracer.Start(ctx, "refresh-registry")
	defer span.End()

	return tm.svc.RefreshRegistry(ctx)
}

func (tm *tracing) Sweep(ctx context.Context) error {
	ctx, span := tm.tracer.Start(ctx, "sweep")
	defer span.End()

	return tm.svc.Sweep(ctx)
}

func (tm *tracing) AnnounceCompetition(ctx context.Context, def competition.Definition) error {
	ctx, span := tm.tracer.Start(ctx, "announce-competition", trace.WithAttributes(
		attribute.String("competition_id", def.ID),
		attribute.String("category", def.Category),
	))
	defer span.End()

	return tm.svc.AnnounceCompetition(ctx, def)
}

func (tm *tracing) ListCompetitions(ctx context.Context, offset, limit uint64) (competition.Page, error) {
	ctx, span := tm.tracer.Start(ctx, "list-competitions", trace.WithAttributes(
		attribute.Int64("offset", int64(offset)),
		attribute.Int64("limit", int64(limit)),
	))
	defer span.End()

	return tm.svc.ListCompetitions(ctx, offset, limit)
}

func (tm *tracing) GetCompetition(ctx context.Context, competitionID string) (competition.Definition, error) {
	ctx, span := tm.tracer.Start(ctx, "get-competition", trace.WithAttributes(
		attribute.String("competition_id", competitionID),
	))
	defer span.End()

	return tm.svc.GetCompetition(ctx, competitionID)
}

func (tm *tracing) LastAnnouncement(ctx context.Context, competitionID string) (bot.Announcement, error) {
	ctx, span := tm.tracer.Start(ctx, "last-announcement", trace.WithAttributes(
		attribute.String("competition_id", competitionID),
	))
	defer span.End()

	return tm.svc.LastAnnouncement(ctx, competitionID)
}

func (tm *tracing) Shutdown(ctx context.Context) error {
	ctx, span := tm.tracer.Start(ctx, "shutdown")
	defer span.End()

	return tm.svc.Shutdown(ctx)
}
