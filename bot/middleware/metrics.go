package middleware

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"

	"github.com/safe-scan-ai/announcer/bot"
	"github.com/safe-scan-ai/announcer/competition"
)

var _ bot.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     bot.Service
}

func Metrics(counter metrics.Counter, latency metrics.Histogram, svc bot.Service) bot.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsMiddleware) RefreshRegistry(ctx context.Context) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "refresh-registry").Add(1)
		mm.latency.With("method", "refresh-registry").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.RefreshRegistry(ctx)
}

func (mm *metricsMiddleware) Sweep(ctx context.Context) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "sweep").Add(1)
		mm.latency.With("method", "sweep").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Sweep(ctx)
}

func (mm *metricsMiddleware) AnnounceCompetition(ctx context.Context, def competition.Definition) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "announce-competition").Add(1)
		mm.latency.With("method", "announce-competition").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.AnnounceCompetition(ctx, def)
}

func (mm *metricsMiddleware) ListCompetitions(ctx context.Context, offset, limit uint64) (competition.Page, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list-competitions").Add(1)
		mm.latency.With("method", "list-competitions").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.ListCompetitions(ctx, offset, limit)
}

func (mm *metricsMiddleware) GetCompetition(ctx context.Context, competitionID string) (competition.Definition, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "get-competition").Add(1)
		mm.latency.With("method", "get-competition").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.GetCompetition(ctx, competitionID)
}

func (mm *metricsMiddleware) LastAnnouncement(ctx context.Context, competitionID string) (bot.Announcement, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "last-announcement").Add(1)
		mm.latency.With("method", "last-announcement").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.LastAnnouncement(ctx, competitionID)
}

func (mm *metricsMiddleware) Shutdown(ctx context.Context) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "shutdown").Add(1)
		mm.latency.With("method", "shutdown").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.svc.Shutdown(ctx)
}
