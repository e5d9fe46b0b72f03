package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/safe-scan-ai/announcer/bot"
	"github.com/safe-scan-ai/announcer/competition"
)

var _ bot.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    bot.Service
}

func Logging(logger *slog.Logger, svc bot.Service) bot.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm *loggingMiddleware) RefreshRegistry(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Refresh registry failed", args...)

			return
		}
		lm.logger.Info("Refresh registry completed successfully", args...)
	}(time.Now())

	return lm.svc.RefreshRegistry(ctx)
}

func (lm *loggingMiddleware) Sweep(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Sweep failed", args...)

			return
		}
		lm.logger.Info("Sweep completed successfully", args...)
	}(time.Now())

	return lm.svc.Sweep(ctx)
}

func (lm *loggingMiddleware) AnnounceCompetition(ctx context.Context, def competition.Definition) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("competition",
				slog.String("id", def.ID),
				slog.String("category", def.Category),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Announce competition failed", args...)

			return
		}
		lm.logger.Info("Announce competition completed successfully", args...)
	}(time.Now())

	return lm.svc.AnnounceCompetition(ctx, def)
}

func (lm *loggingMiddleware) ListCompetitions(ctx context.Context, offset, limit uint64) (resp competition.Page, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Uint64("offset", offset),
			slog.Uint64("limit", limit),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List competitions failed", args...)

			return
		}
		lm.logger.Info("List competitions completed successfully", args...)
	}(time.Now())

	return lm.svc.ListCompetitions(ctx, offset, limit)
}

func (lm *loggingMiddleware) GetCompetition(ctx context.Context, competitionID string) (resp competition.Definition, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("competition",
				slog.String("id", competitionID),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Get competition failed", args...)

			return
		}
		lm.logger.Info("Get competition completed successfully", args...)
	}(time.Now())

	return lm.svc.GetCompetition(ctx, competitionID)
}

func (lm *loggingMiddleware) LastAnnouncement(ctx context.Context, competitionID string) (resp bot.Announcement, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("competition",
				slog.String("id", competitionID),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Get last announcement failed", args...)

			return
		}
		lm.logger.Info("Get last announcement completed successfully", args...)
	}(time.Now())

	return lm.svc.LastAnnouncement(ctx, competitionID)
}

func (lm *loggingMiddleware) Shutdown(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Shutdown failed", args...)

			return
		}
		lm.logger.Info("Shutdown completed successfully", args...)
	}(time.Now())

	return lm.svc.Shutdown(ctx)
}
