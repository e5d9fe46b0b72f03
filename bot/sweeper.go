package bot

import (
	"context"
	"log/slog"
	"time"
)

const defSweepInterval = 10 * time.Minute

// Sweeper drives the periodic refresh-and-announce cycle.
type Sweeper interface {
	Start(ctx context.Context) error
	Stop()
}

type sweeper struct {
	svc      Service
	logger   *slog.Logger
	interval time.Duration
	stopChan chan struct{}
}

func NewSweeper(svc Service, logger *slog.Logger, interval time.Duration) Sweeper {
	if interval <= 0 {
		interval = defSweepInterval
	}

	return &sweeper{
		svc:      svc,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (s *sweeper) Start(ctx context.Context) error {
	// First cycle runs immediately so a restart does not wait a full
	// interval before announcing.
	if err := s.svc.Sweep(ctx); err != nil {
		s.logger.Error("announcement sweep failed", slog.Any("error", err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("announcement sweeper started", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("announcement sweeper stopping")

			return ctx.Err()
		case <-s.stopChan:
			s.logger.Info("announcement sweeper stopped")

			return nil
		case <-ticker.C:
			if err := s.svc.Sweep(ctx); err != nil {
				s.logger.Error("announcement sweep failed", slog.Any("error", err))
			}
		}
	}
}

func (s *sweeper) Stop() {
	close(s.stopChan)
}
