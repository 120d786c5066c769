// Package scheduler runs the periodic expiry scan as a delivery.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"capsule/config"
	"capsule/internal/delivery"
	"capsule/internal/usecase"
	"capsule/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the scan scheduler
type SchedulerParams struct {
	fx.In

	Cfg      *config.Config
	Logger   *slog.Logger
	ExpiryUC usecase.ExpiryUsecase
}

type scanScheduler struct {
	interval time.Duration
	logger   *slog.Logger
	expiryUC usecase.ExpiryUsecase
}

// New creates the periodic expiry scan scheduler
func New(params SchedulerParams) (delivery.Delivery, error) {
	return &scanScheduler{
		interval: params.Cfg.Scanner.Interval,
		logger:   params.Logger,
		expiryUC: params.ExpiryUC,
	}, nil
}

// Serve runs the scan loop until the context is canceled. An immediate scan
// runs on startup so a restart never extends the notification delay by a
// full interval.
func (s *scanScheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting expiry scan scheduler",
		slog.String("interval", util.FormatDuration(s.interval)),
	)

	s.scan(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping expiry scan scheduler")

			return nil
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

// scan runs one pass and logs the outcome. A tick that lands while the
// previous scan is still running is skipped, not queued.
func (s *scanScheduler) scan(ctx context.Context) {
	start := time.Now()

	result, err := s.expiryUC.RunOnce(ctx, start)
	if err != nil {
		if errors.Is(err, usecase.ErrScanInProgress) {
			s.logger.Warn("Skipping scan tick, previous scan still running")

			return
		}

		s.logger.Error("Expiry scan failed", slog.Any("error", err))

		return
	}

	if result.Examined > 0 {
		s.logger.Info("Scheduled expiry scan finished",
			slog.Int("examined", result.Examined),
			slog.Int("notified", result.Notified),
			slog.Int("failed", result.Failed),
			slog.String("elapsed", util.FormatDuration(time.Since(start))),
		)
	}
}
