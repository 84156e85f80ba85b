package usecase

import (
	"context"
	"time"

	"github.com/surfsup-app/surfsup/internal/pkg/logger"
)

// StartSweeper runs the expiration sweep on an interval until the context
// is cancelled. Check-ins past their expiry window are treated as checked
// out even though the user never did so explicitly.
func (uc *CheckInUC) StartSweeper(ctx context.Context) {
	interval := time.Duration(uc.cfg.CheckIn.SweepIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Check-in expiration sweeper started",
		logger.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Check-in expiration sweeper stopped")
			return
		case <-ticker.C:
			if err := uc.Sweep(ctx); err != nil {
				logger.Error("Expiration sweep failed", logger.Err(err))
			}
		}
	}
}

// Sweep expires stale check-ins once. The registry only hands out each
// expired record a single time, so running the sweep twice cannot
// double-decrement a spot's count.
func (uc *CheckInUC) Sweep(ctx context.Context) error {
	now := uc.now()
	swept := uc.registry.SweepExpired(ctx, now)
	if len(swept) == 0 {
		return nil
	}

	logger.Info("Swept expired check-ins", logger.Int("count", len(swept)))

	for _, record := range swept {
		uc.state.SetCount(ctx, record.SpotID, uc.registry.Count(ctx, record.SpotID), now)
		uc.state.SetUserCheckedIn(record.UserID, uc.registry.GetActiveAnywhere(ctx, record.UserID) != nil)

		if err := uc.history.RecordCheckOut(ctx, record.ID, now, true); err != nil {
			logger.Warn("Failed to record expired check-in",
				logger.String("checkin_id", record.ID.String()),
				logger.Err(err))
		}

		if err := uc.gw.PublishExpired(ctx, record); err != nil {
			logger.Warn("Failed to publish expired check-in",
				logger.String("checkin_id", record.ID.String()),
				logger.Err(err))
		}

		uc.publishUpdates(ctx, record, false)
	}

	return nil
}
