package checkin

import (
	"context"

	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// CheckInGW publishes check-in events for other components to consume.
type CheckInGW interface {
	// PublishSurferCount publishes a surfer count update for a spot.
	PublishSurferCount(ctx context.Context, update *models.SurferCountUpdate) error

	// PublishStatusChange publishes a user's check-in status transition.
	PublishStatusChange(ctx context.Context, change *models.CheckInStatusChange) error

	// PublishExpired publishes a check-in that was swept after passing its
	// expiry window.
	PublishExpired(ctx context.Context, checkIn *models.CheckIn) error
}
