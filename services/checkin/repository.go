package checkin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// CheckInRepo is the authoritative registry of active check-ins.
type CheckInRepo interface {
	// Add stores a new active check-in.
	Add(ctx context.Context, checkIn *models.CheckIn) error

	// Remove ends the active check-in with the given ID and returns the
	// removed record. The boolean is false when no active record matches,
	// which callers treat as "already checked out".
	Remove(ctx context.Context, checkInID uuid.UUID) (*models.CheckIn, bool)

	// GetActive returns the active check-in for the exact user/spot pair,
	// or nil.
	GetActive(ctx context.Context, userID, spotID string) *models.CheckIn

	// GetActiveAnywhere returns the user's active check-in at any spot,
	// or nil.
	GetActiveAnywhere(ctx context.Context, userID string) *models.CheckIn

	// Count returns the number of active check-ins at a spot, zero for
	// unknown spots.
	Count(ctx context.Context, spotID string) int

	// SweepExpired deactivates every record whose expiry has passed and
	// returns the swept records. Running it again immediately returns
	// nothing: records are only swept once.
	SweepExpired(ctx context.Context, now time.Time) []*models.CheckIn

	// ResetAll clears every spot's active list.
	ResetAll(ctx context.Context)
}

// HistoryRepo persists the check-in history.
type HistoryRepo interface {
	RecordCheckIn(ctx context.Context, checkIn *models.CheckIn) error
	RecordCheckOut(ctx context.Context, checkInID uuid.UUID, endedAt time.Time, expired bool) error
	GetUserHistory(ctx context.Context, userID string, limit int) ([]*models.CheckIn, error)
}
