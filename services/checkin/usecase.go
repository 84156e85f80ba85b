package checkin

import (
	"context"

	"github.com/google/uuid"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// CheckInUC defines the interface for check-in business logic
type CheckInUC interface {
	// CheckIn creates a check-in for the user at the given spot. It
	// returns an ActiveElsewhereError when the user is still active at a
	// different spot; checking in again at the same spot returns the
	// existing record.
	CheckIn(ctx context.Context, req *models.CheckInRequest) (*models.CheckIn, error)

	// SwitchSpot checks the user out of their current spot and in at the
	// requested one. This is the confirmed resolution of the
	// ActiveElsewhereError conflict.
	SwitchSpot(ctx context.Context, req *models.SwitchSpotRequest) (*models.CheckIn, error)

	// CheckOut ends the check-in with the given ID. Returns
	// ErrNotCheckedIn when no active record matches.
	CheckOut(ctx context.Context, checkInID uuid.UUID) error

	// GetActiveCheckIn returns the user's active check-in at the exact
	// spot, or nil.
	GetActiveCheckIn(ctx context.Context, userID, spotID string) (*models.CheckIn, error)

	// GetActiveCheckInAnywhere returns the user's active check-in at any
	// spot, or nil.
	GetActiveCheckInAnywhere(ctx context.Context, userID string) (*models.CheckIn, error)

	// GetSpotCount returns the current surfer count for a spot. Unknown
	// spots report a count of zero.
	GetSpotCount(ctx context.Context, spotID string) (*models.SpotSurferState, error)

	// GetUserHistory returns the user's past check-ins, newest first.
	GetUserHistory(ctx context.Context, userID string, limit int) ([]*models.CheckIn, error)

	// Sweep expires stale check-ins once. Normally driven by the
	// background sweeper.
	Sweep(ctx context.Context) error

	// ResetAll clears all active check-ins and zeroes all counts.
	ResetAll(ctx context.Context) error
}
