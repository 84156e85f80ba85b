package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/services/checkin"
	"github.com/surfsup-app/surfsup/services/checkin/repository"
)

// CheckInUC implements the checkin.CheckInUC interface.
type CheckInUC struct {
	cfg      *models.Config
	registry checkin.CheckInRepo
	history  checkin.HistoryRepo
	state    *repository.SpotStateStore
	gw       checkin.CheckInGW

	// userLocks serializes check-in/check-out per user so two in-flight
	// requests for the same user cannot both pass the conflict check.
	userLocksMu sync.Mutex
	userLocks   map[string]*sync.Mutex

	// now is swappable for tests.
	now func() time.Time
}

// NewCheckInUC creates a new check-in use case
func NewCheckInUC(
	cfg *models.Config,
	registry checkin.CheckInRepo,
	history checkin.HistoryRepo,
	state *repository.SpotStateStore,
	gw checkin.CheckInGW,
) *CheckInUC {
	return &CheckInUC{
		cfg:       cfg,
		registry:  registry,
		history:   history,
		state:     state,
		gw:        gw,
		userLocks: make(map[string]*sync.Mutex),
		now:       time.Now,
	}
}

func (uc *CheckInUC) lockUser(userID string) func() {
	uc.userLocksMu.Lock()
	mu, ok := uc.userLocks[userID]
	if !ok {
		mu = &sync.Mutex{}
		uc.userLocks[userID] = mu
	}
	uc.userLocksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// CheckIn creates a check-in for the user at the given spot.
func (uc *CheckInUC) CheckIn(ctx context.Context, req *models.CheckInRequest) (*models.CheckIn, error) {
	unlock := uc.lockUser(req.UserID)
	defer unlock()

	if existing := uc.registry.GetActiveAnywhere(ctx, req.UserID); existing != nil {
		if existing.SpotID == req.SpotID {
			// Already surfing here; checking in again is a no-op.
			return existing, nil
		}
		return nil, &checkin.ActiveElsewhereError{Existing: existing}
	}

	return uc.create(ctx, req.UserID, req.SpotID, req.Conditions, req.Comment)
}

// SwitchSpot checks the user out of their current spot, then in at the new
// one. The two steps are not atomic: when the check-in half fails the user
// ends up checked in nowhere, which is logged as a consistency warning and
// surfaced to the caller.
func (uc *CheckInUC) SwitchSpot(ctx context.Context, req *models.SwitchSpotRequest) (*models.CheckIn, error) {
	unlock := uc.lockUser(req.UserID)
	defer unlock()

	existing := uc.registry.GetActiveAnywhere(ctx, req.UserID)
	if existing != nil {
		if existing.SpotID == req.SpotID {
			return existing, nil
		}

		if err := uc.checkOutLocked(ctx, existing.ID, false); err != nil {
			return nil, err
		}
	}

	created, err := uc.create(ctx, req.UserID, req.SpotID, req.Conditions, req.Comment)
	if err != nil && existing != nil {
		logger.Error("Consistency warning: check-out succeeded but follow-up check-in failed, user has no active check-in",
			logger.String("user_id", req.UserID),
			logger.String("previous_spot_id", existing.SpotID),
			logger.String("spot_id", req.SpotID),
			logger.Err(err))
	}
	return created, err
}

// create builds the record and pushes it through the registry, state store,
// history and gateway. Caller must hold the user lock.
func (uc *CheckInUC) create(ctx context.Context, userID, spotID, conditions, comment string) (*models.CheckIn, error) {
	now := uc.now()
	record := &models.CheckIn{
		ID:         uuid.New(),
		UserID:     userID,
		SpotID:     spotID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Duration(uc.cfg.CheckIn.ExpiryMinutes) * time.Minute),
		Active:     true,
		Conditions: conditions,
		Comment:    comment,
	}

	if err := uc.registry.Add(ctx, record); err != nil {
		return nil, err
	}

	uc.state.SetCount(ctx, spotID, uc.registry.Count(ctx, spotID), now)
	uc.state.SetUserCheckedIn(userID, true)

	if err := uc.history.RecordCheckIn(ctx, record); err != nil {
		// History is best-effort; the live state is already correct.
		logger.Warn("Failed to record check-in history",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	uc.publishUpdates(ctx, record, true)

	return record, nil
}

// CheckOut ends the check-in with the given ID.
func (uc *CheckInUC) CheckOut(ctx context.Context, checkInID uuid.UUID) error {
	return uc.checkOutLocked(ctx, checkInID, true)
}

// checkOutLocked removes the record and propagates the state change. The
// lock parameter controls whether the per-user lock is taken here; callers
// already holding it pass false.
func (uc *CheckInUC) checkOutLocked(ctx context.Context, checkInID uuid.UUID, lock bool) error {
	removed, ok := uc.registry.Remove(ctx, checkInID)
	if !ok {
		return checkin.ErrNotCheckedIn
	}

	if lock {
		unlock := uc.lockUser(removed.UserID)
		defer unlock()
	}

	now := uc.now()
	ended := now
	removed.EndedAt = &ended

	uc.state.SetCount(ctx, removed.SpotID, uc.registry.Count(ctx, removed.SpotID), now)
	// Recompute rather than assume false: a concurrent check-in at
	// another spot may have landed between the removal and this point.
	uc.state.SetUserCheckedIn(removed.UserID, uc.registry.GetActiveAnywhere(ctx, removed.UserID) != nil)

	if err := uc.history.RecordCheckOut(ctx, removed.ID, now, false); err != nil {
		logger.Warn("Failed to record check-out history",
			logger.String("checkin_id", removed.ID.String()),
			logger.Err(err))
	}

	uc.publishUpdates(ctx, removed, false)

	return nil
}

// GetActiveCheckIn returns the user's active check-in at the exact spot.
func (uc *CheckInUC) GetActiveCheckIn(ctx context.Context, userID, spotID string) (*models.CheckIn, error) {
	return uc.registry.GetActive(ctx, userID, spotID), nil
}

// GetActiveCheckInAnywhere returns the user's active check-in at any spot.
func (uc *CheckInUC) GetActiveCheckInAnywhere(ctx context.Context, userID string) (*models.CheckIn, error) {
	return uc.registry.GetActiveAnywhere(ctx, userID), nil
}

// GetSpotCount returns the current surfer count for a spot.
func (uc *CheckInUC) GetSpotCount(ctx context.Context, spotID string) (*models.SpotSurferState, error) {
	return uc.state.GetCount(ctx, spotID), nil
}

// GetUserHistory returns the user's past check-ins.
func (uc *CheckInUC) GetUserHistory(ctx context.Context, userID string, limit int) ([]*models.CheckIn, error) {
	return uc.history.GetUserHistory(ctx, userID, limit)
}

// ResetAll clears all active check-ins and zeroes all counts.
func (uc *CheckInUC) ResetAll(ctx context.Context) error {
	uc.registry.ResetAll(ctx)
	uc.state.Reset(ctx)
	return nil
}

// publishUpdates sends the surfer-count and status-change events. Publish
// failures are logged, not returned: the authoritative state already
// changed and subscribers reconcile on the next update.
func (uc *CheckInUC) publishUpdates(ctx context.Context, record *models.CheckIn, checkedIn bool) {
	state := uc.state.GetCount(ctx, record.SpotID)

	if err := uc.gw.PublishSurferCount(ctx, &models.SurferCountUpdate{
		SpotID:      record.SpotID,
		Count:       state.Count,
		LastUpdated: state.LastUpdated,
	}); err != nil {
		logger.Warn("Failed to publish surfer count update",
			logger.String("spot_id", record.SpotID),
			logger.Err(err))
	}

	if err := uc.gw.PublishStatusChange(ctx, &models.CheckInStatusChange{
		UserID:      record.UserID,
		SpotID:      record.SpotID,
		IsCheckedIn: checkedIn,
		Timestamp:   uc.now(),
	}); err != nil {
		logger.Warn("Failed to publish check-in status change",
			logger.String("user_id", record.UserID),
			logger.Err(err))
	}
}
