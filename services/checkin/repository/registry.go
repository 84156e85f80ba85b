package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/services/checkin"
)

// checkInRegistry is the in-memory authoritative set of active check-ins,
// keyed by spot. Counts are derived from the active lists so they can never
// go negative or drift from the records.
type checkInRegistry struct {
	mu     sync.RWMutex
	bySpot map[string][]*models.CheckIn
}

// NewCheckInRegistry creates an empty check-in registry.
func NewCheckInRegistry() checkin.CheckInRepo {
	return &checkInRegistry{
		bySpot: make(map[string][]*models.CheckIn),
	}
}

// Add stores a new active check-in.
func (r *checkInRegistry) Add(ctx context.Context, c *models.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySpot[c.SpotID] = append(r.bySpot[c.SpotID], c)
	return nil
}

// Remove ends the active check-in with the given ID.
func (r *checkInRegistry) Remove(ctx context.Context, checkInID uuid.UUID) (*models.CheckIn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spotID, list := range r.bySpot {
		for i, c := range list {
			if c.ID == checkInID {
				r.bySpot[spotID] = append(list[:i], list[i+1:]...)
				c.Active = false
				return c, true
			}
		}
	}
	return nil, false
}

// GetActive returns the active check-in for the exact user/spot pair.
func (r *checkInRegistry) GetActive(ctx context.Context, userID, spotID string) *models.CheckIn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.bySpot[spotID] {
		if c.UserID == userID {
			return c
		}
	}
	return nil
}

// GetActiveAnywhere scans all spots for the user's active check-in.
func (r *checkInRegistry) GetActiveAnywhere(ctx context.Context, userID string) *models.CheckIn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, list := range r.bySpot {
		for _, c := range list {
			if c.UserID == userID {
				return c
			}
		}
	}
	return nil
}

// Count returns the number of active check-ins at a spot.
func (r *checkInRegistry) Count(ctx context.Context, spotID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySpot[spotID])
}

// SweepExpired deactivates every record whose expiry has passed. Swept
// records leave the active lists, so a second sweep cannot touch them
// again.
func (r *checkInRegistry) SweepExpired(ctx context.Context, now time.Time) []*models.CheckIn {
	r.mu.Lock()
	defer r.mu.Unlock()

	var swept []*models.CheckIn
	for spotID, list := range r.bySpot {
		remaining := list[:0]
		for _, c := range list {
			if c.Expired(now) {
				c.Active = false
				ended := now
				c.EndedAt = &ended
				swept = append(swept, c)
				continue
			}
			remaining = append(remaining, c)
		}
		r.bySpot[spotID] = remaining
	}
	return swept
}

// ResetAll clears every spot's active list.
func (r *checkInRegistry) ResetAll(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySpot = make(map[string][]*models.CheckIn)
}
