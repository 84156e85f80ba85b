package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/database"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// SpotStateStore caches the derived surfer counts and per-user check-in
// flags. It is the single source of truth read by handlers; only the
// usecase layer writes to it. When a Redis client is provided, counts are
// mirrored there so other instances and restarts can read them.
type SpotStateStore struct {
	mu          sync.RWMutex
	spots       map[string]*models.SpotSurferState
	checkedIn   map[string]bool
	redisClient *database.RedisClient
}

// NewSpotStateStore creates a spot state store. The Redis client is
// optional; without it the store is purely in-memory.
func NewSpotStateStore(redisClient *database.RedisClient) *SpotStateStore {
	return &SpotStateStore{
		spots:       make(map[string]*models.SpotSurferState),
		checkedIn:   make(map[string]bool),
		redisClient: redisClient,
	}
}

// SetCount records the derived count for a spot and mirrors it to Redis.
func (s *SpotStateStore) SetCount(ctx context.Context, spotID string, count int, at time.Time) {
	if count < 0 {
		count = 0
	}

	s.mu.Lock()
	s.spots[spotID] = &models.SpotSurferState{
		SpotID:      spotID,
		Count:       count,
		LastUpdated: at,
	}
	s.mu.Unlock()

	s.mirrorCount(ctx, spotID, count, at)
}

// GetCount returns the cached state for a spot, with a zero count for
// unknown spots.
func (s *SpotStateStore) GetCount(ctx context.Context, spotID string) *models.SpotSurferState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st, ok := s.spots[spotID]; ok {
		copied := *st
		return &copied
	}
	return &models.SpotSurferState{SpotID: spotID}
}

// SetUserCheckedIn records whether the user currently has an active
// check-in anywhere.
func (s *SpotStateStore) SetUserCheckedIn(userID string, checkedIn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if checkedIn {
		s.checkedIn[userID] = true
		return
	}
	delete(s.checkedIn, userID)
}

// IsUserCheckedIn reports whether the user has an active check-in.
func (s *SpotStateStore) IsUserCheckedIn(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkedIn[userID]
}

// Reset zeroes every count and clears all user flags.
func (s *SpotStateStore) Reset(ctx context.Context) {
	s.mu.Lock()
	spots := s.spots
	s.spots = make(map[string]*models.SpotSurferState)
	s.checkedIn = make(map[string]bool)
	s.mu.Unlock()

	now := time.Now()
	for spotID := range spots {
		s.mirrorCount(ctx, spotID, 0, now)
	}
}

func (s *SpotStateStore) mirrorCount(ctx context.Context, spotID string, count int, at time.Time) {
	if s.redisClient == nil {
		return
	}

	key := fmt.Sprintf(constants.KeySpotCount, spotID)
	err := s.redisClient.HMSet(ctx, key, map[string]interface{}{
		constants.FieldCount:       count,
		constants.FieldLastUpdated: at.Format(time.RFC3339),
	})
	if err != nil {
		logger.Warn("Failed to mirror spot count to redis",
			logger.String("spot_id", spotID),
			logger.Err(err))
	}
}
