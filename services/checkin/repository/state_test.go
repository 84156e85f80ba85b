package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetCountFloorsAtZero(t *testing.T) {
	store := NewSpotStateStore(nil)
	ctx := context.Background()

	store.SetCount(ctx, "stoneypoint", -3, time.Now())

	state := store.GetCount(ctx, "stoneypoint")
	assert.Equal(t, 0, state.Count)
}

func TestGetCountForUnknownSpotIsZero(t *testing.T) {
	store := NewSpotStateStore(nil)

	state := store.GetCount(context.Background(), "lesterriver")
	assert.Equal(t, "lesterriver", state.SpotID)
	assert.Equal(t, 0, state.Count)
	assert.True(t, state.LastUpdated.IsZero())
}

func TestGetCountReturnsACopy(t *testing.T) {
	store := NewSpotStateStore(nil)
	ctx := context.Background()
	store.SetCount(ctx, "stoneypoint", 2, time.Now())

	state := store.GetCount(ctx, "stoneypoint")
	state.Count = 99

	assert.Equal(t, 2, store.GetCount(ctx, "stoneypoint").Count)
}

func TestUserCheckedInFlag(t *testing.T) {
	store := NewSpotStateStore(nil)

	assert.False(t, store.IsUserCheckedIn("surfer-1"))

	store.SetUserCheckedIn("surfer-1", true)
	assert.True(t, store.IsUserCheckedIn("surfer-1"))

	store.SetUserCheckedIn("surfer-1", false)
	assert.False(t, store.IsUserCheckedIn("surfer-1"))
}

func TestResetClearsCountsAndFlags(t *testing.T) {
	store := NewSpotStateStore(nil)
	ctx := context.Background()

	store.SetCount(ctx, "stoneypoint", 4, time.Now())
	store.SetUserCheckedIn("surfer-1", true)

	store.Reset(ctx)

	assert.Equal(t, 0, store.GetCount(ctx, "stoneypoint").Count)
	assert.False(t, store.IsUserCheckedIn("surfer-1"))
}
