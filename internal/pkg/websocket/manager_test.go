package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

func newTestManager() *Manager {
	return NewManager(models.JWTConfig{Secret: "test-secret"})
}

func TestAddAndRemoveClient(t *testing.T) {
	m := newTestManager()

	m.AddClient(&models.WebSocketClient{UserID: "surfer-1"})

	client, exists := m.GetClient("surfer-1")
	require.True(t, exists)
	assert.NotNil(t, client.Spots)

	m.RemoveClient("surfer-1")
	_, exists = m.GetClient("surfer-1")
	assert.False(t, exists)
}

func TestSubscribeAndUnsubscribeSpot(t *testing.T) {
	m := newTestManager()
	m.AddClient(&models.WebSocketClient{UserID: "surfer-1"})

	m.SubscribeSpot("surfer-1", "stoneypoint")
	client, _ := m.GetClient("surfer-1")
	assert.True(t, client.Spots["stoneypoint"])

	m.UnsubscribeSpot("surfer-1", "stoneypoint")
	assert.False(t, client.Spots["stoneypoint"])
}

func TestSubscribeSpotForUnknownClientIsNoOp(t *testing.T) {
	m := newTestManager()

	assert.NotPanics(t, func() {
		m.SubscribeSpot("ghost", "stoneypoint")
		m.UnsubscribeSpot("ghost", "stoneypoint")
	})
}

func TestBroadcastToSpotSkipsNonSubscribers(t *testing.T) {
	m := newTestManager()

	watcher := &models.WebSocketClient{UserID: "surfer-1"}
	bystander := &models.WebSocketClient{UserID: "surfer-2"}
	m.AddClient(watcher)
	m.AddClient(bystander)
	m.SubscribeSpot("surfer-1", "stoneypoint")

	// Connections are nil here; SendMessage treats that as delivered.
	// The point is that selection by spot doesn't panic or touch
	// non-subscribers.
	assert.NotPanics(t, func() {
		m.BroadcastToSpot("stoneypoint", "surfer_count_update", models.SurferCountUpdate{
			SpotID: "stoneypoint",
			Count:  2,
		})
	})
}

func TestNotifyUnknownClientIsNoOp(t *testing.T) {
	m := newTestManager()

	assert.NotPanics(t, func() {
		m.NotifyClient("ghost", "checkin_status_change", nil)
	})
}
