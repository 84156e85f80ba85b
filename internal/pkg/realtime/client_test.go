package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// fakeConn is a scriptable connection. ReadMessage blocks until a message
// is queued or the connection is closed.
type fakeConn struct {
	incoming  chan []byte
	closeOnce sync.Once
	closed    chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		incoming: make(chan []byte, 16),
		closed:   make(chan struct{}),
	}
}

func (c *fakeConn) ReadMessage() ([]byte, error) {
	select {
	case data := <-c.incoming:
		return data, nil
	case <-c.closed:
		return nil, errors.New("connection closed")
	}
}

func (c *fakeConn) WriteMessage(data []byte) error {
	select {
	case <-c.closed:
		return errors.New("connection closed")
	default:
		return nil
	}
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

type dialResult struct {
	conn *fakeConn
	err  error
}

// fakeDialer pops one scripted result per Dial call and signals each call
// on the calls channel.
type fakeDialer struct {
	mu      sync.Mutex
	results []dialResult
	calls   chan struct{}
}

func newFakeDialer(results ...dialResult) *fakeDialer {
	return &fakeDialer{
		results: results,
		calls:   make(chan struct{}, 32),
	}
}

func (d *fakeDialer) Dial(ctx context.Context, url string, header http.Header) (Conn, error) {
	d.mu.Lock()
	var res dialResult
	if len(d.results) > 0 {
		res = d.results[0]
		d.results = d.results[1:]
	} else {
		res = dialResult{err: errors.New("no scripted result")}
	}
	d.mu.Unlock()

	d.calls <- struct{}{}

	if res.err != nil {
		return nil, res.err
	}
	return res.conn, nil
}

// fakeTimer fires when the test pushes to its channel.
type fakeTimer struct {
	d  time.Duration
	ch chan time.Time

	mu      sync.Mutex
	stopped bool
}

func (t *fakeTimer) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.stopped
	t.stopped = true
	return !was
}

func (t *fakeTimer) fire() {
	t.ch <- time.Time{}
}

// fakeClock hands created timers to the test for manual firing.
type fakeClock struct {
	created chan *fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{created: make(chan *fakeTimer, 32)}
}

func (c *fakeClock) Now() time.Time {
	return time.Unix(1700000000, 0)
}

func (c *fakeClock) NewTimer(d time.Duration) Timer {
	t := &fakeTimer{d: d, ch: make(chan time.Time, 1)}
	c.created <- t
	return t
}

func waitTimer(t *testing.T, clock *fakeClock) *fakeTimer {
	t.Helper()
	select {
	case timer := <-clock.created:
		return timer
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for retry timer")
		return nil
	}
}

func waitDial(t *testing.T, dialer *fakeDialer) {
	t.Helper()
	select {
	case <-dialer.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dial attempt")
	}
}

func collectStatuses(client *Client) (<-chan models.ConnectionStatus, func()) {
	statuses := make(chan models.ConnectionStatus, 32)
	unsubscribe := client.Subscribe(constants.EventConnectionStatus, func(msg models.WSMessage) {
		var status models.ConnectionStatus
		if err := json.Unmarshal(msg.Data, &status); err == nil {
			statuses <- status
		}
	})
	return statuses, unsubscribe
}

func nextStatus(t *testing.T, statuses <-chan models.ConnectionStatus) models.ConnectionStatus {
	t.Helper()
	select {
	case status := <-statuses:
		return status
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for connection status")
		return models.ConnectionStatus{}
	}
}

func TestBackoffDelaysDoubleUpToCeiling(t *testing.T) {
	dialer := newFakeDialer() // every dial fails
	clock := newFakeClock()
	client := NewClient(Config{URL: "ws://test"}, dialer, clock, nil)

	statuses, unsubscribe := collectStatuses(client)
	defer unsubscribe()

	err := client.Connect(context.Background())
	require.Error(t, err)
	waitDial(t, dialer)

	expectedDelays := []int64{2000, 4000, 8000, 16000}
	for i, want := range expectedDelays {
		status := nextStatus(t, statuses)
		assert.False(t, status.Connected)
		assert.Equal(t, i+1, status.ReconnectAttempt)
		assert.Equal(t, want, status.ReconnectDelayMs)

		timer := waitTimer(t, clock)
		assert.Equal(t, time.Duration(want)*time.Millisecond, timer.d)

		timer.fire()
		waitDial(t, dialer)
	}

	// Fifth consecutive failure is terminal.
	status := nextStatus(t, statuses)
	assert.False(t, status.Connected)
	assert.True(t, status.Terminal)
	assert.Equal(t, 5, status.ReconnectAttempt)
	assert.Equal(t, StateFailed, client.State())

	// No further retry is scheduled.
	select {
	case <-clock.created:
		t.Fatal("retry scheduled after terminal failure")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBackoffDelayCappedAtCeiling(t *testing.T) {
	dialer := newFakeDialer()
	clock := newFakeClock()
	client := NewClient(Config{
		URL:                  "ws://test",
		ReconnectFloor:       10 * time.Second,
		ReconnectCeil:        15 * time.Second,
		MaxReconnectAttempts: 4,
	}, dialer, clock, nil)

	require.Error(t, client.Connect(context.Background()))
	waitDial(t, dialer)

	timer := waitTimer(t, clock)
	assert.Equal(t, 10*time.Second, timer.d)

	timer.fire()
	waitDial(t, dialer)

	timer = waitTimer(t, clock)
	assert.Equal(t, 15*time.Second, timer.d, "delay should cap at the ceiling")
}

func TestSuccessfulConnectResetsBackoff(t *testing.T) {
	conn := newFakeConn()
	dialer := newFakeDialer(
		dialResult{err: errors.New("refused")},
		dialResult{conn: conn},
	)
	clock := newFakeClock()
	client := NewClient(Config{URL: "ws://test"}, dialer, clock, nil)

	statuses, unsubscribe := collectStatuses(client)
	defer unsubscribe()

	require.Error(t, client.Connect(context.Background()))
	waitDial(t, dialer)
	nextStatus(t, statuses)

	timer := waitTimer(t, clock)
	timer.fire()
	waitDial(t, dialer)

	status := nextStatus(t, statuses)
	assert.True(t, status.Connected)
	assert.Equal(t, StateConnected, client.State())

	// Drop and reconnect: the backoff starts from the floor again, not
	// from where the previous failure streak left off.
	client.Disconnect()
	nextStatus(t, statuses)

	require.Error(t, client.Connect(context.Background()))
	waitDial(t, dialer)

	status = nextStatus(t, statuses)
	assert.Equal(t, 1, status.ReconnectAttempt)
	assert.Equal(t, int64(2000), status.ReconnectDelayMs)
}

func TestConnectFromFailedStateResumes(t *testing.T) {
	conn := newFakeConn()
	dialer := newFakeDialer(
		dialResult{err: errors.New("refused")},
		dialResult{err: errors.New("refused")},
		dialResult{err: errors.New("refused")},
		dialResult{conn: conn},
	)
	clock := newFakeClock()
	client := NewClient(Config{
		URL:                  "ws://test",
		MaxReconnectAttempts: 3,
	}, dialer, clock, nil)

	statuses, unsubscribe := collectStatuses(client)
	defer unsubscribe()

	require.Error(t, client.Connect(context.Background()))
	for i := 0; i < 2; i++ {
		waitDial(t, dialer)
		nextStatus(t, statuses)
		waitTimer(t, clock).fire()
	}
	waitDial(t, dialer)

	status := nextStatus(t, statuses)
	require.True(t, status.Terminal)
	require.Equal(t, StateFailed, client.State())

	// Only an explicit Connect leaves the failed state.
	require.NoError(t, client.Connect(context.Background()))
	waitDial(t, dialer)

	status = nextStatus(t, statuses)
	assert.True(t, status.Connected)
	assert.Equal(t, StateConnected, client.State())
}

func TestDisconnectCancelsPendingRetry(t *testing.T) {
	dialer := newFakeDialer()
	clock := newFakeClock()
	client := NewClient(Config{URL: "ws://test"}, dialer, clock, nil)

	require.Error(t, client.Connect(context.Background()))
	waitDial(t, dialer)
	timer := waitTimer(t, clock)

	client.Disconnect()
	assert.Equal(t, StateDisconnected, client.State())

	// Firing the stale timer must not trigger another dial.
	select {
	case timer.ch <- time.Time{}:
	default:
	}

	select {
	case <-dialer.calls:
		t.Fatal("dial attempted after Disconnect")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSendWhileDisconnectedReturnsError(t *testing.T) {
	client := NewClient(Config{URL: "ws://test"}, newFakeDialer(), newFakeClock(), nil)

	err := client.Send(models.WSMessage{Event: "spot_subscribe"})
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestIncomingMessagesReachSubscribers(t *testing.T) {
	conn := newFakeConn()
	dialer := newFakeDialer(dialResult{conn: conn})
	client := NewClient(Config{URL: "ws://test"}, dialer, newFakeClock(), nil)

	received := make(chan models.WSMessage, 1)
	unsubscribe := client.Subscribe("surfer_count_update", func(msg models.WSMessage) {
		received <- msg
	})
	defer unsubscribe()

	require.NoError(t, client.Connect(context.Background()))

	conn.incoming <- []byte(`{"event":"surfer_count_update","data":{"spotId":"stoneypoint","count":3}}`)

	select {
	case msg := <-received:
		assert.Equal(t, "surfer_count_update", msg.Event)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	client.Disconnect()
}

func TestReadFailureMarksDisconnectedWithoutRetry(t *testing.T) {
	conn := newFakeConn()
	dialer := newFakeDialer(dialResult{conn: conn})
	clock := newFakeClock()
	client := NewClient(Config{URL: "ws://test"}, dialer, clock, nil)

	statuses, unsubscribe := collectStatuses(client)
	defer unsubscribe()

	require.NoError(t, client.Connect(context.Background()))
	nextStatus(t, statuses)

	// Server side drops the connection.
	conn.Close()

	status := nextStatus(t, statuses)
	assert.False(t, status.Connected)
	assert.False(t, status.Terminal)
	assert.Equal(t, StateDisconnected, client.State())

	// A lost connection does not schedule a retry on its own.
	select {
	case <-clock.created:
		t.Fatal("retry scheduled after read failure")
	case <-time.After(50 * time.Millisecond):
	}
}
