package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// State is the connection lifecycle state of a Client.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Defaults for the reconnect backoff policy.
const (
	DefaultReconnectFloor       = 2 * time.Second
	DefaultReconnectCeil        = 30 * time.Second
	DefaultMaxReconnectAttempts = 5
)

var (
	// ErrNotConnected is returned by Send when no connection is up.
	ErrNotConnected = errors.New("realtime: not connected")
	// ErrConnectInProgress is returned by Connect when a connection
	// attempt is already running.
	ErrConnectInProgress = errors.New("realtime: connect already in progress")
)

// Config configures a realtime Client.
type Config struct {
	// URL of the realtime WebSocket endpoint.
	URL string
	// AuthToken is sent as a Bearer token on the dial request.
	AuthToken string
	// ReconnectFloor is the initial backoff delay.
	ReconnectFloor time.Duration
	// ReconnectCeil caps the backoff delay.
	ReconnectCeil time.Duration
	// MaxReconnectAttempts is the number of consecutive failed attempts
	// after which the client stops retrying.
	MaxReconnectAttempts int
}

func (c *Config) applyDefaults() {
	if c.ReconnectFloor <= 0 {
		c.ReconnectFloor = DefaultReconnectFloor
	}
	if c.ReconnectCeil <= 0 {
		c.ReconnectCeil = DefaultReconnectCeil
	}
	if c.MaxReconnectAttempts <= 0 {
		c.MaxReconnectAttempts = DefaultMaxReconnectAttempts
	}
}

// Client maintains a realtime connection to the check-in feed. It
// reconnects autonomously with capped exponential backoff and fans incoming
// messages out to subscribers through a Broker. Connection-status changes
// are delivered to subscribers as connection_status messages, never as
// errors thrown past the subscriber boundary.
type Client struct {
	cfg    Config
	dialer Dialer
	clock  Clock
	broker *Broker
	logger *logger.ZapLogger

	mu         sync.Mutex
	state      State
	conn       Conn
	attempt    int
	delay      time.Duration
	retryTimer  Timer
	retryCancel chan struct{}
	gen         uint64
}

// NewClient creates a realtime client. The dialer and clock are injected so
// tests can script connection outcomes and control backoff timing.
func NewClient(cfg Config, dialer Dialer, clock Clock, zl *logger.ZapLogger) *Client {
	cfg.applyDefaults()
	if clock == nil {
		clock = NewRealClock()
	}
	if zl == nil {
		zl = logger.GetGlobalLogger()
	}
	return &Client{
		cfg:    cfg,
		dialer: dialer,
		clock:  clock,
		broker: NewBroker(),
		logger: zl,
		state:  StateDisconnected,
		delay:  cfg.ReconnectFloor,
	}
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers a handler for one event type or the wildcard. The
// returned function removes the registration.
func (c *Client) Subscribe(event string, fn Handler) func() {
	return c.broker.Subscribe(event, fn)
}

// Connect attempts to establish the connection. On failure it returns the
// dial error and schedules automatic retries with exponential backoff.
// Calling Connect from the failed state resumes retrying from a clean
// counter; this is the only way out of that state.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateConnected:
		c.mu.Unlock()
		return nil
	case StateConnecting:
		c.mu.Unlock()
		return ErrConnectInProgress
	case StateReconnecting:
		// An explicit connect supersedes the scheduled retry.
		c.stopRetryLocked()
	}

	// Fresh external attempt: counters start over.
	c.attempt = 0
	c.delay = c.cfg.ReconnectFloor
	c.state = StateConnecting
	c.mu.Unlock()

	return c.attemptConnect(ctx)
}

// attemptConnect performs one dial and drives the resulting transition.
func (c *Client) attemptConnect(ctx context.Context) error {
	header := http.Header{}
	if c.cfg.AuthToken != "" {
		header.Set("Authorization", "Bearer "+c.cfg.AuthToken)
	}

	conn, err := c.dialer.Dial(ctx, c.cfg.URL, header)
	if err != nil {
		c.handleConnectFailure(err)
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.attempt = 0
	c.delay = c.cfg.ReconnectFloor
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	c.logger.Info("Realtime connection established",
		logger.String("url", c.cfg.URL))

	c.broadcastStatus(models.ConnectionStatus{Connected: true})

	go c.readLoop(conn, gen)
	return nil
}

// handleConnectFailure advances the backoff state machine after a failed
// dial: schedule a retry while attempts remain, go terminal otherwise.
func (c *Client) handleConnectFailure(err error) {
	c.mu.Lock()
	c.attempt++
	attempt := c.attempt

	if attempt >= c.cfg.MaxReconnectAttempts {
		c.state = StateFailed
		c.mu.Unlock()

		c.logger.Error("Realtime reconnect attempts exhausted",
			logger.Int("attempts", attempt),
			logger.Err(err))

		c.broadcastStatus(models.ConnectionStatus{
			Connected:        false,
			Error:            fmt.Sprintf("connection failed after %d attempts: %v", attempt, err),
			ReconnectAttempt: attempt,
			Terminal:         true,
		})
		return
	}

	delay := c.delay
	c.state = StateReconnecting

	timer := c.clock.NewTimer(delay)
	cancel := make(chan struct{})
	c.retryTimer = timer
	c.retryCancel = cancel

	// Double for the next failure, capped at the ceiling.
	c.delay *= 2
	if c.delay > c.cfg.ReconnectCeil {
		c.delay = c.cfg.ReconnectCeil
	}
	c.mu.Unlock()

	c.logger.Warn("Realtime connection failed, retrying",
		logger.Int("attempt", attempt),
		logger.Duration("delay", delay),
		logger.Err(err))

	c.broadcastStatus(models.ConnectionStatus{
		Connected:        false,
		Error:            err.Error(),
		ReconnectAttempt: attempt,
		ReconnectDelayMs: delay.Milliseconds(),
	})

	go func() {
		select {
		case <-timer.C():
		case <-cancel:
			return
		}

		c.mu.Lock()
		if c.retryTimer != timer {
			// Cancelled by Disconnect or superseded by an
			// explicit Connect.
			c.mu.Unlock()
			return
		}
		c.retryTimer = nil
		c.retryCancel = nil
		c.state = StateConnecting
		c.mu.Unlock()

		_ = c.attemptConnect(context.Background())
	}()
}

// Disconnect forcibly drops the connection, cancels any pending retry and
// broadcasts the status change.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.stopRetryLocked()
	c.gen++
	conn := c.conn
	c.conn = nil
	wasIdle := c.state == StateDisconnected
	c.state = StateDisconnected
	c.attempt = 0
	c.delay = c.cfg.ReconnectFloor
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if wasIdle {
		return
	}

	c.logger.Info("Realtime connection closed by client")
	c.broadcastStatus(models.ConnectionStatus{
		Connected: false,
		Error:     "Disconnected",
	})
}

func (c *Client) stopRetryLocked() {
	if c.retryTimer != nil {
		c.retryTimer.Stop()
		c.retryTimer = nil
	}
	if c.retryCancel != nil {
		close(c.retryCancel)
		c.retryCancel = nil
	}
}

// Send writes a message to the server. When no connection is up it warns
// and returns ErrNotConnected instead of queueing.
func (c *Client) Send(msg models.WSMessage) error {
	c.mu.Lock()
	conn := c.conn
	state := c.state
	c.mu.Unlock()

	if state != StateConnected || conn == nil {
		c.logger.Warn("Dropping send while not connected",
			logger.String("event", msg.Event),
			logger.String("state", state.String()))
		return ErrNotConnected
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return conn.WriteMessage(data)
}

// readLoop pumps incoming messages into the broker until the connection
// breaks. A read error on the current connection marks the client
// disconnected; it does not trigger automatic reconnection, only failed
// connection attempts do.
func (c *Client) readLoop(conn Conn, gen uint64) {
	for {
		data, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			if c.gen != gen {
				// A newer connection or an explicit disconnect
				// already took over.
				c.mu.Unlock()
				return
			}
			c.conn = nil
			c.state = StateDisconnected
			c.mu.Unlock()

			c.logger.Warn("Realtime connection lost", logger.Err(err))
			c.broadcastStatus(models.ConnectionStatus{
				Connected: false,
				Error:     err.Error(),
			})
			return
		}

		var msg models.WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Warn("Dropping malformed realtime message", logger.Err(err))
			continue
		}

		c.broker.Publish(msg)
	}
}

func (c *Client) broadcastStatus(status models.ConnectionStatus) {
	data, err := json.Marshal(status)
	if err != nil {
		c.logger.Error("Failed to marshal connection status", logger.Err(err))
		return
	}

	c.broker.Publish(models.WSMessage{
		Event: constants.EventConnectionStatus,
		Data:  data,
	})
}
