package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn marks a user as currently present and surfing at a spot.
type CheckIn struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     string     `json:"user_id" db:"user_id"`
	SpotID     string     `json:"spot_id" db:"spot_id"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at" db:"expires_at"`
	Active     bool       `json:"active" db:"active"`
	EndedAt    *time.Time `json:"ended_at,omitempty" db:"ended_at"`
	Conditions string     `json:"conditions,omitempty" db:"conditions"`
	Comment    string     `json:"comment,omitempty" db:"comment"`
}

// Expired reports whether the check-in has passed its expiration window.
func (c *CheckIn) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// CheckInRequest is the payload for creating a check-in.
type CheckInRequest struct {
	UserID     string `json:"user_id"`
	SpotID     string `json:"spot_id"`
	Conditions string `json:"conditions,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

// SwitchSpotRequest confirms a cross-spot switch: check out of the current
// spot, then check in at the new one.
type SwitchSpotRequest struct {
	UserID     string `json:"user_id"`
	SpotID     string `json:"spot_id"`
	Conditions string `json:"conditions,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

// SpotSurferState is the derived per-spot surfer count.
type SpotSurferState struct {
	SpotID      string    `json:"spot_id"`
	Count       int       `json:"count"`
	LastUpdated time.Time `json:"last_updated"`
}

// SurferCountUpdate is the payload of a surfer_count_update event.
type SurferCountUpdate struct {
	SpotID      string    `json:"spotId"`
	Count       int       `json:"count"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// CheckInStatusChange is the payload of a checkin_status_change event.
type CheckInStatusChange struct {
	UserID      string    `json:"userId"`
	SpotID      string    `json:"spotId"`
	IsCheckedIn bool      `json:"isCheckedIn"`
	Timestamp   time.Time `json:"timestamp"`
}

// ConnectionStatus is the payload of a connection_status event. It is
// produced client-side by the realtime client, never by the server.
type ConnectionStatus struct {
	Connected        bool   `json:"connected"`
	Error            string `json:"error,omitempty"`
	ReconnectAttempt int    `json:"reconnectAttempt,omitempty"`
	ReconnectDelayMs int64  `json:"reconnectDelay,omitempty"`
	Terminal         bool   `json:"terminal,omitempty"`
}
