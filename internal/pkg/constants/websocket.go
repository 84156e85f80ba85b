package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Realtime feed events pushed to clients
	EventSurferCountUpdate   = "surfer_count_update"
	EventCheckInStatusChange = "checkin_status_change"
	EventConnectionStatus    = "connection_status"

	// Events sent by clients
	EventCheckInRequest  = "checkin_request"
	EventCheckOutRequest = "checkout_request"
	EventSpotSubscribe   = "spot_subscribe"
	EventSpotUnsubscribe = "spot_unsubscribe"
)

// EventWildcard subscribes a callback to every event type.
const EventWildcard = "*"

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorCheckInFailed    = "checkin_failed"
	ErrorCheckOutFailed   = "checkout_failed"
	ErrorActiveElsewhere  = "active_elsewhere"
	ErrorSpotNotFound     = "spot_not_found"
)
