package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/services/checkin"
)

func unmarshalMessage(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// handleCheckInRequest processes a check-in sent over the socket.
func (m *WebSocketManager) handleCheckInRequest(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.CheckInRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid check-in request format")
	}

	// The socket identity wins over whatever the payload claims.
	req.UserID = client.UserID

	record, err := m.uc.CheckIn(context.Background(), &req)
	if err != nil {
		if existing, ok := checkin.AsActiveElsewhere(err); ok {
			// Surface the conflict; the client drives the
			// confirm-and-switch flow.
			return m.manager.SendMessage(client.Conn, constants.EventError, models.WSErrorMessage{
				Code:    constants.ErrorActiveElsewhere,
				Message: "Already checked in at " + existing.SpotID,
			})
		}
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorCheckInFailed, err.Error())
	}

	return m.manager.SendMessage(client.Conn, constants.EventCheckInStatusChange, models.CheckInStatusChange{
		UserID:      record.UserID,
		SpotID:      record.SpotID,
		IsCheckedIn: true,
		Timestamp:   record.CreatedAt,
	})
}

// handleCheckOutRequest processes a check-out sent over the socket.
func (m *WebSocketManager) handleCheckOutRequest(client *models.WebSocketClient, data json.RawMessage) error {
	var req struct {
		CheckInID string `json:"checkin_id"`
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid check-out request format")
	}

	checkInID, err := uuid.Parse(req.CheckInID)
	if err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid check-in ID")
	}

	if err := m.uc.CheckOut(context.Background(), checkInID); err != nil {
		if errors.Is(err, checkin.ErrNotCheckedIn) {
			return m.manager.SendErrorMessage(client.Conn, constants.ErrorCheckOutFailed, "Check-in is no longer active")
		}
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorCheckOutFailed, err.Error())
	}

	return nil
}

// handleSpotSubscribe starts pushing a spot's feed to the client.
func (m *WebSocketManager) handleSpotSubscribe(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.SpotSubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.SpotID == "" {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid spot subscribe request")
	}

	m.manager.SubscribeSpot(client.UserID, req.SpotID)

	// Send the current count right away so the client does not wait for
	// the next transition.
	state, err := m.uc.GetSpotCount(context.Background(), req.SpotID)
	if err != nil {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInternalError, "Failed to read surfer count")
	}

	return m.manager.SendMessage(client.Conn, constants.EventSurferCountUpdate, models.SurferCountUpdate{
		SpotID:      state.SpotID,
		Count:       state.Count,
		LastUpdated: state.LastUpdated,
	})
}

// handleSpotUnsubscribe stops pushing a spot's feed to the client.
func (m *WebSocketManager) handleSpotUnsubscribe(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.SpotSubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil || req.SpotID == "" {
		return m.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid spot unsubscribe request")
	}

	m.manager.UnsubscribeSpot(client.UserID, req.SpotID)
	return nil
}
