package handler

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// initNATSConsumers wires the subjects the service listens on. Count
// updates fan out to every socket watching the spot; status changes go
// only to the affected user.
func (h *Handler) initNATSConsumers() error {
	if _, err := h.natsClient.Subscribe(constants.SubjectCountUpdated, h.handleCountUpdated); err != nil {
		return err
	}

	if _, err := h.natsClient.Subscribe(constants.SubjectStatusChanged, h.handleStatusChanged); err != nil {
		return err
	}

	return nil
}

func (h *Handler) handleCountUpdated(msg *nats.Msg) {
	var update models.SurferCountUpdate
	if err := json.Unmarshal(msg.Data, &update); err != nil {
		logger.Error("Failed to unmarshal surfer count update",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	h.wsManager.BroadcastToSpot(update.SpotID, constants.EventSurferCountUpdate, update)
}

func (h *Handler) handleStatusChanged(msg *nats.Msg) {
	var change models.CheckInStatusChange
	if err := json.Unmarshal(msg.Data, &change); err != nil {
		logger.Error("Failed to unmarshal check-in status change",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	h.wsManager.NotifyClient(change.UserID, constants.EventCheckInStatusChange, change)
}
