package gateway

import (
	"context"
	"fmt"

	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	natspkg "github.com/surfsup-app/surfsup/internal/pkg/nats"
	"github.com/surfsup-app/surfsup/services/checkin"
)

// checkInGW publishes check-in events to NATS.
type checkInGW struct {
	natsClient *natspkg.Client
}

// NewCheckInGW creates a new check-in gateway
func NewCheckInGW(natsClient *natspkg.Client) checkin.CheckInGW {
	return &checkInGW{natsClient: natsClient}
}

// PublishSurferCount publishes a surfer count update.
func (g *checkInGW) PublishSurferCount(ctx context.Context, update *models.SurferCountUpdate) error {
	if err := g.natsClient.PublishJSON(constants.SubjectCountUpdated, update); err != nil {
		return fmt.Errorf("failed to publish surfer count update: %w", err)
	}
	return nil
}

// PublishStatusChange publishes a check-in status transition.
func (g *checkInGW) PublishStatusChange(ctx context.Context, change *models.CheckInStatusChange) error {
	if err := g.natsClient.PublishJSON(constants.SubjectStatusChanged, change); err != nil {
		return fmt.Errorf("failed to publish check-in status change: %w", err)
	}
	return nil
}

// PublishExpired publishes a swept check-in record.
func (g *checkInGW) PublishExpired(ctx context.Context, checkIn *models.CheckIn) error {
	if err := g.natsClient.PublishJSON(constants.SubjectCheckInSwept, checkIn); err != nil {
		return fmt.Errorf("failed to publish expired check-in: %w", err)
	}
	return nil
}
