package spots

import (
	"context"

	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// SpotUC defines the spot directory use case operations.
type SpotUC interface {
	CreateSpot(ctx context.Context, spot *models.Spot) (*models.Spot, error)
	GetSpot(ctx context.Context, spotID string) (*models.Spot, error)
	ListSpots(ctx context.Context) ([]*models.Spot, error)
	FindNearbySpots(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbySpot, error)
}
