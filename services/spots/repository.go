package spots

import (
	"context"

	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// SpotRepo defines the spot directory storage operations.
type SpotRepo interface {
	Create(ctx context.Context, spot *models.Spot) error
	GetByID(ctx context.Context, spotID string) (*models.Spot, error)
	List(ctx context.Context) ([]*models.Spot, error)
	FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbySpot, error)
}
