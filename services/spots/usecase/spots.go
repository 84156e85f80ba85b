package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/services/spots"
)

// geohashPrecision of 7 gives roughly 150m cells, plenty for shoreline
// surf breaks.
const geohashPrecision = 7

// SpotUC implements the spots.SpotUC interface.
type SpotUC struct {
	repo spots.SpotRepo
	now  func() time.Time
}

// NewSpotUC creates a new spot directory use case
func NewSpotUC(repo spots.SpotRepo) *SpotUC {
	return &SpotUC{
		repo: repo,
		now:  time.Now,
	}
}

// CreateSpot validates and stores a new surf spot. The ID defaults to a
// slug of the name when not supplied.
func (uc *SpotUC) CreateSpot(ctx context.Context, spot *models.Spot) (*models.Spot, error) {
	if spot.Name == "" {
		return nil, errors.New("spot name is required")
	}
	if spot.Latitude < -90 || spot.Latitude > 90 || spot.Longitude < -180 || spot.Longitude > 180 {
		return nil, errors.New("invalid coordinates")
	}

	if spot.ID == "" {
		spot.ID = slugify(spot.Name)
	}
	spot.Geohash = geohash.EncodeWithPrecision(spot.Latitude, spot.Longitude, geohashPrecision)
	spot.CreatedAt = uc.now()

	if err := uc.repo.Create(ctx, spot); err != nil {
		return nil, err
	}

	return spot, nil
}

// GetSpot returns a single spot by ID.
func (uc *SpotUC) GetSpot(ctx context.Context, spotID string) (*models.Spot, error) {
	return uc.repo.GetByID(ctx, spotID)
}

// ListSpots returns the full spot directory.
func (uc *SpotUC) ListSpots(ctx context.Context) ([]*models.Spot, error) {
	return uc.repo.List(ctx)
}

// FindNearbySpots returns spots within radiusKm of the given point,
// nearest first.
func (uc *SpotUC) FindNearbySpots(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbySpot, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, errors.New("invalid coordinates")
	}
	if radiusKm <= 0 {
		radiusKm = 50
	}

	return uc.repo.FindNearby(ctx, latitude, longitude, radiusKm)
}

func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, slug)
	return slug
}
