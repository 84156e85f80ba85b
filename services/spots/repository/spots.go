package repository

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/database"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/services/spots"
)

// spotRepo stores the spot directory in Postgres and mirrors coordinates
// into a Redis geo set for radius queries.
type spotRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewSpotRepo creates a new spot repository
func NewSpotRepo(db *sqlx.DB, redisClient *database.RedisClient) spots.SpotRepo {
	return &spotRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// Create inserts a spot and registers its coordinates in the geo set.
func (r *spotRepo) Create(ctx context.Context, spot *models.Spot) error {
	query := `
		INSERT INTO spots (id, name, latitude, longitude, geohash, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		spot.ID,
		spot.Name,
		spot.Latitude,
		spot.Longitude,
		spot.Geohash,
		spot.Description,
		spot.CreatedAt,
	)
	if err != nil {
		return err
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeySpotGeo, spot.Longitude, spot.Latitude, spot.ID); err != nil {
		// The geo set is an index, not the source of truth. Radius
		// queries just miss this spot until the next write.
		logger.Warn("Failed to register spot in geo set",
			logger.String("spot_id", spot.ID),
			logger.Err(err))
	}

	return nil
}

// GetByID returns a single spot by ID.
func (r *spotRepo) GetByID(ctx context.Context, spotID string) (*models.Spot, error) {
	var spot models.Spot
	query := `SELECT id, name, latitude, longitude, geohash, description, created_at FROM spots WHERE id = $1`

	if err := r.db.GetContext(ctx, &spot, query, spotID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, spots.ErrSpotNotFound
		}
		return nil, err
	}

	return &spot, nil
}

// List returns every spot in the directory.
func (r *spotRepo) List(ctx context.Context) ([]*models.Spot, error) {
	var result []*models.Spot
	query := `SELECT id, name, latitude, longitude, geohash, description, created_at FROM spots ORDER BY name`

	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, err
	}

	return result, nil
}

// FindNearby resolves spot IDs within the radius from the Redis geo set,
// then loads the full records from Postgres.
func (r *spotRepo) FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbySpot, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeySpotGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, err
	}

	if len(locations) == 0 {
		return []*models.NearbySpot{}, nil
	}

	ids := make([]string, 0, len(locations))
	distances := make(map[string]float64, len(locations))
	for _, loc := range locations {
		ids = append(ids, loc.Name)
		distances[loc.Name] = loc.Dist
	}

	query, args, err := sqlx.In(
		`SELECT id, name, latitude, longitude, geohash, description, created_at FROM spots WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	var records []*models.Spot
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	result := make([]*models.NearbySpot, 0, len(records))
	for _, record := range records {
		result = append(result, &models.NearbySpot{
			Spot:       *record,
			DistanceKm: distances[record.ID],
		})
	}

	// Postgres returns the rows in its own order; restore nearest-first.
	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	return result, nil
}
