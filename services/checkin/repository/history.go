package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
	"github.com/surfsup-app/surfsup/services/checkin"
)

// historyRepo persists the check-in history in PostgreSQL.
type historyRepo struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new check-in history repository
func NewHistoryRepository(db *sqlx.DB) checkin.HistoryRepo {
	return &historyRepo{db: db}
}

// RecordCheckIn inserts a new check-in row.
func (r *historyRepo) RecordCheckIn(ctx context.Context, c *models.CheckIn) error {
	query := `
		INSERT INTO checkins (
			id, user_id, spot_id, created_at, expires_at, active, conditions, comment
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		c.ID,
		c.UserID,
		c.SpotID,
		c.CreatedAt,
		c.ExpiresAt,
		c.Active,
		c.Conditions,
		c.Comment,
	)
	if err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}

	return nil
}

// RecordCheckOut marks a check-in row as ended. Expired sweeps and explicit
// check-outs share this path; the expired flag distinguishes them.
func (r *historyRepo) RecordCheckOut(ctx context.Context, checkInID uuid.UUID, endedAt time.Time, expired bool) error {
	query := `
		UPDATE checkins
		SET active = false, ended_at = $1, expired = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, endedAt, expired, checkInID)
	if err != nil {
		return fmt.Errorf("failed to record check-out: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("check-in %s not found", checkInID)
	}

	return nil
}

// GetUserHistory returns the user's check-ins, newest first.
func (r *historyRepo) GetUserHistory(ctx context.Context, userID string, limit int) ([]*models.CheckIn, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_id, spot_id, created_at, expires_at, active, ended_at, conditions, comment
		FROM checkins
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var history []*models.CheckIn
	if err := r.db.SelectContext(ctx, &history, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get check-in history: %w", err)
	}

	return history, nil
}
