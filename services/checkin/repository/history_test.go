package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

func newHistoryMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestRecordCheckIn(t *testing.T) {
	db, mock := newHistoryMock(t)
	repo := NewHistoryRepository(db)

	record := &models.CheckIn{
		ID:        uuid.New(),
		UserID:    "surfer-1",
		SpotID:    "stoneypoint",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(2 * time.Hour),
		Active:    true,
	}

	mock.ExpectExec("INSERT INTO checkins").
		WithArgs(record.ID, record.UserID, record.SpotID, record.CreatedAt,
			record.ExpiresAt, record.Active, record.Conditions, record.Comment).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordCheckIn(context.Background(), record)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordCheckOut(t *testing.T) {
	db, mock := newHistoryMock(t)
	repo := NewHistoryRepository(db)

	id := uuid.New()
	endedAt := time.Now()

	mock.ExpectExec("UPDATE checkins").
		WithArgs(endedAt, true, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordCheckOut(context.Background(), id, endedAt, true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordCheckOutUnknownID(t *testing.T) {
	db, mock := newHistoryMock(t)
	repo := NewHistoryRepository(db)

	id := uuid.New()
	endedAt := time.Now()

	mock.ExpectExec("UPDATE checkins").
		WithArgs(endedAt, false, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RecordCheckOut(context.Background(), id, endedAt, false)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserHistory(t *testing.T) {
	db, mock := newHistoryMock(t)
	repo := NewHistoryRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "spot_id", "created_at", "expires_at", "active",
		"ended_at", "conditions", "comment",
	}).
		AddRow(uuid.New(), "surfer-1", "stoneypoint", now, now.Add(2*time.Hour), false, now.Add(time.Hour), "clean 4ft", "").
		AddRow(uuid.New(), "surfer-1", "parkpoint", now.Add(-24*time.Hour), now.Add(-22*time.Hour), false, nil, "", "windy")

	mock.ExpectQuery("SELECT (.+) FROM checkins").
		WithArgs("surfer-1", 50).
		WillReturnRows(rows)

	history, err := repo.GetUserHistory(context.Background(), "surfer-1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "stoneypoint", history[0].SpotID)
	assert.Equal(t, "parkpoint", history[1].SpotID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserHistoryRespectsLimit(t *testing.T) {
	db, mock := newHistoryMock(t)
	repo := NewHistoryRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM checkins").
		WithArgs("surfer-1", 5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "spot_id", "created_at", "expires_at", "active",
			"ended_at", "conditions", "comment",
		}))

	history, err := repo.GetUserHistory(context.Background(), "surfer-1", 5)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NoError(t, mock.ExpectationsWereMet())
}
