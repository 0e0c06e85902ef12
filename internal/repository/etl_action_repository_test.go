package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/monev-api/internal/models"
)

func newETLActionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestETLActionRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newETLActionRepoMock(t)
	defer cleanup()
	repo := NewETLActionRepository(db)

	status := 503
	msg := "upstream returned 503"
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO etl_actions")).
		WithArgs(sqlmock.AnyArg(), "full", "failed", 503, msg, "10.0.0.1", "req-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	record := &models.ETLActionRecord{
		Action:         models.ETLActionFull,
		Outcome:        models.ETLActionFailed,
		UpstreamStatus: &status,
		ErrorMessage:   &msg,
		ClientIP:       "10.0.0.1",
		RequestID:      "req-1",
	}
	require.NoError(t, repo.Create(context.Background(), record))
	require.NotEmpty(t, record.ID)
	require.False(t, record.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestETLActionRepositoryCreateError(t *testing.T) {
	db, mock, cleanup := newETLActionRepoMock(t)
	defer cleanup()
	repo := NewETLActionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO etl_actions")).WillReturnError(errors.New("boom"))

	err := repo.Create(context.Background(), &models.ETLActionRecord{Action: models.ETLActionIncremental, Outcome: models.ETLActionSucceeded})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestETLActionRepositoryListRecent(t *testing.T) {
	db, mock, cleanup := newETLActionRepoMock(t)
	defer cleanup()
	repo := NewETLActionRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "action", "outcome", "upstream_status", "error_message", "client_ip", "request_id", "created_at"}).
		AddRow("a-2", "clear_stuck", "success", nil, nil, "10.0.0.2", "req-2", now).
		AddRow("a-1", "full", "failed", 500, "boom", "10.0.0.1", "req-1", now.Add(-time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta("FROM etl_actions ORDER BY created_at DESC LIMIT $1")).
		WithArgs(20).
		WillReturnRows(rows)

	records, err := repo.ListRecent(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, models.ETLActionClearStuck, records[0].Action)
	require.Nil(t, records[0].UpstreamStatus)
	require.NotNil(t, records[1].UpstreamStatus)
	require.Equal(t, 500, *records[1].UpstreamStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}
