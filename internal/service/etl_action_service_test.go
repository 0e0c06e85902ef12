package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/monev-api/internal/models"
	"github.com/noah-isme/monev-api/internal/upstream"
	appErrors "github.com/noah-isme/monev-api/pkg/errors"
	"github.com/noah-isme/monev-api/pkg/jobs"
)

type memoryActionRepo struct {
	created   []*models.ETLActionRecord
	createErr error
	listLimit int
}

func (m *memoryActionRepo) Create(_ context.Context, record *models.ETLActionRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, record)
	return nil
}

func (m *memoryActionRepo) ListRecent(_ context.Context, limit int) ([]models.ETLActionRecord, error) {
	m.listLimit = limit
	out := make([]models.ETLActionRecord, 0, len(m.created))
	for _, r := range m.created {
		out = append(out, *r)
	}
	return out, nil
}

func TestETLActionServiceRecordsSuccess(t *testing.T) {
	repo := &memoryActionRepo{}
	metrics := NewMetricsService()
	svc := NewETLActionService(repo, metrics, nil)
	fixed := time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	svc.Record(context.Background(), ETLActionInput{Action: models.ETLActionFull, ClientIP: "10.0.0.1", RequestID: "req-1"})

	require.Len(t, repo.created, 1)
	record := repo.created[0]
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, models.ETLActionSucceeded, record.Outcome)
	assert.Equal(t, fixed, record.CreatedAt)
	assert.Nil(t, record.ErrorMessage)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.etlActions.WithLabelValues("full", "success")))
}

func TestETLActionServiceRecordsUpstreamFailure(t *testing.T) {
	repo := &memoryActionRepo{}
	svc := NewETLActionService(repo, nil, nil)

	svc.Record(context.Background(), ETLActionInput{
		Action: models.ETLActionForceClear,
		Err:    &upstream.Error{Method: http.MethodPost, Path: upstream.PathETLForceClear, StatusCode: http.StatusConflict, Body: "busy"},
	})

	require.Len(t, repo.created, 1)
	record := repo.created[0]
	assert.Equal(t, models.ETLActionFailed, record.Outcome)
	require.NotNil(t, record.UpstreamStatus)
	assert.Equal(t, http.StatusConflict, *record.UpstreamStatus)
	require.NotNil(t, record.ErrorMessage)
	assert.Contains(t, *record.ErrorMessage, "busy")
}

func TestETLActionServiceSwallowsStorageErrors(t *testing.T) {
	repo := &memoryActionRepo{createErr: errors.New("db down")}
	svc := NewETLActionService(repo, nil, nil)

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), ETLActionInput{Action: models.ETLActionIncremental})
	})
}

func TestETLActionServiceRejectsUnknownAction(t *testing.T) {
	repo := &memoryActionRepo{}
	svc := NewETLActionService(repo, nil, nil)

	svc.Record(context.Background(), ETLActionInput{Action: models.ETLAction("rebuild")})

	assert.Empty(t, repo.created)
}

func TestETLActionServiceListClampsLimit(t *testing.T) {
	repo := &memoryActionRepo{}
	svc := NewETLActionService(repo, nil, nil)

	_, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.listLimit)

	_, err = svc.List(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.listLimit)
}

func TestETLActionServiceDisabled(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewETLActionService(nil, metrics, nil)

	assert.False(t, svc.Enabled())
	svc.Record(context.Background(), ETLActionInput{Action: models.ETLActionClearStuck})
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.etlActions.WithLabelValues("clear_stuck", "success")))

	_, err := svc.List(context.Background(), 10)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FEATURE_DISABLED", appErr.Code)
}

func TestETLActionServiceAsyncFlushesOnStop(t *testing.T) {
	repo := &memoryActionRepo{}
	svc := NewETLActionService(repo, nil, nil)
	svc.StartAsync(context.Background(), jobs.QueueConfig{Workers: 1, BufferSize: 8})

	svc.Record(context.Background(), ETLActionInput{Action: models.ETLActionFull})
	svc.Record(context.Background(), ETLActionInput{Action: models.ETLActionIncremental})
	svc.Stop()

	require.Len(t, repo.created, 2)
	assert.Equal(t, models.ETLActionFull, repo.created[0].Action)

	// after Stop records are written inline
	svc.Record(context.Background(), ETLActionInput{Action: models.ETLActionClearStuck})
	assert.Len(t, repo.created, 3)
}
