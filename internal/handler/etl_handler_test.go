package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/monev-api/internal/models"
	"github.com/noah-isme/monev-api/internal/service"
	"github.com/noah-isme/monev-api/internal/upstream"
)

type fakeETLSrv struct {
	triggered  []models.ETLAction
	body       json.RawMessage
	err        error
	logsLimit  int
	logsOffset int
}

func (f *fakeETLSrv) GetETLStatus(context.Context) (models.ETLStatus, error) {
	return models.ETLStatus{"status": "idle"}, f.err
}

func (f *fakeETLSrv) GetETLLogs(_ context.Context, limit, offset int) ([]models.ETLLog, error) {
	f.logsLimit, f.logsOffset = limit, offset
	return []models.ETLLog{}, f.err
}

func (f *fakeETLSrv) Trigger(_ context.Context, action models.ETLAction) (json.RawMessage, error) {
	f.triggered = append(f.triggered, action)
	return f.body, f.err
}

type fakeActionLog struct {
	recorded []service.ETLActionInput
	records  []models.ETLActionRecord
	limit    int
}

func (f *fakeActionLog) Record(_ context.Context, in service.ETLActionInput) {
	f.recorded = append(f.recorded, in)
}

func (f *fakeActionLog) List(_ context.Context, limit int) ([]models.ETLActionRecord, error) {
	f.limit = limit
	return f.records, nil
}

func newTestContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, rec
}

func TestETLHandlerTriggerRecordsSuccess(t *testing.T) {
	etl := &fakeETLSrv{body: json.RawMessage(`{"job":"abc"}`)}
	actions := &fakeActionLog{}
	h := NewETLHandler(etl, actions)

	c, rec := newTestContext(http.MethodPost, "/etl/run/full")
	c.Set("request_id", "req-1")
	h.RunFull(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []models.ETLAction{models.ETLActionFull}, etl.triggered)
	require.Len(t, actions.recorded, 1)
	assert.Equal(t, models.ETLActionFull, actions.recorded[0].Action)
	assert.NoError(t, actions.recorded[0].Err)
	assert.Equal(t, "req-1", actions.recorded[0].RequestID)
	assert.Contains(t, rec.Body.String(), `"upstream":{"job":"abc"}`)
}

func TestETLHandlerTriggerRecordsFailure(t *testing.T) {
	rejected := &upstream.Error{Method: http.MethodPost, Path: upstream.PathETLForceClear, StatusCode: http.StatusConflict, Body: "busy"}
	etl := &fakeETLSrv{err: rejected}
	actions := &fakeActionLog{}
	h := NewETLHandler(etl, actions)

	c, rec := newTestContext(http.MethodPost, "/etl/force-clear")
	h.ForceClear(c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.Len(t, actions.recorded, 1)
	assert.ErrorIs(t, actions.recorded[0].Err, rejected)
	assert.Equal(t, models.ETLActionForceClear, actions.recorded[0].Action)
}

func TestETLHandlerTriggerEmptyBody(t *testing.T) {
	h := NewETLHandler(&fakeETLSrv{}, nil)

	c, rec := newTestContext(http.MethodPost, "/etl/clear-stuck")
	h.ClearStuck(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"upstream"`)
	assert.Contains(t, rec.Body.String(), `"action":"clear_stuck"`)
}

func TestETLHandlerLogsForwardsOutOfRangeValues(t *testing.T) {
	srv := &fakeETLSrv{}
	h := NewETLHandler(srv, nil)

	c, rec := newTestContext(http.MethodGet, "/etl/logs?limit=5000&offset=-1")
	h.Logs(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5000, srv.logsLimit)
	assert.Equal(t, -1, srv.logsOffset)
}

func TestETLHandlerLogsRejectsNonNumericLimit(t *testing.T) {
	h := NewETLHandler(&fakeETLSrv{}, nil)

	c, rec := newTestContext(http.MethodGet, "/etl/logs?limit=lots")
	h.Logs(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestETLHandlerStatusTransportFailure(t *testing.T) {
	h := NewETLHandler(&fakeETLSrv{err: errors.Join(upstream.ErrTransport, context.DeadlineExceeded)}, nil)

	c, rec := newTestContext(http.MethodGet, "/etl/status")
	h.Status(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestETLHandlerActionsList(t *testing.T) {
	actions := &fakeActionLog{records: []models.ETLActionRecord{{ID: "a-1", Action: models.ETLActionFull, Outcome: models.ETLActionSucceeded}}}
	h := NewETLHandler(&fakeETLSrv{}, actions)

	c, rec := newTestContext(http.MethodGet, "/etl/actions?limit=5")
	h.Actions(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, actions.limit)
	assert.Contains(t, rec.Body.String(), `"id":"a-1"`)
}
