package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/monev-api/internal/models"
	"github.com/noah-isme/monev-api/internal/upstream"
	appErrors "github.com/noah-isme/monev-api/pkg/errors"
)

// ErrUnknownETLAction is returned for actions outside the four control calls.
var ErrUnknownETLAction = appErrors.Clone(appErrors.ErrValidation, "unknown etl action")

// ETLService wraps the upstream ETL control and query endpoints. Failures are logged and returned unchanged.
type ETLService struct {
	client upstreamClient
	logger *zap.Logger
}

// NewETLService constructs an ETLService.
func NewETLService(client upstreamClient, logger *zap.Logger) *ETLService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ETLService{client: client, logger: logger}
}

// GetETLStatus fetches the current ETL process status.
func (s *ETLService) GetETLStatus(ctx context.Context) (models.ETLStatus, error) {
	var status models.ETLStatus
	err := s.client.GetJSON(ctx, upstream.Request{Path: upstream.PathETLStatus, Endpoint: "etl_status"}, &status)
	if err != nil {
		logUpstreamFailure(s.logger, "etl_status", err)
		return nil, err
	}
	return status, nil
}

// GetETLLogs fetches a page of ETL logs. A response without data.logs yields an empty slice.
func (s *ETLService) GetETLLogs(ctx context.Context, limit, offset int) ([]models.ETLLog, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var resp models.ETLLogsResponse
	err := s.client.GetJSON(ctx, upstream.Request{Path: upstream.PathETLLogs, Query: query, Endpoint: "etl_logs"}, &resp)
	if err != nil {
		logUpstreamFailure(s.logger, "etl_logs", err)
		return nil, err
	}
	if resp.Data == nil || resp.Data.Logs == nil {
		// TODO: drop once the SAS logs contract guarantees data.logs.
		s.logger.Warn("logs_field_missing", zap.String("endpoint", "etl_logs"), zap.Int("limit", limit), zap.Int("offset", offset))
		return []models.ETLLog{}, nil
	}
	return *resp.Data.Logs, nil
}

// StartFullETL triggers a full ETL run. Like the other control calls it returns the
// upstream body unchanged; a nil body with a nil error means the upstream answered 2xx without one.
func (s *ETLService) StartFullETL(ctx context.Context) (json.RawMessage, error) {
	return s.trigger(ctx, upstream.PathETLRunFull, "etl_run_full")
}

// StartIncrementalETL triggers an incremental ETL run.
func (s *ETLService) StartIncrementalETL(ctx context.Context) (json.RawMessage, error) {
	return s.trigger(ctx, upstream.PathETLRunIncremental, "etl_run_incremental")
}

// ClearStuckETL clears runs stuck in a running state.
func (s *ETLService) ClearStuckETL(ctx context.Context) (json.RawMessage, error) {
	return s.trigger(ctx, upstream.PathETLClearStuck, "etl_clear_stuck")
}

// ForceClearAllETL force-clears every in-flight run.
func (s *ETLService) ForceClearAllETL(ctx context.Context) (json.RawMessage, error) {
	return s.trigger(ctx, upstream.PathETLForceClear, "etl_force_clear")
}

// Trigger dispatches the control call matching action. A nil body with a nil error
// means the upstream accepted the call and sent no body.
func (s *ETLService) Trigger(ctx context.Context, action models.ETLAction) (json.RawMessage, error) {
	switch action {
	case models.ETLActionFull:
		return s.StartFullETL(ctx)
	case models.ETLActionIncremental:
		return s.StartIncrementalETL(ctx)
	case models.ETLActionClearStuck:
		return s.ClearStuckETL(ctx)
	case models.ETLActionForceClear:
		return s.ForceClearAllETL(ctx)
	default:
		return nil, ErrUnknownETLAction
	}
}

func (s *ETLService) trigger(ctx context.Context, path, endpoint string) (json.RawMessage, error) {
	body, err := s.client.Do(ctx, upstream.Request{Method: http.MethodPost, Path: path, Endpoint: endpoint})
	if err != nil {
		logUpstreamFailure(s.logger, endpoint, err)
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}
