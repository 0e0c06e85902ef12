package service

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/noah-isme/monev-api/internal/models"
	"github.com/noah-isme/monev-api/internal/upstream"
)

// StatsResult is the outcome of one upstream stats call: either the raw body or an error.
type StatsResult struct {
	Body []byte
	Err  error
}

// Collapse maps the result onto the outbound status and payload. Success passes the upstream
// body through byte-for-byte; any failure becomes the zeroed fallback envelope with 500.
func (r StatsResult) Collapse() (int, []byte) {
	if r.Err == nil {
		return http.StatusOK, r.Body
	}
	payload, err := json.Marshal(models.FallbackStatsResponse())
	if err != nil {
		return http.StatusInternalServerError, []byte(`{"status":false,"data":{},"filters":{}}`)
	}
	return http.StatusInternalServerError, payload
}

// StatsService proxies the SAS summary stats endpoint. Nothing on this path is cached.
type StatsService struct {
	client upstreamClient
	logger *zap.Logger
}

// NewStatsService constructs a StatsService.
func NewStatsService(client upstreamClient, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{client: client, logger: logger}
}

// Fetch forwards rawQuery unchanged to the upstream stats endpoint.
func (s *StatsService) Fetch(ctx context.Context, rawQuery string) StatsResult {
	body, err := s.client.Do(ctx, upstream.Request{
		Method:   http.MethodGet,
		Path:     upstream.PathSummaryStats,
		RawQuery: rawQuery,
		Endpoint: "summary_stats",
	})
	if err != nil {
		s.logger.Warn("summary stats unavailable, serving fallback",
			zap.Int("upstream_status", upstream.StatusCode(err)),
			zap.Error(err),
		)
		return StatsResult{Err: err}
	}
	return StatsResult{Body: body}
}
