package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/monev-api/internal/upstream"
)

// upstreamClient is the part of *upstream.Client the services depend on.
type upstreamClient interface {
	Do(ctx context.Context, req upstream.Request) ([]byte, error)
	GetJSON(ctx context.Context, req upstream.Request, dest interface{}) error
}

// logUpstreamFailure records a failed call before it is handed back to the caller.
func logUpstreamFailure(logger *zap.Logger, endpoint string, err error) {
	fields := []zap.Field{zap.String("endpoint", endpoint), zap.Error(err)}
	if status := upstream.StatusCode(err); status != 0 {
		fields = append(fields, zap.Int("upstream_status", status))
	}
	logger.Error("upstream call failed", fields...)
}
