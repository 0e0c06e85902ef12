package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/monev-api/pkg/errors"
	"github.com/noah-isme/monev-api/pkg/response"
)

// RateCounter counts hits for a key within a window.
type RateCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitedObserver is notified when a request is rejected.
type RateLimitedObserver interface {
	IncRateLimited(scope string)
}

// RateLimitConfig configures RateLimit.
type RateLimitConfig struct {
	Counter  RateCounter
	Observer RateLimitedObserver
	Limit    int
	Window   time.Duration
	Logger   *zap.Logger
}

// RateLimit allows Limit requests per client IP and scope within Window. Counter errors fail open.
func RateLimit(cfg RateLimitConfig, scope string) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if cfg.Counter == nil || cfg.Limit <= 0 || cfg.Window <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("monev:ratelimit:%s:%s", scope, c.ClientIP())
		count, err := cfg.Counter.Hit(c.Request.Context(), key, cfg.Window)
		if err != nil {
			cfg.Logger.Warn("rate limiter unavailable", zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}

		if count > int64(cfg.Limit) {
			if cfg.Observer != nil {
				cfg.Observer.IncRateLimited(scope)
			}
			c.Header("Retry-After", fmt.Sprintf("%d", int(cfg.Window.Seconds())))
			response.Error(c, appErrors.Clone(appErrors.ErrRateLimited, fmt.Sprintf("%s is limited to %d calls per %s", scope, cfg.Limit, cfg.Window)))
			c.Abort()
			return
		}

		c.Next()
	}
}
