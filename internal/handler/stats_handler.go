package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/monev-api/internal/service"
)

type statsFetcher interface {
	Fetch(ctx context.Context, rawQuery string) service.StatsResult
}

// StatsHandler serves the SAS summary stats proxy.
type StatsHandler struct {
	stats statsFetcher
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(stats statsFetcher) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Summary godoc
// @Summary Summary statistics
// @Description Forwards the query string unchanged to the SAS stats endpoint. Upstream failures return a zeroed payload with status 500.
// @Tags Stats
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Failure 500 {object} models.StatsResponse
// @Router /sas/summary/stats [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	status, payload := h.stats.Fetch(c.Request.Context(), c.Request.URL.RawQuery).Collapse()
	c.Header("Cache-Control", "no-store")
	c.Data(status, "application/json", payload)
}
