package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/monev-api/internal/dto"
	"github.com/noah-isme/monev-api/internal/models"
	"github.com/noah-isme/monev-api/internal/service"
	"github.com/noah-isme/monev-api/pkg/middleware/requestid"
	"github.com/noah-isme/monev-api/pkg/response"
)

const (
	defaultLogsLimit  = 50
	defaultLogsOffset = 0
)

type etlService interface {
	GetETLStatus(ctx context.Context) (models.ETLStatus, error)
	GetETLLogs(ctx context.Context, limit, offset int) ([]models.ETLLog, error)
	Trigger(ctx context.Context, action models.ETLAction) (json.RawMessage, error)
}

type etlActionLog interface {
	Record(ctx context.Context, in service.ETLActionInput)
	List(ctx context.Context, limit int) ([]models.ETLActionRecord, error)
}

// ETLHandler exposes ETL status, logs and the operator control calls.
type ETLHandler struct {
	etl     etlService
	actions etlActionLog
}

// NewETLHandler constructs an ETLHandler. actions may be nil.
func NewETLHandler(etl etlService, actions etlActionLog) *ETLHandler {
	return &ETLHandler{etl: etl, actions: actions}
}

// Status godoc
// @Summary ETL process status
// @Tags ETL
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /etl/status [get]
func (h *ETLHandler) Status(c *gin.Context) {
	status, err := h.etl.GetETLStatus(c.Request.Context())
	if err != nil {
		response.Error(c, upstreamError(err))
		return
	}
	response.JSON(c, http.StatusOK, status, nil)
}

// Logs godoc
// @Summary ETL log history
// @Tags ETL
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Envelope
// @Router /etl/logs [get]
func (h *ETLHandler) Logs(c *gin.Context) {
	query := dto.ETLLogsQuery{Limit: defaultLogsLimit, Offset: defaultLogsOffset}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err))
		return
	}
	logs, err := h.etl.GetETLLogs(c.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		response.Error(c, upstreamError(err))
		return
	}
	response.JSON(c, http.StatusOK, dto.ETLLogsResponse{Logs: logs, Limit: query.Limit, Offset: query.Offset}, nil)
}

// RunFull godoc
// @Summary Start a full ETL run
// @Tags ETL
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /etl/run/full [post]
func (h *ETLHandler) RunFull(c *gin.Context) {
	h.trigger(c, models.ETLActionFull)
}

// RunIncremental godoc
// @Summary Start an incremental ETL run
// @Tags ETL
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /etl/run/incremental [post]
func (h *ETLHandler) RunIncremental(c *gin.Context) {
	h.trigger(c, models.ETLActionIncremental)
}

// ClearStuck godoc
// @Summary Clear stuck ETL runs
// @Tags ETL
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /etl/clear-stuck [post]
func (h *ETLHandler) ClearStuck(c *gin.Context) {
	h.trigger(c, models.ETLActionClearStuck)
}

// ForceClear godoc
// @Summary Force-clear all in-flight ETL runs
// @Tags ETL
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /etl/force-clear [post]
func (h *ETLHandler) ForceClear(c *gin.Context) {
	h.trigger(c, models.ETLActionForceClear)
}

// Actions godoc
// @Summary Recent ETL control calls
// @Tags ETL
// @Produce json
// @Param limit query int false "Number of records" default(20)
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /etl/actions [get]
func (h *ETLHandler) Actions(c *gin.Context) {
	var query dto.ETLActionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if h.actions == nil {
		response.Error(c, service.ErrActionLogDisabled)
		return
	}
	records, err := h.actions.List(c.Request.Context(), query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

func (h *ETLHandler) trigger(c *gin.Context, action models.ETLAction) {
	body, err := h.etl.Trigger(c.Request.Context(), action)
	if h.actions != nil {
		h.actions.Record(c.Request.Context(), service.ETLActionInput{
			Action:    action,
			Err:       err,
			ClientIP:  c.ClientIP(),
			RequestID: requestid.Value(c),
		})
	}
	if err != nil {
		response.Error(c, upstreamError(err))
		return
	}

	payload := dto.ETLTriggerResponse{Action: string(action)}
	if len(body) > 0 {
		payload.Upstream = body
	}
	response.JSON(c, http.StatusOK, payload, nil)
}
