package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/monev-api/internal/dto"
	"github.com/noah-isme/monev-api/internal/service"
	"github.com/noah-isme/monev-api/pkg/response"
)

type tpSummaryExporter interface {
	ExportTPSummary(ctx context.Context, req service.ExportRequest) (*service.ExportFile, error)
}

// ExportHandler streams teacher-performance summary exports.
type ExportHandler struct {
	exports tpSummaryExporter
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(exports tpSummaryExporter) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// TPSummary godoc
// @Summary Export the teacher performance summary
// @Tags TeacherPerformance
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "csv or pdf"
// @Param search query string false "Search term"
// @Param sort_by query string false "Sort column"
// @Param sort_order query string false "asc or desc"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /tp-etl/summary/export [get]
func (h *ExportHandler) TPSummary(c *gin.Context) {
	var query dto.TPEtlExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err))
		return
	}
	file, err := h.exports.ExportTPSummary(c.Request.Context(), service.ExportRequest{
		Format:    query.Format,
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	})
	if err != nil {
		response.Error(c, upstreamError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Header("X-Export-Rows", strconv.Itoa(file.Rows))
	c.Header("X-Export-Truncated", strconv.FormatBool(file.Truncated))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
