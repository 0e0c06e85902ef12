package handler

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/monev-api/internal/dto"
	"github.com/noah-isme/monev-api/internal/service"
	"github.com/noah-isme/monev-api/pkg/response"
)

type tpEtlService interface {
	GetTPEtlSummaryRaw(ctx context.Context, params service.TPEtlSummaryParams) (json.RawMessage, error)
	GetTPEtlUserCoursesRaw(ctx context.Context, userID int64) (json.RawMessage, error)
	GetTPEtlDetailRaw(ctx context.Context, params service.TPEtlDetailParams) (json.RawMessage, error)
	GetTPEtlDetailSummaryRaw(ctx context.Context, userID, courseID int64) (json.RawMessage, error)
}

// TPEtlHandler exposes the teacher-performance ETL reads. Upstream bodies are written back byte-for-byte.
type TPEtlHandler struct {
	tp tpEtlService
}

// NewTPEtlHandler constructs a TPEtlHandler.
func NewTPEtlHandler(tp tpEtlService) *TPEtlHandler {
	return &TPEtlHandler{tp: tp}
}

// Summary godoc
// @Summary Teacher performance summary
// @Tags TeacherPerformance
// @Produce json
// @Param page query int false "Page, forwarded as given" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort_by query string false "Sort column" default(created_at)
// @Param sort_order query string false "asc or desc" default(desc)
// @Success 200 {object} models.APIResponse[[]models.TPEtlSummaryRow]
// @Router /tp-etl/summary [get]
func (h *TPEtlHandler) Summary(c *gin.Context) {
	var query dto.TPEtlSummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err))
		return
	}
	body, err := h.tp.GetTPEtlSummaryRaw(c.Request.Context(), service.TPEtlSummaryParams{
		Page:      query.Page,
		Limit:     query.Limit,
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	})
	if err != nil {
		response.Error(c, upstreamError(err))
		return
	}
	response.Passthrough(c, body)
}

// UserCourses godoc
// @Summary Courses of one teacher
// @Tags TeacherPerformance
// @Produce json
// @Param user_id query int true "Teacher user ID"
// @Success 200 {object} models.APIResponse[[]models.TPEtlUserCourse]
// @Failure 400 {object} response.Envelope
// @Router /tp-etl/user-courses [get]
func (h *TPEtlHandler) UserCourses(c *gin.Context) {
	var query dto.TPEtlUserCoursesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err))
		return
	}
	body, err := h.tp.GetTPEtlUserCoursesRaw(c.Request.Context(), *query.UserID)
	if err != nil {
		response.Error(c, upstreamError(err))
		return
	}
	response.Passthrough(c, body)
}

// Detail godoc
// @Summary Teacher performance activity rows
// @Tags TeacherPerformance
// @Produce json
// @Param page query int false "Page, forwarded as given" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Search term"
// @Param sort_by query string false "Sort column" default(id)
// @Param sort_order query string false "asc or desc" default(desc)
// @Param user_id query int false "Teacher user ID"
// @Param course_id query int false "Course ID"
// @Success 200 {object} models.APIResponse[[]models.TPEtlDetailRow]
// @Router /tp-etl/detail [get]
func (h *TPEtlHandler) Detail(c *gin.Context) {
	var query dto.TPEtlDetailQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, bindError(err))
		return
	}
	body, err := h.tp.GetTPEtlDetailRaw(c.Request.Context(), service.TPEtlDetailParams{
		Page:      query.Page,
		Limit:     query.Limit,
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		UserID:    query.UserID,
		CourseID:  query.CourseID,
	})
	if err != nil {
		response.Error(c, upstreamError(err))
		return
	}
	response.Passthrough(c, body)
}

// DetailSummary godoc
// @Summary Aggregate for one teacher and course
// @Tags TeacherPerformance
// @Produce json
// @Param user_id path int true "Teacher user ID"
// @Param course_id path int true "Course ID"
// @Success 200 {object} models.APIResponse[models.TPEtlDetailSummary]
// @Failure 404 {object} response.Envelope
// @Router /tp-etl/detail/{user_id}/{course_id}/summary [get]
func (h *TPEtlHandler) DetailSummary(c *gin.Context) {
	var uri dto.TPEtlDetailSummaryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, bindError(err))
		return
	}
	body, err := h.tp.GetTPEtlDetailSummaryRaw(c.Request.Context(), uri.UserID, uri.CourseID)
	if err != nil {
		response.Error(c, upstreamError(err))
		return
	}
	response.Passthrough(c, body)
}
