package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/monev-api/internal/models"
	"github.com/noah-isme/monev-api/internal/upstream"
	"github.com/noah-isme/monev-api/pkg/urltemplate"
)

const (
	defaultTPPage          = 1
	defaultTPLimit         = 10
	defaultTPSummarySortBy = "created_at"
	defaultTPDetailSortBy  = "id"
	defaultTPSortOrder     = "desc"
)

// TPEtlSummaryParams are the query parameters of the teacher-performance summary.
// Nil page or limit falls back to 1 and 10, empty sort fields to created_at desc.
// Set values are forwarded as given, out-of-range ones included.
type TPEtlSummaryParams struct {
	Page      *int
	Limit     *int
	Search    string
	SortBy    string
	SortOrder string
}

// TPEtlDetailParams are the query parameters of the teacher-performance detail list.
// Defaults match the summary except sort_by, which falls back to id. Nil ids are omitted.
type TPEtlDetailParams struct {
	Page      *int
	Limit     *int
	Search    string
	SortBy    string
	SortOrder string
	UserID    *int64
	CourseID  *int64
}

// TPEtlService wraps the read-only teacher-performance ETL endpoints.
// Parameters are forwarded without range checks; the upstream validates them.
// The Raw variants return the upstream body untouched, the typed ones decode it.
type TPEtlService struct {
	client upstreamClient
	logger *zap.Logger
}

// NewTPEtlService constructs a TPEtlService.
func NewTPEtlService(client upstreamClient, logger *zap.Logger) *TPEtlService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TPEtlService{client: client, logger: logger}
}

// GetTPEtlSummaryRaw fetches per-teacher summary rows as received.
func (s *TPEtlService) GetTPEtlSummaryRaw(ctx context.Context, params TPEtlSummaryParams) (json.RawMessage, error) {
	query := pageQuery(params.Page, params.Limit, params.Search, params.SortBy, params.SortOrder, defaultTPSummarySortBy)
	return s.get(ctx, upstream.PathTPEtlSummary, query, "tp_etl_summary")
}

// GetTPEtlSummary lists per-teacher summary rows.
func (s *TPEtlService) GetTPEtlSummary(ctx context.Context, params TPEtlSummaryParams) (*models.APIResponse[[]models.TPEtlSummaryRow], error) {
	body, err := s.GetTPEtlSummaryRaw(ctx, params)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]models.TPEtlSummaryRow](body, upstream.PathTPEtlSummary)
}

// GetTPEtlUserCoursesRaw fetches the courses a teacher is active in as received.
func (s *TPEtlService) GetTPEtlUserCoursesRaw(ctx context.Context, userID int64) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("user_id", strconv.FormatInt(userID, 10))
	return s.get(ctx, upstream.PathTPEtlUserCourses, query, "tp_etl_user_courses")
}

// GetTPEtlUserCourses lists the courses a teacher is active in.
func (s *TPEtlService) GetTPEtlUserCourses(ctx context.Context, userID int64) (*models.APIResponse[[]models.TPEtlUserCourse], error) {
	body, err := s.GetTPEtlUserCoursesRaw(ctx, userID)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]models.TPEtlUserCourse](body, upstream.PathTPEtlUserCourses)
}

// GetTPEtlDetailRaw fetches activity rows as received.
func (s *TPEtlService) GetTPEtlDetailRaw(ctx context.Context, params TPEtlDetailParams) (json.RawMessage, error) {
	query := pageQuery(params.Page, params.Limit, params.Search, params.SortBy, params.SortOrder, defaultTPDetailSortBy)
	if params.UserID != nil {
		query.Set("user_id", strconv.FormatInt(*params.UserID, 10))
	}
	if params.CourseID != nil {
		query.Set("course_id", strconv.FormatInt(*params.CourseID, 10))
	}
	return s.get(ctx, upstream.PathTPEtlDetail, query, "tp_etl_detail")
}

// GetTPEtlDetail lists activity rows, optionally narrowed to a user and course.
func (s *TPEtlService) GetTPEtlDetail(ctx context.Context, params TPEtlDetailParams) (*models.APIResponse[[]models.TPEtlDetailRow], error) {
	body, err := s.GetTPEtlDetailRaw(ctx, params)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]models.TPEtlDetailRow](body, upstream.PathTPEtlDetail)
}

// GetTPEtlDetailSummaryRaw fetches the aggregate for one (user, course) pair as received.
func (s *TPEtlService) GetTPEtlDetailSummaryRaw(ctx context.Context, userID, courseID int64) (json.RawMessage, error) {
	path, err := urltemplate.Expand(upstream.PathTPEtlDetailSummary, map[string]string{
		"user_id":   strconv.FormatInt(userID, 10),
		"course_id": strconv.FormatInt(courseID, 10),
	})
	if err != nil {
		return nil, err
	}
	return s.get(ctx, path, nil, "tp_etl_detail_summary")
}

// GetTPEtlDetailSummary fetches the aggregate for one (user, course) pair.
func (s *TPEtlService) GetTPEtlDetailSummary(ctx context.Context, userID, courseID int64) (*models.APIResponse[models.TPEtlDetailSummary], error) {
	body, err := s.GetTPEtlDetailSummaryRaw(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[models.TPEtlDetailSummary](body, upstream.PathTPEtlDetailSummary)
}

func (s *TPEtlService) get(ctx context.Context, path string, query url.Values, endpoint string) (json.RawMessage, error) {
	body, err := s.client.Do(ctx, upstream.Request{Method: http.MethodGet, Path: path, Query: query, Endpoint: endpoint})
	if err == nil && !json.Valid(body) {
		err = fmt.Errorf("%w: GET %s: body is not JSON", upstream.ErrDecode, path)
	}
	if err != nil {
		logUpstreamFailure(s.logger, endpoint, err)
		return nil, err
	}
	return json.RawMessage(body), nil
}

func decodeEnvelope[T any](body []byte, path string) (*models.APIResponse[T], error) {
	var resp models.APIResponse[T]
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", upstream.ErrDecode, path, err)
	}
	return &resp, nil
}

func pageQuery(page, limit *int, search, sortBy, sortOrder, defaultSortBy string) url.Values {
	p, l := defaultTPPage, defaultTPLimit
	if page != nil {
		p = *page
	}
	if limit != nil {
		l = *limit
	}
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	if sortOrder == "" {
		sortOrder = defaultTPSortOrder
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(p))
	query.Set("limit", strconv.Itoa(l))
	query.Set("search", search)
	query.Set("sort_by", sortBy)
	query.Set("sort_order", sortOrder)
	return query
}
