package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/monev-api/internal/models"
	"github.com/noah-isme/monev-api/pkg/datefmt"
	appErrors "github.com/noah-isme/monev-api/pkg/errors"
	"github.com/noah-isme/monev-api/pkg/export"
)

const (
	exportPageSize       = 100
	defaultExportMaxRows = 5000
)

var tpSummaryHeaders = []string{"User ID", "Name", "Email", "Courses", "Activities", "Logins", "Graded Items", "Average Grade", "Updated"}

type tpSummaryPager interface {
	GetTPEtlSummary(ctx context.Context, params TPEtlSummaryParams) (*models.APIResponse[[]models.TPEtlSummaryRow], error)
}

// ExportRequest selects the format and ordering of a summary export.
type ExportRequest struct {
	Format    string `validate:"required,oneof=csv pdf"`
	Search    string
	SortBy    string
	SortOrder string
}

// ExportFile is a rendered export ready to be streamed.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	Rows        int
	Truncated   bool
}

// ExportServiceConfig tunes exports.
type ExportServiceConfig struct {
	Locale  string
	MaxRows int
}

// ExportService renders the teacher-performance summary into CSV or PDF.
type ExportService struct {
	pager     tpSummaryPager
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	dateOpts  datefmt.Options
	maxRows   int
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(pager tpSummaryPager, cfg ExportServiceConfig, logger *zap.Logger) *ExportService {
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = defaultExportMaxRows
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		pager:     pager,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		dateOpts:  datefmt.Options{Locale: cfg.Locale, Style: datefmt.StyleMedium, WithTime: true},
		maxRows:   cfg.MaxRows,
		validator: validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// ExportTPSummary walks every summary page and renders the rows.
func (s *ExportService) ExportTPSummary(ctx context.Context, req ExportRequest) (*ExportFile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	rows, truncated, err := s.collect(ctx, req)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: tpSummaryHeaders, Rows: make([]map[string]string, 0, len(rows))}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"User ID":       strconv.FormatInt(row.UserID, 10),
			"Name":          row.FullName(),
			"Email":         row.Email,
			"Courses":       strconv.FormatInt(row.TotalCourses, 10),
			"Activities":    strconv.FormatInt(row.TotalActivities, 10),
			"Logins":        strconv.FormatInt(row.TotalLogins, 10),
			"Graded Items":  strconv.FormatInt(row.TotalGradedItems, 10),
			"Average Grade": strconv.FormatFloat(row.AverageGrade, 'f', 2, 64),
			"Updated":       datefmt.Format(row.UpdatedAt, s.dateOpts),
		})
	}

	generatedAt := s.now()
	file := &ExportFile{Rows: len(rows), Truncated: truncated}
	base := fmt.Sprintf("tp-etl-summary-%s", generatedAt.UTC().Format("20060102-150405"))

	switch req.Format {
	case "pdf":
		subtitle := datefmt.FormatTime(generatedAt, s.dateOpts)
		file.Content, err = s.pdf.Render(dataset, "Teacher Performance Summary", subtitle)
		file.Filename = base + ".pdf"
		file.ContentType = "application/pdf"
	default:
		file.Content, err = s.csv.Render(dataset)
		file.Filename = base + ".csv"
		file.ContentType = "text/csv"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.logger.Info("tp summary exported",
		zap.String("format", req.Format),
		zap.Int("rows", file.Rows),
		zap.Bool("truncated", truncated),
	)
	return file, nil
}

func (s *ExportService) collect(ctx context.Context, req ExportRequest) ([]models.TPEtlSummaryRow, bool, error) {
	var rows []models.TPEtlSummaryRow
	limit := exportPageSize
	for page := 1; ; page++ {
		current := page
		resp, err := s.pager.GetTPEtlSummary(ctx, TPEtlSummaryParams{
			Page:      &current,
			Limit:     &limit,
			Search:    req.Search,
			SortBy:    req.SortBy,
			SortOrder: req.SortOrder,
		})
		if err != nil {
			return nil, false, err
		}
		rows = append(rows, resp.Data...)
		if len(rows) >= s.maxRows {
			more := len(rows) > s.maxRows || (resp.Pagination != nil && resp.Pagination.HasNextPage)
			return rows[:s.maxRows], more, nil
		}
		if resp.Pagination == nil || !resp.Pagination.HasNextPage || len(resp.Data) == 0 {
			return rows, false, nil
		}
	}
}
