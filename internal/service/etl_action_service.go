package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/monev-api/internal/models"
	"github.com/noah-isme/monev-api/internal/upstream"
	appErrors "github.com/noah-isme/monev-api/pkg/errors"
	"github.com/noah-isme/monev-api/pkg/jobs"
)

const (
	defaultActionListLimit = 20
	maxActionListLimit     = 100
)

// ErrActionLogDisabled is returned when the audit trail has no storage.
var ErrActionLogDisabled = appErrors.Clone(appErrors.ErrFeatureDisabled, "etl action log is disabled")

type etlActionRepository interface {
	Create(ctx context.Context, record *models.ETLActionRecord) error
	ListRecent(ctx context.Context, limit int) ([]models.ETLActionRecord, error)
}

// ETLActionInput describes a finished trigger call.
type ETLActionInput struct {
	Action    models.ETLAction
	Err       error
	ClientIP  string
	RequestID string
}

// ETLActionService keeps the audit trail of ETL control calls. Without a repository it only counts metrics.
type ETLActionService struct {
	repo      etlActionRepository
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
	writer    *jobs.Queue[*models.ETLActionRecord]
}

// NewETLActionService constructs the audit service. repo may be nil when the audit trail is disabled.
func NewETLActionService(repo etlActionRepository, metrics *MetricsService, logger *zap.Logger) *ETLActionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ETLActionService{
		repo:      repo,
		metrics:   metrics,
		validator: validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// Enabled reports whether records are persisted.
func (s *ETLActionService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Record stores the outcome of a trigger call. Storage failures are logged, never returned.
func (s *ETLActionService) Record(ctx context.Context, in ETLActionInput) {
	if s == nil {
		return
	}
	record := &models.ETLActionRecord{
		ID:        uuid.NewString(),
		Action:    in.Action,
		Outcome:   models.ETLActionSucceeded,
		ClientIP:  in.ClientIP,
		RequestID: in.RequestID,
		CreatedAt: s.now().UTC(),
	}
	if in.Err != nil {
		record.Outcome = models.ETLActionFailed
		msg := in.Err.Error()
		record.ErrorMessage = &msg
		if status := upstream.StatusCode(in.Err); status != 0 {
			record.UpstreamStatus = &status
		}
	}
	s.metrics.IncETLAction(string(record.Action), string(record.Outcome))

	if !s.Enabled() {
		return
	}
	if err := s.validator.Struct(record); err != nil {
		s.logger.Warn("etl action record rejected", zap.String("action", string(in.Action)), zap.Error(err))
		return
	}
	if s.writer != nil {
		if err := s.writer.Enqueue(record); err == nil {
			return
		}
	}
	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to persist etl action", zap.String("action", string(in.Action)), zap.Error(err))
	}
}

// StartAsync moves persistence onto a background worker pool. Records are written
// synchronously again once the pool is stopped.
func (s *ETLActionService) StartAsync(ctx context.Context, cfg jobs.QueueConfig) {
	if !s.Enabled() || s.writer != nil {
		return
	}
	if cfg.Logger == nil {
		cfg.Logger = s.logger
	}
	s.writer = jobs.NewQueue("etl_actions", func(ctx context.Context, job jobs.Job[*models.ETLActionRecord]) error {
		return s.repo.Create(ctx, job.Payload)
	}, cfg)
	s.writer.Start(ctx)
}

// Stop flushes queued records.
func (s *ETLActionService) Stop() {
	if s == nil || s.writer == nil {
		return
	}
	s.writer.Stop()
}

// List returns the most recent actions, newest first.
func (s *ETLActionService) List(ctx context.Context, limit int) ([]models.ETLActionRecord, error) {
	if !s.Enabled() {
		return nil, ErrActionLogDisabled
	}
	if limit <= 0 {
		limit = defaultActionListLimit
	}
	if limit > maxActionListLimit {
		limit = maxActionListLimit
	}
	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list etl actions")
	}
	return records, nil
}
