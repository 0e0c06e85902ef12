package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/monev-api/internal/models"
)

// ETLActionRepository persists the audit trail of ETL control calls.
type ETLActionRepository struct {
	db *sqlx.DB
}

// NewETLActionRepository constructs the repository.
func NewETLActionRepository(db *sqlx.DB) *ETLActionRepository {
	return &ETLActionRepository{db: db}
}

// Create inserts an action row, generating id and timestamp when unset.
func (r *ETLActionRepository) Create(ctx context.Context, record *models.ETLActionRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO etl_actions (id, action, outcome, upstream_status, error_message, client_ip, request_id, created_at)
VALUES (:id, :action, :outcome, :upstream_status, :error_message, :client_ip, :request_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("create etl action: %w", err)
	}
	return nil
}

// ListRecent returns up to limit actions, newest first.
func (r *ETLActionRepository) ListRecent(ctx context.Context, limit int) ([]models.ETLActionRecord, error) {
	const query = `SELECT id, action, outcome, upstream_status, error_message, client_ip, request_id, created_at
FROM etl_actions ORDER BY created_at DESC LIMIT $1`
	records := []models.ETLActionRecord{}
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("list etl actions: %w", err)
	}
	return records, nil
}
