package models

import "time"

// ETLActionRecord is one row of the ETL trigger audit trail.
type ETLActionRecord struct {
	ID             string           `db:"id" json:"id" validate:"required"`
	Action         ETLAction        `db:"action" json:"action" validate:"required,oneof=full incremental clear_stuck force_clear"`
	Outcome        ETLActionOutcome `db:"outcome" json:"outcome" validate:"required,oneof=success failed"`
	UpstreamStatus *int             `db:"upstream_status" json:"upstream_status,omitempty"`
	ErrorMessage   *string          `db:"error_message" json:"error_message,omitempty"`
	ClientIP       string           `db:"client_ip" json:"client_ip"`
	RequestID      string           `db:"request_id" json:"request_id"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
}
