package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
)

// OperationLogEntry is an immutable record of one automatic execution attempt.
// Rows are append-only: never updated, never deleted. The (tenant, operation,
// local calendar day) tuple doubles as the scheduler's deduplication key.
type OperationLogEntry struct {
	ID            uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID      uuid.UUID            `gorm:"type:uuid;not null;index:idx_oplog_tenant_type" json:"tenant_id"`
	OperationType enum.OperationType   `gorm:"size:20;not null;index:idx_oplog_tenant_type" json:"operation_type"`
	Status        enum.OperationStatus `gorm:"size:20;not null" json:"status"`
	ScheduledTime time.Time            `gorm:"not null" json:"scheduled_time"`
	ExecutedTime  time.Time            `gorm:"not null;index" json:"executed_time"`
	RegisterID    *uuid.UUID           `gorm:"type:uuid" json:"register_id,omitempty"`
	ReportID      *uuid.UUID           `gorm:"type:uuid" json:"report_id,omitempty"`
	ErrorMessage  string               `gorm:"type:text" json:"error_message,omitempty"`
	Notes         string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// TableName returns the table name for the OperationLogEntry model
func (OperationLogEntry) TableName() string {
	return "operation_log_entries"
}
