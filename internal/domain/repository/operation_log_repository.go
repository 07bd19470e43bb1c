package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
)

// OperationLogRepository defines the interface for the append-only execution
// audit trail. Entries are created exactly once per attempt and never mutated.
type OperationLogRepository interface {
	// Append records one execution attempt
	Append(ctx context.Context, entry *entity.OperationLogEntry) error

	// HasEntryInWindow reports whether a non-failed entry exists for the
	// tenant/operation with an executed time in [from, to). This is the
	// at-most-once check: failed entries are excluded so the next tick
	// naturally retries them.
	HasEntryInWindow(ctx context.Context, tenantID uuid.UUID, opType enum.OperationType, from, to time.Time) (bool, error)

	// ListRecent retrieves the tenant's most recent entries, newest first
	ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]entity.OperationLogEntry, error)
}
