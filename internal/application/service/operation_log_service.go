package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/repository"
)

const (
	defaultLogLimit = 20
	maxLogLimit     = 100
)

// OperationLogService exposes the automation audit trail to the admin surface
type OperationLogService struct {
	logRepo repository.OperationLogRepository
}

// NewOperationLogService creates a new operation log service
func NewOperationLogService(logRepo repository.OperationLogRepository) *OperationLogService {
	return &OperationLogService{logRepo: logRepo}
}

// ListRecent retrieves the tenant's most recent log entries, newest first.
// The limit is clamped to [1, 100] with a default of 20.
func (s *OperationLogService) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]entity.OperationLogEntry, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	return s.logRepo.ListRecent(ctx, tenantID, limit)
}
