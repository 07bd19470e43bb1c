package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	domainRepo "github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type operationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository creates a new operation log repository
func NewOperationLogRepository(db *gorm.DB) domainRepo.OperationLogRepository {
	return &operationLogRepository{db: db}
}

func (r *operationLogRepository) Append(ctx context.Context, entry *entity.OperationLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *operationLogRepository) HasEntryInWindow(ctx context.Context, tenantID uuid.UUID, opType enum.OperationType, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.OperationLogEntry{}).
		Scopes(TenantScope(tenantID)).
		Where("operation_type = ?", opType).
		Where("status <> ?", enum.OperationStatusFailed).
		Where("executed_time >= ? AND executed_time < ?", from, to).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *operationLogRepository) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]entity.OperationLogEntry, error) {
	var entries []entity.OperationLogEntry
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
