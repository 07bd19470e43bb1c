package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	domainRepo "github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type scheduleConfigRepository struct {
	db *gorm.DB
}

// NewScheduleConfigRepository creates a new schedule config repository
func NewScheduleConfigRepository(db *gorm.DB) domainRepo.ScheduleConfigRepository {
	return &scheduleConfigRepository{db: db}
}

func (r *scheduleConfigRepository) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*entity.ScheduleConfig, error) {
	var cfg entity.ScheduleConfig
	err := r.db.WithContext(ctx).Scopes(TenantScope(tenantID)).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *scheduleConfigRepository) Upsert(ctx context.Context, cfg *entity.ScheduleConfig) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"auto_open_enabled", "auto_close_enabled",
			"open_hour", "open_minute", "close_hour", "close_minute",
			"active_days", "timezone", "updated_at",
		}),
	}).Create(cfg).Error
}

func (r *scheduleConfigRepository) ListEnabled(ctx context.Context) ([]entity.ScheduleConfig, error) {
	var configs []entity.ScheduleConfig
	err := r.db.WithContext(ctx).
		Where("auto_open_enabled = ? OR auto_close_enabled = ?", true, true).
		Find(&configs).Error
	return configs, err
}
