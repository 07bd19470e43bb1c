package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	domainRepo "github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type dailyReportRepository struct {
	db *gorm.DB
}

// NewDailyReportRepository creates a new daily report repository
func NewDailyReportRepository(db *gorm.DB) domainRepo.DailyReportRepository {
	return &dailyReportRepository{db: db}
}

func (r *dailyReportRepository) Create(ctx context.Context, report *entity.DailyReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *dailyReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyReport, error) {
	var report entity.DailyReport
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *dailyReportRepository) ListByDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]entity.DailyReport, error) {
	var reports []entity.DailyReport
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("report_date = ?", date.Format("2006-01-02")).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
