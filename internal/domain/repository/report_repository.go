package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
)

// DailyReportRepository defines the interface for closing-report access
type DailyReportRepository interface {
	// Create persists a new daily report
	Create(ctx context.Context, report *entity.DailyReport) error

	// GetByID retrieves a report by ID, or nil if none exists
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyReport, error)

	// ListByDate retrieves the tenant's reports for one calendar date
	// (multiple closings on the same day each have their own row)
	ListByDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]entity.DailyReport, error)
}
