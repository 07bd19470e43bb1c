package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
)

// ScheduleConfigRepository defines the interface for schedule configuration access.
// A missing config means automation is disabled for that tenant, not an error.
type ScheduleConfigRepository interface {
	// GetByTenant retrieves the schedule config for a tenant, or nil if none exists
	GetByTenant(ctx context.Context, tenantID uuid.UUID) (*entity.ScheduleConfig, error)

	// Upsert creates or replaces the tenant's schedule config
	Upsert(ctx context.Context, cfg *entity.ScheduleConfig) error

	// ListEnabled retrieves every config with at least one automation flag on,
	// across all tenants (the orchestrator's per-tick working set)
	ListEnabled(ctx context.Context) ([]entity.ScheduleConfig, error)
}
