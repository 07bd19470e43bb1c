package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
)

// TenantRepository defines the interface for tenant data operations
type TenantRepository interface {
	// Create creates a new tenant
	Create(ctx context.Context, tenant *entity.Tenant) error

	// GetByID retrieves a tenant by ID, or nil if none exists
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// GetBySlug retrieves a tenant by slug, or nil if none exists
	GetBySlug(ctx context.Context, slug string) (*entity.Tenant, error)

	// ListActive retrieves all active tenants
	ListActive(ctx context.Context) ([]entity.Tenant, error)
}
