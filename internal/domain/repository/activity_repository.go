package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
)

// The daily-activity repositories are the report aggregator's read surface:
// every query is scoped by tenant and a [from, to) time range covering one
// local calendar day.

// OrderRepository defines the interface for sales order reads
type OrderRepository interface {
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.Order, error)
}

// PaymentRepository defines the interface for payment reads
type PaymentRepository interface {
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.Payment, error)
}

// ExpenseRepository defines the interface for expense reads
type ExpenseRepository interface {
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.Expense, error)
}

// CashMovementRepository defines the interface for cash movement reads
type CashMovementRepository interface {
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.CashMovement, error)
}

// DebtPaymentRepository defines the interface for debt payment reads
type DebtPaymentRepository interface {
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.DebtPayment, error)
}

// VendorRepository defines the interface for vendor reads
type VendorRepository interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Vendor, error)
}

// ProductRepository defines the interface for product reads
type ProductRepository interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Product, error)
}

// CustomerRepository defines the interface for customer reads
type CustomerRepository interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Customer, error)
}
