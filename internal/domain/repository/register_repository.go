package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ErrRegisterNotOpen is returned by conditional close operations when the
// register was not in the open state anymore (it lost the check-then-act race
// or was already closed).
var ErrRegisterNotOpen = errors.New("register is not open")

// RegisterRepository defines the interface for cash register state access
type RegisterRepository interface {
	// Create opens a new register row
	Create(ctx context.Context, register *entity.CashRegister) error

	// GetByID retrieves a register by ID, or nil if none exists
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashRegister, error)

	// GetCurrentOpen retrieves the tenant's open register, or nil if none is open
	GetCurrentOpen(ctx context.Context, tenantID uuid.UUID) (*entity.CashRegister, error)

	// Close transitions a register to closed, stamping the final balance,
	// closing time and (for manual closes) the acting user. The update is
	// conditional on the register still being open; if it is not,
	// ErrRegisterNotOpen is returned and nothing changes.
	Close(ctx context.Context, id uuid.UUID, finalBalance decimal.Decimal, closedAt time.Time, closedBy *uuid.UUID) error
}

// CloseoutRepository persists one closing event atomically: the daily report
// insert and the register's open→closed transition either both commit or
// neither does.
type CloseoutRepository interface {
	CloseWithReport(ctx context.Context, report *entity.DailyReport, closedAt time.Time, closedBy *uuid.UUID) error
}
