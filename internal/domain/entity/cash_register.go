package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashRegister is the logical cash drawer for a tenant. At most one register
// may be open per tenant at any time; the executor's precondition check
// enforces this, storage does not.
type CashRegister struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	TenantID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Status         enum.RegisterStatus `gorm:"size:20;not null;default:'open';index" json:"status"`
	OpeningBalance decimal.Decimal     `gorm:"type:decimal(14,2);not null" json:"opening_balance"`
	FinalBalance   decimal.Decimal     `gorm:"type:decimal(14,2);not null" json:"final_balance"`
	ExchangeRate   decimal.Decimal     `gorm:"type:decimal(14,4);not null" json:"exchange_rate"`
	OpenedAt       time.Time           `gorm:"not null" json:"opened_at"`
	ClosedAt       *time.Time          `json:"closed_at,omitempty"`
	// OpenedBy/ClosedBy are nil for automatic operations; manual operations
	// record the acting user.
	OpenedBy  *uuid.UUID     `gorm:"type:uuid" json:"opened_by,omitempty"`
	ClosedBy  *uuid.UUID     `gorm:"type:uuid" json:"closed_by,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new register
func (r *CashRegister) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashRegister model
func (CashRegister) TableName() string {
	return "cash_registers"
}

// IsOpen reports whether the register is currently open.
func (r *CashRegister) IsOpen() bool {
	return r.Status == enum.RegisterStatusOpen
}
