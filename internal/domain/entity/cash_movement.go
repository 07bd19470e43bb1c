package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashMovement is an immutable event in the register's cash ledger.
// Movements are never modified or deleted; corrections create inverse entries.
type CashMovement struct {
	ID          uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID              `gorm:"type:uuid;not null;index" json:"tenant_id"`
	RegisterID  *uuid.UUID             `gorm:"type:uuid;index" json:"register_id,omitempty"`
	Direction   enum.MovementDirection `gorm:"size:10;not null" json:"direction"`
	AmountUsd   decimal.Decimal        `gorm:"type:decimal(14,2);not null" json:"amount_usd"`
	Method      string                 `gorm:"size:50" json:"method"`
	Description string                 `gorm:"size:255" json:"description,omitempty"`
	MovedAt     time.Time              `gorm:"not null;index" json:"moved_at"`
	CreatedAt   time.Time              `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new cash movement
func (m *CashMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashMovement model
func (CashMovement) TableName() string {
	return "cash_movements"
}

// SignedAmount returns the amount with direction applied: inflows positive,
// outflows negative.
func (m *CashMovement) SignedAmount() decimal.Decimal {
	if m.Direction == enum.MovementOut {
		return m.AmountUsd.Neg()
	}
	return m.AmountUsd
}
