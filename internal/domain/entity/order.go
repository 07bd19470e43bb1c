package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a sales order placed through a vendor
type Order struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TenantID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	VendorID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	CustomerID       *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	InvoiceNo        string          `gorm:"size:100;unique;not null" json:"invoice_no"`
	OrderDate        time.Time       `gorm:"not null;index" json:"order_date"`
	Status           enum.OrderStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	TotalUsd         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_usd"`
	PaymentCollected bool            `gorm:"default:false" json:"payment_collected"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Tenant   Tenant    `gorm:"foreignKey:TenantID" json:"-"`
	Vendor   Vendor    `gorm:"foreignKey:VendorID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
