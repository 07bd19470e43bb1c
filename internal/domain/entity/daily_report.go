package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyReport is the immutable snapshot produced by one register closing.
// One row per (tenant, report date, register); created once by the close
// workflow and never modified.
type DailyReport struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TenantID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_reports_tenant_date" json:"tenant_id"`
	RegisterID        uuid.UUID       `gorm:"type:uuid;not null" json:"register_id"`
	ReportDate        time.Time       `gorm:"type:date;not null;index:idx_reports_tenant_date" json:"report_date"`
	OpeningBalance    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"opening_balance"`
	TotalIncome       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_income"`
	TotalExpenses     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_expenses"`
	TotalDebtPayments decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_debt_payments"`
	NetProfit         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"net_profit"`
	ClosingBalance    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"closing_balance"`
	MovementCount     int             `gorm:"default:0" json:"movement_count"`
	OrderCount        int             `gorm:"default:0" json:"order_count"`
	PaymentCount      int             `gorm:"default:0" json:"payment_count"`
	ExpenseCount      int             `gorm:"default:0" json:"expense_count"`
	Payload           ReportPayload   `gorm:"type:jsonb" json:"payload"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Tenant   Tenant       `gorm:"foreignKey:TenantID" json:"-"`
	Register CashRegister `gorm:"foreignKey:RegisterID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new report
func (r *DailyReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailyReport model
func (DailyReport) TableName() string {
	return "daily_reports"
}

// ReportPayload is the structured detail embedded verbatim in a DailyReport:
// every transaction of the day plus the per-vendor statistics.
type ReportPayload struct {
	Orders        []Order        `json:"orders"`
	Payments      []Payment      `json:"payments"`
	Expenses      []Expense      `json:"expenses"`
	DebtPayments  []DebtPayment  `json:"debt_payments"`
	CashMovements []CashMovement `json:"cash_movements"`
	VendorStats   []VendorStats  `json:"vendor_stats"`
	Summary       ReportSummary  `json:"summary"`
}

// ReportSummary holds the per-day record counts.
type ReportSummary struct {
	OrderCount       int `json:"order_count"`
	PaymentCount     int `json:"payment_count"`
	ExpenseCount     int `json:"expense_count"`
	DebtPaymentCount int `json:"debt_payment_count"`
	MovementCount    int `json:"movement_count"`
	VendorCount      int `json:"vendor_count"`
	ProductCount     int `json:"product_count"`
	CustomerCount    int `json:"customer_count"`
}

// VendorStats are the computed per-vendor figures for one report day.
// Only vendors with at least one order that day appear in a report.
// Monetary figures carry 2 decimal places, rates carry 1.
type VendorStats struct {
	VendorID              uuid.UUID       `json:"vendor_id"`
	VendorName            string          `json:"vendor_name"`
	CommissionRate        decimal.Decimal `json:"commission_rate"`
	TotalOrders           int             `json:"total_orders"`
	CompletedOrders       int             `json:"completed_orders"`
	CollectedOrders       int             `json:"collected_orders"`
	TotalSales            decimal.Decimal `json:"total_sales"`
	EstimatedProfit       decimal.Decimal `json:"estimated_profit"`
	Commission            decimal.Decimal `json:"commission"`
	AverageOrderValue     decimal.Decimal `json:"average_order_value"`
	CompletionRate        decimal.Decimal `json:"completion_rate"`
	PaymentCollectionRate decimal.Decimal `json:"payment_collection_rate"`
}

// Scan implements the sql.Scanner interface for ReportPayload
func (p *ReportPayload) Scan(value interface{}) error {
	if value == nil {
		*p = ReportPayload{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan ReportPayload: unsupported type")
	}

	return json.Unmarshal(bytes, p)
}

// Value implements the driver.Valuer interface for ReportPayload
func (p ReportPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}
