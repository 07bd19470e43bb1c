package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	domainRepo "github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

// Daily-activity read repositories backing the report aggregator. Each query
// is tenant-scoped and bounded by a half-open [from, to) time range.

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("order_date >= ? AND order_date < ?", from, to).
		Order("order_date ASC").
		Find(&orders).Error
	return orders, err
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("paid_at >= ? AND paid_at < ?", from, to).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("spent_at >= ? AND spent_at < ?", from, to).
		Order("spent_at ASC").
		Find(&expenses).Error
	return expenses, err
}

type cashMovementRepository struct {
	db *gorm.DB
}

// NewCashMovementRepository creates a new cash movement repository
func NewCashMovementRepository(db *gorm.DB) domainRepo.CashMovementRepository {
	return &cashMovementRepository{db: db}
}

func (r *cashMovementRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.CashMovement, error) {
	var movements []entity.CashMovement
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("moved_at >= ? AND moved_at < ?", from, to).
		Order("moved_at ASC").
		Find(&movements).Error
	return movements, err
}

type debtPaymentRepository struct {
	db *gorm.DB
}

// NewDebtPaymentRepository creates a new debt payment repository
func NewDebtPaymentRepository(db *gorm.DB) domainRepo.DebtPaymentRepository {
	return &debtPaymentRepository{db: db}
}

func (r *debtPaymentRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.DebtPayment, error) {
	var payments []entity.DebtPayment
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("paid_at >= ? AND paid_at < ?", from, to).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) domainRepo.VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Order("name ASC").
		Find(&vendors).Error
	return vendors, err
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Order("name ASC").
		Find(&customers).Error
	return customers, err
}
