package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/application/schedule"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	"github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// profitMarginRate is the assumed gross margin on vendor sales: estimated
// profit is 30% of sales. Policy constant, not derived from data.
var profitMarginRate = decimal.NewFromFloat(0.30)

var oneHundred = decimal.NewFromInt(100)

// ReportService aggregates one local calendar day of financial activity into
// the payload persisted with a DailyReport.
type ReportService struct {
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	expenseRepo  repository.ExpenseRepository
	movementRepo repository.CashMovementRepository
	debtRepo     repository.DebtPaymentRepository
	vendorRepo   repository.VendorRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	reportRepo   repository.DailyReportRepository
}

// NewReportService creates a new report service
func NewReportService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	expenseRepo repository.ExpenseRepository,
	movementRepo repository.CashMovementRepository,
	debtRepo repository.DebtPaymentRepository,
	vendorRepo repository.VendorRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	reportRepo repository.DailyReportRepository,
) *ReportService {
	return &ReportService{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		expenseRepo:  expenseRepo,
		movementRepo: movementRepo,
		debtRepo:     debtRepo,
		vendorRepo:   vendorRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		reportRepo:   reportRepo,
	}
}

// Aggregation is the computed daily snapshot before it is persisted.
type Aggregation struct {
	Payload           entity.ReportPayload
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	TotalDebtPayments decimal.Decimal
	NetProfit         decimal.Decimal
	MovementNet       decimal.Decimal
}

// Aggregate computes the full daily snapshot for the local calendar day of
// now in loc: transaction detail, totals and per-vendor statistics. Any fetch
// failure aborts the aggregation; nothing is persisted here.
func (s *ReportService) Aggregate(ctx context.Context, tenantID uuid.UUID, now time.Time, loc *time.Location) (*Aggregation, error) {
	from, to := schedule.DayBounds(now, loc)

	orders, err := s.orderRepo.ListByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	movements, err := s.movementRepo.ListByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	debtPayments, err := s.debtRepo.ListByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	vendors, err := s.vendorRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	agg := &Aggregation{
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		TotalDebtPayments: decimal.Zero,
		MovementNet:       decimal.Zero,
	}
	for _, p := range payments {
		agg.TotalIncome = agg.TotalIncome.Add(p.AmountUsd)
	}
	for _, e := range expenses {
		agg.TotalExpenses = agg.TotalExpenses.Add(e.AmountUsd)
	}
	for _, d := range debtPayments {
		agg.TotalDebtPayments = agg.TotalDebtPayments.Add(d.AmountUsd)
	}
	for i := range movements {
		agg.MovementNet = agg.MovementNet.Add(movements[i].SignedAmount())
	}
	agg.TotalIncome = agg.TotalIncome.Round(2)
	agg.TotalExpenses = agg.TotalExpenses.Round(2)
	agg.TotalDebtPayments = agg.TotalDebtPayments.Round(2)
	agg.MovementNet = agg.MovementNet.Round(2)
	agg.NetProfit = agg.TotalIncome.Sub(agg.TotalExpenses)

	agg.Payload = entity.ReportPayload{
		Orders:        orders,
		Payments:      payments,
		Expenses:      expenses,
		DebtPayments:  debtPayments,
		CashMovements: movements,
		VendorStats:   vendorStats(vendors, orders),
		Summary: entity.ReportSummary{
			OrderCount:       len(orders),
			PaymentCount:     len(payments),
			ExpenseCount:     len(expenses),
			DebtPaymentCount: len(debtPayments),
			MovementCount:    len(movements),
			VendorCount:      len(vendors),
			ProductCount:     len(products),
			CustomerCount:    len(customers),
		},
	}
	return agg, nil
}

// vendorStats computes per-vendor figures from the day's orders. Vendors
// without a single order that day are left out entirely.
func vendorStats(vendors []entity.Vendor, orders []entity.Order) []entity.VendorStats {
	stats := make([]entity.VendorStats, 0, len(vendors))
	for i := range vendors {
		v := &vendors[i]

		var (
			totalOrders int
			completed   int
			collected   int
			totalSales  = decimal.Zero
		)
		for j := range orders {
			o := &orders[j]
			if o.VendorID != v.ID {
				continue
			}
			totalOrders++
			totalSales = totalSales.Add(o.TotalUsd)
			if o.Status == enum.OrderStatusCompleted {
				completed++
			}
			if o.PaymentCollected {
				collected++
			}
		}
		if totalOrders == 0 {
			continue
		}

		totalSales = totalSales.Round(2)
		orderCount := decimal.NewFromInt(int64(totalOrders))
		estimatedProfit := totalSales.Mul(profitMarginRate).Round(2)

		stats = append(stats, entity.VendorStats{
			VendorID:              v.ID,
			VendorName:            v.Name,
			CommissionRate:        v.CommissionRate,
			TotalOrders:           totalOrders,
			CompletedOrders:       completed,
			CollectedOrders:       collected,
			TotalSales:            totalSales,
			EstimatedProfit:       estimatedProfit,
			Commission:            estimatedProfit.Mul(v.CommissionRate).Div(oneHundred).Round(2),
			AverageOrderValue:     totalSales.Div(orderCount).Round(2),
			CompletionRate:        rate(completed, totalOrders),
			PaymentCollectionRate: rate(collected, totalOrders),
		})
	}
	return stats
}

// rate returns count/total as a percentage with 1 decimal place, 0.0 when
// total is zero.
func rate(count, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).
		Mul(oneHundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
}

// BuildDailyReport aggregates the day and assembles the (unsaved) DailyReport
// row for one closing of the given register. The closing balance is the
// opening balance plus income and debt payments, minus expenses, plus the net
// of manual cash movements.
func (s *ReportService) BuildDailyReport(ctx context.Context, register *entity.CashRegister, now time.Time, loc *time.Location) (*entity.DailyReport, error) {
	agg, err := s.Aggregate(ctx, register.TenantID, now, loc)
	if err != nil {
		return nil, err
	}

	local := now.In(loc)
	reportDate := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	closing := register.OpeningBalance.
		Add(agg.TotalIncome).
		Add(agg.TotalDebtPayments).
		Sub(agg.TotalExpenses).
		Add(agg.MovementNet).
		Round(2)

	return &entity.DailyReport{
		TenantID:          register.TenantID,
		RegisterID:        register.ID,
		ReportDate:        reportDate,
		OpeningBalance:    register.OpeningBalance,
		TotalIncome:       agg.TotalIncome,
		TotalExpenses:     agg.TotalExpenses,
		TotalDebtPayments: agg.TotalDebtPayments,
		NetProfit:         agg.NetProfit,
		ClosingBalance:    closing,
		MovementCount:     agg.Payload.Summary.MovementCount,
		OrderCount:        agg.Payload.Summary.OrderCount,
		PaymentCount:      agg.Payload.Summary.PaymentCount,
		ExpenseCount:      agg.Payload.Summary.ExpenseCount,
		Payload:           agg.Payload,
	}, nil
}

// GetReport retrieves one report by ID, or nil if none exists
func (s *ReportService) GetReport(ctx context.Context, id uuid.UUID) (*entity.DailyReport, error) {
	return s.reportRepo.GetByID(ctx, id)
}

// ListReportsByDate retrieves the tenant's reports for one calendar date
func (s *ReportService) ListReportsByDate(ctx context.Context, tenantID uuid.UUID, date time.Time) ([]entity.DailyReport, error) {
	return s.reportRepo.ListByDate(ctx, tenantID, date)
}
