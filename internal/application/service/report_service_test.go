package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTotals(t *testing.T) {
	env := newTestEnv()
	tenantID := uuid.New()

	env.payments.payments = []entity.Payment{
		{TenantID: tenantID, AmountUsd: dec("200.00"), PaidAt: mondayAt(10, 0)},
		{TenantID: tenantID, AmountUsd: dec("50.50"), PaidAt: mondayAt(15, 0)},
	}
	env.expenses.expenses = []entity.Expense{
		{TenantID: tenantID, AmountUsd: dec("75.25"), SpentAt: mondayAt(11, 0)},
	}
	env.debts.payments = []entity.DebtPayment{
		{TenantID: tenantID, AmountUsd: dec("10.00"), PaidAt: mondayAt(12, 0)},
	}
	env.movements.movements = []entity.CashMovement{
		{TenantID: tenantID, Direction: enum.MovementIn, AmountUsd: dec("20.00"), MovedAt: mondayAt(13, 0)},
		{TenantID: tenantID, Direction: enum.MovementOut, AmountUsd: dec("5.00"), MovedAt: mondayAt(14, 0)},
	}

	agg, err := env.reportService().Aggregate(context.Background(), tenantID, mondayAt(18, 0), time.UTC)
	require.NoError(t, err)

	assert.True(t, agg.TotalIncome.Equal(dec("250.50")), "income %s", agg.TotalIncome)
	assert.True(t, agg.TotalExpenses.Equal(dec("75.25")))
	assert.True(t, agg.TotalDebtPayments.Equal(dec("10.00")))
	assert.True(t, agg.MovementNet.Equal(dec("15.00")))
	assert.True(t, agg.NetProfit.Equal(dec("175.25")))
	assert.Equal(t, 2, agg.Payload.Summary.PaymentCount)
	assert.Equal(t, 2, agg.Payload.Summary.MovementCount)
}

func TestAggregateScopesToLocalDay(t *testing.T) {
	env := newTestEnv()
	tenantID := uuid.New()

	env.payments.payments = []entity.Payment{
		{TenantID: tenantID, AmountUsd: dec("100.00"), PaidAt: mondayAt(10, 0)},
		// Sunday evening, outside the Monday range.
		{TenantID: tenantID, AmountUsd: dec("999.00"), PaidAt: time.Date(2025, 1, 5, 23, 0, 0, 0, time.UTC)},
		// Belongs to another tenant.
		{TenantID: uuid.New(), AmountUsd: dec("500.00"), PaidAt: mondayAt(10, 0)},
	}

	agg, err := env.reportService().Aggregate(context.Background(), tenantID, mondayAt(18, 0), time.UTC)
	require.NoError(t, err)

	assert.True(t, agg.TotalIncome.Equal(dec("100.00")), "income %s", agg.TotalIncome)
	assert.Equal(t, 1, agg.Payload.Summary.PaymentCount)
}

func TestVendorStatistics(t *testing.T) {
	env := newTestEnv()
	tenantID := uuid.New()
	busy := entity.Vendor{ID: uuid.New(), TenantID: tenantID, Name: "Carlos", CommissionRate: dec("10")}
	idle := entity.Vendor{ID: uuid.New(), TenantID: tenantID, Name: "Maria", CommissionRate: dec("15")}
	env.vendors.vendors = []entity.Vendor{busy, idle}

	env.orders.orders = []entity.Order{
		{
			TenantID: tenantID, VendorID: busy.ID, TotalUsd: dec("600.00"),
			Status: enum.OrderStatusCompleted, PaymentCollected: true, OrderDate: mondayAt(10, 0),
		},
		{
			TenantID: tenantID, VendorID: busy.ID, TotalUsd: dec("400.00"),
			Status: enum.OrderStatusPending, OrderDate: mondayAt(12, 0),
		},
	}

	agg, err := env.reportService().Aggregate(context.Background(), tenantID, mondayAt(18, 0), time.UTC)
	require.NoError(t, err)

	// Vendors without orders that day are left out entirely.
	require.Len(t, agg.Payload.VendorStats, 1)
	stats := agg.Payload.VendorStats[0]

	assert.Equal(t, busy.ID, stats.VendorID)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.Equal(t, 1, stats.CollectedOrders)
	assert.True(t, stats.TotalSales.Equal(dec("1000.00")), "sales %s", stats.TotalSales)
	assert.True(t, stats.EstimatedProfit.Equal(dec("300.00")), "profit %s", stats.EstimatedProfit)
	assert.True(t, stats.Commission.Equal(dec("30.00")), "commission %s", stats.Commission)
	assert.True(t, stats.AverageOrderValue.Equal(dec("500.00")))
	assert.True(t, stats.CompletionRate.Equal(dec("50.0")))
	assert.True(t, stats.PaymentCollectionRate.Equal(dec("50.0")))
}

func TestVendorStatisticsRounding(t *testing.T) {
	env := newTestEnv()
	tenantID := uuid.New()
	vendor := entity.Vendor{ID: uuid.New(), TenantID: tenantID, Name: "Luis", CommissionRate: dec("12.5")}
	env.vendors.vendors = []entity.Vendor{vendor}

	env.orders.orders = []entity.Order{
		{TenantID: tenantID, VendorID: vendor.ID, TotalUsd: dec("10.00"), Status: enum.OrderStatusCompleted, OrderDate: mondayAt(10, 0)},
		{TenantID: tenantID, VendorID: vendor.ID, TotalUsd: dec("10.00"), OrderDate: mondayAt(11, 0)},
		{TenantID: tenantID, VendorID: vendor.ID, TotalUsd: dec("13.33"), OrderDate: mondayAt(12, 0)},
	}

	agg, err := env.reportService().Aggregate(context.Background(), tenantID, mondayAt(18, 0), time.UTC)
	require.NoError(t, err)

	require.Len(t, agg.Payload.VendorStats, 1)
	stats := agg.Payload.VendorStats[0]

	// 33.33 * 0.30 = 9.999 -> 10.00; average 33.33/3 -> 11.11; 1/3 -> 33.3%.
	assert.True(t, stats.EstimatedProfit.Equal(dec("10.00")), "profit %s", stats.EstimatedProfit)
	assert.True(t, stats.AverageOrderValue.Equal(dec("11.11")), "avg %s", stats.AverageOrderValue)
	assert.True(t, stats.CompletionRate.Equal(dec("33.3")), "rate %s", stats.CompletionRate)
}

func TestBuildDailyReport(t *testing.T) {
	env := newTestEnv()
	tenantID := uuid.New()
	register := &entity.CashRegister{
		ID:             uuid.New(),
		TenantID:       tenantID,
		Status:         enum.RegisterStatusOpen,
		OpeningBalance: dec("100.00"),
		OpenedAt:       mondayAt(9, 0),
	}

	env.payments.payments = []entity.Payment{
		{TenantID: tenantID, AmountUsd: dec("250.50"), PaidAt: mondayAt(10, 0)},
	}
	env.expenses.expenses = []entity.Expense{
		{TenantID: tenantID, AmountUsd: dec("75.25"), SpentAt: mondayAt(11, 0)},
	}
	env.debts.payments = []entity.DebtPayment{
		{TenantID: tenantID, AmountUsd: dec("10.00"), PaidAt: mondayAt(12, 0)},
	}
	env.movements.movements = []entity.CashMovement{
		{TenantID: tenantID, Direction: enum.MovementIn, AmountUsd: dec("20.00"), MovedAt: mondayAt(13, 0)},
		{TenantID: tenantID, Direction: enum.MovementOut, AmountUsd: dec("5.00"), MovedAt: mondayAt(14, 0)},
	}

	report, err := env.reportService().BuildDailyReport(context.Background(), register, mondayAt(18, 0), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, tenantID, report.TenantID)
	assert.Equal(t, register.ID, report.RegisterID)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), report.ReportDate)
	// 100 + 250.50 + 10 - 75.25 + 15 = 300.25
	assert.True(t, report.ClosingBalance.Equal(dec("300.25")), "closing %s", report.ClosingBalance)
	assert.True(t, report.NetProfit.Equal(dec("175.25")))
	assert.Equal(t, 1, report.PaymentCount)
	assert.Equal(t, 1, report.ExpenseCount)
	assert.Equal(t, 2, report.MovementCount)
}

func TestBuildDailyReportUsesLocalDate(t *testing.T) {
	env := newTestEnv()
	tenantID := uuid.New()
	loc, err := time.LoadLocation("America/Caracas")
	require.NoError(t, err)

	register := &entity.CashRegister{ID: uuid.New(), TenantID: tenantID, Status: enum.RegisterStatusOpen}

	// 02:00 UTC on Jan 7 is still Jan 6 in Caracas.
	now := time.Date(2025, 1, 7, 2, 0, 0, 0, time.UTC)
	report, err := env.reportService().BuildDailyReport(context.Background(), register, now, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), report.ReportDate)
}
