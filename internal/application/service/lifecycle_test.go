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

// Drives a full automated day through the orchestrator: open at 09:00,
// trading activity during the day, close at 18:00 with a report, then a fresh
// open the next morning.
func TestAutomatedDayLifecycle(t *testing.T) {
	env := newTestEnv()
	tenantID := uuid.New()
	env.schedules.configs = append(env.schedules.configs, *testConfig(tenantID))
	orch := env.orchestratorService()
	ctx := context.Background()

	// Morning: the register opens.
	orch.Tick(ctx, mondayAt(9, 0))
	register, err := env.registers.GetCurrentOpen(ctx, tenantID)
	require.NoError(t, err)
	require.NotNil(t, register)

	// Trading happens during the day.
	env.payments.payments = []entity.Payment{
		{TenantID: tenantID, AmountUsd: dec("320.00"), PaidAt: mondayAt(11, 0)},
	}
	env.expenses.expenses = []entity.Expense{
		{TenantID: tenantID, AmountUsd: dec("45.00"), SpentAt: mondayAt(15, 0)},
	}

	// Midday polls change nothing.
	orch.Tick(ctx, mondayAt(12, 0))
	assert.Len(t, env.registers.registers, 1)

	// Evening: the register closes with a report.
	orch.Tick(ctx, mondayAt(18, 1))
	assert.False(t, register.IsOpen())
	require.Len(t, env.reports.reports, 1)
	report := env.reports.reports[0]
	assert.True(t, report.ClosingBalance.Equal(dec("275.00")), "closing %s", report.ClosingBalance)

	entries := env.oplog.byTenant(tenantID)
	require.Len(t, entries, 2)
	assert.Equal(t, enum.OperationTypeAutoOpen, entries[0].OperationType)
	assert.Equal(t, enum.OperationTypeAutoClose, entries[1].OperationType)
	for _, e := range entries {
		assert.Equal(t, enum.OperationStatusSuccess, e.Status)
	}

	// Next morning a fresh register opens; yesterday's entries do not block it.
	tuesday := time.Date(2025, 1, 7, 9, 0, 0, 0, time.UTC)
	orch.Tick(ctx, tuesday)

	fresh, err := env.registers.GetCurrentOpen(ctx, tenantID)
	require.NoError(t, err)
	require.NotNil(t, fresh)
	assert.NotEqual(t, register.ID, fresh.ID)
	assert.Len(t, env.oplog.byTenant(tenantID), 3)
}

// A manual close between automation windows leaves the evening auto-close
// with nothing to do; it records a skip instead of failing.
func TestManualCloseBeforeAutoClose(t *testing.T) {
	env := newTestEnv()
	tenantID := uuid.New()
	env.schedules.configs = append(env.schedules.configs, *testConfig(tenantID))
	env.tenants.tenants = append(env.tenants.tenants, entity.Tenant{
		ID: tenantID, Name: "Kiosco", Slug: "kiosco", Timezone: "UTC", Active: true,
	})
	orch := env.orchestratorService()
	ctx := context.Background()

	orch.Tick(ctx, mondayAt(9, 0))

	userID := uuid.New()
	_, err := env.registerService().Close(ctx, tenantID, userID)
	require.NoError(t, err)

	orch.Tick(ctx, mondayAt(18, 0))

	entries := env.oplog.byTenant(tenantID)
	require.Len(t, entries, 2)
	assert.Equal(t, enum.OperationTypeAutoClose, entries[1].OperationType)
	assert.Equal(t, enum.OperationStatusSkipped, entries[1].Status)

	// Only the manual close produced a report.
	assert.Len(t, env.reports.reports, 1)
}
