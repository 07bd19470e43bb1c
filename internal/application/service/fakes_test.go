package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	"github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// In-memory fakes standing in for the GORM repositories. They implement the
// same contracts the real ones do, including the conditional close and the
// failed-entry exclusion in the dedup lookup.

type fakeScheduleRepo struct {
	configs []entity.ScheduleConfig
	err     error
}

func (f *fakeScheduleRepo) GetByTenant(_ context.Context, tenantID uuid.UUID) (*entity.ScheduleConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.configs {
		if f.configs[i].TenantID == tenantID {
			return &f.configs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, cfg *entity.ScheduleConfig) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.configs {
		if f.configs[i].TenantID == cfg.TenantID {
			cfg.ID = f.configs[i].ID
			f.configs[i] = *cfg
			return nil
		}
	}
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	f.configs = append(f.configs, *cfg)
	return nil
}

func (f *fakeScheduleRepo) ListEnabled(_ context.Context) ([]entity.ScheduleConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.ScheduleConfig
	for _, c := range f.configs {
		if c.AutoOpenEnabled || c.AutoCloseEnabled {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeRegisterRepo struct {
	mu        sync.Mutex
	registers []*entity.CashRegister
	createErr map[uuid.UUID]error // keyed by tenant
	getErr    map[uuid.UUID]error
}

func (f *fakeRegisterRepo) Create(_ context.Context, register *entity.CashRegister) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.createErr[register.TenantID]; err != nil {
		return err
	}
	if register.ID == uuid.Nil {
		register.ID = uuid.New()
	}
	f.registers = append(f.registers, register)
	return nil
}

func (f *fakeRegisterRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CashRegister, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.registers {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRegisterRepo) GetCurrentOpen(_ context.Context, tenantID uuid.UUID) (*entity.CashRegister, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.getErr[tenantID]; err != nil {
		return nil, err
	}
	for _, r := range f.registers {
		if r.TenantID == tenantID && r.IsOpen() {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRegisterRepo) Close(_ context.Context, id uuid.UUID, finalBalance decimal.Decimal, closedAt time.Time, closedBy *uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.registers {
		if r.ID == id && r.IsOpen() {
			r.Status = enum.RegisterStatusClosed
			r.FinalBalance = finalBalance
			at := closedAt
			r.ClosedAt = &at
			r.ClosedBy = closedBy
			return nil
		}
	}
	return repository.ErrRegisterNotOpen
}

// fakeCloseoutRepo mirrors the transactional contract: the report is kept
// only when the register transition succeeds.
type fakeCloseoutRepo struct {
	registers *fakeRegisterRepo
	reports   *fakeReportRepo
	err       error
}

func (f *fakeCloseoutRepo) CloseWithReport(ctx context.Context, report *entity.DailyReport, closedAt time.Time, closedBy *uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if err := f.registers.Close(ctx, report.RegisterID, report.ClosingBalance, closedAt, closedBy); err != nil {
		return err
	}
	return f.reports.Create(ctx, report)
}

type fakeOperationLogRepo struct {
	mu        sync.Mutex
	entries   []entity.OperationLogEntry
	appendErr error
	lookupErr map[uuid.UUID]error
	lastLimit int
}

func (f *fakeOperationLogRepo) Append(_ context.Context, entry *entity.OperationLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	entry.ID = uint(len(f.entries) + 1)
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeOperationLogRepo) HasEntryInWindow(_ context.Context, tenantID uuid.UUID, opType enum.OperationType, from, to time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.lookupErr[tenantID]; err != nil {
		return false, err
	}
	for _, e := range f.entries {
		if e.TenantID != tenantID || e.OperationType != opType || e.Status == enum.OperationStatusFailed {
			continue
		}
		if !e.ExecutedTime.Before(from) && e.ExecutedTime.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOperationLogRepo) ListRecent(_ context.Context, tenantID uuid.UUID, limit int) ([]entity.OperationLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
	var out []entity.OperationLogEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if f.entries[i].TenantID == tenantID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeOperationLogRepo) byTenant(tenantID uuid.UUID) []entity.OperationLogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.OperationLogEntry
	for _, e := range f.entries {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out
}

type fakeReportRepo struct {
	mu        sync.Mutex
	reports   []*entity.DailyReport
	createErr error
}

func (f *fakeReportRepo) Create(_ context.Context, report *entity.DailyReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeReportRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.DailyReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReportRepo) ListByDate(_ context.Context, tenantID uuid.UUID, date time.Time) ([]entity.DailyReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.DailyReport
	y, m, d := date.Date()
	for _, r := range f.reports {
		ry, rm, rd := r.ReportDate.Date()
		if r.TenantID == tenantID && ry == y && rm == m && rd == d {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders []entity.Order
	err    error
}

func (f *fakeOrderRepo) ListByDateRange(_ context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Order
	for _, o := range f.orders {
		if o.TenantID == tenantID && inRange(o.OrderDate, from, to) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments []entity.Payment
	err      error
}

func (f *fakePaymentRepo) ListByDateRange(_ context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Payment
	for _, p := range f.payments {
		if p.TenantID == tenantID && inRange(p.PaidAt, from, to) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeExpenseRepo struct {
	expenses []entity.Expense
}

func (f *fakeExpenseRepo) ListByDateRange(_ context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.Expense, error) {
	var out []entity.Expense
	for _, e := range f.expenses {
		if e.TenantID == tenantID && inRange(e.SpentAt, from, to) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []entity.CashMovement
}

func (f *fakeMovementRepo) ListByDateRange(_ context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.CashMovement, error) {
	var out []entity.CashMovement
	for _, m := range f.movements {
		if m.TenantID == tenantID && inRange(m.MovedAt, from, to) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeDebtPaymentRepo struct {
	payments []entity.DebtPayment
}

func (f *fakeDebtPaymentRepo) ListByDateRange(_ context.Context, tenantID uuid.UUID, from, to time.Time) ([]entity.DebtPayment, error) {
	var out []entity.DebtPayment
	for _, p := range f.payments {
		if p.TenantID == tenantID && inRange(p.PaidAt, from, to) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeVendorRepo struct {
	vendors []entity.Vendor
}

func (f *fakeVendorRepo) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]entity.Vendor, error) {
	var out []entity.Vendor
	for _, v := range f.vendors {
		if v.TenantID == tenantID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products []entity.Product
}

func (f *fakeProductRepo) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers []entity.Customer
}

func (f *fakeCustomerRepo) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeTenantRepo struct {
	tenants []entity.Tenant
}

func (f *fakeTenantRepo) Create(_ context.Context, tenant *entity.Tenant) error {
	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	f.tenants = append(f.tenants, *tenant)
	return nil
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Tenant, error) {
	for i := range f.tenants {
		if f.tenants[i].ID == id {
			return &f.tenants[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTenantRepo) GetBySlug(_ context.Context, slug string) (*entity.Tenant, error) {
	for i := range f.tenants {
		if f.tenants[i].Slug == slug {
			return &f.tenants[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTenantRepo) ListActive(_ context.Context) ([]entity.Tenant, error) {
	var out []entity.Tenant
	for _, t := range f.tenants {
		if t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// testEnv bundles every fake plus the services under test.
type testEnv struct {
	schedules *fakeScheduleRepo
	registers *fakeRegisterRepo
	closeouts *fakeCloseoutRepo
	oplog     *fakeOperationLogRepo
	reports   *fakeReportRepo
	orders    *fakeOrderRepo
	payments  *fakePaymentRepo
	expenses  *fakeExpenseRepo
	movements *fakeMovementRepo
	debts     *fakeDebtPaymentRepo
	vendors   *fakeVendorRepo
	products  *fakeProductRepo
	customers *fakeCustomerRepo
	tenants   *fakeTenantRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		schedules: &fakeScheduleRepo{},
		registers: &fakeRegisterRepo{
			createErr: map[uuid.UUID]error{},
			getErr:    map[uuid.UUID]error{},
		},
		oplog:     &fakeOperationLogRepo{lookupErr: map[uuid.UUID]error{}},
		reports:   &fakeReportRepo{},
		orders:    &fakeOrderRepo{},
		payments:  &fakePaymentRepo{},
		expenses:  &fakeExpenseRepo{},
		movements: &fakeMovementRepo{},
		debts:     &fakeDebtPaymentRepo{},
		vendors:   &fakeVendorRepo{},
		products:  &fakeProductRepo{},
		customers: &fakeCustomerRepo{},
		tenants:   &fakeTenantRepo{},
	}
	env.closeouts = &fakeCloseoutRepo{registers: env.registers, reports: env.reports}
	return env
}

func (e *testEnv) reportService() *ReportService {
	return NewReportService(
		e.orders, e.payments, e.expenses, e.movements, e.debts,
		e.vendors, e.products, e.customers, e.reports,
	)
}

func (e *testEnv) executorService() *ExecutorService {
	return NewExecutorService(
		e.registers, e.closeouts, e.oplog, e.reportService(),
		decimal.NewFromInt(1), zerolog.Nop(),
	)
}

func (e *testEnv) orchestratorService() *OrchestratorService {
	return NewOrchestratorService(
		e.schedules, e.oplog, e.executorService(), "* * * * *", 5, zerolog.Nop(),
	)
}

func (e *testEnv) registerService() *RegisterService {
	return NewRegisterService(
		e.registers, e.closeouts, e.tenants, e.reportService(), decimal.NewFromInt(1),
	)
}
