package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	"github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"github.com/mfuentes/cajaflow-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// RegisterService handles manual register operations triggered by a user.
// Manual closes produce a daily report just like automatic ones, but record
// the acting user and do not touch the automation's operation log.
type RegisterService struct {
	registerRepo        repository.RegisterRepository
	closeoutRepo        repository.CloseoutRepository
	tenantRepo          repository.TenantRepository
	reports             *ReportService
	defaultExchangeRate decimal.Decimal
}

// NewRegisterService creates a new register service
func NewRegisterService(
	registerRepo repository.RegisterRepository,
	closeoutRepo repository.CloseoutRepository,
	tenantRepo repository.TenantRepository,
	reports *ReportService,
	defaultExchangeRate decimal.Decimal,
) *RegisterService {
	return &RegisterService{
		registerRepo:        registerRepo,
		closeoutRepo:        closeoutRepo,
		tenantRepo:          tenantRepo,
		reports:             reports,
		defaultExchangeRate: defaultExchangeRate,
	}
}

// GetCurrent retrieves the tenant's open register, or nil if none is open
func (s *RegisterService) GetCurrent(ctx context.Context, tenantID uuid.UUID) (*entity.CashRegister, error) {
	return s.registerRepo.GetCurrentOpen(ctx, tenantID)
}

// OpenInput represents a manual open request
type OpenInput struct {
	TenantID       uuid.UUID
	UserID         uuid.UUID
	OpeningBalance decimal.Decimal
	ExchangeRate   decimal.Decimal
}

// Open opens a register manually for the acting user
func (s *RegisterService) Open(ctx context.Context, input *OpenInput) (*entity.CashRegister, error) {
	current, err := s.registerRepo.GetCurrentOpen(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, apperror.NewConflictError("A register is already open")
	}

	rate := input.ExchangeRate
	if rate.IsZero() {
		rate = s.defaultExchangeRate
	}
	userID := input.UserID
	register := &entity.CashRegister{
		TenantID:       input.TenantID,
		Status:         enum.RegisterStatusOpen,
		OpeningBalance: input.OpeningBalance.Round(2),
		FinalBalance:   decimal.Zero,
		ExchangeRate:   rate,
		OpenedAt:       time.Now(),
		OpenedBy:       &userID,
	}
	if err := s.registerRepo.Create(ctx, register); err != nil {
		return nil, err
	}
	return register, nil
}

// Close closes the tenant's open register manually, producing the daily
// report for the tenant's local day and stamping the acting user as the
// closer.
func (s *RegisterService) Close(ctx context.Context, tenantID, userID uuid.UUID) (*entity.DailyReport, error) {
	register, err := s.registerRepo.GetCurrentOpen(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if register == nil {
		return nil, apperror.NewConflictError("No open register to close")
	}

	loc, err := s.tenantLocation(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report, err := s.reports.BuildDailyReport(ctx, register, now, loc)
	if err != nil {
		return nil, err
	}

	if err := s.closeoutRepo.CloseWithReport(ctx, report, now, &userID); err != nil {
		if errors.Is(err, repository.ErrRegisterNotOpen) {
			return nil, apperror.NewConflictError("Register was already closed")
		}
		return nil, err
	}
	return report, nil
}

func (s *RegisterService) tenantLocation(ctx context.Context, tenantID uuid.UUID) (*time.Location, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}
	loc, err := time.LoadLocation(tenant.Timezone)
	if err != nil {
		return nil, apperror.NewBadRequestError("Tenant has an invalid timezone: " + tenant.Timezone)
	}
	return loc, nil
}
