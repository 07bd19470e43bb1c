package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	"github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ExecutorService runs the automatic open and close workflows. Every attempt
// ends in exactly one operation log entry (success, skipped or failed);
// errors are absorbed here and never propagate into the orchestrator's tick
// loop, so one tenant's failure cannot affect another's processing.
type ExecutorService struct {
	registerRepo        repository.RegisterRepository
	closeoutRepo        repository.CloseoutRepository
	logRepo             repository.OperationLogRepository
	reports             *ReportService
	defaultExchangeRate decimal.Decimal
	log                 zerolog.Logger
}

// NewExecutorService creates a new operation executor
func NewExecutorService(
	registerRepo repository.RegisterRepository,
	closeoutRepo repository.CloseoutRepository,
	logRepo repository.OperationLogRepository,
	reports *ReportService,
	defaultExchangeRate decimal.Decimal,
	log zerolog.Logger,
) *ExecutorService {
	return &ExecutorService{
		registerRepo:        registerRepo,
		closeoutRepo:        closeoutRepo,
		logRepo:             logRepo,
		reports:             reports,
		defaultExchangeRate: defaultExchangeRate,
		log:                 log.With().Str("component", "executor").Logger(),
	}
}

// ExecuteOpen runs the auto-open workflow for one tenant: precondition check,
// register creation with zeroed balances, outcome logging.
func (s *ExecutorService) ExecuteOpen(ctx context.Context, cfg *entity.ScheduleConfig, scheduledAt, now time.Time) {
	tenantID := cfg.TenantID

	current, err := s.registerRepo.GetCurrentOpen(ctx, tenantID)
	if err != nil {
		s.record(ctx, tenantID, enum.OperationTypeAutoOpen, enum.OperationStatusFailed, scheduledAt, now, nil, nil,
			err.Error(), "failed to check current register state")
		return
	}
	if current != nil {
		s.record(ctx, tenantID, enum.OperationTypeAutoOpen, enum.OperationStatusSkipped, scheduledAt, now, &current.ID, nil,
			"", "register already open, not opening a second one")
		return
	}

	register := &entity.CashRegister{
		TenantID:       tenantID,
		Status:         enum.RegisterStatusOpen,
		OpeningBalance: decimal.Zero,
		FinalBalance:   decimal.Zero,
		ExchangeRate:   s.defaultExchangeRate,
		OpenedAt:       now,
	}
	if err := s.registerRepo.Create(ctx, register); err != nil {
		s.record(ctx, tenantID, enum.OperationTypeAutoOpen, enum.OperationStatusFailed, scheduledAt, now, nil, nil,
			err.Error(), "failed to create register")
		return
	}

	s.record(ctx, tenantID, enum.OperationTypeAutoOpen, enum.OperationStatusSuccess, scheduledAt, now, &register.ID, nil,
		"", "register opened automatically")
}

// ExecuteClose runs the auto-close workflow for one tenant: precondition
// check, daily aggregation, atomic report-plus-closure commit, outcome
// logging. On failure the register stays open, so the next tick retries
// naturally.
func (s *ExecutorService) ExecuteClose(ctx context.Context, cfg *entity.ScheduleConfig, loc *time.Location, scheduledAt, now time.Time) {
	tenantID := cfg.TenantID

	register, err := s.registerRepo.GetCurrentOpen(ctx, tenantID)
	if err != nil {
		s.record(ctx, tenantID, enum.OperationTypeAutoClose, enum.OperationStatusFailed, scheduledAt, now, nil, nil,
			err.Error(), "failed to check current register state")
		return
	}
	if register == nil {
		s.record(ctx, tenantID, enum.OperationTypeAutoClose, enum.OperationStatusSkipped, scheduledAt, now, nil, nil,
			"", "no open register to close")
		return
	}

	report, err := s.reports.BuildDailyReport(ctx, register, now, loc)
	if err != nil {
		s.record(ctx, tenantID, enum.OperationTypeAutoClose, enum.OperationStatusFailed, scheduledAt, now, &register.ID, nil,
			err.Error(), "daily aggregation failed")
		return
	}

	// ClosedBy stays nil: that is what marks the closure as automatic.
	if err := s.closeoutRepo.CloseWithReport(ctx, report, now, nil); err != nil {
		s.record(ctx, tenantID, enum.OperationTypeAutoClose, enum.OperationStatusFailed, scheduledAt, now, &register.ID, nil,
			err.Error(), "failed to commit report and closure")
		return
	}

	s.record(ctx, tenantID, enum.OperationTypeAutoClose, enum.OperationStatusSuccess, scheduledAt, now, &register.ID, &report.ID,
		"", "register closed automatically")
}

// record appends one operation log entry and emits the matching log line.
// A failed append is the only error that escapes the executor unrecorded.
func (s *ExecutorService) record(
	ctx context.Context,
	tenantID uuid.UUID,
	opType enum.OperationType,
	status enum.OperationStatus,
	scheduledAt, executedAt time.Time,
	registerID, reportID *uuid.UUID,
	errorMessage, notes string,
) {
	entry := &entity.OperationLogEntry{
		TenantID:      tenantID,
		OperationType: opType,
		Status:        status,
		ScheduledTime: scheduledAt,
		ExecutedTime:  executedAt,
		RegisterID:    registerID,
		ReportID:      reportID,
		ErrorMessage:  errorMessage,
		Notes:         notes,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.log.Error().Err(err).
			Str("tenant_id", tenantID.String()).
			Str("operation", opType.String()).
			Str("status", status.String()).
			Msg("failed to append operation log entry")
		return
	}

	evt := s.log.Info()
	if status == enum.OperationStatusFailed {
		evt = s.log.Error()
	}
	evt.Str("tenant_id", tenantID.String()).
		Str("operation", opType.String()).
		Str("status", status.String()).
		Str("notes", notes).
		Msg(fmt.Sprintf("%s %s", opType, status))
}
