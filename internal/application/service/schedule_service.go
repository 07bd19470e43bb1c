package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/application/schedule"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"github.com/mfuentes/cajaflow-api/pkg/apperror"
)

// ScheduleService handles schedule configuration business logic
type ScheduleService struct {
	scheduleRepo repository.ScheduleConfigRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(scheduleRepo repository.ScheduleConfigRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

// GetConfig retrieves the tenant's schedule config. A nil result means no
// automation has ever been configured for the tenant.
func (s *ScheduleService) GetConfig(ctx context.Context, tenantID uuid.UUID) (*entity.ScheduleConfig, error) {
	return s.scheduleRepo.GetByTenant(ctx, tenantID)
}

// UpsertConfigInput represents the input for creating or replacing a
// tenant's schedule config
type UpsertConfigInput struct {
	TenantID         uuid.UUID
	AutoOpenEnabled  bool
	AutoCloseEnabled bool
	OpenHour         int
	OpenMinute       int
	CloseHour        int
	CloseMinute      int
	ActiveDays       []int
	Timezone         string
}

// UpsertConfig validates and stores the tenant's schedule config
func (s *ScheduleService) UpsertConfig(ctx context.Context, input *UpsertConfigInput) (*entity.ScheduleConfig, error) {
	if err := validateConfigInput(input); err != nil {
		return nil, err
	}

	cfg := &entity.ScheduleConfig{
		TenantID:         input.TenantID,
		AutoOpenEnabled:  input.AutoOpenEnabled,
		AutoCloseEnabled: input.AutoCloseEnabled,
		OpenHour:         input.OpenHour,
		OpenMinute:       input.OpenMinute,
		CloseHour:        input.CloseHour,
		CloseMinute:      input.CloseMinute,
		ActiveDays:       normalizeDays(input.ActiveDays),
		Timezone:         input.Timezone,
	}
	if err := s.scheduleRepo.Upsert(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NextOccurrences projects the tenant's next automatic open and close from
// instant now.
func (s *ScheduleService) NextOccurrences(ctx context.Context, tenantID uuid.UUID, now time.Time) (*schedule.Occurrences, error) {
	cfg, err := s.scheduleRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, apperror.NewNotFoundError("Schedule config")
	}
	occ := schedule.NextOccurrences(cfg, now)
	return &occ, nil
}

func validateConfigInput(input *UpsertConfigInput) error {
	if input.OpenHour < 0 || input.OpenHour > 23 || input.CloseHour < 0 || input.CloseHour > 23 {
		return apperror.NewBadRequestError("Hour must be between 0 and 23")
	}
	if input.OpenMinute < 0 || input.OpenMinute > 59 || input.CloseMinute < 0 || input.CloseMinute > 59 {
		return apperror.NewBadRequestError("Minute must be between 0 and 59")
	}
	for _, d := range input.ActiveDays {
		if d < 1 || d > 7 {
			return apperror.NewBadRequestError("Active days must be between 1 (Monday) and 7 (Sunday)")
		}
	}
	if (input.AutoOpenEnabled || input.AutoCloseEnabled) && len(input.ActiveDays) == 0 {
		return apperror.NewBadRequestError("At least one active day is required when automation is enabled")
	}
	if _, err := time.LoadLocation(input.Timezone); err != nil {
		return apperror.NewBadRequestError("Unknown timezone: " + input.Timezone)
	}
	return nil
}

// normalizeDays deduplicates and sorts the active-day set.
func normalizeDays(days []int) []int {
	seen := [8]bool{}
	for _, d := range days {
		if d >= 1 && d <= 7 {
			seen[d] = true
		}
	}
	out := make([]int, 0, 7)
	for d := 1; d <= 7; d++ {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}
