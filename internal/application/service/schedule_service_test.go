package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUpsertInput(tenantID uuid.UUID) *UpsertConfigInput {
	return &UpsertConfigInput{
		TenantID:         tenantID,
		AutoOpenEnabled:  true,
		AutoCloseEnabled: true,
		OpenHour:         9,
		CloseHour:        18,
		ActiveDays:       []int{1, 2, 3, 4, 5},
		Timezone:         "America/Caracas",
	}
}

func TestUpsertConfigStoresNormalizedDays(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.schedules)

	input := validUpsertInput(uuid.New())
	input.ActiveDays = []int{5, 1, 3, 3, 1}

	cfg, err := svc.UpsertConfig(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, cfg.ActiveDays)

	stored, err := svc.GetConfig(context.Background(), input.TenantID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []int{1, 3, 5}, stored.ActiveDays)
}

func TestUpsertConfigReplacesExisting(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.schedules)
	tenantID := uuid.New()

	_, err := svc.UpsertConfig(context.Background(), validUpsertInput(tenantID))
	require.NoError(t, err)

	input := validUpsertInput(tenantID)
	input.OpenHour = 8
	_, err = svc.UpsertConfig(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, env.schedules.configs, 1)
	assert.Equal(t, 8, env.schedules.configs[0].OpenHour)
}

func TestUpsertConfigValidation(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.schedules)

	tests := []struct {
		name   string
		mutate func(*UpsertConfigInput)
	}{
		{"open hour too large", func(i *UpsertConfigInput) { i.OpenHour = 24 }},
		{"negative close hour", func(i *UpsertConfigInput) { i.CloseHour = -1 }},
		{"minute too large", func(i *UpsertConfigInput) { i.OpenMinute = 60 }},
		{"day out of range", func(i *UpsertConfigInput) { i.ActiveDays = []int{0, 1} }},
		{"day above sunday", func(i *UpsertConfigInput) { i.ActiveDays = []int{8} }},
		{"enabled with no days", func(i *UpsertConfigInput) { i.ActiveDays = nil }},
		{"unknown timezone", func(i *UpsertConfigInput) { i.Timezone = "Not/AZone" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validUpsertInput(uuid.New())
			tt.mutate(input)

			_, err := svc.UpsertConfig(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, 400, apperror.GetAppError(err).Code)
		})
	}
}

func TestUpsertConfigDisabledAllowsEmptyDays(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.schedules)

	input := validUpsertInput(uuid.New())
	input.AutoOpenEnabled = false
	input.AutoCloseEnabled = false
	input.ActiveDays = nil

	cfg, err := svc.UpsertConfig(context.Background(), input)
	require.NoError(t, err)
	assert.Empty(t, cfg.ActiveDays)
}

func TestGetConfigNilWhenMissing(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.schedules)

	cfg, err := svc.GetConfig(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestNextOccurrencesRequiresConfig(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.schedules)

	_, err := svc.NextOccurrences(context.Background(), uuid.New(), time.Now())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestNextOccurrencesProjectsFromConfig(t *testing.T) {
	env := newTestEnv()
	svc := NewScheduleService(env.schedules)
	tenantID := uuid.New()

	input := validUpsertInput(tenantID)
	input.Timezone = "UTC"
	input.ActiveDays = []int{1, 2, 3, 4, 5, 6, 7}
	_, err := svc.UpsertConfig(context.Background(), input)
	require.NoError(t, err)

	occ, err := svc.NextOccurrences(context.Background(), tenantID, mondayAt(8, 0))
	require.NoError(t, err)
	require.NotNil(t, occ.NextOpen)
	assert.Equal(t, mondayAt(9, 0), occ.NextOpen.UTC())
}
