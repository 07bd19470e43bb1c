package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/application/service"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/dto/request"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/dto/response"
	"github.com/mfuentes/cajaflow-api/pkg/apperror"
)

// ScheduleHandler handles schedule configuration HTTP requests
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Get handles retrieving the tenant's schedule config
func (h *ScheduleHandler) Get(c *gin.Context) {
	tenantID := GetTenantID(c)
	if tenantID == uuid.Nil {
		response.Unauthorized(c, "Tenant not resolved")
		return
	}

	cfg, err := h.scheduleService.GetConfig(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if cfg == nil {
		response.NotFound(c, "No schedule configured for this tenant")
		return
	}

	response.OK(c, "Schedule retrieved successfully", cfg)
}

// Upsert handles creating or replacing the tenant's schedule config
func (h *ScheduleHandler) Upsert(c *gin.Context) {
	tenantID := GetTenantID(c)
	if tenantID == uuid.Nil {
		response.Unauthorized(c, "Tenant not resolved")
		return
	}

	var req request.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	cfg, err := h.scheduleService.UpsertConfig(c.Request.Context(), &service.UpsertConfigInput{
		TenantID:         tenantID,
		AutoOpenEnabled:  req.AutoOpenEnabled,
		AutoCloseEnabled: req.AutoCloseEnabled,
		OpenHour:         req.OpenHour,
		OpenMinute:       req.OpenMinute,
		CloseHour:        req.CloseHour,
		CloseMinute:      req.CloseMinute,
		ActiveDays:       req.ActiveDays,
		Timezone:         req.Timezone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Schedule saved successfully", cfg)
}

// Next handles projecting the tenant's next automatic open and close
func (h *ScheduleHandler) Next(c *gin.Context) {
	tenantID := GetTenantID(c)
	if tenantID == uuid.Nil {
		response.Unauthorized(c, "Tenant not resolved")
		return
	}

	occ, err := h.scheduleService.NextOccurrences(c.Request.Context(), tenantID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next occurrences computed successfully", occ)
}
