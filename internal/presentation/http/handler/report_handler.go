package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/application/service"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/dto/response"
)

// ReportHandler handles daily report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// List handles listing the tenant's reports for a given date
func (h *ReportHandler) List(c *gin.Context) {
	tenantID := GetTenantID(c)
	if tenantID == uuid.Nil {
		response.Unauthorized(c, "Tenant not resolved")
		return
	}

	dateStr := c.DefaultQuery("date", time.Now().UTC().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	reports, err := h.reportService.ListReportsByDate(c.Request.Context(), tenantID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reports retrieved successfully", reports)
}

// Get handles retrieving a single report by ID
func (h *ReportHandler) Get(c *gin.Context) {
	tenantID := GetTenantID(c)
	if tenantID == uuid.Nil {
		response.Unauthorized(c, "Tenant not resolved")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if report == nil || report.TenantID != tenantID {
		response.NotFound(c, "Report not found")
		return
	}

	response.OK(c, "Report retrieved successfully", report)
}
