package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/application/service"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/dto/response"
)

// OperationHandler handles automation operation log HTTP requests
type OperationHandler struct {
	logService *service.OperationLogService
}

// NewOperationHandler creates a new operation log handler
func NewOperationHandler(logService *service.OperationLogService) *OperationHandler {
	return &OperationHandler{logService: logService}
}

// List handles listing the tenant's most recent automation log entries
func (h *OperationHandler) List(c *gin.Context) {
	tenantID := GetTenantID(c)
	if tenantID == uuid.Nil {
		response.Unauthorized(c, "Tenant not resolved")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.logService.ListRecent(c.Request.Context(), tenantID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Operation log retrieved successfully", entries)
}
