package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mfuentes/cajaflow-api/internal/application/service"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/dto/request"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/dto/response"
	"github.com/mfuentes/cajaflow-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// RegisterHandler handles manual cash register HTTP requests
type RegisterHandler struct {
	registerService *service.RegisterService
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(registerService *service.RegisterService) *RegisterHandler {
	return &RegisterHandler{registerService: registerService}
}

// Current handles retrieving the tenant's open register
func (h *RegisterHandler) Current(c *gin.Context) {
	tenantID := GetTenantID(c)
	if tenantID == uuid.Nil {
		response.Unauthorized(c, "Tenant not resolved")
		return
	}

	register, err := h.registerService.GetCurrent(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if register == nil {
		response.NotFound(c, "No register is currently open")
		return
	}

	response.OK(c, "Register retrieved successfully", register)
}

// Open handles opening a register manually
func (h *RegisterHandler) Open(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}
	tenantID := GetTenantID(c)
	if tenantID == uuid.Nil {
		response.Unauthorized(c, "Tenant not resolved")
		return
	}

	var req request.OpenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	openingBalance, err := parseAmount(req.OpeningBalance)
	if err != nil {
		response.BadRequest(c, "Invalid opening balance")
		return
	}
	exchangeRate := decimal.Zero
	if req.ExchangeRate != "" {
		exchangeRate, err = parseAmount(req.ExchangeRate)
		if err != nil {
			response.BadRequest(c, "Invalid exchange rate")
			return
		}
	}

	register, err := h.registerService.Open(c.Request.Context(), &service.OpenInput{
		TenantID:       tenantID,
		UserID:         *userID,
		OpeningBalance: openingBalance,
		ExchangeRate:   exchangeRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Register opened successfully", register)
}

// Close handles closing the tenant's open register manually
func (h *RegisterHandler) Close(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}
	tenantID := GetTenantID(c)
	if tenantID == uuid.Nil {
		response.Unauthorized(c, "Tenant not resolved")
		return
	}

	report, err := h.registerService.Close(c.Request.Context(), tenantID, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Register closed successfully", report)
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
