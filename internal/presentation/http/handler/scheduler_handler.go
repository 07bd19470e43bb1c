package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mfuentes/cajaflow-api/internal/application/service"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/dto/response"
)

// SchedulerHandler exposes start/stop/status control over the background
// orchestrator. These endpoints affect every tenant and are meant for
// operators, not tenant users.
type SchedulerHandler struct {
	orchestrator *service.OrchestratorService
}

// NewSchedulerHandler creates a new scheduler control handler
func NewSchedulerHandler(orchestrator *service.OrchestratorService) *SchedulerHandler {
	return &SchedulerHandler{orchestrator: orchestrator}
}

// Start handles starting the orchestrator. Starting a running orchestrator
// succeeds without side effects.
func (h *SchedulerHandler) Start(c *gin.Context) {
	if err := h.orchestrator.Start(); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Scheduler started", h.orchestrator.Status())
}

// Stop handles stopping the orchestrator
func (h *SchedulerHandler) Stop(c *gin.Context) {
	h.orchestrator.Stop()
	response.OK(c, "Scheduler stopped", h.orchestrator.Status())
}

// Status handles reporting whether the orchestrator is running and when it
// last checked schedules
func (h *SchedulerHandler) Status(c *gin.Context) {
	response.OK(c, "Scheduler status retrieved", h.orchestrator.Status())
}
