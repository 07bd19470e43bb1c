package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mfuentes/cajaflow-api/internal/config"
	domainRepo "github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/handler"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/middleware"
	"github.com/mfuentes/cajaflow-api/pkg/utils"
	"github.com/rs/zerolog"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Schedule  *handler.ScheduleHandler
	Scheduler *handler.SchedulerHandler
	Register  *handler.RegisterHandler
	Report    *handler.ReportHandler
	Operation *handler.OperationHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	TenantRepo      domainRepo.TenantRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
	Log             zerolog.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.TenantMiddleware(deps.TenantRepo))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerScheduleRoutes(protected, h)
		registerRegisterRoutes(protected, h, deps)
		registerReportRoutes(protected, h)
		registerSchedulerRoutes(protected, h)
	}

	return router
}

// registerScheduleRoutes registers schedule configuration routes
func registerScheduleRoutes(rg *gin.RouterGroup, h *Handlers) {
	schedules := rg.Group("/schedule")
	{
		schedules.GET("", h.Schedule.Get)
		schedules.PUT("", h.Schedule.Upsert)
		schedules.GET("/next", h.Schedule.Next)
	}
}

// registerRegisterRoutes registers manual cash register routes. Mutating
// register operations honor Idempotency-Key so a retried open or close is
// replayed instead of executed twice.
func registerRegisterRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	registers := rg.Group("/register")
	{
		registers.GET("/current", h.Register.Current)
		registers.POST("/open", idempotency, h.Register.Open)
		registers.POST("/close", idempotency, h.Register.Close)
	}
}

// registerReportRoutes registers daily report and operation log routes
func registerReportRoutes(rg *gin.RouterGroup, h *Handlers) {
	reports := rg.Group("/reports")
	{
		reports.GET("", h.Report.List)
		reports.GET("/:id", h.Report.Get)
	}

	rg.GET("/operations", h.Operation.List)
}

// registerSchedulerRoutes registers orchestrator control routes
func registerSchedulerRoutes(rg *gin.RouterGroup, h *Handlers) {
	scheduler := rg.Group("/scheduler")
	{
		scheduler.GET("/status", h.Scheduler.Status)
		scheduler.POST("/start", h.Scheduler.Start)
		scheduler.POST("/stop", h.Scheduler.Stop)
	}
}
