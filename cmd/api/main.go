package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mfuentes/cajaflow-api/internal/application/service"
	"github.com/mfuentes/cajaflow-api/internal/config"
	"github.com/mfuentes/cajaflow-api/internal/infrastructure/database"
	"github.com/mfuentes/cajaflow-api/internal/infrastructure/repository"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/handler"
	"github.com/mfuentes/cajaflow-api/internal/presentation/http/routes"
	"github.com/mfuentes/cajaflow-api/pkg/logger"
	"github.com/mfuentes/cajaflow-api/pkg/utils"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Console: cfg.Log.Console,
	})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	defaultExchangeRate, err := decimal.NewFromString(cfg.Register.DefaultExchangeRate)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Register.DefaultExchangeRate).
			Msg("invalid default exchange rate")
	}

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	scheduleRepo := repository.NewScheduleConfigRepository(db)
	registerRepo := repository.NewRegisterRepository(db)
	closeoutRepo := repository.NewCloseoutRepository(db)
	operationLogRepo := repository.NewOperationLogRepository(db)
	reportRepo := repository.NewDailyReportRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	movementRepo := repository.NewCashMovementRepository(db)
	debtPaymentRepo := repository.NewDebtPaymentRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	reportService := service.NewReportService(
		orderRepo, paymentRepo, expenseRepo, movementRepo, debtPaymentRepo,
		vendorRepo, productRepo, customerRepo, reportRepo,
	)
	registerService := service.NewRegisterService(
		registerRepo, closeoutRepo, tenantRepo, reportService, defaultExchangeRate,
	)
	scheduleService := service.NewScheduleService(scheduleRepo)
	operationLogService := service.NewOperationLogService(operationLogRepo)
	executorService := service.NewExecutorService(
		registerRepo, closeoutRepo, operationLogRepo, reportService, defaultExchangeRate, log,
	)
	orchestratorService := service.NewOrchestratorService(
		scheduleRepo, operationLogRepo, executorService,
		cfg.Scheduler.TickSpec, cfg.Scheduler.WindowMinutes, log,
	)

	if cfg.Scheduler.Autostart {
		if err := orchestratorService.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start scheduler")
		}
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Schedule:  handler.NewScheduleHandler(scheduleService),
		Scheduler: handler.NewSchedulerHandler(orchestratorService),
		Register:  handler.NewRegisterHandler(registerService),
		Report:    handler.NewReportHandler(reportService),
		Operation: handler.NewOperationHandler(operationLogService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		TenantRepo:      tenantRepo,
		IdempotencyRepo: idempotencyRepo,
		Log:             log,
	})

	// Stop the scheduler cleanly on termination
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("shutting down")
		orchestratorService.Stop()
		os.Exit(0)
	}()

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("port", port).
		Str("env", cfg.App.Env).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
