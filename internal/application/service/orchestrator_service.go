package service

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/mfuentes/cajaflow-api/internal/application/schedule"
	"github.com/mfuentes/cajaflow-api/internal/domain/entity"
	"github.com/mfuentes/cajaflow-api/internal/domain/enum"
	"github.com/mfuentes/cajaflow-api/internal/domain/repository"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// OrchestratorService drives periodic evaluation across all tenants and
// enforces at-most-once execution per (tenant, operation, local day). The
// evaluator may report an operation as due on every poll within its matching
// window; the operation log lookup here is the sole dedup safeguard.
type OrchestratorService struct {
	scheduleRepo repository.ScheduleConfigRepository
	logRepo      repository.OperationLogRepository
	executor     *ExecutorService
	evaluator    *schedule.Evaluator
	tickSpec     string
	clock        func() time.Time
	log          zerolog.Logger

	mu        sync.Mutex
	cron      *cron.Cron
	running   bool
	lastCheck time.Time
}

// OrchestratorStatus is the service-status view exposed to the admin surface.
type OrchestratorStatus struct {
	Running   bool       `json:"running"`
	LastCheck *time.Time `json:"last_check,omitempty"`
}

// NewOrchestratorService creates a new orchestrator. tickSpec is a cron
// expression for the poll cadence; windowMinutes is forwarded to the
// evaluator.
func NewOrchestratorService(
	scheduleRepo repository.ScheduleConfigRepository,
	logRepo repository.OperationLogRepository,
	executor *ExecutorService,
	tickSpec string,
	windowMinutes int,
	log zerolog.Logger,
) *OrchestratorService {
	if tickSpec == "" {
		tickSpec = "* * * * *"
	}
	return &OrchestratorService{
		scheduleRepo: scheduleRepo,
		logRepo:      logRepo,
		executor:     executor,
		evaluator:    schedule.NewEvaluator(windowMinutes),
		tickSpec:     tickSpec,
		clock:        time.Now,
		log:          log.With().Str("component", "orchestrator").Logger(),
	}
}

// Start begins periodic ticking. Starting an already-running orchestrator is
// a no-op. Overlap between ticks is suppressed at the cron layer: a tick
// never begins while the previous one is still running.
func (s *OrchestratorService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(s.tickSpec, func() {
		s.Tick(context.Background(), s.clock())
	})
	if err != nil {
		return err
	}
	c.Start()

	s.cron = c
	s.running = true
	s.log.Info().Str("tick_spec", s.tickSpec).Msg("orchestrator started")
	return nil
}

// Stop prevents new ticks. An in-flight tick runs to completion; Stop does
// not wait for it. Stopping a stopped orchestrator is a no-op.
func (s *OrchestratorService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.cron.Stop()
	s.cron = nil
	s.running = false
	s.log.Info().Msg("orchestrator stopped")
}

// Status reports whether the orchestrator is running and when it last
// completed a tick.
func (s *OrchestratorService) Status() OrchestratorStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := OrchestratorStatus{Running: s.running}
	if !s.lastCheck.IsZero() {
		t := s.lastCheck
		st.LastCheck = &t
	}
	return st
}

// Tick processes one evaluation pass over every enabled tenant at instant
// now. Exported so the admin surface and tests can trigger a pass directly.
func (s *OrchestratorService) Tick(ctx context.Context, now time.Time) {
	configs, err := s.scheduleRepo.ListEnabled(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list enabled schedules")
		s.markChecked(now)
		return
	}

	for i := range configs {
		s.processTenant(ctx, &configs[i], now)
	}
	s.markChecked(now)
}

// processTenant evaluates and possibly executes both operation types for one
// tenant. Panics and errors stay inside this frame so the remaining tenants
// are always processed.
func (s *OrchestratorService) processTenant(ctx context.Context, cfg *entity.ScheduleConfig, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("tenant_id", cfg.TenantID.String()).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("panic while processing tenant")
		}
	}()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		// Malformed configuration never fires; nothing to do for this tenant.
		return
	}

	for _, opType := range []enum.OperationType{enum.OperationTypeAutoOpen, enum.OperationTypeAutoClose} {
		if !s.evaluator.ShouldExecute(cfg, opType, now) {
			continue
		}

		from, to := schedule.DayBounds(now, loc)
		executed, err := s.logRepo.HasEntryInWindow(ctx, cfg.TenantID, opType, from, to)
		if err != nil {
			s.log.Error().Err(err).
				Str("tenant_id", cfg.TenantID.String()).
				Str("operation", opType.String()).
				Msg("dedup lookup failed, skipping this window")
			continue
		}
		if executed {
			// Already handled this window on an earlier tick.
			continue
		}

		scheduledAt := schedule.ScheduledAt(cfg, opType, now, loc)
		switch opType {
		case enum.OperationTypeAutoOpen:
			s.executor.ExecuteOpen(ctx, cfg, scheduledAt, now)
		case enum.OperationTypeAutoClose:
			s.executor.ExecuteClose(ctx, cfg, loc, scheduledAt, now)
		}
	}
}

func (s *OrchestratorService) markChecked(now time.Time) {
	s.mu.Lock()
	s.lastCheck = now
	s.mu.Unlock()
}
