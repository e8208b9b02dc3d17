package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/core/services"
	"github.com/sjrent/sjrent_backend/internal/middleware"
	"github.com/sjrent/sjrent_backend/internal/platform/config"
)

// sweepTimeout bounds a single overdue sweep run.
const sweepTimeout = 2 * time.Minute

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron          *cron.Cron
	rentalService portssvc.RentalSvcFacade
	logger        *slog.Logger
}

// NewScheduler creates a scheduler wired to the rental service and registers
// the overdue sweep on the configured cron expression.
func NewScheduler(cfg *config.Config, rentalService portssvc.RentalSvcFacade, logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	s := &Scheduler{
		cron:          c,
		rentalService: rentalService,
		logger:        logger.With(slog.String("component", "scheduler")),
	}

	if _, err := c.AddFunc(cfg.OverdueSweepSchedule, s.runOverdueSweep); err != nil {
		s.logger.Error("Failed to register overdue sweep job",
			slog.String("schedule", cfg.OverdueSweepSchedule),
			slog.String("error", err.Error()))
	} else {
		s.logger.Info("Overdue sweep job registered", slog.String("schedule", cfg.OverdueSweepSchedule))
	}

	return s
}

// runOverdueSweep executes one overdue sweep pass on behalf of the system user.
func (s *Scheduler) runOverdueSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	ctx = middleware.ContextWithLogger(ctx, s.logger)

	overdue, marked, err := s.rentalService.SweepOverdueRentals(ctx, services.SweeperUserID)
	if err != nil {
		s.logger.Error("Overdue sweep failed", slog.String("error", err.Error()))
		return
	}
	if marked > 0 {
		s.logger.Info("Overdue sweep finished", slog.Int64("marked_overdue", marked), slog.Int("total_overdue", len(overdue)))
	} else {
		s.logger.Debug("Overdue sweep finished, nothing to mark")
	}
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Cron scheduler started")
}

// Stop gracefully stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}
