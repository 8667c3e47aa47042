package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"rental-console/internal/config"
	"rental-console/internal/jobs"
	"rental-console/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler that keeps the alert pollers running on
// the configured cadence.
func NewScheduler(jobRunner *jobs.JobRunner, cfg config.SchedulerConfig) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs(cfg)
	return s
}

func (s *Scheduler) registerJobs(cfg config.SchedulerConfig) {
	_, err := s.cron.AddFunc(cfg.RefreshOverdueRentals, s.jobs.RefreshOverdueRentals)
	if err != nil {
		logger.Error("Failed to register RefreshOverdueRentals job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.RefreshMaintenanceAlerts, s.jobs.RefreshMaintenanceAlerts)
	if err != nil {
		logger.Error("Failed to register RefreshMaintenanceAlerts job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if jobs are registered with the scheduler
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
