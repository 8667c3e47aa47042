package jobs

import (
	"context"
	"time"

	"rental-console/internal/backend"
	"rental-console/internal/logger"
)

// JobRunner coordinates the background pollers that keep the alert board
// current between page loads.
type JobRunner struct {
	rentals     backend.RentalAPI
	vehicles    backend.VehicleAPI
	maintenance backend.MaintenanceAPI
	board       *AlertBoard
	timeout     time.Duration
}

// NewJobRunner wires the pollers to the backend clients and the shared
// alert board.
func NewJobRunner(rentals backend.RentalAPI, vehicles backend.VehicleAPI, maintenance backend.MaintenanceAPI, board *AlertBoard, timeout time.Duration) *JobRunner {
	return &JobRunner{
		rentals:     rentals,
		vehicles:    vehicles,
		maintenance: maintenance,
		board:       board,
		timeout:     timeout,
	}
}

// Board exposes the alert board the web layer reads from.
func (jr *JobRunner) Board() *AlertBoard {
	return jr.board
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	jobFunc(ctx)
	logger.Info("Job completed", "job", jobName)
}

// RefreshOverdueRentals polls the backend for rentals past their end date
// and publishes the count. A poll failure leaves the previous snapshot in
// place rather than zeroing the board.
func (jr *JobRunner) RefreshOverdueRentals() {
	jr.runWithRecovery("RefreshOverdueRentals", func(ctx context.Context) {
		overdue, err := jr.rentals.Overdue(ctx)
		if err != nil {
			logger.Error("Failed to fetch overdue rentals", "error", err)
			return
		}
		jr.board.SetOverdueRentals(overdue)
		logger.Info("Overdue rentals refreshed", "count", len(overdue))
	})
}

// RefreshMaintenanceAlerts polls for vehicles due for service and today's
// scheduled maintenance, publishing both onto the board.
func (jr *JobRunner) RefreshMaintenanceAlerts() {
	jr.runWithRecovery("RefreshMaintenanceAlerts", func(ctx context.Context) {
		vehicles, err := jr.vehicles.NeedingMaintenance(ctx)
		if err != nil {
			logger.Error("Failed to fetch vehicles needing maintenance", "error", err)
			return
		}

		today := timestampToday()
		scheduled, err := jr.maintenance.Scheduled(ctx, &today)
		if err != nil {
			logger.Error("Failed to fetch scheduled maintenance", "error", err)
			return
		}

		jr.board.SetMaintenance(vehicles, scheduled)
		logger.Info("Maintenance alerts refreshed",
			"vehicles_due", len(vehicles),
			"scheduled_today", len(scheduled))
	})
}

// RunAll executes every poller once, used at startup so the first dashboard
// render has numbers instead of a blank board.
func (jr *JobRunner) RunAll() {
	jr.RefreshOverdueRentals()
	jr.RefreshMaintenanceAlerts()
}
