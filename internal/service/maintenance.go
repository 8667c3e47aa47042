package service

import (
	"context"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type maintenanceService struct {
	maintenance backend.MaintenanceAPI
}

func NewMaintenanceService(maintenance backend.MaintenanceAPI) MaintenanceService {
	return &maintenanceService{maintenance: maintenance}
}

// Scheduled returns the open schedules across all vehicles. No target
// date means the backend reports everything still pending.
func (s *maintenanceService) Scheduled(ctx context.Context) ([]domain.MaintenanceSchedule, error) {
	return s.maintenance.Scheduled(ctx, nil)
}

func (s *maintenanceService) Create(ctx context.Context, in domain.MaintenanceScheduleCreate) (*domain.MaintenanceSchedule, error) {
	if in.Status == "" {
		in.Status = domain.MaintenanceStatusScheduled
	}
	return s.maintenance.Create(ctx, in)
}
