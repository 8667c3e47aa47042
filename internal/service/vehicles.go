package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type vehicleService struct {
	vehicles    backend.VehicleAPI
	maintenance backend.MaintenanceAPI
}

func NewVehicleService(vehicles backend.VehicleAPI, maintenance backend.MaintenanceAPI) VehicleService {
	return &vehicleService{
		vehicles:    vehicles,
		maintenance: maintenance,
	}
}

func (s *vehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx, backend.DefaultRange)
}

func (s *vehicleService) Detail(ctx context.Context, id int32) (*VehicleDetailView, error) {
	var (
		vehicle   *domain.VehicleWithFeatures
		schedules []domain.MaintenanceSchedule
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		vehicle, err = s.vehicles.Get(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		schedules, err = s.maintenance.ByVehicle(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &VehicleDetailView{
		Vehicle:     *vehicle,
		Maintenance: schedules,
	}, nil
}

func (s *vehicleService) Create(ctx context.Context, in domain.VehicleCreate) (*domain.Vehicle, error) {
	return s.vehicles.Create(ctx, in)
}

func (s *vehicleService) Update(ctx context.Context, id int32, in domain.VehicleCreate) (*domain.Vehicle, error) {
	return s.vehicles.Update(ctx, id, in)
}

func (s *vehicleService) SetAvailability(ctx context.Context, id int32, available bool) error {
	return s.vehicles.SetAvailability(ctx, id, available)
}

func (s *vehicleService) ScheduleMaintenance(ctx context.Context, in domain.MaintenanceScheduleCreate) (*domain.MaintenanceSchedule, error) {
	return s.maintenance.Create(ctx, in)
}
