package service

import (
	"context"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

// directoryService covers the low-churn company records: staff and branch
// locations.
type directoryService struct {
	employees backend.EmployeeAPI
	locations backend.LocationAPI
}

func NewDirectoryService(employees backend.EmployeeAPI, locations backend.LocationAPI) DirectoryService {
	return &directoryService{
		employees: employees,
		locations: locations,
	}
}

func (s *directoryService) Employees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx, backend.DefaultRange)
}

func (s *directoryService) CreateEmployee(ctx context.Context, in domain.EmployeeCreate) (*domain.Employee, error) {
	return s.employees.Create(ctx, in)
}

func (s *directoryService) Locations(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx, backend.DefaultRange)
}

func (s *directoryService) CreateLocation(ctx context.Context, in domain.LocationCreate) (*domain.Location, error) {
	return s.locations.Create(ctx, in)
}
