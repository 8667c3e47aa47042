// Package backend defines the console's only external boundary: typed,
// resource-oriented access to the rental REST backend. The interfaces here
// are implemented by backend/rest and mocked in service tests.
package backend

import (
	"context"

	"rental-console/internal/domain"
)

// ListRange is the skip/limit window the backend expects on list endpoints.
type ListRange struct {
	Skip  int
	Limit int
}

// DefaultRange mirrors the backend's own defaults.
var DefaultRange = ListRange{Skip: 0, Limit: 100}

type CustomerAPI interface {
	List(ctx context.Context, r ListRange) ([]domain.Customer, error)
	Get(ctx context.Context, id int32) (*domain.CustomerWithProfile, error)
	Create(ctx context.Context, in domain.CustomerCreate) (*domain.Customer, error)
	Update(ctx context.Context, id int32, in domain.CustomerCreate) (*domain.Customer, error)
	Delete(ctx context.Context, id int32) error
	Search(ctx context.Context, query string, r ListRange) ([]domain.Customer, error)
	TopSpenders(ctx context.Context, limit int) ([]domain.Customer, error)
}

type VehicleAPI interface {
	List(ctx context.Context, r ListRange) ([]domain.Vehicle, error)
	Available(ctx context.Context, r ListRange) ([]domain.Vehicle, error)
	Get(ctx context.Context, id int32) (*domain.VehicleWithFeatures, error)
	Create(ctx context.Context, in domain.VehicleCreate) (*domain.Vehicle, error)
	Update(ctx context.Context, id int32, in domain.VehicleCreate) (*domain.Vehicle, error)
	SetAvailability(ctx context.Context, id int32, available bool) error
	Filter(ctx context.Context, f domain.VehicleFilters, r ListRange) ([]domain.Vehicle, error)
	NeedingMaintenance(ctx context.Context) ([]domain.Vehicle, error)
}

type RentalAPI interface {
	List(ctx context.Context, r ListRange) ([]domain.Rental, error)
	Active(ctx context.Context, r ListRange) ([]domain.Rental, error)
	Overdue(ctx context.Context) ([]domain.Rental, error)
	Get(ctx context.Context, id int32) (*domain.RentalWithDetails, error)
	ByCustomer(ctx context.Context, customerID int32, r ListRange) ([]domain.Rental, error)
	Create(ctx context.Context, in domain.RentalCreate) (*domain.Rental, error)
	Filter(ctx context.Context, f domain.RentalFilters, r ListRange) ([]domain.Rental, error)
	Return(ctx context.Context, id int32, in domain.RentalReturn) (*domain.Rental, error)
	RevenueReport(ctx context.Context, start, end domain.Timestamp) (*domain.RevenueReport, error)
}

type ReservationAPI interface {
	List(ctx context.Context, r ListRange) ([]domain.Reservation, error)
	Active(ctx context.Context, r ListRange) ([]domain.Reservation, error)
	Get(ctx context.Context, id int32) (*domain.Reservation, error)
	ByCustomer(ctx context.Context, customerID int32) ([]domain.Reservation, error)
	Create(ctx context.Context, in domain.ReservationCreate) (*domain.Reservation, error)
	Update(ctx context.Context, id int32, in domain.ReservationCreate) (*domain.Reservation, error)
	ConvertToRental(ctx context.Context, id int32, in domain.RentalCreate) (*domain.Rental, error)
}

type EmployeeAPI interface {
	List(ctx context.Context, r ListRange) ([]domain.Employee, error)
	Active(ctx context.Context, r ListRange) ([]domain.Employee, error)
	Get(ctx context.Context, id int32) (*domain.Employee, error)
	ByRole(ctx context.Context, role string) ([]domain.Employee, error)
	ByLocation(ctx context.Context, locationID int32) ([]domain.Employee, error)
	Create(ctx context.Context, in domain.EmployeeCreate) (*domain.Employee, error)
}

type LocationAPI interface {
	List(ctx context.Context, r ListRange) ([]domain.Location, error)
	Get(ctx context.Context, id int32) (*domain.LocationWithEmployees, error)
	ByCity(ctx context.Context, city string) ([]domain.Location, error)
	Create(ctx context.Context, in domain.LocationCreate) (*domain.Location, error)
}

type PaymentAPI interface {
	Create(ctx context.Context, in domain.PaymentCreate) (*domain.Payment, error)
	ByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error)
	Failed(ctx context.Context) ([]domain.Payment, error)
	Report(ctx context.Context, start, end domain.Timestamp) (*domain.PaymentReport, error)
}

type InsuranceAPI interface {
	List(ctx context.Context) ([]domain.InsurancePlan, error)
	Active(ctx context.Context) ([]domain.InsurancePlan, error)
	Create(ctx context.Context, in domain.InsurancePlanCreate) (*domain.InsurancePlan, error)
}

type IncidentAPI interface {
	List(ctx context.Context, r ListRange) ([]domain.IncidentReport, error)
	ByRental(ctx context.Context, rentalID int32) ([]domain.IncidentReport, error)
	Open(ctx context.Context) ([]domain.IncidentReport, error)
	Create(ctx context.Context, in domain.IncidentReportCreate) (*domain.IncidentReport, error)
}

type MaintenanceAPI interface {
	Create(ctx context.Context, in domain.MaintenanceScheduleCreate) (*domain.MaintenanceSchedule, error)
	ByVehicle(ctx context.Context, vehicleID int32) ([]domain.MaintenanceSchedule, error)
	Scheduled(ctx context.Context, targetDate *domain.Timestamp) ([]domain.MaintenanceSchedule, error)
	ByMechanic(ctx context.Context, mechanicID int32, start, end domain.Timestamp) ([]domain.MaintenanceSchedule, error)
}

type MembershipAPI interface {
	UpdatePoints(ctx context.Context, customerID int32, pointsToAdd int32) error
	Tiers(ctx context.Context) ([]domain.MembershipTier, error)
}

type FeatureAPI interface {
	List(ctx context.Context) ([]domain.VehicleFeature, error)
	Create(ctx context.Context, in domain.VehicleFeatureCreate) (*domain.VehicleFeature, error)
}
