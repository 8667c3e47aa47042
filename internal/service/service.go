package service

import (
	"context"
	"time"

	"rental-console/internal/domain"
	"rental-console/internal/settlement"
)

// DashboardView is everything the dashboard page renders. The revenue
// figure is a client-side sum over the sampled recent rentals and is
// labelled as such; the reports page carries the authoritative number.
type DashboardView struct {
	TotalCustomers    int
	TotalVehicles     int
	ActiveRentals     int
	AvailableVehicles int
	OverdueRentals    int
	RecentRevenue     domain.Cents
	RecentRentals     []domain.Rental
	NeedMaintenance   []domain.Vehicle
}

// RentalDetailView is the rental detail page payload: the rental with its
// relations, the computed financial statement, and the return-form
// pre-fill.
type RentalDetailView struct {
	Rental           domain.RentalWithDetails
	Payments         []domain.Payment
	Incidents        []domain.IncidentReport
	Statement        settlement.Statement
	Overdue          bool
	DaysLate         int
	SuggestedLateFee domain.Cents
	DurationDays     int
}

// CustomerDetailView bundles a customer with their rental and reservation
// history.
type CustomerDetailView struct {
	Customer     domain.CustomerWithProfile
	Rentals      []domain.Rental
	Reservations []domain.Reservation
}

// VehicleDetailView bundles a vehicle with its maintenance schedules.
type VehicleDetailView struct {
	Vehicle     domain.VehicleWithFeatures
	Maintenance []domain.MaintenanceSchedule
}

type DashboardService interface {
	Load(ctx context.Context, now time.Time) (*DashboardView, error)
}

type RentalService interface {
	List(ctx context.Context) ([]domain.Rental, error)
	Detail(ctx context.Context, id int32, now time.Time) (*RentalDetailView, error)
	Create(ctx context.Context, in domain.RentalCreate) (*domain.Rental, error)
	Return(ctx context.Context, id int32, in domain.RentalReturn, now time.Time) (*RentalDetailView, error)
	RecordPayment(ctx context.Context, in domain.PaymentCreate) (*domain.Payment, error)
}

type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, query string) ([]domain.Customer, error)
	Detail(ctx context.Context, id int32) (*CustomerDetailView, error)
	Create(ctx context.Context, in domain.CustomerCreate) (*domain.Customer, error)
	Update(ctx context.Context, id int32, in domain.CustomerCreate) (*domain.Customer, error)
	Delete(ctx context.Context, id int32) error
	AddPoints(ctx context.Context, customerID, points int32) error
}

type VehicleService interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	Detail(ctx context.Context, id int32) (*VehicleDetailView, error)
	Create(ctx context.Context, in domain.VehicleCreate) (*domain.Vehicle, error)
	Update(ctx context.Context, id int32, in domain.VehicleCreate) (*domain.Vehicle, error)
	SetAvailability(ctx context.Context, id int32, available bool) error
	ScheduleMaintenance(ctx context.Context, in domain.MaintenanceScheduleCreate) (*domain.MaintenanceSchedule, error)
}

type ReservationService interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	Get(ctx context.Context, id int32) (*domain.Reservation, error)
	Create(ctx context.Context, in domain.ReservationCreate) (*domain.Reservation, error)
	Update(ctx context.Context, id int32, in domain.ReservationCreate) (*domain.Reservation, error)
	Convert(ctx context.Context, id int32) (*domain.Rental, error)
}

type DirectoryService interface {
	Employees(ctx context.Context) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, in domain.EmployeeCreate) (*domain.Employee, error)
	Locations(ctx context.Context) ([]domain.Location, error)
	CreateLocation(ctx context.Context, in domain.LocationCreate) (*domain.Location, error)
}

type IncidentService interface {
	List(ctx context.Context) ([]domain.IncidentReport, error)
	Create(ctx context.Context, in domain.IncidentReportCreate) (*domain.IncidentReport, error)
}

type MaintenanceService interface {
	Scheduled(ctx context.Context) ([]domain.MaintenanceSchedule, error)
	Create(ctx context.Context, in domain.MaintenanceScheduleCreate) (*domain.MaintenanceSchedule, error)
}

type ReportService interface {
	Revenue(ctx context.Context, start, end domain.Timestamp) (*domain.RevenueReport, error)
	Payments(ctx context.Context, start, end domain.Timestamp) (*domain.PaymentReport, error)
	TopCustomers(ctx context.Context, limit int) ([]domain.Customer, error)
}
