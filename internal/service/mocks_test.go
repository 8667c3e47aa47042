package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

// MockCustomerAPI
type MockCustomerAPI struct {
	mock.Mock
}

func (m *MockCustomerAPI) List(ctx context.Context, r backend.ListRange) ([]domain.Customer, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerAPI) Get(ctx context.Context, id int32) (*domain.CustomerWithProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerWithProfile), args.Error(1)
}
func (m *MockCustomerAPI) Create(ctx context.Context, in domain.CustomerCreate) (*domain.Customer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerAPI) Update(ctx context.Context, id int32, in domain.CustomerCreate) (*domain.Customer, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerAPI) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerAPI) Search(ctx context.Context, query string, r backend.ListRange) ([]domain.Customer, error) {
	args := m.Called(ctx, query, r)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerAPI) TopSpenders(ctx context.Context, limit int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockVehicleAPI
type MockVehicleAPI struct {
	mock.Mock
}

func (m *MockVehicleAPI) List(ctx context.Context, r backend.ListRange) ([]domain.Vehicle, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleAPI) Available(ctx context.Context, r backend.ListRange) ([]domain.Vehicle, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleAPI) Get(ctx context.Context, id int32) (*domain.VehicleWithFeatures, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleWithFeatures), args.Error(1)
}
func (m *MockVehicleAPI) Create(ctx context.Context, in domain.VehicleCreate) (*domain.Vehicle, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleAPI) Update(ctx context.Context, id int32, in domain.VehicleCreate) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleAPI) SetAvailability(ctx context.Context, id int32, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockVehicleAPI) Filter(ctx context.Context, f domain.VehicleFilters, r backend.ListRange) ([]domain.Vehicle, error) {
	args := m.Called(ctx, f, r)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleAPI) NeedingMaintenance(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockRentalAPI
type MockRentalAPI struct {
	mock.Mock
}

func (m *MockRentalAPI) List(ctx context.Context, r backend.ListRange) ([]domain.Rental, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalAPI) Active(ctx context.Context, r backend.ListRange) ([]domain.Rental, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalAPI) Overdue(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalAPI) Get(ctx context.Context, id int32) (*domain.RentalWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalWithDetails), args.Error(1)
}
func (m *MockRentalAPI) ByCustomer(ctx context.Context, customerID int32, r backend.ListRange) ([]domain.Rental, error) {
	args := m.Called(ctx, customerID, r)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalAPI) Create(ctx context.Context, in domain.RentalCreate) (*domain.Rental, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalAPI) Filter(ctx context.Context, f domain.RentalFilters, r backend.ListRange) ([]domain.Rental, error) {
	args := m.Called(ctx, f, r)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalAPI) Return(ctx context.Context, id int32, in domain.RentalReturn) (*domain.Rental, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalAPI) RevenueReport(ctx context.Context, start, end domain.Timestamp) (*domain.RevenueReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueReport), args.Error(1)
}

// MockReservationAPI
type MockReservationAPI struct {
	mock.Mock
}

func (m *MockReservationAPI) List(ctx context.Context, r backend.ListRange) ([]domain.Reservation, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationAPI) Active(ctx context.Context, r backend.ListRange) ([]domain.Reservation, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationAPI) Get(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationAPI) ByCustomer(ctx context.Context, customerID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationAPI) Create(ctx context.Context, in domain.ReservationCreate) (*domain.Reservation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationAPI) Update(ctx context.Context, id int32, in domain.ReservationCreate) (*domain.Reservation, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationAPI) ConvertToRental(ctx context.Context, id int32, in domain.RentalCreate) (*domain.Rental, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

// MockPaymentAPI
type MockPaymentAPI struct {
	mock.Mock
}

func (m *MockPaymentAPI) Create(ctx context.Context, in domain.PaymentCreate) (*domain.Payment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentAPI) ByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentAPI) Failed(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentAPI) Report(ctx context.Context, start, end domain.Timestamp) (*domain.PaymentReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentReport), args.Error(1)
}

// MockIncidentAPI
type MockIncidentAPI struct {
	mock.Mock
}

func (m *MockIncidentAPI) List(ctx context.Context, r backend.ListRange) ([]domain.IncidentReport, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]domain.IncidentReport), args.Error(1)
}
func (m *MockIncidentAPI) ByRental(ctx context.Context, rentalID int32) ([]domain.IncidentReport, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.IncidentReport), args.Error(1)
}
func (m *MockIncidentAPI) Open(ctx context.Context) ([]domain.IncidentReport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.IncidentReport), args.Error(1)
}
func (m *MockIncidentAPI) Create(ctx context.Context, in domain.IncidentReportCreate) (*domain.IncidentReport, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncidentReport), args.Error(1)
}

// MockMembershipAPI
type MockMembershipAPI struct {
	mock.Mock
}

func (m *MockMembershipAPI) UpdatePoints(ctx context.Context, customerID int32, pointsToAdd int32) error {
	args := m.Called(ctx, customerID, pointsToAdd)
	return args.Error(0)
}
func (m *MockMembershipAPI) Tiers(ctx context.Context) ([]domain.MembershipTier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MembershipTier), args.Error(1)
}
