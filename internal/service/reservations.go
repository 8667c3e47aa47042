package service

import (
	"context"
	"math"
	"time"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type reservationService struct {
	reservations backend.ReservationAPI
	vehicles     backend.VehicleAPI
}

func NewReservationService(reservations backend.ReservationAPI, vehicles backend.VehicleAPI) ReservationService {
	return &reservationService{
		reservations: reservations,
		vehicles:     vehicles,
	}
}

func (s *reservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx, backend.DefaultRange)
}

func (s *reservationService) Get(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.reservations.Get(ctx, id)
}

func (s *reservationService) Create(ctx context.Context, in domain.ReservationCreate) (*domain.Reservation, error) {
	if in.Status == "" {
		in.Status = domain.ReservationStatusActive
	}
	return s.reservations.Create(ctx, in)
}

func (s *reservationService) Update(ctx context.Context, id int32, in domain.ReservationCreate) (*domain.Reservation, error) {
	return s.reservations.Update(ctx, id, in)
}

// Convert turns a reservation into an active rental. The rental terms are
// priced from the vehicle's current daily rate over the reserved window;
// the backend rejects conversions of anything not Active or Confirmed and
// flips the reservation to Converted on success.
func (s *reservationService) Convert(ctx context.Context, id int32) (*domain.Rental, error) {
	reservation, err := s.reservations.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicles.Get(ctx, reservation.VehicleID)
	if err != nil {
		return nil, err
	}

	days := reservedDays(reservation.StartDate.Time, reservation.EndDate.Time)
	in := domain.RentalCreate{
		CustomerID:       reservation.CustomerID,
		VehicleID:        reservation.VehicleID,
		PickupLocationID: reservation.PickupLocationID,
		ReturnLocationID: reservation.ReturnLocationID,
		StartDate:        reservation.StartDate,
		EndDate:          reservation.EndDate,
		DailyRate:        vehicle.DailyRate,
		TotalAmount:      vehicle.DailyRate * domain.Cents(days),
		Status:           domain.RentalStatusActive,
	}
	return s.reservations.ConvertToRental(ctx, id, in)
}

// reservedDays counts billable days in the reserved window, any partial day
// charged as a full one, never less than a single day.
func reservedDays(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return 1
	}
	return int(math.Ceil(hours / 24))
}
