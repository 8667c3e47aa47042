package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
	"rental-console/internal/settlement"
)

type rentalService struct {
	rentals   backend.RentalAPI
	payments  backend.PaymentAPI
	incidents backend.IncidentAPI
}

func NewRentalService(rentals backend.RentalAPI, payments backend.PaymentAPI, incidents backend.IncidentAPI) RentalService {
	return &rentalService{
		rentals:   rentals,
		payments:  payments,
		incidents: incidents,
	}
}

func (s *rentalService) List(ctx context.Context) ([]domain.Rental, error) {
	return s.rentals.List(ctx, backend.DefaultRange)
}

// Detail joins the rental with its payments and incident reports, fetched
// concurrently, and computes the financial statement from that snapshot.
// A failure on any branch fails the whole view.
func (s *rentalService) Detail(ctx context.Context, id int32, now time.Time) (*RentalDetailView, error) {
	var (
		rental    *domain.RentalWithDetails
		payments  []domain.Payment
		incidents []domain.IncidentReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rental, err = s.rentals.Get(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.payments.ByRental(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		incidents, err = s.incidents.ByRental(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &RentalDetailView{
		Rental:           *rental,
		Payments:         payments,
		Incidents:        incidents,
		Statement:        settlement.NewStatement(rental.Rental, payments),
		Overdue:          settlement.IsOverdue(rental.Rental, now),
		DaysLate:         settlement.DaysLate(rental.Rental, now),
		SuggestedLateFee: settlement.SuggestedLateFee(rental.Rental, now),
		DurationDays:     settlement.Duration(rental.Rental),
	}, nil
}

func (s *rentalService) Create(ctx context.Context, in domain.RentalCreate) (*domain.Rental, error) {
	if in.Status == "" {
		in.Status = domain.RentalStatusActive
	}
	return s.rentals.Create(ctx, in)
}

// Return submits the operator's settlement figures as one atomic update,
// then re-fetches the full detail view. The console never patches its own
// copy of the rental; the backend's post-return state is the only truth.
func (s *rentalService) Return(ctx context.Context, id int32, in domain.RentalReturn, now time.Time) (*RentalDetailView, error) {
	if _, err := s.rentals.Return(ctx, id, in); err != nil {
		return nil, err
	}
	return s.Detail(ctx, id, now)
}

// RecordPayment mints a transaction id when the operator left it blank, so
// every payment row is traceable even for cash taken at the counter.
func (s *rentalService) RecordPayment(ctx context.Context, in domain.PaymentCreate) (*domain.Payment, error) {
	if in.TransactionID == "" {
		in.TransactionID = uuid.NewString()
	}
	if in.Status == "" {
		in.Status = domain.PaymentStatusCompleted
	}
	return s.payments.Create(ctx, in)
}
