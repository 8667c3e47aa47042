package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type customerService struct {
	customers    backend.CustomerAPI
	rentals      backend.RentalAPI
	reservations backend.ReservationAPI
	membership   backend.MembershipAPI
}

func NewCustomerService(customers backend.CustomerAPI, rentals backend.RentalAPI, reservations backend.ReservationAPI, membership backend.MembershipAPI) CustomerService {
	return &customerService{
		customers:    customers,
		rentals:      rentals,
		reservations: reservations,
		membership:   membership,
	}
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx, backend.DefaultRange)
}

// Search falls back to the plain list when the query is blank, mirroring
// how the search box behaves before anything is typed.
func (s *customerService) Search(ctx context.Context, query string) ([]domain.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}
	return s.customers.Search(ctx, query, backend.DefaultRange)
}

// Detail joins the customer profile with rental and reservation history.
func (s *customerService) Detail(ctx context.Context, id int32) (*CustomerDetailView, error) {
	var (
		customer     *domain.CustomerWithProfile
		rentals      []domain.Rental
		reservations []domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		customer, err = s.customers.Get(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		rentals, err = s.rentals.ByCustomer(gctx, id, backend.DefaultRange)
		return err
	})
	g.Go(func() (err error) {
		reservations, err = s.reservations.ByCustomer(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CustomerDetailView{
		Customer:     *customer,
		Rentals:      rentals,
		Reservations: reservations,
	}, nil
}

func (s *customerService) Create(ctx context.Context, in domain.CustomerCreate) (*domain.Customer, error) {
	return s.customers.Create(ctx, in)
}

func (s *customerService) Update(ctx context.Context, id int32, in domain.CustomerCreate) (*domain.Customer, error) {
	return s.customers.Update(ctx, id, in)
}

func (s *customerService) Delete(ctx context.Context, id int32) error {
	return s.customers.Delete(ctx, id)
}

func (s *customerService) AddPoints(ctx context.Context, customerID, points int32) error {
	return s.membership.UpdatePoints(ctx, customerID, points)
}
