package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
	"rental-console/internal/settlement"
)

type dashboardService struct {
	customers backend.CustomerAPI
	vehicles  backend.VehicleAPI
	rentals   backend.RentalAPI
	sample    int
}

// NewDashboardService builds the dashboard loader. sample is how many recent
// rentals the landing page shows and sums revenue over.
func NewDashboardService(customers backend.CustomerAPI, vehicles backend.VehicleAPI, rentals backend.RentalAPI, sample int) DashboardService {
	return &dashboardService{
		customers: customers,
		vehicles:  vehicles,
		rentals:   rentals,
		sample:    sample,
	}
}

// Load fetches the seven dashboard data sets concurrently. Any single
// failure fails the whole load; the page renders everything or nothing.
func (s *dashboardService) Load(ctx context.Context, now time.Time) (*DashboardView, error) {
	var (
		allCustomers  []domain.Customer
		allVehicles   []domain.Vehicle
		activeRentals []domain.Rental
		available     []domain.Vehicle
		overdue       []domain.Rental
		recent        []domain.Rental
		needService   []domain.Vehicle
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		allCustomers, err = s.customers.List(gctx, backend.DefaultRange)
		return err
	})
	g.Go(func() (err error) {
		allVehicles, err = s.vehicles.List(gctx, backend.DefaultRange)
		return err
	})
	g.Go(func() (err error) {
		activeRentals, err = s.rentals.Active(gctx, backend.DefaultRange)
		return err
	})
	g.Go(func() (err error) {
		available, err = s.vehicles.Available(gctx, backend.DefaultRange)
		return err
	})
	g.Go(func() (err error) {
		overdue, err = s.rentals.Overdue(gctx)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.rentals.List(gctx, backend.ListRange{Skip: 0, Limit: s.sample})
		return err
	})
	g.Go(func() (err error) {
		needService, err = s.vehicles.NeedingMaintenance(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The overdue check runs client-side as well so rentals the backend has
	// not yet flagged still count on the stat card.
	overdueCount := len(overdue)
	for _, r := range activeRentals {
		if settlement.IsOverdue(r, now) && !containsRental(overdue, r.ID) {
			overdueCount++
		}
	}

	return &DashboardView{
		TotalCustomers:    len(allCustomers),
		TotalVehicles:     len(allVehicles),
		ActiveRentals:     len(activeRentals),
		AvailableVehicles: len(available),
		OverdueRentals:    overdueCount,
		RecentRevenue:     settlement.CompletedRevenue(recent),
		RecentRentals:     recent,
		NeedMaintenance:   needService,
	}, nil
}

func containsRental(rentals []domain.Rental, id int32) bool {
	for _, r := range rentals {
		if r.ID == id {
			return true
		}
	}
	return false
}
