package service

import (
	"context"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

// reportService exposes the server-computed range reports. These are the
// authoritative numbers; nothing here recomputes them client-side.
type reportService struct {
	rentals   backend.RentalAPI
	payments  backend.PaymentAPI
	customers backend.CustomerAPI
}

func NewReportService(rentals backend.RentalAPI, payments backend.PaymentAPI, customers backend.CustomerAPI) ReportService {
	return &reportService{
		rentals:   rentals,
		payments:  payments,
		customers: customers,
	}
}

func (s *reportService) Revenue(ctx context.Context, start, end domain.Timestamp) (*domain.RevenueReport, error) {
	return s.rentals.RevenueReport(ctx, start, end)
}

func (s *reportService) Payments(ctx context.Context, start, end domain.Timestamp) (*domain.PaymentReport, error) {
	return s.payments.Report(ctx, start, end)
}

func (s *reportService) TopCustomers(ctx context.Context, limit int) ([]domain.Customer, error) {
	return s.customers.TopSpenders(ctx, limit)
}
