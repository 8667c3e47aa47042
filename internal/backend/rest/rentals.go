package rest

import (
	"context"
	"fmt"
	"net/url"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type rentalClient struct {
	*core
}

func (c *rentalClient) List(ctx context.Context, r backend.ListRange) ([]domain.Rental, error) {
	var out []domain.Rental
	if err := c.get(ctx, "/rentals/", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalClient) Active(ctx context.Context, r backend.ListRange) ([]domain.Rental, error) {
	var out []domain.Rental
	if err := c.get(ctx, "/rentals/active", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalClient) Overdue(ctx context.Context) ([]domain.Rental, error) {
	var out []domain.Rental
	if err := c.get(ctx, "/rentals/overdue", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalClient) Get(ctx context.Context, id int32) (*domain.RentalWithDetails, error) {
	var out domain.RentalWithDetails
	if err := c.get(ctx, fmt.Sprintf("/rentals/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *rentalClient) ByCustomer(ctx context.Context, customerID int32, r backend.ListRange) ([]domain.Rental, error) {
	var out []domain.Rental
	if err := c.get(ctx, fmt.Sprintf("/rentals/customer/%d", customerID), rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalClient) Create(ctx context.Context, in domain.RentalCreate) (*domain.Rental, error) {
	var out domain.Rental
	if err := c.post(ctx, "/rentals/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *rentalClient) Filter(ctx context.Context, f domain.RentalFilters, r backend.ListRange) ([]domain.Rental, error) {
	q := rangeQuery(r)
	setInt(q, "customer_id", f.CustomerID)
	setInt(q, "vehicle_id", f.VehicleID)
	setStr(q, "status", string(f.Status))
	setInt(q, "pickup_location_id", f.PickupLocationID)
	setInt(q, "return_location_id", f.ReturnLocationID)
	if f.StartDateFrom != nil {
		q.Set("start_date_from", f.StartDateFrom.DateString())
	}
	if f.StartDateTo != nil {
		q.Set("start_date_to", f.StartDateTo.DateString())
	}

	var out []domain.Rental
	if err := c.get(ctx, "/rentals/filter/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Return submits the settlement update as a single atomic PATCH. The server
// stamps the actual return date and decides the resulting status.
func (c *rentalClient) Return(ctx context.Context, id int32, in domain.RentalReturn) (*domain.Rental, error) {
	var out domain.Rental
	if err := c.patch(ctx, fmt.Sprintf("/rentals/%d/return", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *rentalClient) RevenueReport(ctx context.Context, start, end domain.Timestamp) (*domain.RevenueReport, error) {
	q := url.Values{}
	q.Set("start_date", start.DateString())
	q.Set("end_date", end.DateString())
	var out domain.RevenueReport
	if err := c.get(ctx, "/rentals/revenue/report", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
