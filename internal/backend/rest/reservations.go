package rest

import (
	"context"
	"fmt"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type reservationClient struct {
	*core
}

func (c *reservationClient) List(ctx context.Context, r backend.ListRange) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := c.get(ctx, "/reservations/", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reservationClient) Active(ctx context.Context, r backend.ListRange) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := c.get(ctx, "/reservations/active", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reservationClient) Get(ctx context.Context, id int32) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.get(ctx, fmt.Sprintf("/reservations/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *reservationClient) ByCustomer(ctx context.Context, customerID int32) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := c.get(ctx, fmt.Sprintf("/reservations/customer/%d", customerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reservationClient) Create(ctx context.Context, in domain.ReservationCreate) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.post(ctx, "/reservations/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *reservationClient) Update(ctx context.Context, id int32, in domain.ReservationCreate) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.put(ctx, fmt.Sprintf("/reservations/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *reservationClient) ConvertToRental(ctx context.Context, id int32, in domain.RentalCreate) (*domain.Rental, error) {
	var out domain.Rental
	if err := c.post(ctx, fmt.Sprintf("/reservations/%d/convert", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
