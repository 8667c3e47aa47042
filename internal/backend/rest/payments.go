package rest

import (
	"context"
	"fmt"
	"net/url"

	"rental-console/internal/domain"
)

type paymentClient struct {
	*core
}

func (c *paymentClient) Create(ctx context.Context, in domain.PaymentCreate) (*domain.Payment, error) {
	var out domain.Payment
	if err := c.post(ctx, "/payments/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *paymentClient) ByRental(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	var out []domain.Payment
	if err := c.get(ctx, fmt.Sprintf("/payments/rental/%d", rentalID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *paymentClient) Failed(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	if err := c.get(ctx, "/payments/failed", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *paymentClient) Report(ctx context.Context, start, end domain.Timestamp) (*domain.PaymentReport, error) {
	q := url.Values{}
	q.Set("start_date", start.DateString())
	q.Set("end_date", end.DateString())
	var out domain.PaymentReport
	if err := c.get(ctx, "/payments/report", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
