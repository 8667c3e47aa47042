package rest

import (
	"context"
	"fmt"
	"net/url"

	"rental-console/internal/backend"
	"rental-console/internal/domain"
)

type locationClient struct {
	*core
}

func (c *locationClient) List(ctx context.Context, r backend.ListRange) ([]domain.Location, error) {
	var out []domain.Location
	if err := c.get(ctx, "/locations/", rangeQuery(r), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *locationClient) Get(ctx context.Context, id int32) (*domain.LocationWithEmployees, error) {
	var out domain.LocationWithEmployees
	if err := c.get(ctx, fmt.Sprintf("/locations/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *locationClient) ByCity(ctx context.Context, city string) ([]domain.Location, error) {
	var out []domain.Location
	if err := c.get(ctx, "/locations/city/"+url.PathEscape(city), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *locationClient) Create(ctx context.Context, in domain.LocationCreate) (*domain.Location, error) {
	var out domain.Location
	if err := c.post(ctx, "/locations/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
